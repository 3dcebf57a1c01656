package remote

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/premsagar786/LegalAI/internal/config"
	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

// wireAnalysis is the JSON shape the prompt instructs the model to emit.
// Every field is optional; normalization fills gaps.
type wireAnalysis struct {
	Summary      string `json:"summary"`
	DocumentType string `json:"documentType"`
	Clauses      []struct {
		Type        string `json:"type"`
		Content     string `json:"content"`
		RiskLevel   string `json:"riskLevel"`
		Explanation string `json:"explanation"`
	} `json:"clauses"`
	KeyTerms []legal.KeyTerm `json:"keyTerms"`
	Parties  []legal.Party   `json:"parties"`
	Dates    struct {
		Effective string                `json:"effective"`
		Expiry    string                `json:"expiry"`
		Important []legal.ImportantDate `json:"important"`
	} `json:"dates"`
	Obligations []legal.Obligation `json:"obligations"`
	Penalties   []struct {
		Condition   string `json:"condition"`
		Consequence string `json:"consequence"`
		Severity    string `json:"severity"`
	} `json:"penalties"`
	OverallRiskScore  int                     `json:"overallRiskScore"`
	Recommendations   []string                `json:"recommendations"`
	ExpertSuggestions legal.ExpertSuggestions `json:"expertSuggestions"`
}

// Analyzer is the remote whole-document strategy.
type Analyzer struct {
	cfg    config.RemoteConfig
	client *Client
	logger logging.Logger
}

// NewAnalyzer builds the remote strategy from configuration.
func NewAnalyzer(cfg config.RemoteConfig, logger logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Analyzer{cfg: cfg, client: NewClient(cfg), logger: logger.Named("remote")}
}

// Available reports whether the strategy should be attempted.
func (a *Analyzer) Available() bool { return a.cfg.Enabled() }

// AnalyzeWhole sends the document for analysis and normalizes the response.
// On malformed output it returns both a degraded-but-well-formed analysis
// (raw text as summary, degraded marker set) and a typed error, so direct
// callers still get a usable object while the orchestrator falls back.
func (a *Analyzer) AnalyzeWhole(ctx context.Context, text string) (*legal.DocumentAnalysis, error) {
	if !a.Available() {
		return nil, apperrors.New(apperrors.ErrCodeStrategyUnavailable, "remote strategy not configured")
	}

	raw, err := a.client.Complete(ctx, systemPrompt, BuildPrompt(text, a.cfg.MaxInputChars))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStrategyUnavailable, "remote completion failed")
	}

	cleaned := StripCodeFences(raw)
	var wire wireAnalysis
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		a.logger.Warn("remote response failed structural parsing", logging.Err(err))
		degraded := &legal.DocumentAnalysis{
			Summary:          legal.TruncateContent(cleaned),
			DocumentType:     "Legal Agreement",
			OverallRiskScore: legal.ClampRiskScore(50),
			Strategy:         legal.StrategyRemote,
			Degraded:         true,
		}
		return degraded, apperrors.Wrap(err, apperrors.ErrCodeRemoteMalformed, "remote response is not valid JSON")
	}

	return a.normalize(&wire), nil
}

// normalize converts the wire shape into the internal contract, enforcing
// every aggregate invariant regardless of what the model returned.
func (a *Analyzer) normalize(w *wireAnalysis) *legal.DocumentAnalysis {
	out := &legal.DocumentAnalysis{
		Summary:      w.Summary,
		DocumentType: w.DocumentType,
		KeyTerms:     w.KeyTerms,
		Parties:      w.Parties,
		Dates: legal.DateInfo{
			Effective: w.Dates.Effective,
			Expiry:    w.Dates.Expiry,
			Important: w.Dates.Important,
		},
		Obligations:       w.Obligations,
		OverallRiskScore:  legal.ClampRiskScore(w.OverallRiskScore),
		Recommendations:   w.Recommendations,
		ExpertSuggestions: w.ExpertSuggestions,
		Strategy:          legal.StrategyRemote,
	}
	if out.DocumentType == "" {
		out.DocumentType = "Legal Agreement"
	}

	for _, c := range w.Clauses {
		risk := normalizeRisk(c.RiskLevel)
		out.Clauses = append(out.Clauses, legal.ClassifiedClause{
			Type:        normalizeCategory(c.Type),
			Content:     legal.TruncateContent(c.Content),
			RiskLevel:   risk,
			Confidence:  1.0,
			Explanation: c.Explanation,
			Strategy:    legal.StrategyRemote,
		})
	}
	sort.SliceStable(out.Clauses, func(i, j int) bool {
		return out.Clauses[i].RiskLevel.Rank() < out.Clauses[j].RiskLevel.Rank()
	})
	if len(out.Clauses) > legal.MaxClauses {
		out.Clauses = out.Clauses[:legal.MaxClauses]
	}

	for _, p := range w.Penalties {
		out.Penalties = append(out.Penalties, legal.Penalty{
			Condition:   p.Condition,
			Consequence: p.Consequence,
			Severity:    normalizeRisk(p.Severity),
		})
	}
	return out
}

// normalizeRisk maps free-form model output onto the closed risk set,
// defaulting to medium for anything unrecognized.
func normalizeRisk(s string) legal.RiskLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return legal.RiskHigh
	case "low":
		return legal.RiskLow
	default:
		return legal.RiskMedium
	}
}

// normalizeCategory maps free-form clause type names onto the closed
// category set.  Matching is case-insensitive and tolerates partial names
// ("Liability" matches "Liability Limitation"); anything else is General.
func normalizeCategory(s string) legal.ClauseCategory {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return legal.CategoryGeneral
	}
	for _, cat := range legal.AllCategories() {
		lc := strings.ToLower(string(cat))
		if name == lc || strings.Contains(lc, name) || strings.Contains(name, lc) {
			return cat
		}
	}
	return legal.CategoryGeneral
}
