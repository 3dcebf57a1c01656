package analyzer

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/premsagar786/LegalAI/internal/infrastructure/cache"
	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/prometheus"
	"github.com/premsagar786/LegalAI/internal/infrastructure/storage/modelstore"
	"github.com/premsagar786/LegalAI/internal/intelligence/rules"
	"github.com/premsagar786/LegalAI/internal/intelligence/segment"
	"github.com/premsagar786/LegalAI/internal/intelligence/statml"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

// RemoteStrategy is the remote language-model tier of the pipeline.
type RemoteStrategy interface {
	Available() bool
	AnalyzeWhole(ctx context.Context, text string) (*legal.DocumentAnalysis, error)
}

// StatisticalPredictor is the locally trained model tier.
type StatisticalPredictor interface {
	Available(task string) bool
	PredictDocumentType(text string) (*statml.Prediction, error)
	PredictClauseType(text string) (*statml.Prediction, error)
	PredictClauseRisk(text string) (*statml.Prediction, error)
}

// Pipeline sequences the three classification strategies.  Tiers are tried in
// fixed order: remote, then statistical, then rules.  Any tier failure falls
// through silently to the next; the rule tier cannot fail, so Analyze always
// returns a well-formed result and never an error.
type Pipeline struct {
	remote    RemoteStrategy
	predictor StatisticalPredictor
	rules     *rules.Classifier
	cache     cache.AnalysisCache
	metrics   *prometheus.Metrics
	logger    logging.Logger

	// minConfidence gates statistical clause-type predictions; candidates at
	// or below the threshold are dropped.
	minConfidence float64
}

// NewPipeline assembles the orchestrator.  remote and predictor may be nil,
// in which case their tiers are skipped.
func NewPipeline(remote RemoteStrategy, predictor StatisticalPredictor, analysisCache cache.AnalysisCache,
	metrics *prometheus.Metrics, logger logging.Logger, minConfidence float64) *Pipeline {
	if analysisCache == nil {
		analysisCache = cache.NewNopCache()
	}
	if metrics == nil {
		metrics = prometheus.NewNopMetrics()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Pipeline{
		remote:        remote,
		predictor:     predictor,
		rules:         rules.NewClassifier(),
		cache:         analysisCache,
		metrics:       metrics,
		logger:        logger.Named("pipeline"),
		minConfidence: minConfidence,
	}
}

// Analyze runs the full pipeline on raw document text.  It never returns an
// error: every failure mode degrades to a lower tier and, in the last resort,
// to the demonstration analysis.
func (p *Pipeline) Analyze(ctx context.Context, text string) (analysis *legal.DocumentAnalysis) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline panicked, serving demo analysis",
				logging.Any("panic", r),
				logging.String("code", string(apperrors.ErrCodePipelineFault)))
			analysis = DemoAnalysis()
			p.metrics.ObserveAnalysis("demo", time.Since(start))
		}
	}()

	normalized := segment.NormalizeText(text)
	if len(strings.TrimSpace(normalized)) < legal.MinDocumentLen {
		p.logger.Info("input below minimum length, serving demo analysis",
			logging.Int("length", len(normalized)))
		analysis = DemoAnalysis()
		p.metrics.ObserveAnalysis("demo", time.Since(start))
		return analysis
	}

	if cached, ok := p.cache.Get(ctx, normalized); ok {
		p.metrics.CacheEvents.WithLabelValues("hit").Inc()
		return cached
	}
	p.metrics.CacheEvents.WithLabelValues("miss").Inc()

	if p.remote != nil && p.remote.Available() {
		p.metrics.StrategyAttempts.WithLabelValues(string(legal.StrategyRemote)).Inc()
		result, err := p.remote.AnalyzeWhole(ctx, normalized)
		if err == nil {
			return p.finish(ctx, normalized, result, start)
		}
		p.fallback(legal.StrategyRemote, err)
	}

	if p.statisticalReady() {
		p.metrics.StrategyAttempts.WithLabelValues(string(legal.StrategyStatistical)).Inc()
		result, err := p.analyzeStatistical(normalized)
		if err == nil {
			return p.finish(ctx, normalized, result, start)
		}
		p.fallback(legal.StrategyStatistical, err)
	}

	p.metrics.StrategyAttempts.WithLabelValues(string(legal.StrategyRule)).Inc()
	return p.finish(ctx, normalized, p.analyzeRule(normalized), start)
}

func (p *Pipeline) finish(ctx context.Context, normalized string, analysis *legal.DocumentAnalysis, start time.Time) *legal.DocumentAnalysis {
	p.cache.Set(ctx, normalized, analysis)
	p.metrics.ObserveAnalysis(string(analysis.Strategy), time.Since(start))
	return analysis
}

func (p *Pipeline) fallback(from legal.Strategy, err error) {
	reason := fallbackReason(err)
	p.metrics.StrategyFallbacks.WithLabelValues(string(from), reason).Inc()
	p.logger.Warn("strategy failed, falling back",
		logging.String("strategy", string(from)),
		logging.String("reason", reason),
		logging.Err(err))
}

// fallbackReason buckets an error into a bounded metric label.
func fallbackReason(err error) string {
	switch {
	case apperrors.IsCode(err, apperrors.ErrCodeStrategyUnavailable):
		return "unavailable"
	case apperrors.IsCode(err, apperrors.ErrCodeRemoteMalformed):
		return "malformed"
	case apperrors.IsCode(err, apperrors.ErrCodeModelNotLoaded):
		return "model_not_loaded"
	case apperrors.IsCode(err, apperrors.ErrCodeTimeout):
		return "timeout"
	default:
		return "error"
	}
}

// statisticalReady reports whether every model the statistical tier needs is
// loaded.  A partially loaded model set is treated as unavailable.
func (p *Pipeline) statisticalReady() bool {
	if p.predictor == nil {
		return false
	}
	return p.predictor.Available(modelstore.TaskDocType) &&
		p.predictor.Available(modelstore.TaskClauseType) &&
		p.predictor.Available(modelstore.TaskClauseRisk)
}

// analyzeStatistical classifies with the locally trained models.  Any
// prediction error fails the whole tier; low-confidence clause predictions
// are dropped individually.
func (p *Pipeline) analyzeStatistical(normalized string) (*legal.DocumentAnalysis, error) {
	docPred, err := p.predictor.PredictDocumentType(normalized)
	if err != nil {
		return nil, err
	}

	var clauses []legal.ClassifiedClause
	seen := make(map[string]bool)
	for _, cand := range segment.Segment(normalized) {
		typePred, err := p.predictor.PredictClauseType(cand.Text)
		if err != nil {
			return nil, err
		}
		if typePred.Confidence <= p.minConfidence {
			continue
		}
		riskPred, err := p.predictor.PredictClauseRisk(cand.Text)
		if err != nil {
			return nil, err
		}

		category := legal.ClauseCategory(typePred.Label)
		if !category.IsValid() {
			category = legal.CategoryGeneral
		}
		risk := legal.RiskLevel(riskPred.Label)
		if !risk.IsValid() {
			risk = legal.RiskMedium
		}

		clause := legal.ClassifiedClause{
			Type:           category,
			Content:        legal.TruncateContent(cand.Text),
			RiskLevel:      risk,
			Confidence:     typePred.Confidence,
			RiskConfidence: riskPred.Confidence,
			Explanation:    StatisticalExplanation(category, risk),
			Strategy:       legal.StrategyStatistical,
		}
		key := clause.Content
		if len(key) > 50 {
			key = key[:50]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		clauses = append(clauses, clause)
	}

	sort.SliceStable(clauses, func(i, j int) bool {
		return clauses[i].RiskLevel.Rank() < clauses[j].RiskLevel.Rank()
	})
	if len(clauses) > legal.MaxClauses {
		clauses = clauses[:legal.MaxClauses]
	}

	riskScore := StatisticalRiskScore(clauses)
	docType := docPred.Label

	analysis := &legal.DocumentAnalysis{
		Summary:                StatisticalSummary(docType, docPred.Confidence, clauses, riskScore),
		DocumentType:           docType,
		DocumentTypeConfidence: docPred.Confidence,
		Clauses:                clauses,
		KeyTerms:               ExtractKeyTerms(normalized),
		Parties:                ExtractParties(normalized),
		Dates:                  ExtractDates(normalized),
		Obligations:            ExtractObligations(normalized),
		Penalties:              ExtractPenalties(normalized),
		OverallRiskScore:       riskScore,
		Recommendations:        StatisticalRecommendations(clauses, riskScore, docType),
		ExpertSuggestions:      ExpertSuggestions(docType, clauses, riskScore),
		Strategy:               legal.StrategyStatistical,
	}
	return analysis, nil
}

// analyzeRule classifies with the deterministic pattern rules.  It cannot
// fail; thin results are backfilled by the classifier itself.
func (p *Pipeline) analyzeRule(normalized string) *legal.DocumentAnalysis {
	clauses := p.rules.ClassifyAll(segment.Segment(normalized))
	sort.SliceStable(clauses, func(i, j int) bool {
		return clauses[i].RiskLevel.Rank() < clauses[j].RiskLevel.Rank()
	})

	riskScore := RuleRiskScore(normalized, clauses)
	docType := IdentifyDocumentType(normalized)

	return &legal.DocumentAnalysis{
		Summary:           RuleSummary(docType, clauses),
		DocumentType:      docType,
		Clauses:           clauses,
		KeyTerms:          ExtractKeyTerms(normalized),
		Parties:           ExtractParties(normalized),
		Dates:             ExtractDates(normalized),
		Obligations:       ExtractObligations(normalized),
		Penalties:         ExtractPenalties(normalized),
		OverallRiskScore:  riskScore,
		Recommendations:   RuleRecommendations(clauses, riskScore),
		ExpertSuggestions: ExpertSuggestions(docType, clauses, riskScore),
		Strategy:          legal.StrategyRule,
	}
}
