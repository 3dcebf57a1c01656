// Package legal defines the shared data model of the clause-analysis
// pipeline.  The JSON field names of DocumentAnalysis and everything it
// embeds form the module's external contract and must stay stable; upstream
// services deserialize these structures verbatim.
package legal

import "fmt"

// ---------------------------------------------------------------------------
// ClauseCategory
// ---------------------------------------------------------------------------

// ClauseCategory is the closed set of clause types the pipeline can assign.
type ClauseCategory string

const (
	CategoryTermination          ClauseCategory = "Termination"
	CategoryLiabilityLimitation  ClauseCategory = "Liability Limitation"
	CategoryConfidentiality      ClauseCategory = "Confidentiality"
	CategoryPaymentTerms         ClauseCategory = "Payment Terms"
	CategoryIndemnification      ClauseCategory = "Indemnification"
	CategoryNonCompete           ClauseCategory = "Non-Compete"
	CategoryIntellectualProperty ClauseCategory = "Intellectual Property"
	CategoryGoverningLaw         ClauseCategory = "Governing Law"
	CategoryDisputeResolution    ClauseCategory = "Dispute Resolution"
	CategoryForceMajeure         ClauseCategory = "Force Majeure"
	CategoryGeneral              ClauseCategory = "General"
)

// AllCategories returns every category except General, in the fixed order
// used for pattern iteration and label encoding.
func AllCategories() []ClauseCategory {
	return []ClauseCategory{
		CategoryTermination,
		CategoryLiabilityLimitation,
		CategoryConfidentiality,
		CategoryPaymentTerms,
		CategoryIndemnification,
		CategoryNonCompete,
		CategoryIntellectualProperty,
		CategoryGoverningLaw,
		CategoryDisputeResolution,
		CategoryForceMajeure,
	}
}

// IsValid reports whether the category is a member of the closed enumeration.
func (c ClauseCategory) IsValid() bool {
	switch c {
	case CategoryTermination, CategoryLiabilityLimitation, CategoryConfidentiality,
		CategoryPaymentTerms, CategoryIndemnification, CategoryNonCompete,
		CategoryIntellectualProperty, CategoryGoverningLaw,
		CategoryDisputeResolution, CategoryForceMajeure, CategoryGeneral:
		return true
	default:
		return false
	}
}

// ---------------------------------------------------------------------------
// RiskLevel
// ---------------------------------------------------------------------------

// RiskLevel is the ordinal severity of a clause's skew against the document
// holder.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// IsValid reports whether the level is one of the three defined values.
func (r RiskLevel) IsValid() bool {
	return r == RiskHigh || r == RiskMedium || r == RiskLow
}

// Rank orders risk levels for sorting: high=0, medium=1, low=2.  Unknown
// levels sort last.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 0
	case RiskMedium:
		return 1
	case RiskLow:
		return 2
	default:
		return 3
	}
}

// ---------------------------------------------------------------------------
// Strategy
// ---------------------------------------------------------------------------

// Strategy identifies which classification strategy produced a result.
type Strategy string

const (
	StrategyRemote      Strategy = "remote"
	StrategyStatistical Strategy = "statistical"
	StrategyRule        Strategy = "rule"
)

func (s Strategy) String() string { return string(s) }

// IsValid reports whether the strategy is a known variant.
func (s Strategy) IsValid() bool {
	return s == StrategyRemote || s == StrategyStatistical || s == StrategyRule
}

// ---------------------------------------------------------------------------
// Pipeline bounds
// ---------------------------------------------------------------------------

const (
	// MinRiskScore and MaxRiskScore bound overallRiskScore.
	MinRiskScore = 10
	MaxRiskScore = 95

	// MaxClauses caps the clause list returned to callers.
	MaxClauses = 10

	// MaxClauseContentLen caps ClassifiedClause.Content.
	MaxClauseContentLen = 300

	// MinDocumentLen is the shortest input the pipeline will classify;
	// anything shorter short-circuits to the demo analysis.
	MinDocumentLen = 50
)

// ClampRiskScore forces a raw score into [MinRiskScore, MaxRiskScore].
func ClampRiskScore(score int) int {
	if score < MinRiskScore {
		return MinRiskScore
	}
	if score > MaxRiskScore {
		return MaxRiskScore
	}
	return score
}

// TruncateContent trims clause content to MaxClauseContentLen without
// splitting the contract that content is a prefix of the source span.
func TruncateContent(s string) string {
	if len(s) <= MaxClauseContentLen {
		return s
	}
	return s[:MaxClauseContentLen]
}

// ---------------------------------------------------------------------------
// ClauseCandidate
// ---------------------------------------------------------------------------

// ClauseCandidate is a text span emitted by segmentation and consumed
// immediately by a classifier.  SourceOffset is the byte offset of the span
// in the original document.
type ClauseCandidate struct {
	Text         string `json:"text"`
	SourceOffset int    `json:"sourceOffset"`
}

// ---------------------------------------------------------------------------
// ClassifiedClause
// ---------------------------------------------------------------------------

// ClassifiedClause is the normalized output shape shared by all three
// classification strategies.  Content is a verbatim substring (or prefix
// truncation) of the source document.  Confidence is 1.0 for rule-based
// results, which have no probabilistic basis.
type ClassifiedClause struct {
	Type        ClauseCategory `json:"type"`
	Content     string         `json:"content"`
	RiskLevel   RiskLevel      `json:"riskLevel"`
	Confidence  float64        `json:"confidence"`
	// RiskConfidence is the risk model's own confidence; zero on the rule
	// path where risk is deterministic.
	RiskConfidence float64  `json:"riskConfidence,omitempty"`
	Explanation    string   `json:"explanation"`
	Strategy       Strategy `json:"strategy"`
}

// Validate checks the invariants every strategy must uphold before a clause
// enters the final list.
func (c *ClassifiedClause) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid clause category %q", c.Type)
	}
	if !c.RiskLevel.IsValid() {
		return fmt.Errorf("invalid risk level %q", c.RiskLevel)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("confidence %v outside [0,1]", c.Confidence)
	}
	if len(c.Content) > MaxClauseContentLen {
		return fmt.Errorf("content length %d exceeds %d", len(c.Content), MaxClauseContentLen)
	}
	if !c.Strategy.IsValid() {
		return fmt.Errorf("invalid strategy %q", c.Strategy)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Supporting record types
// ---------------------------------------------------------------------------

// KeyTerm is a defined term extracted from the document.
type KeyTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Party is a contracting party and its role.
type Party struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// ImportantDate is a dated event other than the effective/expiry dates.
type ImportantDate struct {
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
}

// DateInfo groups the document's temporal anchors.  Effective and Expiry are
// raw date strings as found in the text; no normalization is attempted.
type DateInfo struct {
	Effective string          `json:"effective,omitempty"`
	Expiry    string          `json:"expiry,omitempty"`
	Important []ImportantDate `json:"important"`
}

// Obligation is a duty one party owes under the agreement.
type Obligation struct {
	Party       string `json:"party"`
	Description string `json:"description"`
	Deadline    string `json:"deadline,omitempty"`
}

// Penalty is a consequence attached to a triggering condition.
type Penalty struct {
	Condition   string    `json:"condition"`
	Consequence string    `json:"consequence"`
	Severity    RiskLevel `json:"severity"`
}

// ExpertSuggestions carries the three categories of expert guidance.
type ExpertSuggestions struct {
	NegotiationPoints []string `json:"negotiationPoints"`
	DraftingTips      []string `json:"draftingTips"`
	LegalTraps        []string `json:"legalTraps"`
}

// ---------------------------------------------------------------------------
// DocumentAnalysis
// ---------------------------------------------------------------------------

// DocumentAnalysis is the pipeline's sole externally visible artifact.  It is
// created once per analysis request, immutable after construction, and owned
// solely by the caller.
type DocumentAnalysis struct {
	Summary      string    `json:"summary"`
	DocumentType string    `json:"documentType"`
	// DocumentTypeConfidence is populated only on the statistical path.
	DocumentTypeConfidence float64            `json:"documentTypeConfidence,omitempty"`
	Clauses                []ClassifiedClause `json:"clauses"`
	KeyTerms               []KeyTerm          `json:"keyTerms"`
	Parties                []Party            `json:"parties"`
	Dates                  DateInfo           `json:"dates"`
	Obligations            []Obligation       `json:"obligations"`
	Penalties              []Penalty          `json:"penalties"`
	OverallRiskScore       int                `json:"overallRiskScore"`
	Recommendations        []string           `json:"recommendations"`
	ExpertSuggestions      ExpertSuggestions  `json:"expertSuggestions"`

	// Strategy names the classification strategy that produced the result.
	Strategy Strategy `json:"strategy"`

	// Degraded marks demo/fallback results so callers can distinguish an
	// operator-facing degradation from a genuine analysis.  Degradation is
	// signalled here, never by absent fields.
	Degraded bool `json:"degraded"`
}

// Validate checks the aggregate invariants of a finished analysis.
func (a *DocumentAnalysis) Validate() error {
	if a.OverallRiskScore < MinRiskScore || a.OverallRiskScore > MaxRiskScore {
		return fmt.Errorf("overallRiskScore %d outside [%d,%d]", a.OverallRiskScore, MinRiskScore, MaxRiskScore)
	}
	if len(a.Clauses) > MaxClauses {
		return fmt.Errorf("clause list length %d exceeds %d", len(a.Clauses), MaxClauses)
	}
	for i := range a.Clauses {
		if err := a.Clauses[i].Validate(); err != nil {
			return fmt.Errorf("clause %d: %w", i, err)
		}
	}
	for i := 1; i < len(a.Clauses); i++ {
		if a.Clauses[i-1].RiskLevel.Rank() > a.Clauses[i].RiskLevel.Rank() {
			return fmt.Errorf("clauses not sorted by risk at index %d", i)
		}
	}
	return nil
}
