package rules

import (
	"strings"

	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

const (
	// dedupPrefixLen is the number of leading characters compared when
	// rejecting near-duplicate clauses.
	dedupPrefixLen = 50

	// MinClauseFloor is the guaranteed minimum clause count; shortfalls are
	// backfilled with the demonstration set.
	MinClauseFloor = 3
)

// Classifier is the deterministic pattern-based clause classifier.  It is
// stateless and always available; two runs on the same input produce
// identical output.
type Classifier struct{}

// NewClassifier returns the rule-based classifier.
func NewClassifier() *Classifier { return &Classifier{} }

// Classify labels one candidate.  The first category whose pattern list
// matches wins; candidates matching nothing are labelled General.
// Confidence is always 1.0 since pattern hits have no probabilistic basis.
func (c *Classifier) Classify(candidate legal.ClauseCandidate) legal.ClassifiedClause {
	lower := strings.ToLower(candidate.Text)

	category := legal.CategoryGeneral
	for _, cp := range ClausePatterns {
		matched := false
		for _, p := range cp.Patterns {
			if p.MatchString(lower) {
				matched = true
				break
			}
		}
		if matched {
			category = cp.Category
			break
		}
	}

	risk := c.AssessRisk(candidate.Text, category)
	return legal.ClassifiedClause{
		Type:        category,
		Content:     legal.TruncateContent(candidate.Text),
		RiskLevel:   risk,
		Confidence:  1.0,
		Explanation: Explain(category, risk),
		Strategy:    legal.StrategyRule,
	}
}

// AssessRisk grades a clause.  High patterns are checked first, then medium;
// with no textual match the category's default applies: Non-Compete,
// Liability Limitation and Indemnification escalate to medium, everything
// else is low.
func (c *Classifier) AssessRisk(content string, category legal.ClauseCategory) legal.RiskLevel {
	lower := strings.ToLower(content)
	for _, p := range HighRiskPatterns {
		if p.MatchString(lower) {
			return legal.RiskHigh
		}
	}
	for _, p := range MediumRiskPatterns {
		if p.MatchString(lower) {
			return legal.RiskMedium
		}
	}
	if mediumByDefault[category] {
		return legal.RiskMedium
	}
	return legal.RiskLow
}

// ClassifyAll classifies candidates in document order, dropping General
// results and near-duplicates, then backfills with demonstration clauses if
// fewer than MinClauseFloor survive.  The returned list is capped at the
// pipeline clause limit but not yet risk-sorted; ordering by risk is the
// orchestrator's job.
func (c *Classifier) ClassifyAll(candidates []legal.ClauseCandidate) []legal.ClassifiedClause {
	var clauses []legal.ClassifiedClause
	seen := make(map[string]bool)

	for _, cand := range candidates {
		clause := c.Classify(cand)
		if clause.Type == legal.CategoryGeneral {
			continue
		}
		key := clause.Content
		if len(key) > dedupPrefixLen {
			key = key[:dedupPrefixLen]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		clauses = append(clauses, clause)
		if len(clauses) >= legal.MaxClauses {
			break
		}
	}

	if len(clauses) < MinClauseFloor {
		for _, demo := range DemoClauses() {
			if len(clauses) >= MinClauseFloor {
				break
			}
			key := demo.Content
			if len(key) > dedupPrefixLen {
				key = key[:dedupPrefixLen]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			clauses = append(clauses, demo)
		}
	}
	return clauses
}

// DemoClauses returns the fixed demonstration clause set used to backfill
// thin results and to build the degraded demo analysis.
func DemoClauses() []legal.ClassifiedClause {
	return []legal.ClassifiedClause{
		{
			Type:        legal.CategoryLiabilityLimitation,
			Content:     "The service provider shall not be liable for indirect, incidental, or consequential damages.",
			RiskLevel:   legal.RiskMedium,
			Confidence:  1.0,
			Explanation: "This clause limits what you can claim if something goes wrong.",
			Strategy:    legal.StrategyRule,
		},
		{
			Type:        legal.CategoryTermination,
			Content:     "Either party may terminate this agreement with 30 days written notice.",
			RiskLevel:   legal.RiskLow,
			Confidence:  1.0,
			Explanation: "Standard termination clause with reasonable notice period.",
			Strategy:    legal.StrategyRule,
		},
		{
			Type:        legal.CategoryConfidentiality,
			Content:     "Both parties agree to maintain confidentiality of all proprietary information.",
			RiskLevel:   legal.RiskLow,
			Confidence:  1.0,
			Explanation: "Standard confidentiality clause to protect sensitive information.",
			Strategy:    legal.StrategyRule,
		},
	}
}
