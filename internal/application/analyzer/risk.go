package analyzer

import (
	"strings"

	"github.com/premsagar786/LegalAI/internal/intelligence/rules"
	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

// Risk aggregation weights.  The rule path scores additively so more risky
// clauses raise the total; the statistical path averages severity weighted by
// the risk model's confidence.  The two formulas are intentionally kept
// separate per strategy and must not be unified.
const (
	ruleBaseScore           = 30
	ruleHighPatternWeight   = 10
	ruleMediumPatternWeight = 5
	ruleHighClauseWeight    = 8
	ruleMediumClauseWeight  = 4

	statEmptyScore    = 30
	statNoWeightScore = 40
	defaultRiskWeight = 0.5
)

// statRiskBase maps a risk level to its base score on the statistical path.
var statRiskBase = map[legal.RiskLevel]float64{
	legal.RiskHigh:   80,
	legal.RiskMedium: 50,
	legal.RiskLow:    20,
}

// RuleRiskScore computes the document score for rule-classified output:
// base score plus a fixed weight per risk pattern present in the full text
// plus a per-clause weight by risk level, clamped to the valid range.
func RuleRiskScore(text string, clauses []legal.ClassifiedClause) int {
	score := ruleBaseScore

	high, medium := rules.CountRiskSignals(strings.ToLower(text))
	score += high * ruleHighPatternWeight
	score += medium * ruleMediumPatternWeight

	for _, c := range clauses {
		switch c.RiskLevel {
		case legal.RiskHigh:
			score += ruleHighClauseWeight
		case legal.RiskMedium:
			score += ruleMediumClauseWeight
		}
	}
	return legal.ClampRiskScore(score)
}

// StatisticalRiskScore computes the document score for statistically
// classified output as the confidence-weighted average of per-clause risk
// base scores, clamped to the valid range.
func StatisticalRiskScore(clauses []legal.ClassifiedClause) int {
	if len(clauses) == 0 {
		return statEmptyScore
	}
	var totalScore, totalWeight float64
	for _, c := range clauses {
		base, ok := statRiskBase[c.RiskLevel]
		if !ok {
			base = statRiskBase[legal.RiskMedium]
		}
		weight := c.RiskConfidence
		if weight == 0 {
			weight = defaultRiskWeight
		}
		totalScore += base * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return legal.ClampRiskScore(statNoWeightScore)
	}
	return legal.ClampRiskScore(int(totalScore / totalWeight))
}
