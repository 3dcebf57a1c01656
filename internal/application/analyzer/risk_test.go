package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

func clause(risk legal.RiskLevel, riskConfidence float64) legal.ClassifiedClause {
	return legal.ClassifiedClause{
		Type:           legal.CategoryTermination,
		Content:        "Either party may terminate this agreement.",
		RiskLevel:      risk,
		Confidence:     1.0,
		RiskConfidence: riskConfidence,
		Strategy:       legal.StrategyRule,
	}
}

func TestRuleRiskScoreBase(t *testing.T) {
	assert.Equal(t, 30, RuleRiskScore("a plain document with no risk language", nil))
}

func TestRuleRiskScoreTextPatterns(t *testing.T) {
	// one high pattern (+10) and one medium pattern (+5)
	text := "the penalty applies and a cure period of ten days is granted"
	assert.Equal(t, 45, RuleRiskScore(text, nil))
}

func TestRuleRiskScoreClauseWeights(t *testing.T) {
	clauses := []legal.ClassifiedClause{
		clause(legal.RiskHigh, 0),
		clause(legal.RiskMedium, 0),
		clause(legal.RiskLow, 0),
	}
	// 30 + 8 + 4, low clauses add nothing
	assert.Equal(t, 42, RuleRiskScore("neutral text", clauses))
}

func TestRuleRiskScoreClampsAtCeiling(t *testing.T) {
	clauses := make([]legal.ClassifiedClause, 10)
	for i := range clauses {
		clauses[i] = clause(legal.RiskHigh, 0)
	}
	assert.Equal(t, legal.MaxRiskScore, RuleRiskScore("unlimited liability with penalty", clauses))
}

func TestStatisticalRiskScoreEmpty(t *testing.T) {
	assert.Equal(t, 30, StatisticalRiskScore(nil))
}

func TestStatisticalRiskScoreWeightedAverage(t *testing.T) {
	clauses := []legal.ClassifiedClause{
		clause(legal.RiskHigh, 0.8),
		clause(legal.RiskLow, 0.7),
	}
	// (80*0.8 + 20*0.7) / 1.5 = 52
	assert.Equal(t, 52, StatisticalRiskScore(clauses))
}

func TestStatisticalRiskScoreDefaultsMissingWeights(t *testing.T) {
	clauses := []legal.ClassifiedClause{clause(legal.RiskMedium, 0)}
	// zero confidence falls back to the default weight, score stays 50
	assert.Equal(t, 50, StatisticalRiskScore(clauses))
}

func TestStatisticalRiskScoreAllHigh(t *testing.T) {
	clauses := []legal.ClassifiedClause{
		clause(legal.RiskHigh, 1.0),
		clause(legal.RiskHigh, 1.0),
	}
	assert.Equal(t, 80, StatisticalRiskScore(clauses))
}

func TestStatisticalRiskScoreClampsFloor(t *testing.T) {
	clauses := []legal.ClassifiedClause{clause(legal.RiskLow, 1.0)}
	score := StatisticalRiskScore(clauses)
	assert.GreaterOrEqual(t, score, legal.MinRiskScore)
	assert.Equal(t, 20, score)
}
