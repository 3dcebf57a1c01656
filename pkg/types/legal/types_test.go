package legal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampRiskScore(t *testing.T) {
	assert.Equal(t, MinRiskScore, ClampRiskScore(-5))
	assert.Equal(t, MinRiskScore, ClampRiskScore(0))
	assert.Equal(t, 50, ClampRiskScore(50))
	assert.Equal(t, MaxRiskScore, ClampRiskScore(120))
}

func TestTruncateContent(t *testing.T) {
	short := "brief clause"
	assert.Equal(t, short, TruncateContent(short))

	long := make([]byte, MaxClauseContentLen+50)
	for i := range long {
		long[i] = 'a'
	}
	truncated := TruncateContent(string(long))
	assert.Len(t, truncated, MaxClauseContentLen)
}

func TestRiskLevelRankOrdering(t *testing.T) {
	assert.Less(t, RiskHigh.Rank(), RiskMedium.Rank())
	assert.Less(t, RiskMedium.Rank(), RiskLow.Rank())
	assert.Greater(t, RiskLevel("bogus").Rank(), RiskLow.Rank())
}

func TestAllCategoriesExcludesGeneral(t *testing.T) {
	categories := AllCategories()
	assert.Len(t, categories, 10)
	for _, c := range categories {
		assert.NotEqual(t, CategoryGeneral, c)
		assert.True(t, c.IsValid())
	}
}

func TestClauseCategoryIsValid(t *testing.T) {
	assert.True(t, CategoryGeneral.IsValid())
	assert.False(t, ClauseCategory("Arbitrary").IsValid())
}

func validClause() ClassifiedClause {
	return ClassifiedClause{
		Type:       CategoryTermination,
		Content:    "Either party may terminate this agreement with 30 days notice.",
		RiskLevel:  RiskLow,
		Confidence: 1.0,
		Strategy:   StrategyRule,
	}
}

func TestClassifiedClauseValidate(t *testing.T) {
	c := validClause()
	require.NoError(t, c.Validate())

	bad := validClause()
	bad.Type = "Unknown"
	assert.Error(t, bad.Validate())

	bad = validClause()
	bad.RiskLevel = "severe"
	assert.Error(t, bad.Validate())

	bad = validClause()
	bad.Confidence = 1.2
	assert.Error(t, bad.Validate())

	bad = validClause()
	bad.Strategy = "psychic"
	assert.Error(t, bad.Validate())
}

func TestDocumentAnalysisValidate(t *testing.T) {
	a := DocumentAnalysis{
		OverallRiskScore: 45,
		Clauses: []ClassifiedClause{
			{Type: CategoryTermination, Content: "x", RiskLevel: RiskHigh, Confidence: 1, Strategy: StrategyRule},
			{Type: CategoryPaymentTerms, Content: "y", RiskLevel: RiskLow, Confidence: 1, Strategy: StrategyRule},
		},
	}
	require.NoError(t, a.Validate())
}

func TestDocumentAnalysisValidateRejectsScoreOutOfBounds(t *testing.T) {
	a := DocumentAnalysis{OverallRiskScore: 5}
	assert.Error(t, a.Validate())
	a.OverallRiskScore = 99
	assert.Error(t, a.Validate())
}

func TestDocumentAnalysisValidateRejectsUnsortedClauses(t *testing.T) {
	a := DocumentAnalysis{
		OverallRiskScore: 45,
		Clauses: []ClassifiedClause{
			{Type: CategoryTermination, Content: "x", RiskLevel: RiskLow, Confidence: 1, Strategy: StrategyRule},
			{Type: CategoryPaymentTerms, Content: "y", RiskLevel: RiskHigh, Confidence: 1, Strategy: StrategyRule},
		},
	}
	assert.Error(t, a.Validate())
}

func TestDocumentAnalysisValidateRejectsOverlongList(t *testing.T) {
	a := DocumentAnalysis{OverallRiskScore: 45}
	for i := 0; i < MaxClauses+1; i++ {
		a.Clauses = append(a.Clauses, validClause())
	}
	assert.Error(t, a.Validate())
}
