package rules

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

func candidate(text string) legal.ClauseCandidate {
	return legal.ClauseCandidate{Text: text}
}

func TestClassifyTerminationNotice(t *testing.T) {
	c := NewClassifier()
	clause := c.Classify(candidate("Either party may terminate this agreement with 30 days written notice."))

	assert.Equal(t, legal.CategoryTermination, clause.Type)
	assert.Equal(t, legal.RiskLow, clause.RiskLevel)
	assert.Equal(t, 1.0, clause.Confidence)
	assert.Equal(t, legal.StrategyRule, clause.Strategy)
	assert.NotEmpty(t, clause.Explanation)
}

func TestClassifyFirstMatchWins(t *testing.T) {
	c := NewClassifier()

	// Mentions both liability and termination; Liability Limitation comes
	// first in the table and must win.
	clause := c.Classify(candidate("The maximum liability survives termination of this agreement."))
	assert.Equal(t, legal.CategoryLiabilityLimitation, clause.Type)
}

func TestClassifyUnmatchedIsGeneral(t *testing.T) {
	c := NewClassifier()
	clause := c.Classify(candidate("The parties met for lunch at noon on Tuesday to discuss the weather."))
	assert.Equal(t, legal.CategoryGeneral, clause.Type)
	assert.Equal(t, legal.RiskLow, clause.RiskLevel)
}

func TestAssessRiskOrdering(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name     string
		content  string
		category legal.ClauseCategory
		want     legal.RiskLevel
	}{
		{"high pattern", "The contractor accepts unlimited liability for all damages.", legal.CategoryLiabilityLimitation, legal.RiskHigh},
		{"high beats medium", "Unlimited liability applies even after the cure period ends.", legal.CategoryGeneral, legal.RiskHigh},
		{"medium pattern", "A cure period of ten days applies to any default.", legal.CategoryTermination, legal.RiskMedium},
		{"category default medium", "Provider shall indemnify the client for all losses.", legal.CategoryIndemnification, legal.RiskMedium},
		{"default low", "Payment is due within thirty days of invoice.", legal.CategoryPaymentTerms, legal.RiskLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.AssessRisk(tt.content, tt.category))
		})
	}
}

func TestClassifyAllDeduplicates(t *testing.T) {
	c := NewClassifier()
	text := "The provider shall indemnify and hold harmless the client against all third-party claims."
	candidates := []legal.ClauseCandidate{candidate(text), candidate(text)}

	clauses := c.ClassifyAll(candidates)
	count := 0
	for _, cl := range clauses {
		if cl.Type == legal.CategoryIndemnification {
			count++
		}
	}
	assert.Equal(t, 1, count, "duplicate candidates must collapse to one clause")
}

func TestClassifyAllBackfillsToFloor(t *testing.T) {
	c := NewClassifier()
	clauses := c.ClassifyAll(nil)
	require.Len(t, clauses, MinClauseFloor)
	for _, cl := range clauses {
		assert.Equal(t, legal.StrategyRule, cl.Strategy)
		assert.Equal(t, 1.0, cl.Confidence)
	}
}

func TestClassifyAllIsIdempotent(t *testing.T) {
	c := NewClassifier()
	candidates := []legal.ClauseCandidate{
		candidate("Either party may terminate this agreement with 30 days written notice."),
		candidate("All proprietary information must be kept confidential for five years."),
	}

	first := c.ClassifyAll(candidates)
	second := c.ClassifyAll(candidates)
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestCountRiskSignals(t *testing.T) {
	high, medium := CountRiskSignals("unlimited liability applies and early termination requires advance notice")
	assert.Equal(t, 1, high)
	assert.Equal(t, 2, medium)
}

func TestClausePatternOrderIsStable(t *testing.T) {
	want := []legal.ClauseCategory{
		legal.CategoryLiabilityLimitation,
		legal.CategoryIndemnification,
		legal.CategoryTermination,
		legal.CategoryConfidentiality,
		legal.CategoryNonCompete,
		legal.CategoryIntellectualProperty,
		legal.CategoryPaymentTerms,
		legal.CategoryGoverningLaw,
		legal.CategoryDisputeResolution,
		legal.CategoryForceMajeure,
	}
	got := make([]legal.ClauseCategory, len(ClausePatterns))
	for i, cp := range ClausePatterns {
		got[i] = cp.Category
	}
	assert.Equal(t, want, got)
}
