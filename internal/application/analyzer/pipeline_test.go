package analyzer

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	"github.com/premsagar786/LegalAI/internal/infrastructure/storage/modelstore"
	"github.com/premsagar786/LegalAI/internal/intelligence/statml"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

const sampleDoc = `This Service Agreement is entered into between Acme Corp ("Provider") and Beta LLC ("Client"). The Provider shall deliver consulting services to the Client as described in Exhibit A. The Client shall pay all fees within 30 days of invoice, and late payment will incur interest of 1.5% per month. Either party may terminate this agreement with 30 days written notice. Both parties agree to maintain confidentiality of all proprietary information disclosed under this agreement. The Provider's liability shall be limited to the fees paid in the preceding twelve months.`

// ---------------------------------------------------------------------------
// mocks
// ---------------------------------------------------------------------------

type mockRemote struct {
	available bool
	calls     int
	fn        func(ctx context.Context, text string) (*legal.DocumentAnalysis, error)
}

func (m *mockRemote) Available() bool { return m.available }

func (m *mockRemote) AnalyzeWhole(ctx context.Context, text string) (*legal.DocumentAnalysis, error) {
	m.calls++
	return m.fn(ctx, text)
}

type mockPredictor struct {
	loaded     bool
	docType    func(text string) (*statml.Prediction, error)
	clauseType func(text string) (*statml.Prediction, error)
	clauseRisk func(text string) (*statml.Prediction, error)
}

func (m *mockPredictor) Available(task string) bool { return m.loaded }

func (m *mockPredictor) PredictDocumentType(text string) (*statml.Prediction, error) {
	return m.docType(text)
}

func (m *mockPredictor) PredictClauseType(text string) (*statml.Prediction, error) {
	return m.clauseType(text)
}

func (m *mockPredictor) PredictClauseRisk(text string) (*statml.Prediction, error) {
	return m.clauseRisk(text)
}

type mapCache struct {
	entries map[string]*legal.DocumentAnalysis
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]*legal.DocumentAnalysis{}}
}

func (c *mapCache) Get(_ context.Context, text string) (*legal.DocumentAnalysis, bool) {
	a, ok := c.entries[text]
	return a, ok
}

func (c *mapCache) Set(_ context.Context, text string, a *legal.DocumentAnalysis) {
	c.entries[text] = a
}

func newTestPipeline(remote RemoteStrategy, predictor StatisticalPredictor) *Pipeline {
	return NewPipeline(remote, predictor, nil, nil, logging.NewNopLogger(), 0.3)
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestAnalyzeShortInputServesDemo(t *testing.T) {
	p := newTestPipeline(nil, nil)
	analysis := p.Analyze(context.Background(), "too short")

	assert.True(t, analysis.Degraded)
	assert.Equal(t, "Service Agreement", analysis.DocumentType)
	assert.Equal(t, 40, analysis.OverallRiskScore)
	assert.Equal(t, legal.StrategyRule, analysis.Strategy)
	assert.GreaterOrEqual(t, len(analysis.Clauses), 3)
	require.NoError(t, analysis.Validate())
}

func TestAnalyzeRemoteResultWins(t *testing.T) {
	want := &legal.DocumentAnalysis{
		Summary:          "remote summary",
		DocumentType:     "Service Agreement",
		OverallRiskScore: 55,
		Strategy:         legal.StrategyRemote,
	}
	remote := &mockRemote{available: true, fn: func(context.Context, string) (*legal.DocumentAnalysis, error) {
		return want, nil
	}}

	p := newTestPipeline(remote, nil)
	got := p.Analyze(context.Background(), sampleDoc)

	assert.Equal(t, 1, remote.calls)
	assert.Same(t, want, got)
}

func TestAnalyzeRemoteFailureFallsBackToRule(t *testing.T) {
	remote := &mockRemote{available: true, fn: func(context.Context, string) (*legal.DocumentAnalysis, error) {
		return nil, apperrors.New(apperrors.ErrCodeStrategyUnavailable, "remote down")
	}}

	p := newTestPipeline(remote, nil)
	analysis := p.Analyze(context.Background(), sampleDoc)

	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, legal.StrategyRule, analysis.Strategy)
	assert.False(t, analysis.Degraded)
	assert.NotEmpty(t, analysis.Clauses)
	require.NoError(t, analysis.Validate())
}

func TestAnalyzeRemoteMalformedFallsBack(t *testing.T) {
	degraded := &legal.DocumentAnalysis{
		Summary:          "raw unparseable output",
		DocumentType:     "Legal Agreement",
		OverallRiskScore: 50,
		Strategy:         legal.StrategyRemote,
		Degraded:         true,
	}
	remote := &mockRemote{available: true, fn: func(context.Context, string) (*legal.DocumentAnalysis, error) {
		return degraded, apperrors.New(apperrors.ErrCodeRemoteMalformed, "response is not json")
	}}

	p := newTestPipeline(remote, nil)
	analysis := p.Analyze(context.Background(), sampleDoc)

	assert.Equal(t, legal.StrategyRule, analysis.Strategy)
	assert.NotEmpty(t, analysis.Clauses)
	require.NoError(t, analysis.Validate())
}

func TestAnalyzeStatisticalPath(t *testing.T) {
	predictor := &mockPredictor{
		loaded: true,
		docType: func(string) (*statml.Prediction, error) {
			return &statml.Prediction{Label: "Service Agreement", Confidence: 0.85}, nil
		},
		clauseType: func(text string) (*statml.Prediction, error) {
			lower := strings.ToLower(text)
			switch {
			case strings.Contains(lower, "terminate"):
				return &statml.Prediction{Label: "Termination", Confidence: 0.9}, nil
			case strings.Contains(lower, "confidential"):
				return &statml.Prediction{Label: "Confidentiality", Confidence: 0.2}, nil
			default:
				return &statml.Prediction{Label: "Payment Terms", Confidence: 0.6}, nil
			}
		},
		clauseRisk: func(text string) (*statml.Prediction, error) {
			if strings.Contains(strings.ToLower(text), "terminate") {
				return &statml.Prediction{Label: "high", Confidence: 0.8}, nil
			}
			return &statml.Prediction{Label: "low", Confidence: 0.7}, nil
		},
	}

	p := newTestPipeline(nil, predictor)
	analysis := p.Analyze(context.Background(), sampleDoc)

	assert.Equal(t, legal.StrategyStatistical, analysis.Strategy)
	assert.Equal(t, "Service Agreement", analysis.DocumentType)
	assert.InDelta(t, 0.85, analysis.DocumentTypeConfidence, 1e-9)

	// the confidentiality candidate sits below the 0.3 gate and is dropped
	require.Len(t, analysis.Clauses, 3)
	for _, c := range analysis.Clauses {
		assert.NotEqual(t, legal.CategoryConfidentiality, c.Type)
	}
	assert.Equal(t, legal.CategoryTermination, analysis.Clauses[0].Type, "high risk sorts first")
	assert.Equal(t, legal.RiskHigh, analysis.Clauses[0].RiskLevel)

	// (80*0.8 + 20*0.7 + 20*0.7) / 2.2
	assert.Equal(t, 41, analysis.OverallRiskScore)
	require.NoError(t, analysis.Validate())
}

func TestAnalyzeStatisticalErrorFallsBackToRule(t *testing.T) {
	predictor := &mockPredictor{
		loaded: true,
		docType: func(string) (*statml.Prediction, error) {
			return nil, apperrors.NewModelNotLoadedError(modelstore.TaskDocType)
		},
	}

	p := newTestPipeline(nil, predictor)
	analysis := p.Analyze(context.Background(), sampleDoc)

	assert.Equal(t, legal.StrategyRule, analysis.Strategy)
	require.NoError(t, analysis.Validate())
}

func TestAnalyzeRuleGuaranteesClauseFloor(t *testing.T) {
	// long enough to classify but with almost no recognizable clauses
	doc := strings.Repeat("The parties shall review the schedule attached hereto from time to time. ", 3)

	p := newTestPipeline(nil, nil)
	analysis := p.Analyze(context.Background(), doc)

	assert.Equal(t, legal.StrategyRule, analysis.Strategy)
	assert.GreaterOrEqual(t, len(analysis.Clauses), 3)
	require.NoError(t, analysis.Validate())
}

func TestAnalyzeRulePathIsIdempotent(t *testing.T) {
	p := newTestPipeline(nil, nil)
	first := p.Analyze(context.Background(), sampleDoc)
	second := p.Analyze(context.Background(), sampleDoc)
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestAnalyzeUnlimitedLiabilityRaisesScore(t *testing.T) {
	p := newTestPipeline(nil, nil)
	baseline := p.Analyze(context.Background(), sampleDoc)

	risky := sampleDoc + ` The Provider may terminate this agreement at its sole discretion, and the Client shall bear unlimited liability for all damages.`
	analysis := p.Analyze(context.Background(), risky)

	assert.Greater(t, analysis.OverallRiskScore, baseline.OverallRiskScore)
	highCount := 0
	for _, c := range analysis.Clauses {
		if c.RiskLevel == legal.RiskHigh {
			highCount++
		}
	}
	assert.GreaterOrEqual(t, highCount, 1)
	require.NoError(t, analysis.Validate())
}

func TestAnalyzePanicServesDemo(t *testing.T) {
	remote := &mockRemote{available: true, fn: func(context.Context, string) (*legal.DocumentAnalysis, error) {
		panic("remote exploded")
	}}

	p := newTestPipeline(remote, nil)
	analysis := p.Analyze(context.Background(), sampleDoc)

	assert.True(t, analysis.Degraded)
	assert.Equal(t, "Service Agreement", analysis.DocumentType)
	require.NoError(t, analysis.Validate())
}

func TestAnalyzeCacheHitSkipsStrategies(t *testing.T) {
	cached := &legal.DocumentAnalysis{
		Summary:          "cached",
		DocumentType:     "Service Agreement",
		OverallRiskScore: 42,
		Strategy:         legal.StrategyRule,
	}
	c := newMapCache()
	c.entries[sampleDoc] = cached

	remote := &mockRemote{available: true, fn: func(context.Context, string) (*legal.DocumentAnalysis, error) {
		t.Fatal("remote must not be called on a cache hit")
		return nil, nil
	}}

	p := NewPipeline(remote, nil, c, nil, logging.NewNopLogger(), 0.3)
	got := p.Analyze(context.Background(), sampleDoc)

	assert.Same(t, cached, got)
	assert.Equal(t, 0, remote.calls)
}

func TestAnalyzeStoresResultInCache(t *testing.T) {
	c := newMapCache()
	p := NewPipeline(nil, nil, c, nil, logging.NewNopLogger(), 0.3)

	analysis := p.Analyze(context.Background(), sampleDoc)
	stored, ok := c.entries[sampleDoc]
	require.True(t, ok)
	assert.Same(t, analysis, stored)
}
