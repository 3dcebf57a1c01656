package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premsagar786/LegalAI/internal/config"
	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

func chatServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func remoteConfig(baseURL string) config.RemoteConfig {
	return config.RemoteConfig{
		BaseURL:       baseURL,
		APIKey:        "sk-test",
		Model:         "gpt-4o-mini",
		Timeout:       5 * time.Second,
		MaxInputChars: 15000,
	}
}

func TestAnalyzeWholeParsesFencedResponse(t *testing.T) {
	payload := `{
		"summary": "A service agreement between two parties.",
		"documentType": "Service Agreement",
		"clauses": [
			{"type": "Liability", "content": "Unlimited liability applies.", "riskLevel": "HIGH", "explanation": "Exposure is unbounded."},
			{"type": "Termination", "content": "Thirty days notice.", "riskLevel": "low", "explanation": "Standard."}
		],
		"overallRiskScore": 120,
		"recommendations": ["Consult a lawyer."]
	}`
	srv := chatServer(t, "```json\n"+payload+"\n```", http.StatusOK)
	defer srv.Close()

	a := NewAnalyzer(remoteConfig(srv.URL), logging.NewNopLogger())
	analysis, err := a.AnalyzeWhole(context.Background(), "some legal document text that is long enough")
	require.NoError(t, err)

	assert.Equal(t, "Service Agreement", analysis.DocumentType)
	assert.Equal(t, legal.StrategyRemote, analysis.Strategy)
	assert.False(t, analysis.Degraded)
	assert.Equal(t, legal.MaxRiskScore, analysis.OverallRiskScore, "scores are clamped")

	require.Len(t, analysis.Clauses, 2)
	assert.Equal(t, legal.CategoryLiabilityLimitation, analysis.Clauses[0].Type, "partial names map onto the closed category set")
	assert.Equal(t, legal.RiskHigh, analysis.Clauses[0].RiskLevel)
	assert.Equal(t, legal.CategoryTermination, analysis.Clauses[1].Type)
	require.NoError(t, analysis.Validate())
}

func TestAnalyzeWholeMalformedYieldsDegradedAndError(t *testing.T) {
	srv := chatServer(t, "I am sorry, I cannot produce JSON today.", http.StatusOK)
	defer srv.Close()

	a := NewAnalyzer(remoteConfig(srv.URL), logging.NewNopLogger())
	analysis, err := a.AnalyzeWhole(context.Background(), "some legal document text")

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeRemoteMalformed))
	require.NotNil(t, analysis, "callers still receive a well-formed object")
	assert.True(t, analysis.Degraded)
	assert.Contains(t, analysis.Summary, "cannot produce JSON")
	require.NoError(t, analysis.Validate())
}

func TestAnalyzeWholeServerErrorIsUnavailable(t *testing.T) {
	srv := chatServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	a := NewAnalyzer(remoteConfig(srv.URL), logging.NewNopLogger())
	_, err := a.AnalyzeWhole(context.Background(), "some legal document text")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestAnalyzeWholeWithoutCredentials(t *testing.T) {
	a := NewAnalyzer(config.RemoteConfig{}, logging.NewNopLogger())
	assert.False(t, a.Available())

	_, err := a.AnalyzeWhole(context.Background(), "text")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeStrategyUnavailable))
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
}

func TestBuildPromptTruncates(t *testing.T) {
	p := BuildPrompt("abcdefghij", 4)
	assert.Contains(t, p, "abcd")
	assert.NotContains(t, p, "abcde")
}

func TestNormalizeRiskDefaultsToMedium(t *testing.T) {
	assert.Equal(t, legal.RiskHigh, normalizeRisk(" High "))
	assert.Equal(t, legal.RiskLow, normalizeRisk("low"))
	assert.Equal(t, legal.RiskMedium, normalizeRisk("critical"))
}
