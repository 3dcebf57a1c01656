package analyzer

import (
	"time"

	"github.com/premsagar786/LegalAI/internal/intelligence/rules"
	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

// demoRiskScore is the fixed score of the demonstration analysis.
const demoRiskScore = 40

// DemoAnalysis returns the fixed demonstration result served when the input
// is too short to classify or when every strategy has failed.  It is always
// marked Degraded so callers can tell it apart from a genuine analysis.
func DemoAnalysis() *legal.DocumentAnalysis {
	clauses := rules.DemoClauses()
	docType := "Service Agreement"

	analysis := &legal.DocumentAnalysis{
		Summary: "This appears to be a Service Agreement containing standard legal clauses. " +
			"The document includes provisions for liability limitation, termination, and confidentiality. " +
			"Please provide the full document text for a detailed analysis.",
		DocumentType: docType,
		Clauses:      clauses,
		KeyTerms: []legal.KeyTerm{
			{Term: "Effective Date", Definition: "The date when this agreement becomes active and binding"},
			{Term: "Parties", Definition: "The individuals or entities entering into this agreement"},
			{Term: "Term", Definition: "The duration for which this agreement remains in effect"},
		},
		Parties: []legal.Party{
			{Role: "Service Provider", Name: "Provider"},
			{Role: "Client", Name: "Client"},
		},
		Dates: legal.DateInfo{
			Effective: time.Now().Format("January 2, 2006"),
			Important: []legal.ImportantDate{
				{Description: "Agreement term: 12 months"},
			},
		},
		Obligations: []legal.Obligation{
			{Party: "Service Provider", Description: "Deliver services as specified in the agreement", Deadline: "As per schedule"},
			{Party: "Client", Description: "Make timely payments as per the payment terms", Deadline: "Within 15 days of invoice"},
		},
		Penalties: []legal.Penalty{
			{Condition: "Late payment", Consequence: "Interest of 1.5% per month", Severity: legal.RiskMedium},
			{Condition: "Early termination", Consequence: "Termination fee may apply", Severity: legal.RiskHigh},
		},
		OverallRiskScore: demoRiskScore,
		Recommendations: []string{
			"Provide the complete document text for a thorough analysis.",
			"Review the liability limitation clause carefully.",
			"Keep a signed copy of the agreement for your records.",
		},
		Strategy: legal.StrategyRule,
		Degraded: true,
	}
	analysis.ExpertSuggestions = ExpertSuggestions(docType, clauses, demoRiskScore)
	return analysis
}
