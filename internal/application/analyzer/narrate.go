package analyzer

import (
	"fmt"
	"strings"

	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

// maxRecommendations bounds the recommendation list on every path.
const maxRecommendations = 6

// RuleSummary narrates rule-classified output.
func RuleSummary(docType string, clauses []legal.ClassifiedClause) string {
	var types []string
	for _, c := range clauses {
		types = append(types, string(c.Type))
		if len(types) == 3 {
			break
		}
	}
	highCount := 0
	for _, c := range clauses {
		if c.RiskLevel == legal.RiskHigh {
			highCount++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This appears to be a %s. ", docType)
	fmt.Fprintf(&b, "The document contains %d identifiable clauses including: %s. ",
		len(clauses), strings.Join(types, ", "))
	if highCount > 0 {
		fmt.Fprintf(&b, "There are %d clauses that require careful review before signing.", highCount)
	} else {
		b.WriteString("The document appears to contain standard legal provisions.")
	}
	return b.String()
}

// StatisticalSummary narrates statistically classified output, including the
// document-type confidence and an overall assessment band.
func StatisticalSummary(docType string, docTypeConfidence float64, clauses []legal.ClassifiedClause, riskScore int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This document is classified as a %s (confidence: %.0f%%). ", docType, docTypeConfidence*100)

	if len(clauses) > 0 {
		highCount := 0
		for _, c := range clauses {
			if c.RiskLevel == legal.RiskHigh {
				highCount++
			}
		}
		fmt.Fprintf(&b, "The analysis identified %d key clauses. ", len(clauses))
		if highCount > 0 {
			fmt.Fprintf(&b, "%d clause(s) are classified as high-risk and require careful review. ", highCount)
		} else {
			b.WriteString("The clauses appear to contain standard legal provisions. ")
		}
	}

	switch {
	case riskScore > 60:
		b.WriteString("Overall risk assessment: HIGH - Professional legal review recommended.")
	case riskScore > 40:
		b.WriteString("Overall risk assessment: MEDIUM - Review highlighted clauses carefully.")
	default:
		b.WriteString("Overall risk assessment: LOW - Standard agreement terms.")
	}
	return b.String()
}

// StatisticalExplanation produces the per-clause note on the statistical
// path, embedding the predicted risk level.  Every note carries an
// "(ML-classified)" marker so readers can tell model output from rule output.
func StatisticalExplanation(category legal.ClauseCategory, risk legal.RiskLevel) string {
	level := strings.ToUpper(string(risk))
	var note string
	switch category {
	case legal.CategoryTermination:
		note = fmt.Sprintf("This clause governs how the agreement can be ended. Risk level: %s. Review notice periods and any penalties.", level)
	case legal.CategoryLiabilityLimitation:
		note = fmt.Sprintf("This limits potential damages you can claim. Risk: %s. Ensure the limitation is reasonable.", level)
	case legal.CategoryConfidentiality:
		note = fmt.Sprintf("Restricts sharing of sensitive information. Risk: %s. Check what's covered and for how long.", level)
	case legal.CategoryPaymentTerms:
		note = fmt.Sprintf("Defines payment obligations. Risk: %s. Note due dates and any late payment penalties.", level)
	case legal.CategoryIndemnification:
		note = fmt.Sprintf("You may be required to cover certain costs or damages. Risk: %s. Understand what triggers this.", level)
	case legal.CategoryNonCompete:
		note = fmt.Sprintf("Restricts future work opportunities. Risk: %s. Negotiate scope and duration if possible.", level)
	case legal.CategoryIntellectualProperty:
		note = fmt.Sprintf("Defines ownership of created work. Risk: %s. Important if creating anything new.", level)
	case legal.CategoryGoverningLaw:
		note = fmt.Sprintf("Determines applicable laws and jurisdiction. Risk: %s. May affect legal remedies.", level)
	case legal.CategoryDisputeResolution:
		note = fmt.Sprintf("Specifies how disagreements are handled. Risk: %s. Arbitration vs. court matters.", level)
	case legal.CategoryForceMajeure:
		note = fmt.Sprintf("Covers unexpected events beyond control. Risk: %s. Check what events are included.", level)
	default:
		note = fmt.Sprintf("Legal clause of type: %s. Risk level: %s.", category, level)
	}
	return note + " (ML-classified)"
}

// RuleRecommendations builds the recommendation list for rule-classified
// output.  Rules fire in priority order: risk-threshold advice, then
// clause-specific advice, then general boilerplate to fill thin lists.
func RuleRecommendations(clauses []legal.ClassifiedClause, riskScore int) []string {
	var recs []string
	if riskScore > 70 {
		recs = append(recs, "This document has significant risk factors. Consider consulting a lawyer before signing.")
	} else if riskScore > 50 {
		recs = append(recs, "Review the highlighted clauses carefully before proceeding.")
	}

	for _, c := range clauses {
		switch {
		case c.Type == legal.CategoryNonCompete && c.RiskLevel != legal.RiskLow:
			recs = append(recs, "The non-compete clause may restrict your future opportunities. Consider negotiating the scope and duration.")
		case c.Type == legal.CategoryLiabilityLimitation && c.RiskLevel == legal.RiskHigh:
			recs = append(recs, "The liability limitation is heavily in favor of the other party. Consider requesting more balanced terms.")
		case c.Type == legal.CategoryTermination && c.RiskLevel == legal.RiskHigh:
			recs = append(recs, "Review termination conditions carefully, especially any penalties or notice requirements.")
		}
	}

	if len(recs) < 3 {
		recs = append(recs,
			"Keep a signed copy of the agreement for your records.",
			"Ensure all blank spaces are filled before signing.",
			"If unsure about any clause, seek legal advice.")
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// StatisticalRecommendations builds the recommendation list for
// statistically classified output.
func StatisticalRecommendations(clauses []legal.ClassifiedClause, riskScore int, docType string) []string {
	var recs []string
	if riskScore > 70 {
		recs = append(recs, "HIGH RISK: This document contains multiple high-risk clauses. Strongly recommend professional legal review before signing.")
	} else if riskScore > 50 {
		recs = append(recs, "MEDIUM RISK: Several clauses require careful attention. Consider consulting a lawyer for specific concerns.")
	}

	var highTypes []string
	seen := make(map[legal.ClauseCategory]bool)
	for _, c := range clauses {
		if c.RiskLevel == legal.RiskHigh && !seen[c.Type] {
			seen[c.Type] = true
			highTypes = append(highTypes, string(c.Type))
		}
	}
	if len(highTypes) > 0 {
		if len(highTypes) > 3 {
			highTypes = highTypes[:3]
		}
		recs = append(recs, "Pay special attention to: "+strings.Join(highTypes, ", "))
	}

	switch docType {
	case "Employment Agreement":
		recs = append(recs, "For employment agreements, carefully review compensation, benefits, and termination clauses.")
	case "Non-Disclosure Agreement":
		recs = append(recs, "Ensure the confidentiality period and scope are reasonable for your situation.")
	case "Service Agreement":
		recs = append(recs, "Verify deliverables, payment terms, and liability limitations are clearly defined.")
	}

	recs = append(recs,
		"Keep a signed copy for your records.",
		"Ensure all parties sign and date the document.",
		"If uncertain about any clause, seek professional legal advice.")

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// ExpertSuggestions builds the three-part expert guidance from document
// type, clause composition and risk score.  Rule order is fixed: document
// type advice, clause presence/absence advice, then risk-band advice.
func ExpertSuggestions(docType string, clauses []legal.ClassifiedClause, riskScore int) legal.ExpertSuggestions {
	s := legal.ExpertSuggestions{
		NegotiationPoints: []string{},
		DraftingTips:      []string{},
		LegalTraps:        []string{},
	}

	switch docType {
	case "Employment Agreement":
		s.NegotiationPoints = append(s.NegotiationPoints,
			"Request a clear definition of 'Cause' for termination to protect your severance.",
			"Negotiate the scope of the Non-Compete clause (geography and duration).",
			"Ensure IP assignment is limited to work done specifically for the company.")
		s.LegalTraps = append(s.LegalTraps,
			"Watch out for broad 'Moral Rights' waivers that are irrevocable.")
	case "Service Agreement":
		s.NegotiationPoints = append(s.NegotiationPoints,
			"Clarify the acceptance criteria for deliverables to avoid payment disputes.",
			"Limit the 'Indemnification' clause to third-party claims only.",
			"Request a 'cure period' for any alleged breach before termination.")
		s.DraftingTips = append(s.DraftingTips,
			"Clearly state that you are an Independent Contractor, not an employee.")
	case "Non-Disclosure Agreement":
		s.NegotiationPoints = append(s.NegotiationPoints,
			"Ensure the definition of 'Confidential Information' is not overly broad.")
		s.DraftingTips = append(s.DraftingTips,
			"Add a 'residuals' clause allowing use of general knowledge/skills.")
		s.LegalTraps = append(s.LegalTraps,
			"Check if the NDA has no expiration date (perpetual confidentiality).")
	}

	present := make(map[legal.ClauseCategory]bool)
	for _, c := range clauses {
		present[c.Type] = true
	}
	if present[legal.CategoryLiabilityLimitation] {
		s.NegotiationPoints = append(s.NegotiationPoints,
			"Ensure liability caps are mutual (apply to both parties).")
	} else {
		s.DraftingTips = append(s.DraftingTips,
			"Consider adding a Liability Limitation clause to protect yourself from excessive damages.")
	}
	if !present[legal.CategoryDisputeResolution] {
		s.DraftingTips = append(s.DraftingTips,
			"Add a Dispute Resolution clause to specify Arbitration vs. Litigation in advance.")
	}
	if !present[legal.CategoryForceMajeure] {
		s.LegalTraps = append(s.LegalTraps,
			"Missing Force Majeure clause: You might be liable even during a natural disaster.")
	}

	if riskScore > 60 {
		s.LegalTraps = append(s.LegalTraps,
			"High Risk Document: Contains multiple aggressive clauses favored by the counterparty.")
		s.NegotiationPoints = append(s.NegotiationPoints,
			"This looks like a standard 'pro-party' template. Don't be afraid to redline heavily.")
	}

	if len(s.NegotiationPoints) == 0 {
		s.NegotiationPoints = append(s.NegotiationPoints,
			"Ask for clear payment terms (Net 15 vs Net 30).")
	}
	return s
}
