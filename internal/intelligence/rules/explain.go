package rules

import "github.com/premsagar786/LegalAI/pkg/types/legal"

// Explain produces the fixed human-facing note for a classified clause.  The
// wording varies with risk level for the categories where severity changes
// the advice.
func Explain(category legal.ClauseCategory, risk legal.RiskLevel) string {
	switch category {
	case legal.CategoryLiabilityLimitation:
		if risk == legal.RiskLow {
			return "This clause limits what you can claim if something goes wrong. Standard limitation clause."
		}
		return "This clause limits what you can claim if something goes wrong. Review carefully as it may significantly restrict your rights."
	case legal.CategoryIndemnification:
		return "You may be required to cover costs or damages. Understand what situations trigger this obligation."
	case legal.CategoryTermination:
		return "Defines how and when the agreement can be ended. Check notice periods and any penalties for early termination."
	case legal.CategoryConfidentiality:
		return "Restricts sharing of sensitive information. Ensure you understand what information is covered."
	case legal.CategoryNonCompete:
		if risk == legal.RiskHigh {
			return "Restricts your ability to work with competitors or start similar businesses. This is a significant restriction - negotiate if possible."
		}
		return "Restricts your ability to work with competitors or start similar businesses. Review the scope and duration carefully."
	case legal.CategoryIntellectualProperty:
		return "Defines ownership of created work and ideas. Important if you're creating anything during the agreement."
	case legal.CategoryPaymentTerms:
		return "Specifies when and how payments are made. Note any penalties for late payments."
	case legal.CategoryGoverningLaw:
		return "Determines which laws apply and where disputes are resolved. May affect your ability to seek legal remedies."
	case legal.CategoryDisputeResolution:
		return "Specifies how disagreements will be handled. Arbitration may limit your options compared to court."
	case legal.CategoryForceMajeure:
		return "Covers unexpected events beyond control. Check what events are included and the consequences."
	default:
		return "Review this clause carefully before signing."
	}
}
