// Package rules implements the deterministic, always-available clause
// classifier.  All behavior is driven by ordered pattern tables; matching is
// first-match-wins so output is reproducible byte for byte.
package rules

import (
	"regexp"

	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

// CategoryPatterns binds one clause category to its ordered pattern list.
type CategoryPatterns struct {
	Category legal.ClauseCategory
	Patterns []*regexp.Regexp
}

func mustCompileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// ClausePatterns is the ordered (category, pattern-list) table.  Iteration
// order is part of the contract: the first category with any match wins, so
// reordering entries changes classification results.
var ClausePatterns = []CategoryPatterns{
	{legal.CategoryLiabilityLimitation, mustCompileAll(
		`liability\s+shall\s+(not\s+)?be\s+limited`,
		`in\s+no\s+event\s+shall.*liable`,
		`limit(ed|ation)?\s+of\s+liability`,
		`shall\s+not\s+be\s+liable\s+for`,
		`maximum\s+liability`,
	)},
	{legal.CategoryIndemnification, mustCompileAll(
		`indemnif(y|ication)`,
		`hold\s+harmless`,
		`defend\s+and\s+indemnify`,
	)},
	{legal.CategoryTermination, mustCompileAll(
		`terminat(e|ion)`,
		`cancel(lation)?`,
		`may\s+terminate`,
		`termination\s+for\s+cause`,
	)},
	{legal.CategoryConfidentiality, mustCompileAll(
		`confidential(ity)?`,
		`non-disclosure`,
		`proprietary\s+information`,
		`trade\s+secret`,
	)},
	{legal.CategoryNonCompete, mustCompileAll(
		`non-?compete`,
		`non-?competition`,
		`shall\s+not\s+compete`,
		`competing\s+business`,
	)},
	{legal.CategoryIntellectualProperty, mustCompileAll(
		`intellectual\s+property`,
		`patent`,
		`trademark`,
		`copyright`,
		`ownership\s+of.*work`,
	)},
	{legal.CategoryPaymentTerms, mustCompileAll(
		`payment`,
		`compensation`,
		`fee(s)?`,
		`invoice`,
		`due\s+within`,
	)},
	{legal.CategoryGoverningLaw, mustCompileAll(
		`governing\s+law`,
		`jurisdiction`,
		`governed\s+by`,
		`laws\s+of`,
	)},
	{legal.CategoryDisputeResolution, mustCompileAll(
		`dispute\s+resolution`,
		`arbitration`,
		`mediation`,
		`litigation`,
	)},
	{legal.CategoryForceMajeure, mustCompileAll(
		`force\s+majeure`,
		`act\s+of\s+god`,
		`beyond.*control`,
	)},
}

// HighRiskPatterns flag terms implying unlimited exposure, waived rights,
// unilateral discretion or no-notice termination.  Checked before the medium
// set; first hit decides.
var HighRiskPatterns = mustCompileAll(
	`unlimited\s+liability`,
	`waive.*right`,
	`non-?compete.*\d+\s*(year|month)`,
	`automatic\s+renewal`,
	`sole\s+discretion`,
	`terminate\s+without\s+(cause|notice)`,
	`penalty`,
	`liquidated\s+damages`,
)

// MediumRiskPatterns flag bounded but notable exposure.
var MediumRiskPatterns = mustCompileAll(
	`liability.*limited\s+to`,
	`advance\s+notice`,
	`early\s+termination`,
	`material\s+breach`,
	`cure\s+period`,
)

// mediumByDefault lists categories that escalate to medium risk even without
// a textual risk match.
var mediumByDefault = map[legal.ClauseCategory]bool{
	legal.CategoryNonCompete:          true,
	legal.CategoryLiabilityLimitation: true,
	legal.CategoryIndemnification:     true,
}

// CountRiskSignals returns how many high and medium risk patterns occur in
// the lowercase document text.  Used by the rule-path risk scorer.
func CountRiskSignals(lowerText string) (high, medium int) {
	for _, p := range HighRiskPatterns {
		if p.MatchString(lowerText) {
			high++
		}
	}
	for _, p := range MediumRiskPatterns {
		if p.MatchString(lowerText) {
			medium++
		}
	}
	return high, medium
}
