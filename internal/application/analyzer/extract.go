// Package analyzer contains the analysis pipeline orchestrator and its
// supporting stages: document-level extraction, risk aggregation, and
// narrative generation.  The orchestrator sequences the remote, statistical
// and rule strategies and guarantees every caller a well-formed result.
package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

// Extraction patterns.  Each table is ordered; earlier patterns take
// precedence where they overlap.
var (
	partyPatterns = []struct {
		re          *regexp.Regexp
		defaultRole string
	}{
		{regexp.MustCompile(`between\s+([A-Z][A-Za-z\s\.]+(?:Ltd|LLC|Inc|Corp|Pvt|Private|Limited)?\.?)\s*\("([^"]+)"\)`), "First Party"},
		{regexp.MustCompile(`and\s+([A-Z][A-Za-z\s\.]+(?:Ltd|LLC|Inc|Corp|Pvt|Private|Limited)?\.?)\s*\("([^"]+)"\)`), "Second Party"},
		{regexp.MustCompile(`"(Provider|Service Provider|Consultant|Contractor)"\s*(?:shall mean|refers to)`), "Service Provider"},
		{regexp.MustCompile(`"(Client|Customer|Company|Employer)"\s*(?:shall mean|refers to)`), "Client"},
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)effective\s+(?:date|as\s+of)[:\s]+(\w+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`),
		regexp.MustCompile(`(?i)commenc\w+\s+on[:\s]+(\w+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`),
		regexp.MustCompile(`(?i)(?:dated?|as\s+of)[:\s]+(\w+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`),
		regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		regexp.MustCompile(`(\w+\s+\d{1,2},?\s+\d{4})`),
	}

	termPattern = regexp.MustCompile(`(?i)(?:term|period)\s+of\s+(\d+)\s*(month|year|day)s?`)

	obligationPatterns = []struct {
		re    *regexp.Regexp
		party string
	}{
		{regexp.MustCompile(`(?i)(?:provider|service provider|consultant)\s+(?:shall|agrees?\s+to|will)\s+([^.]+\.)`), "Service Provider"},
		{regexp.MustCompile(`(?i)(?:client|customer|company)\s+(?:shall|agrees?\s+to|will)\s+([^.]+\.)`), "Client"},
		{regexp.MustCompile(`(?i)party\s+a\s+(?:shall|agrees?\s+to|will)\s+([^.]+\.)`), "Party A"},
		{regexp.MustCompile(`(?i)party\s+b\s+(?:shall|agrees?\s+to|will)\s+([^.]+\.)`), "Party B"},
	}

	penaltyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(late\s+payment)[^.]*?(\d+(?:\.\d+)?%[^.]*interest[^.]*\.)`),
		regexp.MustCompile(`(?i)(early\s+termination)[^.]*(?:require|result\s+in)[^.]*?(\d+[^.]*(?:month|fee|penalty)[^.]*\.)`),
		regexp.MustCompile(`(?i)(breach)[^.]*(?:result\s+in|liable\s+for)\s*([^.]+\.)`),
		regexp.MustCompile(`(?i)(failure\s+to)[^.]*(?:result\s+in|subject\s+to)\s*([^.]+\.)`),
	}

	keyTermPattern = regexp.MustCompile(`"([A-Z][A-Za-z\s]+)"\s+(?:means|shall mean|refers to)\s+([^.]+\.)`)
)

const (
	maxParties     = 4
	maxObligations = 5
	maxPenalties   = 5
	maxKeyTerms    = 8
)

// ExtractParties finds contracting parties, guaranteeing at least two
// entries so downstream rendering never deals with an empty list.
func ExtractParties(text string) []legal.Party {
	var parties []legal.Party
	for _, pp := range partyPatterns {
		for _, m := range pp.re.FindAllStringSubmatch(text, -1) {
			switch {
			case len(m) >= 3:
				parties = append(parties, legal.Party{Role: m[2], Name: strings.TrimSpace(m[1])})
			case len(m) >= 2:
				parties = append(parties, legal.Party{Role: pp.defaultRole, Name: strings.TrimSpace(m[1])})
			}
		}
	}
	if len(parties) < 2 {
		parties = []legal.Party{
			{Role: "Party A", Name: "First Party"},
			{Role: "Party B", Name: "Second Party"},
		}
	}
	if len(parties) > maxParties {
		parties = parties[:maxParties]
	}
	return parties
}

// ExtractDates pulls the effective date and the agreement term when stated.
func ExtractDates(text string) legal.DateInfo {
	info := legal.DateInfo{Important: []legal.ImportantDate{}}
	for _, p := range datePatterns {
		if m := p.FindStringSubmatch(text); len(m) >= 2 {
			info.Effective = strings.TrimSpace(m[1])
			break
		}
	}
	if m := termPattern.FindStringSubmatch(text); len(m) >= 3 {
		info.Important = append(info.Important, legal.ImportantDate{
			Description: fmt.Sprintf("Agreement term: %s %ss", m[1], m[2]),
		})
	}
	return info
}

// ExtractObligations finds party duties, falling back to a generic pair when
// the text yields nothing usable.
func ExtractObligations(text string) []legal.Obligation {
	var obligations []legal.Obligation
	for _, op := range obligationPatterns {
		for _, m := range op.re.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			desc := strings.TrimSpace(m[1])
			if len(desc) <= 20 || len(desc) >= 200 {
				continue
			}
			if len(desc) > 150 {
				desc = desc[:150]
			}
			obligations = append(obligations, legal.Obligation{Party: op.party, Description: desc})
		}
	}
	if len(obligations) < 2 {
		obligations = []legal.Obligation{
			{Party: "Service Provider", Description: "Deliver services as specified in the agreement", Deadline: "As per schedule"},
			{Party: "Client", Description: "Make timely payments as per the payment terms", Deadline: "Within 15 days of invoice"},
		}
	}
	if len(obligations) > maxObligations {
		obligations = obligations[:maxObligations]
	}
	return obligations
}

// penaltySeverity grades a consequence by its wording.
func penaltySeverity(consequence string) legal.RiskLevel {
	lower := strings.ToLower(consequence)
	for _, w := range []string{"terminate", "immediate", "all fees"} {
		if strings.Contains(lower, w) {
			return legal.RiskHigh
		}
	}
	for _, w := range []string{"interest", "late fee"} {
		if strings.Contains(lower, w) {
			return legal.RiskLow
		}
	}
	return legal.RiskMedium
}

// ExtractPenalties finds penalty clauses with a demo fallback.
func ExtractPenalties(text string) []legal.Penalty {
	var penalties []legal.Penalty
	for _, p := range penaltyPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if len(m) < 3 {
				continue
			}
			condition := strings.TrimSpace(m[1])
			consequence := strings.TrimSpace(m[2])
			if len(consequence) > 150 {
				consequence = consequence[:150]
			}
			penalties = append(penalties, legal.Penalty{
				Condition:   strings.ToUpper(condition[:1]) + condition[1:],
				Consequence: consequence,
				Severity:    penaltySeverity(consequence),
			})
		}
	}
	if len(penalties) < 1 {
		penalties = []legal.Penalty{
			{Condition: "Late payment", Consequence: "Interest of 1.5% per month", Severity: legal.RiskMedium},
			{Condition: "Early termination", Consequence: "Termination fee may apply", Severity: legal.RiskHigh},
		}
	}
	if len(penalties) > maxPenalties {
		penalties = penalties[:maxPenalties]
	}
	return penalties
}

// ExtractKeyTerms finds defined terms, padding with common boilerplate
// definitions when fewer than three are present.
func ExtractKeyTerms(text string) []legal.KeyTerm {
	var terms []legal.KeyTerm
	for _, m := range keyTermPattern.FindAllStringSubmatch(text, -1) {
		def := strings.TrimSpace(m[2])
		if len(def) > 200 {
			def = def[:200]
		}
		terms = append(terms, legal.KeyTerm{Term: strings.TrimSpace(m[1]), Definition: def})
	}
	common := []legal.KeyTerm{
		{Term: "Effective Date", Definition: "The date when this agreement becomes active and binding"},
		{Term: "Parties", Definition: "The individuals or entities entering into this agreement"},
		{Term: "Term", Definition: "The duration for which this agreement remains in effect"},
	}
	for _, c := range common {
		if len(terms) >= 3 {
			break
		}
		terms = append(terms, c)
	}
	if len(terms) > maxKeyTerms {
		terms = terms[:maxKeyTerms]
	}
	return terms
}
