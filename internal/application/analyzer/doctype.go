package analyzer

import "strings"

// docTypeKeywords maps document types to their signal keywords, checked in a
// fixed order so classification is deterministic when keyword sets overlap.
var docTypeKeywords = []struct {
	docType  string
	keywords []string
}{
	{"Employment Agreement", []string{"employment", "employee", "employer", "salary", "working hours"}},
	{"Service Agreement", []string{"service", "services", "provider", "consultant"}},
	{"Non-Disclosure Agreement", []string{"confidential", "non-disclosure", "nda", "proprietary"}},
	{"Lease Agreement", []string{"lease", "tenant", "landlord", "rent", "premises"}},
	{"Sales Agreement", []string{"sale", "purchase", "buyer", "seller", "goods"}},
	{"Partnership Agreement", []string{"partnership", "partners", "profit sharing"}},
	{"Licensing Agreement", []string{"license", "licensing", "royalty", "intellectual property"}},
}

// docTypeKeywordFloor is the minimum keyword hits for a positive match.
const docTypeKeywordFloor = 2

// IdentifyDocumentType classifies a document by keyword voting.  The first
// type reaching the floor wins; anything else is the generic fallback.
func IdentifyDocumentType(text string) string {
	lower := strings.ToLower(text)
	for _, dt := range docTypeKeywords {
		hits := 0
		for _, kw := range dt.keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits >= docTypeKeywordFloor {
			return dt.docType
		}
	}
	return "Legal Agreement"
}
