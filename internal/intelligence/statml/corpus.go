package statml

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/premsagar786/LegalAI/internal/infrastructure/storage/modelstore"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
)

// Example is one labeled training sample.
type Example struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// SeedCorpus returns the built-in training data for all three tasks.  It is
// intentionally small; real deployments extend it with labeled documents via
// LoadExamplesDir.
func SeedCorpus() map[string][]Example {
	return map[string][]Example{
		modelstore.TaskDocType: {
			{Text: "This Employment Agreement is entered into between the Employer and Employee. The Employee agrees to work full-time for a salary of $80,000 per year. The employment term is indefinite with a 30-day notice period.", Label: "Employment Agreement"},
			{Text: "Employment Contract: The Company hereby employs the Employee as a Software Engineer. Compensation includes base salary, benefits, and stock options. Non-compete clause applies for 12 months.", Label: "Employment Agreement"},
			{Text: "This agreement governs the employment relationship. Employee will receive health insurance, paid time off, and retirement benefits. Termination requires cause or 60 days notice.", Label: "Employment Agreement"},
			{Text: "Service Agreement between Client and Consultant. The Consultant will provide software development services for a fee of $150/hour. Payment due within 15 days of invoice.", Label: "Service Agreement"},
			{Text: "This Consulting Agreement outlines the services to be provided. Deliverables include system design, implementation, and testing. Independent contractor status applies.", Label: "Service Agreement"},
			{Text: "Professional Services Contract: Provider agrees to deliver marketing services. Scope includes strategy, content creation, and analytics. Monthly retainer of $5,000.", Label: "Service Agreement"},
			{Text: "Non-Disclosure Agreement: Both parties agree to keep confidential information secret. Proprietary data and trade secrets must not be disclosed to third parties.", Label: "Non-Disclosure Agreement"},
			{Text: "Confidentiality Agreement between the Disclosing Party and Receiving Party. All confidential information shall remain secret for 5 years after disclosure.", Label: "Non-Disclosure Agreement"},
			{Text: "This NDA protects sensitive business information. Recipient agrees not to use confidential data for any purpose other than the intended business relationship.", Label: "Non-Disclosure Agreement"},
			{Text: "Residential Lease Agreement: Landlord leases the premises to Tenant for monthly rent of $2,000. Lease term is 12 months with security deposit of $4,000.", Label: "Lease Agreement"},
			{Text: "Commercial Lease: Tenant shall pay rent of $10,000 per month for office space. Lease includes utilities, parking, and maintenance. Term is 3 years.", Label: "Lease Agreement"},
			{Text: "Rental Agreement for apartment located at 123 Main St. Rent due on 1st of each month. Pets not allowed. Tenant responsible for minor repairs.", Label: "Lease Agreement"},
			{Text: "Purchase Agreement for the sale of goods. Buyer agrees to purchase 1000 units at $50 per unit. Delivery within 30 days. Payment on delivery.", Label: "Sales Agreement"},
			{Text: "Sales Contract: Seller agrees to sell the property for $500,000. Buyer to pay 20% down payment. Closing date is 60 days from signing.", Label: "Sales Agreement"},
			{Text: "Asset Purchase Agreement: Buyer purchases all business assets including inventory, equipment, and goodwill for total price of $1,000,000.", Label: "Sales Agreement"},
		},
		modelstore.TaskClauseRisk: {
			{Text: "The Company may terminate this agreement at any time without cause and without notice.", Label: "high"},
			{Text: "Employee waives all rights to sue the Company for any reason whatsoever.", Label: "high"},
			{Text: "Unlimited liability for any damages arising from breach of this agreement.", Label: "high"},
			{Text: "Non-compete clause prohibits working in the same industry for 5 years worldwide.", Label: "high"},
			{Text: "Automatic renewal with no option to cancel unless 6 months advance notice given.", Label: "high"},
			{Text: "Liability is limited to the amount paid under this agreement in the last 12 months.", Label: "medium"},
			{Text: "Either party may terminate with 30 days written notice.", Label: "medium"},
			{Text: "Indemnification required for third-party claims arising from services provided.", Label: "medium"},
			{Text: "Non-compete restricted to 50-mile radius for 12 months after termination.", Label: "medium"},
			{Text: "Late payment subject to 1.5% monthly interest charge.", Label: "medium"},
			{Text: "This agreement may be terminated by mutual written consent of both parties.", Label: "low"},
			{Text: "Standard confidentiality obligations apply to both parties equally.", Label: "low"},
			{Text: "Payment due within 30 days of invoice date.", Label: "low"},
			{Text: "Governing law shall be the laws of the State of California.", Label: "low"},
			{Text: "Disputes shall be resolved through good faith negotiation first.", Label: "low"},
		},
		modelstore.TaskClauseType: {
			{Text: "Either party may terminate this agreement with 30 days written notice.", Label: "Termination"},
			{Text: "This agreement may be terminated for cause upon material breach.", Label: "Termination"},
			{Text: "Automatic termination occurs if either party files for bankruptcy.", Label: "Termination"},
			{Text: "In no event shall the Company be liable for indirect or consequential damages.", Label: "Liability Limitation"},
			{Text: "Maximum liability under this agreement is limited to $100,000.", Label: "Liability Limitation"},
			{Text: "Company's liability shall not exceed the fees paid in the last 6 months.", Label: "Liability Limitation"},
			{Text: "All proprietary information must be kept confidential for 5 years.", Label: "Confidentiality"},
			{Text: "Recipient agrees not to disclose trade secrets to any third party.", Label: "Confidentiality"},
			{Text: "Confidential information includes customer lists, pricing, and business plans.", Label: "Confidentiality"},
			{Text: "Payment is due within 15 days of invoice date.", Label: "Payment Terms"},
			{Text: "Client shall pay a monthly retainer of $5,000.", Label: "Payment Terms"},
			{Text: "Late payments subject to 1.5% interest per month.", Label: "Payment Terms"},
			{Text: "Provider shall indemnify Client against third-party claims.", Label: "Indemnification"},
			{Text: "Each party agrees to hold the other harmless from negligence claims.", Label: "Indemnification"},
			{Text: "Indemnification covers legal fees and damages from breach.", Label: "Indemnification"},
			{Text: "Employee shall not compete with Company for 12 months after termination.", Label: "Non-Compete"},
			{Text: "Non-compete applies within 50-mile radius of Company offices.", Label: "Non-Compete"},
			{Text: "Restriction includes working for competitors or starting competing business.", Label: "Non-Compete"},
		},
	}
}

// LoadExamplesDir reads extra labeled examples from <dir>/<task>.json files,
// each holding a JSON array of {text,label} objects.  Unknown file names are
// ignored; a missing directory yields an empty map.
func LoadExamplesDir(dir string) (map[string][]Example, error) {
	out := make(map[string][]Example)
	if dir == "" {
		return out, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to read training data directory")
	}

	known := make(map[string]bool)
	for _, task := range modelstore.Tasks() {
		known[task] = true
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		task := name[:len(name)-len(".json")]
		if !known[task] {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to read training data file")
		}
		var examples []Example
		if err := json.Unmarshal(data, &examples); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeSerialization, "invalid training data file "+name)
		}
		out[task] = examples
	}
	return out, nil
}

// MergeExamples appends extra examples onto the seed corpus per task.
func MergeExamples(base, extra map[string][]Example) map[string][]Example {
	out := make(map[string][]Example, len(base))
	for task, examples := range base {
		out[task] = append(append([]Example(nil), examples...), extra[task]...)
	}
	for task, examples := range extra {
		if _, ok := out[task]; !ok {
			out[task] = examples
		}
	}
	return out
}
