// Package remote implements the remote-language-model analysis strategy.  A
// whole document is sent to an OpenAI-compatible chat-completions endpoint
// with a fixed structured-output instruction; the response is parsed
// defensively and any failure translates into a silent fallback signal for
// the orchestrator, never an error surfaced to the end caller.
package remote

import "strings"

const systemPrompt = "You are a legal expert AI. Output valid JSON only."

// promptTemplate is the fixed structured-output instruction.  The JSON shape
// it describes is the wire contract parsed by this package; changing either
// side requires changing both.
const promptTemplate = `You are an expert legal AI assistant. Analyze the following legal document text and provide a structured JSON response.

Text to analyze:
%DOCUMENT%

Return a JSON object with this EXACT structure:
{
    "summary": "Brief summary of the document",
    "documentType": "Type of document (e.g. Service Agreement, NDA)",
    "clauses": [
        {
            "type": "Clause Type (e.g. Termination, Liability Limitation)",
            "content": "Exact text of the clause from document",
            "riskLevel": "high/medium/low",
            "explanation": "Why this is risky or what it means"
        }
    ],
    "keyTerms": [
        { "term": "Term Name", "definition": "Definition found in text" }
    ],
    "parties": [
        { "role": "Party Role (e.g. Client)", "name": "Party Name" }
    ],
    "dates": {
        "effective": "Date string or null",
        "expiry": "Date string or null",
        "important": [ { "description": "desc", "date": "date" } ]
    },
    "obligations": [
        { "party": "Role", "description": "Obligation description", "deadline": "Deadline or null" }
    ],
    "penalties": [
        { "condition": "Condition triggering penalty", "consequence": "Consequence", "severity": "high/medium/low" }
    ],
    "overallRiskScore": 50,
    "recommendations": ["List of string recommendations"],
    "expertSuggestions": {
        "negotiationPoints": ["Point 1", "Point 2"],
        "draftingTips": ["Tip 1", "Tip 2"],
        "legalTraps": ["Trap 1", "Trap 2"]
    }
}

IMPORTANT: Ensure valid JSON output. Do not include markdown formatting (like ` + "```json" + `).`

// BuildPrompt assembles the user prompt, truncating the document to the
// configured character budget to stay under token limits.
func BuildPrompt(document string, maxChars int) string {
	if maxChars > 0 && len(document) > maxChars {
		document = document[:maxChars]
	}
	return strings.Replace(promptTemplate, "%DOCUMENT%", document, 1)
}

// StripCodeFences removes an enclosing markdown code fence if the model
// ignored the instruction and wrapped its JSON anyway.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
