package app

import (
	"fmt"
	"strings"
	"time"

	"docflow/internal/model"
)

// fallbackLabel is recorded in the audit log when the provider call was
// substituted with locally templated content.
const fallbackLabel = "fallback"

const summaryExcerptLimit = 200

type templateKind int

const (
	templateGeneric templateKind = iota
	templateSummary
	templateImprove
)

// classifyPrompt picks the fallback template from keywords in the prompt.
// French and English spellings are both recognized.
func classifyPrompt(prompt string) templateKind {
	lowered := strings.ToLower(prompt)
	switch {
	case strings.Contains(lowered, "résumé") || strings.Contains(lowered, "summary"):
		return templateSummary
	case strings.Contains(lowered, "améliore") || strings.Contains(lowered, "improve"):
		return templateImprove
	default:
		return templateGeneric
	}
}

// renderFallback produces deterministic content when the provider is
// unavailable or returned nothing. Same document, prompt and date always
// yield byte-identical output.
func renderFallback(doc *model.Document, prompt string, date time.Time) string {
	day := date.Format("2006-01-02")
	switch classifyPrompt(prompt) {
	case templateSummary:
		return renderSummaryFallback(doc, day)
	case templateImprove:
		return renderImproveFallback(doc, day)
	default:
		return renderGenericFallback(doc, day)
	}
}

func renderSummaryFallback(doc *model.Document, day string) string {
	return fmt.Sprintf(`Summary of "%s" (%s)

Excerpt:
%s

Key points to develop:
- Identify the central idea of the excerpt above.
- List the supporting arguments in order of importance.
- Close with a one-paragraph restatement of the conclusion.`,
		doc.Title, day, contentExcerpt(doc.Content))
}

func renderImproveFallback(doc *model.Document, day string) string {
	return fmt.Sprintf(`Suggested improvements for "%s" (%s)

- Tighten the opening so the document's objective is stated in the first paragraph.
- Break long sections into shorter ones with descriptive headings.
- Replace passive constructions with direct statements.
- End with a clear call to action or conclusion.`,
		doc.Title, day)
}

func renderGenericFallback(doc *model.Document, day string) string {
	return fmt.Sprintf(`Draft outline for "%s" (%s)

1. Introduction: present the topic and why it matters.
2. Development: expand each main idea in its own section.
3. Conclusion: recap the key points and next steps.

Edit this outline and regenerate once the assistant is available again.`,
		doc.Title, day)
}

func contentExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= summaryExcerptLimit {
		return content
	}
	return string(runes[:summaryExcerptLimit])
}
