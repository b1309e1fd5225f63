package app

import (
	"strings"
	"testing"
	"time"

	"docflow/internal/model"
)

func TestClassifyPrompt(t *testing.T) {
	cases := map[string]templateKind{
		"Fais un résumé de ce texte":        templateSummary,
		"Write a SUMMARY of the document":   templateSummary,
		"Améliore le style de ce document":  templateImprove,
		"Please improve the wording":        templateImprove,
		"Develop the second section":        templateGeneric,
		"":                                  templateGeneric,
	}
	for prompt, want := range cases {
		if got := classifyPrompt(prompt); got != want {
			t.Fatalf("classifyPrompt(%q) = %d, want %d", prompt, got, want)
		}
	}
}

func TestRenderFallbackDeterministic(t *testing.T) {
	doc := &model.Document{Title: "Guide", Content: "intro text"}
	date := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

	first := renderFallback(doc, "summary please", date)
	second := renderFallback(doc, "summary please", date)
	if first != second {
		t.Fatalf("fallback not deterministic:\n%q\n%q", first, second)
	}
	if first == "" {
		t.Fatal("fallback returned empty content")
	}
}

func TestRenderFallbackSummaryContents(t *testing.T) {
	doc := &model.Document{Title: "Guide", Content: "intro text"}
	date := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

	out := renderFallback(doc, "Summarize this in English", date)
	if !strings.Contains(out, "Guide") {
		t.Fatalf("summary fallback missing title: %q", out)
	}
	if !strings.Contains(out, "2025-06-15") {
		t.Fatalf("summary fallback missing date: %q", out)
	}
	if !strings.Contains(out, "intro text") {
		t.Fatalf("summary fallback missing excerpt: %q", out)
	}
}

func TestRenderFallbackSummaryExcerptLimit(t *testing.T) {
	long := strings.Repeat("a", 300)
	doc := &model.Document{Title: "Long", Content: long}

	out := renderFallback(doc, "summary", time.Now())
	if strings.Contains(out, long) {
		t.Fatal("excerpt was not truncated")
	}
	if !strings.Contains(out, strings.Repeat("a", summaryExcerptLimit)) {
		t.Fatal("excerpt missing the first 200 characters")
	}
}

func TestRenderFallbackAllKindsNonEmpty(t *testing.T) {
	doc := &model.Document{Title: "Doc", Content: "body"}
	now := time.Now()
	for _, prompt := range []string{"résumé", "améliore", "anything else"} {
		if out := renderFallback(doc, prompt, now); strings.TrimSpace(out) == "" {
			t.Fatalf("empty fallback for prompt %q", prompt)
		}
	}
}
