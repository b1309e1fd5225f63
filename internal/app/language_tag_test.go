package app

import "testing"

func TestStripLanguageTagEnglish(t *testing.T) {
	got := stripLanguageTag("LANGUAGE: en\n\nBody text")
	if got != "Body text" {
		t.Fatalf("got %q, want %q", got, "Body text")
	}
}

func TestStripLanguageTagFrench(t *testing.T) {
	got := stripLanguageTag("LANGUAGE: fr\n\nBonjour le monde.\nDeuxième ligne.")
	if got != "Bonjour le monde.\nDeuxième ligne." {
		t.Fatalf("got %q", got)
	}
}

func TestStripLanguageTagCaseInsensitive(t *testing.T) {
	got := stripLanguageTag("language: EN\n\nBody")
	if got != "Body" {
		t.Fatalf("got %q, want %q", got, "Body")
	}
}

func TestStripLanguageTagNoBlankLine(t *testing.T) {
	got := stripLanguageTag("LANGUAGE: en\nBody starts immediately")
	if got != "Body starts immediately" {
		t.Fatalf("got %q", got)
	}
}

func TestStripLanguageTagLeadingWhitespace(t *testing.T) {
	got := stripLanguageTag("\n  LANGUAGE: fr\n\nContenu")
	if got != "Contenu" {
		t.Fatalf("got %q, want %q", got, "Contenu")
	}
}

func TestStripLanguageTagIdempotent(t *testing.T) {
	once := stripLanguageTag("LANGUAGE: en\n\nBody text")
	twice := stripLanguageTag(once)
	if once != twice {
		t.Fatalf("not idempotent: %q vs %q", once, twice)
	}
}

func TestStripLanguageTagAbsentIsIdentity(t *testing.T) {
	inputs := []string{
		"Plain body with no tag",
		"The word LANGUAGE: en appears\nbut not on the first line",
		"LANGUAGE: de\n\nUnsupported language stays put",
		"",
		"\n\n",
	}
	for _, input := range inputs {
		if got := stripLanguageTag(input); got != input {
			t.Fatalf("input %q changed to %q", input, got)
		}
	}
}
