package asin

import (
	"strings"
	"testing"
)

func TestExtract_CanonicalDP(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"https://www.amazon.com/dp/B08N5WRWNW":                          "B08N5WRWNW",
		"https://www.amazon.com/dp/B08N5WRWNW/":                         "B08N5WRWNW",
		"https://www.amazon.com/dp/B08N5WRWNW?th=1":                     "B08N5WRWNW",
		"https://www.amazon.com/Some-Product-Name/dp/B0C1234XYZ/ref=sr": "B0C1234XYZ",
	}
	for raw, want := range cases {
		got, ok := Extract(raw)
		if !ok {
			t.Fatalf("Extract(%q): expected ok", raw)
		}
		if got != want {
			t.Fatalf("Extract(%q): expected %q, got %q", raw, want, got)
		}
	}
}

func TestExtract_DPSegmentFallback(t *testing.T) {
	t.Parallel()

	// Lowercase identifiers miss the canonical pattern but the segment
	// scan after "dp" still picks them up.
	got, ok := Extract("https://www.amazon.com/dp/b08n5wrwnw")
	if !ok {
		t.Fatal("expected ok")
	}
	if got != "b08n5wrwnw" {
		t.Fatalf("expected %q, got %q", "b08n5wrwnw", got)
	}
}

func TestExtract_GenericSegmentFallback(t *testing.T) {
	t.Parallel()

	got, ok := Extract("https://www.amazon.com/gp/product/B000ABCD12?psc=1")
	if !ok {
		t.Fatal("expected ok")
	}
	if got != "B000ABCD12" {
		t.Fatalf("expected %q, got %q", "B000ABCD12", got)
	}
}

func TestExtract_NoIdentifier(t *testing.T) {
	t.Parallel()

	cases := []string{
		"https://www.amazon.com/",
		"https://www.amazon.com/gp/help/customer",
		"https://example.com/dp/short",
		"not a url at all",
		"",
	}
	for _, raw := range cases {
		if got, ok := Extract(raw); ok {
			t.Fatalf("Extract(%q): expected absent, got %q", raw, got)
		}
	}
}

func TestAssociateURL(t *testing.T) {
	t.Parallel()

	got := AssociateURL("B08N5WRWNW", "mytag-20")
	want := "https://www.amazon.com/dp/B08N5WRWNW/ref=nosim?tag=mytag-20"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if strings.Count(got, "B08N5WRWNW") != 1 || strings.Count(got, "mytag-20") != 1 {
		t.Fatalf("identifier and tag must each appear exactly once: %q", got)
	}
}

func TestAssociateURL_DefaultTag(t *testing.T) {
	t.Parallel()

	got := AssociateURL("B08N5WRWNW", "")
	if !strings.HasSuffix(got, "?tag="+DefaultTag) {
		t.Fatalf("expected default tag suffix, got %q", got)
	}
}
