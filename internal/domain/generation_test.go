package domain

import "testing"

func TestNewGenerationResultBuildsDataURI(t *testing.T) {
	result := NewGenerationResult("**Problema:** x", "AAAA")

	if result.LogoImage != "data:image/png;base64,AAAA" {
		t.Fatalf("unexpected logo data URI: %q", result.LogoImage)
	}
	if result.LogoBase64() != "AAAA" {
		t.Fatalf("expected payload AAAA, got %q", result.LogoBase64())
	}
}

func TestSectionConstructors(t *testing.T) {
	heading := NewHeading("Problema", "Pessoas perdem tempo.")
	if !heading.IsHeading() || heading.Text != "" {
		t.Fatalf("unexpected heading: %+v", heading)
	}

	plain := NewPlainLine("Apenas uma linha comum.")
	if plain.IsHeading() || plain.Kind != SectionPlain || plain.Title != "" {
		t.Fatalf("unexpected plain line: %+v", plain)
	}
}
