package web

import (
	"strings"
	"testing"

	"github.com/kapu/pitch-ai-go/internal/domain"
)

func TestRenderInlineMarkdown(t *testing.T) {
	got := string(renderInline("Foco em **investidores** e _acionistas_."))
	if got != "Foco em <strong>investidores</strong> e <em>acionistas</em>." {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestRenderInlineStripsUnsafeMarkup(t *testing.T) {
	got := string(renderInline(`Olá <script>alert(1)</script> <img src=x onerror=alert(1)>`))
	if strings.Contains(got, "<script") || strings.Contains(got, "onerror") {
		t.Fatalf("unsafe markup survived: %q", got)
	}
}

func TestRenderInlineEmpty(t *testing.T) {
	if renderInline("   ") != "" {
		t.Fatal("blank text should render to nothing")
	}
}

func TestBuildSectionViews(t *testing.T) {
	views := buildSectionViews([]domain.PitchSection{
		domain.NewHeading("Problema", "Pessoas **perdem** tempo."),
		domain.NewPlainLine("linha comum"),
	})

	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if !views[0].Heading || views[0].Title != "Problema" || views[0].Body != "Pessoas <strong>perdem</strong> tempo." {
		t.Fatalf("unexpected heading view: %+v", views[0])
	}
	if views[1].Heading || views[1].Body != "linha comum" {
		t.Fatalf("unexpected plain view: %+v", views[1])
	}
}
