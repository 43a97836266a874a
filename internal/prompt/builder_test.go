package prompt

import (
	"strings"
	"testing"
)

func TestRenderPitchScriptEmbedsIdeaAndSections(t *testing.T) {
	pb := NewPromptBuilder()

	got, err := pb.RenderPitchScript("Uma plataforma de tutores de pets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasSuffix(got, "**Ideia de Negócio Fornecida pelo Usuário:** 'Uma plataforma de tutores de pets'") {
		t.Fatalf("expected prompt to end with the quoted idea, got %q", got[len(got)-120:])
	}
	if !strings.Contains(got, "As seções devem incluir: Problema, Solução, Público-Alvo, Modelo de Negócio, Diferencial Competitivo e Chamada para Ação.") {
		t.Fatalf("expected section list in prompt")
	}
	if !strings.Contains(got, "'**Problema:**'") {
		t.Fatalf("expected heading marker example in prompt")
	}
}

func TestRenderLogo(t *testing.T) {
	pb := NewPromptBuilder()

	got, err := pb.RenderLogo("app de delivery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(got, "Crie um logotipo para uma startup de tecnologia com base nesta ideia: 'app de delivery'.") {
		t.Fatalf("unexpected logo prompt: %q", got)
	}
	if !strings.HasSuffix(got, "Não inclua texto no logotipo.") {
		t.Fatalf("unexpected logo prompt ending: %q", got)
	}
}

func TestRenderIsDeterministicAndCached(t *testing.T) {
	pb := DefaultPromptBuilder()

	first, err := pb.RenderLogo("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := pb.RenderLogo("x")
	if first != second {
		t.Fatal("rendering the same idea twice must give the same prompt")
	}

	pb.mu.RLock()
	_, cached := pb.templates[TemplateLogo]
	pb.mu.RUnlock()
	if !cached {
		t.Fatal("expected logo template to be cached after first render")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := NewPromptBuilder().Render("missing.yaml", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestJoinList(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"Problema"}, "Problema"},
		{[]string{"Problema", "Solução"}, "Problema e Solução"},
		{[]string{"A", "B", "C"}, "A, B e C"},
	}

	for _, tt := range tests {
		if got := joinList(tt.items, ", ", " e "); got != tt.want {
			t.Errorf("joinList(%q) = %q, want %q", tt.items, got, tt.want)
		}
	}
}
