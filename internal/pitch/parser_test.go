package pitch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kapu/pitch-ai-go/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []domain.PitchSection
	}{
		{
			name: "headings",
			raw:  "**Problema:** Pessoas perdem tempo.\n**Solução:** App automatiza.",
			want: []domain.PitchSection{
				domain.NewHeading("Problema", "Pessoas perdem tempo."),
				domain.NewHeading("Solução", "App automatiza."),
			},
		},
		{
			name: "plain line fallback",
			raw:  "Apenas uma linha comum.",
			want: []domain.PitchSection{
				domain.NewPlainLine("Apenas uma linha comum."),
			},
		},
		{
			name: "blank and whitespace lines dropped",
			raw:  "**A:** x\n\n   \n**B:** y",
			want: []domain.PitchSection{
				domain.NewHeading("A", "x"),
				domain.NewHeading("B", "y"),
			},
		},
		{
			name: "extra colons stay in the body",
			raw:  "**Modelo de Negócio:** Assinatura: R$ 19,90/mês: plano anual",
			want: []domain.PitchSection{
				domain.NewHeading("Modelo de Negócio", "Assinatura: R$ 19,90/mês: plano anual"),
			},
		},
		{
			name: "label stops at first close marker",
			raw:  "**A:** um **B:** dois",
			want: []domain.PitchSection{
				domain.NewHeading("A", "um **B:** dois"),
			},
		},
		{
			name: "embedded carriage return is plain",
			raw:  "**A:** x\ry",
			want: []domain.PitchSection{
				domain.NewPlainLine("**A:** x\ry"),
			},
		},
		{
			name: "embedded line separator is plain",
			raw:  "**A:** x\u2028y\n**B\u2029:** z",
			want: []domain.PitchSection{
				domain.NewPlainLine("**A:** x\u2028y"),
				domain.NewPlainLine("**B\u2029:** z"),
			},
		},
		{
			name: "missing closing marker is plain",
			raw:  "**Problema: sem fechamento",
			want: []domain.PitchSection{
				domain.NewPlainLine("**Problema: sem fechamento"),
			},
		},
		{
			name: "colon outside the marker is plain",
			raw:  "**Problema**: fora do negrito",
			want: []domain.PitchSection{
				domain.NewPlainLine("**Problema**: fora do negrito"),
			},
		},
		{
			name: "plain lines keep surrounding whitespace",
			raw:  "  1.  **Investidores Individuais:** buscam rendimento  ",
			want: []domain.PitchSection{
				domain.NewPlainLine("  1.  **Investidores Individuais:** buscam rendimento  "),
			},
		},
		{
			name: "empty heading body",
			raw:  "**Chamada para Ação:**",
			want: []domain.PitchSection{
				domain.NewHeading("Chamada para Ação", ""),
			},
		},
		{
			name: "crlf line endings",
			raw:  "**A:** x\r\n\r\nlinha\r\n",
			want: []domain.PitchSection{
				domain.NewHeading("A", "x"),
				domain.NewPlainLine("linha"),
			},
		},
		{
			name: "mixed document keeps order",
			raw:  "# Pitch\n**Problema:** p\n- item\n**Solução:** s",
			want: []domain.PitchSection{
				domain.NewPlainLine("# Pitch"),
				domain.NewHeading("Problema", "p"),
				domain.NewPlainLine("- item"),
				domain.NewHeading("Solução", "s"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParseIsTotal(t *testing.T) {
	for _, raw := range []string{"", "\n", "   \n\t\n  ", "***", "**:**", ":**", "\x00\xff"} {
		got := Parse(raw)
		if got == nil {
			t.Fatalf("Parse(%q) returned nil, want empty or populated slice", raw)
		}
	}

	if got := Parse("  \n\n\t"); len(got) != 0 {
		t.Fatalf("whitespace-only input should yield no sections, got %v", got)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	raw := "**Problema:** a\n\ntexto livre\n**Solução:** b: c"

	first := Parse(raw)
	second := Parse(raw)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Parse is not idempotent (-first +second):\n%s", diff)
	}
}

func TestHeadings(t *testing.T) {
	sections := Parse("intro\n**Problema:** a\n**Solução:** b")

	if diff := cmp.Diff([]string{"Problema", "Solução"}, Headings(sections)); diff != "" {
		t.Fatalf("Headings mismatch (-want +got):\n%s", diff)
	}
}
