package web

import (
	"html/template"
	"strings"
	"sync"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/kapu/pitch-ai-go/internal/domain"
	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizerOnce sync.Once
	sanitizer     *bluemonday.Policy
)

func contentSanitizer() *bluemonday.Policy {
	sanitizerOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		sanitizer = policy
	})
	return sanitizer
}

// renderInline renders generated markdown to sanitized HTML. A single
// wrapping paragraph is dropped so headings and bodies stay inline.
func renderInline(text string) template.HTML {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	// gomarkdown parsers are single use
	p := parser.NewWithExtensions(parser.CommonExtensions &^ parser.MathJax)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.HrefTargetBlank | html.SkipHTML})
	out := strings.TrimSpace(string(markdown.ToHTML([]byte(trimmed), p, renderer)))

	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}

	return template.HTML(strings.TrimSpace(contentSanitizer().Sanitize(out)))
}

type sectionView struct {
	Heading bool
	Title   string
	Body    template.HTML
}

func buildSectionViews(sections []domain.PitchSection) []sectionView {
	views := make([]sectionView, 0, len(sections))
	for _, s := range sections {
		if s.IsHeading() {
			views = append(views, sectionView{Heading: true, Title: s.Title, Body: renderInline(s.Body)})
			continue
		}
		views = append(views, sectionView{Body: renderInline(s.Text)})
	}
	return views
}
