// Package pitch turns the generated pitch text into display sections.
package pitch

import (
	"regexp"
	"strings"

	"github.com/kapu/pitch-ai-go/internal/domain"
)

// headingPattern matches "**<label>:**<content>". The lazy label stops at
// the first ":**", so later colons stay in the content. Label and content
// exclude line terminators (\r, U+2028, U+2029), so a line carrying one
// inside it stays plain.
var headingPattern = regexp.MustCompile(`^\*\*([^\r\n\x{2028}\x{2029}]*?):\*\*([^\r\n\x{2028}\x{2029}]*)$`)

// Parse splits raw into ordered sections. Blank lines are dropped, heading
// lines become Heading sections with a trimmed body, and every other line is
// kept verbatim as a PlainLine. Parse never fails.
func Parse(raw string) []domain.PitchSection {
	lines := strings.Split(raw, "\n")
	sections := make([]domain.PitchSection, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if match := headingPattern.FindStringSubmatch(line); match != nil {
			sections = append(sections, domain.NewHeading(match[1], strings.TrimSpace(match[2])))
			continue
		}
		sections = append(sections, domain.NewPlainLine(line))
	}

	return sections
}

// Headings returns the titles of the heading sections, in order.
func Headings(sections []domain.PitchSection) []string {
	titles := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.IsHeading() {
			titles = append(titles, s.Title)
		}
	}
	return titles
}
