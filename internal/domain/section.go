package domain

type SectionKind string

const (
	SectionHeading SectionKind = "heading"
	SectionPlain   SectionKind = "plain"
)

func (k SectionKind) String() string {
	return string(k)
}

// PitchSection is one display unit of a parsed pitch: either a heading with
// its body, or a plain line kept verbatim.
type PitchSection struct {
	Kind  SectionKind `json:"kind"`
	Title string      `json:"title,omitempty"`
	Body  string      `json:"body,omitempty"`
	Text  string      `json:"text,omitempty"`
}

func NewHeading(title, body string) PitchSection {
	return PitchSection{Kind: SectionHeading, Title: title, Body: body}
}

func NewPlainLine(text string) PitchSection {
	return PitchSection{Kind: SectionPlain, Text: text}
}

func (s PitchSection) IsHeading() bool {
	return s.Kind == SectionHeading
}
