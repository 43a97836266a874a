package domain

import "strings"

// LogoDataURIPrefix is prepended to the base64 PNG payload of a generated logo.
const LogoDataURIPrefix = "data:image/png;base64,"

// GenerationResult is produced only when both the pitch text and the logo
// were generated. Neither field is ever empty.
type GenerationResult struct {
	PitchText string `json:"pitch"`
	LogoImage string `json:"logoUrl"`
}

func NewGenerationResult(pitchText, logoBase64 string) *GenerationResult {
	return &GenerationResult{
		PitchText: pitchText,
		LogoImage: LogoDataURIPrefix + logoBase64,
	}
}

// LogoBase64 returns the payload of LogoImage without the data URI prefix.
func (r *GenerationResult) LogoBase64() string {
	return strings.TrimPrefix(r.LogoImage, LogoDataURIPrefix)
}

type TextRequest struct {
	Model  string
	Prompt string
}

type ImageConfig struct {
	Count        int
	OutputFormat string
	AspectRatio  string
}

type ImageRequest struct {
	Model  string
	Prompt string
	Config ImageConfig
}

// GeneratedImage holds one image returned by a provider, base64-encoded.
type GeneratedImage struct {
	Base64   string
	MIMEType string
}
