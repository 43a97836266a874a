package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var templateFS embed.FS

type TemplateName string

const (
	TemplatePitchScript TemplateName = "pitch_script.yaml"
	TemplateLogo        TemplateName = "logo.yaml"
)

var templateFuncs = template.FuncMap{
	"joinList": joinList,
}

// joinList joins items with sep, using last before the final item.
func joinList(items []string, sep, last string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], sep) + last + items[len(items)-1]
}

type PromptBuilder struct {
	mu        sync.RWMutex
	templates map[TemplateName]*template.Template
}

var (
	defaultBuilderOnce sync.Once
	defaultBuilder     *PromptBuilder
)

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		templates: make(map[TemplateName]*template.Template),
	}
}

func DefaultPromptBuilder() *PromptBuilder {
	defaultBuilderOnce.Do(func() {
		defaultBuilder = NewPromptBuilder()
	})
	return defaultBuilder
}

// RenderPitchScript renders the text-generation prompt for idea.
func (pb *PromptBuilder) RenderPitchScript(idea string) (string, error) {
	return pb.Render(TemplatePitchScript, PitchScriptData{
		Idea:     idea,
		Sections: PitchSections,
	})
}

// RenderLogo renders the image-generation prompt for idea.
func (pb *PromptBuilder) RenderLogo(idea string) (string, error) {
	return pb.Render(TemplateLogo, LogoData{Idea: idea})
}

func (pb *PromptBuilder) Render(name TemplateName, data any) (string, error) {
	tmpl, err := pb.getTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt %s: %w", name, err)
	}

	return buf.String(), nil
}

func (pb *PromptBuilder) getTemplate(name TemplateName) (*template.Template, error) {
	pb.mu.RLock()
	if tmpl, ok := pb.templates[name]; ok {
		pb.mu.RUnlock()
		return tmpl, nil
	}
	pb.mu.RUnlock()

	filename := filepath.ToSlash(filepath.Join("templates", string(name)))
	content, err := templateFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load prompt template %s: %w", name, err)
	}

	var file templateFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("decode prompt template %s: %w", name, err)
	}
	if strings.TrimSpace(file.Template) == "" {
		return nil, fmt.Errorf("prompt template %s has no template body", name)
	}

	tmpl, err := template.New(file.Name).Funcs(templateFuncs).Option("missingkey=error").Parse(file.Template)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template %s: %w", name, err)
	}

	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.templates[name] = tmpl

	return tmpl, nil
}
