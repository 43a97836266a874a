package prompt

// PitchSections lists, in order, the headings the pitch prompt asks for.
var PitchSections = []string{
	"Problema",
	"Solução",
	"Público-Alvo",
	"Modelo de Negócio",
	"Diferencial Competitivo",
	"Chamada para Ação",
}

type PitchScriptData struct {
	Idea     string
	Sections []string
}

type LogoData struct {
	Idea string
}

// templateFile is the on-disk shape of templates/*.yaml.
type templateFile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Template    string `yaml:"template"`
}
