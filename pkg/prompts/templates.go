package prompts

import (
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const exampleSeparator = "\n\n"

const summaryExampleTemplate = `Conversation:
{{ .Conversation | trimSuffix "\n" }}
Summary: {{ .Summary }}`

const summaryInputTemplate = `Conversation:
{{ .Input | trimSuffix "\n" }}
Summary:`

type exampleTemplateData struct {
	Conversation string
	Summary      string
}

type inputTemplateData struct {
	Input string
}

// Templates are parsed once. A template that fails to parse is a programming
// error and stops the process at init.
var (
	exampleTmpl = mustParse("summary_example", summaryExampleTemplate)
	inputTmpl   = mustParse("summary_input", summaryInputTemplate)
)

func mustParse(name, text string) *template.Template {
	return template.Must(
		template.New(name).
			Funcs(sprig.TxtFuncMap()).
			Option("missingkey=error").
			Parse(text),
	)
}
