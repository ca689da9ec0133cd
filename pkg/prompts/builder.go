package prompts

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jinzhu/copier"
)

// Builder renders few-shot summary prompts from a fixed example set. It is safe
// for concurrent use; nothing in it changes after NewBuilder returns.
type Builder struct {
	examples []Example
	// rendered holds the example section, which never changes.
	rendered string
}

// DefaultBuilder uses the embedded example set.
var DefaultBuilder = NewBuilder(summaryExamples)

// NewBuilder copies examples, so later changes to the caller's slice do not
// reach the builder, and pre-renders the example section.
func NewBuilder(examples []Example) *Builder {
	b := &Builder{examples: copyExamples(examples)}

	parts := make([]string, 0, len(b.examples))
	for _, ex := range b.examples {
		parts = append(parts, render(exampleTmpl, exampleTemplateData{
			Conversation: ex.Conversation,
			Summary:      ex.Summary,
		}))
	}
	b.rendered = strings.Join(parts, exampleSeparator)

	return b
}

// BuildSummaryPrompt renders every example, in order, followed by the transcript
// with an empty summary for the backend to complete.
func (b *Builder) BuildSummaryPrompt(transcript string) string {
	suffix := render(inputTmpl, inputTemplateData{Input: transcript})
	if b.rendered == "" {
		return suffix
	}
	return b.rendered + exampleSeparator + suffix
}

// Examples returns a copy of the builder's example set.
func (b *Builder) Examples() []Example {
	return copyExamples(b.examples)
}

// BuildSummaryPrompt builds a prompt with DefaultBuilder.
func BuildSummaryPrompt(transcript string) string {
	return DefaultBuilder.BuildSummaryPrompt(transcript)
}

func copyExamples(examples []Example) []Example {
	out := make([]Example, len(examples))
	if err := copier.Copy(&out, &examples); err != nil {
		panic(fmt.Errorf("copying prompt examples: %w", err))
	}
	return out
}

// render panics on failure: the templates and their data types are fixed at
// compile time, so an execution error can only be a bug.
func render(tmpl *template.Template, data any) string {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		panic(fmt.Errorf("rendering %s prompt template: %w", tmpl.Name(), err))
	}
	return sb.String()
}
