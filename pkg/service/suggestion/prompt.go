package suggestion

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"

	"github.com/inventry-dev/inventry/pkg/domain/model"
)

// DefaultPromptTemplate is the analyst prompt sent to the LLM. It can be
// overridden via the prompt config file; the template receives Idea, Count
// and PatentInfo fields.
const DefaultPromptTemplate = `You are an expert patent analyst AI assistant. Analyze the user's invention idea against similar patents found through semantic search.

**User's Invention Idea:**
{{.Idea}}

**Similar Patents Found ({{.Count}}):**
{{.PatentInfo}}

**Instructions:**
Provide a comprehensive patent analysis in the following structured format. Use clear headings and professional language.

## Patent Landscape Analysis

Provide a brief overview of how the user's idea relates to the existing patent landscape.

## Key Overlaps with Existing Patents

Identify and explain the main areas where the user's idea overlaps with the similar patents listed above. Reference specific patent titles or numbers.

## Novelty & Unique Aspects

Highlight what is new, unique, or different in the user's idea that is NOT covered by the existing patents. Be specific about the innovative elements.

## Recommendations to Strengthen Patentability

Suggest 3-5 concrete improvements or modifications that would:
- Increase the novelty of the invention
- Make it more defensible as a patent
- Differentiate it from prior art

## Patentability Assessment

Provide a brief assessment of the overall patentability potential (High/Medium/Low) with reasoning.

**Important Guidelines:**
- Be concise and professional
- Use bullet points for clarity
- Reference specific patents when making comparisons
- Focus on actionable insights
- Do not include disclaimers about missing information
`

type promptInput struct {
	Idea       string
	Count      int
	PatentInfo string
}

func parsePromptTemplate(tmpl string) (*template.Template, error) {
	parsed, err := template.New("suggest").Parse(tmpl)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid prompt template")
	}
	return parsed, nil
}

// buildPatentInfo renders the numbered prior-art list embedded in the prompt
func buildPatentInfo(patents []model.Patent) string {
	var sb strings.Builder
	for i, p := range patents {
		title := p.Title
		if title == "" {
			title = "N/A"
		}
		abstract := p.Abstract
		if abstract == "" {
			abstract = "N/A"
		}
		date := p.Date
		if date == "" {
			date = "N/A"
		}
		fmt.Fprintf(&sb, "%d. **%s**\n   - Patent Number: %s\n   - Date: %s\n   - Abstract: %s\n\n",
			i+1, title, p.PublicationNumber, date, abstract)
	}
	return sb.String()
}

func renderPrompt(tmpl *template.Template, idea string, patents []model.Patent) (string, error) {
	var sb strings.Builder
	err := tmpl.Execute(&sb, promptInput{
		Idea:       idea,
		Count:      len(patents),
		PatentInfo: buildPatentInfo(patents),
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to render prompt")
	}
	return sb.String(), nil
}
