package processing

import (
	"context"
	"fmt"
	"strings"

	"newsreel/models"
)

// SectionResponse is the structured output for one section expansion.
type SectionResponse struct {
	Body string `json:"body" jsonschema_description:"The narration prose for this section, plain spoken text without headings or stage directions."`
}

var sectionResponseSchema = GenerateSchema[SectionResponse]()

// GenerateSectionBody expands one outline point into narration prose,
// carrying the prose written so far as conversational context so the
// sections flow into each other.
func (c *Client) GenerateSectionBody(ctx context.Context, headline string, section models.Section, priorProse string) (string, error) {
	prior := "This is the opening section; start the story."
	if priorProse != "" {
		prior = fmt.Sprintf("The narration so far reads:\n%s\nContinue from there without repeating it.", priorProse)
	}

	prompt := fmt.Sprintf(`You are writing the voiceover for a narrated news video headlined "%s".
Write the narration for the section "%s" (%s).
%s
Write 2-4 short paragraphs of plain spoken prose. No headings, no bullet points, no stage directions.`,
		headline, section.Heading, section.Summary, prior)

	resp, err := getStructuredResponse[SectionResponse](ctx, c.llm, prompt, sectionResponseSchema)
	if err != nil {
		return "", fmt.Errorf("failed to generate section %d: %w", section.Position, err)
	}

	body := strings.TrimSpace(resp.Body)
	if body == "" {
		return "", fmt.Errorf("OpenAI returned empty body for section %d", section.Position)
	}

	return body, nil
}

// AssembleArticle joins expanded section bodies into the article text
// that is sent to the voiceover stage.
func AssembleArticle(sections []models.Section) string {
	var bodies []string
	for _, s := range sections {
		if s.Body != "" {
			bodies = append(bodies, s.Body)
		}
	}
	return strings.Join(bodies, "\n\n")
}
