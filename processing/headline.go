package processing

import (
	"context"
	"fmt"
	"strings"

	"newsreel/models"
)

// HeadlineResponse represents the JSON response from OpenAI
type HeadlineResponse struct {
	Headline string `json:"headline" jsonschema_description:"A unique, engaging news headline for the video"`
}

var headlineResponseSchema = GenerateSchema[HeadlineResponse]()

// GenerateHeadline calls OpenAI to generate a unique headline for the
// next script in a project, avoiding headlines already used.
func (c *Client) GenerateHeadline(ctx context.Context, project models.Project, existingHeadlines []string) (string, error) {
	prompt := fmt.Sprintf(`You are creating a headline for a new narrated news video.

Project Topic: %s
Project Description: %s

The following headlines have already been used in this project:
%s

Generate a unique, engaging headline for the next video. The headline should:
- Be relevant to the project topic
- Be different from all existing headlines
- Read like a news headline, not clickbait
- Be under 100 characters`,
		project.Topic, project.Description, formatExistingHeadlines(existingHeadlines))

	resp, err := getStructuredResponse[HeadlineResponse](ctx, c.llm, prompt, headlineResponseSchema)
	if err != nil {
		return "", err
	}

	headline := strings.TrimSpace(resp.Headline)
	if headline == "" {
		return "", fmt.Errorf("OpenAI returned empty headline")
	}

	return headline, nil
}

// formatExistingHeadlines formats the list of used headlines for the prompt
func formatExistingHeadlines(headlines []string) string {
	if len(headlines) == 0 {
		return "- None (this is the first video)"
	}
	var formatted []string
	for _, h := range headlines {
		if h != "" {
			formatted = append(formatted, fmt.Sprintf("- %s", h))
		}
	}
	if len(formatted) == 0 {
		return "- None (this is the first video)"
	}
	return strings.Join(formatted, "\n")
}
