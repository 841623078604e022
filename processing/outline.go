package processing

import (
	"context"
	"fmt"

	"newsreel/models"
)

// OutlineResponse is the structured output for the outline call.
type OutlineResponse struct {
	Sections []OutlinePoint `json:"sections" jsonschema_description:"Ordered outline of the video script. Aim for 3-5 sections."`
}

// OutlinePoint is one outline entry.
type OutlinePoint struct {
	Heading string `json:"heading" jsonschema_description:"Short section heading."`
	Summary string `json:"summary" jsonschema_description:"One sentence describing what this section covers."`
}

var outlineResponseSchema = GenerateSchema[OutlineResponse]()

// GenerateOutline expands a headline into an ordered outline of
// sections for the narration script.
func (c *Client) GenerateOutline(ctx context.Context, project models.Project, headline string) ([]OutlinePoint, error) {
	prompt := fmt.Sprintf(`You are planning a narrated news-style video for a project about "%s" (%s).
The video's headline is: "%s".
Create an ordered outline of 3 to 5 sections for the narration script.
For each section give a short heading and a one-sentence summary of what it covers.
The sections should flow as a single coherent news story read aloud by one narrator.`,
		project.Topic, project.Description, headline)

	resp, err := getStructuredResponse[OutlineResponse](ctx, c.llm, prompt, outlineResponseSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate outline: %w", err)
	}

	if len(resp.Sections) == 0 {
		return nil, fmt.Errorf("LLM returned no outline sections")
	}

	return resp.Sections, nil
}
