package processing

import (
	"context"
	"fmt"
	"strings"
)

// KeywordsResponse is the structured output for chunk keyword
// extraction.
type KeywordsResponse struct {
	Keywords []string `json:"keywords" jsonschema_description:"2-4 short visual keyword phrases suitable for stock footage search, most relevant first."`
}

// SummaryResponse is the structured output for chunk summarization.
type SummaryResponse struct {
	Summary string `json:"summary" jsonschema_description:"One short sentence summarizing the chunk."`
}

var (
	keywordsResponseSchema = GenerateSchema[KeywordsResponse]()
	summaryResponseSchema  = GenerateSchema[SummaryResponse]()
)

// ChunkKeywords extracts stock-footage search phrases from one chunk of
// transcript text.
func (c *Client) ChunkKeywords(ctx context.Context, text string) ([]string, error) {
	prompt := fmt.Sprintf(`The following is one segment of a narrated news video transcript:

"%s"

Give 2 to 4 short keyword phrases describing visuals that would fit this segment.
Each phrase should work as a stock footage search query (e.g. "city skyline at night"), most relevant first.`, text)

	resp, err := getStructuredResponse[KeywordsResponse](ctx, c.llm, prompt, keywordsResponseSchema)
	if err != nil {
		return nil, err
	}

	var keywords []string
	for _, kw := range resp.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("OpenAI returned no keywords")
	}
	return keywords, nil
}

// ChunkSummary produces a one-line summary of one chunk of transcript
// text.
func (c *Client) ChunkSummary(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Summarize the following segment of a narrated news video transcript in one short sentence:

"%s"`, text)

	resp, err := getStructuredResponse[SummaryResponse](ctx, c.llm, prompt, summaryResponseSchema)
	if err != nil {
		return "", err
	}

	summary := strings.TrimSpace(resp.Summary)
	if summary == "" {
		return "", fmt.Errorf("OpenAI returned empty summary")
	}
	return summary, nil
}
