package geminiapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// Client implements Service against the real Gemini API.
//
// The underlying HTTP client carries a long timeout: image generation on the
// pro preview model routinely takes minutes, so the bound is a backstop
// against a hung connection, not a latency target.
type Client struct {
	genai *genai.Client
}

// NewClient creates a Gemini-backed Service.
//
// Parameters:
//   - apiKey: the GOOGLE_API_KEY credential (required)
//   - timeout: client-level bound for a single request (e.g. 600s)
//
// Returns an error if the SDK client cannot be constructed.
func NewClient(ctx context.Context, apiKey string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("geminiapi: api key cannot be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("geminiapi: failed to create client: %w", err)
	}

	return &Client{genai: client}, nil
}

// GenerateImage implements Service.
func (c *Client) GenerateImage(ctx context.Context, model string, parts []Part) (*Response, error) {
	contents := []*genai.Content{{Parts: toGenaiParts(parts)}}

	result, err := c.genai.Models.GenerateContent(ctx, model, contents, generationConfig())
	if err != nil {
		return nil, fmt.Errorf("geminiapi: generate content: %w", err)
	}

	return fromGenaiResponse(result), nil
}

// toGenaiParts converts boundary parts into SDK parts, preserving order.
func toGenaiParts(parts []Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.InlineData != nil {
			out = append(out, genai.NewPartFromBytes(p.InlineData.Data, p.InlineData.MIMEType))
			continue
		}
		out = append(out, genai.NewPartFromText(p.Text))
	}
	return out
}

// fromGenaiResponse flattens the SDK response into the boundary types.
// Candidates without content become empty candidates rather than being
// dropped, so callers see the response shape the service actually returned.
func fromGenaiResponse(result *genai.GenerateContentResponse) *Response {
	resp := &Response{}
	if result == nil {
		return resp
	}

	for _, cand := range result.Candidates {
		candidate := Candidate{}
		if cand != nil && cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part == nil {
					continue
				}
				p := Part{Text: part.Text}
				if part.InlineData != nil {
					p.InlineData = &Blob{
						MIMEType: part.InlineData.MIMEType,
						Data:     part.InlineData.Data,
					}
				}
				candidate.Parts = append(candidate.Parts, p)
			}
		}
		resp.Candidates = append(resp.Candidates, candidate)
	}
	return resp
}
