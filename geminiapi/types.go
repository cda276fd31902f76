// Package geminiapi is the boundary to the Gemini generative-image service.
//
// It exposes a narrow Service interface (submit parts, get back a response of
// candidates with parts) so the generation driver can run against a
// deterministic fake in tests without ever contacting the real API.
package geminiapi

import "context"

// Blob is inline binary data with its MIME type, either an input image
// attached to a request or a generated image embedded in a response.
type Blob struct {
	MIMEType string
	Data     []byte
}

// Part is one ordered element of a request or response: text, inline data,
// or (in degenerate responses) neither.
type Part struct {
	Text       string
	InlineData *Blob
}

// NewTextPart returns a Part carrying only text.
func NewTextPart(text string) Part {
	return Part{Text: text}
}

// NewImagePart returns a Part carrying inline image bytes.
func NewImagePart(data []byte, mimeType string) Part {
	return Part{InlineData: &Blob{MIMEType: mimeType, Data: data}}
}

// Candidate is one generation result; it may have zero parts.
type Candidate struct {
	Parts []Part
}

// Response is the outcome of a generate-content call: zero or more
// candidates, each with zero or more parts. Generated images appear as
// inline data.
type Response struct {
	Candidates []Candidate
}

// Service is the single outbound operation this program performs.
// The production implementation is Client; tests substitute fakes.
type Service interface {
	// GenerateImage submits the model identifier and ordered content parts
	// under the fixed image-generation config and returns the raw response.
	// A response with no inline image data is not an error here; callers
	// distinguish the empty-result case themselves.
	GenerateImage(ctx context.Context, model string, parts []Part) (*Response, error)
}
