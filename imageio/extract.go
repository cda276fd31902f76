// Package imageio moves generated images across the service boundary onto
// the local filesystem and inspects image bytes on the way through.
package imageio

import (
	"errors"
	"fmt"
	"os"

	"github.com/Bizzaro10/nano-banana-script/geminiapi"
)

// ErrNoImage signals that a response carried no inline image data: no
// candidates, no content parts, or parts without inline bytes. It is the
// "empty but successful" outcome, distinct from a request error.
var ErrNoImage = errors.New("imageio: response contains no inline image data")

// ExtractInlineImage returns the first inline-image blob found in the first
// candidate's parts, scanning in part order. Returns ErrNoImage if nothing
// carries inline data.
//
// Only the first candidate is inspected; the service is asked for a single
// image and later candidates are never consulted.
func ExtractInlineImage(resp *geminiapi.Response) (*geminiapi.Blob, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, ErrNoImage
	}

	for _, part := range resp.Candidates[0].Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData, nil
		}
	}
	return nil, ErrNoImage
}

// SaveInlineImage extracts the first inline image from the response and
// writes it to path in its native encoded form. On success it returns the
// image bytes so the caller can feed them into a follow-up request.
//
// On ErrNoImage no file is written and no bytes are returned.
func SaveInlineImage(resp *geminiapi.Response, path string) ([]byte, error) {
	blob, err := ExtractInlineImage(resp)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, blob.Data, 0644); err != nil {
		return nil, fmt.Errorf("imageio: write %s: %w", path, err)
	}
	return blob.Data, nil
}
