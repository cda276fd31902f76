package imageio

import (
	"net/http"
	"strings"
)

// FallbackMIMEType is used when the reference image's format cannot be
// identified. JPEG is what operators overwhelmingly supply.
const FallbackMIMEType = "image/jpeg"

// DetectImageMIME sniffs the MIME type of encoded image bytes from their
// magic numbers. Non-image or unrecognizable content falls back to
// FallbackMIMEType; the service performs its own validation either way.
func DetectImageMIME(data []byte) string {
	detected := http.DetectContentType(data)
	if strings.HasPrefix(detected, "image/") {
		return detected
	}
	return FallbackMIMEType
}
