package imageio

import (
	"bytes"
	"fmt"
	"image"

	// Registered decoders for the formats the service and operators supply.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Dimensions decodes just the header of an encoded image and returns its
// pixel width and height. Supports PNG, JPEG, GIF and WebP.
//
// This is a pure function; it never decodes the full pixel data.
func Dimensions(data []byte) (width, height int, err error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("imageio: decode image header: %w", err)
	}
	return config.Width, config.Height, nil
}
