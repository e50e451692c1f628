package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeImageDataURI splits a "data:image/<subtype>;base64,<payload>" URI
// into raw bytes and the content type.
func DecodeImageDataURI(dataURI string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return nil, "", fmt.Errorf("not an image data URI")
	}

	parts := strings.SplitN(dataURI, ",", 2)
	if len(parts) != 2 {
		return nil, "", fmt.Errorf("malformed data URI")
	}

	meta := strings.TrimPrefix(parts[0], "data:")
	contentType := strings.SplitN(meta, ";", 2)[0]

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return data, contentType, nil
}
