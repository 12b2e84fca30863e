package imageutil

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // decode support
	_ "image/jpeg"
	"image/png"
	"strings"

	_ "golang.org/x/image/webp" // decode support
)

// 업로드 허용 이미지 형식
var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Base64 관련 에러
var (
	ErrUnsupportedContentType = errors.New("unsupported image content type")
	ErrInvalidBase64          = errors.New("invalid base64 image data")
)

// AllowedContentType reports whether the MIME type may be uploaded
func AllowedContentType(contentType string) bool {
	_, ok := allowedContentTypes[strings.ToLower(contentType)]
	return ok
}

// ExtForContentType returns the canonical file extension for a MIME type
func ExtForContentType(contentType string) string {
	return allowedContentTypes[strings.ToLower(contentType)]
}

// DecodeBase64 decodes a base64 image blob. A data-URI prefix
// ("data:image/png;base64,") is stripped and missing padding is added
// before decoding.
func DecodeBase64(data string) ([]byte, error) {
	data = strings.TrimSpace(data)
	if idx := strings.Index(data, ";base64,"); idx >= 0 {
		data = data[idx+len(";base64,"):]
	}
	if pad := len(data) % 4; pad != 0 {
		data += strings.Repeat("=", 4-pad)
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return decoded, nil
}

// ReencodePNG validates the bytes as a decodable image and re-encodes
// them as PNG. User-supplied design images are normalized this way
// before upload.
func ReencodePNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
