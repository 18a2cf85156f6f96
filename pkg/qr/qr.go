// Package qr renders wallet addresses as scannable PNG images. No core
// logic depends on its output.
package qr

import (
	"errors"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the rendered image width and height in pixels.
const DefaultSize = 256

// EncodePNG renders content as a PNG QR code of the given pixel size.
func EncodePNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr: empty content")
	}
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
