package imaging

import (
	"errors"
	"image"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/ophite/pkg/codec"
)

// defaultQRSize is the size in pixels used when no size is specified.
const defaultQRSize = 256

func newQRCode(content string) (*skipqrcode.QRCode, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	q, err := skipqrcode.New(content, skipqrcode.Medium)
	if err != nil {
		return nil, errors.Join(ErrQRCodeFailed, err)
	}
	return q, nil
}

// QRCode renders content as a square QR code image of size pixels.
func QRCode(content string, size int) (image.Image, error) {
	q, err := newQRCode(content)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultQRSize
	}
	return q.Image(size), nil
}

// QRCodePNG renders content as PNG bytes.
func QRCodePNG(content string, size int) ([]byte, error) {
	q, err := newQRCode(content)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultQRSize
	}
	data, err := q.PNG(size)
	if err != nil {
		return nil, errors.Join(ErrEncodingFailed, err)
	}
	return data, nil
}

// DataURI embeds encoded image bytes into a data URI.
//
// Usage:
//
//	<img src="{{.QRCode}}">
func DataURI(data []byte, f Format) string {
	return "data:" + f.MIMEType() + ";base64," + codec.Base64Encode(data)
}

// QRCodeText renders content as a QR code drawn with Unicode block
// characters, suitable for a terminal.
func QRCodeText(content string) (string, error) {
	q, err := newQRCode(content)
	if err != nil {
		return "", err
	}
	return q.ToSmallString(false), nil
}
