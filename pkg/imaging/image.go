package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"
)

// Format is an encoded image format.
type Format uint8

const (
	PNG Format = iota
	JPEG
	GIF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// MIMEType returns the media type of f.
func (f Format) MIMEType() string {
	return "image/" + f.String()
}

// ParseFormat resolves a format name. "jpg" is accepted for JPEG.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// JPEGQuality is the quality used by Encode for JPEG output.
const JPEGQuality = 90

// Encode writes img in format f.
func Encode(img image.Image, f Format) ([]byte, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	var buf bytes.Buffer
	var err error
	switch f {
	case PNG:
		err = png.Encode(&buf, img)
	case JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality})
	case GIF:
		err = gif.Encode(&buf, img, nil)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, errors.Join(ErrEncodingFailed, err)
	}
	return buf.Bytes(), nil
}

// Decode reads an encoded image and reports its format name.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmpty
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", errors.Join(ErrInvalidImage, err)
	}
	return img, format, nil
}
