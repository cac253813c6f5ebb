// Package imaging converts images to and from encoded bytes and renders QR
// codes as images.
//
// Encode writes PNG, JPEG or GIF. Decode sniffs the format from the data and
// reports its name:
//
//	data, err := imaging.Encode(img, imaging.PNG)
//	img, format, err := imaging.Decode(data) // format == "png"
//
// QR codes come from github.com/skip2/go-qrcode. QRCode returns an
// image.Image that can be composed or re-encoded, QRCodePNG returns PNG bytes
// and DataURI turns any encoded image into a data URI for HTML:
//
//	png, err := imaging.QRCodePNG("https://example.com", 256)
//	uri := imaging.DataURI(png, imaging.PNG) // data:image/png;base64,...
package imaging
