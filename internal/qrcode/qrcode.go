package qrcode

import qr "github.com/skip2/go-qrcode"

// Terminal renders text as a QR code drawn with block characters, so the
// result can be scanned straight off the console.
func Terminal(text string) (string, error) {
	code, err := qr.New(text, qr.Medium)
	if err != nil {
		return "", err
	}
	return code.ToSmallString(false), nil
}
