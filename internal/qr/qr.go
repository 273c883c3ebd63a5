package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Entry scanners read these codes from phone screens in venue lighting, so
// rendering is pinned to the highest error-correction level and a fixed
// 500px black-on-white PNG.
const imageSize = 500

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(token string) ([]byte, error) {
	png, err := qrcode.Encode(token, qrcode.Highest, imageSize)
	if err != nil {
		return nil, fmt.Errorf("error generating QR code: %w", err)
	}
	return png, nil
}
