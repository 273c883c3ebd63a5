package qr_test

import (
	"bytes"
	"testing"

	"github.com/Shaikh-Umar-Farooq/ipopeventwebhook/internal/qr"
	"github.com/stretchr/testify/assert"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestRender_ProducesPNG(t *testing.T) {
	r := qr.NewRenderer()

	png, err := r.Render("6a1b2c3d4e5f60718293a4b5c6d7e8f9")

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output must be a PNG image")
}

func TestRender_EmptyToken(t *testing.T) {
	r := qr.NewRenderer()

	_, err := r.Render("")

	assert.Error(t, err)
}
