package qrcode

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/skip2/go-qrcode"
)

// Generator encodes content as a black-on-white PNG QR code with error
// correction level L. The version is chosen to fit the content and the
// image keeps the 4-module quiet zone.
type Generator struct {
	moduleSize int
}

// NewGenerator creates a new QR code generator drawing each module as a
// moduleSize x moduleSize pixel square
func NewGenerator(moduleSize int) (*Generator, error) {
	if moduleSize <= 0 {
		return nil, errors.New(constant.ErrInvalidImageSize)
	}
	return &Generator{moduleSize: moduleSize}, nil
}

// Encode returns the PNG bytes of a QR code for content
func (g *Generator) Encode(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New(constant.ErrEmptyContent)
	}

	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	qr.ForegroundColor = color.Black
	qr.BackgroundColor = color.White

	// a negative size is the pixel width of a single module
	png, err := qr.PNG(-g.moduleSize)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}

	return png, nil
}
