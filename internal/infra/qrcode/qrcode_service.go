// Package qrcode renders loyalty card numbers as scannable images for the
// front desk scanner.
package qrcode

import (
	"fmt"

	"petspa/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateLoyaltyCardQR generates a PNG QR code encoding the loyalty card number.
// The card number is encoded as plain text so any scanner app can read it.
func (s *qrcodeService) GenerateLoyaltyCardQR(cardNumber string) ([]byte, error) {
	if cardNumber == "" {
		return nil, fmt.Errorf("card number must not be empty")
	}

	qrCode, err := qrcode.New(cardNumber, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
