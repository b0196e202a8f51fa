package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateLoyaltyCardQR generates a QR code image encoding a loyalty card number.
	GenerateLoyaltyCardQR(cardNumber string) ([]byte, error)
}
