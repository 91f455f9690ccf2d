package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for product QR code generation
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code linking to the product's detail page
	GenerateProductQR(productID uuid.UUID) ([]byte, error)

	// ProductURL returns the detail page URL encoded in a product's QR code
	ProductURL(productID uuid.UUID) string
}
