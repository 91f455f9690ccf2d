package qrcode

import (
	"strings"

	"vitashop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance.
// baseURL is the public origin of the shop, e.g. https://shop.example.com.
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ProductURL returns the detail page URL encoded in a product's QR code
func (s *qrcodeService) ProductURL(productID uuid.UUID) string {
	return s.baseURL + "/products/" + productID.String()
}

// GenerateProductQR renders a PNG QR code linking to the product's detail page
func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProductURL(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
