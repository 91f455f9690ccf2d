package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ProductSummary is a product card in the catalog listing.
type ProductSummary struct {
	ID           uuid.UUID `json:"id"`
	DisplayTitle string    `json:"displayTitle"`
	SubTitle     string    `json:"subTitle"`
	ImageURL     string    `json:"imageUrl"`
	SymbolURL    []string  `json:"symbolURL"` // Goal names
	Description  string    `json:"description"`
	DisplayPrice []string  `json:"displayPrice"` // One price per variant
	DisplaySize  []string  `json:"displaySize"`  // One size per variant
	IsNew        bool      `json:"isNew"`
	IsSoldout    bool      `json:"isSoldout"`
}

// Subcategory is the heading of a category group.
type Subcategory struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategoryGroup is a category with the products listed under it.
type CategoryGroup struct {
	ID          uuid.UUID        `json:"id"`
	Subcategory Subcategory      `json:"subcategory"`
	Item        []ProductSummary `json:"item"`
}

// ProductListing is the result of the listing filter chain.
// Exactly one of Categories or Products is populated, depending on Strategy.
type ProductListing struct {
	Strategy   string           `json:"strategy"`
	Categories []CategoryGroup  `json:"categories,omitempty"`
	Products   []ProductSummary `json:"products,omitempty"`
}

// Payload returns the value rendered as the response data.
func (l *ProductListing) Payload() any {
	if l.Categories != nil {
		return l.Categories
	}
	if l.Products != nil {
		return l.Products
	}

	return []ProductSummary{}
}

// SimilarProduct is a product sharing a health goal with the one being viewed.
type SimilarProduct struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	SubTitle       string    `json:"subTitle"`
	ImageURL       string    `json:"imageUrl"`
	HealthGoalList []string  `json:"healthGoalList"`
}

// ProductDetail is the product page payload.
//
// ProductPrice and IsSoldOut are scalars (string, bool) for single-variant menus and
// size-keyed maps (map[string]string, map[string]bool) otherwise.
type ProductDetail struct {
	Category            string           `json:"category"`
	ID                  uuid.UUID        `json:"id"`
	ProductImageSrc     string           `json:"productImageSrc"`
	ProductCardImageSrc string           `json:"productCardImageSrc"`
	IsVegan             bool             `json:"isVegan"`
	IsVegetarian        bool             `json:"isVegetarian"`
	HealthGoalList      []string         `json:"healthGoalList"`
	Title               string           `json:"title"`
	SubTitle            string           `json:"subTitle"`
	Description         string           `json:"description"`
	NutritionLink       string           `json:"nutritionLink"`
	AllergyList         []string         `json:"allergyList"`
	DietaryHabitList    []string         `json:"dietaryHabitList"`
	ProductPrice        any              `json:"productPrice"`
	IsSoldOut           any              `json:"isSoldOut"`
	SimilarProduct      []SimilarProduct `json:"similarProduct"`
}

// CatalogUsecase defines the interface for catalog browsing use cases
type CatalogUsecase interface {
	// ListProducts runs the listing filter chain (category, goal, new flag) for the sort token
	ListProducts(ctx context.Context, sort string) (*ProductListing, error)

	// GetProductDetail returns the product page payload
	GetProductDetail(ctx context.Context, productID uuid.UUID) (*ProductDetail, error)

	// GetProductQRCode returns a PNG QR code linking to the product page
	GetProductQRCode(ctx context.Context, productID uuid.UUID) ([]byte, error)
}
