package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VeganLevel is the tri-state vegan marker stored on a product.
type VeganLevel int

const (
	// VeganLevelNone marks products that are neither vegan nor vegetarian.
	VeganLevelNone VeganLevel = 0
	// VeganLevelVegan marks vegan products.
	VeganLevelVegan VeganLevel = 1
	// VeganLevelVegetarian marks vegetarian (but not vegan) products.
	VeganLevelVegetarian VeganLevel = 2
)

// IsVegan reports whether the level marks a vegan product.
func (l VeganLevel) IsVegan() bool {
	return l == VeganLevelVegan
}

// IsVegetarian reports whether the level marks a vegetarian product.
// Vegan and vegetarian are mutually exclusive.
func (l VeganLevel) IsVegetarian() bool {
	return l == VeganLevelVegetarian
}

// Product is a catalog item. Its purchasable variants live in Stocks.
type Product struct {
	ID            uuid.UUID      `json:"id"`             // The Global Unique Identifier (GUID) for the product.
	CategoryID    uuid.UUID      `json:"category_id"`    // The category the product is listed under.
	Category      *Category      `json:"category"`       // Loaded category (with menu), nil when not preloaded.
	Name          string         `json:"name"`           // Display title.
	SubName       string         `json:"sub_name"`       // Secondary title shown under the name.
	Description   string         `json:"description"`    // Long description.
	NutritionURL  string         `json:"nutrition_url"`  // Link to the nutrition facts sheet.
	IsNew         bool           `json:"is_new"`         // Flags new arrivals.
	VeganLevel    VeganLevel     `json:"vegan_level"`    // Vegan / vegetarian marker.
	Goals         []Goal         `json:"goals"`          // Health goal tags.
	Allergies     []Allergy      `json:"allergies"`      // Allergen tags.
	DietaryHabits []DietaryHabit `json:"dietary_habits"` // Diet tags.
	Images        []Image        `json:"images"`         // Card and detail pictures.
	Stocks        []ProductStock `json:"stocks"`         // Size / price / stock variants.
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TotalStock sums the stock of every variant.
func (p *Product) TotalStock() int {
	total := 0
	for _, s := range p.Stocks {
		total += s.Stock
	}

	return total
}

// IsSoldOut reports whether the sum of stock across all variants is zero.
func (p *Product) IsSoldOut() bool {
	return p.TotalStock() == 0
}

// MainImageURL returns the URL of the main (card) image, or "" if the product has none.
func (p *Product) MainImageURL() string {
	for _, img := range p.Images {
		if img.IsMain {
			return img.ImageURL
		}
	}

	return ""
}

// DetailImageURL returns the URL of the first non-main image, or "" if the product has none.
func (p *Product) DetailImageURL() string {
	for _, img := range p.Images {
		if !img.IsMain {
			return img.ImageURL
		}
	}

	return ""
}

// MenuName returns the name of the menu the product's category belongs to.
func (p *Product) MenuName() string {
	return p.Category.MenuName()
}

// HasGoal reports whether the product is tagged with the given goal.
func (p *Product) HasGoal(goalID uuid.UUID) bool {
	for _, g := range p.Goals {
		if g.ID == goalID {
			return true
		}
	}

	return false
}

// ProductStock is a purchasable variant of a product: one size with its own price and stock.
// Single-variant products use an empty Size.
type ProductStock struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	Size      string          `json:"size"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
}

// IsSoldOut reports whether the variant has no stock left.
func (s *ProductStock) IsSoldOut() bool {
	return s.Stock == 0
}

// CanFulfill reports whether the variant's stock covers the requested quantity.
// Stock is only checked, never reserved.
func (s *ProductStock) CanFulfill(quantity int) bool {
	return s.Stock-quantity >= 0
}
