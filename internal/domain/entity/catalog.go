// Package entity contains the core business objects of the shop: the catalog
// (menus, categories, products and their variants) and the order aggregate.
package entity

import (
	"github.com/google/uuid"
)

// Menu is the top-level grouping a category belongs to, e.g. "vitamins" or "protein".
type Menu struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Category groups products under a menu.
type Category struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the category.
	MenuID      uuid.UUID `json:"menu_id"`     // The menu this category is listed under.
	Menu        *Menu     `json:"menu"`        // Loaded menu, nil when not preloaded.
	Name        string    `json:"name"`        // Display title, also matched by the listing sort token.
	Description string    `json:"description"` // Short blurb shown above the category's products.
}

// MenuName returns the name of the category's menu, or an empty string when it was not loaded.
func (c *Category) MenuName() string {
	if c == nil || c.Menu == nil {
		return ""
	}

	return c.Menu.Name
}

// Goal is a health objective tag used to filter the catalog and to link similar products.
type Goal struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Allergy is an allergen tag attached to products.
type Allergy struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// DietaryHabit is a diet tag attached to products (e.g. "keto", "gluten free").
type DietaryHabit struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Image is a product picture. Each product has exactly one main (card) image
// and optionally one non-main detail image.
type Image struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	ImageURL  string    `json:"image_url"`
	IsMain    bool      `json:"is_main"`
}

// GoalNames returns the names of the given goals in order.
func GoalNames(goals []Goal) []string {
	names := make([]string, 0, len(goals))
	for _, g := range goals {
		names = append(names, g.Name)
	}

	return names
}

// AllergyNames returns the names of the given allergies in order.
func AllergyNames(allergies []Allergy) []string {
	names := make([]string, 0, len(allergies))
	for _, a := range allergies {
		names = append(names, a.Name)
	}

	return names
}

// DietaryHabitNames returns the names of the given dietary habits in order.
func DietaryHabitNames(habits []DietaryHabit) []string {
	names := make([]string, 0, len(habits))
	for _, h := range habits {
		names = append(names, h.Name)
	}

	return names
}
