package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_IsSoldOut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stocks   []ProductStock
		expected bool
	}{
		{name: "no variants", stocks: nil, expected: true},
		{name: "all variants empty", stocks: []ProductStock{{Stock: 0}, {Stock: 0}}, expected: true},
		{name: "one variant in stock", stocks: []ProductStock{{Stock: 0}, {Stock: 3}}, expected: false},
		{name: "single variant in stock", stocks: []ProductStock{{Stock: 1}}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &Product{Stocks: tt.stocks}
			assert.Equal(t, tt.expected, p.IsSoldOut())
		})
	}
}

func TestProduct_Images(t *testing.T) {
	t.Parallel()

	p := &Product{Images: []Image{
		{ImageURL: "detail.png", IsMain: false},
		{ImageURL: "card.png", IsMain: true},
	}}

	assert.Equal(t, "card.png", p.MainImageURL())
	assert.Equal(t, "detail.png", p.DetailImageURL())

	empty := &Product{}
	assert.Empty(t, empty.MainImageURL())
	assert.Empty(t, empty.DetailImageURL())
}

func TestProduct_MenuName(t *testing.T) {
	t.Parallel()

	p := &Product{Category: &Category{Menu: &Menu{Name: "vitamins"}}}
	assert.Equal(t, "vitamins", p.MenuName())

	assert.Empty(t, (&Product{}).MenuName())
	assert.Empty(t, (&Product{Category: &Category{}}).MenuName())
}

func TestProduct_HasGoal(t *testing.T) {
	t.Parallel()

	goalID := uuid.New()
	p := &Product{Goals: []Goal{{ID: goalID, Name: "immunity"}}}

	assert.True(t, p.HasGoal(goalID))
	assert.False(t, p.HasGoal(uuid.New()))
}

func TestVeganLevel(t *testing.T) {
	t.Parallel()

	assert.True(t, VeganLevelVegan.IsVegan())
	assert.False(t, VeganLevelVegan.IsVegetarian())
	assert.True(t, VeganLevelVegetarian.IsVegetarian())
	assert.False(t, VeganLevelVegetarian.IsVegan())
	assert.False(t, VeganLevelNone.IsVegan())
	assert.False(t, VeganLevel(7).IsVegetarian())
}

func TestProductStock_CanFulfill(t *testing.T) {
	t.Parallel()

	s := &ProductStock{Stock: 2, Price: decimal.NewFromInt(10)}

	assert.True(t, s.CanFulfill(2))
	assert.False(t, s.CanFulfill(5))
	assert.False(t, s.IsSoldOut())
	assert.True(t, (&ProductStock{}).IsSoldOut())
}

func TestTagNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"energy", "sleep"}, GoalNames([]Goal{{Name: "energy"}, {Name: "sleep"}}))
	assert.Equal(t, []string{"soy"}, AllergyNames([]Allergy{{Name: "soy"}}))
	assert.Equal(t, []string{}, DietaryHabitNames(nil))
}
