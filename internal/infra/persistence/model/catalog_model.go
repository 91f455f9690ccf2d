package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuModel is the GORM-specific struct for the 'menus' table.
type MenuModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(45);not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuModel) TableName() string {
	return "menus"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
// Each category is listed under one menu.
type CategoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MenuID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Menu        *MenuModel `gorm:"foreignKey:MenuID"`
	Name        string     `gorm:"type:varchar(45);not null"`
	Description string     `gorm:"type:varchar(300);not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// GoalModel is the GORM-specific struct for the 'goals' table.
type GoalModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(45);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (GoalModel) TableName() string {
	return "goals"
}

// AllergyModel is the GORM-specific struct for the 'allergies' table.
type AllergyModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(45);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (AllergyModel) TableName() string {
	return "allergies"
}

// DietaryHabitModel is the GORM-specific struct for the 'dietary_habits' table.
type DietaryHabitModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(45);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (DietaryHabitModel) TableName() string {
	return "dietary_habits"
}
