package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Tags are linked through the product_goals, product_allergies and product_dietary_habits join tables.
type ProductModel struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CategoryID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	Category      *CategoryModel      `gorm:"foreignKey:CategoryID"`
	Name          string              `gorm:"type:varchar(45);not null"`
	SubName       string              `gorm:"type:varchar(45);not null;default:''"`
	Description   string              `gorm:"type:varchar(300);not null;default:''"`
	NutritionURL  string              `gorm:"column:nutrition_url;type:varchar(2000);not null;default:''"`
	IsNew         bool                `gorm:"not null;default:false;index"`
	VeganLevel    int                 `gorm:"not null;default:0"`
	Goals         []GoalModel         `gorm:"many2many:product_goals;joinForeignKey:ProductID;joinReferences:GoalID"`
	Allergies     []AllergyModel      `gorm:"many2many:product_allergies;joinForeignKey:ProductID;joinReferences:AllergyID"`
	DietaryHabits []DietaryHabitModel `gorm:"many2many:product_dietary_habits;joinForeignKey:ProductID;joinReferences:DietaryHabitID"`
	Images        []ImageModel        `gorm:"foreignKey:ProductID"`
	Stocks        []ProductStockModel `gorm:"foreignKey:ProductID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductStockModel is the GORM-specific struct for the 'product_stocks' table.
// A product has one row per size; single-variant products use an empty size.
type ProductStockModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_product_stocks_product_size"`
	Product   *ProductModel   `gorm:"foreignKey:ProductID"`
	Size      string          `gorm:"type:varchar(45);not null;default:'';uniqueIndex:ux_product_stocks_product_size"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock     int             `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductStockModel) TableName() string {
	return "product_stocks"
}

// ImageModel is the GORM-specific struct for the 'images' table.
type ImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(2000);not null"`
	IsMain    bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}
