package main

import (
	"context"
	"fmt"
	"log/slog"

	"vitashop/config"
	"vitashop/internal/infra/cache"
	"vitashop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedNamespace derives stable ids so reseeding never duplicates rows.
var seedNamespace = uuid.MustParse("6f1c2a7e-3b0d-4f5e-9a61-0c8d2e4b7a13")

func seedID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+name))
}

type seedVariant struct {
	size  string
	price string
	stock int
}

type seedProduct struct {
	name        string
	subName     string
	description string
	category    string
	isNew       bool
	veganLevel  int
	goals       []string
	allergies   []string
	habits      []string
	variants    []seedVariant
}

var (
	seedMenus = map[string][]string{
		"vitamins": {"Multivitamins", "Minerals"},
		"proteins": {"Whey Protein", "Plant Protein"},
	}

	seedProducts = []seedProduct{
		{
			name:        "Daily Multi",
			subName:     "30 tablets",
			description: "Everyday blend of thirteen vitamins.",
			category:    "Multivitamins",
			isNew:       true,
			veganLevel:  1,
			goals:       []string{"Energy", "Immunity"},
			habits:      []string{"Vegan"},
			variants:    []seedVariant{
				{price: "12.50", stock: 120},
			},
		},
		{
			name:        "Zinc + C",
			subName:     "60 capsules",
			description: "Zinc with vitamin C for seasonal support.",
			category:    "Minerals",
			veganLevel:  2,
			goals:       []string{"Immunity"},
			variants:    []seedVariant{
				{price: "8.00", stock: 0},
			},
		},
		{
			name:        "Magnesium Night",
			subName:     "60 capsules",
			description: "Magnesium glycinate for the evening routine.",
			category:    "Minerals",
			isNew:       true,
			veganLevel:  1,
			goals:       []string{"Sleep"},
			habits:      []string{"Vegan", "Gluten Free"},
			variants:    []seedVariant{
				{price: "9.00", stock: 40},
			},
		},
		{
			name:        "Whey Isolate",
			subName:     "Vanilla",
			description: "Cold-filtered whey isolate.",
			category:    "Whey Protein",
			goals:       []string{"Protein", "Energy"},
			allergies:   []string{"Milk"},
			variants:    []seedVariant{
				{size: "500g", price: "30.00", stock: 20},
				{size: "1kg", price: "52.00", stock: 5},
			},
		},
		{
			name:        "Pea Protein",
			subName:     "Unflavoured",
			description: "Pea protein with a complete amino profile.",
			category:    "Plant Protein",
			veganLevel:  1,
			goals:       []string{"Protein"},
			allergies:   []string{"Soy"},
			habits:      []string{"Vegan", "Gluten Free"},
			variants:    []seedVariant{
				{size: "500g", price: "26.00", stock: 0},
				{size: "1kg", price: "45.00", stock: 12},
			},
		},
	}
)

func runSeed(ctx context.Context, invalidate bool) error {
	cfg, logger, db, closeDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB()

	fmt.Println("Seeding sample catalog...")

	if err := db.WithContext(ctx).Transaction(seedCatalog); err != nil {
		return errors.Wrap(err, "seed failed")
	}

	fmt.Printf("✅ Seeded %d products\n", len(seedProducts))

	if !invalidate {
		return nil
	}

	return invalidateCatalogCache(ctx, cfg, logger)
}

func seedCatalog(tx *gorm.DB) error {
	skipExisting := tx.Clauses(clause.OnConflict{DoNothing: true})

	categoryIDs := make(map[string]uuid.UUID)
	for menuName, categories := range seedMenus {
		menu := model.MenuModel{ID: seedID("menu", menuName), Name: menuName}
		if err := skipExisting.Create(&menu).Error; err != nil {
			return errors.Wrapf(err, "failed to seed menu %s", menuName)
		}

		for _, categoryName := range categories {
			category := model.CategoryModel{
				ID:          seedID("category", categoryName),
				MenuID:      menu.ID,
				Name:        categoryName,
				Description: categoryName + " from the " + menuName + " menu",
			}
			if err := skipExisting.Create(&category).Error; err != nil {
				return errors.Wrapf(err, "failed to seed category %s", categoryName)
			}
			categoryIDs[categoryName] = category.ID
		}
	}

	for _, p := range seedProducts {
		productID := seedID("product", p.name)
		assetBase := "https://example.com/images/" + productID.String()
		goals := seedTags("goal", p.goals, func(id uuid.UUID, name string) model.GoalModel {
			return model.GoalModel{ID: id, Name: name}
		})
		allergies := seedTags("allergy", p.allergies, func(id uuid.UUID, name string) model.AllergyModel {
			return model.AllergyModel{ID: id, Name: name}
		})
		habits := seedTags("habit", p.habits, func(id uuid.UUID, name string) model.DietaryHabitModel {
			return model.DietaryHabitModel{ID: id, Name: name}
		})

		product := model.ProductModel{
			ID:            productID,
			CategoryID:    categoryIDs[p.category],
			Name:          p.name,
			SubName:       p.subName,
			Description:   p.description,
			NutritionURL:  "https://example.com/nutrition/" + productID.String(),
			IsNew:         p.isNew,
			VeganLevel:    p.veganLevel,
			Goals:         goals,
			Allergies:     allergies,
			DietaryHabits: habits,
			Images: []model.ImageModel{
				{ID: seedID("image-main", p.name), ImageURL: assetBase + "/main.png", IsMain: true},
				{ID: seedID("image-detail", p.name), ImageURL: assetBase + "/detail.png"},
			},
		}

		for _, v := range p.variants {
			product.Stocks = append(product.Stocks, model.ProductStockModel{
				ID:    seedID("stock", p.name+"/"+v.size),
				Size:  v.size,
				Price: decimal.RequireFromString(v.price),
				Stock: v.stock,
			})
		}

		if err := skipExisting.Create(&product).Error; err != nil {
			return errors.Wrapf(err, "failed to seed product %s", p.name)
		}
	}

	return nil
}

func seedTags[T any](kind string, names []string, build func(uuid.UUID, string) T) []T {
	tags := make([]T, 0, len(names))
	for _, name := range names {
		tags = append(tags, build(seedID(kind, name), name))
	}

	return tags
}

func invalidateCatalogCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Redis == nil || cfg.Redis.URL == "" {
		logger.Info("Redis not configured, skipping cache invalidation")

		return nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return errors.Wrap(err, "invalid redis url")
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if err := cache.NewRedisCatalogCache(client, cfg.Redis.KeyPrefix).Invalidate(ctx); err != nil {
		return errors.Wrap(err, "failed to invalidate catalog cache")
	}

	fmt.Println("✅ Catalog cache invalidated")

	return nil
}
