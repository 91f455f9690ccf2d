package main

import (
	"vitashop/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the catalog and cart models.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
