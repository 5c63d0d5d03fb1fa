package main

import (
	"atlas/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.PartnerModel{},
		model.TerritoryModel{},
		model.QuoteModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
