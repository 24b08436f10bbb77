package main

import (
	"cropsat/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.FarmModel{},
		model.CoordinateModel{},
		model.ImageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
