package main

import (
	"cellcontrol/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query DAOs for the persistence models.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
