package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/jromarion/arc-classifier/gen/ent",
			Schema:  "ent/schema",
			// sql/lock enables the ForUpdate row lock the sequence
			// repository relies on.
			Features: []gen.Feature{gen.FeatureLock},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
