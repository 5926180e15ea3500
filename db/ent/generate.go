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
			Target:   "gen/ent",
			Package:  "github.com/fiskaldesk/belegwerk/gen/ent",
			Schema:   "github.com/fiskaldesk/belegwerk/db/ent/schema",
			Features: []gen.Feature{gen.FeatureModifier},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
