package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// VendorPattern is one learned vendor: the canonical spelling, every
// normalized variant seen so far, and the defaults sightings taught us.
type VendorPattern struct{ ent.Schema }

func (VendorPattern) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendor_patterns"},
	}
}

func (VendorPattern) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("company_id", uuid.UUID{}),
		field.String("normalized_name").NotEmpty(),
		field.String("canonical_name").NotEmpty(),
		field.JSON("name_variants", []string{}).Optional(),
		field.JSON("known_tax_identifiers", []string{}).Optional(),
		field.String("default_account").Optional().Nillable(),
		field.String("default_cost_center").Optional().Nillable(),
		field.Int("match_count").Default(1),
		field.Float("confidence").Default(0.5),
		field.Float("last_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("last_seen").Default(time.Now),
	}
}

func (VendorPattern) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY patterns -> ONE company (FK: vendor_patterns.company_id)
		edge.From("company", Company.Type).
			Ref("patterns").
			Field("company_id").
			Required().
			Unique(),
	}
}

func (VendorPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "normalized_name").Unique(),
	}
}
