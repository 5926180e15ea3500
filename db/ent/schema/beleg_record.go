package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/db/ent/schema/utils"
)

// BelegRecord is one stored accounting record. The frequently queried
// figures live in their own columns; the full structured record is kept
// verbatim in record_json.
type BelegRecord struct{ ent.Schema }

func (BelegRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "beleg_records"},
	}
}

func (BelegRecord) Fields() []ent.Field {
	return []ent.Field{
		// The ID is content-derived upstream, so no column default.
		field.UUID("id", uuid.UUID{}).Immutable(),
		field.UUID("company_id", uuid.UUID{}),
		field.String("document_number").NotEmpty(),
		field.Time("document_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("receipt_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable(),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.String("vendor_name").NotEmpty(),
		field.Float("net_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("vat_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("gross_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("vat_rate").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("account").Optional().Nillable(),
		field.String("offset_account").Optional().Nillable(),
		field.String("cost_center").Optional().Nillable(),
		field.String("booking_text").Optional().Nillable(),
		field.String("validation_status").NotEmpty().
			Validate(utils.EnumValidator(constants.ValidationStatuses...)),
		field.String("approval_status").NotEmpty().
			Validate(utils.EnumValidator(constants.ApprovalStatuses...)),
		field.Float32("confidence").Optional().Nillable(),
		field.Bool("human_corrected").Default(false),
		field.UUID("matched_pattern_id", uuid.UUID{}).Optional().Nillable(),
		field.JSON("record_json", json.RawMessage{}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (BelegRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY records -> ONE company (FK: beleg_records.company_id)
		edge.From("company", Company.Type).
			Ref("records").
			Field("company_id").
			Required().
			Unique(),
	}
}

func (BelegRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Duplicate detection: one document number per company.
		index.Fields("company_id", "document_number").Unique(),
		index.Fields("company_id", "document_date"),
		index.Fields("matched_pattern_id"),
	}
}
