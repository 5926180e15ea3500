// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BelegRecordsColumns holds the columns for the "beleg_records" table.
	BelegRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_number", Type: field.TypeString},
		{Name: "document_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "receipt_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "document_type", Type: field.TypeString},
		{Name: "vendor_name", Type: field.TypeString},
		{Name: "net_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "vat_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "gross_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "vat_rate", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "account", Type: field.TypeString, Nullable: true},
		{Name: "offset_account", Type: field.TypeString, Nullable: true},
		{Name: "cost_center", Type: field.TypeString, Nullable: true},
		{Name: "booking_text", Type: field.TypeString, Nullable: true},
		{Name: "validation_status", Type: field.TypeString},
		{Name: "approval_status", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "human_corrected", Type: field.TypeBool, Default: false},
		{Name: "matched_pattern_id", Type: field.TypeUUID, Nullable: true},
		{Name: "record_json", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// BelegRecordsTable holds the schema information for the "beleg_records" table.
	BelegRecordsTable = &schema.Table{
		Name:       "beleg_records",
		Columns:    BelegRecordsColumns,
		PrimaryKey: []*schema.Column{BelegRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "beleg_records_companies_records",
				Columns:    []*schema.Column{BelegRecordsColumns[23]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "belegrecord_company_id_document_number",
				Unique:  true,
				Columns: []*schema.Column{BelegRecordsColumns[23], BelegRecordsColumns[1]},
			},
			{
				Name:    "belegrecord_company_id_document_date",
				Unique:  false,
				Columns: []*schema.Column{BelegRecordsColumns[23], BelegRecordsColumns[2]},
			},
			{
				Name:    "belegrecord_matched_pattern_id",
				Unique:  false,
				Columns: []*schema.Column{BelegRecordsColumns[19]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "default_currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// VendorPatternsColumns holds the columns for the "vendor_patterns" table.
	VendorPatternsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "canonical_name", Type: field.TypeString},
		{Name: "name_variants", Type: field.TypeJSON, Nullable: true},
		{Name: "known_tax_identifiers", Type: field.TypeJSON, Nullable: true},
		{Name: "default_account", Type: field.TypeString, Nullable: true},
		{Name: "default_cost_center", Type: field.TypeString, Nullable: true},
		{Name: "match_count", Type: field.TypeInt, Default: 1},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0.5},
		{Name: "last_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeUUID},
	}
	// VendorPatternsTable holds the schema information for the "vendor_patterns" table.
	VendorPatternsTable = &schema.Table{
		Name:       "vendor_patterns",
		Columns:    VendorPatternsColumns,
		PrimaryKey: []*schema.Column{VendorPatternsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "vendor_patterns_companies_patterns",
				Columns:    []*schema.Column{VendorPatternsColumns[11]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "vendorpattern_company_id_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{VendorPatternsColumns[11], VendorPatternsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BelegRecordsTable,
		CompaniesTable,
		VendorPatternsTable,
	}
)

func init() {
	BelegRecordsTable.ForeignKeys[0].RefTable = CompaniesTable
	BelegRecordsTable.Annotation = &entsql.Annotation{
		Table: "beleg_records",
	}
	CompaniesTable.Annotation = &entsql.Annotation{
		Table: "companies",
	}
	VendorPatternsTable.ForeignKeys[0].RefTable = CompaniesTable
	VendorPatternsTable.Annotation = &entsql.Annotation{
		Table: "vendor_patterns",
	}
}
