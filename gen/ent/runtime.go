// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fiskaldesk/belegwerk/db/ent/schema"
	"github.com/fiskaldesk/belegwerk/gen/ent/belegrecord"
	"github.com/fiskaldesk/belegwerk/gen/ent/company"
	"github.com/fiskaldesk/belegwerk/gen/ent/vendorpattern"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	belegrecordFields := schema.BelegRecord{}.Fields()
	_ = belegrecordFields
	// belegrecordDescDocumentNumber is the schema descriptor for document_number field.
	belegrecordDescDocumentNumber := belegrecordFields[2].Descriptor()
	// belegrecord.DocumentNumberValidator is a validator for the "document_number" field. It is called by the builders before save.
	belegrecord.DocumentNumberValidator = belegrecordDescDocumentNumber.Validators[0].(func(string) error)
	// belegrecordDescDocumentType is the schema descriptor for document_type field.
	belegrecordDescDocumentType := belegrecordFields[5].Descriptor()
	// belegrecord.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	belegrecord.DocumentTypeValidator = func() func(string) error {
		validators := belegrecordDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// belegrecordDescVendorName is the schema descriptor for vendor_name field.
	belegrecordDescVendorName := belegrecordFields[6].Descriptor()
	// belegrecord.VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	belegrecord.VendorNameValidator = belegrecordDescVendorName.Validators[0].(func(string) error)
	// belegrecordDescCurrencyCode is the schema descriptor for currency_code field.
	belegrecordDescCurrencyCode := belegrecordFields[11].Descriptor()
	// belegrecord.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	belegrecord.CurrencyCodeValidator = func() func(string) error {
		validators := belegrecordDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// belegrecordDescValidationStatus is the schema descriptor for validation_status field.
	belegrecordDescValidationStatus := belegrecordFields[16].Descriptor()
	// belegrecord.ValidationStatusValidator is a validator for the "validation_status" field. It is called by the builders before save.
	belegrecord.ValidationStatusValidator = func() func(string) error {
		validators := belegrecordDescValidationStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(validation_status string) error {
			for _, fn := range fns {
				if err := fn(validation_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// belegrecordDescApprovalStatus is the schema descriptor for approval_status field.
	belegrecordDescApprovalStatus := belegrecordFields[17].Descriptor()
	// belegrecord.ApprovalStatusValidator is a validator for the "approval_status" field. It is called by the builders before save.
	belegrecord.ApprovalStatusValidator = func() func(string) error {
		validators := belegrecordDescApprovalStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(approval_status string) error {
			for _, fn := range fns {
				if err := fn(approval_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// belegrecordDescHumanCorrected is the schema descriptor for human_corrected field.
	belegrecordDescHumanCorrected := belegrecordFields[19].Descriptor()
	// belegrecord.DefaultHumanCorrected holds the default value on creation for the human_corrected field.
	belegrecord.DefaultHumanCorrected = belegrecordDescHumanCorrected.Default.(bool)
	// belegrecordDescCreatedAt is the schema descriptor for created_at field.
	belegrecordDescCreatedAt := belegrecordFields[22].Descriptor()
	// belegrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	belegrecord.DefaultCreatedAt = belegrecordDescCreatedAt.Default.(func() time.Time)
	// belegrecordDescUpdatedAt is the schema descriptor for updated_at field.
	belegrecordDescUpdatedAt := belegrecordFields[23].Descriptor()
	// belegrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	belegrecord.DefaultUpdatedAt = belegrecordDescUpdatedAt.Default.(func() time.Time)
	// belegrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	belegrecord.UpdateDefaultUpdatedAt = belegrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescDefaultCurrency is the schema descriptor for default_currency field.
	companyDescDefaultCurrency := companyFields[2].Descriptor()
	// company.DefaultCurrencyValidator is a validator for the "default_currency" field. It is called by the builders before save.
	company.DefaultCurrencyValidator = func() func(string) error {
		validators := companyDescDefaultCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(default_currency string) error {
			for _, fn := range fns {
				if err := fn(default_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[4].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[5].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyFields[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
	vendorpatternFields := schema.VendorPattern{}.Fields()
	_ = vendorpatternFields
	// vendorpatternDescNormalizedName is the schema descriptor for normalized_name field.
	vendorpatternDescNormalizedName := vendorpatternFields[2].Descriptor()
	// vendorpattern.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	vendorpattern.NormalizedNameValidator = vendorpatternDescNormalizedName.Validators[0].(func(string) error)
	// vendorpatternDescCanonicalName is the schema descriptor for canonical_name field.
	vendorpatternDescCanonicalName := vendorpatternFields[3].Descriptor()
	// vendorpattern.CanonicalNameValidator is a validator for the "canonical_name" field. It is called by the builders before save.
	vendorpattern.CanonicalNameValidator = vendorpatternDescCanonicalName.Validators[0].(func(string) error)
	// vendorpatternDescMatchCount is the schema descriptor for match_count field.
	vendorpatternDescMatchCount := vendorpatternFields[8].Descriptor()
	// vendorpattern.DefaultMatchCount holds the default value on creation for the match_count field.
	vendorpattern.DefaultMatchCount = vendorpatternDescMatchCount.Default.(int)
	// vendorpatternDescConfidence is the schema descriptor for confidence field.
	vendorpatternDescConfidence := vendorpatternFields[9].Descriptor()
	// vendorpattern.DefaultConfidence holds the default value on creation for the confidence field.
	vendorpattern.DefaultConfidence = vendorpatternDescConfidence.Default.(float64)
	// vendorpatternDescLastSeen is the schema descriptor for last_seen field.
	vendorpatternDescLastSeen := vendorpatternFields[11].Descriptor()
	// vendorpattern.DefaultLastSeen holds the default value on creation for the last_seen field.
	vendorpattern.DefaultLastSeen = vendorpatternDescLastSeen.Default.(func() time.Time)
	// vendorpatternDescID is the schema descriptor for id field.
	vendorpatternDescID := vendorpatternFields[0].Descriptor()
	// vendorpattern.DefaultID holds the default value on creation for the id field.
	vendorpattern.DefaultID = vendorpatternDescID.Default.(func() uuid.UUID)
}
