// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fiskaldesk/belegwerk/gen/ent/belegrecord"
	"github.com/fiskaldesk/belegwerk/gen/ent/company"
	"github.com/google/uuid"
)

// BelegRecordCreate is the builder for creating a BelegRecord entity.
type BelegRecordCreate struct {
	config
	mutation *BelegRecordMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *BelegRecordCreate) SetCompanyID(v uuid.UUID) *BelegRecordCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetDocumentNumber sets the "document_number" field.
func (_c *BelegRecordCreate) SetDocumentNumber(v string) *BelegRecordCreate {
	_c.mutation.SetDocumentNumber(v)
	return _c
}

// SetDocumentDate sets the "document_date" field.
func (_c *BelegRecordCreate) SetDocumentDate(v time.Time) *BelegRecordCreate {
	_c.mutation.SetDocumentDate(v)
	return _c
}

// SetReceiptDate sets the "receipt_date" field.
func (_c *BelegRecordCreate) SetReceiptDate(v time.Time) *BelegRecordCreate {
	_c.mutation.SetReceiptDate(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *BelegRecordCreate) SetDocumentType(v string) *BelegRecordCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *BelegRecordCreate) SetVendorName(v string) *BelegRecordCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetNetAmount sets the "net_amount" field.
func (_c *BelegRecordCreate) SetNetAmount(v float64) *BelegRecordCreate {
	_c.mutation.SetNetAmount(v)
	return _c
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableNetAmount(v *float64) *BelegRecordCreate {
	if v != nil {
		_c.SetNetAmount(*v)
	}
	return _c
}

// SetVatAmount sets the "vat_amount" field.
func (_c *BelegRecordCreate) SetVatAmount(v float64) *BelegRecordCreate {
	_c.mutation.SetVatAmount(v)
	return _c
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableVatAmount(v *float64) *BelegRecordCreate {
	if v != nil {
		_c.SetVatAmount(*v)
	}
	return _c
}

// SetGrossAmount sets the "gross_amount" field.
func (_c *BelegRecordCreate) SetGrossAmount(v float64) *BelegRecordCreate {
	_c.mutation.SetGrossAmount(v)
	return _c
}

// SetNillableGrossAmount sets the "gross_amount" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableGrossAmount(v *float64) *BelegRecordCreate {
	if v != nil {
		_c.SetGrossAmount(*v)
	}
	return _c
}

// SetVatRate sets the "vat_rate" field.
func (_c *BelegRecordCreate) SetVatRate(v float64) *BelegRecordCreate {
	_c.mutation.SetVatRate(v)
	return _c
}

// SetNillableVatRate sets the "vat_rate" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableVatRate(v *float64) *BelegRecordCreate {
	if v != nil {
		_c.SetVatRate(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *BelegRecordCreate) SetCurrencyCode(v string) *BelegRecordCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetAccount sets the "account" field.
func (_c *BelegRecordCreate) SetAccount(v string) *BelegRecordCreate {
	_c.mutation.SetAccount(v)
	return _c
}

// SetNillableAccount sets the "account" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableAccount(v *string) *BelegRecordCreate {
	if v != nil {
		_c.SetAccount(*v)
	}
	return _c
}

// SetOffsetAccount sets the "offset_account" field.
func (_c *BelegRecordCreate) SetOffsetAccount(v string) *BelegRecordCreate {
	_c.mutation.SetOffsetAccount(v)
	return _c
}

// SetNillableOffsetAccount sets the "offset_account" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableOffsetAccount(v *string) *BelegRecordCreate {
	if v != nil {
		_c.SetOffsetAccount(*v)
	}
	return _c
}

// SetCostCenter sets the "cost_center" field.
func (_c *BelegRecordCreate) SetCostCenter(v string) *BelegRecordCreate {
	_c.mutation.SetCostCenter(v)
	return _c
}

// SetNillableCostCenter sets the "cost_center" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableCostCenter(v *string) *BelegRecordCreate {
	if v != nil {
		_c.SetCostCenter(*v)
	}
	return _c
}

// SetBookingText sets the "booking_text" field.
func (_c *BelegRecordCreate) SetBookingText(v string) *BelegRecordCreate {
	_c.mutation.SetBookingText(v)
	return _c
}

// SetNillableBookingText sets the "booking_text" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableBookingText(v *string) *BelegRecordCreate {
	if v != nil {
		_c.SetBookingText(*v)
	}
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *BelegRecordCreate) SetValidationStatus(v string) *BelegRecordCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetApprovalStatus sets the "approval_status" field.
func (_c *BelegRecordCreate) SetApprovalStatus(v string) *BelegRecordCreate {
	_c.mutation.SetApprovalStatus(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *BelegRecordCreate) SetConfidence(v float32) *BelegRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableConfidence(v *float32) *BelegRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetHumanCorrected sets the "human_corrected" field.
func (_c *BelegRecordCreate) SetHumanCorrected(v bool) *BelegRecordCreate {
	_c.mutation.SetHumanCorrected(v)
	return _c
}

// SetNillableHumanCorrected sets the "human_corrected" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableHumanCorrected(v *bool) *BelegRecordCreate {
	if v != nil {
		_c.SetHumanCorrected(*v)
	}
	return _c
}

// SetMatchedPatternID sets the "matched_pattern_id" field.
func (_c *BelegRecordCreate) SetMatchedPatternID(v uuid.UUID) *BelegRecordCreate {
	_c.mutation.SetMatchedPatternID(v)
	return _c
}

// SetNillableMatchedPatternID sets the "matched_pattern_id" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableMatchedPatternID(v *uuid.UUID) *BelegRecordCreate {
	if v != nil {
		_c.SetMatchedPatternID(*v)
	}
	return _c
}

// SetRecordJSON sets the "record_json" field.
func (_c *BelegRecordCreate) SetRecordJSON(v json.RawMessage) *BelegRecordCreate {
	_c.mutation.SetRecordJSON(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BelegRecordCreate) SetCreatedAt(v time.Time) *BelegRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableCreatedAt(v *time.Time) *BelegRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BelegRecordCreate) SetUpdatedAt(v time.Time) *BelegRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BelegRecordCreate) SetNillableUpdatedAt(v *time.Time) *BelegRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BelegRecordCreate) SetID(v uuid.UUID) *BelegRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *BelegRecordCreate) SetCompany(v *Company) *BelegRecordCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the BelegRecordMutation object of the builder.
func (_c *BelegRecordCreate) Mutation() *BelegRecordMutation {
	return _c.mutation
}

// Save creates the BelegRecord in the database.
func (_c *BelegRecordCreate) Save(ctx context.Context) (*BelegRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BelegRecordCreate) SaveX(ctx context.Context) *BelegRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BelegRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BelegRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BelegRecordCreate) defaults() {
	if _, ok := _c.mutation.HumanCorrected(); !ok {
		v := belegrecord.DefaultHumanCorrected
		_c.mutation.SetHumanCorrected(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := belegrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := belegrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BelegRecordCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "BelegRecord.company_id"`)}
	}
	if _, ok := _c.mutation.DocumentNumber(); !ok {
		return &ValidationError{Name: "document_number", err: errors.New(`ent: missing required field "BelegRecord.document_number"`)}
	}
	if v, ok := _c.mutation.DocumentNumber(); ok {
		if err := belegrecord.DocumentNumberValidator(v); err != nil {
			return &ValidationError{Name: "document_number", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.document_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentDate(); !ok {
		return &ValidationError{Name: "document_date", err: errors.New(`ent: missing required field "BelegRecord.document_date"`)}
	}
	if _, ok := _c.mutation.ReceiptDate(); !ok {
		return &ValidationError{Name: "receipt_date", err: errors.New(`ent: missing required field "BelegRecord.receipt_date"`)}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "BelegRecord.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := belegrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VendorName(); !ok {
		return &ValidationError{Name: "vendor_name", err: errors.New(`ent: missing required field "BelegRecord.vendor_name"`)}
	}
	if v, ok := _c.mutation.VendorName(); ok {
		if err := belegrecord.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.vendor_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "BelegRecord.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := belegrecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "BelegRecord.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := belegrecord.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApprovalStatus(); !ok {
		return &ValidationError{Name: "approval_status", err: errors.New(`ent: missing required field "BelegRecord.approval_status"`)}
	}
	if v, ok := _c.mutation.ApprovalStatus(); ok {
		if err := belegrecord.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.approval_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HumanCorrected(); !ok {
		return &ValidationError{Name: "human_corrected", err: errors.New(`ent: missing required field "BelegRecord.human_corrected"`)}
	}
	if _, ok := _c.mutation.RecordJSON(); !ok {
		return &ValidationError{Name: "record_json", err: errors.New(`ent: missing required field "BelegRecord.record_json"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BelegRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BelegRecord.updated_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "BelegRecord.company"`)}
	}
	return nil
}

func (_c *BelegRecordCreate) sqlSave(ctx context.Context) (*BelegRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BelegRecordCreate) createSpec() (*BelegRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &BelegRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(belegrecord.Table, sqlgraph.NewFieldSpec(belegrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentNumber(); ok {
		_spec.SetField(belegrecord.FieldDocumentNumber, field.TypeString, value)
		_node.DocumentNumber = value
	}
	if value, ok := _c.mutation.DocumentDate(); ok {
		_spec.SetField(belegrecord.FieldDocumentDate, field.TypeTime, value)
		_node.DocumentDate = value
	}
	if value, ok := _c.mutation.ReceiptDate(); ok {
		_spec.SetField(belegrecord.FieldReceiptDate, field.TypeTime, value)
		_node.ReceiptDate = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(belegrecord.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(belegrecord.FieldVendorName, field.TypeString, value)
		_node.VendorName = value
	}
	if value, ok := _c.mutation.NetAmount(); ok {
		_spec.SetField(belegrecord.FieldNetAmount, field.TypeFloat64, value)
		_node.NetAmount = &value
	}
	if value, ok := _c.mutation.VatAmount(); ok {
		_spec.SetField(belegrecord.FieldVatAmount, field.TypeFloat64, value)
		_node.VatAmount = &value
	}
	if value, ok := _c.mutation.GrossAmount(); ok {
		_spec.SetField(belegrecord.FieldGrossAmount, field.TypeFloat64, value)
		_node.GrossAmount = &value
	}
	if value, ok := _c.mutation.VatRate(); ok {
		_spec.SetField(belegrecord.FieldVatRate, field.TypeFloat64, value)
		_node.VatRate = &value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(belegrecord.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.Account(); ok {
		_spec.SetField(belegrecord.FieldAccount, field.TypeString, value)
		_node.Account = &value
	}
	if value, ok := _c.mutation.OffsetAccount(); ok {
		_spec.SetField(belegrecord.FieldOffsetAccount, field.TypeString, value)
		_node.OffsetAccount = &value
	}
	if value, ok := _c.mutation.CostCenter(); ok {
		_spec.SetField(belegrecord.FieldCostCenter, field.TypeString, value)
		_node.CostCenter = &value
	}
	if value, ok := _c.mutation.BookingText(); ok {
		_spec.SetField(belegrecord.FieldBookingText, field.TypeString, value)
		_node.BookingText = &value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(belegrecord.FieldValidationStatus, field.TypeString, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.ApprovalStatus(); ok {
		_spec.SetField(belegrecord.FieldApprovalStatus, field.TypeString, value)
		_node.ApprovalStatus = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(belegrecord.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.HumanCorrected(); ok {
		_spec.SetField(belegrecord.FieldHumanCorrected, field.TypeBool, value)
		_node.HumanCorrected = value
	}
	if value, ok := _c.mutation.MatchedPatternID(); ok {
		_spec.SetField(belegrecord.FieldMatchedPatternID, field.TypeUUID, value)
		_node.MatchedPatternID = &value
	}
	if value, ok := _c.mutation.RecordJSON(); ok {
		_spec.SetField(belegrecord.FieldRecordJSON, field.TypeJSON, value)
		_node.RecordJSON = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(belegrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(belegrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   belegrecord.CompanyTable,
			Columns: []string{belegrecord.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BelegRecordCreateBulk is the builder for creating many BelegRecord entities in bulk.
type BelegRecordCreateBulk struct {
	config
	err      error
	builders []*BelegRecordCreate
}

// Save creates the BelegRecord entities in the database.
func (_c *BelegRecordCreateBulk) Save(ctx context.Context) ([]*BelegRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BelegRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BelegRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BelegRecordCreateBulk) SaveX(ctx context.Context) []*BelegRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BelegRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BelegRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
