// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fiskaldesk/belegwerk/gen/ent/belegrecord"
	"github.com/fiskaldesk/belegwerk/gen/ent/company"
	"github.com/fiskaldesk/belegwerk/gen/ent/predicate"
	"github.com/google/uuid"
)

// BelegRecordUpdate is the builder for updating BelegRecord entities.
type BelegRecordUpdate struct {
	config
	hooks     []Hook
	mutation  *BelegRecordMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the BelegRecordUpdate builder.
func (_u *BelegRecordUpdate) Where(ps ...predicate.BelegRecord) *BelegRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *BelegRecordUpdate) SetCompanyID(v uuid.UUID) *BelegRecordUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableCompanyID(v *uuid.UUID) *BelegRecordUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetDocumentNumber sets the "document_number" field.
func (_u *BelegRecordUpdate) SetDocumentNumber(v string) *BelegRecordUpdate {
	_u.mutation.SetDocumentNumber(v)
	return _u
}

// SetNillableDocumentNumber sets the "document_number" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableDocumentNumber(v *string) *BelegRecordUpdate {
	if v != nil {
		_u.SetDocumentNumber(*v)
	}
	return _u
}

// SetDocumentDate sets the "document_date" field.
func (_u *BelegRecordUpdate) SetDocumentDate(v time.Time) *BelegRecordUpdate {
	_u.mutation.SetDocumentDate(v)
	return _u
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableDocumentDate(v *time.Time) *BelegRecordUpdate {
	if v != nil {
		_u.SetDocumentDate(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *BelegRecordUpdate) SetDocumentType(v string) *BelegRecordUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableDocumentType(v *string) *BelegRecordUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *BelegRecordUpdate) SetVendorName(v string) *BelegRecordUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableVendorName(v *string) *BelegRecordUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetNetAmount sets the "net_amount" field.
func (_u *BelegRecordUpdate) SetNetAmount(v float64) *BelegRecordUpdate {
	_u.mutation.ResetNetAmount()
	_u.mutation.SetNetAmount(v)
	return _u
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableNetAmount(v *float64) *BelegRecordUpdate {
	if v != nil {
		_u.SetNetAmount(*v)
	}
	return _u
}

// AddNetAmount adds value to the "net_amount" field.
func (_u *BelegRecordUpdate) AddNetAmount(v float64) *BelegRecordUpdate {
	_u.mutation.AddNetAmount(v)
	return _u
}

// ClearNetAmount clears the value of the "net_amount" field.
func (_u *BelegRecordUpdate) ClearNetAmount() *BelegRecordUpdate {
	_u.mutation.ClearNetAmount()
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *BelegRecordUpdate) SetVatAmount(v float64) *BelegRecordUpdate {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableVatAmount(v *float64) *BelegRecordUpdate {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *BelegRecordUpdate) AddVatAmount(v float64) *BelegRecordUpdate {
	_u.mutation.AddVatAmount(v)
	return _u
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (_u *BelegRecordUpdate) ClearVatAmount() *BelegRecordUpdate {
	_u.mutation.ClearVatAmount()
	return _u
}

// SetGrossAmount sets the "gross_amount" field.
func (_u *BelegRecordUpdate) SetGrossAmount(v float64) *BelegRecordUpdate {
	_u.mutation.ResetGrossAmount()
	_u.mutation.SetGrossAmount(v)
	return _u
}

// SetNillableGrossAmount sets the "gross_amount" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableGrossAmount(v *float64) *BelegRecordUpdate {
	if v != nil {
		_u.SetGrossAmount(*v)
	}
	return _u
}

// AddGrossAmount adds value to the "gross_amount" field.
func (_u *BelegRecordUpdate) AddGrossAmount(v float64) *BelegRecordUpdate {
	_u.mutation.AddGrossAmount(v)
	return _u
}

// ClearGrossAmount clears the value of the "gross_amount" field.
func (_u *BelegRecordUpdate) ClearGrossAmount() *BelegRecordUpdate {
	_u.mutation.ClearGrossAmount()
	return _u
}

// SetVatRate sets the "vat_rate" field.
func (_u *BelegRecordUpdate) SetVatRate(v float64) *BelegRecordUpdate {
	_u.mutation.ResetVatRate()
	_u.mutation.SetVatRate(v)
	return _u
}

// SetNillableVatRate sets the "vat_rate" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableVatRate(v *float64) *BelegRecordUpdate {
	if v != nil {
		_u.SetVatRate(*v)
	}
	return _u
}

// AddVatRate adds value to the "vat_rate" field.
func (_u *BelegRecordUpdate) AddVatRate(v float64) *BelegRecordUpdate {
	_u.mutation.AddVatRate(v)
	return _u
}

// ClearVatRate clears the value of the "vat_rate" field.
func (_u *BelegRecordUpdate) ClearVatRate() *BelegRecordUpdate {
	_u.mutation.ClearVatRate()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *BelegRecordUpdate) SetCurrencyCode(v string) *BelegRecordUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableCurrencyCode(v *string) *BelegRecordUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetAccount sets the "account" field.
func (_u *BelegRecordUpdate) SetAccount(v string) *BelegRecordUpdate {
	_u.mutation.SetAccount(v)
	return _u
}

// SetNillableAccount sets the "account" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableAccount(v *string) *BelegRecordUpdate {
	if v != nil {
		_u.SetAccount(*v)
	}
	return _u
}

// ClearAccount clears the value of the "account" field.
func (_u *BelegRecordUpdate) ClearAccount() *BelegRecordUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// SetOffsetAccount sets the "offset_account" field.
func (_u *BelegRecordUpdate) SetOffsetAccount(v string) *BelegRecordUpdate {
	_u.mutation.SetOffsetAccount(v)
	return _u
}

// SetNillableOffsetAccount sets the "offset_account" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableOffsetAccount(v *string) *BelegRecordUpdate {
	if v != nil {
		_u.SetOffsetAccount(*v)
	}
	return _u
}

// ClearOffsetAccount clears the value of the "offset_account" field.
func (_u *BelegRecordUpdate) ClearOffsetAccount() *BelegRecordUpdate {
	_u.mutation.ClearOffsetAccount()
	return _u
}

// SetCostCenter sets the "cost_center" field.
func (_u *BelegRecordUpdate) SetCostCenter(v string) *BelegRecordUpdate {
	_u.mutation.SetCostCenter(v)
	return _u
}

// SetNillableCostCenter sets the "cost_center" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableCostCenter(v *string) *BelegRecordUpdate {
	if v != nil {
		_u.SetCostCenter(*v)
	}
	return _u
}

// ClearCostCenter clears the value of the "cost_center" field.
func (_u *BelegRecordUpdate) ClearCostCenter() *BelegRecordUpdate {
	_u.mutation.ClearCostCenter()
	return _u
}

// SetBookingText sets the "booking_text" field.
func (_u *BelegRecordUpdate) SetBookingText(v string) *BelegRecordUpdate {
	_u.mutation.SetBookingText(v)
	return _u
}

// SetNillableBookingText sets the "booking_text" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableBookingText(v *string) *BelegRecordUpdate {
	if v != nil {
		_u.SetBookingText(*v)
	}
	return _u
}

// ClearBookingText clears the value of the "booking_text" field.
func (_u *BelegRecordUpdate) ClearBookingText() *BelegRecordUpdate {
	_u.mutation.ClearBookingText()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *BelegRecordUpdate) SetValidationStatus(v string) *BelegRecordUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableValidationStatus(v *string) *BelegRecordUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetApprovalStatus sets the "approval_status" field.
func (_u *BelegRecordUpdate) SetApprovalStatus(v string) *BelegRecordUpdate {
	_u.mutation.SetApprovalStatus(v)
	return _u
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableApprovalStatus(v *string) *BelegRecordUpdate {
	if v != nil {
		_u.SetApprovalStatus(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BelegRecordUpdate) SetConfidence(v float32) *BelegRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableConfidence(v *float32) *BelegRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BelegRecordUpdate) AddConfidence(v float32) *BelegRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *BelegRecordUpdate) ClearConfidence() *BelegRecordUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetHumanCorrected sets the "human_corrected" field.
func (_u *BelegRecordUpdate) SetHumanCorrected(v bool) *BelegRecordUpdate {
	_u.mutation.SetHumanCorrected(v)
	return _u
}

// SetNillableHumanCorrected sets the "human_corrected" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableHumanCorrected(v *bool) *BelegRecordUpdate {
	if v != nil {
		_u.SetHumanCorrected(*v)
	}
	return _u
}

// SetMatchedPatternID sets the "matched_pattern_id" field.
func (_u *BelegRecordUpdate) SetMatchedPatternID(v uuid.UUID) *BelegRecordUpdate {
	_u.mutation.SetMatchedPatternID(v)
	return _u
}

// SetNillableMatchedPatternID sets the "matched_pattern_id" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableMatchedPatternID(v *uuid.UUID) *BelegRecordUpdate {
	if v != nil {
		_u.SetMatchedPatternID(*v)
	}
	return _u
}

// ClearMatchedPatternID clears the value of the "matched_pattern_id" field.
func (_u *BelegRecordUpdate) ClearMatchedPatternID() *BelegRecordUpdate {
	_u.mutation.ClearMatchedPatternID()
	return _u
}

// SetRecordJSON sets the "record_json" field.
func (_u *BelegRecordUpdate) SetRecordJSON(v json.RawMessage) *BelegRecordUpdate {
	_u.mutation.SetRecordJSON(v)
	return _u
}

// AppendRecordJSON appends value to the "record_json" field.
func (_u *BelegRecordUpdate) AppendRecordJSON(v json.RawMessage) *BelegRecordUpdate {
	_u.mutation.AppendRecordJSON(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BelegRecordUpdate) SetCreatedAt(v time.Time) *BelegRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BelegRecordUpdate) SetNillableCreatedAt(v *time.Time) *BelegRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BelegRecordUpdate) SetUpdatedAt(v time.Time) *BelegRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *BelegRecordUpdate) SetCompany(v *Company) *BelegRecordUpdate {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the BelegRecordMutation object of the builder.
func (_u *BelegRecordUpdate) Mutation() *BelegRecordMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *BelegRecordUpdate) ClearCompany() *BelegRecordUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BelegRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BelegRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BelegRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BelegRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BelegRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := belegrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BelegRecordUpdate) check() error {
	if v, ok := _u.mutation.DocumentNumber(); ok {
		if err := belegrecord.DocumentNumberValidator(v); err != nil {
			return &ValidationError{Name: "document_number", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.document_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := belegrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VendorName(); ok {
		if err := belegrecord.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := belegrecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := belegrecord.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.validation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalStatus(); ok {
		if err := belegrecord.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.approval_status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BelegRecord.company"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *BelegRecordUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BelegRecordUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *BelegRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(belegrecord.Table, belegrecord.Columns, sqlgraph.NewFieldSpec(belegrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentNumber(); ok {
		_spec.SetField(belegrecord.FieldDocumentNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentDate(); ok {
		_spec.SetField(belegrecord.FieldDocumentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(belegrecord.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(belegrecord.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NetAmount(); ok {
		_spec.SetField(belegrecord.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetAmount(); ok {
		_spec.AddField(belegrecord.FieldNetAmount, field.TypeFloat64, value)
	}
	if _u.mutation.NetAmountCleared() {
		_spec.ClearField(belegrecord.FieldNetAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(belegrecord.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(belegrecord.FieldVatAmount, field.TypeFloat64, value)
	}
	if _u.mutation.VatAmountCleared() {
		_spec.ClearField(belegrecord.FieldVatAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GrossAmount(); ok {
		_spec.SetField(belegrecord.FieldGrossAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrossAmount(); ok {
		_spec.AddField(belegrecord.FieldGrossAmount, field.TypeFloat64, value)
	}
	if _u.mutation.GrossAmountCleared() {
		_spec.ClearField(belegrecord.FieldGrossAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatRate(); ok {
		_spec.SetField(belegrecord.FieldVatRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatRate(); ok {
		_spec.AddField(belegrecord.FieldVatRate, field.TypeFloat64, value)
	}
	if _u.mutation.VatRateCleared() {
		_spec.ClearField(belegrecord.FieldVatRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(belegrecord.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Account(); ok {
		_spec.SetField(belegrecord.FieldAccount, field.TypeString, value)
	}
	if _u.mutation.AccountCleared() {
		_spec.ClearField(belegrecord.FieldAccount, field.TypeString)
	}
	if value, ok := _u.mutation.OffsetAccount(); ok {
		_spec.SetField(belegrecord.FieldOffsetAccount, field.TypeString, value)
	}
	if _u.mutation.OffsetAccountCleared() {
		_spec.ClearField(belegrecord.FieldOffsetAccount, field.TypeString)
	}
	if value, ok := _u.mutation.CostCenter(); ok {
		_spec.SetField(belegrecord.FieldCostCenter, field.TypeString, value)
	}
	if _u.mutation.CostCenterCleared() {
		_spec.ClearField(belegrecord.FieldCostCenter, field.TypeString)
	}
	if value, ok := _u.mutation.BookingText(); ok {
		_spec.SetField(belegrecord.FieldBookingText, field.TypeString, value)
	}
	if _u.mutation.BookingTextCleared() {
		_spec.ClearField(belegrecord.FieldBookingText, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(belegrecord.FieldValidationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApprovalStatus(); ok {
		_spec.SetField(belegrecord.FieldApprovalStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(belegrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(belegrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(belegrecord.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.HumanCorrected(); ok {
		_spec.SetField(belegrecord.FieldHumanCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchedPatternID(); ok {
		_spec.SetField(belegrecord.FieldMatchedPatternID, field.TypeUUID, value)
	}
	if _u.mutation.MatchedPatternIDCleared() {
		_spec.ClearField(belegrecord.FieldMatchedPatternID, field.TypeUUID)
	}
	if value, ok := _u.mutation.RecordJSON(); ok {
		_spec.SetField(belegrecord.FieldRecordJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecordJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, belegrecord.FieldRecordJSON, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(belegrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(belegrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{belegrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BelegRecordUpdateOne is the builder for updating a single BelegRecord entity.
type BelegRecordUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *BelegRecordMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCompanyID sets the "company_id" field.
func (_u *BelegRecordUpdateOne) SetCompanyID(v uuid.UUID) *BelegRecordUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableCompanyID(v *uuid.UUID) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetDocumentNumber sets the "document_number" field.
func (_u *BelegRecordUpdateOne) SetDocumentNumber(v string) *BelegRecordUpdateOne {
	_u.mutation.SetDocumentNumber(v)
	return _u
}

// SetNillableDocumentNumber sets the "document_number" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableDocumentNumber(v *string) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetDocumentNumber(*v)
	}
	return _u
}

// SetDocumentDate sets the "document_date" field.
func (_u *BelegRecordUpdateOne) SetDocumentDate(v time.Time) *BelegRecordUpdateOne {
	_u.mutation.SetDocumentDate(v)
	return _u
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableDocumentDate(v *time.Time) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetDocumentDate(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *BelegRecordUpdateOne) SetDocumentType(v string) *BelegRecordUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableDocumentType(v *string) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *BelegRecordUpdateOne) SetVendorName(v string) *BelegRecordUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableVendorName(v *string) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetNetAmount sets the "net_amount" field.
func (_u *BelegRecordUpdateOne) SetNetAmount(v float64) *BelegRecordUpdateOne {
	_u.mutation.ResetNetAmount()
	_u.mutation.SetNetAmount(v)
	return _u
}

// SetNillableNetAmount sets the "net_amount" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableNetAmount(v *float64) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetNetAmount(*v)
	}
	return _u
}

// AddNetAmount adds value to the "net_amount" field.
func (_u *BelegRecordUpdateOne) AddNetAmount(v float64) *BelegRecordUpdateOne {
	_u.mutation.AddNetAmount(v)
	return _u
}

// ClearNetAmount clears the value of the "net_amount" field.
func (_u *BelegRecordUpdateOne) ClearNetAmount() *BelegRecordUpdateOne {
	_u.mutation.ClearNetAmount()
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *BelegRecordUpdateOne) SetVatAmount(v float64) *BelegRecordUpdateOne {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableVatAmount(v *float64) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *BelegRecordUpdateOne) AddVatAmount(v float64) *BelegRecordUpdateOne {
	_u.mutation.AddVatAmount(v)
	return _u
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (_u *BelegRecordUpdateOne) ClearVatAmount() *BelegRecordUpdateOne {
	_u.mutation.ClearVatAmount()
	return _u
}

// SetGrossAmount sets the "gross_amount" field.
func (_u *BelegRecordUpdateOne) SetGrossAmount(v float64) *BelegRecordUpdateOne {
	_u.mutation.ResetGrossAmount()
	_u.mutation.SetGrossAmount(v)
	return _u
}

// SetNillableGrossAmount sets the "gross_amount" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableGrossAmount(v *float64) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetGrossAmount(*v)
	}
	return _u
}

// AddGrossAmount adds value to the "gross_amount" field.
func (_u *BelegRecordUpdateOne) AddGrossAmount(v float64) *BelegRecordUpdateOne {
	_u.mutation.AddGrossAmount(v)
	return _u
}

// ClearGrossAmount clears the value of the "gross_amount" field.
func (_u *BelegRecordUpdateOne) ClearGrossAmount() *BelegRecordUpdateOne {
	_u.mutation.ClearGrossAmount()
	return _u
}

// SetVatRate sets the "vat_rate" field.
func (_u *BelegRecordUpdateOne) SetVatRate(v float64) *BelegRecordUpdateOne {
	_u.mutation.ResetVatRate()
	_u.mutation.SetVatRate(v)
	return _u
}

// SetNillableVatRate sets the "vat_rate" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableVatRate(v *float64) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetVatRate(*v)
	}
	return _u
}

// AddVatRate adds value to the "vat_rate" field.
func (_u *BelegRecordUpdateOne) AddVatRate(v float64) *BelegRecordUpdateOne {
	_u.mutation.AddVatRate(v)
	return _u
}

// ClearVatRate clears the value of the "vat_rate" field.
func (_u *BelegRecordUpdateOne) ClearVatRate() *BelegRecordUpdateOne {
	_u.mutation.ClearVatRate()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *BelegRecordUpdateOne) SetCurrencyCode(v string) *BelegRecordUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableCurrencyCode(v *string) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetAccount sets the "account" field.
func (_u *BelegRecordUpdateOne) SetAccount(v string) *BelegRecordUpdateOne {
	_u.mutation.SetAccount(v)
	return _u
}

// SetNillableAccount sets the "account" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableAccount(v *string) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetAccount(*v)
	}
	return _u
}

// ClearAccount clears the value of the "account" field.
func (_u *BelegRecordUpdateOne) ClearAccount() *BelegRecordUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// SetOffsetAccount sets the "offset_account" field.
func (_u *BelegRecordUpdateOne) SetOffsetAccount(v string) *BelegRecordUpdateOne {
	_u.mutation.SetOffsetAccount(v)
	return _u
}

// SetNillableOffsetAccount sets the "offset_account" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableOffsetAccount(v *string) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetOffsetAccount(*v)
	}
	return _u
}

// ClearOffsetAccount clears the value of the "offset_account" field.
func (_u *BelegRecordUpdateOne) ClearOffsetAccount() *BelegRecordUpdateOne {
	_u.mutation.ClearOffsetAccount()
	return _u
}

// SetCostCenter sets the "cost_center" field.
func (_u *BelegRecordUpdateOne) SetCostCenter(v string) *BelegRecordUpdateOne {
	_u.mutation.SetCostCenter(v)
	return _u
}

// SetNillableCostCenter sets the "cost_center" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableCostCenter(v *string) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetCostCenter(*v)
	}
	return _u
}

// ClearCostCenter clears the value of the "cost_center" field.
func (_u *BelegRecordUpdateOne) ClearCostCenter() *BelegRecordUpdateOne {
	_u.mutation.ClearCostCenter()
	return _u
}

// SetBookingText sets the "booking_text" field.
func (_u *BelegRecordUpdateOne) SetBookingText(v string) *BelegRecordUpdateOne {
	_u.mutation.SetBookingText(v)
	return _u
}

// SetNillableBookingText sets the "booking_text" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableBookingText(v *string) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetBookingText(*v)
	}
	return _u
}

// ClearBookingText clears the value of the "booking_text" field.
func (_u *BelegRecordUpdateOne) ClearBookingText() *BelegRecordUpdateOne {
	_u.mutation.ClearBookingText()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *BelegRecordUpdateOne) SetValidationStatus(v string) *BelegRecordUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableValidationStatus(v *string) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetApprovalStatus sets the "approval_status" field.
func (_u *BelegRecordUpdateOne) SetApprovalStatus(v string) *BelegRecordUpdateOne {
	_u.mutation.SetApprovalStatus(v)
	return _u
}

// SetNillableApprovalStatus sets the "approval_status" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableApprovalStatus(v *string) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetApprovalStatus(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *BelegRecordUpdateOne) SetConfidence(v float32) *BelegRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableConfidence(v *float32) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *BelegRecordUpdateOne) AddConfidence(v float32) *BelegRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *BelegRecordUpdateOne) ClearConfidence() *BelegRecordUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetHumanCorrected sets the "human_corrected" field.
func (_u *BelegRecordUpdateOne) SetHumanCorrected(v bool) *BelegRecordUpdateOne {
	_u.mutation.SetHumanCorrected(v)
	return _u
}

// SetNillableHumanCorrected sets the "human_corrected" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableHumanCorrected(v *bool) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetHumanCorrected(*v)
	}
	return _u
}

// SetMatchedPatternID sets the "matched_pattern_id" field.
func (_u *BelegRecordUpdateOne) SetMatchedPatternID(v uuid.UUID) *BelegRecordUpdateOne {
	_u.mutation.SetMatchedPatternID(v)
	return _u
}

// SetNillableMatchedPatternID sets the "matched_pattern_id" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableMatchedPatternID(v *uuid.UUID) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetMatchedPatternID(*v)
	}
	return _u
}

// ClearMatchedPatternID clears the value of the "matched_pattern_id" field.
func (_u *BelegRecordUpdateOne) ClearMatchedPatternID() *BelegRecordUpdateOne {
	_u.mutation.ClearMatchedPatternID()
	return _u
}

// SetRecordJSON sets the "record_json" field.
func (_u *BelegRecordUpdateOne) SetRecordJSON(v json.RawMessage) *BelegRecordUpdateOne {
	_u.mutation.SetRecordJSON(v)
	return _u
}

// AppendRecordJSON appends value to the "record_json" field.
func (_u *BelegRecordUpdateOne) AppendRecordJSON(v json.RawMessage) *BelegRecordUpdateOne {
	_u.mutation.AppendRecordJSON(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BelegRecordUpdateOne) SetCreatedAt(v time.Time) *BelegRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BelegRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *BelegRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BelegRecordUpdateOne) SetUpdatedAt(v time.Time) *BelegRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *BelegRecordUpdateOne) SetCompany(v *Company) *BelegRecordUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the BelegRecordMutation object of the builder.
func (_u *BelegRecordUpdateOne) Mutation() *BelegRecordMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *BelegRecordUpdateOne) ClearCompany() *BelegRecordUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// Where appends a list predicates to the BelegRecordUpdate builder.
func (_u *BelegRecordUpdateOne) Where(ps ...predicate.BelegRecord) *BelegRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BelegRecordUpdateOne) Select(field string, fields ...string) *BelegRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BelegRecord entity.
func (_u *BelegRecordUpdateOne) Save(ctx context.Context) (*BelegRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BelegRecordUpdateOne) SaveX(ctx context.Context) *BelegRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BelegRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BelegRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BelegRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := belegrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BelegRecordUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentNumber(); ok {
		if err := belegrecord.DocumentNumberValidator(v); err != nil {
			return &ValidationError{Name: "document_number", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.document_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := belegrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VendorName(); ok {
		if err := belegrecord.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := belegrecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := belegrecord.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.validation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ApprovalStatus(); ok {
		if err := belegrecord.ApprovalStatusValidator(v); err != nil {
			return &ValidationError{Name: "approval_status", err: fmt.Errorf(`ent: validator failed for field "BelegRecord.approval_status": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BelegRecord.company"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *BelegRecordUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BelegRecordUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *BelegRecordUpdateOne) sqlSave(ctx context.Context) (_node *BelegRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(belegrecord.Table, belegrecord.Columns, sqlgraph.NewFieldSpec(belegrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BelegRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, belegrecord.FieldID)
		for _, f := range fields {
			if !belegrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != belegrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentNumber(); ok {
		_spec.SetField(belegrecord.FieldDocumentNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentDate(); ok {
		_spec.SetField(belegrecord.FieldDocumentDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(belegrecord.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(belegrecord.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NetAmount(); ok {
		_spec.SetField(belegrecord.FieldNetAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNetAmount(); ok {
		_spec.AddField(belegrecord.FieldNetAmount, field.TypeFloat64, value)
	}
	if _u.mutation.NetAmountCleared() {
		_spec.ClearField(belegrecord.FieldNetAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(belegrecord.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(belegrecord.FieldVatAmount, field.TypeFloat64, value)
	}
	if _u.mutation.VatAmountCleared() {
		_spec.ClearField(belegrecord.FieldVatAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GrossAmount(); ok {
		_spec.SetField(belegrecord.FieldGrossAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrossAmount(); ok {
		_spec.AddField(belegrecord.FieldGrossAmount, field.TypeFloat64, value)
	}
	if _u.mutation.GrossAmountCleared() {
		_spec.ClearField(belegrecord.FieldGrossAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VatRate(); ok {
		_spec.SetField(belegrecord.FieldVatRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatRate(); ok {
		_spec.AddField(belegrecord.FieldVatRate, field.TypeFloat64, value)
	}
	if _u.mutation.VatRateCleared() {
		_spec.ClearField(belegrecord.FieldVatRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(belegrecord.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Account(); ok {
		_spec.SetField(belegrecord.FieldAccount, field.TypeString, value)
	}
	if _u.mutation.AccountCleared() {
		_spec.ClearField(belegrecord.FieldAccount, field.TypeString)
	}
	if value, ok := _u.mutation.OffsetAccount(); ok {
		_spec.SetField(belegrecord.FieldOffsetAccount, field.TypeString, value)
	}
	if _u.mutation.OffsetAccountCleared() {
		_spec.ClearField(belegrecord.FieldOffsetAccount, field.TypeString)
	}
	if value, ok := _u.mutation.CostCenter(); ok {
		_spec.SetField(belegrecord.FieldCostCenter, field.TypeString, value)
	}
	if _u.mutation.CostCenterCleared() {
		_spec.ClearField(belegrecord.FieldCostCenter, field.TypeString)
	}
	if value, ok := _u.mutation.BookingText(); ok {
		_spec.SetField(belegrecord.FieldBookingText, field.TypeString, value)
	}
	if _u.mutation.BookingTextCleared() {
		_spec.ClearField(belegrecord.FieldBookingText, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(belegrecord.FieldValidationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApprovalStatus(); ok {
		_spec.SetField(belegrecord.FieldApprovalStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(belegrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(belegrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(belegrecord.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.HumanCorrected(); ok {
		_spec.SetField(belegrecord.FieldHumanCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MatchedPatternID(); ok {
		_spec.SetField(belegrecord.FieldMatchedPatternID, field.TypeUUID, value)
	}
	if _u.mutation.MatchedPatternIDCleared() {
		_spec.ClearField(belegrecord.FieldMatchedPatternID, field.TypeUUID)
	}
	if value, ok := _u.mutation.RecordJSON(); ok {
		_spec.SetField(belegrecord.FieldRecordJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecordJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, belegrecord.FieldRecordJSON, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(belegrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(belegrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &BelegRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{belegrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
