// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fiskaldesk/belegwerk/gen/ent/belegrecord"
	"github.com/fiskaldesk/belegwerk/gen/ent/company"
	"github.com/fiskaldesk/belegwerk/gen/ent/predicate"
	"github.com/fiskaldesk/belegwerk/gen/ent/vendorpattern"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBelegRecord   = "BelegRecord"
	TypeCompany       = "Company"
	TypeVendorPattern = "VendorPattern"
)

// BelegRecordMutation represents an operation that mutates the BelegRecord nodes in the graph.
type BelegRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	document_number    *string
	document_date      *time.Time
	receipt_date       *time.Time
	document_type      *string
	vendor_name        *string
	net_amount         *float64
	addnet_amount      *float64
	vat_amount         *float64
	addvat_amount      *float64
	gross_amount       *float64
	addgross_amount    *float64
	vat_rate           *float64
	addvat_rate        *float64
	currency_code      *string
	account            *string
	offset_account     *string
	cost_center        *string
	booking_text       *string
	validation_status  *string
	approval_status    *string
	confidence         *float32
	addconfidence      *float32
	human_corrected    *bool
	matched_pattern_id *uuid.UUID
	record_json        *json.RawMessage
	appendrecord_json  json.RawMessage
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	company            *uuid.UUID
	clearedcompany     bool
	done               bool
	oldValue           func(context.Context) (*BelegRecord, error)
	predicates         []predicate.BelegRecord
}

var _ ent.Mutation = (*BelegRecordMutation)(nil)

// belegrecordOption allows management of the mutation configuration using functional options.
type belegrecordOption func(*BelegRecordMutation)

// newBelegRecordMutation creates new mutation for the BelegRecord entity.
func newBelegRecordMutation(c config, op Op, opts ...belegrecordOption) *BelegRecordMutation {
	m := &BelegRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeBelegRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBelegRecordID sets the ID field of the mutation.
func withBelegRecordID(id uuid.UUID) belegrecordOption {
	return func(m *BelegRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *BelegRecord
		)
		m.oldValue = func(ctx context.Context) (*BelegRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BelegRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBelegRecord sets the old BelegRecord of the mutation.
func withBelegRecord(node *BelegRecord) belegrecordOption {
	return func(m *BelegRecordMutation) {
		m.oldValue = func(context.Context) (*BelegRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BelegRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BelegRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BelegRecord entities.
func (m *BelegRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BelegRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BelegRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BelegRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *BelegRecordMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *BelegRecordMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *BelegRecordMutation) ResetCompanyID() {
	m.company = nil
}

// SetDocumentNumber sets the "document_number" field.
func (m *BelegRecordMutation) SetDocumentNumber(s string) {
	m.document_number = &s
}

// DocumentNumber returns the value of the "document_number" field in the mutation.
func (m *BelegRecordMutation) DocumentNumber() (r string, exists bool) {
	v := m.document_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentNumber returns the old "document_number" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldDocumentNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentNumber: %w", err)
	}
	return oldValue.DocumentNumber, nil
}

// ResetDocumentNumber resets all changes to the "document_number" field.
func (m *BelegRecordMutation) ResetDocumentNumber() {
	m.document_number = nil
}

// SetDocumentDate sets the "document_date" field.
func (m *BelegRecordMutation) SetDocumentDate(t time.Time) {
	m.document_date = &t
}

// DocumentDate returns the value of the "document_date" field in the mutation.
func (m *BelegRecordMutation) DocumentDate() (r time.Time, exists bool) {
	v := m.document_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentDate returns the old "document_date" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldDocumentDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentDate: %w", err)
	}
	return oldValue.DocumentDate, nil
}

// ResetDocumentDate resets all changes to the "document_date" field.
func (m *BelegRecordMutation) ResetDocumentDate() {
	m.document_date = nil
}

// SetReceiptDate sets the "receipt_date" field.
func (m *BelegRecordMutation) SetReceiptDate(t time.Time) {
	m.receipt_date = &t
}

// ReceiptDate returns the value of the "receipt_date" field in the mutation.
func (m *BelegRecordMutation) ReceiptDate() (r time.Time, exists bool) {
	v := m.receipt_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptDate returns the old "receipt_date" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldReceiptDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptDate: %w", err)
	}
	return oldValue.ReceiptDate, nil
}

// ResetReceiptDate resets all changes to the "receipt_date" field.
func (m *BelegRecordMutation) ResetReceiptDate() {
	m.receipt_date = nil
}

// SetDocumentType sets the "document_type" field.
func (m *BelegRecordMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *BelegRecordMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *BelegRecordMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetVendorName sets the "vendor_name" field.
func (m *BelegRecordMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *BelegRecordMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldVendorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *BelegRecordMutation) ResetVendorName() {
	m.vendor_name = nil
}

// SetNetAmount sets the "net_amount" field.
func (m *BelegRecordMutation) SetNetAmount(f float64) {
	m.net_amount = &f
	m.addnet_amount = nil
}

// NetAmount returns the value of the "net_amount" field in the mutation.
func (m *BelegRecordMutation) NetAmount() (r float64, exists bool) {
	v := m.net_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldNetAmount returns the old "net_amount" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldNetAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetAmount: %w", err)
	}
	return oldValue.NetAmount, nil
}

// AddNetAmount adds f to the "net_amount" field.
func (m *BelegRecordMutation) AddNetAmount(f float64) {
	if m.addnet_amount != nil {
		*m.addnet_amount += f
	} else {
		m.addnet_amount = &f
	}
}

// AddedNetAmount returns the value that was added to the "net_amount" field in this mutation.
func (m *BelegRecordMutation) AddedNetAmount() (r float64, exists bool) {
	v := m.addnet_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetAmount clears the value of the "net_amount" field.
func (m *BelegRecordMutation) ClearNetAmount() {
	m.net_amount = nil
	m.addnet_amount = nil
	m.clearedFields[belegrecord.FieldNetAmount] = struct{}{}
}

// NetAmountCleared returns if the "net_amount" field was cleared in this mutation.
func (m *BelegRecordMutation) NetAmountCleared() bool {
	_, ok := m.clearedFields[belegrecord.FieldNetAmount]
	return ok
}

// ResetNetAmount resets all changes to the "net_amount" field.
func (m *BelegRecordMutation) ResetNetAmount() {
	m.net_amount = nil
	m.addnet_amount = nil
	delete(m.clearedFields, belegrecord.FieldNetAmount)
}

// SetVatAmount sets the "vat_amount" field.
func (m *BelegRecordMutation) SetVatAmount(f float64) {
	m.vat_amount = &f
	m.addvat_amount = nil
}

// VatAmount returns the value of the "vat_amount" field in the mutation.
func (m *BelegRecordMutation) VatAmount() (r float64, exists bool) {
	v := m.vat_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldVatAmount returns the old "vat_amount" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldVatAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatAmount: %w", err)
	}
	return oldValue.VatAmount, nil
}

// AddVatAmount adds f to the "vat_amount" field.
func (m *BelegRecordMutation) AddVatAmount(f float64) {
	if m.addvat_amount != nil {
		*m.addvat_amount += f
	} else {
		m.addvat_amount = &f
	}
}

// AddedVatAmount returns the value that was added to the "vat_amount" field in this mutation.
func (m *BelegRecordMutation) AddedVatAmount() (r float64, exists bool) {
	v := m.addvat_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (m *BelegRecordMutation) ClearVatAmount() {
	m.vat_amount = nil
	m.addvat_amount = nil
	m.clearedFields[belegrecord.FieldVatAmount] = struct{}{}
}

// VatAmountCleared returns if the "vat_amount" field was cleared in this mutation.
func (m *BelegRecordMutation) VatAmountCleared() bool {
	_, ok := m.clearedFields[belegrecord.FieldVatAmount]
	return ok
}

// ResetVatAmount resets all changes to the "vat_amount" field.
func (m *BelegRecordMutation) ResetVatAmount() {
	m.vat_amount = nil
	m.addvat_amount = nil
	delete(m.clearedFields, belegrecord.FieldVatAmount)
}

// SetGrossAmount sets the "gross_amount" field.
func (m *BelegRecordMutation) SetGrossAmount(f float64) {
	m.gross_amount = &f
	m.addgross_amount = nil
}

// GrossAmount returns the value of the "gross_amount" field in the mutation.
func (m *BelegRecordMutation) GrossAmount() (r float64, exists bool) {
	v := m.gross_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldGrossAmount returns the old "gross_amount" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldGrossAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrossAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrossAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrossAmount: %w", err)
	}
	return oldValue.GrossAmount, nil
}

// AddGrossAmount adds f to the "gross_amount" field.
func (m *BelegRecordMutation) AddGrossAmount(f float64) {
	if m.addgross_amount != nil {
		*m.addgross_amount += f
	} else {
		m.addgross_amount = &f
	}
}

// AddedGrossAmount returns the value that was added to the "gross_amount" field in this mutation.
func (m *BelegRecordMutation) AddedGrossAmount() (r float64, exists bool) {
	v := m.addgross_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearGrossAmount clears the value of the "gross_amount" field.
func (m *BelegRecordMutation) ClearGrossAmount() {
	m.gross_amount = nil
	m.addgross_amount = nil
	m.clearedFields[belegrecord.FieldGrossAmount] = struct{}{}
}

// GrossAmountCleared returns if the "gross_amount" field was cleared in this mutation.
func (m *BelegRecordMutation) GrossAmountCleared() bool {
	_, ok := m.clearedFields[belegrecord.FieldGrossAmount]
	return ok
}

// ResetGrossAmount resets all changes to the "gross_amount" field.
func (m *BelegRecordMutation) ResetGrossAmount() {
	m.gross_amount = nil
	m.addgross_amount = nil
	delete(m.clearedFields, belegrecord.FieldGrossAmount)
}

// SetVatRate sets the "vat_rate" field.
func (m *BelegRecordMutation) SetVatRate(f float64) {
	m.vat_rate = &f
	m.addvat_rate = nil
}

// VatRate returns the value of the "vat_rate" field in the mutation.
func (m *BelegRecordMutation) VatRate() (r float64, exists bool) {
	v := m.vat_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldVatRate returns the old "vat_rate" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldVatRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatRate: %w", err)
	}
	return oldValue.VatRate, nil
}

// AddVatRate adds f to the "vat_rate" field.
func (m *BelegRecordMutation) AddVatRate(f float64) {
	if m.addvat_rate != nil {
		*m.addvat_rate += f
	} else {
		m.addvat_rate = &f
	}
}

// AddedVatRate returns the value that was added to the "vat_rate" field in this mutation.
func (m *BelegRecordMutation) AddedVatRate() (r float64, exists bool) {
	v := m.addvat_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearVatRate clears the value of the "vat_rate" field.
func (m *BelegRecordMutation) ClearVatRate() {
	m.vat_rate = nil
	m.addvat_rate = nil
	m.clearedFields[belegrecord.FieldVatRate] = struct{}{}
}

// VatRateCleared returns if the "vat_rate" field was cleared in this mutation.
func (m *BelegRecordMutation) VatRateCleared() bool {
	_, ok := m.clearedFields[belegrecord.FieldVatRate]
	return ok
}

// ResetVatRate resets all changes to the "vat_rate" field.
func (m *BelegRecordMutation) ResetVatRate() {
	m.vat_rate = nil
	m.addvat_rate = nil
	delete(m.clearedFields, belegrecord.FieldVatRate)
}

// SetCurrencyCode sets the "currency_code" field.
func (m *BelegRecordMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *BelegRecordMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *BelegRecordMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetAccount sets the "account" field.
func (m *BelegRecordMutation) SetAccount(s string) {
	m.account = &s
}

// Account returns the value of the "account" field in the mutation.
func (m *BelegRecordMutation) Account() (r string, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccount returns the old "account" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldAccount(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccount: %w", err)
	}
	return oldValue.Account, nil
}

// ClearAccount clears the value of the "account" field.
func (m *BelegRecordMutation) ClearAccount() {
	m.account = nil
	m.clearedFields[belegrecord.FieldAccount] = struct{}{}
}

// AccountCleared returns if the "account" field was cleared in this mutation.
func (m *BelegRecordMutation) AccountCleared() bool {
	_, ok := m.clearedFields[belegrecord.FieldAccount]
	return ok
}

// ResetAccount resets all changes to the "account" field.
func (m *BelegRecordMutation) ResetAccount() {
	m.account = nil
	delete(m.clearedFields, belegrecord.FieldAccount)
}

// SetOffsetAccount sets the "offset_account" field.
func (m *BelegRecordMutation) SetOffsetAccount(s string) {
	m.offset_account = &s
}

// OffsetAccount returns the value of the "offset_account" field in the mutation.
func (m *BelegRecordMutation) OffsetAccount() (r string, exists bool) {
	v := m.offset_account
	if v == nil {
		return
	}
	return *v, true
}

// OldOffsetAccount returns the old "offset_account" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldOffsetAccount(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOffsetAccount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOffsetAccount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOffsetAccount: %w", err)
	}
	return oldValue.OffsetAccount, nil
}

// ClearOffsetAccount clears the value of the "offset_account" field.
func (m *BelegRecordMutation) ClearOffsetAccount() {
	m.offset_account = nil
	m.clearedFields[belegrecord.FieldOffsetAccount] = struct{}{}
}

// OffsetAccountCleared returns if the "offset_account" field was cleared in this mutation.
func (m *BelegRecordMutation) OffsetAccountCleared() bool {
	_, ok := m.clearedFields[belegrecord.FieldOffsetAccount]
	return ok
}

// ResetOffsetAccount resets all changes to the "offset_account" field.
func (m *BelegRecordMutation) ResetOffsetAccount() {
	m.offset_account = nil
	delete(m.clearedFields, belegrecord.FieldOffsetAccount)
}

// SetCostCenter sets the "cost_center" field.
func (m *BelegRecordMutation) SetCostCenter(s string) {
	m.cost_center = &s
}

// CostCenter returns the value of the "cost_center" field in the mutation.
func (m *BelegRecordMutation) CostCenter() (r string, exists bool) {
	v := m.cost_center
	if v == nil {
		return
	}
	return *v, true
}

// OldCostCenter returns the old "cost_center" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldCostCenter(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostCenter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostCenter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostCenter: %w", err)
	}
	return oldValue.CostCenter, nil
}

// ClearCostCenter clears the value of the "cost_center" field.
func (m *BelegRecordMutation) ClearCostCenter() {
	m.cost_center = nil
	m.clearedFields[belegrecord.FieldCostCenter] = struct{}{}
}

// CostCenterCleared returns if the "cost_center" field was cleared in this mutation.
func (m *BelegRecordMutation) CostCenterCleared() bool {
	_, ok := m.clearedFields[belegrecord.FieldCostCenter]
	return ok
}

// ResetCostCenter resets all changes to the "cost_center" field.
func (m *BelegRecordMutation) ResetCostCenter() {
	m.cost_center = nil
	delete(m.clearedFields, belegrecord.FieldCostCenter)
}

// SetBookingText sets the "booking_text" field.
func (m *BelegRecordMutation) SetBookingText(s string) {
	m.booking_text = &s
}

// BookingText returns the value of the "booking_text" field in the mutation.
func (m *BelegRecordMutation) BookingText() (r string, exists bool) {
	v := m.booking_text
	if v == nil {
		return
	}
	return *v, true
}

// OldBookingText returns the old "booking_text" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldBookingText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookingText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookingText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookingText: %w", err)
	}
	return oldValue.BookingText, nil
}

// ClearBookingText clears the value of the "booking_text" field.
func (m *BelegRecordMutation) ClearBookingText() {
	m.booking_text = nil
	m.clearedFields[belegrecord.FieldBookingText] = struct{}{}
}

// BookingTextCleared returns if the "booking_text" field was cleared in this mutation.
func (m *BelegRecordMutation) BookingTextCleared() bool {
	_, ok := m.clearedFields[belegrecord.FieldBookingText]
	return ok
}

// ResetBookingText resets all changes to the "booking_text" field.
func (m *BelegRecordMutation) ResetBookingText() {
	m.booking_text = nil
	delete(m.clearedFields, belegrecord.FieldBookingText)
}

// SetValidationStatus sets the "validation_status" field.
func (m *BelegRecordMutation) SetValidationStatus(s string) {
	m.validation_status = &s
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *BelegRecordMutation) ValidationStatus() (r string, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldValidationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *BelegRecordMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetApprovalStatus sets the "approval_status" field.
func (m *BelegRecordMutation) SetApprovalStatus(s string) {
	m.approval_status = &s
}

// ApprovalStatus returns the value of the "approval_status" field in the mutation.
func (m *BelegRecordMutation) ApprovalStatus() (r string, exists bool) {
	v := m.approval_status
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalStatus returns the old "approval_status" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldApprovalStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalStatus: %w", err)
	}
	return oldValue.ApprovalStatus, nil
}

// ResetApprovalStatus resets all changes to the "approval_status" field.
func (m *BelegRecordMutation) ResetApprovalStatus() {
	m.approval_status = nil
}

// SetConfidence sets the "confidence" field.
func (m *BelegRecordMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *BelegRecordMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *BelegRecordMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *BelegRecordMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *BelegRecordMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[belegrecord.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *BelegRecordMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[belegrecord.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *BelegRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, belegrecord.FieldConfidence)
}

// SetHumanCorrected sets the "human_corrected" field.
func (m *BelegRecordMutation) SetHumanCorrected(b bool) {
	m.human_corrected = &b
}

// HumanCorrected returns the value of the "human_corrected" field in the mutation.
func (m *BelegRecordMutation) HumanCorrected() (r bool, exists bool) {
	v := m.human_corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanCorrected returns the old "human_corrected" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldHumanCorrected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanCorrected: %w", err)
	}
	return oldValue.HumanCorrected, nil
}

// ResetHumanCorrected resets all changes to the "human_corrected" field.
func (m *BelegRecordMutation) ResetHumanCorrected() {
	m.human_corrected = nil
}

// SetMatchedPatternID sets the "matched_pattern_id" field.
func (m *BelegRecordMutation) SetMatchedPatternID(u uuid.UUID) {
	m.matched_pattern_id = &u
}

// MatchedPatternID returns the value of the "matched_pattern_id" field in the mutation.
func (m *BelegRecordMutation) MatchedPatternID() (r uuid.UUID, exists bool) {
	v := m.matched_pattern_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchedPatternID returns the old "matched_pattern_id" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldMatchedPatternID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchedPatternID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchedPatternID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchedPatternID: %w", err)
	}
	return oldValue.MatchedPatternID, nil
}

// ClearMatchedPatternID clears the value of the "matched_pattern_id" field.
func (m *BelegRecordMutation) ClearMatchedPatternID() {
	m.matched_pattern_id = nil
	m.clearedFields[belegrecord.FieldMatchedPatternID] = struct{}{}
}

// MatchedPatternIDCleared returns if the "matched_pattern_id" field was cleared in this mutation.
func (m *BelegRecordMutation) MatchedPatternIDCleared() bool {
	_, ok := m.clearedFields[belegrecord.FieldMatchedPatternID]
	return ok
}

// ResetMatchedPatternID resets all changes to the "matched_pattern_id" field.
func (m *BelegRecordMutation) ResetMatchedPatternID() {
	m.matched_pattern_id = nil
	delete(m.clearedFields, belegrecord.FieldMatchedPatternID)
}

// SetRecordJSON sets the "record_json" field.
func (m *BelegRecordMutation) SetRecordJSON(jm json.RawMessage) {
	m.record_json = &jm
	m.appendrecord_json = nil
}

// RecordJSON returns the value of the "record_json" field in the mutation.
func (m *BelegRecordMutation) RecordJSON() (r json.RawMessage, exists bool) {
	v := m.record_json
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordJSON returns the old "record_json" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldRecordJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordJSON: %w", err)
	}
	return oldValue.RecordJSON, nil
}

// AppendRecordJSON adds jm to the "record_json" field.
func (m *BelegRecordMutation) AppendRecordJSON(jm json.RawMessage) {
	m.appendrecord_json = append(m.appendrecord_json, jm...)
}

// AppendedRecordJSON returns the list of values that were appended to the "record_json" field in this mutation.
func (m *BelegRecordMutation) AppendedRecordJSON() (json.RawMessage, bool) {
	if len(m.appendrecord_json) == 0 {
		return nil, false
	}
	return m.appendrecord_json, true
}

// ResetRecordJSON resets all changes to the "record_json" field.
func (m *BelegRecordMutation) ResetRecordJSON() {
	m.record_json = nil
	m.appendrecord_json = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BelegRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BelegRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BelegRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BelegRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BelegRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BelegRecord entity.
// If the BelegRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BelegRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BelegRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *BelegRecordMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[belegrecord.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *BelegRecordMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *BelegRecordMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *BelegRecordMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the BelegRecordMutation builder.
func (m *BelegRecordMutation) Where(ps ...predicate.BelegRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BelegRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BelegRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BelegRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BelegRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BelegRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BelegRecord).
func (m *BelegRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BelegRecordMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.company != nil {
		fields = append(fields, belegrecord.FieldCompanyID)
	}
	if m.document_number != nil {
		fields = append(fields, belegrecord.FieldDocumentNumber)
	}
	if m.document_date != nil {
		fields = append(fields, belegrecord.FieldDocumentDate)
	}
	if m.receipt_date != nil {
		fields = append(fields, belegrecord.FieldReceiptDate)
	}
	if m.document_type != nil {
		fields = append(fields, belegrecord.FieldDocumentType)
	}
	if m.vendor_name != nil {
		fields = append(fields, belegrecord.FieldVendorName)
	}
	if m.net_amount != nil {
		fields = append(fields, belegrecord.FieldNetAmount)
	}
	if m.vat_amount != nil {
		fields = append(fields, belegrecord.FieldVatAmount)
	}
	if m.gross_amount != nil {
		fields = append(fields, belegrecord.FieldGrossAmount)
	}
	if m.vat_rate != nil {
		fields = append(fields, belegrecord.FieldVatRate)
	}
	if m.currency_code != nil {
		fields = append(fields, belegrecord.FieldCurrencyCode)
	}
	if m.account != nil {
		fields = append(fields, belegrecord.FieldAccount)
	}
	if m.offset_account != nil {
		fields = append(fields, belegrecord.FieldOffsetAccount)
	}
	if m.cost_center != nil {
		fields = append(fields, belegrecord.FieldCostCenter)
	}
	if m.booking_text != nil {
		fields = append(fields, belegrecord.FieldBookingText)
	}
	if m.validation_status != nil {
		fields = append(fields, belegrecord.FieldValidationStatus)
	}
	if m.approval_status != nil {
		fields = append(fields, belegrecord.FieldApprovalStatus)
	}
	if m.confidence != nil {
		fields = append(fields, belegrecord.FieldConfidence)
	}
	if m.human_corrected != nil {
		fields = append(fields, belegrecord.FieldHumanCorrected)
	}
	if m.matched_pattern_id != nil {
		fields = append(fields, belegrecord.FieldMatchedPatternID)
	}
	if m.record_json != nil {
		fields = append(fields, belegrecord.FieldRecordJSON)
	}
	if m.created_at != nil {
		fields = append(fields, belegrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, belegrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BelegRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case belegrecord.FieldCompanyID:
		return m.CompanyID()
	case belegrecord.FieldDocumentNumber:
		return m.DocumentNumber()
	case belegrecord.FieldDocumentDate:
		return m.DocumentDate()
	case belegrecord.FieldReceiptDate:
		return m.ReceiptDate()
	case belegrecord.FieldDocumentType:
		return m.DocumentType()
	case belegrecord.FieldVendorName:
		return m.VendorName()
	case belegrecord.FieldNetAmount:
		return m.NetAmount()
	case belegrecord.FieldVatAmount:
		return m.VatAmount()
	case belegrecord.FieldGrossAmount:
		return m.GrossAmount()
	case belegrecord.FieldVatRate:
		return m.VatRate()
	case belegrecord.FieldCurrencyCode:
		return m.CurrencyCode()
	case belegrecord.FieldAccount:
		return m.Account()
	case belegrecord.FieldOffsetAccount:
		return m.OffsetAccount()
	case belegrecord.FieldCostCenter:
		return m.CostCenter()
	case belegrecord.FieldBookingText:
		return m.BookingText()
	case belegrecord.FieldValidationStatus:
		return m.ValidationStatus()
	case belegrecord.FieldApprovalStatus:
		return m.ApprovalStatus()
	case belegrecord.FieldConfidence:
		return m.Confidence()
	case belegrecord.FieldHumanCorrected:
		return m.HumanCorrected()
	case belegrecord.FieldMatchedPatternID:
		return m.MatchedPatternID()
	case belegrecord.FieldRecordJSON:
		return m.RecordJSON()
	case belegrecord.FieldCreatedAt:
		return m.CreatedAt()
	case belegrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BelegRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case belegrecord.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case belegrecord.FieldDocumentNumber:
		return m.OldDocumentNumber(ctx)
	case belegrecord.FieldDocumentDate:
		return m.OldDocumentDate(ctx)
	case belegrecord.FieldReceiptDate:
		return m.OldReceiptDate(ctx)
	case belegrecord.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case belegrecord.FieldVendorName:
		return m.OldVendorName(ctx)
	case belegrecord.FieldNetAmount:
		return m.OldNetAmount(ctx)
	case belegrecord.FieldVatAmount:
		return m.OldVatAmount(ctx)
	case belegrecord.FieldGrossAmount:
		return m.OldGrossAmount(ctx)
	case belegrecord.FieldVatRate:
		return m.OldVatRate(ctx)
	case belegrecord.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case belegrecord.FieldAccount:
		return m.OldAccount(ctx)
	case belegrecord.FieldOffsetAccount:
		return m.OldOffsetAccount(ctx)
	case belegrecord.FieldCostCenter:
		return m.OldCostCenter(ctx)
	case belegrecord.FieldBookingText:
		return m.OldBookingText(ctx)
	case belegrecord.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case belegrecord.FieldApprovalStatus:
		return m.OldApprovalStatus(ctx)
	case belegrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case belegrecord.FieldHumanCorrected:
		return m.OldHumanCorrected(ctx)
	case belegrecord.FieldMatchedPatternID:
		return m.OldMatchedPatternID(ctx)
	case belegrecord.FieldRecordJSON:
		return m.OldRecordJSON(ctx)
	case belegrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case belegrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BelegRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BelegRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case belegrecord.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case belegrecord.FieldDocumentNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentNumber(v)
		return nil
	case belegrecord.FieldDocumentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentDate(v)
		return nil
	case belegrecord.FieldReceiptDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptDate(v)
		return nil
	case belegrecord.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case belegrecord.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case belegrecord.FieldNetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetAmount(v)
		return nil
	case belegrecord.FieldVatAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatAmount(v)
		return nil
	case belegrecord.FieldGrossAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrossAmount(v)
		return nil
	case belegrecord.FieldVatRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatRate(v)
		return nil
	case belegrecord.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case belegrecord.FieldAccount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccount(v)
		return nil
	case belegrecord.FieldOffsetAccount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOffsetAccount(v)
		return nil
	case belegrecord.FieldCostCenter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostCenter(v)
		return nil
	case belegrecord.FieldBookingText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookingText(v)
		return nil
	case belegrecord.FieldValidationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case belegrecord.FieldApprovalStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalStatus(v)
		return nil
	case belegrecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case belegrecord.FieldHumanCorrected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanCorrected(v)
		return nil
	case belegrecord.FieldMatchedPatternID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchedPatternID(v)
		return nil
	case belegrecord.FieldRecordJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordJSON(v)
		return nil
	case belegrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case belegrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BelegRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BelegRecordMutation) AddedFields() []string {
	var fields []string
	if m.addnet_amount != nil {
		fields = append(fields, belegrecord.FieldNetAmount)
	}
	if m.addvat_amount != nil {
		fields = append(fields, belegrecord.FieldVatAmount)
	}
	if m.addgross_amount != nil {
		fields = append(fields, belegrecord.FieldGrossAmount)
	}
	if m.addvat_rate != nil {
		fields = append(fields, belegrecord.FieldVatRate)
	}
	if m.addconfidence != nil {
		fields = append(fields, belegrecord.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BelegRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case belegrecord.FieldNetAmount:
		return m.AddedNetAmount()
	case belegrecord.FieldVatAmount:
		return m.AddedVatAmount()
	case belegrecord.FieldGrossAmount:
		return m.AddedGrossAmount()
	case belegrecord.FieldVatRate:
		return m.AddedVatRate()
	case belegrecord.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BelegRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case belegrecord.FieldNetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetAmount(v)
		return nil
	case belegrecord.FieldVatAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVatAmount(v)
		return nil
	case belegrecord.FieldGrossAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrossAmount(v)
		return nil
	case belegrecord.FieldVatRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVatRate(v)
		return nil
	case belegrecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown BelegRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BelegRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(belegrecord.FieldNetAmount) {
		fields = append(fields, belegrecord.FieldNetAmount)
	}
	if m.FieldCleared(belegrecord.FieldVatAmount) {
		fields = append(fields, belegrecord.FieldVatAmount)
	}
	if m.FieldCleared(belegrecord.FieldGrossAmount) {
		fields = append(fields, belegrecord.FieldGrossAmount)
	}
	if m.FieldCleared(belegrecord.FieldVatRate) {
		fields = append(fields, belegrecord.FieldVatRate)
	}
	if m.FieldCleared(belegrecord.FieldAccount) {
		fields = append(fields, belegrecord.FieldAccount)
	}
	if m.FieldCleared(belegrecord.FieldOffsetAccount) {
		fields = append(fields, belegrecord.FieldOffsetAccount)
	}
	if m.FieldCleared(belegrecord.FieldCostCenter) {
		fields = append(fields, belegrecord.FieldCostCenter)
	}
	if m.FieldCleared(belegrecord.FieldBookingText) {
		fields = append(fields, belegrecord.FieldBookingText)
	}
	if m.FieldCleared(belegrecord.FieldConfidence) {
		fields = append(fields, belegrecord.FieldConfidence)
	}
	if m.FieldCleared(belegrecord.FieldMatchedPatternID) {
		fields = append(fields, belegrecord.FieldMatchedPatternID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BelegRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BelegRecordMutation) ClearField(name string) error {
	switch name {
	case belegrecord.FieldNetAmount:
		m.ClearNetAmount()
		return nil
	case belegrecord.FieldVatAmount:
		m.ClearVatAmount()
		return nil
	case belegrecord.FieldGrossAmount:
		m.ClearGrossAmount()
		return nil
	case belegrecord.FieldVatRate:
		m.ClearVatRate()
		return nil
	case belegrecord.FieldAccount:
		m.ClearAccount()
		return nil
	case belegrecord.FieldOffsetAccount:
		m.ClearOffsetAccount()
		return nil
	case belegrecord.FieldCostCenter:
		m.ClearCostCenter()
		return nil
	case belegrecord.FieldBookingText:
		m.ClearBookingText()
		return nil
	case belegrecord.FieldConfidence:
		m.ClearConfidence()
		return nil
	case belegrecord.FieldMatchedPatternID:
		m.ClearMatchedPatternID()
		return nil
	}
	return fmt.Errorf("unknown BelegRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BelegRecordMutation) ResetField(name string) error {
	switch name {
	case belegrecord.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case belegrecord.FieldDocumentNumber:
		m.ResetDocumentNumber()
		return nil
	case belegrecord.FieldDocumentDate:
		m.ResetDocumentDate()
		return nil
	case belegrecord.FieldReceiptDate:
		m.ResetReceiptDate()
		return nil
	case belegrecord.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case belegrecord.FieldVendorName:
		m.ResetVendorName()
		return nil
	case belegrecord.FieldNetAmount:
		m.ResetNetAmount()
		return nil
	case belegrecord.FieldVatAmount:
		m.ResetVatAmount()
		return nil
	case belegrecord.FieldGrossAmount:
		m.ResetGrossAmount()
		return nil
	case belegrecord.FieldVatRate:
		m.ResetVatRate()
		return nil
	case belegrecord.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case belegrecord.FieldAccount:
		m.ResetAccount()
		return nil
	case belegrecord.FieldOffsetAccount:
		m.ResetOffsetAccount()
		return nil
	case belegrecord.FieldCostCenter:
		m.ResetCostCenter()
		return nil
	case belegrecord.FieldBookingText:
		m.ResetBookingText()
		return nil
	case belegrecord.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case belegrecord.FieldApprovalStatus:
		m.ResetApprovalStatus()
		return nil
	case belegrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case belegrecord.FieldHumanCorrected:
		m.ResetHumanCorrected()
		return nil
	case belegrecord.FieldMatchedPatternID:
		m.ResetMatchedPatternID()
		return nil
	case belegrecord.FieldRecordJSON:
		m.ResetRecordJSON()
		return nil
	case belegrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case belegrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BelegRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BelegRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, belegrecord.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BelegRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case belegrecord.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BelegRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BelegRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BelegRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, belegrecord.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BelegRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case belegrecord.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BelegRecordMutation) ClearEdge(name string) error {
	switch name {
	case belegrecord.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown BelegRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BelegRecordMutation) ResetEdge(name string) error {
	switch name {
	case belegrecord.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown BelegRecord edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	default_currency *string
	settings         *json.RawMessage
	appendsettings   json.RawMessage
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	records          map[uuid.UUID]struct{}
	removedrecords   map[uuid.UUID]struct{}
	clearedrecords   bool
	patterns         map[uuid.UUID]struct{}
	removedpatterns  map[uuid.UUID]struct{}
	clearedpatterns  bool
	done             bool
	oldValue         func(context.Context) (*Company, error)
	predicates       []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id uuid.UUID) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetDefaultCurrency sets the "default_currency" field.
func (m *CompanyMutation) SetDefaultCurrency(s string) {
	m.default_currency = &s
}

// DefaultCurrency returns the value of the "default_currency" field in the mutation.
func (m *CompanyMutation) DefaultCurrency() (r string, exists bool) {
	v := m.default_currency
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultCurrency returns the old "default_currency" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldDefaultCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultCurrency: %w", err)
	}
	return oldValue.DefaultCurrency, nil
}

// ResetDefaultCurrency resets all changes to the "default_currency" field.
func (m *CompanyMutation) ResetDefaultCurrency() {
	m.default_currency = nil
}

// SetSettings sets the "settings" field.
func (m *CompanyMutation) SetSettings(jm json.RawMessage) {
	m.settings = &jm
	m.appendsettings = nil
}

// Settings returns the value of the "settings" field in the mutation.
func (m *CompanyMutation) Settings() (r json.RawMessage, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldSettings(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// AppendSettings adds jm to the "settings" field.
func (m *CompanyMutation) AppendSettings(jm json.RawMessage) {
	m.appendsettings = append(m.appendsettings, jm...)
}

// AppendedSettings returns the list of values that were appended to the "settings" field in this mutation.
func (m *CompanyMutation) AppendedSettings() (json.RawMessage, bool) {
	if len(m.appendsettings) == 0 {
		return nil, false
	}
	return m.appendsettings, true
}

// ClearSettings clears the value of the "settings" field.
func (m *CompanyMutation) ClearSettings() {
	m.settings = nil
	m.appendsettings = nil
	m.clearedFields[company.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *CompanyMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[company.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *CompanyMutation) ResetSettings() {
	m.settings = nil
	m.appendsettings = nil
	delete(m.clearedFields, company.FieldSettings)
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRecordIDs adds the "records" edge to the BelegRecord entity by ids.
func (m *CompanyMutation) AddRecordIDs(ids ...uuid.UUID) {
	if m.records == nil {
		m.records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the BelegRecord entity.
func (m *CompanyMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the BelegRecord entity was cleared.
func (m *CompanyMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the BelegRecord entity by IDs.
func (m *CompanyMutation) RemoveRecordIDs(ids ...uuid.UUID) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the BelegRecord entity.
func (m *CompanyMutation) RemovedRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *CompanyMutation) RecordsIDs() (ids []uuid.UUID) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *CompanyMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// AddPatternIDs adds the "patterns" edge to the VendorPattern entity by ids.
func (m *CompanyMutation) AddPatternIDs(ids ...uuid.UUID) {
	if m.patterns == nil {
		m.patterns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.patterns[ids[i]] = struct{}{}
	}
}

// ClearPatterns clears the "patterns" edge to the VendorPattern entity.
func (m *CompanyMutation) ClearPatterns() {
	m.clearedpatterns = true
}

// PatternsCleared reports if the "patterns" edge to the VendorPattern entity was cleared.
func (m *CompanyMutation) PatternsCleared() bool {
	return m.clearedpatterns
}

// RemovePatternIDs removes the "patterns" edge to the VendorPattern entity by IDs.
func (m *CompanyMutation) RemovePatternIDs(ids ...uuid.UUID) {
	if m.removedpatterns == nil {
		m.removedpatterns = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.patterns, ids[i])
		m.removedpatterns[ids[i]] = struct{}{}
	}
}

// RemovedPatterns returns the removed IDs of the "patterns" edge to the VendorPattern entity.
func (m *CompanyMutation) RemovedPatternsIDs() (ids []uuid.UUID) {
	for id := range m.removedpatterns {
		ids = append(ids, id)
	}
	return
}

// PatternsIDs returns the "patterns" edge IDs in the mutation.
func (m *CompanyMutation) PatternsIDs() (ids []uuid.UUID) {
	for id := range m.patterns {
		ids = append(ids, id)
	}
	return
}

// ResetPatterns resets all changes to the "patterns" edge.
func (m *CompanyMutation) ResetPatterns() {
	m.patterns = nil
	m.clearedpatterns = false
	m.removedpatterns = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.default_currency != nil {
		fields = append(fields, company.FieldDefaultCurrency)
	}
	if m.settings != nil {
		fields = append(fields, company.FieldSettings)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldDefaultCurrency:
		return m.DefaultCurrency()
	case company.FieldSettings:
		return m.Settings()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldDefaultCurrency:
		return m.OldDefaultCurrency(ctx)
	case company.FieldSettings:
		return m.OldSettings(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldDefaultCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultCurrency(v)
		return nil
	case company.FieldSettings:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldSettings) {
		fields = append(fields, company.FieldSettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldDefaultCurrency:
		m.ResetDefaultCurrency()
		return nil
	case company.FieldSettings:
		m.ResetSettings()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.records != nil {
		edges = append(edges, company.EdgeRecords)
	}
	if m.patterns != nil {
		edges = append(edges, company.EdgePatterns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	case company.EdgePatterns:
		ids := make([]ent.Value, 0, len(m.patterns))
		for id := range m.patterns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrecords != nil {
		edges = append(edges, company.EdgeRecords)
	}
	if m.removedpatterns != nil {
		edges = append(edges, company.EdgePatterns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	case company.EdgePatterns:
		ids := make([]ent.Value, 0, len(m.removedpatterns))
		for id := range m.removedpatterns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrecords {
		edges = append(edges, company.EdgeRecords)
	}
	if m.clearedpatterns {
		edges = append(edges, company.EdgePatterns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeRecords:
		return m.clearedrecords
	case company.EdgePatterns:
		return m.clearedpatterns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeRecords:
		m.ResetRecords()
		return nil
	case company.EdgePatterns:
		m.ResetPatterns()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// VendorPatternMutation represents an operation that mutates the VendorPattern nodes in the graph.
type VendorPatternMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	normalized_name             *string
	canonical_name              *string
	name_variants               *[]string
	appendname_variants         []string
	known_tax_identifiers       *[]string
	appendknown_tax_identifiers []string
	default_account             *string
	default_cost_center         *string
	match_count                 *int
	addmatch_count              *int
	confidence                  *float64
	addconfidence               *float64
	last_amount                 *float64
	addlast_amount              *float64
	last_seen                   *time.Time
	clearedFields               map[string]struct{}
	company                     *uuid.UUID
	clearedcompany              bool
	done                        bool
	oldValue                    func(context.Context) (*VendorPattern, error)
	predicates                  []predicate.VendorPattern
}

var _ ent.Mutation = (*VendorPatternMutation)(nil)

// vendorpatternOption allows management of the mutation configuration using functional options.
type vendorpatternOption func(*VendorPatternMutation)

// newVendorPatternMutation creates new mutation for the VendorPattern entity.
func newVendorPatternMutation(c config, op Op, opts ...vendorpatternOption) *VendorPatternMutation {
	m := &VendorPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeVendorPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVendorPatternID sets the ID field of the mutation.
func withVendorPatternID(id uuid.UUID) vendorpatternOption {
	return func(m *VendorPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *VendorPattern
		)
		m.oldValue = func(ctx context.Context) (*VendorPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VendorPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVendorPattern sets the old VendorPattern of the mutation.
func withVendorPattern(node *VendorPattern) vendorpatternOption {
	return func(m *VendorPatternMutation) {
		m.oldValue = func(context.Context) (*VendorPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VendorPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VendorPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VendorPattern entities.
func (m *VendorPatternMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VendorPatternMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VendorPatternMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VendorPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *VendorPatternMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *VendorPatternMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the VendorPattern entity.
// If the VendorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorPatternMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *VendorPatternMutation) ResetCompanyID() {
	m.company = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *VendorPatternMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *VendorPatternMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the VendorPattern entity.
// If the VendorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorPatternMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *VendorPatternMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetCanonicalName sets the "canonical_name" field.
func (m *VendorPatternMutation) SetCanonicalName(s string) {
	m.canonical_name = &s
}

// CanonicalName returns the value of the "canonical_name" field in the mutation.
func (m *VendorPatternMutation) CanonicalName() (r string, exists bool) {
	v := m.canonical_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalName returns the old "canonical_name" field's value of the VendorPattern entity.
// If the VendorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorPatternMutation) OldCanonicalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalName: %w", err)
	}
	return oldValue.CanonicalName, nil
}

// ResetCanonicalName resets all changes to the "canonical_name" field.
func (m *VendorPatternMutation) ResetCanonicalName() {
	m.canonical_name = nil
}

// SetNameVariants sets the "name_variants" field.
func (m *VendorPatternMutation) SetNameVariants(s []string) {
	m.name_variants = &s
	m.appendname_variants = nil
}

// NameVariants returns the value of the "name_variants" field in the mutation.
func (m *VendorPatternMutation) NameVariants() (r []string, exists bool) {
	v := m.name_variants
	if v == nil {
		return
	}
	return *v, true
}

// OldNameVariants returns the old "name_variants" field's value of the VendorPattern entity.
// If the VendorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorPatternMutation) OldNameVariants(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameVariants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameVariants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameVariants: %w", err)
	}
	return oldValue.NameVariants, nil
}

// AppendNameVariants adds s to the "name_variants" field.
func (m *VendorPatternMutation) AppendNameVariants(s []string) {
	m.appendname_variants = append(m.appendname_variants, s...)
}

// AppendedNameVariants returns the list of values that were appended to the "name_variants" field in this mutation.
func (m *VendorPatternMutation) AppendedNameVariants() ([]string, bool) {
	if len(m.appendname_variants) == 0 {
		return nil, false
	}
	return m.appendname_variants, true
}

// ClearNameVariants clears the value of the "name_variants" field.
func (m *VendorPatternMutation) ClearNameVariants() {
	m.name_variants = nil
	m.appendname_variants = nil
	m.clearedFields[vendorpattern.FieldNameVariants] = struct{}{}
}

// NameVariantsCleared returns if the "name_variants" field was cleared in this mutation.
func (m *VendorPatternMutation) NameVariantsCleared() bool {
	_, ok := m.clearedFields[vendorpattern.FieldNameVariants]
	return ok
}

// ResetNameVariants resets all changes to the "name_variants" field.
func (m *VendorPatternMutation) ResetNameVariants() {
	m.name_variants = nil
	m.appendname_variants = nil
	delete(m.clearedFields, vendorpattern.FieldNameVariants)
}

// SetKnownTaxIdentifiers sets the "known_tax_identifiers" field.
func (m *VendorPatternMutation) SetKnownTaxIdentifiers(s []string) {
	m.known_tax_identifiers = &s
	m.appendknown_tax_identifiers = nil
}

// KnownTaxIdentifiers returns the value of the "known_tax_identifiers" field in the mutation.
func (m *VendorPatternMutation) KnownTaxIdentifiers() (r []string, exists bool) {
	v := m.known_tax_identifiers
	if v == nil {
		return
	}
	return *v, true
}

// OldKnownTaxIdentifiers returns the old "known_tax_identifiers" field's value of the VendorPattern entity.
// If the VendorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorPatternMutation) OldKnownTaxIdentifiers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnownTaxIdentifiers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnownTaxIdentifiers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnownTaxIdentifiers: %w", err)
	}
	return oldValue.KnownTaxIdentifiers, nil
}

// AppendKnownTaxIdentifiers adds s to the "known_tax_identifiers" field.
func (m *VendorPatternMutation) AppendKnownTaxIdentifiers(s []string) {
	m.appendknown_tax_identifiers = append(m.appendknown_tax_identifiers, s...)
}

// AppendedKnownTaxIdentifiers returns the list of values that were appended to the "known_tax_identifiers" field in this mutation.
func (m *VendorPatternMutation) AppendedKnownTaxIdentifiers() ([]string, bool) {
	if len(m.appendknown_tax_identifiers) == 0 {
		return nil, false
	}
	return m.appendknown_tax_identifiers, true
}

// ClearKnownTaxIdentifiers clears the value of the "known_tax_identifiers" field.
func (m *VendorPatternMutation) ClearKnownTaxIdentifiers() {
	m.known_tax_identifiers = nil
	m.appendknown_tax_identifiers = nil
	m.clearedFields[vendorpattern.FieldKnownTaxIdentifiers] = struct{}{}
}

// KnownTaxIdentifiersCleared returns if the "known_tax_identifiers" field was cleared in this mutation.
func (m *VendorPatternMutation) KnownTaxIdentifiersCleared() bool {
	_, ok := m.clearedFields[vendorpattern.FieldKnownTaxIdentifiers]
	return ok
}

// ResetKnownTaxIdentifiers resets all changes to the "known_tax_identifiers" field.
func (m *VendorPatternMutation) ResetKnownTaxIdentifiers() {
	m.known_tax_identifiers = nil
	m.appendknown_tax_identifiers = nil
	delete(m.clearedFields, vendorpattern.FieldKnownTaxIdentifiers)
}

// SetDefaultAccount sets the "default_account" field.
func (m *VendorPatternMutation) SetDefaultAccount(s string) {
	m.default_account = &s
}

// DefaultAccount returns the value of the "default_account" field in the mutation.
func (m *VendorPatternMutation) DefaultAccount() (r string, exists bool) {
	v := m.default_account
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultAccount returns the old "default_account" field's value of the VendorPattern entity.
// If the VendorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorPatternMutation) OldDefaultAccount(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultAccount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultAccount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultAccount: %w", err)
	}
	return oldValue.DefaultAccount, nil
}

// ClearDefaultAccount clears the value of the "default_account" field.
func (m *VendorPatternMutation) ClearDefaultAccount() {
	m.default_account = nil
	m.clearedFields[vendorpattern.FieldDefaultAccount] = struct{}{}
}

// DefaultAccountCleared returns if the "default_account" field was cleared in this mutation.
func (m *VendorPatternMutation) DefaultAccountCleared() bool {
	_, ok := m.clearedFields[vendorpattern.FieldDefaultAccount]
	return ok
}

// ResetDefaultAccount resets all changes to the "default_account" field.
func (m *VendorPatternMutation) ResetDefaultAccount() {
	m.default_account = nil
	delete(m.clearedFields, vendorpattern.FieldDefaultAccount)
}

// SetDefaultCostCenter sets the "default_cost_center" field.
func (m *VendorPatternMutation) SetDefaultCostCenter(s string) {
	m.default_cost_center = &s
}

// DefaultCostCenter returns the value of the "default_cost_center" field in the mutation.
func (m *VendorPatternMutation) DefaultCostCenter() (r string, exists bool) {
	v := m.default_cost_center
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultCostCenter returns the old "default_cost_center" field's value of the VendorPattern entity.
// If the VendorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorPatternMutation) OldDefaultCostCenter(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultCostCenter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultCostCenter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultCostCenter: %w", err)
	}
	return oldValue.DefaultCostCenter, nil
}

// ClearDefaultCostCenter clears the value of the "default_cost_center" field.
func (m *VendorPatternMutation) ClearDefaultCostCenter() {
	m.default_cost_center = nil
	m.clearedFields[vendorpattern.FieldDefaultCostCenter] = struct{}{}
}

// DefaultCostCenterCleared returns if the "default_cost_center" field was cleared in this mutation.
func (m *VendorPatternMutation) DefaultCostCenterCleared() bool {
	_, ok := m.clearedFields[vendorpattern.FieldDefaultCostCenter]
	return ok
}

// ResetDefaultCostCenter resets all changes to the "default_cost_center" field.
func (m *VendorPatternMutation) ResetDefaultCostCenter() {
	m.default_cost_center = nil
	delete(m.clearedFields, vendorpattern.FieldDefaultCostCenter)
}

// SetMatchCount sets the "match_count" field.
func (m *VendorPatternMutation) SetMatchCount(i int) {
	m.match_count = &i
	m.addmatch_count = nil
}

// MatchCount returns the value of the "match_count" field in the mutation.
func (m *VendorPatternMutation) MatchCount() (r int, exists bool) {
	v := m.match_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchCount returns the old "match_count" field's value of the VendorPattern entity.
// If the VendorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorPatternMutation) OldMatchCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchCount: %w", err)
	}
	return oldValue.MatchCount, nil
}

// AddMatchCount adds i to the "match_count" field.
func (m *VendorPatternMutation) AddMatchCount(i int) {
	if m.addmatch_count != nil {
		*m.addmatch_count += i
	} else {
		m.addmatch_count = &i
	}
}

// AddedMatchCount returns the value that was added to the "match_count" field in this mutation.
func (m *VendorPatternMutation) AddedMatchCount() (r int, exists bool) {
	v := m.addmatch_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatchCount resets all changes to the "match_count" field.
func (m *VendorPatternMutation) ResetMatchCount() {
	m.match_count = nil
	m.addmatch_count = nil
}

// SetConfidence sets the "confidence" field.
func (m *VendorPatternMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *VendorPatternMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the VendorPattern entity.
// If the VendorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorPatternMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *VendorPatternMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *VendorPatternMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *VendorPatternMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetLastAmount sets the "last_amount" field.
func (m *VendorPatternMutation) SetLastAmount(f float64) {
	m.last_amount = &f
	m.addlast_amount = nil
}

// LastAmount returns the value of the "last_amount" field in the mutation.
func (m *VendorPatternMutation) LastAmount() (r float64, exists bool) {
	v := m.last_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAmount returns the old "last_amount" field's value of the VendorPattern entity.
// If the VendorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorPatternMutation) OldLastAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAmount: %w", err)
	}
	return oldValue.LastAmount, nil
}

// AddLastAmount adds f to the "last_amount" field.
func (m *VendorPatternMutation) AddLastAmount(f float64) {
	if m.addlast_amount != nil {
		*m.addlast_amount += f
	} else {
		m.addlast_amount = &f
	}
}

// AddedLastAmount returns the value that was added to the "last_amount" field in this mutation.
func (m *VendorPatternMutation) AddedLastAmount() (r float64, exists bool) {
	v := m.addlast_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastAmount clears the value of the "last_amount" field.
func (m *VendorPatternMutation) ClearLastAmount() {
	m.last_amount = nil
	m.addlast_amount = nil
	m.clearedFields[vendorpattern.FieldLastAmount] = struct{}{}
}

// LastAmountCleared returns if the "last_amount" field was cleared in this mutation.
func (m *VendorPatternMutation) LastAmountCleared() bool {
	_, ok := m.clearedFields[vendorpattern.FieldLastAmount]
	return ok
}

// ResetLastAmount resets all changes to the "last_amount" field.
func (m *VendorPatternMutation) ResetLastAmount() {
	m.last_amount = nil
	m.addlast_amount = nil
	delete(m.clearedFields, vendorpattern.FieldLastAmount)
}

// SetLastSeen sets the "last_seen" field.
func (m *VendorPatternMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *VendorPatternMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the VendorPattern entity.
// If the VendorPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VendorPatternMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *VendorPatternMutation) ResetLastSeen() {
	m.last_seen = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *VendorPatternMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[vendorpattern.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *VendorPatternMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *VendorPatternMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *VendorPatternMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the VendorPatternMutation builder.
func (m *VendorPatternMutation) Where(ps ...predicate.VendorPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VendorPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VendorPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VendorPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VendorPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VendorPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VendorPattern).
func (m *VendorPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VendorPatternMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.company != nil {
		fields = append(fields, vendorpattern.FieldCompanyID)
	}
	if m.normalized_name != nil {
		fields = append(fields, vendorpattern.FieldNormalizedName)
	}
	if m.canonical_name != nil {
		fields = append(fields, vendorpattern.FieldCanonicalName)
	}
	if m.name_variants != nil {
		fields = append(fields, vendorpattern.FieldNameVariants)
	}
	if m.known_tax_identifiers != nil {
		fields = append(fields, vendorpattern.FieldKnownTaxIdentifiers)
	}
	if m.default_account != nil {
		fields = append(fields, vendorpattern.FieldDefaultAccount)
	}
	if m.default_cost_center != nil {
		fields = append(fields, vendorpattern.FieldDefaultCostCenter)
	}
	if m.match_count != nil {
		fields = append(fields, vendorpattern.FieldMatchCount)
	}
	if m.confidence != nil {
		fields = append(fields, vendorpattern.FieldConfidence)
	}
	if m.last_amount != nil {
		fields = append(fields, vendorpattern.FieldLastAmount)
	}
	if m.last_seen != nil {
		fields = append(fields, vendorpattern.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VendorPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vendorpattern.FieldCompanyID:
		return m.CompanyID()
	case vendorpattern.FieldNormalizedName:
		return m.NormalizedName()
	case vendorpattern.FieldCanonicalName:
		return m.CanonicalName()
	case vendorpattern.FieldNameVariants:
		return m.NameVariants()
	case vendorpattern.FieldKnownTaxIdentifiers:
		return m.KnownTaxIdentifiers()
	case vendorpattern.FieldDefaultAccount:
		return m.DefaultAccount()
	case vendorpattern.FieldDefaultCostCenter:
		return m.DefaultCostCenter()
	case vendorpattern.FieldMatchCount:
		return m.MatchCount()
	case vendorpattern.FieldConfidence:
		return m.Confidence()
	case vendorpattern.FieldLastAmount:
		return m.LastAmount()
	case vendorpattern.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VendorPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vendorpattern.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case vendorpattern.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case vendorpattern.FieldCanonicalName:
		return m.OldCanonicalName(ctx)
	case vendorpattern.FieldNameVariants:
		return m.OldNameVariants(ctx)
	case vendorpattern.FieldKnownTaxIdentifiers:
		return m.OldKnownTaxIdentifiers(ctx)
	case vendorpattern.FieldDefaultAccount:
		return m.OldDefaultAccount(ctx)
	case vendorpattern.FieldDefaultCostCenter:
		return m.OldDefaultCostCenter(ctx)
	case vendorpattern.FieldMatchCount:
		return m.OldMatchCount(ctx)
	case vendorpattern.FieldConfidence:
		return m.OldConfidence(ctx)
	case vendorpattern.FieldLastAmount:
		return m.OldLastAmount(ctx)
	case vendorpattern.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown VendorPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vendorpattern.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case vendorpattern.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case vendorpattern.FieldCanonicalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalName(v)
		return nil
	case vendorpattern.FieldNameVariants:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameVariants(v)
		return nil
	case vendorpattern.FieldKnownTaxIdentifiers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnownTaxIdentifiers(v)
		return nil
	case vendorpattern.FieldDefaultAccount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultAccount(v)
		return nil
	case vendorpattern.FieldDefaultCostCenter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultCostCenter(v)
		return nil
	case vendorpattern.FieldMatchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchCount(v)
		return nil
	case vendorpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case vendorpattern.FieldLastAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAmount(v)
		return nil
	case vendorpattern.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown VendorPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VendorPatternMutation) AddedFields() []string {
	var fields []string
	if m.addmatch_count != nil {
		fields = append(fields, vendorpattern.FieldMatchCount)
	}
	if m.addconfidence != nil {
		fields = append(fields, vendorpattern.FieldConfidence)
	}
	if m.addlast_amount != nil {
		fields = append(fields, vendorpattern.FieldLastAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VendorPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vendorpattern.FieldMatchCount:
		return m.AddedMatchCount()
	case vendorpattern.FieldConfidence:
		return m.AddedConfidence()
	case vendorpattern.FieldLastAmount:
		return m.AddedLastAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VendorPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vendorpattern.FieldMatchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchCount(v)
		return nil
	case vendorpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case vendorpattern.FieldLastAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastAmount(v)
		return nil
	}
	return fmt.Errorf("unknown VendorPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VendorPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vendorpattern.FieldNameVariants) {
		fields = append(fields, vendorpattern.FieldNameVariants)
	}
	if m.FieldCleared(vendorpattern.FieldKnownTaxIdentifiers) {
		fields = append(fields, vendorpattern.FieldKnownTaxIdentifiers)
	}
	if m.FieldCleared(vendorpattern.FieldDefaultAccount) {
		fields = append(fields, vendorpattern.FieldDefaultAccount)
	}
	if m.FieldCleared(vendorpattern.FieldDefaultCostCenter) {
		fields = append(fields, vendorpattern.FieldDefaultCostCenter)
	}
	if m.FieldCleared(vendorpattern.FieldLastAmount) {
		fields = append(fields, vendorpattern.FieldLastAmount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VendorPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VendorPatternMutation) ClearField(name string) error {
	switch name {
	case vendorpattern.FieldNameVariants:
		m.ClearNameVariants()
		return nil
	case vendorpattern.FieldKnownTaxIdentifiers:
		m.ClearKnownTaxIdentifiers()
		return nil
	case vendorpattern.FieldDefaultAccount:
		m.ClearDefaultAccount()
		return nil
	case vendorpattern.FieldDefaultCostCenter:
		m.ClearDefaultCostCenter()
		return nil
	case vendorpattern.FieldLastAmount:
		m.ClearLastAmount()
		return nil
	}
	return fmt.Errorf("unknown VendorPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VendorPatternMutation) ResetField(name string) error {
	switch name {
	case vendorpattern.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case vendorpattern.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case vendorpattern.FieldCanonicalName:
		m.ResetCanonicalName()
		return nil
	case vendorpattern.FieldNameVariants:
		m.ResetNameVariants()
		return nil
	case vendorpattern.FieldKnownTaxIdentifiers:
		m.ResetKnownTaxIdentifiers()
		return nil
	case vendorpattern.FieldDefaultAccount:
		m.ResetDefaultAccount()
		return nil
	case vendorpattern.FieldDefaultCostCenter:
		m.ResetDefaultCostCenter()
		return nil
	case vendorpattern.FieldMatchCount:
		m.ResetMatchCount()
		return nil
	case vendorpattern.FieldConfidence:
		m.ResetConfidence()
		return nil
	case vendorpattern.FieldLastAmount:
		m.ResetLastAmount()
		return nil
	case vendorpattern.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown VendorPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VendorPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, vendorpattern.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VendorPatternMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vendorpattern.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VendorPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VendorPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VendorPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, vendorpattern.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VendorPatternMutation) EdgeCleared(name string) bool {
	switch name {
	case vendorpattern.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VendorPatternMutation) ClearEdge(name string) error {
	switch name {
	case vendorpattern.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown VendorPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VendorPatternMutation) ResetEdge(name string) error {
	switch name {
	case vendorpattern.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown VendorPattern edge %s", name)
}
