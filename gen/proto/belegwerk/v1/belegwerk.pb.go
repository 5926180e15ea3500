// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: belegwerk/v1/belegwerk.proto

package belegwerkpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Company struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,3,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt       string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Company) Reset() {
	*x = Company{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Company) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Company) ProtoMessage() {}

func (x *Company) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Company.ProtoReflect.Descriptor instead.
func (*Company) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{0}
}

func (x *Company) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Company) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Company) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *Company) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Company) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateCompanyRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,2,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	// Optional settings document (JSON); rejected when it fails validation.
	SettingsJson  []byte `protobuf:"bytes,3,opt,name=settings_json,json=settingsJson,proto3" json:"settings_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCompanyRequest) Reset() {
	*x = CreateCompanyRequest{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCompanyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCompanyRequest) ProtoMessage() {}

func (x *CreateCompanyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCompanyRequest.ProtoReflect.Descriptor instead.
func (*CreateCompanyRequest) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{1}
}

func (x *CreateCompanyRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateCompanyRequest) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *CreateCompanyRequest) GetSettingsJson() []byte {
	if x != nil {
		return x.SettingsJson
	}
	return nil
}

type CreateCompanyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Company       *Company               `protobuf:"bytes,1,opt,name=company,proto3" json:"company,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCompanyResponse) Reset() {
	*x = CreateCompanyResponse{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCompanyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCompanyResponse) ProtoMessage() {}

func (x *CreateCompanyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCompanyResponse.ProtoReflect.Descriptor instead.
func (*CreateCompanyResponse) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{2}
}

func (x *CreateCompanyResponse) GetCompany() *Company {
	if x != nil {
		return x.Company
	}
	return nil
}

type ListCompaniesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCompaniesRequest) Reset() {
	*x = ListCompaniesRequest{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCompaniesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCompaniesRequest) ProtoMessage() {}

func (x *ListCompaniesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCompaniesRequest.ProtoReflect.Descriptor instead.
func (*ListCompaniesRequest) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{3}
}

type ListCompaniesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Companies     []*Company             `protobuf:"bytes,1,rep,name=companies,proto3" json:"companies,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCompaniesResponse) Reset() {
	*x = ListCompaniesResponse{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCompaniesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCompaniesResponse) ProtoMessage() {}

func (x *ListCompaniesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCompaniesResponse.ProtoReflect.Descriptor instead.
func (*ListCompaniesResponse) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{4}
}

func (x *ListCompaniesResponse) GetCompanies() []*Company {
	if x != nil {
		return x.Companies
	}
	return nil
}

type ExtractDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	MimeType      string                 `protobuf:"bytes,3,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentRequest) Reset() {
	*x = ExtractDocumentRequest{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentRequest) ProtoMessage() {}

func (x *ExtractDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExtractDocumentRequest) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{5}
}

func (x *ExtractDocumentRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ExtractDocumentRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *ExtractDocumentRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *ExtractDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type ValidationIssue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	Severity      string                 `protobuf:"bytes,2,opt,name=severity,proto3" json:"severity,omitempty"` // "error" | "warning"
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidationIssue) Reset() {
	*x = ValidationIssue{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationIssue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationIssue) ProtoMessage() {}

func (x *ValidationIssue) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationIssue.ProtoReflect.Descriptor instead.
func (*ValidationIssue) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{6}
}

func (x *ValidationIssue) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *ValidationIssue) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *ValidationIssue) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ValidationResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IsCompliant   bool                   `protobuf:"varint,1,opt,name=is_compliant,json=isCompliant,proto3" json:"is_compliant,omitempty"`
	Issues        []*ValidationIssue     `protobuf:"bytes,2,rep,name=issues,proto3" json:"issues,omitempty"`
	Suggestions   []string               `protobuf:"bytes,3,rep,name=suggestions,proto3" json:"suggestions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidationResult) Reset() {
	*x = ValidationResult{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationResult) ProtoMessage() {}

func (x *ValidationResult) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationResult.ProtoReflect.Descriptor instead.
func (*ValidationResult) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{7}
}

func (x *ValidationResult) GetIsCompliant() bool {
	if x != nil {
		return x.IsCompliant
	}
	return false
}

func (x *ValidationResult) GetIssues() []*ValidationIssue {
	if x != nil {
		return x.Issues
	}
	return nil
}

func (x *ValidationResult) GetSuggestions() []string {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

// Record is the flat wire form of a stored accounting record. Monetary
// values are decimal strings.
type Record struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CompanyId        string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	DocumentNumber   string                 `protobuf:"bytes,3,opt,name=document_number,json=documentNumber,proto3" json:"document_number,omitempty"`
	DocumentDate     string                 `protobuf:"bytes,4,opt,name=document_date,json=documentDate,proto3" json:"document_date,omitempty"` // YYYY-MM-DD
	ReceiptDate      string                 `protobuf:"bytes,5,opt,name=receipt_date,json=receiptDate,proto3" json:"receipt_date,omitempty"`    // YYYY-MM-DD
	DocumentType     string                 `protobuf:"bytes,6,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	VendorName       string                 `protobuf:"bytes,7,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	VatId            string                 `protobuf:"bytes,8,opt,name=vat_id,json=vatId,proto3" json:"vat_id,omitempty"`
	Net              string                 `protobuf:"bytes,9,opt,name=net,proto3" json:"net,omitempty"`
	VatRate          string                 `protobuf:"bytes,10,opt,name=vat_rate,json=vatRate,proto3" json:"vat_rate,omitempty"`
	Vat              string                 `protobuf:"bytes,11,opt,name=vat,proto3" json:"vat,omitempty"`
	Gross            string                 `protobuf:"bytes,12,opt,name=gross,proto3" json:"gross,omitempty"`
	CurrencyCode     string                 `protobuf:"bytes,13,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	Account          string                 `protobuf:"bytes,14,opt,name=account,proto3" json:"account,omitempty"`
	OffsetAccount    string                 `protobuf:"bytes,15,opt,name=offset_account,json=offsetAccount,proto3" json:"offset_account,omitempty"`
	CostCenter       string                 `protobuf:"bytes,16,opt,name=cost_center,json=costCenter,proto3" json:"cost_center,omitempty"`
	BookingText      string                 `protobuf:"bytes,17,opt,name=booking_text,json=bookingText,proto3" json:"booking_text,omitempty"`
	ValidationStatus string                 `protobuf:"bytes,18,opt,name=validation_status,json=validationStatus,proto3" json:"validation_status,omitempty"`
	ApprovalStatus   string                 `protobuf:"bytes,19,opt,name=approval_status,json=approvalStatus,proto3" json:"approval_status,omitempty"`
	Confidence       float64                `protobuf:"fixed64,20,opt,name=confidence,proto3" json:"confidence,omitempty"`
	MatchedPatternId string                 `protobuf:"bytes,21,opt,name=matched_pattern_id,json=matchedPatternId,proto3" json:"matched_pattern_id,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Record) Reset() {
	*x = Record{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Record) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Record) ProtoMessage() {}

func (x *Record) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Record.ProtoReflect.Descriptor instead.
func (*Record) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{8}
}

func (x *Record) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Record) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *Record) GetDocumentNumber() string {
	if x != nil {
		return x.DocumentNumber
	}
	return ""
}

func (x *Record) GetDocumentDate() string {
	if x != nil {
		return x.DocumentDate
	}
	return ""
}

func (x *Record) GetReceiptDate() string {
	if x != nil {
		return x.ReceiptDate
	}
	return ""
}

func (x *Record) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Record) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *Record) GetVatId() string {
	if x != nil {
		return x.VatId
	}
	return ""
}

func (x *Record) GetNet() string {
	if x != nil {
		return x.Net
	}
	return ""
}

func (x *Record) GetVatRate() string {
	if x != nil {
		return x.VatRate
	}
	return ""
}

func (x *Record) GetVat() string {
	if x != nil {
		return x.Vat
	}
	return ""
}

func (x *Record) GetGross() string {
	if x != nil {
		return x.Gross
	}
	return ""
}

func (x *Record) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Record) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *Record) GetOffsetAccount() string {
	if x != nil {
		return x.OffsetAccount
	}
	return ""
}

func (x *Record) GetCostCenter() string {
	if x != nil {
		return x.CostCenter
	}
	return ""
}

func (x *Record) GetBookingText() string {
	if x != nil {
		return x.BookingText
	}
	return ""
}

func (x *Record) GetValidationStatus() string {
	if x != nil {
		return x.ValidationStatus
	}
	return ""
}

func (x *Record) GetApprovalStatus() string {
	if x != nil {
		return x.ApprovalStatus
	}
	return ""
}

func (x *Record) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Record) GetMatchedPatternId() string {
	if x != nil {
		return x.MatchedPatternId
	}
	return ""
}

type ExtractDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Record        *Record                `protobuf:"bytes,2,opt,name=record,proto3" json:"record,omitempty"`
	Validation    *ValidationResult      `protobuf:"bytes,3,opt,name=validation,proto3" json:"validation,omitempty"`
	ProviderName  string                 `protobuf:"bytes,4,opt,name=provider_name,json=providerName,proto3" json:"provider_name,omitempty"`
	OcrConfidence float64                `protobuf:"fixed64,5,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	VendorMatched bool                   `protobuf:"varint,6,opt,name=vendor_matched,json=vendorMatched,proto3" json:"vendor_matched,omitempty"`
	// ID of an already stored record carrying the same document number, when
	// duplicate detection is enabled and one exists.
	DuplicateOf   string `protobuf:"bytes,7,opt,name=duplicate_of,json=duplicateOf,proto3" json:"duplicate_of,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentResponse) Reset() {
	*x = ExtractDocumentResponse{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentResponse) ProtoMessage() {}

func (x *ExtractDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExtractDocumentResponse) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{9}
}

func (x *ExtractDocumentResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ExtractDocumentResponse) GetRecord() *Record {
	if x != nil {
		return x.Record
	}
	return nil
}

func (x *ExtractDocumentResponse) GetValidation() *ValidationResult {
	if x != nil {
		return x.Validation
	}
	return nil
}

func (x *ExtractDocumentResponse) GetProviderName() string {
	if x != nil {
		return x.ProviderName
	}
	return ""
}

func (x *ExtractDocumentResponse) GetOcrConfidence() float64 {
	if x != nil {
		return x.OcrConfidence
	}
	return 0
}

func (x *ExtractDocumentResponse) GetVendorMatched() bool {
	if x != nil {
		return x.VendorMatched
	}
	return false
}

func (x *ExtractDocumentResponse) GetDuplicateOf() string {
	if x != nil {
		return x.DuplicateOf
	}
	return ""
}

type ListRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecordsRequest) Reset() {
	*x = ListRecordsRequest{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecordsRequest) ProtoMessage() {}

func (x *ListRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListRecordsRequest) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{10}
}

func (x *ListRecordsRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ListRecordsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListRecordsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*Record              `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecordsResponse) Reset() {
	*x = ListRecordsResponse{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecordsResponse) ProtoMessage() {}

func (x *ListRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListRecordsResponse) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{11}
}

func (x *ListRecordsResponse) GetRecords() []*Record {
	if x != nil {
		return x.Records
	}
	return nil
}

type ExportLedgerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLedgerRequest) Reset() {
	*x = ExportLedgerRequest{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLedgerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLedgerRequest) ProtoMessage() {}

func (x *ExportLedgerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLedgerRequest.ProtoReflect.Descriptor instead.
func (*ExportLedgerRequest) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{12}
}

func (x *ExportLedgerRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *ExportLedgerRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportLedgerRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportLedgerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLedgerResponse) Reset() {
	*x = ExportLedgerResponse{}
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLedgerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLedgerResponse) ProtoMessage() {}

func (x *ExportLedgerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_belegwerk_v1_belegwerk_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLedgerResponse.ProtoReflect.Descriptor instead.
func (*ExportLedgerResponse) Descriptor() ([]byte, []int) {
	return file_belegwerk_v1_belegwerk_proto_rawDescGZIP(), []int{13}
}

func (x *ExportLedgerResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_belegwerk_v1_belegwerk_proto protoreflect.FileDescriptor

const file_belegwerk_v1_belegwerk_proto_rawDesc = "" +
	"\n" +
	"\x1cbelegwerk/v1/belegwerk.proto\x12\fbelegwerk.v1\"\x96\x01\n" +
	"\aCompany\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12)\n" +
	"\x10default_currency\x18\x03 \x01(\tR\x0fdefaultCurrency\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"z\n" +
	"\x14CreateCompanyRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12)\n" +
	"\x10default_currency\x18\x02 \x01(\tR\x0fdefaultCurrency\x12#\n" +
	"\rsettings_json\x18\x03 \x01(\fR\fsettingsJson\"H\n" +
	"\x15CreateCompanyResponse\x12/\n" +
	"\acompany\x18\x01 \x01(\v2\x15.belegwerk.v1.CompanyR\acompany\"\x16\n" +
	"\x14ListCompaniesRequest\"L\n" +
	"\x15ListCompaniesResponse\x123\n" +
	"\tcompanies\x18\x01 \x03(\v2\x15.belegwerk.v1.CompanyR\tcompanies\"\x8b\x01\n" +
	"\x16ExtractDocumentRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x1b\n" +
	"\tmime_type\x18\x03 \x01(\tR\bmimeType\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\"]\n" +
	"\x0fValidationIssue\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x12\x1a\n" +
	"\bseverity\x18\x02 \x01(\tR\bseverity\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\"\x8e\x01\n" +
	"\x10ValidationResult\x12!\n" +
	"\fis_compliant\x18\x01 \x01(\bR\visCompliant\x125\n" +
	"\x06issues\x18\x02 \x03(\v2\x1d.belegwerk.v1.ValidationIssueR\x06issues\x12 \n" +
	"\vsuggestions\x18\x03 \x03(\tR\vsuggestions\"\xa8\x05\n" +
	"\x06Record\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12'\n" +
	"\x0fdocument_number\x18\x03 \x01(\tR\x0edocumentNumber\x12#\n" +
	"\rdocument_date\x18\x04 \x01(\tR\fdocumentDate\x12!\n" +
	"\freceipt_date\x18\x05 \x01(\tR\vreceiptDate\x12#\n" +
	"\rdocument_type\x18\x06 \x01(\tR\fdocumentType\x12\x1f\n" +
	"\vvendor_name\x18\a \x01(\tR\n" +
	"vendorName\x12\x15\n" +
	"\x06vat_id\x18\b \x01(\tR\x05vatId\x12\x10\n" +
	"\x03net\x18\t \x01(\tR\x03net\x12\x19\n" +
	"\bvat_rate\x18\n" +
	" \x01(\tR\avatRate\x12\x10\n" +
	"\x03vat\x18\v \x01(\tR\x03vat\x12\x14\n" +
	"\x05gross\x18\f \x01(\tR\x05gross\x12#\n" +
	"\rcurrency_code\x18\r \x01(\tR\fcurrencyCode\x12\x18\n" +
	"\aaccount\x18\x0e \x01(\tR\aaccount\x12%\n" +
	"\x0eoffset_account\x18\x0f \x01(\tR\roffsetAccount\x12\x1f\n" +
	"\vcost_center\x18\x10 \x01(\tR\n" +
	"costCenter\x12!\n" +
	"\fbooking_text\x18\x11 \x01(\tR\vbookingText\x12+\n" +
	"\x11validation_status\x18\x12 \x01(\tR\x10validationStatus\x12'\n" +
	"\x0fapproval_status\x18\x13 \x01(\tR\x0eapprovalStatus\x12\x1e\n" +
	"\n" +
	"confidence\x18\x14 \x01(\x01R\n" +
	"confidence\x12,\n" +
	"\x12matched_pattern_id\x18\x15 \x01(\tR\x10matchedPatternId\"\xb7\x02\n" +
	"\x17ExtractDocumentResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12,\n" +
	"\x06record\x18\x02 \x01(\v2\x14.belegwerk.v1.RecordR\x06record\x12>\n" +
	"\n" +
	"validation\x18\x03 \x01(\v2\x1e.belegwerk.v1.ValidationResultR\n" +
	"validation\x12#\n" +
	"\rprovider_name\x18\x04 \x01(\tR\fproviderName\x12%\n" +
	"\x0eocr_confidence\x18\x05 \x01(\x01R\rocrConfidence\x12%\n" +
	"\x0evendor_matched\x18\x06 \x01(\bR\rvendorMatched\x12!\n" +
	"\fduplicate_of\x18\a \x01(\tR\vduplicateOf\"i\n" +
	"\x12ListRecordsRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"E\n" +
	"\x13ListRecordsResponse\x12.\n" +
	"\arecords\x18\x01 \x03(\v2\x14.belegwerk.v1.RecordR\arecords\"j\n" +
	"\x13ExportLedgerRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"*\n" +
	"\x14ExportLedgerResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc4\x01\n" +
	"\x0eCompanyService\x12X\n" +
	"\rCreateCompany\x12\".belegwerk.v1.CreateCompanyRequest\x1a#.belegwerk.v1.CreateCompanyResponse\x12X\n" +
	"\rListCompanies\x12\".belegwerk.v1.ListCompaniesRequest\x1a#.belegwerk.v1.ListCompaniesResponse2\xc7\x01\n" +
	"\x11ExtractionService\x12^\n" +
	"\x0fExtractDocument\x12$.belegwerk.v1.ExtractDocumentRequest\x1a%.belegwerk.v1.ExtractDocumentResponse\x12R\n" +
	"\vListRecords\x12 .belegwerk.v1.ListRecordsRequest\x1a!.belegwerk.v1.ListRecordsResponse2f\n" +
	"\rExportService\x12U\n" +
	"\fExportLedger\x12!.belegwerk.v1.ExportLedgerRequest\x1a\".belegwerk.v1.ExportLedgerResponseBDZBgithub.com/fiskaldesk/belegwerk/gen/proto/belegwerk/v1;belegwerkpbb\x06proto3"

var (
	file_belegwerk_v1_belegwerk_proto_rawDescOnce sync.Once
	file_belegwerk_v1_belegwerk_proto_rawDescData []byte
)

func file_belegwerk_v1_belegwerk_proto_rawDescGZIP() []byte {
	file_belegwerk_v1_belegwerk_proto_rawDescOnce.Do(func() {
		file_belegwerk_v1_belegwerk_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_belegwerk_v1_belegwerk_proto_rawDesc), len(file_belegwerk_v1_belegwerk_proto_rawDesc)))
	})
	return file_belegwerk_v1_belegwerk_proto_rawDescData
}

var file_belegwerk_v1_belegwerk_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_belegwerk_v1_belegwerk_proto_goTypes = []any{
	(*Company)(nil),                 // 0: belegwerk.v1.Company
	(*CreateCompanyRequest)(nil),    // 1: belegwerk.v1.CreateCompanyRequest
	(*CreateCompanyResponse)(nil),   // 2: belegwerk.v1.CreateCompanyResponse
	(*ListCompaniesRequest)(nil),    // 3: belegwerk.v1.ListCompaniesRequest
	(*ListCompaniesResponse)(nil),   // 4: belegwerk.v1.ListCompaniesResponse
	(*ExtractDocumentRequest)(nil),  // 5: belegwerk.v1.ExtractDocumentRequest
	(*ValidationIssue)(nil),         // 6: belegwerk.v1.ValidationIssue
	(*ValidationResult)(nil),        // 7: belegwerk.v1.ValidationResult
	(*Record)(nil),                  // 8: belegwerk.v1.Record
	(*ExtractDocumentResponse)(nil), // 9: belegwerk.v1.ExtractDocumentResponse
	(*ListRecordsRequest)(nil),      // 10: belegwerk.v1.ListRecordsRequest
	(*ListRecordsResponse)(nil),     // 11: belegwerk.v1.ListRecordsResponse
	(*ExportLedgerRequest)(nil),     // 12: belegwerk.v1.ExportLedgerRequest
	(*ExportLedgerResponse)(nil),    // 13: belegwerk.v1.ExportLedgerResponse
}
var file_belegwerk_v1_belegwerk_proto_depIdxs = []int32{
	0,  // 0: belegwerk.v1.CreateCompanyResponse.company:type_name -> belegwerk.v1.Company
	0,  // 1: belegwerk.v1.ListCompaniesResponse.companies:type_name -> belegwerk.v1.Company
	6,  // 2: belegwerk.v1.ValidationResult.issues:type_name -> belegwerk.v1.ValidationIssue
	8,  // 3: belegwerk.v1.ExtractDocumentResponse.record:type_name -> belegwerk.v1.Record
	7,  // 4: belegwerk.v1.ExtractDocumentResponse.validation:type_name -> belegwerk.v1.ValidationResult
	8,  // 5: belegwerk.v1.ListRecordsResponse.records:type_name -> belegwerk.v1.Record
	1,  // 6: belegwerk.v1.CompanyService.CreateCompany:input_type -> belegwerk.v1.CreateCompanyRequest
	3,  // 7: belegwerk.v1.CompanyService.ListCompanies:input_type -> belegwerk.v1.ListCompaniesRequest
	5,  // 8: belegwerk.v1.ExtractionService.ExtractDocument:input_type -> belegwerk.v1.ExtractDocumentRequest
	10, // 9: belegwerk.v1.ExtractionService.ListRecords:input_type -> belegwerk.v1.ListRecordsRequest
	12, // 10: belegwerk.v1.ExportService.ExportLedger:input_type -> belegwerk.v1.ExportLedgerRequest
	2,  // 11: belegwerk.v1.CompanyService.CreateCompany:output_type -> belegwerk.v1.CreateCompanyResponse
	4,  // 12: belegwerk.v1.CompanyService.ListCompanies:output_type -> belegwerk.v1.ListCompaniesResponse
	9,  // 13: belegwerk.v1.ExtractionService.ExtractDocument:output_type -> belegwerk.v1.ExtractDocumentResponse
	11, // 14: belegwerk.v1.ExtractionService.ListRecords:output_type -> belegwerk.v1.ListRecordsResponse
	13, // 15: belegwerk.v1.ExportService.ExportLedger:output_type -> belegwerk.v1.ExportLedgerResponse
	11, // [11:16] is the sub-list for method output_type
	6,  // [6:11] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_belegwerk_v1_belegwerk_proto_init() }
func file_belegwerk_v1_belegwerk_proto_init() {
	if File_belegwerk_v1_belegwerk_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_belegwerk_v1_belegwerk_proto_rawDesc), len(file_belegwerk_v1_belegwerk_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_belegwerk_v1_belegwerk_proto_goTypes,
		DependencyIndexes: file_belegwerk_v1_belegwerk_proto_depIdxs,
		MessageInfos:      file_belegwerk_v1_belegwerk_proto_msgTypes,
	}.Build()
	File_belegwerk_v1_belegwerk_proto = out.File
	file_belegwerk_v1_belegwerk_proto_goTypes = nil
	file_belegwerk_v1_belegwerk_proto_depIdxs = nil
}
