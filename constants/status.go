package constants

// ValidationStatus is the canonical validation state for a stored record.
type ValidationStatus string

// Stable values (store these exact strings in DB).
const (
	ValidationPending ValidationStatus = "PENDING"
	ValidationValid   ValidationStatus = "VALID"
	ValidationInvalid ValidationStatus = "INVALID"
)

// ApprovalStatus tracks where a record sits in the review workflow.
type ApprovalStatus string

const (
	ApprovalDraft   ApprovalStatus = "DRAFT"
	ApprovalPending ApprovalStatus = "PENDING_APPROVAL"
	ApprovalGranted ApprovalStatus = "APPROVED"
)

// Stage names a phase of one extraction run.
type Stage string

const (
	StageReceived    Stage = "RECEIVED"
	StageParsing     Stage = "PARSING"
	StageReconciling Stage = "RECONCILING"
	StageMatching    Stage = "MATCHING"
	StageClassifying Stage = "CLASSIFYING"
	StageValidating  Stage = "VALIDATING"
	StageComplete    Stage = "COMPLETE"
	StageFailed      Stage = "FAILED"
)

// ValidationStatuses and ApprovalStatuses hold the allowed values for the
// corresponding record columns.
var (
	ValidationStatuses = []string{
		string(ValidationPending), string(ValidationValid), string(ValidationInvalid),
	}
	ApprovalStatuses = []string{
		string(ApprovalDraft), string(ApprovalPending), string(ApprovalGranted),
	}
)

// Severity tags a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)
