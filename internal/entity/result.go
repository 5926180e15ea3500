package entity

import "github.com/fiskaldesk/belegwerk/constants"

// ValidationIssue is one finding from the compliance rule set. Transient;
// produced fresh on every validation pass.
type ValidationIssue struct {
	Field    string             `json:"field"`
	Severity constants.Severity `json:"severity"`
	Message  string             `json:"message"`
}

// ValidationResult is the verdict plus everything surfaced to the caller.
type ValidationResult struct {
	IsCompliant bool              `json:"is_compliant"`
	Issues      []ValidationIssue `json:"issues"`
	Suggestions []string          `json:"suggestions"`
}

// ErrorCount returns the number of error-severity issues.
func (v ValidationResult) ErrorCount() int {
	n := 0
	for _, i := range v.Issues {
		if i.Severity == constants.SeverityError {
			n++
		}
	}
	return n
}

// OCRMeta describes the upstream recognition call.
type OCRMeta struct {
	ProviderName     string  `json:"provider_name"`
	Confidence       float64 `json:"confidence"` // 0..100
	ProcessingTimeMs int64   `json:"processing_time_ms"`
}

// Learning summarizes what the pattern matcher contributed.
type Learning struct {
	VendorMatched            bool    `json:"vendor_matched"`
	ClassificationConfidence float64 `json:"classification_confidence"` // 0..100
}

// ExtractionResult is the outbound shape of one extraction call. Success is
// false only for infrastructure faults; a non-compliant but successfully
// extracted record is returned with Success true.
type ExtractionResult struct {
	Success    bool              `json:"success"`
	Record     *ComplianceRecord `json:"record,omitempty"`
	OCRMeta    OCRMeta           `json:"ocr_meta"`
	Validation ValidationResult  `json:"validation"`
	Learning   Learning          `json:"learning"`
}
