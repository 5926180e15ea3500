package constants

import "strings"

// DocumentType classifies an accounting source document.
type DocumentType string

const (
	Eingangsrechnung DocumentType = "EINGANGSRECHNUNG" // inbound supplier invoice (default)
	Ausgangsrechnung DocumentType = "AUSGANGSRECHNUNG"
	Gutschrift       DocumentType = "GUTSCHRIFT"
	Kassenbeleg      DocumentType = "KASSENBELEG"
)

var allDocumentTypes = []DocumentType{
	Eingangsrechnung,
	Ausgangsrechnung,
	Gutschrift,
	Kassenbeleg,
}

// DocumentTypes holds the allowed values for the document_type column.
var DocumentTypes = []string{
	string(Eingangsrechnung), string(Ausgangsrechnung),
	string(Gutschrift), string(Kassenbeleg),
}

// SeriesCode returns the document-series prefix used for generated numbers.
func (d DocumentType) SeriesCode() string {
	switch d {
	case Ausgangsrechnung:
		return "AR"
	case Gutschrift:
		return "GS"
	case Kassenbeleg:
		return "KB"
	default:
		return "ER"
	}
}

// CanonicalizeDocumentType maps a loose label onto a known type.
// Unknown labels fall back to Eingangsrechnung.
func CanonicalizeDocumentType(input string) (DocumentType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	if normalized == "" {
		return Eingangsrechnung, false
	}
	synonyms := map[string]DocumentType{
		"RECHNUNG":       Eingangsrechnung,
		"INVOICE":        Eingangsrechnung,
		"CREDIT NOTE":    Gutschrift,
		"KORREKTUR":      Gutschrift,
		"QUITTUNG":       Kassenbeleg,
		"BON":            Kassenbeleg,
		"KASSENQUITTUNG": Kassenbeleg,
	}
	if t, ok := synonyms[normalized]; ok {
		return t, true
	}
	for _, t := range allDocumentTypes {
		if normalized == string(t) {
			return t, true
		}
	}
	return Eingangsrechnung, false
}

// UnknownVendor is the sentinel vendor name used when no vendor line could be
// extracted. Downstream validation treats it as a hard error.
const UnknownVendor = "Unbekannter Lieferant"
