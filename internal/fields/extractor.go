// Package fields pulls vendor identity and document metadata out of
// recognized invoice text using position heuristics and regular patterns.
// Every field is best-effort: absence is a nil pointer, never an empty
// string.
package fields

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/amount"
	"github.com/fiskaldesk/belegwerk/internal/entity"
)

// Fields is everything the extractor could determine from one document.
type Fields struct {
	Vendor         entity.Vendor
	DocumentNumber *string
	DocumentDate   *time.Time
	DocumentType   constants.DocumentType
	PaymentTerms   *entity.PaymentTerms
	LineItems      []entity.LineItem
	Bank           *entity.BankDetails

	// VATIDUnrecognized is set when a two-letter-prefixed identifier was
	// found but does not match the common two-letter + nine-digit shape.
	// The raw value is still kept on Vendor.VATID.
	VATIDUnrecognized bool
}

// headerShare is the fraction of leading lines conventionally occupied by
// the vendor letterhead.
const headerShare = 0.30

var (
	reTaxNumber = regexp.MustCompile(`\b(\d{2,3}/\d{3,4}/\d{4,5})\b`)
	reVATID     = regexp.MustCompile(`\b([A-Z]{2}\d{9})\b`)
	reVATIDLoose = regexp.MustCompile(`(?:USt[-.\s]*Id(?:Nr)?\.?|VAT\s*(?:ID|No)\.?)\s*:?\s*([A-Z]{2}[A-Z0-9]{2,12})`)
	rePostal    = regexp.MustCompile(`\b(\d{5})\b(?: +([A-ZÄÖÜ][\wäöüß.-]+(?: [A-ZÄÖÜ][\wäöüß.-]+)?))?`)
	reRegister  = regexp.MustCompile(`\b(HR[AB]\s?\d{3,6})\b`)
	reEmail     = regexp.MustCompile(`\b[\w.+-]+@[\w-]+\.[\w.]+\b`)
	reWebsite   = regexp.MustCompile(`\b(?:https?://|www\.)\S+\b`)
	rePhone     = regexp.MustCompile(`(?:Tel(?:efon)?\.?\s*:?\s*)((?:\+49|0)[\d\s/()-]{5,})`)
	reIBAN      = regexp.MustCompile(`\b([A-Z]{2}\d{2}(?: ?[A-Z0-9]{4}){2,7}(?: ?[A-Z0-9]{1,4})?)\b`)
	reBIC       = regexp.MustCompile(`\bBIC\s*:?\s*([A-Z]{6}[A-Z0-9]{2}(?:[A-Z0-9]{3})?)\b`)
	reDocNumber = regexp.MustCompile(`(?i)(?:Rechnungs?[-\s]?(?:nr|nummer)\.?|Belegnummer|Invoice\s*(?:no|number)\.?)\s*:?\s*([A-Za-z0-9][A-Za-z0-9/_-]{2,})`)
	reDateDE    = regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{4})\b`)
	reDateISO   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)

	reLegalForm = regexp.MustCompile(`\b(GmbH\s*&\s*Co\.?\s*KG|GmbH|AG|UG(?:\s*\(haftungsbeschränkt\))?|KGaA|KG|OHG|e\.\s?K\.|GbR|e\.\s?V\.|S\.?\s?a\.?\s?r\.?\s?l\.?|Ltd\.?|B\.?V\.?|Inc\.?)\b`)
)

// structuralKeywords disqualify a header line from being the vendor name.
// Short tokens that legitimately occur inside company names (Telekom, Privat-)
// are matched on word boundaries via reStructuralShort instead.
var structuralKeywords = []string{
	"rechnung", "invoice", "gutschrift", "quittung", "beleg", "angebot",
	"datum", "date", "seite", "page", "kundennummer", "kunden-nr",
	"steuernummer", "steuer-nr", "ust-id", "ustid",
	"email", "e-mail", "www", "http",
	"betrag", "summe", "gesamt", "total", "netto", "brutto", "mwst",
	"lieferdatum", "leistungszeitraum", "zahlbar", "zahlungsziel",
}

var reStructuralShort = regexp.MustCompile(`(?i)\b(tel|telefon|telefax|fax|vat|iban|bic)\b`)

type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract runs all field strategies over the document text. It is total:
// whatever cannot be determined stays unset and the vendor name falls back
// to the sentinel, which downstream validation treats as a hard error.
func (e *Extractor) Extract(doc entity.RawDocument) Fields {
	lines := splitLines(doc.Text)
	header := headerLines(lines)

	f := Fields{}
	f.Vendor.Name = extractVendorName(header)
	if f.Vendor.Name == constants.UnknownVendor {
		e.logger.Warn("fields.vendor_name.fallback", "file", doc.FileName)
	}

	if m := reLegalForm.FindString(f.Vendor.Name); m != "" {
		lf := strings.TrimSpace(m)
		f.Vendor.LegalForm = &lf
	}

	if m := reTaxNumber.FindStringSubmatch(doc.Text); m != nil {
		f.Vendor.TaxNumber = &m[1]
	}
	extractVATID(doc.Text, &f)

	if m := rePostal.FindStringSubmatch(strings.Join(header, "\n")); m != nil {
		f.Vendor.PostalCode = &m[1]
		if m[2] != "" {
			city := strings.TrimSpace(m[2])
			f.Vendor.City = &city
		}
	}
	if m := reRegister.FindStringSubmatch(doc.Text); m != nil {
		f.Vendor.RegisterID = &m[1]
	}
	if m := reEmail.FindString(doc.Text); m != "" {
		f.Vendor.Email = &m
	}
	if m := reWebsite.FindString(doc.Text); m != "" {
		f.Vendor.Website = &m
	}
	if m := rePhone.FindStringSubmatch(doc.Text); m != nil {
		phone := strings.TrimSpace(m[1])
		f.Vendor.Phone = &phone
	}

	f.Bank = extractBank(doc.Text)
	f.DocumentNumber = extractDocNumber(doc.Text)
	f.DocumentDate = extractDocDate(doc.Text)
	f.DocumentType = extractDocType(doc.Text)
	f.PaymentTerms = extractPaymentTerms(doc.Text)
	f.LineItems = extractLineItems(lines)
	return f
}

func splitLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// headerLines returns the leading region where the letterhead lives.
func headerLines(lines []string) []string {
	n := int(float64(len(lines)) * headerShare)
	if n < 5 {
		n = 5
	}
	if n > len(lines) {
		n = len(lines)
	}
	return lines[:n]
}

// extractVendorName tries each header line in order and takes the first one
// that is not a structural keyword line and carries actual letters.
func extractVendorName(header []string) string {
	for _, line := range header {
		if isStructural(line) {
			continue
		}
		if !hasLetters(line) {
			continue
		}
		return line
	}
	return constants.UnknownVendor
}

func isStructural(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range structuralKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return reStructuralShort.MatchString(line)
}

func hasLetters(line string) bool {
	letters := 0
	for _, r := range line {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == 'ä' || r == 'ö' || r == 'ü' || r == 'Ä' || r == 'Ö' || r == 'Ü' || r == 'ß' {
			letters++
		}
	}
	return letters >= 3
}

func extractVATID(text string, f *Fields) {
	if m := reVATID.FindStringSubmatch(text); m != nil {
		f.Vendor.VATID = &m[1]
		return
	}
	// A labeled identifier in some other national shape is kept verbatim
	// and flagged unrecognized rather than rejected.
	if m := reVATIDLoose.FindStringSubmatch(text); m != nil {
		f.Vendor.VATID = &m[1]
		f.VATIDUnrecognized = true
	}
}

// extractBank takes the first IBAN-shaped run of plausible length. Shorter
// runs that share the country-prefix shape (VAT identifiers, order numbers)
// are skipped, not treated as a failed parse.
func extractBank(text string) *entity.BankDetails {
	for _, m := range reIBAN.FindAllStringSubmatch(text, -1) {
		iban := strings.ReplaceAll(m[1], " ", "")
		if len(iban) < 15 || len(iban) > 34 {
			continue
		}
		bank := &entity.BankDetails{IBAN: iban}
		if b := reBIC.FindStringSubmatch(text); b != nil {
			bank.BIC = &b[1]
		}
		return bank
	}
	return nil
}

func extractDocNumber(text string) *string {
	m := reDocNumber.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n := strings.TrimSpace(m[1])
	return &n
}

func amountFromToken(tok string) (*decimal.Decimal, bool) {
	d, ok := amount.ParseOne(tok)
	if !ok {
		return nil, false
	}
	return &d, true
}

func extractDocType(text string) constants.DocumentType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "gutschrift"):
		return constants.Gutschrift
	case strings.Contains(lower, "kassenbon") || strings.Contains(lower, "quittung"):
		return constants.Kassenbeleg
	default:
		return constants.Eingangsrechnung
	}
}

var (
	reDueDays = regexp.MustCompile(`(?i)(?:zahlbar\s+(?:innerhalb|binnen)|zahlungsziel\s*:?)\s*(?:von\s+)?(\d{1,3})\s*Tage`)
	reDunning = regexp.MustCompile(`(?i)\b(mahnung|zahlungserinnerung)\b`)
)

func extractPaymentTerms(text string) *entity.PaymentTerms {
	m := reDueDays.FindStringSubmatch(text)
	dunning := reDunning.MatchString(text)
	if m == nil && !dunning {
		return nil
	}
	terms := &entity.PaymentTerms{Dunning: dunning}
	if m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			terms.DueInDays = days
		}
	}
	return terms
}

// reLineItem matches "pos description ... amount" rows, e.g.
// "1  DSL Anschluss  39,95".
var reLineItem = regexp.MustCompile(`^(\d{1,3})\s+(.{3,60}?)\s{2,}(\d{1,3}(?:[.,]\d{3})*[.,]\d{2})$`)

func extractLineItems(lines []string) []entity.LineItem {
	var items []entity.LineItem
	for _, line := range lines {
		m := reLineItem.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		pos, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		total, ok := amountFromToken(m[3])
		if !ok {
			continue
		}
		items = append(items, entity.LineItem{
			Position:    pos,
			Description: strings.TrimSpace(m[2]),
			Total:       total,
		})
	}
	return items
}

func extractDocDate(text string) *time.Time {
	if m := reDateDE.FindStringSubmatch(text); m != nil {
		if t, err := time.Parse("2.1.2006", m[1]+"."+m[2]+"."+m[3]); err == nil {
			return &t
		}
	}
	if m := reDateISO.FindStringSubmatch(text); m != nil {
		if t, err := time.Parse("2006-01-02", m[0]); err == nil {
			return &t
		}
	}
	return nil
}
