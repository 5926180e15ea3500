package constants

// German VAT rates recognized by the reconciliation engine, in percent.
const (
	VATRateStandard = 19
	VATRateReduced  = 7
	VATRateExempt   = 0
)

// StandardVATRates lists the rates the engine will accept from document text.
var StandardVATRates = []int{VATRateExempt, VATRateReduced, VATRateStandard}

// Default SKR03 bookkeeping accounts used when no learned vendor default exists.
const (
	DefaultExpenseAccount  = "4900" // sonstige betriebliche Aufwendungen
	DefaultPayablesAccount = "1600" // Verbindlichkeiten aus Lieferungen und Leistungen
)

// BookingTextSuffix is appended to the vendor name when generating the
// booking narrative for an inbound invoice.
const BookingTextSuffix = "Rechnung"
