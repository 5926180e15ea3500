// Package tax fills in the missing members of {net, rate, VAT, gross} and
// checks arithmetic consistency of the extracted figures.
package tax

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/amount"
	"github.com/fiskaldesk/belegwerk/internal/entity"
)

// Config carries the tunables of the engine. Tolerance is in currency units;
// small rounding differences inside it are not a compliance failure.
type Config struct {
	DefaultRate int
	Tolerance   decimal.Decimal
}

type Engine struct {
	cfg    Config
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DefaultRate == 0 {
		cfg.DefaultRate = constants.VATRateStandard
	}
	if cfg.Tolerance.IsZero() {
		cfg.Tolerance = decimal.RequireFromString("0.05")
	}
	return &Engine{cfg: cfg, logger: logger}
}

var rePercent = regexp.MustCompile(`\b(\d{1,2})\s?%`)

// regime markers; several may be true at once, contradictions are for the
// compliance validator to report.
var (
	markersSmallBusiness = []string{"kleinunternehmer", "§ 19 ustg", "§19 ustg"}
	markersIntraEU       = []string{"innergemeinschaftlich", "intra-community"}
	markersThirdCountry  = []string{"ausfuhrlieferung", "drittland", "export delivery"}
	markersReverseCharge = []string{"reverse charge", "reverse-charge", "steuerschuldnerschaft des leistungsempfängers"}
)

// Reconcile derives the missing tax figures from the parsed amounts and the
// document text. It is total: with no amounts at all the returned breakdown
// only carries the detected rate and regime flags. Warnings are returned for
// stated figures that do not reconcile within the tolerance.
func (e *Engine) Reconcile(amounts []decimal.Decimal, text string) (entity.TaxBreakdown, []entity.ValidationIssue) {
	var issues []entity.ValidationIssue
	lower := strings.ToLower(text)

	bd := entity.TaxBreakdown{
		SmallBusiness: containsAny(lower, markersSmallBusiness),
		IntraEU:       containsAny(lower, markersIntraEU),
		ThirdCountry:  containsAny(lower, markersThirdCountry),
		ReverseCharge: containsAny(lower, markersReverseCharge),
	}

	rate, explicit := e.detectRate(lower, bd)
	rateDec := decimal.NewFromInt(int64(rate))
	bd.VATRate = &rateDec

	if len(amounts) == 0 {
		return bd, issues
	}

	// The gross is the amount on a total-marked line when one exists;
	// plain magnitude is only the fallback. A letterhead postal code can
	// be the largest digit run on an invoice.
	gross := amount.SelectGross(text, amounts)
	bd.Gross = &gross

	// Prefer a stated triple: net + vat == gross within tolerance.
	if net, vat, ok := findTriple(amounts, gross, e.cfg.Tolerance); ok {
		bd.Net = &net
		bd.VATAmount = &vat
		// Without an explicit percentage marker, trust the stated figures
		// and snap the implied rate onto a standard one when it fits.
		if !explicit && net.IsPositive() {
			implied := vat.Div(net).Mul(decimal.NewFromInt(100))
			for _, std := range constants.StandardVATRates {
				if implied.Sub(decimal.NewFromInt(int64(std))).Abs().LessThanOrEqual(decimal.NewFromInt(1)) {
					rate = std
					rateDec = decimal.NewFromInt(int64(std))
					bd.VATRate = &rateDec
					break
				}
			}
		}
	} else {
		// Only gross and rate are known: net = gross / (1 + rate/100).
		divisor := decimal.NewFromInt(1).Add(rateDec.Div(decimal.NewFromInt(100)))
		net := gross.DivRound(divisor, 2)
		vat := gross.Sub(net)
		bd.Net = &net
		bd.VATAmount = &vat
	}

	// Consistency: recompute gross from net and rate.
	recomputed := bd.Net.Mul(decimal.NewFromInt(1).Add(rateDec.Div(decimal.NewFromInt(100)))).Round(2)
	if diff := recomputed.Sub(gross).Abs(); diff.GreaterThan(e.cfg.Tolerance) {
		e.logger.Warn("tax.reconcile.mismatch",
			"net", bd.Net, "rate", rate, "gross", gross, "diff", diff)
		issues = append(issues, entity.ValidationIssue{
			Field:    "steuer.brutto",
			Severity: constants.SeverityWarning,
			Message:  "Bruttobetrag weicht um " + diff.StringFixed(2) + " von Netto + USt ab",
		})
	}
	return bd, issues
}

// detectRate looks for an explicit percentage marker, falling back to the
// configured default. Regime markers that imply exemption count as an
// explicit 0% marker. The second return reports whether the rate was stated
// in the text.
func (e *Engine) detectRate(lower string, bd entity.TaxBreakdown) (int, bool) {
	if bd.SmallBusiness || bd.ReverseCharge || bd.IntraEU || bd.ThirdCountry {
		return constants.VATRateExempt, true
	}
	found := map[int]bool{}
	for _, m := range rePercent.FindAllStringSubmatch(lower, -1) {
		switch m[1] {
		case "19":
			found[constants.VATRateStandard] = true
		case "7":
			found[constants.VATRateReduced] = true
		case "0":
			found[constants.VATRateExempt] = true
		}
	}
	switch {
	case found[constants.VATRateStandard]:
		return constants.VATRateStandard, true
	case found[constants.VATRateReduced]:
		return constants.VATRateReduced, true
	case found[constants.VATRateExempt]:
		return constants.VATRateExempt, true
	}
	return e.cfg.DefaultRate, false
}

// findTriple searches the candidates for net + vat = gross around the
// selected gross.
func findTriple(amounts []decimal.Decimal, gross, tol decimal.Decimal) (net, vat decimal.Decimal, ok bool) {
	if len(amounts) < 3 {
		return decimal.Zero, decimal.Zero, false
	}
	rest := make([]decimal.Decimal, 0, len(amounts)-1)
	skipped := false
	for _, a := range amounts {
		if !skipped && a.Equal(gross) {
			skipped = true
			continue
		}
		rest = append(rest, a)
	}
	for i := 0; i < len(rest); i++ {
		for j := i + 1; j < len(rest); j++ {
			a, b := rest[i], rest[j]
			if a.Add(b).Sub(gross).Abs().LessThanOrEqual(tol) {
				if a.GreaterThanOrEqual(b) {
					return a, b, true
				}
				return b, a, true
			}
		}
	}
	return decimal.Zero, decimal.Zero, false
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
