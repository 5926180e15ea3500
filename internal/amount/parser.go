// Package amount scans free OCR text for monetary tokens and normalizes
// locale-formatted numbers into fixed-point decimals.
package amount

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// reToken matches a candidate monetary token: either thousand-grouped digits
// or a bare digit run, optionally followed by a 1-2 digit decimal part.
var reToken = regexp.MustCompile(`(?:\d{1,3}(?:[.,]\d{3})+|\d+)(?:[.,]\d{1,2})?`)

// reCents matches a trailing decimal part of one or two digits.
var reCents = regexp.MustCompile(`[.,]\d{1,2}$`)

// Parse returns all positive monetary values found in text, sorted descending
// by magnitude with duplicates removed. It never fails: unparseable or
// implausible tokens are skipped and an empty slice means "amount unknown",
// not zero.
func Parse(text string) []decimal.Decimal {
	var out []decimal.Decimal
	seen := make(map[string]struct{})

	for _, loc := range reToken.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if !standalone(text, start, end) {
			continue
		}
		d, ok := ParseOne(text[start:end])
		if !ok || !d.IsPositive() {
			continue
		}
		key := d.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].GreaterThan(out[j]) })
	return out
}

// ParseOne normalizes a single locale-formatted token. Whichever separator
// occurs last in the token is treated as the decimal point; any earlier
// separators are thousand grouping. Returns false for tokens that cannot be
// a plausible amount.
func ParseOne(token string) (decimal.Decimal, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return decimal.Zero, false
	}

	intPart := token
	fracPart := ""
	if reCents.MatchString(token) {
		lastDot := strings.LastIndex(token, ".")
		lastComma := strings.LastIndex(token, ",")
		cut := lastDot
		if lastComma > lastDot {
			cut = lastComma
		}
		intPart, fracPart = token[:cut], token[cut+1:]
	}

	digits := strings.Map(keepDigit, intPart)
	if digits == "" || len(digits) > 12 {
		return decimal.Zero, false
	}

	normalized := digits
	if fracPart != "" {
		normalized += "." + fracPart
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, false
	}
	return d.Round(2), true
}

func keepDigit(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}

// grossKeywords mark the line carrying the payable total.
var grossKeywords = []string{
	"gesamt", "total", "brutto", "endbetrag", "rechnungsbetrag",
	"zahlbetrag", "zu zahlen", "summe",
}

// SelectGross picks the most plausible gross from the parsed candidates by
// scoring each token in its line context: amounts on a total-marked line
// rank first, decimal-formatted tokens beat bare digit runs, and a
// decimal-less five-digit run has the shape of a postal code, not a price.
// Ties fall to the larger value; with no scored candidate the largest
// amount wins.
func SelectGross(text string, amounts []decimal.Decimal) decimal.Decimal {
	if len(amounts) == 0 {
		return decimal.Zero
	}
	known := make(map[string]struct{}, len(amounts))
	for _, a := range amounts {
		known[a.String()] = struct{}{}
	}

	var (
		best      decimal.Decimal
		bestScore int
		found     bool
	)
	for _, loc := range reToken.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if !standalone(text, start, end) {
			continue
		}
		raw := text[start:end]
		d, ok := ParseOne(raw)
		if !ok || !d.IsPositive() {
			continue
		}
		if _, listed := known[d.String()]; !listed {
			continue
		}
		score := scoreToken(raw, lineAround(text, start, end))
		if !found || score > bestScore || (score == bestScore && d.GreaterThan(best)) {
			best, bestScore, found = d, score, true
		}
	}
	if !found {
		return amounts[0]
	}
	return best
}

func scoreToken(raw, line string) int {
	s := 0
	if hasGrossKeyword(strings.ToLower(line)) {
		s += 8
	}
	if strings.ContainsAny(raw, ".,") {
		s += 5
	}
	if strings.HasSuffix(raw, ",00") || strings.HasSuffix(raw, ".00") {
		s += 3
	}
	if len(raw) == 5 && !strings.ContainsAny(raw, ".,") {
		s -= 8
	}
	return s
}

func hasGrossKeyword(low string) bool {
	for _, k := range grossKeywords {
		if !strings.Contains(low, k) {
			continue
		}
		// A subtotal line is not a total line.
		if k == "summe" && strings.Contains(low, "zwischensumme") {
			continue
		}
		return true
	}
	return false
}

func lineAround(text string, start, end int) string {
	ls := strings.LastIndexByte(text[:start], '\n') + 1
	le := strings.IndexByte(text[end:], '\n')
	if le < 0 {
		return text[ls:]
	}
	return text[ls : end+le]
}

// standalone rejects matches glued to percentage signs, further numeric text
// (date fragments like 01.02.2026), or identifier characters. A digit run
// inside "RE-2026" or "L-1855" is an invoice number or postal code, not money.
func standalone(text string, start, end int) bool {
	if end < len(text) {
		next := text[end]
		if next == '%' || isDigit(next) || isIdentChar(next) {
			return false
		}
		if (next == '.' || next == ',') && end+1 < len(text) && isDigit(text[end+1]) {
			return false
		}
	}
	if start > 0 {
		prev := text[start-1]
		if isDigit(prev) || prev == '.' || prev == ',' || prev == '%' || isIdentChar(prev) {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentChar(b byte) bool {
	return b == '-' || b == '/' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
