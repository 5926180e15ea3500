package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiskaldesk/belegwerk/internal/amount"
)

func newTestEngine() *Engine {
	return NewEngine(Config{}, nil)
}

func TestReconcileGrossAndRateOnly(t *testing.T) {
	bd, issues := newTestEngine().Reconcile(
		[]decimal.Decimal{decimal.RequireFromString("119.00")},
		"USt 19%\nGesamt: 119,00",
	)
	require.NotNil(t, bd.Net)
	require.NotNil(t, bd.VATAmount)
	assert.Equal(t, "100.00", bd.Net.StringFixed(2))
	assert.Equal(t, "19.00", bd.VATAmount.StringFixed(2))
	assert.Equal(t, "119.00", bd.Gross.StringFixed(2))
	assert.True(t, bd.VATRate.Equal(decimal.NewFromInt(19)))
	assert.Empty(t, issues)
}

func TestReconcileStatedTriple(t *testing.T) {
	amounts := amount.Parse("Netto 100,00\nMwSt 19,00\nBrutto 119,00")
	bd, issues := newTestEngine().Reconcile(amounts, "Netto 100,00 MwSt 19,00 Brutto 119,00")
	assert.Equal(t, "100.00", bd.Net.StringFixed(2))
	assert.Equal(t, "19.00", bd.VATAmount.StringFixed(2))
	assert.True(t, bd.VATRate.Equal(decimal.NewFromInt(19)), "implied rate snaps to 19, got %s", bd.VATRate)
	assert.Empty(t, issues)
}

// Deriving gross from (net, rate) and then net from (gross, rate) must return
// the original net within a cent for every standard rate.
func TestReconcileClosure(t *testing.T) {
	e := newTestEngine()
	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)
	nets := []string{"0.01", "1.00", "99.99", "1234.56", "100000.00"}
	for _, rate := range []int64{0, 7, 19} {
		factor := one.Add(decimal.NewFromInt(rate).Div(hundred))
		for _, n := range nets {
			net := decimal.RequireFromString(n)
			gross := net.Mul(factor).Round(2)

			text := "0% USt"
			if rate > 0 {
				text = decimal.NewFromInt(rate).String() + "% USt"
			}
			bd, _ := e.Reconcile([]decimal.Decimal{gross}, text)
			require.NotNil(t, bd.Net)
			diff := bd.Net.Sub(net).Abs()
			assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")),
				"rate %d net %s: rederived %s (diff %s)", rate, net, bd.Net, diff)
		}
	}
}

func TestReconcileMismatchWarning(t *testing.T) {
	// Stated figures add up to the gross but contradict the explicit rate.
	amounts := amount.Parse("Netto 100,00 MwSt 7,00 Gesamt 107,00")
	bd, issues := newTestEngine().Reconcile(amounts, "USt 19% Netto 100,00 MwSt 7,00 Gesamt 107,00")
	assert.Equal(t, "100.00", bd.Net.StringFixed(2))
	require.Len(t, issues, 1)
	assert.Equal(t, "steuer.brutto", issues[0].Field)
}

func TestReconcileIgnoresPostalCode(t *testing.T) {
	text := "Telekom Deutschland GmbH\n53227 Bonn\nMwSt 19%\nGesamt: 59,95 EUR"
	bd, issues := newTestEngine().Reconcile(amount.Parse(text), text)
	assert.Equal(t, "59.95", bd.Gross.StringFixed(2))
	assert.Equal(t, "50.38", bd.Net.StringFixed(2))
	assert.Equal(t, "9.57", bd.VATAmount.StringFixed(2))
	assert.Empty(t, issues)
}

func TestReconcileNoAmounts(t *testing.T) {
	bd, issues := newTestEngine().Reconcile(nil, "kein Betrag")
	assert.Nil(t, bd.Gross)
	assert.Nil(t, bd.Net)
	assert.True(t, bd.VATRate.Equal(decimal.NewFromInt(19)), "default rate applies")
	assert.Empty(t, issues)
}

func TestRegimeDetection(t *testing.T) {
	text := "Gemäß § 19 UStG wird keine Umsatzsteuer berechnet. Reverse Charge: Steuerschuldnerschaft des Leistungsempfängers."
	bd, _ := newTestEngine().Reconcile([]decimal.Decimal{decimal.NewFromInt(50)}, text)
	assert.True(t, bd.SmallBusiness)
	assert.True(t, bd.ReverseCharge)
	assert.False(t, bd.IntraEU)
	assert.False(t, bd.ThirdCountry)
	assert.True(t, bd.VATRate.IsZero())
	assert.Equal(t, "50.00", bd.Net.StringFixed(2), "exempt: net equals gross")
	assert.True(t, bd.VATAmount.IsZero())
}
