package domain

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Period conversion factors. A year is counted as 52.1429 weeks so weekly
// figures track the 365.25-day payroll convention rather than a flat 52.
var (
	MonthsPerYear       = decimal.NewFromInt(12)
	DefaultWeeksPerYear = decimal.NewFromFloat(52.1429)

	// WeeksPerMonth is the payroll convention for turning a weekly figure
	// directly into a monthly one.
	WeeksPerMonth = decimal.NewFromFloat(4.345)
)

// PeriodAmount is a money amount viewable per year, per month, or per
// week. The annual figure is canonical; the other views are derived from
// it on demand.
type PeriodAmount struct {
	annual       decimal.Decimal
	weeksPerYear decimal.Decimal
}

// Annual builds a PeriodAmount from a yearly figure.
func Annual(v decimal.Decimal) PeriodAmount {
	return PeriodAmount{annual: v, weeksPerYear: DefaultWeeksPerYear}
}

// Monthly builds a PeriodAmount from a monthly figure.
func Monthly(v decimal.Decimal) PeriodAmount {
	return PeriodAmount{annual: v.Mul(MonthsPerYear), weeksPerYear: DefaultWeeksPerYear}
}

// Weekly builds a PeriodAmount from a weekly figure.
func Weekly(v decimal.Decimal) PeriodAmount {
	return WeeklyWithFactor(v, DefaultWeeksPerYear)
}

// WeeklyWithFactor builds a PeriodAmount from a weekly figure using a
// custom weeks-per-year factor.
func WeeklyWithFactor(v, weeksPerYear decimal.Decimal) PeriodAmount {
	return PeriodAmount{annual: v.Mul(weeksPerYear), weeksPerYear: weeksPerYear}
}

// PeriodSpec selects exactly one period figure for NewPeriodAmount.
// A zero WeeksPerYear selects DefaultWeeksPerYear.
type PeriodSpec struct {
	Annual       *decimal.Decimal
	Monthly      *decimal.Decimal
	Weekly       *decimal.Decimal
	WeeksPerYear decimal.Decimal
}

// NewPeriodAmount builds a PeriodAmount from spec. Exactly one of Annual,
// Monthly, or Weekly must be set; anything else is ErrPeriodSpec.
func NewPeriodAmount(spec PeriodSpec) (PeriodAmount, error) {
	wpy := spec.WeeksPerYear
	if wpy.IsZero() {
		wpy = DefaultWeeksPerYear
	}
	set := 0
	for _, v := range []*decimal.Decimal{spec.Annual, spec.Monthly, spec.Weekly} {
		if v != nil {
			set++
		}
	}
	if set != 1 {
		return PeriodAmount{}, fmt.Errorf("%w: %d period values given", ErrPeriodSpec, set)
	}
	switch {
	case spec.Annual != nil:
		return PeriodAmount{annual: *spec.Annual, weeksPerYear: wpy}, nil
	case spec.Monthly != nil:
		return PeriodAmount{annual: spec.Monthly.Mul(MonthsPerYear), weeksPerYear: wpy}, nil
	default:
		return PeriodAmount{annual: spec.Weekly.Mul(wpy), weeksPerYear: wpy}, nil
	}
}

// Annual returns the yearly figure.
func (pa PeriodAmount) Annual() decimal.Decimal {
	return pa.annual
}

// Monthly returns the yearly figure spread across twelve months.
func (pa PeriodAmount) Monthly() decimal.Decimal {
	return pa.annual.Div(MonthsPerYear)
}

// Weekly returns the yearly figure divided by the weeks-per-year factor.
func (pa PeriodAmount) Weekly() decimal.Decimal {
	return pa.annual.Div(pa.factor())
}

// WeeksPerYear returns the factor behind the weekly view.
func (pa PeriodAmount) WeeksPerYear() decimal.Decimal {
	return pa.factor()
}

// factor tolerates zero-value PeriodAmounts, which would otherwise divide
// by zero in Weekly.
func (pa PeriodAmount) factor() decimal.Decimal {
	if pa.weeksPerYear.IsZero() {
		return DefaultWeeksPerYear
	}
	return pa.weeksPerYear
}

// Add returns the sum of the two amounts. The receiver's weeks-per-year
// factor carries over.
func (pa PeriodAmount) Add(other PeriodAmount) PeriodAmount {
	return PeriodAmount{annual: pa.annual.Add(other.annual), weeksPerYear: pa.factor()}
}

// Sub returns the receiver minus other. The receiver's weeks-per-year
// factor carries over.
func (pa PeriodAmount) Sub(other PeriodAmount) PeriodAmount {
	return PeriodAmount{annual: pa.annual.Sub(other.annual), weeksPerYear: pa.factor()}
}

// WithWeeksPerYear returns a copy using a different weeks-per-year factor.
// The annual figure is unchanged; only the weekly view moves.
func (pa PeriodAmount) WithWeeksPerYear(w decimal.Decimal) PeriodAmount {
	return PeriodAmount{annual: pa.annual, weeksPerYear: w}
}

// IsZero reports whether the annual figure is zero.
func (pa PeriodAmount) IsZero() bool {
	return pa.annual.IsZero()
}

// PeriodBreakdown is a PeriodAmount rendered for display.
type PeriodBreakdown struct {
	Annual  string `json:"annual"`
	Monthly string `json:"monthly"`
	Weekly  string `json:"weekly"`
}

// Format renders all three period views with the given currency prefix,
// two decimal places, and thousands separators.
func (pa PeriodAmount) Format(currency string) PeriodBreakdown {
	return PeriodBreakdown{
		Annual:  currency + groupDigits(pa.Annual()),
		Monthly: currency + groupDigits(pa.Monthly()),
		Weekly:  currency + groupDigits(pa.Weekly()),
	}
}

// MarshalJSON emits the three period views rounded to pence.
func (pa PeriodAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Annual  decimal.Decimal `json:"annual"`
		Monthly decimal.Decimal `json:"monthly"`
		Weekly  decimal.Decimal `json:"weekly"`
	}{
		Annual:  pa.Annual().Round(2),
		Monthly: pa.Monthly().Round(2),
		Weekly:  pa.Weekly().Round(2),
	})
}

// FormatGBP renders a bare decimal as a pound amount, e.g. "£1,234.56".
func FormatGBP(v decimal.Decimal) string {
	return "£" + groupDigits(v)
}

// groupDigits renders v to two decimal places with comma thousands
// separators. The sign stays in front of the digits: "-1,234.56".
func groupDigits(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
