package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxFractionDigits matches the default precision of locale number
// formatting in browsers.
const maxFractionDigits = 3

// NumberFormatter formats numeric values for display.
type NumberFormatter interface {
	FormatNumber(v float64) string
}

// NewNumberFormatter returns a locale-aware formatter for the given BCP 47
// tag. The empty locale uses plain comma grouping.
func NewNumberFormatter(locale string) (NumberFormatter, error) {
	if locale == "" {
		return groupingFormatter{}, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return localeFormatter{printer: message.NewPrinter(tag)}, nil
}

// groupingFormatter groups thousands with commas.
type groupingFormatter struct{}

func (groupingFormatter) FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return humanize.Comma(int64(v))
	}
	scale := math.Pow10(maxFractionDigits)
	return humanize.Commaf(math.Round(v*scale) / scale)
}

type localeFormatter struct {
	printer *message.Printer
}

func (f localeFormatter) FormatNumber(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFractionDigits)))
}

// FormatValue renders a data point value. Numbers go through f; strings
// are shown verbatim. Reports false for a missing value.
func FormatValue(f NumberFormatter, v any) (string, bool) {
	if f == nil {
		f = groupingFormatter{}
	}

	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case float64:
		return f.FormatNumber(t), true
	case float32:
		return f.FormatNumber(float64(t)), true
	case int:
		return f.FormatNumber(float64(t)), true
	case int64:
		return f.FormatNumber(float64(t)), true
	case uint64:
		return f.FormatNumber(float64(t)), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return fmt.Sprint(t), true
	}
}
