// Package parser turns a free-form expense line into candidate transactions
// and the reply shown to the user.
package parser

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var unitRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(k|lakh|lac|l|crore|cr)\b`)

// maxFractionDigits caps the fractional part considered during expansion;
// crore has seven zeros, so further digits never reach the integer result.
const maxFractionDigits = 7

var errAmountOverflow = errors.New("expanded amount overflows int64")

var unitMultipliers = map[string]int64{
	"k":     1_000,
	"lakh":  100_000,
	"lac":   100_000,
	"l":     100_000,
	"crore": 10_000_000,
	"cr":    10_000_000,
}

// NormalizeUnits lower-cases text and expands numeric shorthand such as
// "1.5k", "2 lakh" or "1.2 cr" into plain integers, truncating toward zero.
// On any failure the original text is returned unchanged.
func NormalizeUnits(text string) string {
	out, err := normalizeUnits(text)
	if err != nil {
		return text
	}
	return out
}

func normalizeUnits(text string) (string, error) {
	lower := strings.ToLower(text)

	var firstErr error
	out := unitRegex.ReplaceAllStringFunc(lower, func(match string) string {
		groups := unitRegex.FindStringSubmatch(match)
		value, err := expand(groups[1], unitMultipliers[groups[2]])
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return match
		}
		return strconv.FormatInt(value, 10)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// expand multiplies a decimal literal by mult using integer arithmetic so
// "1.15k" becomes exactly 1150.
func expand(number string, mult int64) (int64, error) {
	whole, frac, _ := strings.Cut(number, ".")

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	if w > math.MaxInt64/mult {
		return 0, errAmountOverflow
	}
	result := w * mult

	if len(frac) > maxFractionDigits {
		frac = frac[:maxFractionDigits]
	}
	if frac != "" {
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, err
		}
		scale := int64(math.Pow10(len(frac)))
		part := f * mult / scale
		if result > math.MaxInt64-part {
			return 0, errAmountOverflow
		}
		result += part
	}
	return result, nil
}
