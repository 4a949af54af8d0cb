// Package notation parses the literal textual notation of intervals: a bracket pair around two comma-separated
// bound values, where "[" and "]" mark inclusive bounds, "(" and ")" mark exclusive ones and an omitted value (or
// an explicit infinity marker) leaves that side unbounded. "[1, 5)", "(2.5,7]", "[a, f]", "(, 100]" and
// "[2000-01-01, 2000-12-31]" are all valid.
//
// Parsing is the inverse of Interval.String(): rendering a parsed interval and parsing it again yields the same
// interval.
package notation

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/intervalkit/intervals/interval"
)

// ErrInvalidNotation is returned when a literal does not follow the interval notation grammar.
var ErrInvalidNotation = errors.New("invalid interval notation")

// dateLayout is the literal form of a calendar day bound.
const dateLayout = "2006-01-02"

// dateTimeLayouts enumerates the accepted literal forms of an instant bound.
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Parse builds an Interval from its literal notation. The domain is inferred from the bound literals (integer,
// float, calendar day, instant, else character); additional factory options may pin the type or attach a step, i.e.
//
//	notation.Parse("[0, 5]", interval.WithStep(2))
func Parse(literal string, opts ...interval.Option) (result *interval.Interval, err error) {
	trimmed := strings.TrimSpace(literal)
	if len(trimmed) < 2 {
		return nil, errors.Wrapf(ErrInvalidNotation, "%q is too short", literal)
	}

	var lowerBoundType, upperBoundType interval.BoundType
	switch trimmed[0] {
	case '[':
		lowerBoundType = interval.BoundTypeClosed
	case '(':
		lowerBoundType = interval.BoundTypeOpen
	default:
		return nil, errors.Wrapf(ErrInvalidNotation, "%q does not start with a bracket", literal)
	}
	switch trimmed[len(trimmed)-1] {
	case ']':
		upperBoundType = interval.BoundTypeClosed
	case ')':
		upperBoundType = interval.BoundTypeOpen
	default:
		return nil, errors.Wrapf(ErrInvalidNotation, "%q does not end with a bracket", literal)
	}

	lowerText, upperText, found := strings.Cut(trimmed[1:len(trimmed)-1], ",")
	if !found {
		return nil, errors.Wrapf(ErrInvalidNotation, "%q contains no comma", literal)
	}

	lower, err := parseBound(strings.TrimSpace(lowerText))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid lower bound in %q", literal)
	}
	upper, err := parseBound(strings.TrimSpace(upperText))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid upper bound in %q", literal)
	}

	return interval.From(lower, upper, append([]interval.Option{interval.WithBoundTypes(lowerBoundType, upperBoundType)}, opts...)...)
}

// MustParse works like Parse but panics on malformed literals. It simplifies the declaration of interval constants.
func MustParse(literal string, opts ...interval.Option) (result *interval.Interval) {
	result, err := Parse(literal, opts...)
	if err != nil {
		panic(err)
	}

	return result
}

// parseBound maps one bound literal onto the raw value fed to the interval factory; an empty literal or an infinity
// marker yields nil (unbounded).
func parseBound(text string) (raw any, err error) {
	switch strings.ToLower(text) {
	case "", "inf", "+inf", "-inf", "infinity", "+infinity", "-infinity":
		return nil, nil
	}

	if intRaw, intErr := strconv.ParseInt(text, 10, 64); intErr == nil {
		return intRaw, nil
	}
	if floatRaw, floatErr := strconv.ParseFloat(text, 64); floatErr == nil {
		return floatRaw, nil
	}
	if dateRaw, dateErr := time.Parse(dateLayout, text); dateErr == nil {
		return dateRaw, nil
	}
	for _, layout := range dateTimeLayouts {
		if dateTimeRaw, dateTimeErr := time.Parse(layout, text); dateTimeErr == nil {
			return dateTimeRaw, nil
		}
	}

	if strings.ContainsAny(text, "[]()") {
		return nil, errors.Wrapf(ErrInvalidNotation, "%q is not a valid bound literal", text)
	}

	return text, nil
}
