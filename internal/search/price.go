package search

import (
	"regexp"
	"strconv"
	"strings"
)

// pricePattern matches the first dollar-prefixed digit run, with optional
// thousands separators, e.g. "$1,234" or "$89". Cents are not part of the
// contract; "$12.50" yields 12.
var pricePattern = regexp.MustCompile(`\$([\d,]+)`)

// NormalizePrice extracts the first dollar-prefixed amount from free text and
// returns it as a float, or nil when no such pattern exists.
//
// This is a best-effort heuristic by contract: no currency conversion, no
// handling of amounts without a leading "$", and no plausibility checks
// (a stray "$3" inside unrelated text is accepted).
func NormalizePrice(text string) *float64 {
	match := pricePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	raw := strings.ReplaceAll(match[1], ",", "")
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &price
}
