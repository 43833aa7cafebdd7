package validation

import (
	"regexp"
	"strings"
)

// Operator is the mobile network a phone number belongs to.
type Operator string

const (
	OperatorMTN        Operator = "MTN"
	OperatorVodafone   Operator = "Vodafone"
	OperatorAirtelTigo Operator = "AirtelTigo"
	OperatorOther      Operator = "Other Operator"
	OperatorInvalid    Operator = "Invalid Number"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

var (
	phoneShapePattern  = regexp.MustCompile(`^\+?(?:\d{1,4}[\s.-]?)?(?:\(\d{1,4}\)|\d{1,4})(?:[\s.-]?\d{1,4}){1,4}$`)
	strictPhonePattern = regexp.MustCompile(`^\+?\d{9,15}$`)
	phoneSeparators    = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

// Operator prefix pairs are disjoint, and the three prefix forms (none, "0",
// "233") give different lengths, so at most one pattern matches any input.
var operatorPatterns = []struct {
	operator Operator
	pattern  *regexp.Regexp
}{
	{OperatorMTN, regexp.MustCompile(`^(?:\+?233|0)?(?:24|25|53|54|55|59)\d{7}$`)},
	{OperatorVodafone, regexp.MustCompile(`^(?:\+?233|0)?(?:20|50)\d{7}$`)},
	{OperatorAirtelTigo, regexp.MustCompile(`^(?:\+?233|0)?(?:26|27|56|57)\d{7}$`)},
}

// IsPhoneShapeValid reports whether s looks like a phone number: an optional
// "+" and country code, optional separators, and 7 to 15 digits in total.
func IsPhoneShapeValid(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || !phoneShapePattern.MatchString(s) {
		return false
	}
	digits := countDigits(s)
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

// IsStrictPhone is the phone-only check used for mobile money numbers:
// an optional "+" followed by 9 to 15 digits and nothing else.
func IsStrictPhone(s string) bool {
	return strictPhonePattern.MatchString(s)
}

// ClassifyPhone maps a phone number to its operator. It never fails: blank or
// malformed input is OperatorInvalid and unknown prefixes are OperatorOther.
func ClassifyPhone(s string) Operator {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return OperatorInvalid
	}

	normalized := phoneSeparators.Replace(trimmed)
	for _, op := range operatorPatterns {
		if op.pattern.MatchString(normalized) {
			return op.operator
		}
	}

	if IsPhoneShapeValid(trimmed) {
		return OperatorOther
	}
	return OperatorInvalid
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
