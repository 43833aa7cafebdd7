package validation

import (
	"regexp"
	"strings"
)

var (
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nationalIDPattern = regexp.MustCompile(`^(?i:GHA)-(\d{9})-(\d)$`)
	cardTokenPattern  = regexp.MustCompile(`^\d{13,19}$`)
)

const nationalIDPrefix = "GHA"

// NationalID is the parsed form of a Ghana card number.
type NationalID struct {
	Number     string
	CheckDigit string
}

// String renders the id with the canonical upper-case prefix.
func (n NationalID) String() string {
	return nationalIDPrefix + "-" + n.Number + "-" + n.CheckDigit
}

// IsEmail reports whether s has the usual local@domain.tld shape.
func IsEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// IsEmailOrPhone accepts either an email address or a phone-shaped string.
func IsEmailOrPhone(s string) bool {
	return IsEmail(s) || IsPhoneShapeValid(s)
}

// ParseNationalID extracts the numeric payload of "GHA-#########-#".
// The check digit is returned as-is; no checksum is computed.
func ParseNationalID(s string) (NationalID, bool) {
	m := nationalIDPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return NationalID{}, false
	}
	return NationalID{Number: m[1], CheckDigit: m[2]}, true
}

// IsNationalID matches "GHA-" + 9 digits + "-" + 1 digit, prefix case-insensitive.
func IsNationalID(s string) bool {
	_, ok := ParseNationalID(s)
	return ok
}

// IsAccountNumberShape is the coarse pre-filter for wallet account numbers:
// anything email- or phone-shaped, or a 13 to 19 digit card token.
func IsAccountNumberShape(s string) bool {
	return IsEmailOrPhone(s) || cardTokenPattern.MatchString(strings.TrimSpace(s))
}
