package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PasswordStrength is the bucket a password score falls into.
type PasswordStrength string

const (
	PasswordWeak   PasswordStrength = "weak"
	PasswordMedium PasswordStrength = "medium"
	PasswordStrong PasswordStrength = "strong"
)

const (
	passwordSymbols      = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"
	minPasswordLength    = 6
	minAcceptedPassScore = 3
	maxPasswordStrength  = 5
)

// PasswordStrengthScore awards one point each for a lowercase letter, an
// uppercase letter, a digit, a symbol and a length of at least 6.
func PasswordStrengthScore(s string) int {
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}

	score := 0
	for _, ok := range []bool{lower, upper, digit, symbol, utf8.RuneCountInString(s) >= minPasswordLength} {
		if ok {
			score++
		}
	}
	return score
}

// PasswordStrengthLevel buckets the score: below 3 is weak, 5 is strong.
func PasswordStrengthLevel(s string) PasswordStrength {
	switch score := PasswordStrengthScore(s); {
	case score >= maxPasswordStrength:
		return PasswordStrong
	case score >= minAcceptedPassScore:
		return PasswordMedium
	default:
		return PasswordWeak
	}
}

// IsStrongPassword accepts medium and strong passwords.
func IsStrongPassword(s string) bool {
	return PasswordStrengthScore(s) >= minAcceptedPassScore
}
