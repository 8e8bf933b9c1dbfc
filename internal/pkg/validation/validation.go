package validation

import (
	"regexp"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Username: letters, digits, underscores and hyphens, 3-50 chars.
var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]{3,50}$`)

// Symbol: uppercase ticker, optionally with a class suffix (BRK.B).
var symbolRe = regexp.MustCompile(`^[A-Z]{1,10}(\.[A-Z]{1,2})?$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func IsValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}

func IsValidSymbol(symbol string) bool {
	return symbolRe.MatchString(symbol)
}

// IsValidPassword requires:
// - at least 8 characters
// - contains at least one letter
// - contains at least one number
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
