package services

import "unicode"

const MinProfilePasswordLength = 8

// ValidateProfilePassword requires at least eight characters mixing letters and digits.
func ValidateProfilePassword(password string) error {
	if password == "" {
		return &ValidationError{Field: "password", Rule: "required"}
	}
	if len([]rune(password)) < MinProfilePasswordLength {
		return &ValidationError{Field: "password", Rule: "min_length"}
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return &ValidationError{Field: "password", Rule: "letters_and_digits"}
	}
	return nil
}
