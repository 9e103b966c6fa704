package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	zipRegex   = regexp.MustCompile(`^[0-9]{5,6}$`)
)

// ValidateEmail checks if the email format is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidatePhone checks if the phone number format is valid
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(strings.ReplaceAll(strings.TrimSpace(phone), " ", ""))
}

// ValidateZipCode checks if the postal code format is valid
func ValidateZipCode(zip string) bool {
	return zipRegex.MatchString(strings.TrimSpace(zip))
}
