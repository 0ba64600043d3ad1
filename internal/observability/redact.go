package observability

import "strings"

// RedactEmail masks the local part of an address for logging:
// "ursula@example.com" becomes "ur***@example.com".
func RedactEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return "***"
	}
	local, domainPart := []rune(email[:at]), email[at+1:]
	if len(local) <= 2 {
		return "***@" + domainPart
	}
	return string(local[:2]) + "***@" + domainPart
}
