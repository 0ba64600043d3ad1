package domain

import (
	"net/mail"
	"strings"
)

// SubscriberEmail is a syntactically valid email address.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail accepts a bare address only; display names and
// surrounding whitespace are rejected.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	invalid := &ValidationError{Field: "email", Value: raw, Reason: "malformed address"}
	if raw == "" || strings.TrimSpace(raw) != raw {
		return SubscriberEmail{}, invalid
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Name != "" || addr.Address != raw {
		return SubscriberEmail{}, invalid
	}
	at := strings.LastIndexByte(raw, '@')
	if at <= 0 || at == len(raw)-1 {
		return SubscriberEmail{}, invalid
	}
	return SubscriberEmail{value: raw}, nil
}

func (e SubscriberEmail) String() string {
	return e.value
}
