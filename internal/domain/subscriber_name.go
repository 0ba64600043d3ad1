package domain

import (
	"strings"

	"github.com/rivo/uniseg"
)

// MaxSubscriberNameLength is measured in grapheme clusters.
const MaxSubscriberNameLength = 256

const forbiddenNameCharacters = `/()"<>\{}`

// SubscriberName is a display name that passed validation.
type SubscriberName struct {
	value string
}

// ParseSubscriberName validates raw and wraps it in a SubscriberName.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	switch {
	case strings.TrimSpace(raw) == "":
		return SubscriberName{}, &ValidationError{Field: "name", Value: raw, Reason: "empty"}
	case uniseg.GraphemeClusterCount(raw) > MaxSubscriberNameLength:
		return SubscriberName{}, &ValidationError{Field: "name", Value: raw, Reason: "too long"}
	case strings.ContainsAny(raw, forbiddenNameCharacters):
		return SubscriberName{}, &ValidationError{Field: "name", Value: raw, Reason: "forbidden characters"}
	}
	return SubscriberName{value: raw}, nil
}

func (n SubscriberName) String() string {
	return n.value
}
