package domain

import "fmt"

// maxEchoedInputRunes bounds how much of the rejected input is quoted back.
const maxEchoedInputRunes = 64

// ValidationError reports raw input that failed to parse into a domain value.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%q is not a valid subscriber %s.", truncateInput(e.Value), e.Field)
}

func truncateInput(s string) string {
	runes := []rune(s)
	if len(runes) <= maxEchoedInputRunes {
		return s
	}
	return string(runes[:maxEchoedInputRunes]) + "..."
}
