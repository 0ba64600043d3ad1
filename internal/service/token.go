package service

import "crypto/rand"

// SubscriptionTokenLength is the number of characters in a confirmation token.
const SubscriptionTokenLength = 25

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Bytes at or above this value are rejected so every character is equally likely.
const tokenByteLimit = 256 - 256%len(tokenAlphabet)

// TokenGenerator produces confirmation tokens.
type TokenGenerator interface {
	Generate() string
}

type randomTokenGenerator struct{}

// NewRandomTokenGenerator returns a generator backed by crypto/rand.
func NewRandomTokenGenerator() TokenGenerator {
	return randomTokenGenerator{}
}

// Generate returns a case-sensitive alphanumeric token.
func (randomTokenGenerator) Generate() string {
	token := make([]byte, 0, SubscriptionTokenLength)
	buf := make([]byte, SubscriptionTokenLength*2)
	for len(token) < SubscriptionTokenLength {
		// crypto/rand.Read never returns an error since Go 1.24.
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= tokenByteLimit {
				continue
			}
			token = append(token, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(token) == SubscriptionTokenLength {
				break
			}
		}
	}
	return string(token)
}
