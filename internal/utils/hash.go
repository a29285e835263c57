package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(HMAC([]byte(data), []byte(hashKey)))
}

// HMAC computes a raw HMAC-SHA256 digest of data.
func HMAC(data, key []byte) []byte {
	hasher := hmac.New(sha256.New, key)
	hasher.Write(data)
	return hasher.Sum(nil)
}

// SHA256Hex returns the hex-encoded SHA-256 digest of data. API keys are
// stored in this form.
func SHA256Hex(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// SignPayload returns the value of the webhook signature header for body.
func SignPayload(body []byte, secret string) string {
	return "sha256=" + hex.EncodeToString(HMAC(body, []byte(secret)))
}

// VerifySignature reports whether signature matches body under secret.
func VerifySignature(body []byte, secret, signature string) bool {
	return hmac.Equal([]byte(SignPayload(body, secret)), []byte(signature))
}
