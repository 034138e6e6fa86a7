package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword produces the argon2id hash stored on the customer row at
// signup. The plaintext is never persisted or echoed back to clients.
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()
	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks a sign-in attempt against the stored hash. A
// mismatch returns false with a nil error; errors mean the hash itself
// could not be parsed.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
