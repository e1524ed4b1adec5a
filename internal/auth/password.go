package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id cost parameters. Tuned to the OWASP 2025 guidance; changing
// them only affects new hashes, since each stored hash carries its own
// parameters in the PHC string.
const (
	argonTime    = 3         // iterations
	argonMemory  = 64 * 1024 // KiB, so 64 MiB per hash
	argonThreads = 1
	argonKeyLen  = 32 // derived key bytes
	argonSaltLen = 16 // salt bytes
)

// HashPassword derives an Argon2id hash from a plaintext password and
// encodes it as a PHC string, e.g.
//
//	$argon2id$v=19$m=65536,t=3,p=1$<salt>$<hash>
//
// The salt is random per call, so hashing the same password twice gives
// different strings.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether the plaintext password matches a stored
// PHC hash string. The comparison is constant time; the parameters used
// are the ones recorded in the hash, not the current constants.
func VerifyPassword(password, encodedHash string) (bool, error) {
	salt, key, params, err := parsePHC(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(key))) //nolint:gosec // G115: key length always fits uint32

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// phcParams holds the Argon2id cost parameters recorded in a PHC string.
type phcParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

// parsePHC splits an Argon2id PHC string into salt, derived key, and
// cost parameters. Anything that is not a well-formed argon2id string
// is rejected.
func parsePHC(encoded string) (salt, key []byte, params phcParams, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 { //nolint:mnd // a PHC string has exactly 6 $-delimited parts
		return nil, nil, params, fmt.Errorf("malformed PHC hash")
	}

	if parts[1] != "argon2id" {
		return nil, nil, params, fmt.Errorf("unsupported hash algorithm: %s", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil { //nolint:govet // shadow: err re-declared in nested scope
		return nil, nil, params, fmt.Errorf("parsing PHC version: %w", err)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil { //nolint:govet // shadow: err re-declared in nested scope
		return nil, nil, params, fmt.Errorf("parsing PHC parameters: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, fmt.Errorf("decoding salt: %w", err)
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, params, fmt.Errorf("decoding hash: %w", err)
	}

	return salt, key, params, nil
}
