// Package crypto implements the credential hashing used by the
// authentication flow. Passwords are hashed with argon2id and encoded in the
// standard PHC string format so parameters can evolve without invalidating
// stored hashes.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// PasswordHasher derives and verifies one-way password hashes.
type PasswordHasher interface {
	// Hash derives a salted argon2id hash of password and returns it in
	// PHC string form. The result never equals the plaintext.
	Hash(password string) (string, error)

	// Verify reports whether password matches the given encoded hash.
	// The comparison is constant-time.
	Verify(password, encodedHash string) (bool, error)
}

// ErrMalformedHash is returned by Verify when the stored hash cannot be
// parsed as an argon2id PHC string.
var ErrMalformedHash = errors.New("malformed password hash")

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		saltLen:      16,
	}
}

// Hash implements [PasswordHasher]. It reads a fresh random salt from the OS
// CSPRNG, derives the argon2id key, and encodes both with the parameters in
// PHC form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func (p *passwordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	salt := make([]byte, p.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.argonTime, p.argonMemory, p.argonThreads, p.argonKeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.argonMemory,
		p.argonTime,
		p.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// Verify implements [PasswordHasher]. The stored parameters are decoded from
// the PHC string, the candidate password is re-derived with them, and the two
// digests are compared in constant time.
func (p *passwordHasher) Verify(password, encodedHash string) (bool, error) {
	memory, time, threads, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, computed) == 1, nil
}

// decodeHash splits a PHC-encoded argon2id hash into its parameters, salt,
// and digest.
func decodeHash(encodedHash string) (memory, time uint32, threads uint8, salt, hash []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrMalformedHash, version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	return memory, time, threads, salt, hash, nil
}
