package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. 64 MiB / 1 pass / 4 lanes is the interactive
// profile from the argon2 paper; keep verify in sync with whatever was
// recorded in the digest, not with these values.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	keyLength    uint32 = 32
	saltLength          = 16

	// maxMemory bounds the m parameter accepted from a stored digest,
	// in KiB. 4 GiB is far above anything this service ever writes.
	maxMemory uint32 = 4 * 1024 * 1024
)

var (
	// ErrHash means the digest could not be derived at all.
	ErrHash = errors.New("password hashing failed")
	// ErrMalformedDigest means the stored digest is not a valid
	// argon2id string. A plain mismatch is not an error.
	ErrMalformedDigest = errors.New("malformed password digest")
)

// Hash derives a salted argon2id digest and returns it in the standard
// encoded form: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>.
func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHash, err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, argonTime, argonMemory, argonThreads, keyLength)

	digest := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return digest, nil
}

// Verify recomputes the digest for plaintext with the parameters and
// salt stored in digest and compares in constant time. A wrong password
// returns (false, nil); only an unparseable digest returns an error.
func Verify(digest, plaintext string) (bool, error) {
	salt, key, timeCost, memory, threads, err := decode(digest)
	if err != nil {
		return false, err
	}

	other := argon2.IDKey([]byte(plaintext), salt, timeCost, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func decode(digest string) (salt, key []byte, timeCost, memory uint32, threads uint8, err error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrMalformedDigest
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedDigest
	}
	// argon2.IDKey panics on zero rounds or lanes, and an oversized m
	// would allocate it up front
	if timeCost == 0 || threads == 0 || memory == 0 || memory > maxMemory {
		return nil, nil, 0, 0, 0, ErrMalformedDigest
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedDigest
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, 0, 0, 0, ErrMalformedDigest
	}

	return salt, key, timeCost, memory, threads, nil
}
