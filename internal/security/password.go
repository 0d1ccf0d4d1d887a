package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// Scheme - схема хеширования, определяемая по префиксу сохранённого хеша.
type Scheme int

const (
	SchemeUnknown Scheme = iota
	// SchemePBKDF2SHA256 - "$pbkdf2-sha256$<rounds>$<salt>$<digest>" (ab64), каноническая.
	SchemePBKDF2SHA256
	// SchemeDjangoPBKDF2SHA256 - "pbkdf2_sha256$<iterations>$<salt>$<base64 digest>".
	SchemeDjangoPBKDF2SHA256
	// SchemeBcrypt - "$2a$", "$2b$", "$2y$".
	SchemeBcrypt
)

const (
	DefaultPBKDF2Rounds = 29000

	pbkdf2Prefix       = "$pbkdf2-sha256$"
	djangoPBKDF2Prefix = "pbkdf2_sha256$"
	pbkdf2SaltLen      = 16
	pbkdf2KeyLen       = sha256.Size
	// верхняя граница, чтобы битая запись не повесила CPU
	maxPBKDF2Rounds = 5_000_000
)

func (s Scheme) String() string {
	switch s {
	case SchemePBKDF2SHA256:
		return "pbkdf2_sha256"
	case SchemeDjangoPBKDF2SHA256:
		return "django_pbkdf2_sha256"
	case SchemeBcrypt:
		return "bcrypt"
	default:
		return "unknown"
	}
}

// DetectScheme разбирает тег схемы из сохранённого хеша.
func DetectScheme(stored string) Scheme {
	switch {
	case strings.HasPrefix(stored, pbkdf2Prefix):
		return SchemePBKDF2SHA256
	case strings.HasPrefix(stored, djangoPBKDF2Prefix):
		return SchemeDjangoPBKDF2SHA256
	case strings.HasPrefix(stored, "$2a$"),
		strings.HasPrefix(stored, "$2b$"),
		strings.HasPrefix(stored, "$2y$"):
		return SchemeBcrypt
	default:
		return SchemeUnknown
	}
}

// Hasher хеширует новые пароли в канонической схеме и проверяет пароли
// во всех поддерживаемых схемах.
type Hasher struct {
	rounds int

	dummyOnce sync.Once
	dummy     string
}

func NewHasher(rounds int) *Hasher {
	if rounds <= 0 {
		rounds = DefaultPBKDF2Rounds
	}
	return &Hasher{rounds: rounds}
}

// Hash всегда выдаёт "$pbkdf2-sha256$" со свежей случайной солью.
func (h *Hasher) Hash(plain string) (string, error) {
	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	dk := pbkdf2.Key([]byte(plain), salt, h.rounds, pbkdf2KeyLen, sha256.New)
	return fmt.Sprintf("%s%d$%s$%s", pbkdf2Prefix, h.rounds, ab64Encode(salt), ab64Encode(dk)), nil
}

// Verify сравнивает пароль с сохранённым хешем по схеме из его префикса.
// Неверный пароль - (false, nil). Неизвестная схема или битая запись:
// false и ErrUnknownScheme / ErrMalformedStoredHash.
func (h *Hasher) Verify(plain, stored string) (bool, error) {
	switch DetectScheme(stored) {
	case SchemePBKDF2SHA256:
		return verifyPBKDF2(plain, stored)
	case SchemeDjangoPBKDF2SHA256:
		return verifyDjangoPBKDF2(plain, stored)
	case SchemeBcrypt:
		return verifyBcrypt(plain, stored)
	default:
		return false, ErrUnknownScheme
	}
}

// VerifyDummy тратит столько же времени, сколько Verify канонического хеша,
// и всегда возвращает false. Вызывается, когда пользователь не найден, чтобы
// по времени ответа нельзя было узнать, существует ли логин.
func (h *Hasher) VerifyDummy(plain string) bool {
	h.dummyOnce.Do(func() {
		salt := []byte("gamestore-dummy!")
		dk := pbkdf2.Key([]byte("dummy-password"), salt, h.rounds, pbkdf2KeyLen, sha256.New)
		h.dummy = fmt.Sprintf("%s%d$%s$%s", pbkdf2Prefix, h.rounds, ab64Encode(salt), ab64Encode(dk))
	})
	_, _ = verifyPBKDF2(plain, h.dummy)
	return false
}

// NeedsRehash сообщает, что запись стоит перезаписать в канонической схеме:
// legacy-схема или меньше раундов, чем сейчас настроено.
func (h *Hasher) NeedsRehash(stored string) bool {
	if DetectScheme(stored) != SchemePBKDF2SHA256 {
		return true
	}
	rounds, _, _, err := parsePBKDF2(stored)
	if err != nil {
		return true
	}
	return rounds < h.rounds
}

func verifyPBKDF2(plain, stored string) (bool, error) {
	rounds, salt, digest, err := parsePBKDF2(stored)
	if err != nil {
		return false, err
	}
	dk := pbkdf2.Key([]byte(plain), salt, rounds, len(digest), sha256.New)
	return subtle.ConstantTimeCompare(dk, digest) == 1, nil
}

func parsePBKDF2(stored string) (int, []byte, []byte, error) {
	parts := strings.Split(strings.TrimPrefix(stored, pbkdf2Prefix), "$")
	if len(parts) != 3 {
		return 0, nil, nil, ErrMalformedStoredHash
	}
	rounds, err := parseRounds(parts[0])
	if err != nil {
		return 0, nil, nil, err
	}
	salt, err := ab64Decode(parts[1])
	if err != nil {
		return 0, nil, nil, ErrMalformedStoredHash
	}
	digest, err := ab64Decode(parts[2])
	if err != nil || len(digest) != pbkdf2KeyLen {
		return 0, nil, nil, ErrMalformedStoredHash
	}
	return rounds, salt, digest, nil
}

func verifyDjangoPBKDF2(plain, stored string) (bool, error) {
	parts := strings.Split(strings.TrimPrefix(stored, djangoPBKDF2Prefix), "$")
	if len(parts) != 3 || parts[1] == "" {
		return false, ErrMalformedStoredHash
	}
	iterations, err := parseRounds(parts[0])
	if err != nil {
		return false, err
	}
	digest, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil || len(digest) != pbkdf2KeyLen {
		return false, ErrMalformedStoredHash
	}
	// Django использует соль как есть, без декодирования
	dk := pbkdf2.Key([]byte(plain), []byte(parts[1]), iterations, pbkdf2KeyLen, sha256.New)
	return subtle.ConstantTimeCompare(dk, digest) == 1, nil
}

func verifyBcrypt(plain, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return false, nil
	default:
		return false, ErrMalformedStoredHash
	}
}

func parseRounds(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxPBKDF2Rounds {
		return 0, ErrMalformedStoredHash
	}
	return n, nil
}

// ab64 - base64 без паддинга, где '+' заменён на '.'.
func ab64Encode(b []byte) string {
	return strings.ReplaceAll(base64.RawStdEncoding.EncodeToString(b), "+", ".")
}

func ab64Decode(s string) ([]byte, error) {
	s = strings.TrimRight(strings.ReplaceAll(s, ".", "+"), "=")
	return base64.RawStdEncoding.DecodeString(s)
}
