package security

import (
	"bytes"
	"compress/zlib"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Токен сброса пароля совместим с itsdangerous.URLSafeTimedSerializer
// (salt "password-reset-salt", key derivation django-concat, HMAC-SHA1):
//
//	<base64url(json email)>.<base64url(unix ts, big-endian)>.<base64url(hmac)>
//
// Токены, выпущенные старым сервисом с тем же секретом, остаются валидными.
// Одноразовость не проверяется: токен можно повторить, пока он не истёк.

const (
	DefaultResetMaxAge = time.Hour

	resetSalt = "password-reset-salt"
	// сжатый payload больше этого размера считаем мусором
	maxResetPayload = 4 << 10
)

func deriveResetKey(secret []byte) []byte {
	h := sha1.New()
	h.Write([]byte(resetSalt))
	h.Write([]byte("signer"))
	h.Write(secret)
	return h.Sum(nil)
}

func (s *TokenService) resetSignature(value string) string {
	mac := hmac.New(sha1.New, s.resetKey)
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// IssueReset подписывает email с текущей меткой времени. Срок жизни в
// токен не пишется - его задаёт VerifyReset через maxAge.
func (s *TokenService) IssueReset(email string) (string, error) {
	raw, err := json.Marshal(email)
	if err != nil {
		return "", fmt.Errorf("encode reset payload: %w", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(raw)
	ts := base64.RawURLEncoding.EncodeToString(intToBytes(s.now().Unix()))
	value := payload + "." + ts
	return value + "." + s.resetSignature(value), nil
}

// VerifyReset возвращает email из токена либо ErrInvalidResetToken.
// maxAge <= 0 - окно из конфигурации.
func (s *TokenService) VerifyReset(token string, maxAge time.Duration) (string, error) {
	if maxAge <= 0 {
		maxAge = s.resetMaxAge
	}

	i := strings.LastIndexByte(token, '.')
	if i <= 0 {
		return "", ErrInvalidResetToken
	}
	value, sig := token[:i], token[i+1:]
	if !hmac.Equal([]byte(sig), []byte(s.resetSignature(value))) {
		return "", ErrInvalidResetToken
	}

	j := strings.LastIndexByte(value, '.')
	if j <= 0 {
		return "", ErrInvalidResetToken
	}
	payload, tsPart := value[:j], value[j+1:]

	tsBytes, err := decodeSegment(tsPart)
	if err != nil || len(tsBytes) == 0 || len(tsBytes) > 8 {
		return "", ErrInvalidResetToken
	}
	issued := bytesToInt(tsBytes)
	age := s.now().Unix() - issued
	if age < 0 || age > int64(maxAge/time.Second) {
		return "", ErrInvalidResetToken
	}

	raw, err := decodeResetPayload(payload)
	if err != nil {
		return "", ErrInvalidResetToken
	}
	var email string
	if err := json.Unmarshal(raw, &email); err != nil || email == "" {
		return "", ErrInvalidResetToken
	}
	return email, nil
}

func decodeResetPayload(payload string) ([]byte, error) {
	compressed := strings.HasPrefix(payload, ".")
	raw, err := decodeSegment(strings.TrimPrefix(payload, "."))
	if err != nil {
		return nil, err
	}
	if !compressed {
		return raw, nil
	}
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(io.LimitReader(zr, maxResetPayload))
}

func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}

// intToBytes - минимальное big-endian представление, как int_to_bytes в itsdangerous.
func intToBytes(n int64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(n))
	b := buf[:]
	for len(b) > 1 && b[0] == 0 {
		b = b[1:]
	}
	return b
}

func bytesToInt(b []byte) int64 {
	var buf [8]byte
	copy(buf[8-len(b):], b)
	return int64(binary.BigEndian.Uint64(buf[:]))
}
