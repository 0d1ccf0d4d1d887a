package security

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReset_RoundTrip(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	tok, err := svc.IssueReset("alice@example.com")
	require.NoError(t, err)
	require.Len(t, strings.Split(tok, "."), 3)

	clock.Advance(10 * time.Second)

	email, err := svc.VerifyReset(tok, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)

	_, err = svc.VerifyReset(tok, 5*time.Second)
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestReset_ItsdangerousVector(t *testing.T) {
	t.Parallel()
	// выпущен URLSafeTimedSerializer("reset-secret").dumps(..., salt="password-reset-salt") в 1700000000
	const legacy = "ImFsaWNlQGV4YW1wbGUuY29tIg.ZVPxAA.MipKbunLwWXgO6UFh4ifHT2otKk"
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	tok, err := svc.IssueReset("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, legacy, tok)

	clock.Advance(30 * time.Minute)
	email, err := svc.VerifyReset(legacy, 0)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestReset_DefaultWindow(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	tok, err := svc.IssueReset("alice@example.com")
	require.NoError(t, err)

	clock.Advance(DefaultResetMaxAge)
	_, err = svc.VerifyReset(tok, 0)
	require.NoError(t, err, "age equal to max_age is still valid")

	clock.Advance(time.Second)
	_, err = svc.VerifyReset(tok, 0)
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestReset_Replayable(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	tok, err := svc.IssueReset("alice@example.com")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		email, err := svc.VerifyReset(tok, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", email)
	}
}

func TestReset_FutureTimestamp(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	tok, err := svc.IssueReset("alice@example.com")
	require.NoError(t, err)

	clock.Advance(-time.Minute)
	_, err = svc.VerifyReset(tok, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestReset_TamperAnyByte(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	tok, err := svc.IssueReset("alice@example.com")
	require.NoError(t, err)

	for i := 0; i < len(tok); i++ {
		b := []byte(tok)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		_, err := svc.VerifyReset(string(b), time.Hour)
		assert.ErrorIs(t, err, ErrInvalidResetToken, "byte %d", i)
	}
}

func TestReset_SeparateNamespace(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	// session-токен не принимается как токен сброса и наоборот
	session, err := svc.IssueSession(Identity{Username: "alice", UserID: 7}, time.Hour)
	require.NoError(t, err)
	_, err = svc.VerifyReset(session, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	reset, err := svc.IssueReset("alice@example.com")
	require.NoError(t, err)
	_, err = svc.ParseSession(reset)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	other, err := NewTokenService(Keys{SessionSecret: []byte("session-secret"), ResetSecret: []byte("another")}, WithClock(clock.Now))
	require.NoError(t, err)
	_, err = other.VerifyReset(reset, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestReset_ResetSecretFallsBackToSession(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	a, err := NewTokenService(Keys{SessionSecret: []byte("shared")}, WithClock(clock.Now))
	require.NoError(t, err)
	b, err := NewTokenService(Keys{SessionSecret: []byte("shared"), ResetSecret: []byte("shared")}, WithClock(clock.Now))
	require.NoError(t, err)

	tok, err := a.IssueReset("bob@example.com")
	require.NoError(t, err)
	email, err := b.VerifyReset(tok, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", email)
}

func TestReset_CompressedPayload(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write([]byte(`"carol@example.com"`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	payload := "." + base64.RawURLEncoding.EncodeToString(buf.Bytes())
	value := payload + "." + base64.RawURLEncoding.EncodeToString(intToBytes(clock.Now().Unix()))
	tok := value + "." + svc.resetSignature(value)

	email, err := svc.VerifyReset(tok, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", email)
}

func TestReset_Malformed(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	signed := func(value string) string { return value + "." + svc.resetSignature(value) }
	ts := base64.RawURLEncoding.EncodeToString(intToBytes(clock.Now().Unix()))

	for name, tok := range map[string]string{
		"empty":          "",
		"no dots":        "abc",
		"only signature": ".abc",
		"no timestamp":   signed("ImFsaWNlIg"),
		"empty ts":       signed("ImFsaWNlIg."),
		"not json":       signed(base64.RawURLEncoding.EncodeToString([]byte("alice")) + "." + ts),
		"empty email":    signed(base64.RawURLEncoding.EncodeToString([]byte(`""`)) + "." + ts),
		"bad zlib":       signed(".bm90emxpYg" + "." + ts),
	} {
		_, err := svc.VerifyReset(tok, time.Hour)
		assert.ErrorIs(t, err, ErrInvalidResetToken, name)
	}
}

func TestIntToBytes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []byte{0}, intToBytes(0))
	assert.Equal(t, []byte{0x65, 0x53, 0xf1, 0x00}, intToBytes(1_700_000_000))
	assert.Equal(t, int64(1_700_000_000), bytesToInt([]byte{0x65, 0x53, 0xf1, 0x00}))
}
