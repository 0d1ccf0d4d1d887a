package security

import "errors"

var (
	// ErrInvalidCredentials - неверный пароль либо плохой/просроченный/битый session-токен.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidResetToken - плохой, просроченный или подделанный токен сброса пароля.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	// ErrMalformedStoredHash - запись пароля в БД повреждена.
	ErrMalformedStoredHash = errors.New("malformed stored password hash")
	// ErrUnknownScheme - префикс хеша не соответствует ни одной поддерживаемой схеме.
	ErrUnknownScheme = errors.New("unknown password hash scheme")
)
