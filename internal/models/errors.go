package models

import "errors"

// ErrNotFound возвращают репозитории, когда запись отсутствует.
var ErrNotFound = errors.New("record not found")
