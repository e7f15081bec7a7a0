package repository

import (
	"errors"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/apperr"

	"gorm.io/gorm"
)

// wrapErr translates GORM errors into the core error kinds. Anything not
// recognized is treated as a transient storage failure. Relies on
// gorm.Config{TranslateError: true} so unique violations surface as
// gorm.ErrDuplicatedKey on both Postgres and SQLite.
func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.ErrDuplicateKey
	default:
		return apperr.Storage(err)
	}
}
