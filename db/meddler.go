package db

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/russross/meddler"
)

// init registers the tags used to store hex encoded values as text columns
func init() {
	meddler.Default = meddler.SQLite
	meddler.Register("hash", hexMeddler[common.Hash]{parse: common.HexToHash})
	meddler.Register("address", hexMeddler[common.Address]{parse: common.HexToAddress})
}

func SQLiteErr(err error) (*sqlite.Error, bool) {
	sqliteErr := &sqlite.Error{}
	if ok := errors.As(err, sqliteErr); ok {
		return sqliteErr, true
	}
	if driverErr, ok := meddler.DriverErr(err); ok {
		return sqliteErr, errors.As(driverErr, sqliteErr)
	}
	return sqliteErr, false
}

// IsUniqueViolation reports whether err is a primary key or unique constraint failure
func IsUniqueViolation(err error) bool {
	sqliteErr, ok := SQLiteErr(err)
	return ok && (int(sqliteErr.ExtendedCode) == UniqueConstrain ||
		sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique)
}

type hexer interface {
	Hex() string
}

// hexMeddler stores a value as its 0x prefixed hex string
type hexMeddler[T hexer] struct {
	parse func(string) T
}

func (m hexMeddler[T]) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

func (m hexMeddler[T]) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*string)
	if !ok || ptr == nil {
		return fmt.Errorf("scanTarget is not a non nil *string: %T", scanTarget)
	}
	field, ok := fieldPtr.(*T)
	if !ok {
		var zero T
		return fmt.Errorf("fieldPtr is %T, expected *%T", fieldPtr, zero)
	}
	*field = m.parse(*ptr)
	return nil
}

func (m hexMeddler[T]) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(T)
	if !ok {
		var zero T
		return nil, fmt.Errorf("field is %T, expected %T", fieldPtr, zero)
	}
	return field.Hex(), nil
}
