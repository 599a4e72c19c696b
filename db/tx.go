package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Tx is a sql.Tx that runs callbacks once it is committed or rolled back
type Tx struct {
	*sql.Tx
	onRollback []func()
	onCommit   []func()
}

func NewTx(ctx context.Context, db *sql.DB) (*Tx, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx}, nil
}

func (t *Tx) AddRollbackCallback(cb func()) {
	t.onRollback = append(t.onRollback, cb)
}

func (t *Tx) AddCommitCallback(cb func()) {
	t.onCommit = append(t.onCommit, cb)
}

func (t *Tx) Commit() error {
	if err := t.Tx.Commit(); err != nil {
		return err
	}
	runCallbacks(t.onCommit)
	return nil
}

func (t *Tx) Rollback() error {
	if err := t.Tx.Rollback(); err != nil {
		return err
	}
	runCallbacks(t.onRollback)
	return nil
}

// RunInTx commits the tx if fn succeeds and rolls it back otherwise.
// A failed rollback is reported together with the error of fn
func RunInTx(ctx context.Context, db *sql.DB, fn func(tx *Tx) error) error {
	tx, err := NewTx(ctx, db)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if errRllbck := tx.Rollback(); errRllbck != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, errRllbck) //nolint:errorlint
		}
		return err
	}
	return tx.Commit()
}

func runCallbacks(cbs []func()) {
	for _, cb := range cbs {
		cb()
	}
}
