package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("not found")

const (
	EntityDatabase = "database"
	EntitySetting  = "setting"
	EntityWorkout  = "workout"
)

type OpError struct {
	Op       string
	Resource string
	Key      string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op, key string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
	}
	return &OpError{Op: op, Resource: resource, Key: key, Err: err}
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		log.Error().Err(rbErr).Msg("transaction rollback failed")
	}
	return err
}
