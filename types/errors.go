package types

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousLog is returned when several logs match a proof request that has no position/index
	ErrAmbiguousLog = errors.New("several logs match the request, a log position must be provided")
	// ErrIndexOutOfRange is returned when a proof is requested for a leaf that doesn't exist
	ErrIndexOutOfRange = errors.New("log index out of range")
	// ErrBatchEmpty is returned when a proof is requested on a batch without logs
	ErrBatchEmpty = errors.New("batch has no L2->L1 logs")
	// ErrGasOverflow is returned when the gas/fee arithmetic overflows
	ErrGasOverflow = errors.New("gas overflow while applying fee overhead")
	// ErrUnavailable is returned when a collaborator (storage, simulator, L1) can't be reached.
	// Requests failing with it can be retried by the caller
	ErrUnavailable = errors.New("service temporarily unavailable")
)

// ExecutionRevertedError is returned when a transaction can't succeed even with the maximum gas limit
type ExecutionRevertedError struct {
	Reason string
}

func (e *ExecutionRevertedError) Error() string {
	if e.Reason == "" {
		return "execution reverted"
	}
	return fmt.Sprintf("execution reverted: %s", e.Reason)
}

// NewExecutionRevertedError creates a new ExecutionRevertedError
func NewExecutionRevertedError(reason string) *ExecutionRevertedError {
	return &ExecutionRevertedError{Reason: reason}
}
