package storage

import (
	"errors"
	"fmt"
)

// ErrPersistentObject is the sentinel category every storage error wraps,
// for callers that only want to test "is this a storage error" via
// errors.Is without inspecting the concrete type.
var ErrPersistentObject = errors.New("storage: persistent object error")

// BadSignatureError reports that a key's high 32 bits do not match the
// bank it was presented to.
type BadSignatureError struct {
	Key      uint64
	Actual   uint32
	Expected uint32
}

func (e *BadSignatureError) Error() string {
	return fmt.Sprintf("storage: key %#x has signature %#x, bank expects %#x", e.Key, e.Actual, e.Expected)
}

// Unwrap reports BadSignatureError as an ErrPersistentObject to errors.Is.
func (e *BadSignatureError) Unwrap() error { return ErrPersistentObject }

// NotFoundError reports that a key's signature matched but no object with
// its slot index is currently stored.
type NotFoundError struct {
	Key  uint64
	Slot uint32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("storage: no object at slot %d of key %#x", e.Slot, e.Key)
}

// Unwrap reports NotFoundError as an ErrPersistentObject to errors.Is.
func (e *NotFoundError) Unwrap() error { return ErrPersistentObject }
