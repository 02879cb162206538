package storage

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// PersistentStorage is a signature-tagged bank of objects, each retrievable
// by a 64-bit key whose high 32 bits are the bank's signature and whose low
// 32 bits are a monotonically increasing slot index. Safe for concurrent
// use; Store/Release take the write lock, Get/First/Next the read lock.
type PersistentStorage[T any] struct {
	signature uint32
	mu        sync.RWMutex
	objects   map[uint32]T
	slots     []uint32 // kept sorted ascending, mirrors a std::map's key order
	nextID    uint32
	log       *zerolog.Logger
}

// StorageOption configures a PersistentStorage at construction time.
type StorageOption[T any] func(*PersistentStorage[T])

// WithLogger attaches a zerolog logger for debug-level lifecycle
// breadcrumbs (object stored/released). A nil logger (the default) is
// valid and emits nothing; this never substitutes for error propagation.
func WithLogger[T any](logger *zerolog.Logger) StorageOption[T] {
	return func(s *PersistentStorage[T]) { s.log = logger }
}

// NewPersistentStorage creates an empty bank tagged with signature.
func NewPersistentStorage[T any](signature uint32, opts ...StorageOption[T]) *PersistentStorage[T] {
	s := &PersistentStorage[T]{
		signature: signature,
		objects:   make(map[uint32]T),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signature returns the bank's signature.
func (s *PersistentStorage[T]) Signature() uint32 { return s.signature }

// CheckSignature reports whether key's high 32 bits match this bank.
func (s *PersistentStorage[T]) CheckSignature(key uint64) bool {
	return checkSignature(key, s.signature)
}

func (s *PersistentStorage[T]) debug(event string, slot uint32) {
	if s.log == nil {
		return
	}
	s.log.Debug().Uint32("signature", s.signature).Uint32("slot", slot).Msg(event)
}

// Store inserts obj and returns its key. Insertion is O(log n) to keep
// slots sorted for First/Next.
func (s *PersistentStorage[T]) Store(obj T) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.nextID
	s.nextID++
	s.objects[slot] = obj
	s.insertSlot(slot)
	s.debug("object stored", slot)
	return makeKey(s.signature, slot)
}

func (s *PersistentStorage[T]) insertSlot(slot uint32) {
	i := sort.Search(len(s.slots), func(i int) bool { return s.slots[i] >= slot })
	s.slots = append(s.slots, 0)
	copy(s.slots[i+1:], s.slots[i:])
	s.slots[i] = slot
}

func (s *PersistentStorage[T]) removeSlot(slot uint32) {
	i := sort.Search(len(s.slots), func(i int) bool { return s.slots[i] >= slot })
	if i < len(s.slots) && s.slots[i] == slot {
		s.slots = append(s.slots[:i], s.slots[i+1:]...)
	}
}

// findOrError locates the slot for key, or returns the same typed errors
// the C++ source throws: BadSignatureError if the signature doesn't match,
// NotFoundError if the slot is not (or no longer) present.
func (s *PersistentStorage[T]) findOrError(key uint64) (uint32, error) {
	if !checkSignature(key, s.signature) {
		return 0, &BadSignatureError{Key: key, Actual: uint32(key >> 32), Expected: s.signature}
	}
	slot := indexOf(key)
	if _, ok := s.objects[slot]; !ok {
		return 0, &NotFoundError{Key: key, Slot: slot}
	}
	return slot, nil
}

// Get retrieves the object stored under key.
func (s *PersistentStorage[T]) Get(key uint64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero T
	slot, err := s.findOrError(key)
	if err != nil {
		return zero, err
	}
	return s.objects[slot], nil
}

// Release removes the object stored under key. A second Release of the
// same key raises NotFoundError.
func (s *PersistentStorage[T]) Release(key uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, err := s.findOrError(key)
	if err != nil {
		return err
	}
	delete(s.objects, slot)
	s.removeSlot(slot)
	s.debug("object released", slot)
	return nil
}

// First returns the slot index and object of the lowest-slot entry still
// stored, or (noSlot's sentinel value, zero, false) if the bank is empty.
func (s *PersistentStorage[T]) First() (uint32, T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero T
	if len(s.slots) == 0 {
		return noSlot, zero, false
	}
	slot := s.slots[0]
	return slot, s.objects[slot], true
}

// Next returns the slot index and object of the lowest stored entry whose
// slot is strictly greater than previous, or (noSlot's sentinel value,
// zero, false) if none remains.
func (s *PersistentStorage[T]) Next(previous uint32) (uint32, T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero T
	i := sort.Search(len(s.slots), func(i int) bool { return s.slots[i] > previous })
	if i >= len(s.slots) {
		return noSlot, zero, false
	}
	slot := s.slots[i]
	return slot, s.objects[slot], true
}

// Size returns the number of objects currently stored.
func (s *PersistentStorage[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// Empty reports whether the bank currently holds no objects.
func (s *PersistentStorage[T]) Empty() bool {
	return s.Size() == 0
}

// NoSlot is the sentinel slot index First/Next return when no element
// matches.
func NoSlot() uint32 { return noSlot }
