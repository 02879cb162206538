package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPersistentStorage_Lifecycle is scenario 6: store two objects,
// release the first, confirm NotFound on repeat access/release, and
// confirm First/Next traverse remaining slots in order.
func TestPersistentStorage_Lifecycle(t *testing.T) {
	sig := MakeSignature([4]byte{'s', 't', 'r', 'b'})
	bank := NewPersistentStorage[string](sig)

	k1 := bank.Store("hello")
	k2 := bank.Store("world")
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, sig, uint32(k1>>32))
	assert.Equal(t, sig, uint32(k2>>32))

	got, err := bank.Get(k1)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	require.NoError(t, bank.Release(k1))

	_, err = bank.Get(k1)
	require.Error(t, err)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.True(t, errors.Is(err, ErrPersistentObject))

	err = bank.Release(k1)
	require.Error(t, err)
	require.True(t, errors.As(err, &nf))

	got, err = bank.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, "world", got)

	slot, obj, ok := bank.First()
	require.True(t, ok)
	assert.Equal(t, uint32(1), slot)
	assert.Equal(t, "world", obj)

	_, _, ok = bank.Next(slot)
	assert.False(t, ok)
}

func TestPersistentStorage_BadSignature(t *testing.T) {
	bank := NewPersistentStorage[int](MakeSignature([4]byte{'a', 'b', 'c', 'd'}))
	key := bank.Store(42)

	wrongSig := MakeSignature([4]byte{'z', 'z', 'z', 'z'})
	wrongSigKey := (key &^ (uint64(0xFFFFFFFF) << 32)) | (uint64(wrongSig) << 32)
	_, err := bank.Get(wrongSigKey)
	require.Error(t, err)
	var bs *BadSignatureError
	require.True(t, errors.As(err, &bs))
}

func TestPersistentStorage_EmptyBankFirstIsSentinel(t *testing.T) {
	bank := NewPersistentStorage[int](MakeSignature([4]byte{'x', 'x', 'x', 'x'}))
	slot, _, ok := bank.First()
	assert.False(t, ok)
	assert.Equal(t, NoSlot(), slot)
}

func TestPersistentStorageMonoid_CreateIfEmptyBuildsOnce(t *testing.T) {
	monoid := NewPersistentStorageMonoid[int](MakeSignature([4]byte{'m', 'n', 'o', 'd'}), nil)
	assert.True(t, monoid.Empty())

	calls := 0
	build := func() int {
		calls++
		return 7
	}

	first := monoid.CreateIfEmpty(build)
	second := monoid.CreateIfEmpty(build)
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 7, *first)
}

func TestPersistentStorageMonoid_SetReplaces(t *testing.T) {
	monoid := NewPersistentStorageMonoid[string](MakeSignature([4]byte{'m', 'n', 'o', 'd'}), nil)
	a := "a"
	monoid.Set(&a)
	assert.Equal(t, "a", *monoid.Get())

	b := "b"
	monoid.Set(&b)
	assert.Equal(t, "b", *monoid.Get())
}
