package repositories

import (
	"testing"

	"blogql/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNextSeq(t *testing.T) {
	db := newTestDB(t)

	t.Run("first sequence number", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			seq, err := nextSeq(txn, PostSeqKey)
			assert.NoError(t, err)
			assert.Equal(t, uint64(1), seq)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("sequential numbers", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			for i := uint64(2); i <= 5; i++ {
				seq, err := nextSeq(txn, PostSeqKey)
				assert.NoError(t, err)
				assert.Equal(t, i, seq)
			}
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("independent per collection", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			_, err := nextSeq(txn, PostSeqKey)
			assert.NoError(t, err)

			seq, err := nextSeq(txn, CommentSeqKey)
			assert.NoError(t, err)
			assert.Equal(t, uint64(1), seq, "comment sequence should start from 1")
			return nil
		})
		assert.NoError(t, err)
	})
}

func TestEntityKeyOrdering(t *testing.T) {
	// Zero padding keeps lexicographic key order equal to numeric order,
	// which is what makes List return records in insertion order.
	prev := entityKey(PostKeyPrefix, 1)
	for _, seq := range []uint64{2, 9, 10, 11, 99, 100, 1000000} {
		key := entityKey(PostKeyPrefix, seq)
		assert.Less(t, string(prev), string(key))
		prev = key
	}
}

func TestOpenIsolation(t *testing.T) {
	first := newTestDB(t)
	second := newTestDB(t)

	users := NewBadgerUserRepository(first)
	require.NoError(t, users.Create(&models.User{Name: "Ann", Email: "a@example.com"}))

	othersUsers, err := NewBadgerUserRepository(second).List()
	require.NoError(t, err)
	assert.Empty(t, othersUsers, "stores opened separately must not share state")
}

func TestNewID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "ids must be unique")
		seen[id] = true
	}
}
