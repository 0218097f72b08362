package repositories

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("record not found")
)

const (
	// Key prefixes for different entity types
	UserKeyPrefix    = "user:"
	PostKeyPrefix    = "post:"
	CommentKeyPrefix = "comment:"

	// Sequence keys for insertion-order counters
	UserSeqKey    = "seq:user"
	PostSeqKey    = "seq:post"
	CommentSeqKey = "seq:comment"
)

// Open opens a fresh in-memory Badger database. Every Open call yields an
// isolated store, so tests can run against their own instance.
func Open() (*badger.DB, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	return badger.Open(opts)
}

// NewID returns a random 128-bit identifier rendered as a string. Ids are
// never reused within the store's lifetime.
func NewID() string {
	return uuid.NewString()
}

// nextSeq advances the insertion counter for a collection. The counter
// only ever grows, even when records are removed.
func nextSeq(txn *badger.Txn, seqKey string) (uint64, error) {
	var seq uint64
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		seq = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			seq = binary.BigEndian.Uint64(val)
			return nil
		})
		if err != nil {
			return 0, err
		}
		seq++
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	if err := txn.Set([]byte(seqKey), buf); err != nil {
		return 0, err
	}

	return seq, nil
}

// entityKey renders a collection key. Sequence numbers are zero padded so
// lexicographic iteration matches insertion order.
func entityKey(prefix string, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefix, seq))
}

// findKey locates the collection key holding the record with the given id.
// Ids are opaque strings, so the key cannot be derived from them; this is
// a linear scan over the collection.
func findKey(txn *badger.Txn, prefix, id string) ([]byte, error) {
	opts := badger.DefaultIteratorOptions
	it := txn.NewIterator(opts)
	defer it.Close()

	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		item := it.Item()
		var probe struct {
			ID string `json:"id"`
		}
		err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &probe)
		})
		if err != nil {
			return nil, err
		}
		if probe.ID == id {
			return item.KeyCopy(nil), nil
		}
	}
	return nil, ErrNotFound
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
