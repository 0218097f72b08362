package repositories

import (
	"blogql/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create inserts a post, assigning an id when none is set.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		seq, err := nextSeq(txn, PostSeqKey)
		if err != nil {
			return err
		}
		if post.ID == "" {
			post.ID = NewID()
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(PostKeyPrefix, seq), data)
	})
}

// GetByID retrieves a post by id
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var found *models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			if post.ID == id {
				found = &post
				return nil
			}
		}
		return ErrNotFound
	})

	if err != nil {
		return nil, err
	}
	return found, nil
}

// List retrieves all posts in insertion order
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	return r.list(func(*models.Post) bool { return true })
}

// ListByAuthor retrieves all posts authored by the given user, in
// insertion order.
func (r *BadgerPostRepository) ListByAuthor(author string) ([]*models.Post, error) {
	return r.list(func(post *models.Post) bool { return post.Author == author })
}

func (r *BadgerPostRepository) list(match func(*models.Post) bool) ([]*models.Post, error) {
	var posts []*models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			if match(&post) {
				posts = append(posts, &post)
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update replaces the stored record for the post's id.
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, err := findKey(txn, PostKeyPrefix, post.ID)
		if err != nil {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		return txn.Set(key, data)
	})
}

// Delete removes a post by id
func (r *BadgerPostRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, err := findKey(txn, PostKeyPrefix, id)
		if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}
