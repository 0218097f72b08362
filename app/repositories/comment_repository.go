package repositories

import (
	"blogql/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create inserts a comment, assigning an id when none is set.
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		seq, err := nextSeq(txn, CommentSeqKey)
		if err != nil {
			return err
		}
		if comment.ID == "" {
			comment.ID = NewID()
		}

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(CommentKeyPrefix, seq), data)
	})
}

// GetByID retrieves a comment by id
func (r *BadgerCommentRepository) GetByID(id string) (*models.Comment, error) {
	var found *models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			if comment.ID == id {
				found = &comment
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

// List retrieves all comments in insertion order
func (r *BadgerCommentRepository) List() ([]*models.Comment, error) {
	return r.list(func(*models.Comment) bool { return true })
}

// ListByAuthor retrieves all comments written by the given user, in
// insertion order.
func (r *BadgerCommentRepository) ListByAuthor(author string) ([]*models.Comment, error) {
	return r.list(func(c *models.Comment) bool { return c.Author == author })
}

// ListByPost retrieves all comments attached to the given post, in
// insertion order.
func (r *BadgerCommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	return r.list(func(c *models.Comment) bool { return c.Post == postID })
}

func (r *BadgerCommentRepository) list(match func(*models.Comment) bool) ([]*models.Comment, error) {
	var comments []*models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			if match(&comment) {
				comments = append(comments, &comment)
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Update replaces the stored record for the comment's id.
func (r *BadgerCommentRepository) Update(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, err := findKey(txn, CommentKeyPrefix, comment.ID)
		if err != nil {
			return err
		}

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}

		return txn.Set(key, data)
	})
}

// Delete removes a comment by id
func (r *BadgerCommentRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, err := findKey(txn, CommentKeyPrefix, id)
		if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// DeleteByAuthor removes every comment written by the given user. It is a
// pure removal sweep with no checks, so it cannot fail part-way through
// under normal operation.
func (r *BadgerCommentRepository) DeleteByAuthor(author string) error {
	return r.deleteMatching(func(c *models.Comment) bool { return c.Author == author })
}

// DeleteByPost removes every comment attached to the given post.
func (r *BadgerCommentRepository) DeleteByPost(postID string) error {
	return r.deleteMatching(func(c *models.Comment) bool { return c.Post == postID })
}

func (r *BadgerCommentRepository) deleteMatching(match func(*models.Comment) bool) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var keys [][]byte

		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var comment models.Comment
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				it.Close()
				return err
			}
			if match(&comment) {
				keys = append(keys, item.KeyCopy(nil))
			}
		}
		it.Close()

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
