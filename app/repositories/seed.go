package repositories

import (
	"blogql/app/models"

	"github.com/dgraph-io/badger/v4"
)

// Seed loads the demo dataset: three users, three posts and four comments.
// Ids are fixed so the fixture is predictable in tests and demos.
func Seed(db *badger.DB) error {
	users := NewBadgerUserRepository(db)
	posts := NewBadgerPostRepository(db)
	comments := NewBadgerCommentRepository(db)

	for _, user := range []*models.User{
		{ID: "1", Name: "Ann", Email: "a@example.com", Age: intp(12)},
		{ID: "2", Name: "Bob", Email: "b@example.com", Age: intp(10)},
		{ID: "3", Name: "Cathy", Email: "c@example.com", Age: intp(9)},
	} {
		if err := users.Create(user); err != nil {
			return err
		}
	}

	for _, post := range []*models.Post{
		{ID: "1", Title: "today is a good day", Body: "test", Published: true, Author: "1"},
		{ID: "2", Title: "yesterday is a good day", Body: "test", Published: true, Author: "1"},
		{ID: "3", Title: "tommorrow is a good day", Body: "test", Published: false, Author: "2"},
	} {
		if err := posts.Create(post); err != nil {
			return err
		}
	}

	for _, comment := range []*models.Comment{
		{ID: "1", Text: "do you believe it?", Author: "3", Post: "1"},
		{ID: "2", Text: "i do not believe it", Author: "1", Post: "2"},
		{ID: "3", Text: "you should be positive", Author: "2", Post: "3"},
		{ID: "4", Text: "trust yourself.", Author: "2", Post: "3"},
	} {
		if err := comments.Create(comment); err != nil {
			return err
		}
	}

	return nil
}

func intp(v int) *int {
	return &v
}
