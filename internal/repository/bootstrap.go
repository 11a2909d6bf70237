package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/bookrental-service/internal/model"
	"github.com/Astemirdum/bookrental-service/pkg/auth"
)

// Seed loads the initial catalog and demo accounts. It runs once at
// process start, outside the request path, and is idempotent: rows are
// inserted with fixed ids and on conflict do nothing, then the serial
// sequences are bumped past the seeded range.
func (r *repository) Seed(ctx context.Context) error {
	adminHash, err := auth.HashPassword("Admin@123")
	if err != nil {
		return err
	}
	userHash, err := auth.HashPassword("User@123")
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insertUser = `
	insert into users (id, email, password_hash, first_name, last_name, role)
	values ($1, $2, $3, $4, $5, $6) on conflict (id) do nothing`

	users := []struct {
		id                       int
		email, hash, first, last string
		role                     model.Role
	}{
		{1, "admin@bookrental.com", adminHash, "Admin", "User", model.RoleAdmin},
		{2, "user@bookrental.com", userHash, "Regular", "User", model.RoleUser},
	}
	for _, u := range users {
		if _, err := tx.ExecContext(ctx, insertUser, u.id, u.email, u.hash, u.first, u.last, u.role); err != nil {
			return classify(err)
		}
	}

	const insertBook = `
	insert into books (id, title, author, description, published_date)
	values ($1, $2, $3, $4, $5) on conflict (id) do nothing`

	books := []struct {
		id                         int
		title, author, description string
		published                  time.Time
	}{
		{1, "The Great Gatsby", "F. Scott Fitzgerald",
			"A story of wealth, love, and the American Dream in the 1920s.",
			time.Date(1925, 4, 10, 0, 0, 0, 0, time.UTC)},
		{2, "To Kill a Mockingbird", "Harper Lee",
			"A powerful story of racial injustice and moral growth in the American South.",
			time.Date(1960, 7, 11, 0, 0, 0, 0, time.UTC)},
	}
	for _, b := range books {
		if _, err := tx.ExecContext(ctx, insertBook, b.id, b.title, b.author, b.description, b.published); err != nil {
			return classify(err)
		}
	}

	const insertReview = `
	insert into reviews (id, book_id, user_id, rating, review_text, review_date)
	values ($1, $2, $3, $4, $5, $6) on conflict (id) do nothing`

	reviews := []struct {
		id, bookID, userID, rating int
		text                       string
		date                       time.Time
	}{
		{1, 1, 2, 5, "A timeless classic that captures the essence of the Jazz Age.",
			time.Now().UTC().AddDate(0, 0, -10)},
		{2, 2, 2, 4, "A powerful narrative that remains relevant today.",
			time.Now().UTC().AddDate(0, 0, -5)},
	}
	for _, rv := range reviews {
		if _, err := tx.ExecContext(ctx, insertReview, rv.id, rv.bookID, rv.userID, rv.rating, rv.text, rv.date); err != nil {
			return classify(err)
		}
	}

	for _, table := range []string{usersTableName, booksTableName, reviewsTableName} {
		q := fmt.Sprintf(
			`select setval(pg_get_serial_sequence('%s', 'id'), (select coalesce(max(id), 1) from %s))`,
			table, table)
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return classify(err)
		}
	}

	return classify(tx.Commit())
}
