package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookrental-service/internal/access"
	"github.com/Astemirdum/bookrental-service/internal/errs"
	"github.com/Astemirdum/bookrental-service/internal/model"
)

// CreateRental inserts the rental row and flips the book unavailable as
// one transaction. The book row is locked first, so two concurrent rent
// calls on the same book serialize and the loser sees is_available=false.
// A partial unique index on outstanding rentals backs the same invariant
// at the storage level; its violation classifies as ErrConflict.
func (r *repository) CreateRental(ctx context.Context, bookID, userID, rentalDays int) (model.Rental, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Rental{}, classify(err)
	}
	defer tx.Rollback() //nolint:errcheck

	var available bool
	q := fmt.Sprintf(`select is_available from %s where id = $1 for update`, booksTableName)
	if err := tx.QueryRowContext(ctx, q, bookID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rental{}, errors.Wrap(errs.ErrNotFound, "book")
		}
		return model.Rental{}, classify(err)
	}
	if !available {
		return model.Rental{}, errors.Wrap(errs.ErrConflict, "book is not available for rent")
	}

	now := time.Now().UTC()
	query, args, err := qb.Insert(rentalsTableName).
		Columns("book_id", "user_id", "rental_date", "return_date").
		Values(bookID, userID, now, now.AddDate(0, 0, rentalDays)).
		Suffix("returning id, book_id, user_id, rental_date, return_date, actual_return_date").
		ToSql()
	if err != nil {
		return model.Rental{}, err
	}

	var rental model.Rental
	if err := tx.GetContext(ctx, &rental, query, args...); err != nil {
		r.log.Error("CreateRental", zap.String("q", query), zap.Any("args", args))
		return model.Rental{}, classify(err)
	}

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf(`update %s set is_available = false where id = $1`, booksTableName), bookID); err != nil {
		return model.Rental{}, classify(err)
	}

	if err := tx.Commit(); err != nil {
		return model.Rental{}, classify(err)
	}
	return rental, nil
}

// ReturnRental stamps actual_return_date and restores the book's
// availability atomically. Missing rental and foreign rental are reported
// as distinct kinds so callers may collapse them if they prefer.
func (r *repository) ReturnRental(ctx context.Context, rentalID, userID int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback() //nolint:errcheck

	var row struct {
		BookID   int          `db:"book_id"`
		UserID   int          `db:"user_id"`
		Returned sql.NullTime `db:"actual_return_date"`
	}
	q := fmt.Sprintf(`select book_id, user_id, actual_return_date from %s where id = $1 for update`, rentalsTableName)
	if err := tx.GetContext(ctx, &row, q, rentalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.Wrap(errs.ErrNotFound, "rental")
		}
		return classify(err)
	}
	if !access.CanReturnRental(userID, row.UserID) {
		return errors.Wrap(errs.ErrForbidden, "rental belongs to another user")
	}
	if row.Returned.Valid {
		return errors.Wrap(errs.ErrConflict, "book already returned")
	}

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf(`update %s set actual_return_date = now() where id = $1`, rentalsTableName), rentalID); err != nil {
		return classify(err)
	}
	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf(`update %s set is_available = true where id = $1`, booksTableName), row.BookID); err != nil {
		return classify(err)
	}

	return classify(tx.Commit())
}

func (r *repository) ListActiveRentals(ctx context.Context, userID int) ([]model.RentalView, error) {
	query, args, err := qb.Select("r.id", "r.rental_date", "r.return_date", "r.actual_return_date",
		"b.title as book_title").
		From(rentalsTableName+" r").
		Join(fmt.Sprintf("%s b on b.id = r.book_id", booksTableName)).
		Where(sq.Eq{"r.user_id": userID}).
		Where("r.actual_return_date is null").
		OrderBy("r.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rentals := make([]model.RentalView, 0)
	if err := r.db.SelectContext(ctx, &rentals, query, args...); err != nil {
		return nil, classify(err)
	}
	return rentals, nil
}
