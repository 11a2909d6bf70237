package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookrental-service/internal/errs"
	"github.com/Astemirdum/bookrental-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListBooks(ctx context.Context, filter, sort string) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.CreateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	ListReviews(ctx context.Context, bookID int) ([]model.ReviewView, error)
	AverageRating(ctx context.Context, bookID int) (float64, error)
	AddReview(ctx context.Context, bookID, userID int, req model.CreateReviewRequest) (model.Review, error)
	DeleteReview(ctx context.Context, reviewID, userID int) error

	CreateRental(ctx context.Context, bookID, userID, rentalDays int) (model.Rental, error)
	ReturnRental(ctx context.Context, rentalID, userID int) error
	ListActiveRentals(ctx context.Context, userID int) ([]model.RentalView, error)

	GetUser(ctx context.Context, id int) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName   = `books`
	usersTableName   = `users`
	reviewsTableName = `reviews`
	rentalsTableName = `rentals`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// classify maps storage failures onto the domain error kinds: constraint
// and serialization errors become ErrConflict/ErrNotFound, connection
// failures become the retryable ErrUnavailable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation, pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return errs.ErrConflict
		case pgerrcode.ForeignKeyViolation:
			return errs.ErrNotFound
		}
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return errs.ErrUnavailable
	}
	return err
}
