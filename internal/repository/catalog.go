package repository

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookrental-service/internal/errs"
	"github.com/Astemirdum/bookrental-service/internal/model"
)

var bookColumns = []string{"id", "title", "author", "description", "published_date", "is_available"}

func (r *repository) ListBooks(ctx context.Context, filter, sort string) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName)

	if filter != "" {
		pattern := "%" + filter + "%"
		q = q.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
			sq.ILike{"description": pattern},
		})
	}

	// any sort value other than "desc" falls back to ascending
	if strings.EqualFold(sort, "desc") {
		q = q.OrderBy("title desc")
	} else {
		q = q.OrderBy("title asc")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, classify(err)
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errors.Wrap(errs.ErrNotFound, "book")
		}
		return model.Book{}, classify(err)
	}
	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "description", "published_date").
		Values(req.Title, req.Author, req.Description, req.PublishedDate).
		Suffix("returning " + strings.Join(bookColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, classify(err)
	}
	return book, nil
}

// UpdateBook overwrites the catalog fields only; is_available belongs to
// the rental ledger and is never written through this path.
func (r *repository) UpdateBook(ctx context.Context, id int, req model.CreateBookRequest) (model.Book, error) {
	query, args, err := qb.Update(booksTableName).
		Set("title", req.Title).
		Set("author", req.Author).
		Set("description", req.Description).
		Set("published_date", req.PublishedDate).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + strings.Join(bookColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errors.Wrap(errs.ErrNotFound, "book")
		}
		return model.Book{}, classify(err)
	}
	return book, nil
}

// DeleteBook removes the book; dependent reviews and rentals go with it
// through the on delete cascade constraints, in the same statement.
func (r *repository) DeleteBook(ctx context.Context, id int) error {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return classify(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.Wrap(errs.ErrNotFound, "book")
	}
	return nil
}
