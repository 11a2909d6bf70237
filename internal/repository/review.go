package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookrental-service/internal/access"
	"github.com/Astemirdum/bookrental-service/internal/errs"
	"github.com/Astemirdum/bookrental-service/internal/model"
)

func (r *repository) ListReviews(ctx context.Context, bookID int) ([]model.ReviewView, error) {
	query, args, err := qb.Select("r.id", "r.rating", "r.review_text", "r.review_date",
		"u.first_name || ' ' || u.last_name as user_name").
		From(reviewsTableName+" r").
		Join(fmt.Sprintf("%s u on u.id = r.user_id", usersTableName)).
		Where(sq.Eq{"r.book_id": bookID}).
		OrderBy("r.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	reviews := make([]model.ReviewView, 0)
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, classify(err)
	}
	return reviews, nil
}

// AverageRating is 0 for a book with no reviews, never NULL or NaN.
func (r *repository) AverageRating(ctx context.Context, bookID int) (float64, error) {
	q := fmt.Sprintf(`select coalesce(avg(rating), 0) from %s where book_id = $1`, reviewsTableName)

	var avg float64
	if err := r.db.QueryRowContext(ctx, q, bookID).Scan(&avg); err != nil {
		return 0, classify(err)
	}
	return avg, nil
}

func (r *repository) AddReview(ctx context.Context, bookID, userID int, req model.CreateReviewRequest) (model.Review, error) {
	query, args, err := qb.Insert(reviewsTableName).
		Columns("book_id", "user_id", "rating", "review_text").
		Values(bookID, userID, req.Rating, req.ReviewText).
		Suffix("returning id, book_id, user_id, rating, review_text, review_date").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	var review model.Review
	if err := r.db.GetContext(ctx, &review, query, args...); err != nil {
		// fk violation on book_id classifies as not found
		r.log.Debug("AddReview", zap.String("q", query), zap.Any("args", args))
		return model.Review{}, errors.Wrap(classify(err), "add review")
	}
	return review, nil
}

// DeleteReview checks ownership and deletes in one transaction so a
// concurrent delete cannot slip between the check and the write.
func (r *repository) DeleteReview(ctx context.Context, reviewID, userID int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback() //nolint:errcheck

	var ownerID int
	q := fmt.Sprintf(`select user_id from %s where id = $1 for update`, reviewsTableName)
	if err := tx.QueryRowContext(ctx, q, reviewID).Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.Wrap(errs.ErrNotFound, "review")
		}
		return classify(err)
	}
	if !access.CanDeleteReview(userID, ownerID) {
		return errors.Wrap(errs.ErrForbidden, "you can only delete your own reviews")
	}

	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf(`delete from %s where id = $1`, reviewsTableName), reviewID); err != nil {
		return classify(err)
	}
	return classify(tx.Commit())
}
