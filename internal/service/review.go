package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/bookrental-service/internal/errs"
	"github.com/Astemirdum/bookrental-service/internal/model"
)

func (s *Service) ListReviews(ctx context.Context, bookID int) ([]model.ReviewView, error) {
	return s.repo.ListReviews(ctx, bookID)
}

func (s *Service) AddReview(ctx context.Context, bookID, userID int, req model.CreateReviewRequest) (model.ReviewView, error) {
	// the binding layer validates this too; the core must not rely on it
	if req.Rating < 1 || req.Rating > 5 {
		return model.ReviewView{}, errors.Wrap(errs.ErrInvalidArgument, "rating must be between 1 and 5")
	}

	review, err := s.repo.AddReview(ctx, bookID, userID, req)
	if err != nil {
		return model.ReviewView{}, err
	}
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.ReviewView{}, err
	}

	return model.ReviewView{
		ID:         review.ID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		ReviewDate: review.ReviewDate,
		UserName:   user.FirstName + " " + user.LastName,
	}, nil
}

func (s *Service) DeleteReview(ctx context.Context, reviewID, userID int) error {
	return s.repo.DeleteReview(ctx, reviewID, userID)
}
