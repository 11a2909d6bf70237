package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookrental-service/internal/errs"
	"github.com/Astemirdum/bookrental-service/internal/model"
	repo_mocks "github.com/Astemirdum/bookrental-service/internal/repository/mocks"
	"github.com/Astemirdum/bookrental-service/internal/service"
)

func TestService_AddReview(t *testing.T) {
	t.Parallel()

	reviewDate := time.Date(2023, 10, 21, 12, 0, 0, 0, time.UTC)

	type input struct {
		bookID, userID int
		req            model.CreateReviewRequest
	}
	tests := []struct {
		name         string
		input        input
		mockBehavior func(r *repo_mocks.MockRepository, inp input)
		want         model.ReviewView
		wantErr      error
	}{
		{
			name: "ok",
			input: input{
				bookID: 1, userID: 2,
				req: model.CreateReviewRequest{Rating: 5, ReviewText: "A timeless classic."},
			},
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().AddReview(gomock.Any(), inp.bookID, inp.userID, inp.req).
					Return(model.Review{
						ID: 3, BookID: inp.bookID, UserID: inp.userID,
						Rating: 5, ReviewText: "A timeless classic.", ReviewDate: reviewDate,
					}, nil)
				r.EXPECT().GetUser(gomock.Any(), inp.userID).
					Return(model.User{ID: inp.userID, FirstName: "Regular", LastName: "User"}, nil)
			},
			want: model.ReviewView{
				ID: 3, Rating: 5, ReviewText: "A timeless classic.",
				ReviewDate: reviewDate, UserName: "Regular User",
			},
		},
		{
			name: "rating out of range",
			input: input{
				bookID: 1, userID: 2,
				req: model.CreateReviewRequest{Rating: 6},
			},
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {},
			wantErr:      errs.ErrInvalidArgument,
		},
		{
			name: "rating below range",
			input: input{
				bookID: 1, userID: 2,
				req: model.CreateReviewRequest{Rating: 0},
			},
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {},
			wantErr:      errs.ErrInvalidArgument,
		},
		{
			name: "unknown book",
			input: input{
				bookID: 404, userID: 2,
				req: model.CreateReviewRequest{Rating: 4},
			},
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().AddReview(gomock.Any(), inp.bookID, inp.userID, inp.req).
					Return(model.Review{}, errors.Wrap(errs.ErrNotFound, "add review"))
			},
			wantErr: errs.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo, tt.input)

			svc := service.NewService(repo, nil, zap.NewExample().Named("test"))
			got, err := svc.AddReview(context.Background(), tt.input.bookID, tt.input.userID, tt.input.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_DeleteReview(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)

	repo.EXPECT().DeleteReview(gomock.Any(), 3, 9).
		Return(errors.Wrap(errs.ErrForbidden, "you can only delete your own reviews"))

	svc := service.NewService(repo, nil, zap.NewExample().Named("test"))
	err := svc.DeleteReview(context.Background(), 3, 9)
	require.ErrorIs(t, err, errs.ErrForbidden)
}
