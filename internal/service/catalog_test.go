package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookrental-service/internal/errs"
	"github.com/Astemirdum/bookrental-service/internal/model"
	repo_mocks "github.com/Astemirdum/bookrental-service/internal/repository/mocks"
	"github.com/Astemirdum/bookrental-service/internal/service"
)

func TestService_GetBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		id           int
		mockBehavior func(r *repo_mocks.MockRepository)
		want         model.BookDetail
		wantErr      error
	}{
		{
			name: "average of [5,3] is 4.0",
			id:   1,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), 1).
					Return(model.Book{ID: 1, Title: "The Great Gatsby", IsAvailable: true}, nil)
				r.EXPECT().AverageRating(gomock.Any(), 1).Return(4.0, nil)
			},
			want: model.BookDetail{
				Book:          model.Book{ID: 1, Title: "The Great Gatsby", IsAvailable: true},
				AverageRating: 4.0,
			},
		},
		{
			name: "no reviews yields 0, not NaN",
			id:   2,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), 2).
					Return(model.Book{ID: 2, Title: "To Kill a Mockingbird", IsAvailable: true}, nil)
				r.EXPECT().AverageRating(gomock.Any(), 2).Return(0.0, nil)
			},
			want: model.BookDetail{
				Book:          model.Book{ID: 2, Title: "To Kill a Mockingbird", IsAvailable: true},
				AverageRating: 0,
			},
		},
		{
			name: "missing book",
			id:   404,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), 404).
					Return(model.Book{}, errs.ErrNotFound)
				r.EXPECT().AverageRating(gomock.Any(), 404).Return(0.0, nil).AnyTimes()
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
			tt.mockBehavior(repo)

			svc := service.NewService(repo, nil, zap.NewExample().Named("test"))
			got, err := svc.GetBook(context.Background(), tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ListBooks(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)

	gatsby := []model.Book{{ID: 1, Title: "The Great Gatsby", IsAvailable: true}}
	repo.EXPECT().ListBooks(gomock.Any(), "gatsby", "").Return(gatsby, nil)

	svc := service.NewService(repo, nil, zap.NewExample().Named("test"))
	got, err := svc.ListBooks(context.Background(), "gatsby", "")
	require.NoError(t, err)
	require.Equal(t, gatsby, got)
}

func TestService_CatalogMutationGuard(t *testing.T) {
	t.Parallel()

	req := model.CreateBookRequest{Title: "1984", Author: "George Orwell"}

	t.Run("create denied for non-admin", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		// repo must not be touched when the guard denies

		svc := service.NewService(repo, nil, zap.NewExample().Named("test"))
		_, err := svc.CreateBook(context.Background(), req, model.RoleUser)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("create allowed for admin", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().CreateBook(gomock.Any(), req).
			Return(model.Book{ID: 3, Title: "1984", Author: "George Orwell", IsAvailable: true}, nil)

		svc := service.NewService(repo, nil, zap.NewExample().Named("test"))
		book, err := svc.CreateBook(context.Background(), req, model.RoleAdmin)
		require.NoError(t, err)
		require.True(t, book.IsAvailable)
	})

	t.Run("update denied for non-admin", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)

		svc := service.NewService(repo, nil, zap.NewExample().Named("test"))
		_, err := svc.UpdateBook(context.Background(), 1, req, model.RoleUser)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("delete denied for non-admin", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)

		svc := service.NewService(repo, nil, zap.NewExample().Named("test"))
		err := svc.DeleteBook(context.Background(), 1, model.RoleUser)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("delete allowed for admin", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().DeleteBook(gomock.Any(), 1).Return(nil)

		svc := service.NewService(repo, nil, zap.NewExample().Named("test"))
		require.NoError(t, svc.DeleteBook(context.Background(), 1, model.RoleAdmin))
	})
}
