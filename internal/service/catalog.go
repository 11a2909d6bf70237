package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/bookrental-service/internal/access"
	"github.com/Astemirdum/bookrental-service/internal/errs"
	"github.com/Astemirdum/bookrental-service/internal/model"
)

func (s *Service) ListBooks(ctx context.Context, filter, sort string) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, filter, sort)
}

// GetBook joins the catalog record with its average rating.
func (s *Service) GetBook(ctx context.Context, id int) (model.BookDetail, error) {
	var (
		book model.Book
		avg  float64
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		book, err = s.repo.GetBook(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		avg, err = s.repo.AverageRating(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.BookDetail{}, err
	}
	return model.BookDetail{Book: book, AverageRating: avg}, nil
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest, role model.Role) (model.Book, error) {
	if !access.CanManageCatalog(role) {
		return model.Book{}, errors.Wrap(errs.ErrForbidden, "admin role required")
	}
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) UpdateBook(ctx context.Context, id int, req model.CreateBookRequest, role model.Role) (model.Book, error) {
	if !access.CanManageCatalog(role) {
		return model.Book{}, errors.Wrap(errs.ErrForbidden, "admin role required")
	}
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Service) DeleteBook(ctx context.Context, id int, role model.Role) error {
	if !access.CanManageCatalog(role) {
		return errors.Wrap(errs.ErrForbidden, "admin role required")
	}
	return s.repo.DeleteBook(ctx, id)
}
