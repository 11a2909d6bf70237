package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/bookrental-service/internal/errs"
	"github.com/Astemirdum/bookrental-service/internal/model"
)

func (s *Service) ListRentals(ctx context.Context, userID int) ([]model.RentalView, error) {
	return s.repo.ListActiveRentals(ctx, userID)
}

// RentBook creates the rental (the repository flips availability in the
// same transaction) and composes the receipt from the book title and the
// renter's identifier.
func (s *Service) RentBook(ctx context.Context, bookID, userID, rentalDays int) (model.RentalReceipt, error) {
	if rentalDays < 1 {
		return model.RentalReceipt{}, errors.Wrap(errs.ErrInvalidArgument, "rentalDays must be positive")
	}

	rental, err := s.repo.CreateRental(ctx, bookID, userID, rentalDays)
	if err != nil {
		return model.RentalReceipt{}, err
	}

	var (
		book model.Book
		user model.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		book, err = s.repo.GetBook(gctx, bookID)
		return err
	})
	g.Go(func() error {
		var err error
		user, err = s.repo.GetUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.RentalReceipt{}, err
	}

	s.publishRentalEvent(ctx, EventRented, rental)

	return model.RentalReceipt{
		ID:         rental.ID,
		RentalDate: rental.RentalDate,
		ReturnDate: rental.ReturnDate,
		BookTitle:  book.Title,
		UserName:   user.Email,
	}, nil
}

func (s *Service) ReturnBook(ctx context.Context, rentalID, userID int) error {
	if err := s.repo.ReturnRental(ctx, rentalID, userID); err != nil {
		return err
	}
	s.publishRentalEvent(ctx, EventReturned, model.Rental{ID: rentalID, UserID: userID})
	return nil
}
