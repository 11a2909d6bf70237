package handler

import (
	"context"

	"github.com/Astemirdum/bookrental-service/internal/identity"
	"github.com/Astemirdum/bookrental-service/internal/model"
	"github.com/Astemirdum/bookrental-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookRentalService interface {
	ListBooks(ctx context.Context, filter, sort string) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.BookDetail, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest, role model.Role) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.CreateBookRequest, role model.Role) (model.Book, error)
	DeleteBook(ctx context.Context, id int, role model.Role) error

	ListReviews(ctx context.Context, bookID int) ([]model.ReviewView, error)
	AddReview(ctx context.Context, bookID, userID int, req model.CreateReviewRequest) (model.ReviewView, error)
	DeleteReview(ctx context.Context, reviewID, userID int) error

	ListRentals(ctx context.Context, userID int) ([]model.RentalView, error)
	RentBook(ctx context.Context, bookID, userID, rentalDays int) (model.RentalReceipt, error)
	ReturnBook(ctx context.Context, rentalID, userID int) error
}

type IdentityService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (string, error)
}

var (
	_ BookRentalService = (*service.Service)(nil)
	_ IdentityService   = (*identity.Service)(nil)
)
