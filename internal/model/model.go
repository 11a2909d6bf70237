package model

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// Book availability is toggled only by the rental ledger (rent/return);
// catalog updates never touch IsAvailable.
type Book struct {
	ID            int       `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Author        string    `json:"author" db:"author"`
	Description   string    `json:"description" db:"description"`
	PublishedDate time.Time `json:"publishedDate" db:"published_date"`
	IsAvailable   bool      `json:"isAvailable" db:"is_available"`
}

type BookDetail struct {
	Book
	AverageRating float64 `json:"averageRating"`
}

type CreateBookRequest struct {
	Title         string    `json:"title" validate:"required"`
	Author        string    `json:"author" validate:"required"`
	Description   string    `json:"description"`
	PublishedDate time.Time `json:"publishedDate"`
}

type User struct {
	ID           int    `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
	Role         Role   `json:"role" db:"role"`
}

type Review struct {
	ID         int       `json:"id" db:"id"`
	BookID     int       `json:"bookId" db:"book_id"`
	UserID     int       `json:"userId" db:"user_id"`
	Rating     int       `json:"rating" db:"rating"`
	ReviewText string    `json:"reviewText" db:"review_text"`
	ReviewDate time.Time `json:"reviewDate" db:"review_date"`
}

// ReviewView carries the reviewer's display name resolved at read time.
type ReviewView struct {
	ID         int       `json:"id" db:"id"`
	Rating     int       `json:"rating" db:"rating"`
	ReviewText string    `json:"reviewText" db:"review_text"`
	ReviewDate time.Time `json:"reviewDate" db:"review_date"`
	UserName   string    `json:"userName" db:"user_name"`
}

type CreateReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"reviewText"`
}

// Rental is append-only audit data: its only mutation is setting
// ActualReturnDate exactly once. Nil ActualReturnDate means outstanding.
type Rental struct {
	ID               int        `json:"id" db:"id"`
	BookID           int        `json:"bookId" db:"book_id"`
	UserID           int        `json:"userId" db:"user_id"`
	RentalDate       time.Time  `json:"rentalDate" db:"rental_date"`
	ReturnDate       time.Time  `json:"returnDate" db:"return_date"`
	ActualReturnDate *time.Time `json:"actualReturnDate,omitempty" db:"actual_return_date"`
}

type RentalView struct {
	ID               int        `json:"id" db:"id"`
	RentalDate       time.Time  `json:"rentalDate" db:"rental_date"`
	ReturnDate       time.Time  `json:"returnDate" db:"return_date"`
	ActualReturnDate *time.Time `json:"actualReturnDate,omitempty" db:"actual_return_date"`
	BookTitle        string     `json:"bookTitle" db:"book_title"`
}

type RentalReceipt struct {
	ID         int       `json:"id"`
	RentalDate time.Time `json:"rentalDate"`
	ReturnDate time.Time `json:"returnDate"`
	BookTitle  string    `json:"bookTitle"`
	UserName   string    `json:"userName"`
}

type CreateRentalRequest struct {
	BookID     int `json:"bookId" validate:"required"`
	RentalDays int `json:"rentalDays" validate:"required,min=1"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
