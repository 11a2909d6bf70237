package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookrental-service/internal/errs"
	"github.com/Astemirdum/bookrental-service/internal/handler"
	service_mocks "github.com/Astemirdum/bookrental-service/internal/handler/mocks"
	"github.com/Astemirdum/bookrental-service/internal/model"
	"github.com/Astemirdum/bookrental-service/pkg/auth"
	"github.com/Astemirdum/bookrental-service/pkg/validate"
)

// withIdentity mimics the bearer-token middleware for tests.
func withIdentity(userID int, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), userID, role)))
			return next(c)
		}
	}
}

func newTestHandler(t *testing.T) (*handler.Handler, *service_mocks.MockBookRentalService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockBookRentalService(c)
	log := zap.NewExample().Named("test")
	return handler.New(svc, service_mocks.NewMockIdentityService(c), []byte("test-secret"), log), svc
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()

	published := time.Date(1925, 4, 10, 0, 0, 0, 0, time.UTC)

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookRentalService)

	tests := []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			target: "/api/v1/books/1",
			mockBehavior: func(r *service_mocks.MockBookRentalService) {
				r.EXPECT().
					GetBook(context.Background(), 1).
					Return(model.BookDetail{
						Book: model.Book{
							ID:            1,
							Title:         "The Great Gatsby",
							Author:        "F. Scott Fitzgerald",
							PublishedDate: published,
							IsAvailable:   true,
						},
						AverageRating: 4,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"title":"The Great Gatsby","author":"F. Scott Fitzgerald","description":"","publishedDate":"1925-04-10T00:00:00Z","isAvailable":true,"averageRating":4}`,
			},
		},
		{
			name:   "not found",
			target: "/api/v1/books/404",
			mockBehavior: func(r *service_mocks.MockBookRentalService) {
				r.EXPECT().
					GetBook(context.Background(), 404).
					Return(model.BookDetail{}, errors.Wrap(errs.ErrNotFound, "book"))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"book: not found"}`,
			},
		},
		{
			name:         "invalid id",
			target:       "/api/v1/books/abc",
			mockBehavior: func(r *service_mocks.MockBookRentalService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid book id"}`,
			},
		},
		{
			name:   "storage down",
			target: "/api/v1/books/1",
			mockBehavior: func(r *service_mocks.MockBookRentalService) {
				r.EXPECT().
					GetBook(context.Background(), 1).
					Return(model.BookDetail{}, errs.ErrUnavailable)
			},
			response: response{
				expectedCode: http.StatusServiceUnavailable,
				expectedBody: `{"message":"storage unavailable"}`,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTestHandler(t)
			tt.mockBehavior(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/books/:id", h.GetBook)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	h, svc := newTestHandler(t)

	svc.EXPECT().
		ListBooks(context.Background(), "gatsby", "desc").
		Return([]model.Book{
			{ID: 1, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald",
				PublishedDate: time.Date(1925, 4, 10, 0, 0, 0, 0, time.UTC), IsAvailable: true},
		}, nil)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/v1/books", h.ListBooks)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/books?filter=gatsby&sort=desc", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"id":1,"title":"The Great Gatsby","author":"F. Scott Fitzgerald","description":"","publishedDate":"1925-04-10T00:00:00Z","isAvailable":true}]`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_RentBook(t *testing.T) {
	t.Parallel()

	rentalDate := time.Date(2023, 10, 21, 12, 0, 0, 0, time.UTC)

	type response struct {
		expectedCode int
		expectedBody string
	}
	tests := []struct {
		name         string
		userID       int
		body         string
		mockBehavior func(r *service_mocks.MockBookRentalService)
		response     response
	}{
		{
			name:   "ok",
			userID: 7,
			body:   `{"bookId":1,"rentalDays":14}`,
			mockBehavior: func(r *service_mocks.MockBookRentalService) {
				r.EXPECT().
					RentBook(gomock.Any(), 1, 7, 14).
					Return(model.RentalReceipt{
						ID:         11,
						RentalDate: rentalDate,
						ReturnDate: rentalDate.AddDate(0, 0, 14),
						BookTitle:  "The Great Gatsby",
						UserName:   "user@bookrental.com",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":11,"rentalDate":"2023-10-21T12:00:00Z","returnDate":"2023-11-04T12:00:00Z","bookTitle":"The Great Gatsby","userName":"user@bookrental.com"}`,
			},
		},
		{
			name:   "book unavailable",
			userID: 9,
			body:   `{"bookId":1,"rentalDays":7}`,
			mockBehavior: func(r *service_mocks.MockBookRentalService) {
				r.EXPECT().
					RentBook(gomock.Any(), 1, 9, 7).
					Return(model.RentalReceipt{}, errors.Wrap(errs.ErrConflict, "book is not available for rent"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book is not available for rent: conflict"}`,
			},
		},
		{
			name:         "missing rentalDays",
			userID:       7,
			body:         `{"bookId":1}`,
			mockBehavior: func(r *service_mocks.MockBookRentalService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTestHandler(t)
			tt.mockBehavior(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/rentals", h.RentBook, withIdentity(tt.userID, "User"))

			r := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_RentBook_NoIdentity(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(t)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/api/v1/rentals", h.RentBook)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", strings.NewReader(`{"bookId":1,"rentalDays":14}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ReturnRental(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		userID       int
		target       string
		mockBehavior func(r *service_mocks.MockBookRentalService)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "ok",
			userID: 7,
			target: "/api/v1/rentals/11/return",
			mockBehavior: func(r *service_mocks.MockBookRentalService) {
				r.EXPECT().ReturnBook(gomock.Any(), 11, 7).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "already returned",
			userID: 7,
			target: "/api/v1/rentals/11/return",
			mockBehavior: func(r *service_mocks.MockBookRentalService) {
				r.EXPECT().ReturnBook(gomock.Any(), 11, 7).
					Return(errors.Wrap(errs.ErrConflict, "book already returned"))
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"book already returned: conflict"}`,
		},
		{
			name:   "foreign rental",
			userID: 9,
			target: "/api/v1/rentals/11/return",
			mockBehavior: func(r *service_mocks.MockBookRentalService) {
				r.EXPECT().ReturnBook(gomock.Any(), 11, 9).
					Return(errors.Wrap(errs.ErrForbidden, "rental belongs to another user"))
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"rental belongs to another user: forbidden"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTestHandler(t)
			tt.mockBehavior(svc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/rentals/:id/return", h.ReturnRental, withIdentity(tt.userID, "User"))

			r := httptest.NewRequest(http.MethodPost, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CreateBook_RoleForwarded(t *testing.T) {
	t.Parallel()
	h, svc := newTestHandler(t)

	svc.EXPECT().
		CreateBook(gomock.Any(), model.CreateBookRequest{Title: "1984", Author: "George Orwell"}, model.RoleUser).
		Return(model.Book{}, errors.Wrap(errs.ErrForbidden, "admin role required"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/api/v1/books", h.CreateBook, withIdentity(2, "User"))

	r := httptest.NewRequest(http.MethodPost, "/api/v1/books",
		strings.NewReader(`{"title":"1984","author":"George Orwell"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, `{"message":"admin role required: forbidden"}`, strings.Trim(w.Body.String(), "\n"))
}
