package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookrental-service/internal/model"
)

func (h *Handler) ListRentals(c echo.Context) error {
	ident, err := identityFrom(c)
	if err != nil {
		return err
	}

	rentals, err := h.svc.ListRentals(c.Request().Context(), ident.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rentals)
}

func (h *Handler) RentBook(c echo.Context) error {
	ident, err := identityFrom(c)
	if err != nil {
		return err
	}
	var req model.CreateRentalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	receipt, err := h.svc.RentBook(c.Request().Context(), req.BookID, ident.UserID, req.RentalDays)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, receipt)
}

func (h *Handler) ReturnRental(c echo.Context) error {
	ident, err := identityFrom(c)
	if err != nil {
		return err
	}
	rentalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid rental id")
	}

	if err := h.svc.ReturnBook(c.Request().Context(), rentalID, ident.UserID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
