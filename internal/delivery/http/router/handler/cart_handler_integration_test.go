package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"threadz/internal/delivery/http/validator"
	"threadz/internal/infra/persistence/memory"
	"threadz/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartTestServer(t *testing.T) (*echo.Echo, *CartHandler) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cartUsecase := impl.NewCartService(impl.CartServiceParams{
		Store:  memory.New(),
		Logger: logger,
	})

	e := echo.New()
	e.Validator = validator.New()

	return e, NewCartHandler(cartUsecase, logger)
}

func TestCartHandler_AddItem_Integration(t *testing.T) {
	e, handler := newCartTestServer(t)

	body := `{"productId":1,"name":"Urban Classic Hoodie","price":89.99,"size":"M","color":"Black","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"itemCount":2`)
	assert.Contains(t, responseBody, `"total":179.98`)
	assert.Contains(t, responseBody, "Urban Classic Hoodie")
}

func TestCartHandler_AddItem_RejectsMissingFields(t *testing.T) {
	e, handler := newCartTestServer(t)

	// No size or color
	body := `{"productId":1,"name":"Urban Classic Hoodie","price":89.99}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.AddItem(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCartHandler_GetCart_Integration(t *testing.T) {
	e, handler := newCartTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"itemCount":0`)
}

func TestCartHandler_ClearCart_Integration(t *testing.T) {
	e, handler := newCartTestServer(t)

	addBody := `{"productId":1,"name":"Urban Classic Hoodie","price":89.99,"size":"M","color":"Black","quantity":1}`
	addReq := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(addBody))
	addReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	require.NoError(t, handler.AddItem(e.NewContext(addReq, httptest.NewRecorder())))

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ClearCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"itemCount":0`)
}
