package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "vitashop/internal/delivery/context"
	domainerrors "vitashop/internal/domain/errors"
	mockUC "vitashop/internal/mocks/usecase"
	"vitashop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// withUser stands in for the auth middleware.
func withUser(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUserID(c, userID)

			return next(c)
		}
	}
}

func newCartHandlerForTest(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUC.MockCartUsecase) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	g := e.Group("/cart")
	if userID != uuid.Nil {
		g.Use(withUser(userID))
	}
	g.GET("", h.GetCart)
	g.POST("", h.AddToCart)
	g.POST("/:product_stock_id", h.UpdateCartItem)
	g.DELETE("/:product_stock_id", h.RemoveCartItem)

	return e, cartUC
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestCartHandler_GetCart_Empty(t *testing.T) {
	userID := uuid.New()
	e, cartUC := newCartHandlerForTest(t, userID)

	cartUC.EXPECT().GetCart(mock.Anything, userID).Return(nil, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"EMPTY"}`, rec.Body.String())
}

func TestCartHandler_GetCart(t *testing.T) {
	userID := uuid.New()
	e, cartUC := newCartHandlerForTest(t, userID)

	stockID := uuid.New()
	cartUC.EXPECT().GetCart(mock.Anything, userID).Return(&usecase.CartView{
		OrderNumber:  "202403051234",
		SubTotalCost: "12.50",
		ShippingCost: "5.00",
		TotalCost:    "17.50",
		Carts: []usecase.CartLine{
			{ProductStockID: stockID, ProductSize: "60", ProductPrice: "12.50", ProductQuantity: 1},
		},
	}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "SUCCESS", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "202403051234", data["orderNumber"])
	assert.Equal(t, "17.50", data["totalCost"])
	carts := data["carts"].([]any)
	require.Len(t, carts, 1)
	assert.Equal(t, stockID.String(), carts[0].(map[string]any)["productStockId"])
}

func TestCartHandler_GetCart_Unauthenticated(t *testing.T) {
	e, _ := newCartHandlerForTest(t, uuid.Nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"UNAUTHORIZED"}`, rec.Body.String())
}

func TestCartHandler_AddToCart(t *testing.T) {
	userID := uuid.New()
	e, cartUC := newCartHandlerForTest(t, userID)

	productID := uuid.New()
	cartUC.EXPECT().
		AddToCart(mock.Anything, userID, mock.MatchedBy(func(input *usecase.AddToCartInput) bool {
			return input.ProductID == productID &&
				input.ProductSize == "60" &&
				input.ProductPrice.Equal(decimal.RequireFromString("12.5"))
		})).
		Return(nil)

	body := `{"productId":"` + productID.String() + `","productSize":"60","productPrice":12.5}`
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/cart", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"SUCCESS"}`, rec.Body.String())
}

func TestCartHandler_AddToCart_KeyError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing product", body: `{"productPrice":10}`},
		{name: "missing price", body: `{"productId":"` + uuid.NewString() + `"}`},
		{name: "malformed product id", body: `{"productId":"17","productPrice":10}`},
		{name: "malformed json", body: `{"productId":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newCartHandlerForTest(t, uuid.New())

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/cart", tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message":"KEY_ERROR"}`, rec.Body.String())
		})
	}
}

func TestCartHandler_AddToCart_ProductDoesNotExist(t *testing.T) {
	userID := uuid.New()
	e, cartUC := newCartHandlerForTest(t, userID)

	cartUC.EXPECT().AddToCart(mock.Anything, userID, mock.Anything).Return(domainerrors.ErrProductDoesNotExist)

	body := `{"productId":"` + uuid.NewString() + `","productSize":"XL","productPrice":"9.99"}`
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/cart", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"PRODUCT_DOES_NOT_EXIST"}`, rec.Body.String())
}

func TestCartHandler_UpdateCartItem(t *testing.T) {
	userID := uuid.New()
	e, cartUC := newCartHandlerForTest(t, userID)

	stockID := uuid.New()
	productID := uuid.New()
	cartUC.EXPECT().
		UpdateCartItem(mock.Anything, userID, &usecase.UpdateCartItemInput{
			ProductStockID:  stockID,
			ProductID:       productID,
			ProductSize:     "M",
			ProductQuantity: 3,
		}).
		Return(nil)

	body := `{"productId":"` + productID.String() + `","productSize":"M","productQuantity":3}`
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/cart/"+stockID.String(), body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"SUCCESS"}`, rec.Body.String())
}

func TestCartHandler_UpdateCartItem_OutOfStockIsOK(t *testing.T) {
	userID := uuid.New()
	e, cartUC := newCartHandlerForTest(t, userID)

	cartUC.EXPECT().UpdateCartItem(mock.Anything, userID, mock.Anything).Return(domainerrors.ErrOutOfStock)

	body := `{"productId":"` + uuid.NewString() + `","productSize":"B","productQuantity":5}`
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/cart/"+uuid.NewString(), body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OUT_OF_STOCK"}`, rec.Body.String())
}

func TestCartHandler_UpdateCartItem_KeyError(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{name: "zero quantity", target: "/cart/" + uuid.NewString(), body: `{"productId":"` + uuid.NewString() + `","productQuantity":0}`},
		{name: "missing quantity", target: "/cart/" + uuid.NewString(), body: `{"productId":"` + uuid.NewString() + `"}`},
		{name: "missing product", target: "/cart/" + uuid.NewString(), body: `{"productQuantity":1}`},
		{name: "malformed path id", target: "/cart/abc", body: `{"productId":"` + uuid.NewString() + `","productQuantity":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newCartHandlerForTest(t, uuid.New())

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, jsonRequest(http.MethodPost, tt.target, tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message":"KEY_ERROR"}`, rec.Body.String())
		})
	}
}

func TestCartHandler_UpdateCartItem_DoesNotExist(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown path variant", err: domainerrors.ErrDoesNotExist, wantStatus: http.StatusNotFound},
		{name: "line not in cart", err: domainerrors.ErrVariantDoesNotExist, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			e, cartUC := newCartHandlerForTest(t, userID)

			cartUC.EXPECT().UpdateCartItem(mock.Anything, userID, mock.Anything).Return(tt.err)

			body := `{"productId":"` + uuid.NewString() + `","productSize":"M","productQuantity":1}`
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/cart/"+uuid.NewString(), body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, `{"message":"DOES_NOT_EXIST"}`, rec.Body.String())
		})
	}
}

func TestCartHandler_RemoveCartItem(t *testing.T) {
	userID := uuid.New()
	e, cartUC := newCartHandlerForTest(t, userID)

	stockID := uuid.New()
	cartUC.EXPECT().RemoveCartItem(mock.Anything, userID, stockID).Return(nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cart/"+stockID.String(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"SUCCESS"}`, rec.Body.String())
}

func TestCartHandler_RemoveCartItem_NotFound(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		e, _ := newCartHandlerForTest(t, uuid.New())

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cart/xyz", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"DOES_NOT_EXIST"}`, rec.Body.String())
	})

	t.Run("not in cart", func(t *testing.T) {
		userID := uuid.New()
		e, cartUC := newCartHandlerForTest(t, userID)

		stockID := uuid.New()
		cartUC.EXPECT().RemoveCartItem(mock.Anything, userID, stockID).Return(domainerrors.ErrDoesNotExist.WrapMessage("no open cart"))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cart/"+stockID.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"DOES_NOT_EXIST"}`, rec.Body.String())
	})
}
