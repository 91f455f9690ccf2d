package handler

import (
	"log/slog"
	"net/http"

	"vitashop/internal/delivery/api/response"
	"vitashop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog handlers
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts handles GET /products?sort=<token>
func (h *ProductHandler) ListProducts(c echo.Context) error {
	listing, err := h.catalogUC.ListProducts(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, listing.Payload())
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c)
	}

	detail, err := h.catalogUC.GetProductDetail(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, detail)
}

// GetProductQRCode handles GET /products/:id/qr and returns a PNG image
func (h *ProductHandler) GetProductQRCode(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c)
	}

	png, err := h.catalogUC.GetProductQRCode(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
