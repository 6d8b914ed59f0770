package handlers

import (
	"net/http"

	request "crm_assistencia/internal/adapter/http/dto/request"
	response "crm_assistencia/internal/adapter/http/dto/response"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ProductHandler serves the catalogue and the stock ledger.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(product))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// ListProducts godoc
// @Summary  List products
// @Tags     products
// @Produce  json
// @Param    search    query string false "Name or category"
// @Param    kind      query string false "physical or virtual"
// @Param    low_stock query bool   false "Only products at or below minimum"
// @Success  200 {array} response.ProductResponse
// @Security Bearer
// @Router   /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	lowOnly, err := queryBool(c, "low_stock")
	if err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	products, err := h.usecase.List(c.Request.Context(), usecase.ProductFilter{
		Search:       c.Query("search"),
		Kind:         entities.ProductKind(c.Query("kind")),
		LowStockOnly: lowOnly,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) ListLowStock(c *gin.Context) {
	products, err := h.usecase.LowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	log.Info().Str("product_id", id).Msg("[product][handler] deleted")
	c.Status(http.StatusNoContent)
}

// RegisterStockMovement godoc
// @Summary  Register a manual stock entry or withdrawal
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    id       path string                       true "Product id"
// @Param    movement body request.StockMovementRequest true "Movement"
// @Success  201 {object} response.StockMovementResult
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /products/{id}/movements [post]
func (h *ProductHandler) RegisterStockMovement(c *gin.Context) {
	var payload request.StockMovementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	movement, product, err := h.usecase.RegisterStockMovement(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		log.Warn().Err(err).Str("product_id", c.Param("id")).Msg("[stock][handler] movement rejected")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.StockMovementResult{
		Movement: response.FromStockMovement(movement),
		Product:  response.FromProduct(product),
	})
}

// ListStockMovements serves both /products/:id/movements and
// /stock-movements?product_id=.
func (h *ProductHandler) ListStockMovements(c *gin.Context) {
	productID := c.Param("id")
	if productID == "" {
		productID = c.Query("product_id")
	}
	movements, err := h.usecase.ListStockMovements(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStockMovements(movements))
}
