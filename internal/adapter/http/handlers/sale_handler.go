package handlers

import (
	"net/http"

	request "crm_assistencia/internal/adapter/http/dto/request"
	response "crm_assistencia/internal/adapter/http/dto/response"
	"crm_assistencia/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SaleHandler handles HTTP requests for sales. Sales are immutable, so there
// is no update or delete.
type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// CreateSale godoc
// @Summary      Register a sale
// @Description  Validates stock for every line and commits the sale, the stock decrements and the ledger entries together.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        sale body request.SaleRequest true "Sale"
// @Success      201 {object} response.SaleResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var payload request.SaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	sale, err := h.usecase.CreateSale(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Warn().Err(err).Str("customer_id", payload.CustomerID).Msg("[sale][handler] create failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromSale(sale))
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	from, err := queryDate(c, "from")
	if err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	to, err := queryDate(c, "to")
	if err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	sales, err := h.usecase.List(c.Request.Context(), usecase.SaleFilter{
		CustomerID: c.Query("customer_id"),
		Technician: c.Query("technician"),
		From:       from,
		To:         to,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSales(sales))
}
