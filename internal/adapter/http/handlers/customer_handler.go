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

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary  Create a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    customer body request.CustomerRequest true "Customer"
// @Success  201 {object} response.CustomerResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// ListCustomers supports ?search= (name, tax id or e-mail) and ?service_type=.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	filter := usecase.CustomerFilter{
		Search:      c.Query("search"),
		ServiceType: entities.ServiceType(c.Query("service_type")),
	}
	customers, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	log.Info().Str("customer_id", id).Msg("[customer][handler] deleted")
	c.Status(http.StatusNoContent)
}
