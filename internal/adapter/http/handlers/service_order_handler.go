package handlers

import (
	"net/http"
	"strconv"

	request "crm_assistencia/internal/adapter/http/dto/request"
	response "crm_assistencia/internal/adapter/http/dto/response"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateServiceOrder godoc
// @Summary  Open a service order
// @Tags     service-orders
// @Accept   json
// @Produce  json
// @Param    order body request.ServiceOrderRequest true "Service order"
// @Success  201 {object} response.ServiceOrderResponse
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /service-orders [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
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

	orders, err := h.usecase.List(c.Request.Context(), usecase.ServiceOrderFilter{
		Status:     entities.ServiceOrderStatus(c.Query("status")),
		Technician: c.Query("technician"),
		CustomerID: c.Query("customer_id"),
		Search:     c.Query("search"),
		From:       from,
		To:         to,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func (h *ServiceOrderHandler) UpdateServiceOrder(c *gin.Context) {
	var payload request.ServiceOrderPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.update(c, payload.ToPatch())
}

// ChangeStatus is a shortcut for a patch carrying only the status.
func (h *ServiceOrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	status := entities.ServiceOrderStatus(payload.Status)
	h.update(c, usecase.ServiceOrderPatch{Status: &status})
}

func (h *ServiceOrderHandler) update(c *gin.Context, patch usecase.ServiceOrderPatch) {
	order, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		log.Warn().Err(err).Str("order_id", c.Param("id")).Msg("[service_order][handler] update rejected")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) DeleteServiceOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceOrderHandler) AddUsedPart(c *gin.Context) {
	var payload request.UsedPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddUsedPart(c.Request.Context(), c.Param("id"), payload.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// RemoveUsedPart deletes the part at the zero-based :index.
func (h *ServiceOrderHandler) RemoveUsedPart(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.RemoveUsedPart(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}
