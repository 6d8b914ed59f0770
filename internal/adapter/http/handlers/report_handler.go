package handlers

import (
	"fmt"
	"net/http"
	"strings"

	response "crm_assistencia/internal/adapter/http/dto/response"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/infrastructure/export"
	"crm_assistencia/internal/usecase"
	"crm_assistencia/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// GetReport godoc
// @Summary  Generate a report
// @Tags     reports
// @Produce  json,text/csv,application/vnd.ms-excel
// @Param    kind   path  string true  "sales, technicians, inventory, customers or equipment"
// @Param    format query string false "json (default), csv or xls"
// @Param    from   query string false "yyyy-mm-dd"
// @Param    to     query string false "yyyy-mm-dd"
// @Param    status query string false "Service order status"
// @Param    search query string false "Free text"
// @Success  200 {object} usecase.ReportTable
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /reports/{kind} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
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

	formatParam := strings.TrimSpace(c.Query("format"))
	var format export.Format
	if formatParam != "" && !strings.EqualFold(formatParam, "json") {
		format, err = export.ParseFormat(formatParam)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Format must be json, csv or xls", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	kind := usecase.ReportKind(c.Param("kind"))
	table, err := h.usecase.Generate(c.Request.Context(), kind, usecase.ReportFilter{
		From:   from,
		To:     to,
		Status: entities.ServiceOrderStatus(c.Query("status")),
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if format == "" {
		c.JSON(http.StatusOK, table)
		return
	}

	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s%s"`, table.Filename, format.Extension()))
	c.Status(http.StatusOK)
	if err := export.Write(c.Writer, format, table.Headers, table.Rows); err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("[report][handler] export failed")
	}
}
