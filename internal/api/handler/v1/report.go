package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketstall/market-api/internal/api/handler/v1/response"
	"github.com/marketstall/market-api/internal/domain"
)

type ReportService interface {
	Summary(ctx context.Context) (domain.Summary, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleGetSummary godoc
// @Summary      Market summary
// @Description  Revenue by payment status, occupancy overall and per category, stands by status.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  domain.Summary
// @Failure      500  {object}  response.Err
// @Router       /reports/summary [get]
func (h *ReportHandler) HandleGetSummary(ctx *gin.Context) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetSummary -> h.svc.Summary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
