package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketstall/market-api/internal/api/handler/v1/request"
	"github.com/marketstall/market-api/internal/api/handler/v1/response"
	"github.com/marketstall/market-api/internal/domain"
	"github.com/marketstall/market-api/internal/service"
)

type IncidentService interface {
	GetIncidents(ctx context.Context) ([]domain.Incident, error)
	ReportIncident(ctx context.Context, in domain.NewIncident) (domain.Incident, error)
	UpdateStatus(ctx context.Context, id string, next domain.IncidentStatus) (domain.Incident, error)
}

type IncidentHandler struct {
	svc IncidentService
}

func NewIncidentHandler(svc IncidentService) *IncidentHandler {
	return &IncidentHandler{
		svc: svc,
	}
}

// HandleGetIncidents godoc
// @Summary      List incidents
// @Description  Newest first.
// @Tags         incidents
// @Produce      json
// @Success      200  {array}   domain.Incident
// @Failure      500  {object}  response.Err
// @Router       /incidents [get]
func (h *IncidentHandler) HandleGetIncidents(ctx *gin.Context) {
	incidents, err := h.svc.GetIncidents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetIncidents -> h.svc.GetIncidents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, incidents)
}

// HandleReportIncident godoc
// @Summary      Report an incident
// @Description  standId is optional; when given the stand must exist.
// @Tags         incidents
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateIncidentRequest  true  "Incident"
// @Success      201    {object}  domain.Incident
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /incidents [post]
func (h *IncidentHandler) HandleReportIncident(ctx *gin.Context) {
	var input request.CreateIncidentRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	incident, err := h.svc.ReportIncident(ctx.Request.Context(), input.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrStandNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stand", "id", input.StandID))
			return
		}

		err = fmt.Errorf("HandleReportIncident -> h.svc.ReportIncident -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, incident)
}

// HandleUpdateIncidentStatus godoc
// @Summary      Move an incident forward
// @Tags         incidents
// @Accept       json
// @Produce      json
// @Param        incidentID  path      string                               true  "Incident ID"
// @Param        input       body      request.UpdateIncidentStatusRequest  true  "Target status"
// @Success      200         {object}  domain.Incident
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /incidents/{incidentID}/status [put]
func (h *IncidentHandler) HandleUpdateIncidentStatus(ctx *gin.Context) {
	incidentID := ctx.Param("incidentID")

	var input request.UpdateIncidentStatusRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	incident, err := h.svc.UpdateStatus(ctx.Request.Context(), incidentID, domain.IncidentStatus(input.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncidentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("incident", "id", incidentID))
		case errors.Is(err, service.ErrInvalidStatusTransition), errors.Is(err, service.ErrIncidentConflict):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleUpdateIncidentStatus -> h.svc.UpdateStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, incident)
}
