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

type StandService interface {
	GetStands(ctx context.Context) ([]domain.Stand, error)
	GetStand(ctx context.Context, id string) (domain.Stand, error)
	CreateStand(ctx context.Context, categoryCode string, loc domain.Location) (domain.Stand, error)
	UpdateStatus(ctx context.Context, id string, next domain.StandStatus) (domain.Stand, error)
}

type StandHandler struct {
	svc StandService
}

func NewStandHandler(svc StandService) *StandHandler {
	return &StandHandler{
		svc: svc,
	}
}

// HandleGetStands godoc
// @Summary      List stands
// @Description  Returns every stand on the market map ordered by number, with its location nested.
// @Tags         stands
// @Produce      json
// @Success      200  {array}   domain.Stand
// @Failure      500  {object}  response.Err
// @Router       /stands [get]
func (h *StandHandler) HandleGetStands(ctx *gin.Context) {
	stands, err := h.svc.GetStands(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetStands -> h.svc.GetStands -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stands)
}

// HandleGetStand godoc
// @Summary      Get a stand
// @Tags         stands
// @Produce      json
// @Param        standID  path      string  true  "Stand ID"
// @Success      200      {object}  domain.Stand
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stands/{standID} [get]
func (h *StandHandler) HandleGetStand(ctx *gin.Context) {
	standID := ctx.Param("standID")

	stand, err := h.svc.GetStand(ctx.Request.Context(), standID)
	if err != nil {
		if errors.Is(err, service.ErrStandNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stand", "id", standID))
			return
		}

		err = fmt.Errorf("HandleGetStand -> h.svc.GetStand -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stand)
}

// HandleCreateStand godoc
// @Summary      Create a stand
// @Description  Adds an AVAILABLE stand of a catalog category at the given map position. The number follows the highest existing one.
// @Tags         stands
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateStandRequest  true  "Category code and position"
// @Success      201    {object}  domain.Stand
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /stands [post]
func (h *StandHandler) HandleCreateStand(ctx *gin.Context) {
	var input request.CreateStandRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stand, err := h.svc.CreateStand(ctx.Request.Context(), input.CategoryCode, input.Location())
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleCreateStand -> h.svc.CreateStand -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, stand)
}

// HandleUpdateStandStatus godoc
// @Summary      Change a stand status
// @Description  Manual transition by the office. AVAILABLE -> RESERVED happens only through a reservation.
// @Tags         stands
// @Accept       json
// @Produce      json
// @Param        standID  path      string                            true  "Stand ID"
// @Param        input    body      request.UpdateStandStatusRequest  true  "Target status"
// @Success      200      {object}  domain.Stand
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stands/{standID}/status [put]
func (h *StandHandler) HandleUpdateStandStatus(ctx *gin.Context) {
	standID := ctx.Param("standID")

	var input request.UpdateStandStatusRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stand, err := h.svc.UpdateStatus(ctx.Request.Context(), standID, domain.StandStatus(input.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStandNotFound):
			response.RenderErr(ctx, response.ErrNotFound("stand", "id", standID))
		case errors.Is(err, service.ErrInvalidStatusTransition), errors.Is(err, service.ErrStandConflict):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleUpdateStandStatus -> h.svc.UpdateStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, stand)
}
