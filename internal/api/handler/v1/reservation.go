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

type ReservationService interface {
	GetReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	GetReservation(ctx context.Context, id string) (domain.Reservation, error)
	CreateReservation(ctx context.Context, in domain.NewReservation) (domain.Reservation, error)
	MarkPaid(ctx context.Context, id string) (domain.Reservation, error)
	UpdateCleaningStatus(ctx context.Context, id string, status domain.CleaningStatus, note string) (domain.Reservation, error)
}

type ReservationHandler struct {
	svc ReservationService
}

func NewReservationHandler(svc ReservationService) *ReservationHandler {
	return &ReservationHandler{
		svc: svc,
	}
}

// HandleGetReservations godoc
// @Summary      List reservations
// @Description  Returns all reservations. date keeps those active on that day, standId those of one stand.
// @Tags         reservations
// @Produce      json
// @Param        date     query     string  false  "Active on day (YYYY-MM-DD)"
// @Param        standId  query     string  false  "Stand ID"
// @Success      200      {array}   domain.Reservation
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /reservations [get]
func (h *ReservationHandler) HandleGetReservations(ctx *gin.Context) {
	var query request.ListReservationsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reservations, err := h.svc.GetReservations(ctx.Request.Context(), query.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleGetReservations -> h.svc.GetReservations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reservations)
}

// HandleGetReservation godoc
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Param        reservationID  path      string  true  "Reservation ID"
// @Success      200            {object}  domain.Reservation
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /reservations/{reservationID} [get]
func (h *ReservationHandler) HandleGetReservation(ctx *gin.Context) {
	reservationID := ctx.Param("reservationID")

	reservation, err := h.svc.GetReservation(ctx.Request.Context(), reservationID)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservation", "id", reservationID))
			return
		}

		err = fmt.Errorf("HandleGetReservation -> h.svc.GetReservation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reservation)
}

// HandleCreateReservation godoc
// @Summary      Reserve a stand
// @Description  Prices the reservation from the stand (priceDay x days) and reserves the stand. Fails with 409 when the stand is no longer available.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateReservationRequest  true  "Reservation"
// @Success      200    {object}  response.Success
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /reservations [post]
func (h *ReservationHandler) HandleCreateReservation(ctx *gin.Context) {
	var input request.CreateReservationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reservation, err := h.svc.CreateReservation(ctx.Request.Context(), input.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReservation), errors.Is(err, service.ErrAmountMismatch):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrStandNotFound):
			response.RenderErr(ctx, response.ErrNotFound("stand", "id", input.StandID))
		case errors.Is(err, service.ErrStandNotAvailable):
			response.RenderErr(ctx, response.ErrConflict(fmt.Errorf("stand %s is not available", input.StandID)))
		default:
			err = fmt.Errorf("HandleCreateReservation -> h.svc.CreateReservation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.Success{Success: true, ID: reservation.ID})
}

// HandleMarkPaid godoc
// @Summary      Mark a reservation as paid
// @Description  Idempotent: paying a PAID reservation succeeds without changes.
// @Tags         reservations
// @Produce      json
// @Param        reservationID  path      string  true  "Reservation ID"
// @Success      200            {object}  response.Success
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /reservations/{reservationID}/pay [put]
func (h *ReservationHandler) HandleMarkPaid(ctx *gin.Context) {
	reservationID := ctx.Param("reservationID")

	if _, err := h.svc.MarkPaid(ctx.Request.Context(), reservationID); err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservation", "id", reservationID))
			return
		}

		err = fmt.Errorf("HandleMarkPaid -> h.svc.MarkPaid -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Success{Success: true})
}

// HandleUpdateCleaning godoc
// @Summary      Record a cleaning inspection
// @Description  APPROVED clears the note, REJECTED keeps it.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        reservationID  path      string                         true  "Reservation ID"
// @Param        input          body      request.UpdateCleaningRequest  true  "Inspection verdict"
// @Success      200            {object}  domain.Reservation
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /reservations/{reservationID}/cleaning [put]
func (h *ReservationHandler) HandleUpdateCleaning(ctx *gin.Context) {
	reservationID := ctx.Param("reservationID")

	var input request.UpdateCleaningRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reservation, err := h.svc.UpdateCleaningStatus(ctx.Request.Context(), reservationID, domain.CleaningStatus(input.Status), input.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReservationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("reservation", "id", reservationID))
		case errors.Is(err, service.ErrInvalidStatusTransition):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleUpdateCleaning -> h.svc.UpdateCleaningStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, reservation)
}
