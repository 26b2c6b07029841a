package api

import (
	"net/http"
	"strconv"

	"gym-reservation-engine/internal/domain/reservation"
	reqdto "gym-reservation-engine/internal/handler/dto/request"
	resdto "gym-reservation-engine/internal/handler/dto/response"
	"gym-reservation-engine/internal/handler/httperr"
	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reservations commands.ReservationCommands
	members      commands.MemberCommands
	settings     commands.SettingsCommands
	views        queries.ReservationQueries
	ledger       queries.LedgerQueries
}

func NewAdminHandler(
	reservations commands.ReservationCommands,
	members commands.MemberCommands,
	settings commands.SettingsCommands,
	views queries.ReservationQueries,
	ledger queries.LedgerQueries,
) *AdminHandler {
	return &AdminHandler{
		reservations: reservations,
		members:      members,
		settings:     settings,
		views:        views,
		ledger:       ledger,
	}
}

// @Summary Create reservation (front desk)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AdminCreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations [post]
func (h *AdminHandler) CreateReservation(c *gin.Context) {
	var req reqdto.AdminCreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	result, err := h.reservations.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondBooking(c, result)
}

// @Summary Cancel reservation and refund
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest false "Cancel reason"
// @Success 200 {object} resdto.RefundResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/cancel [post]
func (h *AdminHandler) CancelReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindOptionalCancel(c)
	if !ok {
		return
	}

	result, err := h.reservations.Cancel(c.Request.Context(), commands.CancelReservationInput{ReservationID: id, Reason: req.Reason})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondRefund(c, result)
}

// @Summary Change reservation status
// @Description cancelled goes through the refund path
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/status [put]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	result, err := h.reservations.AdvanceStatus(c.Request.Context(), id, reservation.Status(req.Status))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromStatusChange(result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List reservations with their latest order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param court_id query int false "Court ID"
// @Param member_id query int false "Member ID"
// @Param status query string false "Status"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.ReservationResponse
// @Router /admin/reservations [get]
func (h *AdminHandler) ListReservations(c *gin.Context) {
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	views, err := h.views.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondReservations(c, views)
}

// @Summary Quote a slot without booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param court_id query int true "Court ID"
// @Param member_id query int false "Member ID"
// @Param start_time query string true "RFC3339 start"
// @Param end_time query string true "RFC3339 end"
// @Success 200 {object} resdto.CourtQuoteResponse
// @Router /admin/quote [get]
func (h *AdminHandler) Quote(c *gin.Context) {
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	result, err := h.reservations.Quote(c.Request.Context(), q.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(*result))
}

// @Summary Top up member balance
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param request body reqdto.TopUpRequest true "Amount"
// @Success 200 {object} resdto.TopUpResponse
// @Router /admin/members/{id}/topup [post]
func (h *AdminHandler) TopUp(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	result, err := h.members.TopUp(c.Request.Context(), id, req.Amount, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTopUp(result))
}

// @Summary Member ledger history
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.LedgerResponse
// @Router /admin/members/{id}/ledger [get]
func (h *AdminHandler) LedgerHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondLedger(c, h.ledger, id)
}

// @Summary Drop the cached member level table
// @Tags admin
// @Security BearerAuth
// @Success 204
// @Router /admin/settings/member-levels/invalidate [post]
func (h *AdminHandler) InvalidateMemberLevels(c *gin.Context) {
	h.settings.InvalidateMemberLevels()
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_request", "Invalid ID format", nil)
		return 0, false
	}
	return id, true
}
