package api

import (
	"net/http"
	"time"

	reqdto "gym-reservation-engine/internal/handler/dto/request"
	resdto "gym-reservation-engine/internal/handler/dto/response"
	"gym-reservation-engine/internal/handler/httperr"
	"gym-reservation-engine/internal/handler/middleware"
	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// MemberHandler serves the member self-service routes. The member is always taken from the token.
type MemberHandler struct {
	reservations commands.ReservationCommands
	views        queries.ReservationQueries
	ledger       queries.LedgerQueries
	loc          *time.Location
}

func NewMemberHandler(
	reservations commands.ReservationCommands,
	views queries.ReservationQueries,
	ledger queries.LedgerQueries,
	loc *time.Location,
) *MemberHandler {
	return &MemberHandler{reservations: reservations, views: views, ledger: ledger, loc: loc}
}

// @Summary Book a court
// @Tags member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MemberCreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /member/reservations [post]
func (h *MemberHandler) CreateReservation(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	var req reqdto.MemberCreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	in, err := req.ToInput(memberID, h.loc)
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}

	result, err := h.reservations.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondBooking(c, result)
}

// @Summary Cancel own reservation
// @Tags member
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.RefundResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /member/reservations/{id}/cancel [post]
func (h *MemberHandler) CancelReservation(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindOptionalCancel(c)
	if !ok {
		return
	}

	result, err := h.reservations.Cancel(c.Request.Context(), commands.CancelReservationInput{
		ReservationID: id,
		Reason:        req.Reason,
		ActorMemberID: &memberID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondRefund(c, result)
}

// @Summary List own reservations
// @Tags member
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.ReservationResponse
// @Router /member/reservations [get]
func (h *MemberHandler) ListReservations(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	var q reqdto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	views, err := h.views.ListByMember(c.Request.Context(), memberID, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respondReservations(c, views)
}

// @Summary Own balance and ledger
// @Tags member
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.LedgerResponse
// @Router /member/ledger [get]
func (h *MemberHandler) Ledger(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	respondLedger(c, h.ledger, memberID)
}

// @Summary Quote a slot at the member's own price
// @Tags member
// @Produce json
// @Security BearerAuth
// @Param court_id query int true "Court ID"
// @Param start_time query string true "RFC3339 start"
// @Param end_time query string true "RFC3339 end"
// @Success 200 {object} resdto.CourtQuoteResponse
// @Router /member/quote [get]
func (h *MemberHandler) Quote(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	q.MemberID = &memberID

	result, err := h.reservations.Quote(c.Request.Context(), q.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(*result))
}

func currentMember(c *gin.Context) (int64, bool) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		// RequireMember guards these routes
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "Internal server error"}})
		return 0, false
	}
	return memberID, true
}
