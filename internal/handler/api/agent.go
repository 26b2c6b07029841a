package api

import (
	"net/http"
	"time"

	reqdto "gym-reservation-engine/internal/handler/dto/request"
	resdto "gym-reservation-engine/internal/handler/dto/response"
	"gym-reservation-engine/internal/handler/httperr"
	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AgentHandler exposes tool-style endpoints for a conversational booking agent
// acting for the member named in its token.
type AgentHandler struct {
	reservations commands.ReservationCommands
	courts       queries.CourtQueries
	loc          *time.Location
}

func NewAgentHandler(reservations commands.ReservationCommands, courts queries.CourtQueries, loc *time.Location) *AgentHandler {
	return &AgentHandler{reservations: reservations, courts: courts, loc: loc}
}

// @Summary Search free courts
// @Tags agent
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SearchCourtsRequest true "Date, hour window, category"
// @Success 200 {array} resdto.FreeCourtResponse
// @Router /agent/tools/search-courts [post]
func (h *AgentHandler) SearchCourts(c *gin.Context) {
	var req reqdto.SearchCourtsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	search, err := req.ToSearch(h.loc)
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}

	courts, err := h.courts.SearchFree(c.Request.Context(), search)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFreeCourts(courts))
}

// @Summary Book a court in whole hours
// @Tags agent
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookCourtRequest true "Court, date, hour window"
// @Success 201 {object} resdto.BookingResponse
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /agent/tools/book-court [post]
func (h *AgentHandler) BookCourt(c *gin.Context) {
	memberID, ok := currentMember(c)
	if !ok {
		return
	}
	var req reqdto.BookCourtRequest
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
