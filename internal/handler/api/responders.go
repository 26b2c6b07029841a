package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "gym-reservation-engine/internal/handler/dto/request"
	resdto "gym-reservation-engine/internal/handler/dto/response"
	"gym-reservation-engine/internal/handler/httperr"
	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

func respondBooking(c *gin.Context, result *commands.BookingResult) {
	resp, err := resdto.FromBooking(result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func respondRefund(c *gin.Context, result *commands.RefundResult) {
	resp, err := resdto.FromRefund(result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func respondReservations(c *gin.Context, views []*queries.ReservationView) {
	resp, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func respondLedger(c *gin.Context, ledger queries.LedgerQueries, memberID int64) {
	var q reqdto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	view, err := ledger.History(c.Request.Context(), memberID, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromLedger(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// bindOptionalCancel accepts an empty body.
func bindOptionalCancel(c *gin.Context) (reqdto.CancelReservationRequest, bool) {
	var req reqdto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, err)
		return req, false
	}
	return req, true
}
