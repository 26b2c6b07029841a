//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"gym-reservation-engine/internal/domain/reservation"
	"gym-reservation-engine/internal/handler/api"
	reqdto "gym-reservation-engine/internal/handler/dto/request"
	resdto "gym-reservation-engine/internal/handler/dto/response"
	"gym-reservation-engine/internal/pkg/errs"
	"gym-reservation-engine/internal/usecase/commands"
	"gym-reservation-engine/internal/usecase/queries"
	"gym-reservation-engine/tests/common/httptest"
	"gym-reservation-engine/tests/common/testutil"
	commandsmock "gym-reservation-engine/tests/mock/commands"
	queriesmock "gym-reservation-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const tokenMemberID = int64(7)

// fakeAuth stands in for RequireAuth and RequireMember.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("member_id", tokenMemberID)
	c.Next()
}

type MemberHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	reservations *commandsmock.MockReservationCommands
	views        *queriesmock.MockReservationQueries
	ledger       *queriesmock.MockLedgerQueries
	loc          *time.Location
}

func (s *MemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.reservations = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.views = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.ledger = queriesmock.NewMockLedgerQueries(s.mockCtrl)
	s.loc = time.FixedZone("CST", 8*60*60)
	h := api.NewMemberHandler(s.reservations, s.views, s.ledger, s.loc)

	g := s.router.Group("/api/member", fakeAuth)
	g.POST("/reservations", h.CreateReservation)
	g.GET("/reservations", h.ListReservations)
	g.POST("/reservations/:id/cancel", h.CancelReservation)
	g.GET("/ledger", h.Ledger)
	g.GET("/quote", h.Quote)
}

func (s *MemberHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMemberHandlerSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}

func (s *MemberHandlerTestSuite) TestCreateReservation() {
	url := "/api/member/reservations"
	reqBody := reqdto.MemberCreateReservationRequest{CourtID: 1, Date: "2025-03-10", StartTime: "14:00", EndTime: "16:00"}

	s.Run("times are read in the gym time zone and the member comes from the token", func() {
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateReservationInput) (*commands.BookingResult, error) {
				s.Equal(reservation.OriginMemberSelf, in.Origin)
				s.Require().NotNil(in.MemberID)
				s.Equal(tokenMemberID, *in.MemberID)
				s.True(in.Start.Equal(time.Date(2025, 3, 10, 14, 0, 0, 0, s.loc)))
				s.True(in.End.Equal(time.Date(2025, 3, 10, 16, 0, 0, 0, s.loc)))
				return bookingResult(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "member-token")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	cases := []requestCase{
		{name: "bad date", mutate: testutil.Field("date", "10/03/2025"), expectCode: http.StatusBadRequest},
		{name: "bad clock", mutate: testutil.Field("start_time", "2pm"), expectCode: http.StatusBadRequest},
		{name: "missing end", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
		{name: "note at max length", mutate: testutil.Field("note", strings.Repeat("n", 255)), expectCode: http.StatusCreated},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusCreated {
				s.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, in commands.CreateReservationInput) (*commands.BookingResult, error) {
						s.Equal(tokenMemberID, *in.MemberID)
						return bookingResult(), nil
					})
			}
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "member-token")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *MemberHandlerTestSuite) TestCancelReservation() {
	s.Run("owner check is delegated with the token member", func() {
		actor := tokenMemberID
		s.reservations.EXPECT().Cancel(gomock.Any(), commands.CancelReservationInput{ReservationID: 11, ActorMemberID: &actor}).
			Return(&commands.RefundResult{ReservationID: 11, RefundAmount: decimal.RequireFromString("100")}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/member/reservations/11/cancel", nil, "member-token")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("someone else's reservation reads as not found", func() {
		s.reservations.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("reservation 12 not found for member"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/member/reservations/12/cancel", nil, "member-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

func (s *MemberHandlerTestSuite) TestListReservations() {
	s.views.EXPECT().ListByMember(gomock.Any(), tokenMemberID, 5).Return([]*queries.ReservationView{}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/member/reservations?limit=5", nil, "member-token")

	var body []resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Empty(body)
}

func (s *MemberHandlerTestSuite) TestLedger() {
	s.ledger.EXPECT().History(gomock.Any(), tokenMemberID, 0).
		Return(&queries.MemberLedgerView{MemberID: tokenMemberID, Balance: decimal.RequireFromString("12.50")}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/member/ledger", nil, "member-token")

	var body resdto.LedgerResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.True(body.Balance.Equal(decimal.RequireFromString("12.5")))
	s.NotNil(body.Entries)
}

func (s *MemberHandlerTestSuite) TestQuote() {
	s.reservations.EXPECT().Quote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, in commands.QuoteInput) (*commands.QuoteResult, error) {
			s.Require().NotNil(in.MemberID)
			s.Equal(tokenMemberID, *in.MemberID)
			return &commands.QuoteResult{CourtID: 1, Quote: bookingResult().Quote}, nil
		})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
		"/api/member/quote?court_id=1&member_id=99&start_time=2025-03-10T14:00:00Z&end_time=2025-03-10T16:00:00Z", nil, "member-token")

	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}
