//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bookwise/internal/domain/booking"
	"bookwise/internal/handler/api"
	resdto "bookwise/internal/handler/dto/response"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/queries"
	"bookwise/tests/common/builder"
	"bookwise/tests/common/httptest"
	"bookwise/tests/common/testutil"
	commandsmock "bookwise/tests/mock/commands"
	queriesmock "bookwise/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
	s.router.POST("/bookings/:id/reschedule", s.handler.Reschedule)
	s.router.POST("/bookings/:id/complete", s.handler.Complete)
	s.router.POST("/bookings/:id/no-show", s.handler.MarkNoShow)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func bookingViewFixture(id uuid.UUID) *queries.BookingView {
	b := builder.NewBookingBuilder()
	return &queries.BookingView{
		ID:           id,
		EventTypeID:  b.EventTypeID,
		HostID:       b.HostID,
		Status:       booking.StatusConfirmed,
		StartTime:    b.SlotStart,
		EndTime:      b.SlotEnd,
		InviteeName:  b.InviteeName,
		InviteeEmail: b.InviteeEmail,
		InviteeTZ:    b.InviteeTZ,
		CreatedAt:    builder.BaseTime,
		UpdatedAt:    builder.BaseTime,
	}
}

func createBookingBody() map[string]any {
	b := builder.NewBookingBuilder()
	return map[string]any{
		"event_type_id": b.EventTypeID.String(),
		"start_time":    b.SlotStart.Format(time.RFC3339),
		"invitee": map[string]any{
			"name":     b.InviteeName,
			"email":    b.InviteeEmail,
			"timezone": b.InviteeTZ,
		},
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	bookingID := uuid.New()
	returnView := bookingViewFixture(bookingID)

	s.Run("success: returns 201 Created with BookingResponse", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(bookingID, nil).Times(1)
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBookingBody())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bookingID, response.ID)
		s.Equal("confirmed", response.Status)
		s.Equal(returnView.InviteeEmail, response.InviteeEmail)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: event_type_id", mutate: testutil.Field("event_type_id", nil)},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing field: invitee", mutate: testutil.Field("invitee", nil)},
			{name: "invalid invitee email", mutate: testutil.Field("invitee", map[string]any{"name": "Ada", "email": "not-an-email"})},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "tomorrow at noon")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), createBookingBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "event type not found",
				commandsError:  errs.Mark(errs.New("no row"), errs.ErrEventTypeNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Event type not found",
			},
			{
				name:           "slot not available",
				commandsError:  errs.Mark(errs.New("overlap"), errs.ErrSlotNotAvailable),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available",
			},
			{
				name:           "too short notice",
				commandsError:  errs.Mark(errs.New("notice"), errs.ErrTooShortNotice),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "notice period",
			},
			{
				name:           "slot in the past",
				commandsError:  errs.Mark(errs.New("past"), errs.ErrPastTime),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "in the past",
			},
			{
				name:           "limit reached",
				commandsError:  errs.Mark(errs.New("limit"), errs.ErrBookingLimitReached),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "limit reached",
			},
			{
				name:           "event type inactive",
				commandsError:  errs.Mark(errs.New("inactive"), errs.ErrEventTypeInactive),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "no longer accepting",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBookingBody())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		returnView := bookingViewFixture(bookingID)
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.InviteeName, response.InviteeName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(nil, errs.Mark(errs.New("no row"), errs.ErrBookingNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with filtered bookings", func() {
		hostID := uuid.New()
		items := []queries.BookingListItem{
			{
				ID:           uuid.New(),
				EventTypeID:  uuid.New(),
				Status:       booking.StatusConfirmed,
				StartTime:    builder.BaseTime.Add(24 * time.Hour),
				EndTime:      builder.BaseTime.Add(24*time.Hour + 30*time.Minute),
				InviteeName:  "Ada Guest",
				InviteeEmail: "guest@example.com",
			},
		}
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.BookingFilter) ([]queries.BookingListItem, error) {
				s.Require().NotNil(filter.HostID)
				s.Equal(hostID, *filter.HostID)
				s.Require().NotNil(filter.Status)
				s.Equal(booking.StatusConfirmed, *filter.Status)
				return items, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?host_id="+hostID.String()+"&status=confirmed", nil)

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 1)
		s.Equal(items[0].ID, response.Bookings[0].ID)
	})

	s.Run("success: empty result serializes as empty array", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil)

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Bookings)
		s.Empty(response.Bookings)
	})

	s.Run("error: 400 Bad Request for invalid host_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?host_id=nope", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})

	s.Run("error: 400 Bad Request for malformed from timestamp", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=yesterday", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, "meeting moved").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reason": "meeting moved"})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, "").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any()).
			Return(errs.Mark(errs.New("cancelled"), errs.ErrAlreadyCancelled)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any()).
			Return(errs.Mark(errs.New("no row"), errs.ErrBookingNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestReschedule
// ================================================================================

func (s *BookingHandlerTestSuite) TestReschedule() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/reschedule"
	newStart := builder.BaseTime.Add(48 * time.Hour)
	body := map[string]any{"start_time": newStart.Format(time.RFC3339)}

	s.Run("success: returns 200 OK with updated booking", func() {
		newSlot, err := booking.NewTimeSlot(newStart, newStart.Add(30*time.Minute))
		s.Require().NoError(err)

		returnView := bookingViewFixture(bookingID)
		returnView.StartTime = newSlot.Start()
		returnView.EndTime = newSlot.End()

		s.mockCommands.EXPECT().Reschedule(gomock.Any(), bookingID, gomock.Cond(newStart.Equal)).
			Return(newSlot, nil).Times(1)
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(newStart.Equal(response.StartTime))
	})

	s.Run("error: 400 Bad Request without start_time", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 Conflict when target slot is taken", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), bookingID, newStart).
			Return(booking.TimeSlot{}, errs.Mark(errs.New("overlap"), errs.ErrSlotNotAvailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitions() {
	bookingID := uuid.New()

	s.Run("success: complete returns 204", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/bookings/"+bookingID.String()+"/complete", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: no-show returns 204", func() {
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/bookings/"+bookingID.String()+"/no-show", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict for invalid transition", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), bookingID).
			Return(errs.Mark(errs.New("state"), errs.ErrInvalidTransition)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/bookings/"+bookingID.String()+"/complete", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "does not allow")
	})
}
