//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bookwise/internal/domain/booking"
	"bookwise/internal/domain/schedule"
	"bookwise/internal/pkg/clock"
	"bookwise/internal/pkg/config"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/queries"
	"bookwise/tests/common/builder"
	queriesmock "bookwise/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// The fixture week: builder.BaseTime is Thursday 2026-03-05 12:00 UTC and the
// default schedule is Monday through Friday 09:00-17:00 UTC.
var (
	thursday = schedule.NewDate(2026, time.March, 5)
	friday   = schedule.NewDate(2026, time.March, 6)
	saturday = schedule.NewDate(2026, time.March, 7)
)

type SlotQueriesTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockEventTypes *queriesmock.MockEventTypeReadStore
	mockSchedules  *queriesmock.MockScheduleReadStore
	mockBookings   *queriesmock.MockActiveBookingReadStore
	clock          *clock.MockClock
	sut            queries.SlotQueries
}

func (s *SlotQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockEventTypes = queriesmock.NewMockEventTypeReadStore(s.mockCtrl)
	s.mockSchedules = queriesmock.NewMockScheduleReadStore(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockActiveBookingReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(builder.BaseTime)
	s.sut = queries.NewSlotQueries(
		s.mockEventTypes,
		s.mockSchedules,
		s.mockBookings,
		s.clock,
		config.SchedulingConfig{MaxListDays: 31},
	)
}

func (s *SlotQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotQueriesSuite(t *testing.T) {
	suite.Run(t, new(SlotQueriesTestSuite))
}

func (s *SlotQueriesTestSuite) eventTypeFixture(scheduleID uuid.UUID) *queries.EventTypeView {
	id := scheduleID
	return &queries.EventTypeView{
		ID:         uuid.New(),
		HostID:     uuid.New(),
		Name:       "30 minute intro call",
		Duration:   30,
		IsActive:   true,
		ScheduleID: &id,
	}
}

func (s *SlotQueriesTestSuite) buildSchedule() *schedule.Schedule {
	sched, err := builder.NewScheduleBuilder().BuildDomain()
	s.Require().NoError(err)
	return sched
}

func (s *SlotQueriesTestSuite) expectLoads(et *queries.EventTypeView, sched *schedule.Schedule, existing []booking.ExistingBooking) {
	s.mockEventTypes.EXPECT().FindByID(gomock.Any(), et.ID).Return(et, nil).Times(1)
	s.mockSchedules.EXPECT().FindByID(gomock.Any(), *et.ScheduleID).Return(sched, nil).Times(1)
	s.mockBookings.EXPECT().ActiveByHost(gomock.Any(), et.HostID, gomock.Any(), gomock.Any()).
		Return(existing, nil).Times(1)
}

func slotAt(date schedule.Date, hour, minute int) time.Time {
	return time.Date(date.Year, date.Month, date.Day, hour, minute, 0, 0, time.UTC)
}

func (s *SlotQueriesTestSuite) TestFullOpenDay() {
	sched := s.buildSchedule()
	et := s.eventTypeFixture(sched.ID())
	s.expectLoads(et, sched, nil)

	got, err := s.sut.ListAvailableSlots(context.Background(), et.ID, friday, friday)

	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(friday, got[0].Date)
	// 09:00-17:00 at 30 minute strides.
	s.Require().Len(got[0].Slots, 16)
	s.True(slotAt(friday, 9, 0).Equal(got[0].Slots[0].Start))
	s.True(slotAt(friday, 9, 30).Equal(got[0].Slots[0].End))
	s.True(slotAt(friday, 16, 30).Equal(got[0].Slots[15].Start))
	s.True(slotAt(friday, 17, 0).Equal(got[0].Slots[15].End))
}

func (s *SlotQueriesTestSuite) TestExistingBookingRemovesSlot() {
	sched := s.buildSchedule()
	et := s.eventTypeFixture(sched.ID())

	taken, err := booking.NewTimeSlot(slotAt(friday, 10, 0), slotAt(friday, 10, 30))
	s.Require().NoError(err)
	existing := []booking.ExistingBooking{{
		BookingID:   uuid.New(),
		EventTypeID: et.ID,
		Slot:        taken,
	}}
	s.expectLoads(et, sched, existing)

	got, err := s.sut.ListAvailableSlots(context.Background(), et.ID, friday, friday)

	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Len(got[0].Slots, 15)
	for _, slot := range got[0].Slots {
		s.False(slot.Start.Equal(taken.Start()), "taken slot must not be offered")
	}
}

func (s *SlotQueriesTestSuite) TestBuffersShrinkAndShiftSlots() {
	sched := s.buildSchedule()
	et := s.eventTypeFixture(sched.ID())
	et.BufferBefore = 15
	et.BufferAfter = 15
	s.expectLoads(et, sched, nil)

	got, err := s.sut.ListAvailableSlots(context.Background(), et.ID, friday, friday)

	s.Require().NoError(err)
	s.Require().Len(got, 1)
	// Each 30 minute meeting now claims a 60 minute padded block, so the last
	// cursor that still fits before 17:00 is 16:00 and slots start 15 minutes
	// into each block.
	s.Require().Len(got[0].Slots, 15)
	s.True(slotAt(friday, 9, 15).Equal(got[0].Slots[0].Start))
	s.True(slotAt(friday, 16, 15).Equal(got[0].Slots[14].Start))
}

func (s *SlotQueriesTestSuite) TestPastSlotsOnCurrentDayAreHidden() {
	sched := s.buildSchedule()
	et := s.eventTypeFixture(sched.ID())
	s.expectLoads(et, sched, nil)

	got, err := s.sut.ListAvailableSlots(context.Background(), et.ID, thursday, thursday)

	s.Require().NoError(err)
	s.Require().Len(got, 1)
	// Now is 12:00, so the morning is gone and the 12:00 slot is the first
	// one still bookable.
	s.Require().Len(got[0].Slots, 10)
	s.True(slotAt(thursday, 12, 0).Equal(got[0].Slots[0].Start))
}

func (s *SlotQueriesTestSuite) TestMinNoticeTrimsNearSlots() {
	sched := s.buildSchedule()
	et := s.eventTypeFixture(sched.ID())
	et.Limits.MinNoticeHours = 26 // now + 26h lands at Friday 14:00
	s.expectLoads(et, sched, nil)

	got, err := s.sut.ListAvailableSlots(context.Background(), et.ID, friday, friday)

	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Require().Len(got[0].Slots, 6)
	s.True(slotAt(friday, 14, 0).Equal(got[0].Slots[0].Start))
}

func (s *SlotQueriesTestSuite) TestDailyLimitBlocksWholeDay() {
	sched := s.buildSchedule()
	et := s.eventTypeFixture(sched.ID())
	one := 1
	et.Limits.MaxPerDay = &one

	taken, err := booking.NewTimeSlot(slotAt(friday, 10, 0), slotAt(friday, 10, 30))
	s.Require().NoError(err)
	existing := []booking.ExistingBooking{{
		BookingID:   uuid.New(),
		EventTypeID: et.ID,
		Slot:        taken,
	}}
	s.expectLoads(et, sched, existing)

	got, err := s.sut.ListAvailableSlots(context.Background(), et.ID, friday, friday)

	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Empty(got[0].Slots)
}

func (s *SlotQueriesTestSuite) TestClosedDayReturnedEmpty() {
	sched := s.buildSchedule()
	et := s.eventTypeFixture(sched.ID())
	s.expectLoads(et, sched, nil)

	got, err := s.sut.ListAvailableSlots(context.Background(), et.ID, friday, saturday)

	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(friday, got[0].Date)
	s.Len(got[0].Slots, 16)
	s.Equal(saturday, got[1].Date)
	s.Empty(got[1].Slots)
}

func (s *SlotQueriesTestSuite) TestInactiveEventType() {
	sched := s.buildSchedule()
	et := s.eventTypeFixture(sched.ID())
	et.IsActive = false
	s.mockEventTypes.EXPECT().FindByID(gomock.Any(), et.ID).Return(et, nil).Times(1)

	_, err := s.sut.ListAvailableSlots(context.Background(), et.ID, friday, friday)

	s.Require().ErrorIs(err, errs.ErrEventTypeInactive)
}

func (s *SlotQueriesTestSuite) TestEventTypeWithoutSchedule() {
	et := s.eventTypeFixture(uuid.New())
	et.ScheduleID = nil
	s.mockEventTypes.EXPECT().FindByID(gomock.Any(), et.ID).Return(et, nil).Times(1)

	_, err := s.sut.ListAvailableSlots(context.Background(), et.ID, friday, friday)

	s.Require().ErrorIs(err, errs.ErrScheduleNotFound)
}

func (s *SlotQueriesTestSuite) TestRangeValidation() {
	s.Run("end before start", func() {
		_, err := s.sut.ListAvailableSlots(context.Background(), uuid.New(), friday, thursday)
		s.Require().ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("range beyond the day cap", func() {
		_, err := s.sut.ListAvailableSlots(context.Background(), uuid.New(), friday, friday.AddDays(40))
		s.Require().ErrorIs(err, errs.ErrDomainValidation)
	})
}
