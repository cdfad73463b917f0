//go:build unit

package eventtype_test

import (
	"testing"
	"time"

	"bookwise/internal/domain/eventtype"
	"bookwise/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventType(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		et, err := builder.NewEventTypeBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, et)

		assert.NotEqual(t, uuid.Nil, et.ID())
		assert.True(t, et.IsActive())
		assert.Equal(t, 30*time.Minute, et.Duration())
		assert.Zero(t, et.BufferBefore())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := builder.NewEventTypeBuilder().With(func(b *builder.EventTypeBuilder) { b.Name = "  " }).BuildDomain()
		require.ErrorIs(t, err, eventtype.ErrEmptyName)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		_, err := builder.NewEventTypeBuilder().With(func(b *builder.EventTypeBuilder) { b.Duration = 0 }).BuildDomain()
		require.ErrorIs(t, err, eventtype.ErrInvalidDuration)
	})
}

func TestEventTypeSetters(t *testing.T) {
	et, err := builder.NewEventTypeBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("negative buffer rejected", func(t *testing.T) {
		require.ErrorIs(t, et.SetBuffers(-time.Minute, 0), eventtype.ErrNegativeBuffer)
	})

	t.Run("buffers applied", func(t *testing.T) {
		require.NoError(t, et.SetBuffers(5*time.Minute, 10*time.Minute))
		assert.Equal(t, 5*time.Minute, et.BufferBefore())
		assert.Equal(t, 10*time.Minute, et.BufferAfter())
	})

	t.Run("zero per-day limit rejected", func(t *testing.T) {
		zero := 0
		err := et.SetLimits(eventtype.BookingLimits{MaxPerDay: &zero})
		require.ErrorIs(t, err, eventtype.ErrInvalidLimit)
	})

	t.Run("limits applied", func(t *testing.T) {
		two := 2
		require.NoError(t, et.SetLimits(eventtype.BookingLimits{MinNoticeHours: 4, MaxPerDay: &two}))
		assert.Equal(t, 4*time.Hour, et.Limits().MinNotice())
	})

	t.Run("deactivate is soft", func(t *testing.T) {
		et.Deactivate()
		assert.False(t, et.IsActive())
		assert.NotEqual(t, uuid.Nil, et.ID())
	})
}

func TestEventLocationValidate(t *testing.T) {
	cases := []struct {
		name     string
		location eventtype.EventLocation
		wantErr  bool
	}{
		{
			name:     "in person with address",
			location: eventtype.EventLocation{Kind: eventtype.LocationInPerson, Address: "12 Main St"},
		},
		{
			name:     "in person without address",
			location: eventtype.EventLocation{Kind: eventtype.LocationInPerson},
			wantErr:  true,
		},
		{
			name:     "phone",
			location: eventtype.EventLocation{Kind: eventtype.LocationPhone},
		},
		{
			name:     "video with known provider",
			location: eventtype.EventLocation{Kind: eventtype.LocationVideo, Provider: eventtype.VideoZoom},
		},
		{
			name:     "video custom url missing",
			location: eventtype.EventLocation{Kind: eventtype.LocationVideo, Provider: eventtype.VideoCustomURL},
			wantErr:  true,
		},
		{
			name:     "video custom url present",
			location: eventtype.EventLocation{Kind: eventtype.LocationVideo, Provider: eventtype.VideoCustomURL, CustomURL: "https://meet.example.com/x"},
		},
		{
			name:     "custom instructions",
			location: eventtype.EventLocation{Kind: eventtype.LocationCustom, Instructions: "Ring the bell"},
		},
		{
			name:     "unknown kind",
			location: eventtype.EventLocation{Kind: "teleport"},
			wantErr:  true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.location.Validate()
			if c.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
