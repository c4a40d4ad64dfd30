package booking

import (
	"testing"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func TestSeatLayout_Seats(t *testing.T) {
	layout := DefaultSeatLayout()

	seats := layout.Seats([]string{"B2", "A1"})
	assert.Len(t, seats, 24)
	assert.Equal(t, dto.Seat{Number: "A1", Row: 1, Column: "A", Status: SeatBooked}, seats[0])
	assert.Equal(t, dto.Seat{Number: "B2", Row: 2, Column: "B", Status: SeatSelected}, seats[5])
	assert.Equal(t, dto.Seat{Number: "D6", Row: 6, Column: "D", Status: SeatAvailable}, seats[23])

	booked := 0
	for _, seat := range seats {
		if seat.Status == SeatBooked {
			booked++
		}
	}
	assert.Equal(t, 4, booked)
}

func TestSeatLayout_Exists(t *testing.T) {
	layout := DefaultSeatLayout()

	assert.True(t, layout.Exists("A1"))
	assert.True(t, layout.Exists("D6"))
	assert.False(t, layout.Exists("E1"))
	assert.False(t, layout.Exists("A7"))
	assert.False(t, layout.Exists(""))
}

func TestRandomTickets(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, `^TK[1-9]\d{3}$`, RandomTickets.Next())
	}
}

func TestView_ToDTO(t *testing.T) {
	f := dto.Flight{Number: "AZ324", Date: "2024-07-07"}
	passengers := []dto.Passenger{{Name: "Traveller 1", SeatNumber: "A2"}}

	got := BoardingView(f, passengers).ToDTO()

	assert.Equal(t, "boarding", got.Kind)
	assert.Equal(t, f, *got.Flight)
	assert.Equal(t, passengers, got.Passengers)

	assert.Nil(t, MainView().ToDTO().Flight)
}
