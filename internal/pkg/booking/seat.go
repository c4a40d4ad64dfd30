package booking

import (
	"strconv"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/samber/lo"
)

const (
	SeatAvailable = "available"
	SeatBooked    = "booked"
	SeatSelected  = "selected"
)

// SeatLayout is the cabin grid shown on the seat selection screen.
// Seat numbers are column letter then row, e.g. "C4".
type SeatLayout struct {
	Rows    int
	Columns []string
	Booked  []string
}

func DefaultSeatLayout() SeatLayout {
	return SeatLayout{
		Rows:    6,
		Columns: []string{"A", "B", "C", "D"},
		Booked:  []string{"A1", "B1", "C1", "D2"},
	}
}

func (l SeatLayout) Exists(number string) bool {
	return lo.ContainsBy(l.grid(), func(seat dto.Seat) bool {
		return seat.Number == number
	})
}

func (l SeatLayout) IsBooked(number string) bool {
	return lo.Contains(l.Booked, number)
}

// Seats returns the grid row by row with each seat's status.
func (l SeatLayout) Seats(selected []string) []dto.Seat {
	return lo.Map(l.grid(), func(seat dto.Seat, _ int) dto.Seat {
		switch {
		case l.IsBooked(seat.Number):
			seat.Status = SeatBooked
		case lo.Contains(selected, seat.Number):
			seat.Status = SeatSelected
		default:
			seat.Status = SeatAvailable
		}
		return seat
	})
}

func (l SeatLayout) grid() []dto.Seat {
	seats := make([]dto.Seat, 0, l.Rows*len(l.Columns))
	for row := 1; row <= l.Rows; row++ {
		for _, column := range l.Columns {
			seats = append(seats, dto.Seat{
				Number: column + strconv.Itoa(row),
				Row:    row,
				Column: column,
			})
		}
	}

	return seats
}
