package booking

import (
	"fmt"
	"math/rand"
)

// TicketGenerator hands out ticket numbers for new passengers.
// Numbers are not required to be unique.
type TicketGenerator interface {
	Next() string
}

type TicketGeneratorFunc func() string

func (f TicketGeneratorFunc) Next() string {
	return f()
}

// RandomTickets generates "TK" followed by four pseudo-random digits.
var RandomTickets TicketGenerator = TicketGeneratorFunc(func() string {
	return fmt.Sprintf("TK%d", 1000+rand.Intn(9000))
})
