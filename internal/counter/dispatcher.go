package counter

import (
	"context"
	"log"
)

// Incrementer is satisfied by the diploma repository.
type Incrementer interface {
	IncrementSearchCount(ctx context.Context, decisionID uint) error
}

// Dispatcher bumps graduation-decision search counters off the request
// path. A lookup must never fail or stall because its counter write
// did, so failures are logged and dropped.
type Dispatcher struct {
	inc   Incrementer
	queue chan uint
}

func NewDispatcher(inc Incrementer) *Dispatcher {
	d := &Dispatcher{
		inc:   inc,
		queue: make(chan uint, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for decisionID := range d.queue {
		if err := d.inc.IncrementSearchCount(context.Background(), decisionID); err != nil {
			log.Println("search count error:", err)
		}
	}
}

func (d *Dispatcher) Bump(decisionID uint) {
	select {
	case d.queue <- decisionID:
	default:
		log.Println("search count queue full, dropping increment")
	}
}
