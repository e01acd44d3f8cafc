package notify

import (
	"log"
	"sync"
	"time"

	"vestra-backend/internal/domain/currency"
)

type Kind string

const (
	KindInvestmentCreated   Kind = "investment.created"
	KindInvestmentCompleted Kind = "investment.completed"
	KindInvestmentCancelled Kind = "investment.cancelled"
	KindROIFlushed          Kind = "roi.flushed"
	KindWithdrawalRequested Kind = "withdrawal.requested"
	KindWithdrawalSettled   Kind = "withdrawal.settled"
	KindBonusUnlocked       Kind = "bonus.unlocked"
)

type Event struct {
	Kind      Kind
	UserID    string
	Reference string // investment/withdrawal public ID
	Amount    float64
	Currency  currency.Currency
	Message   string
	At        time.Time
}

// Sink is the fire-and-forget side channel the financial paths publish to.
// Publish must never block and its failures must never reach the caller.
type Sink interface {
	Publish(e Event)
}

// LogSink drains events on a background goroutine and hands them to the
// (external) delivery channel; here that is the process log. A saturated
// buffer drops the event rather than stall a financial operation.
type LogSink struct {
	ch   chan Event
	done chan struct{}
	once sync.Once
}

func NewLogSink(buffer int) *LogSink {
	if buffer <= 0 {
		buffer = 256
	}
	return &LogSink{
		ch:   make(chan Event, buffer),
		done: make(chan struct{}),
	}
}

func (s *LogSink) Start() {
	go func() {
		defer close(s.done)
		for e := range s.ch {
			log.Printf("notify: kind=%s user=%s ref=%s amount=%.8f %s msg=%q",
				e.Kind, e.UserID, e.Reference, e.Amount, e.Currency, e.Message)
		}
	}()
}

func (s *LogSink) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	select {
	case s.ch <- e:
	default:
		log.Printf("notify: buffer full, dropping event kind=%s user=%s", e.Kind, e.UserID)
	}
}

// Stop closes the intake and waits for the drain to finish.
func (s *LogSink) Stop() {
	s.once.Do(func() { close(s.ch) })
	<-s.done
}
