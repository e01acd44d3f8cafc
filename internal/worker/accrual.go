package worker

import (
	"context"
	"log"
	"time"

	"vestra-backend/internal/usecase/accrual"
)

// AccrualWorker drives the accrual engine on a fixed cadence. The cadence
// is independent of and much shorter than any investment's cycle; "due" is
// a selection filter inside the engine, not a per-investment schedule.
type AccrualWorker struct {
	engine   *accrual.Usecase
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewAccrualWorker(engine *accrual.Usecase, interval time.Duration) *AccrualWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &AccrualWorker{
		engine:   engine,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start launches the tick loop, running once immediately.
func (w *AccrualWorker) Start() {
	log.Printf("accrual worker started (interval: %v)", w.interval)
	go w.run()
}

func (w *AccrualWorker) run() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.tick()
	for {
		select {
		case <-ticker.C:
			w.tick()
		case <-w.ctx.Done():
			log.Println("accrual worker stopped")
			return
		}
	}
}

func (w *AccrualWorker) tick() {
	report, err := w.engine.Tick(w.ctx)
	if err != nil {
		log.Printf("accrual tick failed: %v", err)
		return
	}
	if report.Due > 0 || report.Failed > 0 {
		log.Printf("accrual tick: due=%d flushed=%d skipped=%d completed=%d accrued=%d failed=%d",
			report.Due, report.Flushed, report.Skipped, report.Completed, report.Accrued, report.Failed)
	}
}

// Stop cancels the loop and waits for the in-flight tick to return.
func (w *AccrualWorker) Stop() {
	w.cancel()
	<-w.done
}
