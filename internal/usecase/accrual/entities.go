package accrual

// TickReport summarizes one pass of the accrual engine; it is surfaced by
// the manual trigger endpoint and logged by the scheduler.
type TickReport struct {
	Due       int `json:"due"`
	Flushed   int `json:"flushed"`
	Skipped   int `json:"skipped"`
	Completed int `json:"completed"`
	Accrued   int `json:"accrued"`
	Failed    int `json:"failed"`
}

type flushOutcome int

const (
	outcomeSkipped flushOutcome = iota
	outcomeFlushed
	outcomeAdvanced // cycle advanced without a wallet credit (duplicate or empty bucket)
)
