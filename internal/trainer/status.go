package trainer

import "sync"

// Status is a point-in-time view of the trainer progress.
type Status struct {
	Epochs         int       `json:"epochs"`
	EpochsToRun    int       `json:"epochs_to_run"`
	LastEvalResult float64   `json:"last_eval_result"`
	Running        bool      `json:"running"`
	History        []float64 `json:"history"`
}

// Progress returns the done fraction of the epoch budget.
func (s Status) Progress() float64 {
	if s.EpochsToRun == 0 {
		return 0
	}
	return float64(s.Epochs) / float64(s.EpochsToRun)
}

type cell struct {
	lock   *sync.RWMutex
	status Status
}

func newCell() *cell {
	return &cell{
		lock: new(sync.RWMutex),
	}
}

func (c *cell) set(status Status) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.status = status
}

func (c *cell) get() Status {
	c.lock.RLock()
	defer c.lock.RUnlock()
	status := c.status
	status.History = append([]float64(nil), c.status.History...)
	return status
}
