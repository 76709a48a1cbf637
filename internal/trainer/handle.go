package trainer

import (
	"errors"

	"github.com/drakos74/porcino/internal/math/ml"
)

var (
	// ErrWorkerGone is returned when sending to a trainer that has exited.
	ErrWorkerGone = errors.New("trainer worker is gone")
	// ErrNilSignal is returned when sending a nil signal.
	ErrNilSignal = errors.New("signal cannot be nil")
)

// Handle is the caller side of a trainer worker.
type Handle struct {
	id        string
	commands  chan<- Signal
	responses <-chan Response
	status    *cell
	done      <-chan struct{}
	network   *ml.Network
}

// ID returns the trainer id.
func (h *Handle) ID() string {
	return h.id
}

// Send sends the signal to the worker.
// It blocks only while the command buffer is full and the worker is alive.
func (h *Handle) Send(signal Signal) error {
	if signal == nil {
		return ErrNilSignal
	}
	select {
	case <-h.done:
		return ErrWorkerGone
	default:
	}
	select {
	case h.commands <- signal:
		return nil
	case <-h.done:
		return ErrWorkerGone
	}
}

// Poll returns the next response if one is available.
func (h *Handle) Poll() (Response, bool) {
	select {
	case r, ok := <-h.responses:
		return r, ok
	default:
		return nil, false
	}
}

// Responses returns the response channel.
// It is closed when the worker exits.
func (h *Handle) Responses() <-chan Response {
	return h.responses
}

// Status returns the last published status.
func (h *Handle) Status() Status {
	return h.status.get()
}

// Done is closed when the worker exits.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the worker exits and returns the trained network.
func (h *Handle) Wait() *ml.Network {
	<-h.done
	return h.network
}
