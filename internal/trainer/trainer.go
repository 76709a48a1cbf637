package trainer

import (
	"github.com/drakos74/porcino/internal/buffer"
	"github.com/drakos74/porcino/internal/concurrent"
	"github.com/drakos74/porcino/internal/math/ml"
	"github.com/drakos74/porcino/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

const (
	defaultCommandBuffer  = 10
	defaultResponseBuffer = 100
	defaultHistory        = 100
)

type options struct {
	id             string
	commandBuffer  int
	responseBuffer int
	history        int
}

// Option configures a trainer at spawn time.
type Option func(o *options)

// WithID sets the trainer id used in logs and metrics.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithCommandBuffer sets the capacity of the command channel.
func WithCommandBuffer(n int) Option {
	return func(o *options) {
		o.commandBuffer = n
	}
}

// WithResponseBuffer sets the capacity of the response channel.
// Responses that do not fit are dropped.
func WithResponseBuffer(n int) Option {
	return func(o *options) {
		o.responseBuffer = n
	}
}

// WithHistory sets how many evaluation results the status keeps.
func WithHistory(n int) Option {
	return func(o *options) {
		o.history = n
	}
}

type worker struct {
	id        string
	network   *ml.Network
	state     State
	history   *buffer.Buffer
	commands  <-chan Signal
	responses chan<- Response
	status    *cell
}

// Spawn moves the network into a new trainer worker and returns the handle to control it.
// The caller must not touch the network until Wait returns it.
func Spawn(network *ml.Network, eta float64, opts ...Option) *Handle {
	o := &options{
		id:             uuid.New().String(),
		commandBuffer:  defaultCommandBuffer,
		responseBuffer: defaultResponseBuffer,
		history:        defaultHistory,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.commandBuffer < 0 {
		o.commandBuffer = 0
	}
	if o.responseBuffer < 0 {
		o.responseBuffer = 0
	}

	commands := make(chan Signal, o.commandBuffer)
	responses := make(chan Response, o.responseBuffer)
	h := &Handle{
		id:        o.id,
		commands:  commands,
		responses: responses,
		status:    newCell(),
	}
	w := &worker{
		id:        o.id,
		network:   network,
		state:     State{Eta: eta},
		history:   buffer.NewBuffer(o.history),
		commands:  commands,
		responses: responses,
		status:    h.status,
	}

	h.done = concurrent.Async(func() {
		defer close(responses)
		w.run()
		h.network = w.network
	})
	return h
}

func (w *worker) run() {
	metrics.Observer.TrainerStarted()
	signals := make(map[string]struct{})
	defer func() {
		names := make([]string, 0, len(signals))
		for name := range signals {
			names = append(names, name)
		}
		metrics.Observer.TrainerStopped(w.id, names...)
	}()
	log.Info().Str("trainer", w.id).Float64("eta", w.state.Eta).Msg("trainer started")

	var resumed Signal
	for {
		signal := resumed
		resumed = nil
		if signal == nil {
			select {
			case signal = <-w.commands:
			default:
			}
		}

		if signal != nil {
			signals[signal.Name()] = struct{}{}
			metrics.Observer.IncrementSignals(w.id, signal.Name())
			log.Debug().Str("trainer", w.id).Str("signal", signal.Name()).Msg("applying signal")
			if w.state.Apply(signal) {
				w.exit()
				return
			}
			continue
		}

		if w.state.ShouldReport() {
			w.report()
		}

		if w.state.CanTrain() {
			step(w.network, &w.state)
			metrics.Observer.IncrementEpochs(w.id)
			continue
		}

		// idle until the next signal
		w.publish(false)
		resumed = <-w.commands
	}
}

// report evaluates the network on the evaluation set and pushes the results.
func (w *worker) report() {
	if w.state.EvalData != nil {
		values := w.network.Evaluate(w.state.EvalData)
		w.state.LastEval = floats.Dot(values, values)
		w.history.Push(w.state.LastEval)
		metrics.Observer.SetEval(w.id, w.state.LastEval)
		w.push(EvalResult{
			Epoch:  w.state.EpochCount,
			Values: values,
			Total:  w.state.LastEval,
		})
	}
	w.push(Epochs{
		Done:   w.state.EpochCount,
		Budget: w.state.EpochsBudget,
	})
	w.publish(w.state.Running)
}

func (w *worker) publish(running bool) {
	w.status.set(Status{
		Epochs:         w.state.EpochCount,
		EpochsToRun:    w.state.EpochsBudget,
		LastEvalResult: w.state.LastEval,
		Running:        running,
		History:        w.history.Get(),
	})
}

func (w *worker) push(response Response) {
	select {
	case w.responses <- response:
	default:
		metrics.Observer.IncrementDropped(w.id)
		log.Warn().
			Str("trainer", w.id).
			Str("response", response.String()).
			Msg("response channel full, dropping response")
	}
}

func (w *worker) exit() {
	w.publish(false)
	log.Info().
		Str("trainer", w.id).
		Int("epochs", w.state.EpochCount).
		Int("budget", w.state.EpochsBudget).
		Msg("trainer stopped")
}
