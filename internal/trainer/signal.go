package trainer

import (
	"fmt"

	"github.com/drakos74/porcino/internal/math/ml"
)

// Signal is a command sent from the caller to the trainer worker.
type Signal interface {
	Name() string
}

// Toggle flips the running flag of the trainer.
type Toggle struct{}

// Start sets the trainer to running.
type Start struct{}

// Stop pauses the trainer, keeping the worker alive.
type Stop struct{}

// SetEpochs adds N epochs to the budget of the trainer.
type SetEpochs struct {
	N int
}

// SetData replaces the training set.
type SetData struct {
	Samples []ml.TrainingSample
}

// SetReportInterval replaces the evaluation interval.
// Zero disables periodic evaluation.
type SetReportInterval struct {
	N int
}

// EvalData replaces the evaluation set.
// A nil set disables evaluation.
type EvalData struct {
	Samples []ml.TrainingSample
}

// Kill terminates the worker.
type Kill struct{}

func (Toggle) Name() string            { return "toggle" }
func (Start) Name() string             { return "start" }
func (Stop) Name() string              { return "stop" }
func (SetEpochs) Name() string         { return "set-epochs" }
func (SetData) Name() string           { return "set-data" }
func (SetReportInterval) Name() string { return "set-report-interval" }
func (EvalData) Name() string          { return "eval-data" }
func (Kill) Name() string              { return "kill" }

// Response is a message sent from the trainer worker back to the caller.
type Response interface {
	fmt.Stringer
}

// Epochs reports the progress of the trainer.
type Epochs struct {
	Done   int
	Budget int
}

func (e Epochs) String() string {
	return fmt.Sprintf("epochs %d/%d", e.Done, e.Budget)
}

// EvalResult reports an evaluation of the network on the evaluation set.
// Values holds the SSE of each sample, Total the sum of their squares.
type EvalResult struct {
	Epoch  int
	Values []float64
	Total  float64
}

func (e EvalResult) String() string {
	return fmt.Sprintf("eval at %d: %.6f over %d samples", e.Epoch, e.Total, len(e.Values))
}
