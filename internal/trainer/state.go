package trainer

import (
	"github.com/drakos74/porcino/internal/math/ml"
	"github.com/rs/zerolog/log"
)

// State is the training state owned by the worker.
type State struct {
	Running        bool
	EpochCount     int
	EpochsBudget   int
	TrainingData   []ml.TrainingSample
	EvalData       []ml.TrainingSample
	ReportInterval int
	Eta            float64
	LastEval       float64
}

// Apply applies the signal to the state.
// It returns true if the worker must terminate.
func (s *State) Apply(signal Signal) (kill bool) {
	switch sig := signal.(type) {
	case Toggle:
		s.Running = !s.Running
	case Start:
		s.Running = true
	case Stop:
		s.Running = false
	case SetEpochs:
		if sig.N < 0 {
			log.Warn().Int("epochs", sig.N).Msg("ignoring negative epochs")
			return false
		}
		s.EpochsBudget += sig.N
	case SetData:
		s.TrainingData = sig.Samples
	case SetReportInterval:
		if sig.N < 0 {
			log.Warn().Int("interval", sig.N).Msg("ignoring negative report interval")
			return false
		}
		s.ReportInterval = sig.N
	case EvalData:
		s.EvalData = sig.Samples
	case Kill:
		return true
	default:
		log.Warn().Str("signal", signal.Name()).Msg("unknown signal")
	}
	return false
}

// ShouldReport checks if the current epoch is at the report interval.
func (s *State) ShouldReport() bool {
	return s.ReportInterval != 0 && s.EpochCount%s.ReportInterval == 0
}

// CanTrain checks if there is epoch budget left and the trainer is running.
func (s *State) CanTrain() bool {
	return s.Running && s.EpochCount < s.EpochsBudget
}

// step runs one epoch of full-batch gradient descent.
func step(network *ml.Network, state *State) {
	network.GradientDescent(state.TrainingData, state.Eta)
	state.EpochCount++
}
