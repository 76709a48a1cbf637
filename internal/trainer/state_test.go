package trainer

import (
	"testing"

	"github.com/drakos74/porcino/internal/math/ml"
	"github.com/stretchr/testify/assert"
)

func TestState_Apply(t *testing.T) {

	samples := []ml.TrainingSample{ml.NewSample([]float64{1}, []float64{0})}

	type test struct {
		signals []Signal
		state   State
		kill    bool
	}

	tests := map[string]test{
		"toggle": {
			signals: []Signal{Toggle{}},
			state:   State{Running: true},
		},
		"toggle-twice": {
			signals: []Signal{Toggle{}, Toggle{}},
			state:   State{},
		},
		"start-stop": {
			signals: []Signal{Start{}, Start{}, Stop{}},
			state:   State{},
		},
		"epochs-are-cumulative": {
			signals: []Signal{SetEpochs{N: 5}, SetEpochs{N: 3}},
			state:   State{EpochsBudget: 8},
		},
		"negative-epochs": {
			signals: []Signal{SetEpochs{N: 5}, SetEpochs{N: -3}},
			state:   State{EpochsBudget: 5},
		},
		"data": {
			signals: []Signal{SetData{Samples: samples}, EvalData{Samples: samples}},
			state:   State{TrainingData: samples, EvalData: samples},
		},
		"eval-data-none": {
			signals: []Signal{EvalData{Samples: samples}, EvalData{}},
			state:   State{},
		},
		"report-interval": {
			signals: []Signal{SetReportInterval{N: 10}, SetReportInterval{N: 5}},
			state:   State{ReportInterval: 5},
		},
		"kill": {
			signals: []Signal{Toggle{}, Kill{}},
			state:   State{Running: true},
			kill:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			state := State{}
			var kill bool
			for _, signal := range tt.signals {
				kill = state.Apply(signal)
			}
			assert.Equal(t, tt.state, state)
			assert.Equal(t, tt.kill, kill)
		})
	}
}

func TestState_ShouldReport(t *testing.T) {
	state := State{}
	assert.False(t, state.ShouldReport())

	state.ReportInterval = 10
	for epoch := 0; epoch <= 30; epoch++ {
		state.EpochCount = epoch
		assert.Equal(t, epoch%10 == 0, state.ShouldReport(), "epoch %d", epoch)
	}
}

func TestState_CanTrain(t *testing.T) {
	state := State{EpochsBudget: 2}
	assert.False(t, state.CanTrain())
	state.Running = true
	assert.True(t, state.CanTrain())
	state.EpochCount = 2
	assert.False(t, state.CanTrain())
}

func TestStatus_Progress(t *testing.T) {
	assert.Equal(t, 0.0, Status{}.Progress())
	assert.Equal(t, 0.25, Status{Epochs: 2, EpochsToRun: 8}.Progress())
}
