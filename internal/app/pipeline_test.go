package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
)

// recordingPipeline appends each stage it reaches to stages and fails at fail.
func recordingPipeline(stages *[]Stage, fail Stage) Pipeline[int, int] {
	step := func(s Stage) error {
		*stages = append(*stages, s)
		if s == fail {
			return domain.NewValidationError("records", string(s)+" rejected")
		}

		return nil
	}

	return Pipeline[int, int]{
		Name:     "load",
		Validate: func(context.Context, int) error { return step(StageValidate) },
		Perform: func(_ context.Context, in int) (int, error) {
			return in * 2, step(StagePerform)
		},
		Verify: func(context.Context, int, int) error { return step(StageVerify) },
	}
}

func TestPipeline_Run(t *testing.T) {
	tests := []struct {
		fail   Stage
		stages []Stage
	}{
		{fail: "", stages: []Stage{StageValidate, StagePerform, StageVerify}},
		{fail: StageValidate, stages: []Stage{StageValidate}},
		{fail: StagePerform, stages: []Stage{StageValidate, StagePerform}},
		{fail: StageVerify, stages: []Stage{StageValidate, StagePerform, StageVerify}},
	}

	for _, tt := range tests {
		t.Run("fail at "+string(tt.fail), func(t *testing.T) {
			var stages []Stage

			out, err := recordingPipeline(&stages, tt.fail).Run(t.Context(), discardLogger(), 21)

			assert.Equal(t, tt.stages, stages)

			if tt.fail == "" {
				require.NoError(t, err)
				assert.Equal(t, 42, out)

				return
			}

			require.Error(t, err)
			assert.Zero(t, out)
			assert.True(t, domain.IsValidation(err), "cause kind survives")
			assert.Equal(t, "load: "+string(tt.fail)+" failed: validation failed for records: "+string(tt.fail)+" rejected", err.Error())

			stage, ok := FailedStage(err)
			require.True(t, ok)
			assert.Equal(t, tt.fail, stage)
		})
	}
}

func TestPipeline_OptionalStages(t *testing.T) {
	p := Pipeline[string, int]{
		Name:    "count",
		Perform: func(_ context.Context, in string) (int, error) { return len(in), nil },
	}

	out, err := p.Run(context.Background(), nil, "0028-0836")

	require.NoError(t, err)
	assert.Equal(t, 9, out)
}

func TestPipeline_WithoutPerform(t *testing.T) {
	_, err := Pipeline[int, int]{Name: "empty"}.Run(t.Context(), discardLogger(), 1)

	stage, ok := FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, StagePerform, stage)
}

func TestFailedStage_PlainError(t *testing.T) {
	_, ok := FailedStage(errors.New("plain"))
	assert.False(t, ok)
}
