package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catcare/internal/models/response_models"
)

func TestProcessMessageMatchesAppetiteLoss(t *testing.T) {
	advice := newSeededAdvice(1, EscalateAlways)

	resp := advice.ProcessMessage("My cat is not eating since yesterday")
	require.Contains(t, []int{87, 91}, resp.Confidence)
	require.Equal(t, response_models.UrgencyMedium, resp.Urgency)
	require.False(t, resp.RequiresDoctor)
	require.NotEmpty(t, resp.Recommendations)
}

func TestProcessMessageIsCaseInsensitive(t *testing.T) {
	advice := newSeededAdvice(1, EscalateAlways)

	resp := advice.ProcessMessage("SHE WON'T EAT ANYTHING")
	require.Contains(t, []int{87, 91}, resp.Confidence)
}

func TestProcessMessageTableOrderWins(t *testing.T) {
	advice := newSeededAdvice(1, EscalateAlways)

	// Mentions both vomiting and breathing; the vomiting entry comes first.
	resp := advice.ProcessMessage("vomiting all night and heavy breathing")
	require.Contains(t, []int{93, 89}, resp.Confidence)
}

func TestUnmatchedInputEscalatesToRosterDoctor(t *testing.T) {
	advice := newSeededAdvice(1, EscalateAlways)

	resp := advice.ProcessMessage("qwerty asdf zxcv")
	require.True(t, resp.RequiresDoctor)
	require.Equal(t, 60, resp.Confidence)
	require.Equal(t, response_models.UrgencyMedium, resp.Urgency)
	require.NotNil(t, resp.DoctorInfo)

	rosterNames := make(map[string]bool, len(availableDoctors))
	for _, d := range availableDoctors {
		rosterNames[d.Name] = true
	}
	require.True(t, rosterNames[resp.DoctorInfo.Name])
}

func TestSeededResponderIsDeterministic(t *testing.T) {
	inputs := []string{
		"my cat is not eating",
		"she keeps vomiting",
		"something about whiskers",
		"hiding under the bed",
		"more nonsense here",
	}

	a := newSeededAdvice(42, EscalateAlways)
	b := newSeededAdvice(42, EscalateAlways)
	for _, input := range inputs {
		require.Equal(t, a.ProcessMessage(input), b.ProcessMessage(input))
	}
}

func TestSometimesPolicyMixesEscalationAndDefaults(t *testing.T) {
	advice := newSeededAdvice(7, EscalateSometimes)

	var escalated, plain int
	for i := 0; i < 200; i++ {
		resp := advice.ProcessMessage("completely unrelated gibberish")
		if resp.RequiresDoctor {
			escalated++
			require.NotNil(t, resp.DoctorInfo)
		} else {
			plain++
			require.Contains(t, []int{75, 78}, resp.Confidence)
			require.Nil(t, resp.DoctorInfo)
		}
	}
	require.Positive(t, escalated)
	require.Positive(t, plain)
}

func TestSimulateThinkingPlaysEveryStep(t *testing.T) {
	advice := newSeededAdvice(1, EscalateAlways)

	var seen []string
	require.NoError(t, advice.SimulateThinking(context.Background(), func(message string) {
		seen = append(seen, message)
	}))

	steps := advice.ThinkingSteps()
	require.Len(t, seen, len(steps))
	for i, step := range steps {
		require.Equal(t, step.Message, seen[i])
	}
}

func TestSimulateDoctorSearchPlaysEveryStep(t *testing.T) {
	advice := newSeededAdvice(1, EscalateAlways)

	var seen []string
	require.NoError(t, advice.SimulateDoctorSearch(context.Background(), func(message string) {
		seen = append(seen, message)
	}))
	require.Len(t, seen, len(advice.DoctorSearchSteps()))
}

func TestSimulateThinkingStopsOnCancelledContext(t *testing.T) {
	advice := newSeededAdvice(1, EscalateAlways)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var seen []string
	err := advice.SimulateThinking(ctx, func(message string) {
		seen = append(seen, message)
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, seen)
}

func TestSimulateThinkingStopsMidSequence(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	advice := NewAdviceService(AdviceConfig{
		Rand: rand.New(rand.NewSource(1)),
		Sleep: func(ctx context.Context, _ time.Duration) error {
			calls++
			if calls == 2 {
				cancel()
			}
			return ctx.Err()
		},
	}, zap.NewNop())

	var seen []string
	err := advice.SimulateThinking(ctx, func(message string) {
		seen = append(seen, message)
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, seen, 2)
}
