package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"catcare/internal/models/response_models"
)

// EscalationPolicy controls what happens when no situation matches the
// input. The observed behavior always refers the user to a doctor;
// EscalateSometimes restores the dormant probabilistic branch.
type EscalationPolicy string

const (
	EscalateAlways    EscalationPolicy = "always"
	EscalateSometimes EscalationPolicy = "sometimes"
)

// escalationProbability applies under EscalateSometimes.
const escalationProbability = 0.3

type AdviceServiceInterface interface {
	// ProcessMessage maps free-text input to a canned advice record.
	// Matching is case-insensitive substring search in table order; the
	// first situation with any keyword present wins.
	ProcessMessage(message string) response_models.AIResponse
	ThinkingSteps() []response_models.ThinkingStep
	DoctorSearchSteps() []response_models.ThinkingStep
	// SimulateThinking plays the multi-stage "reasoning" animation: onStep is
	// invoked with each step's message, then the step's duration elapses.
	// Cancelling ctx stops the sequence between steps.
	SimulateThinking(ctx context.Context, onStep func(message string)) error
	SimulateDoctorSearch(ctx context.Context, onStep func(message string)) error
}

// AdviceConfig tunes the responder. Zero values give production behavior:
// always escalate on no match, time-seeded randomness, real delays.
type AdviceConfig struct {
	Policy EscalationPolicy
	// Rand pins response selection for deterministic tests.
	Rand *rand.Rand
	// Sleep replaces the per-step delay; tests stub it out.
	Sleep func(ctx context.Context, d time.Duration) error
}

type AdviceService struct {
	policy EscalationPolicy
	sleep  func(ctx context.Context, d time.Duration) error
	log    *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewAdviceService(cfg AdviceConfig, log *zap.Logger) AdviceServiceInterface {
	policy := cfg.Policy
	if policy == "" {
		policy = EscalateAlways
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = sleepWithContext
	}
	return &AdviceService{policy: policy, sleep: sleep, log: log, rng: rng}
}

func (a *AdviceService) ProcessMessage(message string) response_models.AIResponse {
	lower := strings.ToLower(message)

	for _, sit := range situations {
		for _, keyword := range sit.keywords {
			if strings.Contains(lower, keyword) {
				resp := sit.responses[a.intn(len(sit.responses))]
				a.log.Debug("situation matched",
					zap.String("situation", sit.name), zap.String("keyword", keyword))
				return resp
			}
		}
	}

	if a.policy == EscalateAlways || a.float64() < escalationProbability {
		return a.escalate()
	}
	return defaultResponses[a.intn(len(defaultResponses))]
}

// escalate attaches a uniformly chosen doctor from the fixed roster to the
// requires-doctor default response.
func (a *AdviceService) escalate() response_models.AIResponse {
	resp := doctorEscalationResponse
	doctor := availableDoctors[a.intn(len(availableDoctors))]
	resp.DoctorInfo = &doctor
	a.log.Debug("no situation matched, escalating to doctor",
		zap.String("doctor", doctor.Name))
	return resp
}

func (a *AdviceService) ThinkingSteps() []response_models.ThinkingStep {
	steps := make([]response_models.ThinkingStep, len(thinkingSteps))
	copy(steps, thinkingSteps)
	return steps
}

func (a *AdviceService) DoctorSearchSteps() []response_models.ThinkingStep {
	steps := make([]response_models.ThinkingStep, len(doctorSearchSteps))
	copy(steps, doctorSearchSteps)
	return steps
}

func (a *AdviceService) SimulateThinking(ctx context.Context, onStep func(message string)) error {
	return a.playSteps(ctx, thinkingSteps, onStep)
}

func (a *AdviceService) SimulateDoctorSearch(ctx context.Context, onStep func(message string)) error {
	return a.playSteps(ctx, doctorSearchSteps, onStep)
}

func (a *AdviceService) playSteps(ctx context.Context, steps []response_models.ThinkingStep, onStep func(message string)) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if onStep != nil {
			onStep(step.Message)
		}
		if err := a.sleep(ctx, step.Duration); err != nil {
			return err
		}
	}
	return nil
}

func (a *AdviceService) intn(n int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rng.Intn(n)
}

func (a *AdviceService) float64() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rng.Float64()
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
