package attempt

import (
	"context"
	"time"

	"github.com/NowarkCodes/EduAble-sub000/internal/apperror"
	"github.com/NowarkCodes/EduAble-sub000/internal/quiz"
	util "github.com/NowarkCodes/EduAble-sub000/internal/utils"
	"github.com/google/uuid"
)

var (
	ErrMaxAttemptsExceeded = apperror.PolicyViolation("maximum number of attempts reached")
	ErrCooldownActive      = apperror.PolicyViolation("cooldown active, wait before retrying")
)

type Status int

const (
	Eligible Status = iota
	BlockedMaxAttempts
	BlockedCooldown
)

func (s Status) String() string {
	switch s {
	case Eligible:
		return "eligible"
	case BlockedMaxAttempts:
		return "max_attempts_exceeded"
	case BlockedCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

type Policy struct {
	MaxAttempts     *int
	CooldownMinutes *int
}

func PolicyOf(q *quiz.Quiz) Policy {
	return Policy{MaxAttempts: q.MaxAttempts, CooldownMinutes: q.CooldownMinutes}
}

type Decision struct {
	Status           Status
	AttemptNumber    int
	RemainingMinutes int
	// Previous is the most recent prior attempt, when the decision was made from the store.
	Previous *Attempt
}

// Err is nil for an eligible decision and the specific policy violation otherwise.
func (d Decision) Err() error {
	switch d.Status {
	case BlockedMaxAttempts:
		return ErrMaxAttemptsExceeded
	case BlockedCooldown:
		return ErrCooldownActive.WithDetails(map[string]any{"remaining_minutes": d.RemainingMinutes})
	default:
		return nil
	}
}

// Evaluate applies the attempt policy. lastAttemptAt is ignored when previous is zero.
func Evaluate(p Policy, previous int, lastAttemptAt time.Time, now time.Time) Decision {
	if p.MaxAttempts != nil && previous >= *p.MaxAttempts {
		return Decision{Status: BlockedMaxAttempts}
	}

	if p.CooldownMinutes != nil && previous > 0 {
		cooldown := time.Duration(*p.CooldownMinutes) * time.Minute
		elapsed := now.Sub(lastAttemptAt)
		if elapsed < cooldown {
			return Decision{
				Status:           BlockedCooldown,
				RemainingMinutes: util.CeilMinutes(cooldown - elapsed),
			}
		}
	}

	return Decision{Status: Eligible, AttemptNumber: previous + 1}
}

type Gatekeeper struct {
	repo Repository
	now  util.Clock
}

func NewGatekeeper(repo Repository, now util.Clock) *Gatekeeper {
	if now == nil {
		now = util.SystemClock
	}
	return &Gatekeeper{repo: repo, now: now}
}

func (g *Gatekeeper) Check(ctx context.Context, userID uuid.UUID, q *quiz.Quiz) (Decision, error) {
	previous, err := g.repo.Count(ctx, userID, q.ID)
	if err != nil {
		return Decision{}, err
	}

	var last *Attempt
	var lastAt time.Time
	if previous > 0 {
		last, err = g.repo.Latest(ctx, userID, q.ID)
		if err != nil {
			return Decision{}, err
		}
		if last != nil {
			lastAt = last.AttemptedAt
		}
	}

	d := Evaluate(PolicyOf(q), previous, lastAt, g.now())
	d.Previous = last
	return d, nil
}
