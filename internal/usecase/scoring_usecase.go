package usecase

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"talentx/internal/domain/job"
	"talentx/internal/domain/matching"
	"talentx/internal/domain/talent"
	"talentx/internal/infrastructure/ai"
)

// Scorer yields a 0-100 relevance score for a profile/posting pair. Scoring
// never fails: provider trouble is absorbed and the local heuristic answers.
type Scorer interface {
	Score(ctx context.Context, profile talent.Profile, posting job.Posting) int
}

type ScoringService struct {
	delegate ai.Scorer
	timeout  time.Duration
	logger   *log.Logger

	warnedDelegate atomic.Bool
}

// NewScoringService wires the optional provider in. A nil delegate means the
// heuristic runs alone, which is a fully supported mode, not a degradation.
func NewScoringService(delegate ai.Scorer, timeout time.Duration, logger *log.Logger) *ScoringService {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &ScoringService{delegate: delegate, timeout: timeout, logger: logger}
}

func (s *ScoringService) Score(ctx context.Context, profile talent.Profile, posting job.Posting) int {
	if s == nil || s.delegate == nil {
		return localScore(profile, posting)
	}

	// The delegate call is bounded so ranking latency stays predictable and
	// holds no store resources while waiting.
	dctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	score, err := s.delegate.MatchScore(dctx, ai.ScoreRequest{
		TalentSkills:    profile.Skills,
		ExperienceYears: profile.ExperienceYears,
		Bio:             profile.Bio,
		JobTitle:        posting.Title,
		JobSkills:       posting.RequiredSkills,
		JobDescription:  posting.Description,
	})
	if err != nil {
		s.warnDelegateOnce(err)
		return localScore(profile, posting)
	}
	return matching.Clamp(score)
}

func (s *ScoringService) warnDelegateOnce(err error) {
	if s.logger == nil {
		return
	}
	if s.warnedDelegate.CompareAndSwap(false, true) {
		s.logger.Printf("[Scoring] provider unavailable, using local heuristic: %v", err)
	}
}

func localScore(profile talent.Profile, posting job.Posting) int {
	return matching.Score(profile.Skills, profile.ExperienceYears, posting.RequiredSkills)
}
