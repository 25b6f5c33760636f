package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"talentx/internal/domain/job"
	"talentx/internal/domain/talent"
	"talentx/internal/repository"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("talent profile not found")

// TalentMatch is a candidate for an employer's shortlist.
type TalentMatch struct {
	Profile    talent.Profile
	MatchScore int
}

// JobMatch is one entry of a talent's job feed.
type JobMatch struct {
	Posting    job.Posting
	MatchScore int
}

type RankingUsecase interface {
	MatchedTalentsForJob(ctx context.Context, jobID, employerID uuid.UUID) ([]TalentMatch, error)
	MatchedJobsForTalent(ctx context.Context, talentID uuid.UUID) ([]JobMatch, error)
}

type Ranking struct {
	jobs     repository.JobRepository
	profiles repository.TalentProfileRepository
	scorer   Scorer
	cache    RankingCache
	feedTTL  time.Duration
	logger   *log.Logger

	minScore   int
	maxResults int
}

func NewRankingUsecase(
	jobs repository.JobRepository,
	profiles repository.TalentProfileRepository,
	scorer Scorer,
	cache RankingCache,
	feedTTL time.Duration,
	minScore int,
	maxResults int,
	logger *log.Logger,
) *Ranking {
	if minScore < 0 {
		minScore = 0
	}
	if maxResults <= 0 {
		maxResults = 20
	}
	return &Ranking{
		jobs:       jobs,
		profiles:   profiles,
		scorer:     scorer,
		cache:      cache,
		feedTTL:    feedTTL,
		logger:     logger,
		minScore:   minScore,
		maxResults: maxResults,
	}
}

// MatchedTalentsForJob builds the employer shortlist: every talent except the
// employer themselves, scored against the job, floored, sorted and truncated.
// The operation is read-only and deterministic for fixed inputs.
func (u *Ranking) MatchedTalentsForJob(ctx context.Context, jobID, employerID uuid.UUID) ([]TalentMatch, error) {
	if jobID == uuid.Nil || employerID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	posting, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	if posting.EmployerID != employerID {
		return nil, ErrAccessDenied
	}

	profiles, err := u.profiles.ListExcept(ctx, employerID)
	if err != nil {
		return nil, ErrInternal
	}

	matches := make([]TalentMatch, 0, len(profiles))
	for _, p := range profiles {
		score := u.scorer.Score(ctx, p, posting)
		if score <= u.minScore {
			continue
		}
		matches = append(matches, TalentMatch{Profile: p, MatchScore: score})
	}

	// Ties break on talent id so repeated calls return the same order.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].Profile.UserID.String() < matches[j].Profile.UserID.String()
	})

	if len(matches) > u.maxResults {
		matches = matches[:u.maxResults]
	}
	return matches, nil
}

// MatchedJobsForTalent builds the talent's feed: all open jobs not posted by
// the talent, scored and sorted with no floor and no truncation. The result
// is cached briefly; a stale feed is acceptable.
func (u *Ranking) MatchedJobsForTalent(ctx context.Context, talentID uuid.UUID) ([]JobMatch, error) {
	if talentID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	if u.cache != nil {
		var cached []JobMatch
		hit, err := u.cache.GetJSON(ctx, matchedJobsCacheKey(talentID), &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	profile, err := u.profiles.FindByUserID(ctx, talentID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	postings, err := u.jobs.ListOpen(ctx, talentID)
	if err != nil {
		return nil, ErrInternal
	}

	matches := make([]JobMatch, 0, len(postings))
	for _, p := range postings {
		matches = append(matches, JobMatch{Posting: p, MatchScore: u.scorer.Score(ctx, profile, p)})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].Posting.ID.String() < matches[j].Posting.ID.String()
	})

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, matchedJobsCacheKey(talentID), matches, u.feedTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Ranking] feed cache write failed: %v", err)
		}
	}
	return matches, nil
}
