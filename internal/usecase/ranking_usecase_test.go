package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talentx/internal/domain/job"
	"talentx/internal/domain/talent"

	"github.com/google/uuid"
)

func profileWith(skills []string, years int) talent.Profile {
	return talent.Profile{UserID: uuid.New(), Skills: skills, ExperienceYears: years}
}

func TestMatchedTalentsForJob_FloorSortTruncate(t *testing.T) {
	employerID := uuid.New()
	jobID := uuid.New()
	jobs := &mockJobRepo{postings: map[uuid.UUID]job.Posting{
		jobID: {ID: jobID, EmployerID: employerID, RequiredSkills: []string{"go", "sql", "docker"}},
	}}

	strong := profileWith([]string{"go", "sql", "docker"}, 10) // 95
	medium := profileWith([]string{"go", "sql"}, 3)            // 61
	weak := profileWith([]string{"rust"}, 1)                   // 17, below floor
	profiles := &mockProfileRepo{list: []talent.Profile{weak, medium, strong}}

	uc := NewRankingUsecase(jobs, profiles, NewScoringService(nil, 0, nil), nil, 0, 30, 20, nil)

	matches, err := uc.MatchedTalentsForJob(context.Background(), jobID, employerID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches above the floor, got %d", len(matches))
	}
	if matches[0].Profile.UserID != strong.UserID || matches[0].MatchScore != 95 {
		t.Fatalf("expected strong candidate first with 95, got %v %d", matches[0].Profile.UserID, matches[0].MatchScore)
	}
	if matches[1].Profile.UserID != medium.UserID || matches[1].MatchScore != 61 {
		t.Fatalf("expected medium candidate second with 61, got %v %d", matches[1].Profile.UserID, matches[1].MatchScore)
	}
}

func TestMatchedTalentsForJob_Truncation(t *testing.T) {
	employerID := uuid.New()
	jobID := uuid.New()
	jobs := &mockJobRepo{postings: map[uuid.UUID]job.Posting{
		jobID: {ID: jobID, EmployerID: employerID, RequiredSkills: []string{"go"}},
	}}

	list := make([]talent.Profile, 5)
	for i := range list {
		list[i] = profileWith([]string{"go"}, 10)
	}
	profiles := &mockProfileRepo{list: list}

	uc := NewRankingUsecase(jobs, profiles, NewScoringService(nil, 0, nil), nil, 0, 30, 3, nil)

	matches, err := uc.MatchedTalentsForJob(context.Background(), jobID, employerID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected shortlist capped at 3, got %d", len(matches))
	}
	// Equal scores break ties on talent id, so the order is stable.
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Profile.UserID.String() > matches[i].Profile.UserID.String() {
			t.Fatal("tied matches must be ordered by talent id")
		}
	}
}

func TestMatchedTalentsForJob_AccessDenied(t *testing.T) {
	jobID := uuid.New()
	jobs := &mockJobRepo{postings: map[uuid.UUID]job.Posting{
		jobID: {ID: jobID, EmployerID: uuid.New()},
	}}
	uc := NewRankingUsecase(jobs, &mockProfileRepo{}, NewScoringService(nil, 0, nil), nil, 0, 30, 20, nil)

	_, err := uc.MatchedTalentsForJob(context.Background(), jobID, uuid.New())
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestMatchedJobsForTalent_SortedNoFloor(t *testing.T) {
	talentID := uuid.New()
	good := job.Posting{ID: uuid.New(), Title: "Backend", RequiredSkills: []string{"go", "sql"}}
	poor := job.Posting{ID: uuid.New(), Title: "Design", RequiredSkills: []string{"figma"}}
	jobs := &mockJobRepo{open: []job.Posting{poor, good}}
	profiles := &mockProfileRepo{profiles: map[uuid.UUID]talent.Profile{
		talentID: {UserID: talentID, Skills: []string{"go", "sql"}, ExperienceYears: 2},
	}}

	uc := NewRankingUsecase(jobs, profiles, NewScoringService(nil, 0, nil), nil, 0, 30, 20, nil)

	matches, err := uc.MatchedJobsForTalent(context.Background(), talentID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("the feed keeps every open job, got %d", len(matches))
	}
	if matches[0].Posting.ID != good.ID {
		t.Fatal("expected the stronger match first")
	}
	if matches[1].MatchScore <= 0 || matches[1].MatchScore >= matches[0].MatchScore {
		t.Fatalf("expected a lower positive score second, got %d vs %d", matches[1].MatchScore, matches[0].MatchScore)
	}
}

func TestMatchedJobsForTalent_CacheHitSkipsStore(t *testing.T) {
	talentID := uuid.New()
	cache := &mockRankingCache{}

	cached := []JobMatch{{Posting: job.Posting{ID: uuid.New(), Title: "Cached"}, MatchScore: 77}}
	if err := cache.SetJSON(context.Background(), matchedJobsCacheKey(talentID), cached, time.Minute); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	// The repos would fail if touched.
	jobs := &mockJobRepo{err: errors.New("store down")}
	profiles := &mockProfileRepo{err: errors.New("store down")}

	uc := NewRankingUsecase(jobs, profiles, NewScoringService(nil, 0, nil), cache, time.Minute, 30, 20, nil)

	matches, err := uc.MatchedJobsForTalent(context.Background(), talentID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 1 || matches[0].MatchScore != 77 {
		t.Fatalf("expected the cached feed, got %+v", matches)
	}
}

func TestMatchedJobsForTalent_CacheMissPopulates(t *testing.T) {
	talentID := uuid.New()
	cache := &mockRankingCache{}
	jobs := &mockJobRepo{open: []job.Posting{{ID: uuid.New(), RequiredSkills: []string{"go"}}}}
	profiles := &mockProfileRepo{profiles: map[uuid.UUID]talent.Profile{
		talentID: {UserID: talentID, Skills: []string{"go"}, ExperienceYears: 1},
	}}

	uc := NewRankingUsecase(jobs, profiles, NewScoringService(nil, 0, nil), cache, time.Minute, 30, 20, nil)

	if _, err := uc.MatchedJobsForTalent(context.Background(), talentID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache write, got %d", cache.sets)
	}
}

func TestMatchedJobsForTalent_ProfileMissing(t *testing.T) {
	uc := NewRankingUsecase(&mockJobRepo{}, &mockProfileRepo{}, NewScoringService(nil, 0, nil), nil, 0, 30, 20, nil)

	_, err := uc.MatchedJobsForTalent(context.Background(), uuid.New())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
