package matching

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// Result pairs a ranked subject (a talent for a job, or a job for a talent)
// with its relevance score. Results are transient and never persisted.
type Result struct {
	SubjectID uuid.UUID
	Score     int
}

// Weights of the heuristic. Skill overlap dominates, experience caps at 25
// and the base reflects non-skill signal (bio relevance) that the local
// heuristic cannot measure.
const (
	skillWeight     = 60.0
	experiencePerYr = 2
	experienceCap   = 25
	baseScore       = 15
)

// Score computes the 0-100 relevance of a talent's skills and experience
// against a job's required skills. It is total and side-effect-free: any
// input, including empty skill lists, yields a score in [0, 100].
//
// A required skill counts as covered when some talent skill contains it or
// is contained by it, case-insensitively, so "ML" covers "ml engineering"
// and vice versa.
func Score(talentSkills []string, experienceYears int, jobSkills []string) int {
	required := normalize(jobSkills)
	offered := normalize(talentSkills)

	overlap := 0
	for _, req := range required {
		for _, got := range offered {
			if strings.Contains(req, got) || strings.Contains(got, req) {
				overlap++
				break
			}
		}
	}

	denom := len(required)
	if denom < 1 {
		denom = 1
	}
	skillScore := skillWeight * float64(overlap) / float64(denom)

	experienceScore := experienceYears * experiencePerYr
	if experienceScore > experienceCap {
		experienceScore = experienceCap
	}
	if experienceScore < 0 {
		experienceScore = 0
	}

	total := int(math.Round(skillScore)) + experienceScore + baseScore
	return Clamp(total)
}

// Clamp bounds a score to [0, 100].
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func normalize(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
