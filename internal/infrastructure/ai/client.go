package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"talentx/internal/config"
)

// Scorer asks an external provider for a 0-100 match score. Implementations
// must never be relied on for availability; callers fall back to the local
// heuristic on any error.
type Scorer interface {
	MatchScore(ctx context.Context, req ScoreRequest) (int, error)
}

type ScoreRequest struct {
	TalentSkills    []string
	ExperienceYears int
	Bio             string
	JobTitle        string
	JobSkills       []string
	JobDescription  string
}

type httpScorer struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *log.Logger
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewScorer builds a scoring client for an OpenAI-compatible chat endpoint.
// Returns nil when the provider is not configured; the caller treats nil as
// "local heuristic only".
func NewScorer(cfg config.AIScorerConfig, logger *log.Logger) Scorer {
	if !cfg.Enabled() {
		return nil
	}
	return &httpScorer{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (s *httpScorer) MatchScore(ctx context.Context, sr ScoreRequest) (int, error) {
	if s == nil || s.client == nil {
		return 0, errors.New("nil scorer")
	}

	body := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are an expert recruiting AI that calculates job-talent compatibility scores."},
			{Role: "user", Content: buildPrompt(sr)},
		},
		MaxTokens:   10,
		Temperature: 0.1,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	endpoint := s.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("scoring provider failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
		if s.logger != nil {
			s.logger.Printf("[AIScorer] MatchScore error endpoint=%s status=%d", endpoint, resp.StatusCode)
		}
		return 0, err
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return 0, err
	}
	if len(out.Choices) == 0 {
		return 0, errors.New("scoring provider returned no choices")
	}

	score, err := parseScoreReply(out.Choices[0].Message.Content)
	if err != nil {
		return 0, err
	}
	return score, nil
}

func buildPrompt(sr ScoreRequest) string {
	bio := strings.TrimSpace(sr.Bio)
	if bio == "" {
		bio = "Not provided"
	}
	desc := strings.TrimSpace(sr.JobDescription)
	if desc == "" {
		desc = "Not provided"
	}

	var sb strings.Builder
	sb.WriteString("Calculate a match score (0-100) between a talent profile and a job.\n\n")
	sb.WriteString("Talent Profile:\n")
	sb.WriteString("- Skills: " + strings.Join(sr.TalentSkills, ", ") + "\n")
	sb.WriteString("- Experience: " + strconv.Itoa(sr.ExperienceYears) + " years\n")
	sb.WriteString("- Bio: " + bio + "\n\n")
	sb.WriteString("Job Details:\n")
	sb.WriteString("- Title: " + sr.JobTitle + "\n")
	sb.WriteString("- Required Skills: " + strings.Join(sr.JobSkills, ", ") + "\n")
	sb.WriteString("- Description: " + desc + "\n\n")
	sb.WriteString("Return only a number between 0 and 100 representing the match percentage. Consider:\n")
	sb.WriteString("- Skill alignment (60% weight)\n")
	sb.WriteString("- Experience level (25% weight)\n")
	sb.WriteString("- Bio/description relevance (15% weight)")
	return sb.String()
}

func parseScoreReply(reply string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil {
		return 0, fmt.Errorf("non-integer score reply %q", reply)
	}
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	return n, nil
}
