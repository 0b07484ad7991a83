package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

// Defaults for plan days the model left incomplete.
const (
	defaultFocus      = "Focus on understanding the passage in context."
	defaultReflection = "How does this passage apply to your life today?"
	defaultPrayer     = "Lord, help me understand and apply Your Word. Amen."
)

// StudyDay is one day of a study plan.
type StudyDay struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Verses     []string `json:"verses"`
	Focus      string   `json:"focus"`
	Reflection string   `json:"reflection"`
	Prayer     string   `json:"prayer"`
}

// StudyPlanResult is the response of a study-plan request.
type StudyPlanResult struct {
	Success     bool       `json:"success"`
	Topic       string     `json:"topic"`
	Duration    int        `json:"duration"`
	Translation string     `json:"translation"`
	Plan        []StudyDay `json:"plan"`
}

// StudyPlan generates a day-by-day plan on a topic. Days with missing fields
// are completed with defaults.
func (s *Service) StudyPlan(ctx context.Context, input StudyPlanInput) (*StudyPlanResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := providerOrDefault(input.Provider)
	p, err := s.provider(name)
	if err != nil {
		return nil, err
	}

	topic := strings.TrimSpace(input.Topic)
	duration := input.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	translation := orDefault(input.Translation, defaultTranslation)

	system, user := buildStudyPlanPrompts(topic, duration, translation)
	res, err := s.complete(ctx, p, provider.ChatRequest{
		Messages: []provider.ChatMessage{
			{Role: provider.RoleSystem, Content: system},
			{Role: provider.RoleUser, Content: user},
		},
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   longFormMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(res.Message) == "" {
		return nil, fmt.Errorf("%w: empty study plan response", domain.ErrUpstreamUnavailable)
	}

	items, err := extractArray(res.Message)
	if err != nil {
		s.log.WarnContext(ctx, "unusable study plan response",
			"provider", name,
			"topic", topic,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}

	plan := make([]StudyDay, 0, len(items))
	for i, item := range items {
		day, complete := decodeDay(item, i)
		if !complete {
			s.log.DebugContext(ctx, "study plan day completed with defaults", "day", day.Day)
		}
		plan = append(plan, day)
	}

	return &StudyPlanResult{
		Success:     true,
		Topic:       topic,
		Duration:    duration,
		Translation: translation,
		Plan:        plan,
	}, nil
}

// decodeDay reads one plan day leniently. complete is false when any field
// had to be defaulted.
func decodeDay(raw json.RawMessage, index int) (day StudyDay, complete bool) {
	var fields map[string]any
	_ = json.Unmarshal(raw, &fields)

	complete = true
	fill := func(v, def string) string {
		if v == "" {
			complete = false
			return def
		}
		return v
	}

	day.Day = intField(fields["day"])
	if day.Day <= 0 {
		complete = false
		day.Day = index + 1
	}
	day.Title = fill(textField(fields["title"]), fmt.Sprintf("Day %d Study", index+1))
	day.Verses = listField(fields["verses"])
	if len(day.Verses) == 0 {
		complete = false
	}
	day.Focus = fill(textField(fields["focus"]), defaultFocus)
	day.Reflection = fill(textField(fields["reflection"]), defaultReflection)
	day.Prayer = fill(textField(fields["prayer"]), defaultPrayer)
	return day, complete
}

func intField(v any) int {
	switch x := v.(type) {
	case float64:
		return int(x)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(x))
		return n
	}
	return 0
}

// textField accepts a string or a list of strings, joined by newlines.
func textField(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case []any:
		return strings.Join(listField(x), "\n")
	}
	return ""
}

// listField accepts a list of strings or a single string.
func listField(v any) []string {
	out := []string{}
	switch x := v.(type) {
	case string:
		if s := strings.TrimSpace(x); s != "" {
			out = append(out, s)
		}
	case []any:
		for _, e := range x {
			if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	}
	return out
}
