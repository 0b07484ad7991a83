package assistant

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

const (
	maxMessages        = 50
	maxMessageLength   = 20000
	maxTopicLength     = 200
	MinPlanDuration    = 3
	MaxPlanDuration    = 30
	DefaultDuration    = 7
	defaultPerspective = "protestant"
	defaultTranslation = "ESV"
)

var perspectives = map[string]bool{
	"protestant": true,
	"catholic":   true,
	"orthodox":   true,
	"academic":   true,
}

func validateProvider(name string) *domain.FieldError {
	if !isKnownProvider(name) {
		return &domain.FieldError{Field: "provider", Message: "must be groq or claude"}
	}
	return nil
}

func providerOrDefault(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultProvider
	}
	return name
}

// ChatInput holds a chat conversation to continue.
type ChatInput struct {
	Messages []provider.ChatMessage
	Provider string
	Model    string
}

// Validate checks all fields and collects all errors.
func (i ChatInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Messages) == 0 {
		errs = append(errs, domain.FieldError{Field: "messages", Message: "required"})
	}
	if len(i.Messages) > maxMessages {
		errs = append(errs, domain.FieldError{Field: "messages", Message: fmt.Sprintf("max %d messages", maxMessages)})
	}
	for n, m := range i.Messages {
		field := fmt.Sprintf("messages[%d]", n)
		switch m.Role {
		case provider.RoleSystem, provider.RoleUser, provider.RoleAssistant:
		default:
			errs = append(errs, domain.FieldError{Field: field + ".role", Message: "must be system, user or assistant"})
		}
		if strings.TrimSpace(m.Content) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".content", Message: "required"})
		}
		if len(m.Content) > maxMessageLength {
			errs = append(errs, domain.FieldError{Field: field + ".content", Message: fmt.Sprintf("max %d characters", maxMessageLength)})
		}
	}
	if fe := validateProvider(providerOrDefault(i.Provider)); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// XrayInput asks for an in-depth explanation of one verse.
type XrayInput struct {
	Verse       string
	VerseText   string
	Translation string
	Perspective string
	Provider    string
}

// Validate checks all fields and collects all errors.
func (i XrayInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Verse) == "" {
		errs = append(errs, domain.FieldError{Field: "verse", Message: "required"})
	}
	if p := strings.ToLower(strings.TrimSpace(i.Perspective)); p != "" && !perspectives[p] {
		errs = append(errs, domain.FieldError{Field: "perspective", Message: "must be protestant, catholic, orthodox or academic"})
	}
	if fe := validateProvider(providerOrDefault(i.Provider)); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// StudyPlanInput asks for a day-by-day study plan on a topic.
// A zero Duration means DefaultDuration.
type StudyPlanInput struct {
	Topic       string
	Duration    int
	Translation string
	Provider    string
}

// Validate checks all fields and collects all errors.
func (i StudyPlanInput) Validate() error {
	var errs []domain.FieldError

	topic := strings.TrimSpace(i.Topic)
	if topic == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}
	if len(topic) > maxTopicLength {
		errs = append(errs, domain.FieldError{Field: "topic", Message: fmt.Sprintf("max %d characters", maxTopicLength)})
	}
	if i.Duration != 0 && (i.Duration < MinPlanDuration || i.Duration > MaxPlanDuration) {
		errs = append(errs, domain.FieldError{
			Field:   "duration",
			Message: fmt.Sprintf("must be between %d and %d days", MinPlanDuration, MaxPlanDuration),
		})
	}
	if fe := validateProvider(providerOrDefault(i.Provider)); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
