package settings

import (
	"net/url"
	"strings"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

// MaxTargetWordCount bounds the daily word goal.
const MaxTargetWordCount = 100000

// SaveInput holds the settings form as submitted by the user.
type SaveInput struct {
	Provider         domain.Provider `json:"provider"`
	LocalEndpointURL string          `json:"localEndpointUrl"`
	LocalModelName   string          `json:"localModelName"`
	TargetWordCount  int             `json:"targetWordCount"`
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if !i.Provider.IsValid() {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "must be HOSTED or LOCAL"})
	}

	if i.TargetWordCount < 1 || i.TargetWordCount > MaxTargetWordCount {
		errs = append(errs, domain.FieldError{Field: "targetWordCount", Message: "must be between 1 and 100000"})
	}

	if i.Provider == domain.ProviderLocal {
		if !validEndpoint(strings.TrimSpace(i.LocalEndpointURL)) {
			errs = append(errs, domain.FieldError{Field: "localEndpointUrl", Message: "must be an absolute http(s) URL"})
		}
		if strings.TrimSpace(i.LocalModelName) == "" {
			errs = append(errs, domain.FieldError{Field: "localModelName", Message: "required"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validEndpoint(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Settings returns the normalized settings value.
func (i SaveInput) Settings() domain.Settings {
	return domain.Settings{
		Provider:         i.Provider,
		LocalEndpointURL: strings.TrimRight(strings.TrimSpace(i.LocalEndpointURL), "/"),
		LocalModelName:   strings.TrimSpace(i.LocalModelName),
		TargetWordCount:  i.TargetWordCount,
	}
}
