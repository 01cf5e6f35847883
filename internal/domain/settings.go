package domain

const (
	DefaultLocalEndpointURL = "http://localhost:11434"
	DefaultLocalModelName   = "llama3"
	DefaultTargetWordCount  = 700
)

// Settings is the persisted, user-editable configuration of the journal.
type Settings struct {
	Provider         Provider `json:"provider"`
	LocalEndpointURL string   `json:"localEndpointUrl"`
	LocalModelName   string   `json:"localModelName"`
	TargetWordCount  int      `json:"targetWordCount"`
}

// DefaultSettings returns the settings used before the user saves any.
// The hosted provider is preferred only when it is actually configured.
func DefaultSettings(hostedAvailable bool) Settings {
	p := ProviderLocal
	if hostedAvailable {
		p = ProviderHosted
	}
	return Settings{
		Provider:         p,
		LocalEndpointURL: DefaultLocalEndpointURL,
		LocalModelName:   DefaultLocalModelName,
		TargetWordCount:  DefaultTargetWordCount,
	}
}

// WithDefaults fills zero-valued fields from def. Stored settings written by
// older builds may lack fields added later.
func (s Settings) WithDefaults(def Settings) Settings {
	if !s.Provider.IsValid() {
		s.Provider = def.Provider
	}
	if s.LocalEndpointURL == "" {
		s.LocalEndpointURL = def.LocalEndpointURL
	}
	if s.LocalModelName == "" {
		s.LocalModelName = def.LocalModelName
	}
	if s.TargetWordCount <= 0 {
		s.TargetWordCount = def.TargetWordCount
	}
	return s
}
