package domain

// Provider identifies the LLM backend that services generation requests.
type Provider string

const (
	ProviderHosted Provider = "HOSTED"
	ProviderLocal  Provider = "LOCAL"
)

func (p Provider) String() string { return string(p) }

func (p Provider) IsValid() bool {
	switch p {
	case ProviderHosted, ProviderLocal:
		return true
	}
	return false
}

// TopicKind distinguishes generated daily prompts from course-catalog days.
type TopicKind string

const (
	TopicKindDaily  TopicKind = "DAILY"
	TopicKindCourse TopicKind = "COURSE"
)

func (k TopicKind) String() string { return string(k) }
