// Package course holds the fixed thirty-day writing curriculum.
package course

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

// Length is the number of days in the course.
const Length = 30

//go:embed catalog.yaml
var catalogYAML []byte

// Day is one pre-authored course entry.
type Day struct {
	Number     int                      `yaml:"day"`
	Title      string                   `yaml:"title"`
	Focus      string                   `yaml:"focus"`
	Prompt     string                   `yaml:"prompt"`
	Vocabulary []domain.VocabularyEntry `yaml:"vocabulary"`
}

// Topic builds the writing topic for this course day.
func (d Day) Topic() domain.Topic {
	vocab := make([]domain.VocabularyEntry, len(d.Vocabulary))
	copy(vocab, d.Vocabulary)
	return domain.Topic{
		IdentityKey: domain.CourseKey(d.Number),
		Title:       d.Title,
		Description: d.Prompt,
		Focus:       d.Focus,
		Vocabulary:  vocab,
		CourseDay:   d.Number,
	}
}

// Catalog is an immutable, day-ordered list of course entries.
type Catalog struct {
	days []Day
}

// Default is the embedded catalog. Parsing happens once at init and panics on
// a broken file, since the file ships with the binary.
var Default = MustParse(catalogYAML)

// Parse decodes a catalog document and checks that day numbers are unique
// and form the sequence 1..n.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Days []Day `yaml:"days"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("course: decode catalog: %w", err)
	}

	days := doc.Days
	sort.Slice(days, func(i, j int) bool { return days[i].Number < days[j].Number })
	for i, d := range days {
		if d.Number != i+1 {
			return nil, fmt.Errorf("course: day %d out of sequence at position %d", d.Number, i+1)
		}
		if d.Title == "" {
			return nil, fmt.Errorf("course: day %d has no title", d.Number)
		}
	}

	return &Catalog{days: days}, nil
}

// MustParse is Parse for data known at build time.
func MustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of days.
func (c *Catalog) Len() int { return len(c.days) }

// Day returns the entry for a 1-based day number.
func (c *Catalog) Day(n int) (Day, error) {
	if n < 1 || n > len(c.days) {
		return Day{}, fmt.Errorf("course day %d: %w", n, domain.ErrNotFound)
	}
	return c.days[n-1], nil
}

// All returns a copy of every entry in day order.
func (c *Catalog) All() []Day {
	out := make([]Day, len(c.days))
	copy(out, c.days)
	return out
}
