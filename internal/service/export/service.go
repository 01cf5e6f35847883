// Package export writes the journal to an Excel workbook: one sheet of
// drafts and one sheet of course progress.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/lexicon-journal/internal/course"
	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/store"
	"github.com/heartmarshall/lexicon-journal/internal/textutil"
)

//go:generate moq -out journal_reader_mock_test.go -pkg export . journalReader

type journalReader interface {
	Drafts(ctx context.Context) ([]store.Draft, error)
	DailyTopic(ctx context.Context, dateKey string) (domain.Topic, bool, error)
	CompletedDays(ctx context.Context) (domain.CompletionSet, error)
}

type catalog interface {
	Day(n int) (course.Day, error)
	All() []course.Day
}

const (
	SheetDrafts = "Drafts"
	SheetCourse = "Course"
)

var (
	draftsHeader = []any{"Topic key", "Kind", "Title", "Words", "Text"}
	courseHeader = []any{"Day", "Title", "Focus", "Completed"}
)

// Service builds export workbooks.
type Service struct {
	journal journalReader
	catalog catalog
	log     *slog.Logger
}

// NewService creates an export Service.
func NewService(log *slog.Logger, journal journalReader, catalog catalog) *Service {
	return &Service{
		journal: journal,
		catalog: catalog,
		log:     log.With("service", "export"),
	}
}

// WriteWorkbook writes an .xlsx workbook of every stored draft and the
// course completion state to w.
func (s *Service) WriteWorkbook(ctx context.Context, w io.Writer) error {
	drafts, err := s.journal.Drafts(ctx)
	if err != nil {
		return fmt.Errorf("export: list drafts: %w", err)
	}
	done, err := s.journal.CompletedDays(ctx)
	if err != nil {
		return fmt.Errorf("export: completed days: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.log.WarnContext(ctx, "close workbook", slog.String("error", cerr.Error()))
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetDrafts); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := s.writeDrafts(ctx, f, drafts); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetCourse); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := s.writeCourse(f, done); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}

	s.log.InfoContext(ctx, "workbook exported", slog.Int("drafts", len(drafts)), slog.Int("completed_days", len(done)))
	return nil
}

func (s *Service) writeDrafts(ctx context.Context, f *excelize.File, drafts []store.Draft) error {
	if err := setRow(f, SheetDrafts, 1, draftsHeader); err != nil {
		return err
	}
	for i, d := range drafts {
		kind, title := s.describe(ctx, d.Key)
		row := []any{d.Key, kind.String(), title, textutil.WordCount(d.Text), d.Text}
		if err := setRow(f, SheetDrafts, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetDrafts, "C", "C", 32); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := f.SetColWidth(SheetDrafts, "E", "E", 80); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// describe resolves the kind and title of a topic key. Titles of daily
// topics are known only while their cached content is stored.
func (s *Service) describe(ctx context.Context, key string) (domain.TopicKind, string) {
	if day, ok := domain.ParseCourseKey(key); ok {
		entry, err := s.catalog.Day(day)
		if err != nil {
			return domain.TopicKindCourse, ""
		}
		return domain.TopicKindCourse, entry.Title
	}

	t, ok, err := s.journal.DailyTopic(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "look up daily topic", slog.String("key", key), slog.String("error", err.Error()))
	}
	if !ok {
		return domain.TopicKindDaily, ""
	}
	return domain.TopicKindDaily, t.Title
}

func (s *Service) writeCourse(f *excelize.File, done domain.CompletionSet) error {
	if err := setRow(f, SheetCourse, 1, courseHeader); err != nil {
		return err
	}
	for i, d := range s.catalog.All() {
		completed := "no"
		if done.Contains(d.Number) {
			completed = "yes"
		}
		if err := setRow(f, SheetCourse, i+2, []any{d.Number, d.Title, d.Focus, completed}); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("export: %s row %d: %w", sheet, row, err)
	}
	return nil
}
