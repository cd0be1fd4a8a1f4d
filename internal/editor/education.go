package editor

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resume-cli/internal/model"
)

// yearLayout renders education dates as "MMM YYYY".
const yearLayout = "Jan 2006"

// EducationStore is the container-owned education section.
type EducationStore interface {
	Education() []model.EducationSlot
	SetEducation([]model.EducationSlot)
}

// ResumeEducation exposes a resume's education slots as an EducationStore.
type ResumeEducation struct {
	Resume *model.Resume
}

func (s ResumeEducation) Education() []model.EducationSlot { return s.Resume.Education }

func (s ResumeEducation) SetEducation(slots []model.EducationSlot) { s.Resume.Education = slots }

type EducationInput struct {
	SchoolName   string
	TitleOfStudy string
	Start        *time.Time
	End          *time.Time
}

// EducationEditor appends education history entries.
type EducationEditor struct {
	store EducationStore
	log   *slog.Logger
}

func NewEducationEditor(store EducationStore, log *slog.Logger) *EducationEditor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &EducationEditor{store: store, log: log.With("section", "education")}
}

// Add builds an entry whose id is the current slot count, or the next id after it
// that no populated slot uses. An empty first slot is filled in place; otherwise the
// entry is appended.
func (e *EducationEditor) Add(in EducationInput) model.Education {
	cur := e.store.Education()
	item := model.Education{
		ID:           freeEducationID(cur, len(cur)),
		SchoolName:   in.SchoolName,
		TitleOfStudy: in.TitleOfStudy,
		YearFrom:     formatYear(in.Start),
		YearTo:       formatYear(in.End),
	}

	next := make([]model.EducationSlot, 0, len(cur)+1)
	if len(cur) > 0 && cur[0].Empty() {
		next = append(next, model.PopulatedEducationSlot(item))
		next = append(next, cur[1:]...)
	} else {
		next = append(next, cur...)
		next = append(next, model.PopulatedEducationSlot(item))
	}
	e.store.SetEducation(next)
	e.log.Debug("add", "id", item.ID, "slots", len(next))
	return item
}

func freeEducationID(slots []model.EducationSlot, id int) int {
	used := make(map[int]bool, len(slots))
	for _, s := range slots {
		if !s.Empty() {
			used[s.Entry.ID] = true
		}
	}
	for used[id] {
		id++
	}
	return id
}

func formatYear(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(yearLayout)
}

// ParseMonth parses a "YYYY-MM" form value. Blank input means no date.
func ParseMonth(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return &t, nil
}
