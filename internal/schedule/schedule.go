// Package schedule derives calendar and deadline views from catalog events
// and assignment due dates.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/studygrid/studygrid-lms/internal/catalog"
)

const dateLayout = "2006-01-02"

// Month is a calendar month's events grouped by day.
type Month struct {
	Month string         `json:"month"` // YYYY-MM
	Days  []Day          `json:"days"`
	All   []catalog.Event `json:"events"`
}

type Day struct {
	Date   string          `json:"date"`
	Events []catalog.Event `json:"events"`
}

type Service struct {
	provider catalog.Provider
}

func NewService(p catalog.Provider) *Service { return &Service{provider: p} }

// EventsForMonth filters catalog events to the given YYYY-MM month and
// groups them by day, both in date order.
func (s *Service) EventsForMonth(month string) (Month, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return Month{}, fmt.Errorf("bad month %q: %w", month, err)
	}
	events, err := s.provider.ListEvents()
	if err != nil {
		return Month{}, err
	}

	byDay := map[string][]catalog.Event{}
	var all []catalog.Event
	for _, e := range events {
		if len(e.Date) < 7 || e.Date[:7] != month {
			continue
		}
		byDay[e.Date] = append(byDay[e.Date], e)
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date < all[j].Date })

	out := Month{Month: month, All: all}
	dates := make([]string, 0, len(byDay))
	for d := range byDay {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		out.Days = append(out.Days, Day{Date: d, Events: byDay[d]})
	}
	return out, nil
}

// DaysUntil counts whole days from today to the due date, negative when the
// date has passed.
func DaysUntil(dueDate string, now time.Time) (int, error) {
	due, err := time.Parse(dateLayout, dueDate)
	if err != nil {
		return 0, fmt.Errorf("bad due date %q: %w", dueDate, err)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today).Hours() / 24), nil
}

// DueLabel renders the due-date phrasing the assignment cards use.
func DueLabel(dueDate string, now time.Time) string {
	days, err := DaysUntil(dueDate, now)
	if err != nil {
		return ""
	}
	switch {
	case days < 0:
		return fmt.Sprintf("Overdue by %d days", -days)
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}
