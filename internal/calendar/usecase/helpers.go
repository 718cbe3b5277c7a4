package usecase

import (
	"sort"

	"personal-dashboard/internal/model"
)

// orDefault returns val unless it is empty.
func orDefault(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}

func sortEvents(events []model.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}
