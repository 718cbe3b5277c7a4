package model

const (
	CalendarPersonal = "personal"
	CalendarWork     = "work"
	CalendarTeam     = "team"
)

// CalendarInfo describes a calendar an event can belong to.
type CalendarInfo struct {
	ID    string
	Name  string
	Color string
}

var calendars = []CalendarInfo{
	{ID: CalendarPersonal, Name: "Personal", Color: "blue"},
	{ID: CalendarWork, Name: "Work", Color: "green"},
	{ID: CalendarTeam, Name: "Team Project", Color: "purple"},
}

// Calendars returns the known calendars in display order.
func Calendars() []CalendarInfo {
	out := make([]CalendarInfo, len(calendars))
	copy(out, calendars)
	return out
}

// LookupCalendar returns the calendar with the given id. Unknown ids are valid
// on events but have no display metadata.
func LookupCalendar(id string) (CalendarInfo, bool) {
	for _, c := range calendars {
		if c.ID == id {
			return c, true
		}
	}
	return CalendarInfo{}, false
}
