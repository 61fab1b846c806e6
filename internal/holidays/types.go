package holidays

import (
	"encoding/json"
	"fmt"
)

// Entry is one day in the holiday file.
type Entry struct {
	Holiday bool   `json:"holiday"`
	Name    string `json:"name"`
	Wage    int    `json:"wage"`
	Date    string `json:"date"`
	// Optional fields
	After  *bool  `json:"after,omitempty"`
	Target string `json:"target,omitempty"`
	Rest   *int   `json:"rest,omitempty"`
}

// UnmarshalJSON accepts "holiday" as either a bool or a string; some
// published files use the holiday's name there. Non-empty strings count as
// holidays.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type alias Entry
	aux := &struct {
		Holiday any `json:"holiday"`
		*alias
	}{
		alias: (*alias)(e),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch v := aux.Holiday.(type) {
	case bool:
		e.Holiday = v
	case string:
		e.Holiday = v != ""
	default:
		e.Holiday = false
	}
	return nil
}

// File is the on-disk layout: a list of years, each mapping "MM-DD" to an
// entry.
type File []struct {
	Year    string            `json:"year"`
	Holiday map[string]*Entry `json:"holiday"`
}

// Table indexes entries by year then "MM-DD".
type Table map[string]map[string]*Entry

// Info is what a calendar day needs to know about a holiday.
type Info struct {
	IsHoliday bool // false means a make-up working day
	Name      string
}

// Lookup returns the holiday info for a day, or nil.
func (t Table) Lookup(year, month, day int) *Info {
	if t == nil {
		return nil
	}
	days, ok := t[fmt.Sprintf("%d", year)]
	if !ok {
		return nil
	}
	entry, ok := days[fmt.Sprintf("%02d-%02d", month, day)]
	if !ok || entry == nil {
		return nil
	}
	return &Info{IsHoliday: entry.Holiday, Name: entry.Name}
}

// Years returns how many years the table covers.
func (t Table) Years() int {
	return len(t)
}
