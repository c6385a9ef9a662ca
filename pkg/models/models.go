package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ShiftType describes one named time window within a weekday. End at or before
// Start means the shift runs past midnight into the next calendar day.
type ShiftType struct {
	Start string  `json:"start" yaml:"start"`
	End   string  `json:"end" yaml:"end"`
	Hours float64 `json:"hours" yaml:"hours"`
}

// ShiftCatalog maps a weekday name (Monday..Sunday) to the shift types defined
// for that day, keyed by display name. Names are unique per weekday only.
type ShiftCatalog map[string]map[string]ShiftType

// ShiftSlot is one concrete occurrence of a shift type on a calendar date.
// Member stays empty until the scheduler assigns it.
type ShiftSlot struct {
	Date         string `json:"date"`
	Day          string `json:"day"`
	Shift        string `json:"shift"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Supplemental bool   `json:"supplemental,omitempty"`
	Member       string `json:"member,omitempty"`
}

// Schedule is the ordered slot list produced by one assignment run.
type Schedule []ShiftSlot

// ScheduleInput is the request body for the scheduling endpoint. Zero-valued
// roster/catalog/constraints fall back to the planning session's state.
type ScheduleInput struct {
	Year               int           `json:"year"`
	Month              int           `json:"month"`
	TeamMembers        []string      `json:"team_members"`
	ShiftConfiguration ShiftCatalog  `json:"shift_configuration"`
	Constraints        ConstraintSet `json:"constraints"`
	MinShiftsPerMember int           `json:"min_shifts_per_member"`
	Seed               *int64        `json:"seed,omitempty"`
}

// ScheduleResponse is the scheduling result returned to the caller.
type ScheduleResponse struct {
	Year            int            `json:"year"`
	Month           int            `json:"month"`
	Schedule        Schedule       `json:"schedule"`
	ShiftsPerMember map[string]int `json:"shifts_per_member"`
	Spread          int            `json:"spread"`
	Supplemental    int            `json:"supplemental_slots"`
}

// WeekdayNames in grid order, Monday first, matching time.Weekday.String().
var WeekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayName returns the catalog key for a date.
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// ParseClock parses an "HH:MM" time-of-day string.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time of day %q: want HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("time of day %q: bad hour", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time of day %q: bad minute", s)
	}
	return hour, minute, nil
}

// SlotTimes resolves a slot's start and end to absolute timestamps. An end at
// or before the start rolls over to the next calendar day.
func SlotTimes(slot ShiftSlot) (start, end time.Time, err error) {
	day, err := time.Parse("2006-01-02", slot.Date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("slot date %q: %w", slot.Date, err)
	}
	sh, sm, err := ParseClock(slot.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	eh, em, err := ParseClock(slot.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, time.UTC)
	end = time.Date(day.Year(), day.Month(), day.Day(), eh, em, 0, 0, time.UTC)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}

// Validate checks every shift type in the catalog for parseable times. The
// returned error names the offending weekday and shift.
func (c ShiftCatalog) Validate() error {
	for _, day := range WeekdayNames {
		for name, st := range c[day] {
			if _, _, err := ParseClock(st.Start); err != nil {
				return &ConfigError{Field: fmt.Sprintf("shift_configuration.%s.%s.start", day, name), Detail: err.Error()}
			}
			if _, _, err := ParseClock(st.End); err != nil {
				return &ConfigError{Field: fmt.Sprintf("shift_configuration.%s.%s.end", day, name), Detail: err.Error()}
			}
		}
	}
	return nil
}

// Clone deep-copies the catalog, nested per-day maps included, so edits to
// the copy never reach the original.
func (c ShiftCatalog) Clone() ShiftCatalog {
	if c == nil {
		return nil
	}
	out := make(ShiftCatalog, len(c))
	for day, shifts := range c {
		dayCopy := make(map[string]ShiftType, len(shifts))
		for name, st := range shifts {
			dayCopy[name] = st
		}
		out[day] = dayCopy
	}
	return out
}

// TotalShiftTypes counts shift types across the whole week.
func (c ShiftCatalog) TotalShiftTypes() int {
	n := 0
	for _, shifts := range c {
		n += len(shifts)
	}
	return n
}

// AllShiftNames returns the deduplicated union of shift type names defined
// anywhere in the catalog, in weekday-then-name order.
func (c ShiftCatalog) AllShiftNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, day := range WeekdayNames {
		dayNames := make([]string, 0, len(c[day]))
		for name := range c[day] {
			dayNames = append(dayNames, name)
		}
		sort.Strings(dayNames)
		for _, name := range dayNames {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
