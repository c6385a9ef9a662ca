package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/toolsched/rota-api-go/pkg/models"
)

// DayCell is one day of the month grid. Day is 0 for padding cells outside
// the month; Entries are the day's slots sorted by start time, rendered as
// "shift: member".
type DayCell struct {
	Day     int      `json:"day"`
	Entries []string `json:"entries,omitempty"`
}

// GridReport is the 7-column Monday-Sunday month view of a schedule.
type GridReport struct {
	Year            int         `json:"year"`
	Month           int         `json:"month"`
	MaxShiftsPerDay int         `json:"max_shifts_per_day"`
	Weeks           [][]DayCell `json:"weeks"`
}

// monthCalendar lays a month out as Monday-first weeks, 0-padded at the
// edges, like the week rows of a wall calendar.
func monthCalendar(year, month int) [][]int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	offset := (int(first.Weekday()) + 6) % 7

	var weeks [][]int
	week := make([]int, 7)
	col := offset
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// MonthGrid builds the grid report. Every populated day lists its slots in
// start-time order; MaxShiftsPerDay tells tabular renderers how many entry
// rows to reserve per week so ragged days line up.
func MonthGrid(sched models.Schedule, year, month int) GridReport {
	byDate := make(map[string][]models.ShiftSlot)
	for _, slot := range sched {
		byDate[slot.Date] = append(byDate[slot.Date], slot)
	}
	for date := range byDate {
		slots := byDate[date]
		sort.SliceStable(slots, func(i, j int) bool { return slots[i].StartTime < slots[j].StartTime })
		byDate[date] = slots
	}

	report := GridReport{Year: year, Month: month}
	for _, week := range monthCalendar(year, month) {
		cells := make([]DayCell, 7)
		for col, day := range week {
			cells[col] = DayCell{Day: day}
			if day == 0 {
				continue
			}
			date := fmt.Sprintf("%d-%02d-%02d", year, month, day)
			for _, slot := range byDate[date] {
				cells[col].Entries = append(cells[col].Entries, fmt.Sprintf("%s: %s", slot.Shift, slot.Member))
			}
			if n := len(cells[col].Entries); n > report.MaxShiftsPerDay {
				report.MaxShiftsPerDay = n
			}
		}
		report.Weeks = append(report.Weeks, cells)
	}
	return report
}
