package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/toolsched/rota-api-go/pkg/models"
)

var calendarHeaders = []string{"Week", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Workbook builds the three-sheet schedule workbook: raw rows on Schedule,
// per-member totals on Summary, and the month grid on Calendar with each
// week as a date row followed by stacked shift rows sized to the busiest day.
func Workbook(sched models.Schedule, year, month int) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Schedule"); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet("Summary"); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet("Calendar"); err != nil {
		return nil, err
	}

	if err := writeScheduleSheet(f, sched); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, sched); err != nil {
		return nil, err
	}
	if err := writeCalendarSheet(f, sched, year, month); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteWorkbook renders the workbook to w in xlsx form.
func WriteWorkbook(w io.Writer, sched models.Schedule, year, month int) error {
	f, err := Workbook(sched, year, month)
	if err != nil {
		return err
	}
	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writeScheduleSheet(f *excelize.File, sched models.Schedule) error {
	if err := setRow(f, "Schedule", 1, CSVHeader); err != nil {
		return err
	}
	for i, slot := range sched {
		row := []string{slot.Date, slot.Day, slot.Shift, slot.StartTime, slot.EndTime, slot.Member}
		if err := setRow(f, "Schedule", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, sched models.Schedule) error {
	counts := make(map[string]int)
	for _, slot := range sched {
		if slot.Member != "" {
			counts[slot.Member]++
		}
	}
	members := make([]string, 0, len(counts))
	for m := range counts {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool {
		if counts[members[i]] != counts[members[j]] {
			return counts[members[i]] > counts[members[j]]
		}
		return members[i] < members[j]
	})

	if err := setRow(f, "Summary", 1, []string{"Member", "Total_Shifts"}); err != nil {
		return err
	}
	for i, m := range members {
		if err := setRow(f, "Summary", i+2, []string{m, fmt.Sprintf("%d", counts[m])}); err != nil {
			return err
		}
	}
	return nil
}

func writeCalendarSheet(f *excelize.File, sched models.Schedule, year, month int) error {
	const sheet = "Calendar"
	grid := MonthGrid(sched, year, month)

	if err := setRow(f, sheet, 1, calendarHeaders); err != nil {
		return err
	}

	row := 2
	var dateRows, entryRows []int
	for weekNum, week := range grid.Weeks {
		dateRow := []string{fmt.Sprintf("Week %d", weekNum+1)}
		for _, cell := range week {
			if cell.Day == 0 {
				dateRow = append(dateRow, "")
			} else {
				dateRow = append(dateRow, fmt.Sprintf("%d", cell.Day))
			}
		}
		if err := setRow(f, sheet, row, dateRow); err != nil {
			return err
		}
		dateRows = append(dateRows, row)
		row++

		for level := 0; level < grid.MaxShiftsPerDay; level++ {
			entryRow := []string{""}
			for _, cell := range week {
				if level < len(cell.Entries) {
					entryRow = append(entryRow, cell.Entries[level])
				} else {
					entryRow = append(entryRow, "")
				}
			}
			if err := setRow(f, sheet, row, entryRow); err != nil {
				return err
			}
			entryRows = append(entryRows, row)
			row++
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "H", 18); err != nil {
		return err
	}
	for _, r := range dateRows {
		if err := f.SetRowHeight(sheet, r, 20); err != nil {
			return err
		}
	}
	for _, r := range entryRows {
		if err := f.SetRowHeight(sheet, r, 18); err != nil {
			return err
		}
	}

	weekStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	dayStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return err
	}
	lastRow := row - 1
	if lastRow < 1 {
		lastRow = 1
	}
	if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("A%d", lastRow), weekStyle); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "B2", fmt.Sprintf("H%d", lastRow), dayStyle)
}
