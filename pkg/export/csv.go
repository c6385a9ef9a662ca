// Package export renders a finished schedule into its outbound formats:
// delimited rows, an iCalendar event stream, a month-grid report and a
// multi-sheet workbook.
package export

import (
	"encoding/csv"
	"io"

	"github.com/toolsched/rota-api-go/pkg/models"
)

// CSVHeader is the column order of the tabular schedule export.
var CSVHeader = []string{"date", "day", "shift", "start_time", "end_time", "member"}

// WriteCSV streams the schedule as flat delimited rows, one per slot, in
// schedule order.
func WriteCSV(w io.Writer, sched models.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, slot := range sched {
		if err := cw.Write([]string{slot.Date, slot.Day, slot.Shift, slot.StartTime, slot.EndTime, slot.Member}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
