package export

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/toolsched/rota-api-go/pkg/models"
)

const icsTimestamp = "20060102T150405"

// ICS renders the schedule as an iCalendar stream, one VEVENT per slot.
// Overnight shifts end on the following calendar day. Event UIDs derive from
// the (date, shift, member) triple so re-exporting the same schedule is
// stable; if a manual edit produced a duplicate triple, the collision gets a
// random disambiguator so the stream stays valid.
func ICS(sched models.Schedule) (string, error) {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Tool Sched//EN",
	}

	seen := make(map[string]bool, len(sched))
	for _, slot := range sched {
		start, end, err := models.SlotTimes(slot)
		if err != nil {
			return "", err
		}

		uid := fmt.Sprintf("%s-%s-%s", slot.Date, slot.Shift, strings.ReplaceAll(slot.Member, " ", ""))
		if seen[uid] {
			uid += "-" + uuid.NewString()[:8]
		}
		seen[uid] = true

		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+uid,
			"DTSTART:"+start.Format(icsTimestamp),
			"DTEND:"+end.Format(icsTimestamp),
			fmt.Sprintf("SUMMARY:%s - %s", slot.Member, slot.Shift),
			fmt.Sprintf("DESCRIPTION:Shift assignment for %s", slot.Member),
			"LOCATION:Workplace",
			"END:VEVENT",
		)
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\n"), nil
}
