package scheduler

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/toolsched/rota-api-go/pkg/models"
)

// SupplementalSuffix marks slots synthesized to reach the minimum-shifts
// floor, so they read distinctly from regular coverage.
const SupplementalSuffix = " (extra)"

// Scheduler fills one month's shift slots from a roster, honoring fixed
// weekly commitments and day-off requests while balancing the load.
type Scheduler struct {
	Roster             []string
	Catalog            models.ShiftCatalog
	Constraints        models.ConstraintSet
	MinShiftsPerMember int

	rng *rand.Rand
}

// New creates a scheduler. A nil rng falls back to a time-seeded source;
// tests pass a fixed seed for reproducible tie-breaks and supplemental
// placement.
func New(roster []string, catalog models.ShiftCatalog, constraints models.ConstraintSet, rng *rand.Rand) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scheduler{
		Roster:      roster,
		Catalog:     catalog,
		Constraints: constraints,
		rng:         rng,
	}
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GenerateSlots expands a month into its concrete slot list: one slot per
// shift type per day from the catalog, padded with random supplemental slots
// when regular coverage cannot give every member MinShiftsPerMember shifts.
// The result is sorted by date.
func (s *Scheduler) GenerateSlots(year, month int) []models.ShiftSlot {
	days := daysInMonth(year, month)

	var slots []models.ShiftSlot
	for day := 1; day <= days; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		weekday := models.WeekdayName(date)
		for _, name := range shiftNamesFor(s.Catalog[weekday]) {
			st := s.Catalog[weekday][name]
			slots = append(slots, models.ShiftSlot{
				Date:      date.Format("2006-01-02"),
				Day:       weekday,
				Shift:     name,
				StartTime: st.Start,
				EndTime:   st.End,
			})
		}
	}

	required := len(s.Roster) * s.MinShiftsPerMember
	if needed := required - len(slots); needed > 0 {
		slots = append(slots, s.supplementalSlots(year, month, needed)...)
	}

	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Date < slots[j].Date })
	return slots
}

// supplementalSlots synthesizes extra coverage on random days. The shift type
// is drawn from the union across all weekdays; when the chosen day's weekday
// does not define it, any type valid for that weekday stands in, and days
// with no configured shifts are skipped.
func (s *Scheduler) supplementalSlots(year, month, needed int) []models.ShiftSlot {
	union := s.Catalog.AllShiftNames()
	if len(union) == 0 {
		return nil
	}

	days := daysInMonth(year, month)
	var extra []models.ShiftSlot
	for i := 0; i < needed; i++ {
		date := time.Date(year, time.Month(month), s.rng.Intn(days)+1, 0, 0, 0, 0, time.UTC)
		weekday := models.WeekdayName(date)
		dayShifts := s.Catalog[weekday]
		if len(dayShifts) == 0 {
			continue
		}

		name := union[s.rng.Intn(len(union))]
		st, ok := dayShifts[name]
		if !ok {
			names := shiftNamesFor(dayShifts)
			name = names[s.rng.Intn(len(names))]
			st = dayShifts[name]
		}

		extra = append(extra, models.ShiftSlot{
			Date:         date.Format("2006-01-02"),
			Day:          weekday,
			Shift:        name + SupplementalSuffix,
			StartTime:    st.Start,
			EndTime:      st.End,
			Supplemental: true,
		})
	}
	return extra
}

// Assign fills every slot in order. Fixed weekly commitments win first and
// override the member's own day-off requests; otherwise candidates are
// filtered by availability, preferred when not already working that date, and
// tie-broken toward the lowest running shift count with a random pick among
// equals. Every slot receives an assignee: when filters empty the candidate
// set, the full roster steps back in.
func (s *Scheduler) Assign(slots []models.ShiftSlot) (models.Schedule, error) {
	if len(s.Roster) < 2 {
		return nil, models.ErrInsufficientRoster
	}

	shiftCount := make(map[string]int, len(s.Roster))
	for _, m := range s.Roster {
		shiftCount[m] = 0
	}
	dailyAssigned := make(map[string]map[string]bool)

	for i := range slots {
		slot := &slots[i]
		monthKey := slot.Date[:7]

		member := s.fixedHolder(slot)
		if member == "" {
			candidates := s.availableFor(slot, monthKey)
			if len(candidates) == 0 {
				candidates = s.Roster
			}

			if working := dailyAssigned[slot.Date]; len(working) > 0 {
				var free []string
				for _, m := range candidates {
					if !working[m] {
						free = append(free, m)
					}
				}
				if len(free) > 0 {
					candidates = free
				}
			}

			minCount := shiftCount[candidates[0]]
			for _, m := range candidates[1:] {
				if shiftCount[m] < minCount {
					minCount = shiftCount[m]
				}
			}
			var leastLoaded []string
			for _, m := range candidates {
				if shiftCount[m] == minCount {
					leastLoaded = append(leastLoaded, m)
				}
			}
			member = leastLoaded[s.rng.Intn(len(leastLoaded))]
		}

		slot.Member = member
		shiftCount[member]++
		if dailyAssigned[slot.Date] == nil {
			dailyAssigned[slot.Date] = make(map[string]bool)
		}
		dailyAssigned[slot.Date][member] = true
	}

	return models.Schedule(slots), nil
}

// fixedHolder returns the first roster member whose fixed weekly rule names
// exactly this slot's shift type, or "" when none does.
func (s *Scheduler) fixedHolder(slot *models.ShiftSlot) string {
	for _, m := range s.Roster {
		if s.Constraints.FixedShiftFor(m, slot.Day) == slot.Shift {
			return m
		}
	}
	return ""
}

// availableFor filters the roster down to members not on a day off for the
// slot's date and not committed to a different shift type that weekday.
func (s *Scheduler) availableFor(slot *models.ShiftSlot, monthKey string) []string {
	var candidates []string
	for _, m := range s.Roster {
		if containsDate(s.Constraints.DaysOffFor(m, monthKey), slot.Date) {
			continue
		}
		if fixed := s.Constraints.FixedShiftFor(m, slot.Day); fixed != "" && fixed != slot.Shift {
			continue
		}
		candidates = append(candidates, m)
	}
	return candidates
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

// Run validates inputs, generates the month's slots and assigns them in one
// call. It fails before generation on an empty catalog or a roster too small
// to schedule.
func (s *Scheduler) Run(year, month int) (models.Schedule, error) {
	if month < 1 || month > 12 {
		return nil, &models.ConfigError{Field: "month", Detail: fmt.Sprintf("%d is not a calendar month", month)}
	}
	if s.Catalog.TotalShiftTypes() == 0 {
		return nil, models.ErrEmptyCatalog
	}
	if err := s.Catalog.Validate(); err != nil {
		return nil, err
	}
	if err := s.Constraints.Validate(s.Catalog); err != nil {
		return nil, err
	}
	return s.Assign(s.GenerateSlots(year, month))
}

func shiftNamesFor(shifts map[string]models.ShiftType) []string {
	names := make([]string, 0, len(shifts))
	for name := range shifts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
