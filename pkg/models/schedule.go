package models

// CountByMember tallies assigned slots per member. Members from the roster
// argument are present even at zero so callers see starved members.
func (s Schedule) CountByMember(roster []string) map[string]int {
	counts := make(map[string]int, len(roster))
	for _, m := range roster {
		counts[m] = 0
	}
	for _, slot := range s {
		if slot.Member != "" {
			counts[slot.Member]++
		}
	}
	return counts
}

// Spread is the gap between the busiest and quietest member's shift counts.
func (s Schedule) Spread(roster []string) int {
	if len(roster) == 0 {
		return 0
	}
	counts := s.CountByMember(roster)
	min, max := -1, 0
	for _, m := range roster {
		c := counts[m]
		if min < 0 || c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return max - min
}

// SlotsOn returns the indexes of all slots on a date.
func (s Schedule) SlotsOn(date string) []int {
	var idx []int
	for i, slot := range s {
		if slot.Date == date {
			idx = append(idx, i)
		}
	}
	return idx
}

// FindSlot locates the slot matching a (date, shift, member) triple, -1 when
// absent.
func (s Schedule) FindSlot(date, shift, member string) int {
	for i, slot := range s {
		if slot.Date == date && slot.Shift == shift && slot.Member == member {
			return i
		}
	}
	return -1
}

// SupplementalCount reports how many slots were synthesized to satisfy the
// minimum-shifts floor.
func (s Schedule) SupplementalCount() int {
	n := 0
	for _, slot := range s {
		if slot.Supplemental {
			n++
		}
	}
	return n
}
