package scheduler

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolsched/rota-api-go/pkg/models"
)

func mondayOnlyCatalog() models.ShiftCatalog {
	return models.ShiftCatalog{
		"Monday": {
			"7a-7p": {Start: "07:00", End: "19:00", Hours: 12},
		},
	}
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestGenerateSlots_MondayOnlyJanuary(t *testing.T) {
	s := New([]string{"A", "B"}, mondayOnlyCatalog(), nil, seeded(1))

	slots := s.GenerateSlots(2024, 1)
	require.Len(t, slots, 5)

	wantDates := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29"}
	for i, slot := range slots {
		assert.Equal(t, wantDates[i], slot.Date)
		assert.Equal(t, "Monday", slot.Day)
		assert.Equal(t, "7a-7p", slot.Shift)
		assert.False(t, slot.Supplemental)
	}
}

func TestAssign_EverySlotGetsARosterMember(t *testing.T) {
	roster := []string{"A", "B", "C"}
	s := New(roster, models.DefaultShiftConfig, nil, seeded(7))

	sched, err := s.Run(2024, 3)
	require.NoError(t, err)
	require.NotEmpty(t, sched)

	valid := map[string]bool{"A": true, "B": true, "C": true}
	for _, slot := range sched {
		assert.True(t, valid[slot.Member], "slot %s %s assigned to unknown member %q", slot.Date, slot.Shift, slot.Member)
	}
}

func TestAssign_BalancedWithoutConstraints(t *testing.T) {
	roster := []string{"A", "B"}
	s := New(roster, mondayOnlyCatalog(), nil, seeded(42))

	sched, err := s.Run(2024, 1)
	require.NoError(t, err)
	require.Len(t, sched, 5)

	counts := sched.CountByMember(roster)
	assert.Equal(t, 5, counts["A"]+counts["B"])
	assert.LessOrEqual(t, sched.Spread(roster), 1, "one member must not run far ahead: %v", counts)
}

func TestAssign_BalanceAcrossFullWeek(t *testing.T) {
	roster := []string{"Chen", "Patel", "Johnson", "Okafor", "Valdez"}
	s := New(roster, models.DefaultShiftConfig, nil, seeded(99))

	sched, err := s.Run(2024, 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, sched.Spread(roster), 2, "counts: %v", sched.CountByMember(roster))
}

func TestAssign_FixedRuleWinsEveryMatchingSlot(t *testing.T) {
	roster := []string{"A", "B", "C"}
	constraints := models.ConstraintSet{
		"A": {FixedShifts: map[string]string{"Monday": "7a-7p"}},
	}
	s := New(roster, mondayOnlyCatalog(), constraints, seeded(3))

	sched, err := s.Run(2024, 1)
	require.NoError(t, err)
	for _, slot := range sched {
		assert.Equal(t, "A", slot.Member, "Monday %s slot on %s", slot.Shift, slot.Date)
	}
}

func TestAssign_FixedRuleOverridesDayOff(t *testing.T) {
	roster := []string{"A", "B"}
	constraints := models.ConstraintSet{
		"A": {
			FixedShifts: map[string]string{"Monday": "7a-7p"},
			DaysOff:     map[string][]string{"2024-01": {"2024-01-01", "2024-01-15"}},
		},
	}
	s := New(roster, mondayOnlyCatalog(), constraints, seeded(3))

	sched, err := s.Run(2024, 1)
	require.NoError(t, err)
	for _, date := range []string{"2024-01-01", "2024-01-15"} {
		i := sched.FindSlot(date, "7a-7p", "A")
		assert.GreaterOrEqual(t, i, 0, "fixed rule must still hold on requested day off %s", date)
	}
}

func TestAssign_DayOffSuppressesNonFixedShifts(t *testing.T) {
	roster := []string{"A", "B", "C"}
	constraints := models.ConstraintSet{
		"B": {DaysOff: map[string][]string{"2024-01": {
			"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29",
		}}},
	}
	s := New(roster, mondayOnlyCatalog(), constraints, seeded(11))

	sched, err := s.Run(2024, 1)
	require.NoError(t, err)
	for _, slot := range sched {
		assert.NotEqual(t, "B", slot.Member, "B requested %s off", slot.Date)
	}
}

func TestAssign_MemberFixedElsewhereIsUnavailable(t *testing.T) {
	catalog := models.ShiftCatalog{
		"Monday": {
			"7a-7p": {Start: "07:00", End: "19:00", Hours: 12},
			"7p-7a": {Start: "19:00", End: "07:00", Hours: 12},
		},
	}
	roster := []string{"A", "B", "C"}
	constraints := models.ConstraintSet{
		"A": {FixedShifts: map[string]string{"Monday": "7p-7a"}},
	}
	s := New(roster, catalog, constraints, seeded(5))

	sched, err := s.Run(2024, 1)
	require.NoError(t, err)
	for _, slot := range sched {
		if slot.Shift == "7a-7p" {
			assert.NotEqual(t, "A", slot.Member, "A is committed to the night shift on Mondays")
		} else {
			assert.Equal(t, "A", slot.Member)
		}
	}
}

func TestAssign_PrefersMembersNotWorkingThatDay(t *testing.T) {
	catalog := models.ShiftCatalog{
		"Monday": {
			"7a-7p":   {Start: "07:00", End: "19:00", Hours: 12},
			"12p-12a": {Start: "12:00", End: "00:00", Hours: 12},
		},
	}
	roster := []string{"A", "B", "C"}
	s := New(roster, catalog, nil, seeded(21))

	sched, err := s.Run(2024, 1)
	require.NoError(t, err)

	byDate := make(map[string][]string)
	for _, slot := range sched {
		byDate[slot.Date] = append(byDate[slot.Date], slot.Member)
	}
	for date, members := range byDate {
		require.Len(t, members, 2)
		assert.NotEqual(t, members[0], members[1], "double-booked on %s with alternatives available", date)
	}
}

func TestAssign_InsufficientRoster(t *testing.T) {
	s := New([]string{"A"}, mondayOnlyCatalog(), nil, seeded(1))
	_, err := s.Run(2024, 1)
	assert.ErrorIs(t, err, models.ErrInsufficientRoster)
}

func TestRun_EmptyCatalog(t *testing.T) {
	s := New([]string{"A", "B"}, models.ShiftCatalog{}, nil, seeded(1))
	_, err := s.Run(2024, 1)
	assert.ErrorIs(t, err, models.ErrEmptyCatalog)
}

func TestRun_FixedRuleNamingUnknownShiftType(t *testing.T) {
	constraints := models.ConstraintSet{
		"A": {FixedShifts: map[string]string{"Monday": "3p-3a"}},
	}
	s := New([]string{"A", "B"}, mondayOnlyCatalog(), constraints, seeded(1))

	_, err := s.Run(2024, 1)
	var cfgErr *models.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Field, "constraints.A.fixed_shifts.Monday")
}

func TestGenerateSlots_SupplementalPadding(t *testing.T) {
	roster := []string{"A", "B"}
	s := New(roster, mondayOnlyCatalog(), nil, seeded(8))
	s.MinShiftsPerMember = 5

	slots := s.GenerateSlots(2024, 1)
	assert.GreaterOrEqual(t, len(slots), 5)
	assert.LessOrEqual(t, len(slots), 10)

	for _, slot := range slots {
		if slot.Supplemental {
			assert.True(t, strings.HasSuffix(slot.Shift, SupplementalSuffix))
			assert.Equal(t, "Monday", slot.Day, "only Mondays have configured shifts")
		}
	}

	for i := 1; i < len(slots); i++ {
		assert.LessOrEqual(t, slots[i-1].Date, slots[i].Date, "slots must stay date-sorted")
	}
}

func TestAssign_DeterministicWithSameSeed(t *testing.T) {
	roster := []string{"A", "B", "C", "D"}

	run := func() models.Schedule {
		s := New(roster, models.DefaultShiftConfig, nil, seeded(1234))
		s.MinShiftsPerMember = 2
		sched, err := s.Run(2024, 2)
		require.NoError(t, err)
		return sched
	}

	assert.Equal(t, run(), run())
}
