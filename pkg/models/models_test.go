package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("07:30")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 30, m)

	for _, bad := range []string{"", "7", "25:00", "12:60", "noon", "12:3x"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestSlotTimes_Overnight(t *testing.T) {
	slot := ShiftSlot{Date: "2024-01-01", StartTime: "19:00", EndTime: "07:00"}
	start, end, err := SlotTimes(slot)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T19:00:00Z", start.Format("2006-01-02T15:04:05Z"))
	assert.Equal(t, "2024-01-02T07:00:00Z", end.Format("2006-01-02T15:04:05Z"))
}

func TestSlotTimes_SameDay(t *testing.T) {
	slot := ShiftSlot{Date: "2024-01-01", StartTime: "07:00", EndTime: "19:00"}
	start, end, err := SlotTimes(slot)
	require.NoError(t, err)
	assert.Equal(t, start.Day(), end.Day())
}

func TestConstraintSet_Validate(t *testing.T) {
	catalog := ShiftCatalog{
		"Monday": {"7a-7p": {Start: "07:00", End: "19:00", Hours: 12}},
	}

	good := ConstraintSet{"A": {FixedShifts: map[string]string{"Monday": "7a-7p"}}}
	assert.NoError(t, good.Validate(catalog))

	wrongShift := ConstraintSet{"A": {FixedShifts: map[string]string{"Monday": "7p-7a"}}}
	var cfgErr *ConfigError
	require.ErrorAs(t, wrongShift.Validate(catalog), &cfgErr)
	assert.Equal(t, "constraints.A.fixed_shifts.Monday", cfgErr.Field)

	wrongDay := ConstraintSet{"A": {FixedShifts: map[string]string{"Tuesday": "7a-7p"}}}
	assert.Error(t, wrongDay.Validate(catalog))
}

func TestSchedule_ExecuteSwap(t *testing.T) {
	sched := Schedule{
		{Date: "2024-01-01", Day: "Monday", Shift: "7a-7p", Member: "A"},
		{Date: "2024-01-08", Day: "Monday", Shift: "7a-7p", Member: "B"},
	}
	req := SwapRequest{
		ID:         "s1",
		FromMember: "A",
		ToMember:   "B",
		GiveSlot:   SlotRef{Date: "2024-01-01", Shift: "7a-7p"},
		GetSlot:    SlotRef{Date: "2024-01-08", Shift: "7a-7p"},
	}

	require.NoError(t, sched.ExecuteSwap(req))
	assert.Equal(t, "B", sched[0].Member)
	assert.Equal(t, "A", sched[1].Member)
}

func TestSchedule_ExecuteSwap_MissingSlotLeavesScheduleUntouched(t *testing.T) {
	sched := Schedule{
		{Date: "2024-01-01", Day: "Monday", Shift: "7a-7p", Member: "A"},
	}
	req := SwapRequest{
		ID:         "s2",
		FromMember: "A",
		ToMember:   "B",
		GiveSlot:   SlotRef{Date: "2024-01-01", Shift: "7a-7p"},
		GetSlot:    SlotRef{Date: "2024-01-08", Shift: "7a-7p"},
	}

	assert.Error(t, sched.ExecuteSwap(req))
	assert.Equal(t, "A", sched[0].Member)
}

func TestSchedule_SpreadAndCounts(t *testing.T) {
	sched := Schedule{
		{Date: "2024-01-01", Member: "A"},
		{Date: "2024-01-02", Member: "A"},
		{Date: "2024-01-03", Member: "B"},
	}
	roster := []string{"A", "B", "C"}

	counts := sched.CountByMember(roster)
	assert.Equal(t, 2, counts["A"])
	assert.Equal(t, 1, counts["B"])
	assert.Equal(t, 0, counts["C"])
	assert.Equal(t, 2, sched.Spread(roster))
}

func TestShiftCatalog_Clone(t *testing.T) {
	orig := ShiftCatalog{
		"Monday": {"7a-7p": {Start: "07:00", End: "19:00", Hours: 12}},
	}
	cp := orig.Clone()
	cp["Monday"]["7a-7p"] = ShiftType{Start: "09:00", End: "21:00", Hours: 12}
	cp["Tuesday"] = map[string]ShiftType{"7p-7a": {Start: "19:00", End: "07:00", Hours: 12}}

	assert.Equal(t, "07:00", orig["Monday"]["7a-7p"].Start)
	assert.NotContains(t, orig, "Tuesday")
	assert.Nil(t, ShiftCatalog(nil).Clone())
}

func TestShiftCatalog_AllShiftNames(t *testing.T) {
	catalog := ShiftCatalog{
		"Monday":   {"7a-7p": {}, "7p-7a": {}},
		"Saturday": {"7a-7p": {}, "10a-10p": {}},
	}
	assert.Equal(t, []string{"7a-7p", "7p-7a", "10a-10p"}, catalog.AllShiftNames())
}
