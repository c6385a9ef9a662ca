package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolsched/rota-api-go/pkg/models"
)

func seedInput(seed int64) models.ScheduleInput {
	return models.ScheduleInput{
		Year:        2024,
		Month:       1,
		TeamMembers: []string{"A", "B", "C"},
		ShiftConfiguration: models.ShiftCatalog{
			"Monday": {"7a-7p": {Start: "07:00", End: "19:00", Hours: 12}},
		},
		Seed: &seed,
	}
}

func TestStore_GenerateReplacesSessionState(t *testing.T) {
	s := NewStore()
	resp, err := s.Generate(seedInput(5))
	require.NoError(t, err)
	require.Len(t, resp.Schedule, 5)

	sched, year, month := s.Schedule()
	assert.Equal(t, resp.Schedule, sched)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 1, month)
	assert.Equal(t, []string{"A", "B", "C"}, s.Roster())
}

func TestStore_GenerateFallsBackToSessionDefaults(t *testing.T) {
	s := NewStore()
	resp, err := s.Generate(models.ScheduleInput{Year: 2024, Month: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Schedule)
	assert.Len(t, resp.ShiftsPerMember, len(models.DefaultTeamMembers))
}

func TestStore_ImportRejectsBadConstraintsWithoutCommitting(t *testing.T) {
	s := NewStore()
	doc := []byte(`
team_members:
  - X
  - Y
constraints:
  X:
    fixed_shifts:
      Monday: no-such-shift
`)
	_, err := s.Import(doc)
	require.Error(t, err)
	assert.Equal(t, models.DefaultTeamMembers, s.Roster(), "failed import must not change the roster")
}

func TestStore_ConcurrentGenerateRunsSerialize(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			_, err := s.Generate(seedInput(seed))
			assert.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()

	sched, _, _ := s.Schedule()
	assert.Len(t, sched, 5, "state reflects one complete run, not an interleaving")
}

func TestStore_ScheduleSnapshotsAreIsolatedFromSwaps(t *testing.T) {
	s := NewStore()
	resp, err := s.Generate(seedInput(42))
	require.NoError(t, err)

	snap, _, _ := s.Schedule()
	require.Equal(t, resp.Schedule, snap)

	// Swap the first two slots' holders.
	a, b := snap[0], snap[1]
	req, err := s.AddSwap(models.SwapRequest{
		FromMember: a.Member,
		ToMember:   b.Member,
		GiveSlot:   models.SlotRef{Date: a.Date, Shift: a.Shift},
		GetSlot:    models.SlotRef{Date: b.Date, Shift: b.Shift},
	})
	require.NoError(t, err)
	_, err = s.ResolveSwap(req.ID, true)
	require.NoError(t, err)

	assert.Equal(t, a.Member, snap[0].Member, "earlier snapshot must not see the swap")
	assert.Equal(t, a.Member, resp.Schedule[0].Member, "generate response must not see the swap")

	after, _, _ := s.Schedule()
	assert.Equal(t, b.Member, after[0].Member)
	assert.Equal(t, a.Member, after[1].Member)
}

func TestStore_ScheduleReadsDuringSwapApprovals(t *testing.T) {
	s := NewStore()
	_, err := s.Generate(seedInput(42))
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			sched, _, _ := s.Schedule()
			for _, slot := range sched {
				assert.NotEmpty(t, slot.Member)
			}
		}
	}()

	for i := 0; i < 50; i++ {
		sched, _, _ := s.Schedule()
		a, b := sched[0], sched[1]
		req, err := s.AddSwap(models.SwapRequest{
			FromMember: a.Member,
			ToMember:   b.Member,
			GiveSlot:   models.SlotRef{Date: a.Date, Shift: a.Shift},
			GetSlot:    models.SlotRef{Date: b.Date, Shift: b.Shift},
		})
		require.NoError(t, err)
		_, err = s.ResolveSwap(req.ID, true)
		require.NoError(t, err)
	}
	<-done
}

func TestNewStore_DoesNotAliasDefaultCatalog(t *testing.T) {
	s := NewStore()
	s.shiftConfig["Monday"]["7a-7p"] = models.ShiftType{Start: "08:00", End: "20:00", Hours: 12}
	s.shiftConfig["Monday"]["scribbled"] = models.ShiftType{}

	assert.Equal(t, "07:00", models.DefaultShiftConfig["Monday"]["7a-7p"].Start)
	assert.NotContains(t, models.DefaultShiftConfig["Monday"], "scribbled")
}

func TestStore_ExportUsesSessionState(t *testing.T) {
	s := NewStore()
	data, err := s.Export(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, string(data), "team_members:")
	assert.Contains(t, string(data), "shift_configuration:")
}
