// Package session owns the in-memory planning state for one scheduling
// session: roster, shift configuration, constraints, the current schedule and
// its swap requests. A single mutex serializes assignment runs and mutations,
// since the engine mutates its counters as it iterates.
package session

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/toolsched/rota-api-go/pkg/config"
	"github.com/toolsched/rota-api-go/pkg/models"
	"github.com/toolsched/rota-api-go/pkg/scheduler"
)

// Store is the planning session state. The zero value is not usable; call
// NewStore, which seeds the stock roster and weekly shift pattern.
type Store struct {
	mu sync.Mutex

	teamMembers []string
	shiftConfig models.ShiftCatalog
	constraints models.ConstraintSet
	schedule    models.Schedule
	year, month int
	swaps       []models.SwapRequest
}

// NewStore creates a session seeded with the default roster and coverage.
func NewStore() *Store {
	return &Store{
		teamMembers: append([]string(nil), models.DefaultTeamMembers...),
		shiftConfig: models.DefaultShiftConfig.Clone(),
		constraints: models.ConstraintSet{},
	}
}

// Generate runs one assignment pass against the session, treating the whole
// run as atomic. Input fields left empty fall back to session state; the
// inputs used and the resulting schedule replace the session's copies.
func (s *Store) Generate(input models.ScheduleInput) (models.ScheduleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster := input.TeamMembers
	if len(roster) == 0 {
		roster = s.teamMembers
	}
	catalog := input.ShiftConfiguration
	if catalog == nil {
		catalog = s.shiftConfig
	}
	constraints := input.Constraints
	if constraints == nil {
		constraints = s.constraints
	}

	var rng *rand.Rand
	if input.Seed != nil {
		rng = rand.New(rand.NewSource(*input.Seed))
	}

	sched := scheduler.New(roster, catalog, constraints, rng)
	sched.MinShiftsPerMember = input.MinShiftsPerMember
	result, err := sched.Run(input.Year, input.Month)
	if err != nil {
		return models.ScheduleResponse{}, err
	}

	s.teamMembers = roster
	s.shiftConfig = catalog
	s.constraints = constraints
	s.schedule = result
	s.year, s.month = input.Year, input.Month
	s.swaps = nil

	// The response gets its own copy; the session keeps mutating its slots
	// through swap approvals after the lock is released.
	return models.ScheduleResponse{
		Year:            input.Year,
		Month:           input.Month,
		Schedule:        append(models.Schedule(nil), result...),
		ShiftsPerMember: result.CountByMember(roster),
		Spread:          result.Spread(roster),
		Supplemental:    result.SupplementalCount(),
	}, nil
}

// Export serializes the session's configuration as the interchange document.
func (s *Store) Export(now time.Time) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return config.Export(s.teamMembers, s.shiftConfig, s.constraints, now)
}

// Import merge-replaces the parts an interchange document provides. The
// merged constraints are validated against the merged catalog before any of
// it is committed, so a bad document leaves the session untouched.
func (s *Store) Import(data []byte) ([]string, error) {
	res, err := config.Import(data)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.shiftConfig
	if res.ShiftConfiguration != nil {
		catalog = res.ShiftConfiguration
	}
	constraints := s.constraints
	if res.Constraints != nil {
		constraints = res.Constraints
	}
	if err := constraints.Validate(catalog); err != nil {
		return nil, err
	}

	if res.TeamMembers != nil {
		s.teamMembers = res.TeamMembers
	}
	s.shiftConfig = catalog
	s.constraints = constraints
	return res.Summary, nil
}

// Schedule returns a copy of the current schedule and its target month. The
// copy keeps callers that read it outside the lock isolated from later swap
// approvals mutating the session's slots.
func (s *Store) Schedule() (models.Schedule, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(models.Schedule(nil), s.schedule...), s.year, s.month
}

// Roster returns the current team members.
func (s *Store) Roster() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.teamMembers...)
}

// AddSwap records a pending swap request against the current schedule. Both
// referenced slots must exist and be held by the named members.
func (s *Store) AddSwap(req models.SwapRequest) (models.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule.FindSlot(req.GiveSlot.Date, req.GiveSlot.Shift, req.FromMember) < 0 {
		return models.SwapRequest{}, fmt.Errorf("%s does not hold %s on %s", req.FromMember, req.GiveSlot.Shift, req.GiveSlot.Date)
	}
	if s.schedule.FindSlot(req.GetSlot.Date, req.GetSlot.Shift, req.ToMember) < 0 {
		return models.SwapRequest{}, fmt.Errorf("%s does not hold %s on %s", req.ToMember, req.GetSlot.Shift, req.GetSlot.Date)
	}

	req.ID = uuid.NewString()
	req.Status = models.SwapPending
	s.swaps = append(s.swaps, req)
	return req, nil
}

// Swaps lists all swap requests in creation order.
func (s *Store) Swaps() []models.SwapRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SwapRequest(nil), s.swaps...)
}

// ResolveSwap approves or rejects a pending request. Approval executes the
// two-slot exchange and marks the request completed.
func (s *Store) ResolveSwap(id string, approve bool) (models.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.swaps {
		if s.swaps[i].ID != id {
			continue
		}
		if s.swaps[i].Status != models.SwapPending {
			return models.SwapRequest{}, fmt.Errorf("swap %s is already %s", id, s.swaps[i].Status)
		}
		if !approve {
			s.swaps[i].Status = models.SwapRejected
			return s.swaps[i], nil
		}
		s.swaps[i].Status = models.SwapApproved
		if err := s.schedule.ExecuteSwap(s.swaps[i]); err != nil {
			s.swaps[i].Status = models.SwapRejected
			return models.SwapRequest{}, err
		}
		s.swaps[i].Status = models.SwapCompleted
		return s.swaps[i], nil
	}
	return models.SwapRequest{}, fmt.Errorf("swap %s not found", id)
}
