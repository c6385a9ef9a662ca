package models

import "fmt"

// SwapStatus is the lifecycle state of a shift exchange request.
type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapApproved  SwapStatus = "approved"
	SwapRejected  SwapStatus = "rejected"
	SwapCompleted SwapStatus = "completed"
)

// SlotRef identifies a slot by its (date, shift) pair within one schedule.
type SlotRef struct {
	Date  string `json:"date"`
	Shift string `json:"shift"`
}

// SwapRequest asks to exchange the assignees of two slots between two
// members. Approval executes the exchange; rejection leaves the schedule
// untouched.
type SwapRequest struct {
	ID         string     `json:"id"`
	FromMember string     `json:"from_member"`
	ToMember   string     `json:"to_member"`
	GiveSlot   SlotRef    `json:"give_slot"`
	GetSlot    SlotRef    `json:"get_slot"`
	Status     SwapStatus `json:"status"`
}

// ExecuteSwap exchanges the assignees of the two referenced slots in place.
// Both slots must currently be held by the named members; the schedule is not
// modified on error, so the one-member-per-slot invariant always holds.
func (s Schedule) ExecuteSwap(req SwapRequest) error {
	give := s.FindSlot(req.GiveSlot.Date, req.GiveSlot.Shift, req.FromMember)
	if give < 0 {
		return fmt.Errorf("swap %s: %s does not hold %s on %s",
			req.ID, req.FromMember, req.GiveSlot.Shift, req.GiveSlot.Date)
	}
	get := s.FindSlot(req.GetSlot.Date, req.GetSlot.Shift, req.ToMember)
	if get < 0 {
		return fmt.Errorf("swap %s: %s does not hold %s on %s",
			req.ID, req.ToMember, req.GetSlot.Shift, req.GetSlot.Date)
	}
	s[give].Member, s[get].Member = s[get].Member, s[give].Member
	return nil
}
