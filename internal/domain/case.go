package domain

import (
	"time"
)

type CaseStatus string

const (
	CasePending   CaseStatus = "pending"
	CaseAccepted  CaseStatus = "accepted"
	CaseReady     CaseStatus = "ready"
	CaseCompleted CaseStatus = "completed"
	CaseCancelled CaseStatus = "cancelled"
	CaseSafe      CaseStatus = "safe"
	CaseExpired   CaseStatus = "expired"
)

// Open reports whether a case can still absorb new signals.
func (s CaseStatus) Open() bool {
	switch s {
	case CaseCompleted, CaseCancelled, CaseAccepted, CaseReady, CaseSafe, CaseExpired:
		return false
	}
	return true
}

func (s CaseStatus) Terminal() bool {
	switch s {
	case CaseCompleted, CaseCancelled, CaseSafe, CaseExpired:
		return true
	}
	return false
}

func (s CaseStatus) Valid() bool {
	switch s {
	case CasePending, CaseAccepted, CaseReady, CaseCompleted, CaseCancelled, CaseSafe, CaseExpired:
		return true
	}
	return false
}

type Case struct {
	ID                   int64      `json:"id"`
	Status               CaseStatus `json:"status"`
	CreatedAt            time.Time  `json:"created_at"`
	AcceptedAt           *time.Time `json:"accepted_at,omitempty"`
	ReadyAt              *time.Time `json:"ready_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	FromID               int64      `json:"from_id"`
	AcceptedTeamID       *int64     `json:"accepted_team_id,omitempty"`
	AssignedBy           *int64     `json:"assigned_by,omitempty"`
	SosList              []int64    `json:"sos_list"`
	RejectedTeamIDs      []int64    `json:"rejected_team_ids"`
	CancelledReason      string     `json:"cancelled_reason,omitempty"`
	CompletedDescription string     `json:"completed_description,omitempty"`
}

// LastSignalID returns the most recent signal of the case; signal ids are
// monotonic, so the newest one is the numeric maximum of sos_list.
func (c *Case) LastSignalID() (int64, bool) {
	if len(c.SosList) == 0 {
		return 0, false
	}
	max := c.SosList[0]
	for _, id := range c.SosList[1:] {
		if id > max {
			max = id
		}
	}
	return max, true
}

type CaseStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Accepted  int64 `json:"accepted"`
	Ready     int64 `json:"ready"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	Safe      int64 `json:"safe"`
}
