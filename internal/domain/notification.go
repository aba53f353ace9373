package domain

import (
	"strconv"
	"time"
)

type NotificationKind string

const (
	KindSOSRequest        NotificationKind = "sos_request"
	KindCaseAccepted      NotificationKind = "case_accepted"
	KindCaseRejected      NotificationKind = "case_rejected"
	KindCaseStatusUpdated NotificationKind = "case_status_updated"
	KindCaseCancelled     NotificationKind = "case_cancelled"
	KindCaseCompleted     NotificationKind = "case_completed"
	KindCaseSafe          NotificationKind = "case_safe"
	KindCaseAssigned      NotificationKind = "case_assigned"
	KindCaseReminder      NotificationKind = "case_reminder"
	KindAskLocation       NotificationKind = "ask_location"
	KindLocationReport    NotificationKind = "location_report"
)

// NotificationPayload is implemented by exactly one struct per kind. Data
// flattens the payload into the string map the push provider expects.
type NotificationPayload interface {
	Kind() NotificationKind
	Data() map[string]string
}

type SOSRequestPayload struct {
	CaseID    int64   `json:"case_id"`
	SignalID  int64   `json:"signal_id"`
	UserID    int64   `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (SOSRequestPayload) Kind() NotificationKind { return KindSOSRequest }
func (p SOSRequestPayload) Data() map[string]string {
	return map[string]string{
		"case_id":   formatID(p.CaseID),
		"signal_id": formatID(p.SignalID),
		"user_id":   formatID(p.UserID),
		"latitude":  formatCoord(p.Latitude),
		"longitude": formatCoord(p.Longitude),
	}
}

type CaseAcceptedPayload struct {
	CaseID int64 `json:"case_id"`
	TeamID int64 `json:"team_id"`
}

func (CaseAcceptedPayload) Kind() NotificationKind { return KindCaseAccepted }
func (p CaseAcceptedPayload) Data() map[string]string {
	return map[string]string{"case_id": formatID(p.CaseID), "team_id": formatID(p.TeamID)}
}

type CaseRejectedPayload struct {
	CaseID int64 `json:"case_id"`
	TeamID int64 `json:"team_id"`
}

func (CaseRejectedPayload) Kind() NotificationKind { return KindCaseRejected }
func (p CaseRejectedPayload) Data() map[string]string {
	return map[string]string{"case_id": formatID(p.CaseID), "team_id": formatID(p.TeamID)}
}

type CaseStatusUpdatedPayload struct {
	CaseID int64      `json:"case_id"`
	Status CaseStatus `json:"status"`
}

func (CaseStatusUpdatedPayload) Kind() NotificationKind { return KindCaseStatusUpdated }
func (p CaseStatusUpdatedPayload) Data() map[string]string {
	return map[string]string{"case_id": formatID(p.CaseID), "status": string(p.Status)}
}

type CaseCancelledPayload struct {
	CaseID int64  `json:"case_id"`
	TeamID int64  `json:"team_id"`
	Reason string `json:"reason"`
}

func (CaseCancelledPayload) Kind() NotificationKind { return KindCaseCancelled }
func (p CaseCancelledPayload) Data() map[string]string {
	return map[string]string{"case_id": formatID(p.CaseID), "team_id": formatID(p.TeamID), "reason": p.Reason}
}

type CaseCompletedPayload struct {
	CaseID      int64  `json:"case_id"`
	TeamID      int64  `json:"team_id"`
	Description string `json:"description"`
}

func (CaseCompletedPayload) Kind() NotificationKind { return KindCaseCompleted }
func (p CaseCompletedPayload) Data() map[string]string {
	return map[string]string{"case_id": formatID(p.CaseID), "team_id": formatID(p.TeamID), "description": p.Description}
}

type CaseSafePayload struct {
	CaseID int64 `json:"case_id"`
	UserID int64 `json:"user_id"`
}

func (CaseSafePayload) Kind() NotificationKind { return KindCaseSafe }
func (p CaseSafePayload) Data() map[string]string {
	return map[string]string{"case_id": formatID(p.CaseID), "user_id": formatID(p.UserID)}
}

type CaseAssignedPayload struct {
	CaseID     int64 `json:"case_id"`
	TeamID     int64 `json:"team_id"`
	AssignedBy int64 `json:"assigned_by"`
}

func (CaseAssignedPayload) Kind() NotificationKind { return KindCaseAssigned }
func (p CaseAssignedPayload) Data() map[string]string {
	return map[string]string{
		"case_id":     formatID(p.CaseID),
		"team_id":     formatID(p.TeamID),
		"assigned_by": formatID(p.AssignedBy),
	}
}

type CaseReminderPayload struct {
	CaseID int64 `json:"case_id"`
}

func (CaseReminderPayload) Kind() NotificationKind { return KindCaseReminder }
func (p CaseReminderPayload) Data() map[string]string {
	return map[string]string{"case_id": formatID(p.CaseID)}
}

type AskLocationPayload struct {
	FromID int64 `json:"from_id"`
	ToID   int64 `json:"to_id"`
}

func (AskLocationPayload) Kind() NotificationKind { return KindAskLocation }
func (p AskLocationPayload) Data() map[string]string {
	return map[string]string{"from_id": formatID(p.FromID), "to_id": formatID(p.ToID)}
}

type LocationReportPayload struct {
	UserID    int64     `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

func (LocationReportPayload) Kind() NotificationKind { return KindLocationReport }
func (p LocationReportPayload) Data() map[string]string {
	return map[string]string{
		"user_id":   formatID(p.UserID),
		"latitude":  formatCoord(p.Latitude),
		"longitude": formatCoord(p.Longitude),
		"timestamp": p.Timestamp.UTC().Format(time.RFC3339),
	}
}

// PushJob is one durable delivery for one offline recipient.
type PushJob struct {
	ID         string            `json:"id"`
	ActorID    int64             `json:"actor_id"`
	Kind       NotificationKind  `json:"kind"`
	Data       map[string]string `json:"data"`
	EnqueuedAt time.Time         `json:"enqueued_at"`
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }

func formatCoord(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
