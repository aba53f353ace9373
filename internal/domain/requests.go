package domain

type SendSignalRequest struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
}

type SendSignalResponse struct {
	CaseID          int64   `json:"case_id"`
	SignalID        int64   `json:"signal_id"`
	NotifiedTeamIDs []int64 `json:"notified_team_ids"`
}

type CaseActionRequest struct {
	CaseID int64 `json:"case_id" validate:"required,gt=0"`
}

type ChangeStatusRequest struct {
	CaseID    int64      `json:"case_id" validate:"required,gt=0"`
	NewStatus CaseStatus `json:"new_status" validate:"required"`
}

type CancelCaseRequest struct {
	CaseID int64  `json:"case_id" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"required,max=255"`
}

type CompleteCaseRequest struct {
	CaseID      int64  `json:"case_id" validate:"required,gt=0"`
	Description string `json:"description" validate:"required,max=255"`
}

type AssignTeamRequest struct {
	CaseID int64 `json:"case_id" validate:"required,gt=0"`
	TeamID int64 `json:"team_id" validate:"required,gt=0"`
}

type AskLocationRequest struct {
	ToID int64 `json:"to_id" validate:"required,gt=0"`
}

type AskLocationResponse struct {
	Location  *CachedLocation `json:"location,omitempty"`
	Requested bool            `json:"requested"`
}

type ReportLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
}
