package leave

import "github.com/leavedesk/leave-backend-go/internal/pkg/validator"

type SubmitLeaveRequest struct {
	// Set from the JWT, never from the request body.
	UserID string `json:"-"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Comment   string `json:"comment"`
}

// Validate checks presence and format only. Range semantics (end before
// start, weekend-only spans) are the workday counter's concern and surface
// as a zero-day refusal, not a validation error.
func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a calendar date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a calendar date in YYYY-MM-DD format",
		})
	}

	if len(r.Comment) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "comment must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecisionRequest struct {
	ManagerComment string `json:"manager_comment"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.ManagerComment) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "manager_comment",
			Message: "manager_comment must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRecordResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Days           int    `json:"days"`
	Year           int    `json:"year"`
	Status         Status `json:"status"`
	Comment        string `json:"comment,omitempty"`
	ManagerComment string `json:"manager_comment,omitempty"`

	UserDisplayName string `json:"user_display_name,omitempty"`
	UserEmail       string `json:"user_email,omitempty"`
}

func NewLeaveRecordResponse(rec LeaveRecord) LeaveRecordResponse {
	resp := LeaveRecordResponse{
		ID:        rec.ID,
		UserID:    rec.UserID,
		StartDate: rec.StartISO(),
		EndDate:   rec.EndISO(),
		Days:      rec.Days,
		Year:      rec.Year,
		Status:    rec.Status,
	}
	if rec.Comment != nil {
		resp.Comment = *rec.Comment
	}
	if rec.ManagerComment != nil {
		resp.ManagerComment = *rec.ManagerComment
	}
	if rec.UserDisplayName != nil {
		resp.UserDisplayName = *rec.UserDisplayName
	}
	if rec.UserEmail != nil {
		resp.UserEmail = *rec.UserEmail
	}
	return resp
}

func NewLeaveRecordResponses(records []LeaveRecord) []LeaveRecordResponse {
	responses := make([]LeaveRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, NewLeaveRecordResponse(rec))
	}
	return responses
}

// PreviewResponse mirrors what the request form shows while the user picks
// dates: the chargeable count and which holidays were excluded.
type PreviewResponse struct {
	Days             int      `json:"days"`
	ExcludedHolidays []string `json:"excluded_holidays"`
}

// SummaryResponse is the "my leaves" view: allowance accounting for one
// year plus the records themselves.
type SummaryResponse struct {
	Year      int                   `json:"year"`
	Allowance int                   `json:"allowance"`
	Used      int                   `json:"used"`
	Remaining int                   `json:"remaining"`
	Records   []LeaveRecordResponse `json:"records"`
}
