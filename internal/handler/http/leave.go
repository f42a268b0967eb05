package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)

	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Summary implements LeaveHandler. Year defaults to the current UTC year.
func (l *LeaveHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year := time.Now().UTC().Year()
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil || !validator.IsValidYear(parsed) {
			response.BadRequest(w, "Invalid year parameter", nil)
			return
		}
		year = parsed
	}

	summary, err := l.leaveService.Summary(r.Context(), userID, year)
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Submit implements LeaveHandler.
func (l *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := l.leaveService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", record)
}

// Preview implements LeaveHandler. Invalid ranges come back as zero days,
// matching what the request form shows before submission.
func (l *LeaveHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	response.Success(w, l.leaveService.Preview(startDate, endDate))
}

// Withdraw implements LeaveHandler.
func (l *LeaveHandlerImpl) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	recordID := chi.URLParam(r, "id")
	if recordID == "" {
		response.BadRequest(w, "Leave record ID is required", nil)
		return
	}

	if err := l.leaveService.Withdraw(r.Context(), userID, recordID); err != nil {
		slog.Error("Withdraw service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request withdrawn successfully", nil)
}

// ListPending implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	records, err := l.leaveService.ListPending(r.Context())
	if err != nil {
		slog.Error("ListPending service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Approve implements LeaveHandler.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	recordID := chi.URLParam(r, "id")
	if userID == "" || recordID == "" {
		response.BadRequest(w, "Leave record ID is required", nil)
		return
	}

	var req leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Approve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := l.leaveService.Approve(r.Context(), userID, recordID, req.ManagerComment); err != nil {
		slog.Error("Approve service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", nil)
}

// Reject implements LeaveHandler.
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	recordID := chi.URLParam(r, "id")
	if userID == "" || recordID == "" {
		response.BadRequest(w, "Leave record ID is required", nil)
		return
	}

	var req leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := l.leaveService.Reject(r.Context(), userID, recordID, req.ManagerComment); err != nil {
		slog.Error("Reject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected successfully", nil)
}
