package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/pkg/holiday"
	"github.com/leavedesk/leave-backend-go/internal/pkg/jwt"
	"github.com/leavedesk/leave-backend-go/internal/repository/postgresql"
	leaveService "github.com/leavedesk/leave-backend-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLeaveHandler(t *testing.T, ctx context.Context, userID string) LeaveHandler {
	recordRepo := postgresql.NewLeaveRecordRepository(testHandlerDB)
	allowanceRepo := postgresql.NewAllowanceRepository(testHandlerDB)
	require.NoError(t, allowanceRepo.Upsert(ctx, userID, 2025, handlerTestAllowance))
	calculator := leaveService.NewWorkdayCalculator(holiday.RegionDE)
	svc := leaveService.NewLeaveService(testHandlerDB, recordRepo, allowanceRepo, calculator)
	return NewLeaveHandler(svc)
}

func createLeaveHandlerTestUser(t *testing.T, ctx context.Context) string {
	handlerTestInit()
	var userID string
	email := fmt.Sprintf("leave-handler-%d@example.com", time.Now().UnixNano())
	err := testHandlerDB.QueryRow(ctx, `
		INSERT INTO users (id, email, is_manager, created_at, updated_at)
		VALUES ($1, $2, false, NOW(), NOW())
		RETURNING id
	`, uuid.NewString(), email).Scan(&userID)
	require.NoError(t, err)
	return userID
}

// claimsContext impersonates a request that passed the Verifier middleware.
func claimsContext(t *testing.T, ctx context.Context, userID string) context.Context {
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	tokenString, _, err := jwtSvc.GenerateAccessToken(userID, "leave-handler@example.com", false)
	require.NoError(t, err)
	token, err := jwtSvc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(ctx, token, nil)
}

func TestLeaveHandler_Preview(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	userID := createLeaveHandlerTestUser(t, ctx)
	handler := createTestLeaveHandler(t, ctx, userID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaves/preview?start_date=2024-12-23&end_date=2024-12-29", nil)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Preview(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["days"])

	excluded := data["excluded_holidays"].([]interface{})
	require.Len(t, excluded, 2)
	assert.Equal(t, "2024-12-25", excluded[0])
	assert.Equal(t, "2024-12-26", excluded[1])
}

func TestLeaveHandler_Preview_InvalidRange(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	userID := createLeaveHandlerTestUser(t, ctx)
	handler := createTestLeaveHandler(t, ctx, userID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaves/preview?start_date=2025-06-06&end_date=2025-06-02", nil)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Preview(w, req)

	// Inverted ranges preview as zero days instead of failing.
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["days"])
}

func TestLeaveHandler_Submit_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	userID := createLeaveHandlerTestUser(t, ctx)
	handler := createTestLeaveHandler(t, ctx, userID)

	body, _ := json.Marshal(leave.SubmitLeaveRequest{
		StartDate: "2025-06-02",
		EndDate:   "2025-06-06",
		Comment:   "hiking",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", bytes.NewReader(body))
	req = req.WithContext(claimsContext(t, ctx, userID))
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["days"])
	assert.Equal(t, "pending", data["status"])
}

func TestLeaveHandler_Submit_Overlap(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	userID := createLeaveHandlerTestUser(t, ctx)
	handler := createTestLeaveHandler(t, ctx, userID)

	submit := func() *httptest.ResponseRecorder {
		body, _ := json.Marshal(leave.SubmitLeaveRequest{
			StartDate: "2025-06-02",
			EndDate:   "2025-06-06",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", bytes.NewReader(body))
		req = req.WithContext(claimsContext(t, ctx, userID))
		w := httptest.NewRecorder()
		handler.Submit(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, submit().Code)
	assert.Equal(t, http.StatusConflict, submit().Code)
}

func TestLeaveHandler_Withdraw_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	userID := createLeaveHandlerTestUser(t, ctx)
	handler := createTestLeaveHandler(t, ctx, userID)

	body, _ := json.Marshal(leave.SubmitLeaveRequest{
		StartDate: "2025-06-02",
		EndDate:   "2025-06-06",
	})
	submitReq := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", bytes.NewReader(body))
	submitReq = submitReq.WithContext(claimsContext(t, ctx, userID))
	submitW := httptest.NewRecorder()
	handler.Submit(submitW, submitReq)
	require.Equal(t, http.StatusCreated, submitW.Code)

	var submitResp map[string]interface{}
	require.NoError(t, json.NewDecoder(submitW.Body).Decode(&submitResp))
	recordID := submitResp["data"].(map[string]interface{})["id"].(string)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", recordID)
	reqCtx := context.WithValue(claimsContext(t, ctx, userID), chi.RouteCtxKey, rctx)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/leaves/"+recordID, nil)
	req = req.WithContext(reqCtx)
	w := httptest.NewRecorder()

	handler.Withdraw(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaveHandler_Summary_YearParam(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	userID := createLeaveHandlerTestUser(t, ctx)
	handler := createTestLeaveHandler(t, ctx, userID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaves?year=2025", nil)
	req = req.WithContext(claimsContext(t, ctx, userID))
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2025), data["year"])
	assert.Equal(t, float64(handlerTestAllowance), data["allowance"])
	assert.Equal(t, float64(handlerTestAllowance), data["remaining"])
}

func TestLeaveHandler_Summary_YearOutOfRange(t *testing.T) {
	ctx := context.Background()
	handlerTestInit()
	truncateHandlerTables(t, ctx)

	userID := createLeaveHandlerTestUser(t, ctx)
	handler := createTestLeaveHandler(t, ctx, userID)

	// Same bounds as the holiday endpoint: the calendar covers 1583-4099.
	for _, year := range []string{"1582", "4100", "banana"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/leaves?year="+year, nil)
		req = req.WithContext(claimsContext(t, ctx, userID))
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
