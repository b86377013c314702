package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budgy/internal/models/db_models"
	"budgy/internal/models/request_models"
	"budgy/internal/models/response_models"
	"budgy/internal/services"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUserService struct {
	services.UserServiceInterface
	registered request_models.RegisterUserRequest
	loginErr   error
	deactivate uuid.UUID
}

func (s *stubUserService) Register(_ context.Context, req request_models.RegisterUserRequest) (*db_models.User, error) {
	s.registered = req
	return &db_models.User{BaseModel: db_models.NewBaseModel(), Email: req.Email, Password: req.Password}, nil
}

func (s *stubUserService) Login(_ context.Context, req request_models.LoginRequest) (*db_models.User, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &db_models.User{BaseModel: db_models.NewBaseModel(), Email: req.Email, Role: db_models.RoleUser}, nil
}

func (s *stubUserService) SoftDelete(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	if id == s.deactivate {
		u := &db_models.User{BaseModel: db_models.NewBaseModel(), Email: "g@x.io", Role: db_models.RoleUser}
		u.ID = id
		u.Active = false
		return u, nil
	}
	return nil, fmt.Errorf("%w: user %s", utils.ErrAlreadyInactive, id)
}

type stubExpenseService struct {
	services.ExpenseServiceInterface
}

func (stubExpenseService) Delete(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func (stubExpenseService) Create(_ context.Context, req request_models.ExpenseRequest) (*db_models.Expense, error) {
	if req.Amount == nil || req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", utils.ErrValidation)
	}
	return &db_models.Expense{BaseModel: db_models.NewBaseModel(), Amount: *req.Amount, UserID: req.UserID}, nil
}

type stubQueries struct {
	services.LedgerQueryServiceInterface
	start, end time.Time
}

func (s *stubQueries) TotalIncomeByUser(context.Context, uuid.UUID) (decimal.Decimal, error) {
	return decimal.RequireFromString("200.00"), nil
}

func (s *stubQueries) IncomeByUserWithinPeriod(_ context.Context, _ uuid.UUID, start, end time.Time) ([]db_models.Income, error) {
	s.start, s.end = start, end
	return []db_models.Income{}, nil
}

type stubAlertService struct {
	services.AlertServiceInterface
}

func (stubAlertService) Update(context.Context, uuid.UUID, request_models.AlertRequest) (*db_models.Alert, error) {
	return nil, nil
}

func (stubAlertService) MarkRead(_ context.Context, id uuid.UUID) (*db_models.Alert, error) {
	a := &db_models.Alert{BaseModel: db_models.NewBaseModel(), IsRead: true}
	a.ID = id
	return a, nil
}

type stubSummaryService struct{}

func (stubSummaryService) BuildSummary(_ context.Context, userID uuid.UUID) (*response_models.LedgerSummary, error) {
	return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, userID)
}

func do(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestUserController_Register(t *testing.T) {
	svc := &stubUserService{}
	uc := NewUserController(svc, utils.NewTokenIssuer("test-secret", time.Hour), zap.NewNop())
	r := gin.New()
	r.POST("/users", uc.Register)

	body := `{"first_name":"Grace","last_name":"Hopper","email":"g@x.io","gender":"FEMALE","password":"pw","role":"USER"}`
	w, resp := do(r, http.MethodPost, "/users", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, db_models.GenderFemale, svc.registered.Gender)
	assert.NotContains(t, w.Body.String(), `"password"`)

	w, _ = do(r, http.MethodPost, "/users", `{"first_name":"Grace"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserController_Login(t *testing.T) {
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)
	svc := &stubUserService{}
	uc := NewUserController(svc, issuer, zap.NewNop())
	r := gin.New()
	r.POST("/users/login", uc.Login)

	w, resp := do(r, http.MethodPost, "/users/login", `{"email":"g@x.io","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	claims, err := issuer.ValidateToken(data["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "USER", claims.Role)

	svc.loginErr = utils.ErrAuthFailure
	w, wrong := do(r, http.MethodPost, "/users/login", `{"email":"g@x.io","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, malformed := do(r, http.MethodPost, "/users/login", `not json`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrong.Message, malformed.Message)
}

func TestUserController_Delete(t *testing.T) {
	svc := &stubUserService{deactivate: uuid.New()}
	uc := NewUserController(svc, utils.NewTokenIssuer("s", time.Hour), zap.NewNop())
	r := gin.New()
	r.DELETE("/users/:id", uc.Delete)

	w, resp := do(r, http.MethodDelete, "/users/"+svc.deactivate.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, svc.deactivate.String(), data["id"])
	assert.Equal(t, false, data["active"])
	assert.NotContains(t, w.Body.String(), `"password"`)

	w, _ = do(r, http.MethodDelete, "/users/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = do(r, http.MethodDelete, "/users/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExpenseController(t *testing.T) {
	ec := NewExpenseController(stubExpenseService{}, &stubQueries{})
	r := gin.New()
	r.POST("/expenses", ec.Create)
	r.DELETE("/expenses/:id", ec.Delete)

	w, _ := do(r, http.MethodDelete, "/expenses/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	userID := uuid.NewString()
	w, _ = do(r, http.MethodPost, "/expenses", `{"amount":"-0.01","user_id":"`+userID+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := do(r, http.MethodPost, "/expenses", `{"amount":"0","user_id":"`+userID+`"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestIncomeController_Queries(t *testing.T) {
	queries := &stubQueries{}
	ic := NewIncomeController(nil, queries)
	r := gin.New()
	r.GET("/incomes/user/:userId/total", ic.TotalByUser)
	r.GET("/incomes/user/:userId/period", ic.ListByUserWithinPeriod)
	userID := uuid.NewString()

	w, resp := do(r, http.MethodGet, "/incomes/user/"+userID+"/total", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "200", resp.Data.(map[string]interface{})["total"])

	w, _ = do(r, http.MethodGet, "/incomes/user/"+userID+"/period?start=2024-01-01%2000:00:00&end=2024-01-31T23:59:59Z", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, queries.start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, queries.end.Equal(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)))

	w, _ = do(r, http.MethodGet, "/incomes/user/"+userID+"/period?start=yesterday&end=today", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(r, http.MethodGet, "/incomes/user/"+userID+"/period", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlertController(t *testing.T) {
	ac := NewAlertController(stubAlertService{})
	r := gin.New()
	r.PUT("/alerts/:id", ac.Update)
	r.PATCH("/alerts/:id/read", ac.MarkRead)

	body := `{"title":"t","message":"m","alert_type":"INFO","user_id":"` + uuid.NewString() + `"}`
	w, _ := do(r, http.MethodPut, "/alerts/"+uuid.NewString(), body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp := do(r, http.MethodPatch, "/alerts/"+uuid.NewString()+"/read", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp.Data.(map[string]interface{})["is_read"])
}

func TestReportController_SummaryUnknownUser(t *testing.T) {
	rc := NewReportController(stubSummaryService{}, nil)
	r := gin.New()
	r.GET("/users/:id/summary", rc.GetSummary)

	w, resp := do(r, http.MethodGet, "/users/"+uuid.NewString()+"/summary", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", resp.Status)
}
