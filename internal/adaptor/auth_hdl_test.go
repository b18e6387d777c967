package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmfeed/internal/dto/request"
	"filmfeed/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *request.SignupRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignupThenLogin(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, zap.NewNop())

	svc.On("Register", mock.Anything, mock.MatchedBy(func(r *request.SignupRequest) bool {
		return r.Name == "a" && r.Email == "a@x.com" && r.Password == "pw"
	})).Return(int64(42), nil).Once()

	rec := postJSON(t, h.Signup, `{"name":"a","email":"a@x.com","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var signupResp struct {
		Message string `json:"message"`
		UserID  int64  `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signupResp))
	assert.Equal(t, int64(42), signupResp.UserID)

	svc.On("Login", mock.Anything,
		mock.MatchedBy(func(r *request.LoginRequest) bool { return r.Password == "pw" })).
		Return(int64(42), nil).Once()

	rec = postJSON(t, h.Login, `{"email":"a@x.com","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var loginResp struct {
		Message string `json:"message"`
		UserID  int64  `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	assert.Equal(t, signupResp.UserID, loginResp.UserID)

	svc.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, zap.NewNop())

	svc.On("Login", mock.Anything, mock.Anything).
		Return(int64(0), usecase.ErrInvalidCredentials).Once()

	rec := postJSON(t, h.Login, `{"email":"a@x.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestLogin_UserNotFound(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, zap.NewNop())

	svc.On("Login", mock.Anything, mock.Anything).
		Return(int64(0), usecase.ErrUserNotFound).Once()

	rec := postJSON(t, h.Login, `{"email":"nobody@x.com","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestSignup_WriteFailure(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, zap.NewNop())

	// A taken email surfaces like any other write failure
	svc.On("Register", mock.Anything, mock.Anything).
		Return(int64(0), usecase.ErrEmailTaken).Once()

	rec := postJSON(t, h.Signup, `{"name":"a","email":"a@x.com","password":"pw"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Signup failed.")
}

func TestSignup_InvalidBody(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(t, h.Signup, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.Signup, `{"name":"a","email":"not-an-email","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}
