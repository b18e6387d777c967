package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"filmfeed/internal/dto/request"
	"filmfeed/internal/dto/response"
	"filmfeed/internal/usecase"
	"filmfeed/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	userID, err := h.service.Register(r.Context(), &req)
	if err != nil {
		// A taken email is reported the same way as any other write
		// failure, matching what the frontend already handles.
		h.log.Error("Signup failed", zap.Error(err))
		utils.ResponseInternalError(w, "Signup failed.")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.AuthResponse{
		Message: "User registered successfully!",
		UserID:  userID,
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	userID, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			utils.ResponseBadRequest(w, "User not found", nil)
		case errors.Is(err, usecase.ErrInvalidCredentials):
			utils.ResponseBadRequest(w, "Invalid credentials", nil)
		default:
			h.log.Error("Login failed", zap.Error(err))
			utils.ResponseInternalError(w, "Login failed.")
		}
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.AuthResponse{
		Message: "Login successful!",
		UserID:  userID,
	})
}
