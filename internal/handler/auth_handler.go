// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"chatapp/internal/services"
	"chatapp/internal/transport/httpdto"
	chatapp_errors "chatapp/pkg/errors"
	"chatapp/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles OTP registration and login HTTP endpoints.
type AuthHandler struct {
	service *services.AuthService
	logger  *logger.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService, l *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: l}
}

// SendOTP issues a registration OTP to a mobile number.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req httpdto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("mobile is required", "INVALID_REQUEST"))
		return
	}

	if err := h.service.IssueOTP(c.Request.Context(), req.Mobile); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.MessageResponse{Message: "OTP sent successfully"}))
}

// Register completes registration after OTP verification.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	err := h.service.CompleteRegistration(c.Request.Context(), services.RegisterInput{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Code:     req.OTP,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(httpdto.MessageResponse{Message: "User registered successfully"}))
}

// LoginRequest sends a login OTP to the account's registered mobile.
func (h *AuthHandler) LoginRequest(c *gin.Context) {
	var req httpdto.LoginRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("identifier is required", "INVALID_REQUEST"))
		return
	}

	if err := h.service.RequestLoginOTP(c.Request.Context(), req.Identifier); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.MessageResponse{Message: "OTP sent to registered mobile"}))
}

// LoginVerify checks the submitted OTP and returns a bearer credential.
func (h *AuthHandler) LoginVerify(c *gin.Context) {
	var req httpdto.LoginVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	res, err := h.service.CompleteLogin(c.Request.Context(), req.Identifier, req.OTP)
	if err != nil {
		// An unknown identifier is a bad login attempt here, not a 404.
		if errors.Is(err, chatapp_errors.ErrNotFound) {
			h.logError(c, err)
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("user not found", "INVALID_REQUEST"))
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.LoginResponse{
		User: httpdto.UserDTO{
			ID:       res.User.ID.Hex(),
			FullName: res.User.FullName,
			Username: res.User.Username,
			Email:    res.User.Email,
			Mobile:   res.User.Mobile,
		},
		Token: res.Token,
	}))
}

func (h *AuthHandler) writeError(c *gin.Context, err error) {
	h.logError(c, err)
	status := services.HTTPStatus(err)
	c.JSON(status, httpdto.NewErrorResponse(services.UserMessage(err), errorCode(status)))
}

func (h *AuthHandler) logError(c *gin.Context, err error) {
	if h.logger != nil {
		h.logger.ErrorfCtx(c.Request.Context(), "auth request failed: %s", err.Error())
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}
