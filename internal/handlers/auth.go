package handlers

import (
	"errors"
	"net/http"

	et "expense_tracker"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest is the registration payload. Only presence is checked.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"a@x.com"`
	Username string `json:"username" binding:"required" example:"a"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"a@x.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err, "request_id", requestIDFrom(c))
		}
		c.JSON(http.StatusBadRequest, et.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// authErrorStatus maps a service error to its status code and client message.
func authErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrUserAlreadyExists):
		return http.StatusConflict, et.MsgUserExists
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, et.MsgUserNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusBadRequest, et.MsgInvalidCreds
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, et.MsgPasswordTooLong
	default:
		return http.StatusInternalServerError, et.MsgInternal
	}
}

// writeAuthError logs the full cause and answers with the mapped short message.
func (h *Handler) writeAuthError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code, msg := authErrorStatus(err)
	if h.log != nil {
		fields := append([]interface{}{"err", err, "status", code, "request_id", requestIDFrom(c)}, kv...)
		if code >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.JSON(code, et.ErrorResponse{Error: msg})
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Account"
// @Success      200   {object}  expense_tracker.MessageResponse
// @Failure      400   {object}  expense_tracker.ErrorResponse
// @Failure      409   {object}  expense_tracker.ErrorResponse
// @Failure      500   {object}  expense_tracker.ErrorResponse
// @Router       /api/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		h.writeAuthError(c, "auth_register_failed", err, "email", input.Email)
		return
	}

	if h.log != nil {
		h.log.Infow("auth_registered", "user_id", id, "request_id", requestIDFrom(c))
	}
	c.JSON(http.StatusOK, et.MessageResponse{Message: et.MsgUserCreated})
}

// @Summary      Check credentials
// @Description  Verifies the password for an email. No session or token is issued.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  expense_tracker.MessageResponse
// @Failure      400   {object}  expense_tracker.ErrorResponse
// @Failure      404   {object}  expense_tracker.ErrorResponse
// @Failure      500   {object}  expense_tracker.ErrorResponse
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.writeAuthError(c, "auth_login_failed", err, "email", input.Email)
		return
	}

	if h.log != nil {
		h.log.Infow("auth_login", "user_id", id, "request_id", requestIDFrom(c))
	}
	c.JSON(http.StatusOK, et.MessageResponse{Message: et.MsgLoginOK})
}
