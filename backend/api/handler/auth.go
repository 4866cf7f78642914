package handler

import (
	"encoding/json"
	"net/http"

	"bulletin-board/backend/api/middleware"
	"bulletin-board/backend/common"
	boarderrors "bulletin-board/backend/common/errors"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the configured admin credential pair and marks the
// session authenticated. Reads never need this; every mutating route
// does.
func Login(c *gin.Context) {
	var loginRequest LoginRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&loginRequest); err != nil {
		common.RespError(c, http.StatusBadRequest, boarderrors.ErrInvalidParam, err)
		return
	}
	if loginRequest.Username != common.AdminUsername ||
		!common.ValidatePasswordAndHash(loginRequest.Password, common.AdminPasswordHash) {
		common.RespErrorStr(c, http.StatusUnauthorized, boarderrors.ErrInvalidCredentials)
		return
	}
	if err := middleware.SetAdminSession(c, true); err != nil {
		common.RespError(c, http.StatusInternalServerError, "failed to save session", err)
		return
	}
	common.RespSuccess(c, gin.H{"username": common.AdminUsername})
}

func Logout(c *gin.Context) {
	if err := middleware.SetAdminSession(c, false); err != nil {
		common.RespError(c, http.StatusInternalServerError, "failed to save session", err)
		return
	}
	common.RespSuccessStr(c, "logged out")
}

// AuthStatus lets the dashboard decide whether to show the login view.
func AuthStatus(c *gin.Context) {
	common.RespSuccess(c, gin.H{"logged_in": middleware.IsAdminSession(c)})
}
