package middleware

import (
	"net/http"

	"bulletin-board/backend/common"
	boarderrors "bulletin-board/backend/common/errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionKeyAdmin = "admin"

// SetAdminSession flips the session's authenticated flag on login/logout.
func SetAdminSession(c *gin.Context, loggedIn bool) error {
	session := sessions.Default(c)
	if loggedIn {
		session.Set(sessionKeyAdmin, true)
	} else {
		session.Clear()
	}
	return session.Save()
}

// IsAdminSession reports whether the current session passed the login
// credential check.
func IsAdminSession(c *gin.Context) bool {
	session := sessions.Default(c)
	admin, ok := session.Get(sessionKeyAdmin).(bool)
	return ok && admin
}

// AdminAuth guards mutating routes. Read routes are always public and
// never go through this middleware.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdminSession(c) {
			common.RespErrorStr(c, http.StatusUnauthorized, boarderrors.ErrNotLoggedIn)
			c.Abort()
			return
		}
		c.Next()
	}
}
