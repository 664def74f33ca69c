package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formery/internal/dto"
	"github.com/lshigami/Formery/internal/service"
)

// sessionCookie is the HttpOnly cookie every authenticated gateway call
// carries implicitly.
const sessionCookie = "token"

const sessionCookieMaxAge = 7 * 24 * 60 * 60

const (
	ctxUserID   = "userID"
	ctxUsername = "username"
)

// RequireAuth rejects requests without a valid session cookie and stores the
// session identity on the gin context for the handlers behind it.
func RequireAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(sessionCookie)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		session, err := tokens.Parse(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Session expired, please login again"})
			return
		}
		ctx.Set(ctxUserID, session.UserID)
		ctx.Set(ctxUsername, session.Username)
		ctx.Next()
	}
}

func currentUserID(ctx *gin.Context) uint {
	return ctx.GetUint(ctxUserID)
}

func setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(sessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
}

func clearSessionCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}
