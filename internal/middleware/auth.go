package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rekib0023/expense-sharing-backend/internal/auth"
	apperrors "github.com/rekib0023/expense-sharing-backend/internal/errors"
	"github.com/rekib0023/expense-sharing-backend/internal/services"
)

// RequireUser authenticates the request from the access token, carried either
// as an Authorization bearer header or the access_token cookie, and resolves
// the claim subject to a live user. It fails closed: missing token, invalid
// or expired token, and deleted backing user each abort with their own 401.
func RequireUser(users services.UserServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := auth.AccessTokenFromRequest(c)

		claims, err := auth.Parse(tokenString, auth.TypeAccess)
		if err != nil {
			if errors.Is(err, auth.ErrTokenMissing) {
				abortWithError(c, apperrors.ErrNotLoggedIn)
				return
			}
			abortWithError(c, apperrors.ErrTokenInvalid)
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && appErr.Code == apperrors.ErrUserNotFound.Code {
				abortWithError(c, apperrors.ErrUserGone)
				return
			}
			abortWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}

		c.Set("userID", user.ID)
		c.Set("email", user.Email)
		c.Next()
	}
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
