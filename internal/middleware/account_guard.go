package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karimovsardorbek/online-market/internal/repository"
)

// tokenが生きていてもアカウント側の状態が変わっている可能性があるので、
// DBで「まだ存在して認証済みか」を確認する。
func AccountGuard(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Get(CtxUserIDKey)
			userID, ok := raw.(int64)
			if !ok || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil || user == nil {
				//削除済みアカウントのtoken
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if !user.IsVerified {
				return c.JSON(http.StatusForbidden, errorJSON("email not verified"))
			}

			return next(c)
		}
	}
}
