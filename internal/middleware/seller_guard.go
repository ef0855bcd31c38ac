package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

//contextの売り手フラグを確認します。

func SellerGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Get(CtxIsSellerKey)
			isSeller, ok := raw.(bool)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//買い手は拒否、売り手だけ許可
			if !isSeller {
				return c.JSON(http.StatusForbidden, errorJSON("seller only"))
			}

			return next(c)
		}
	}
}
