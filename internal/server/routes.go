package server

import (
	"github.com/labstack/echo/v4"

	"github.com/karimovsardorbek/online-market/internal/config"
	"github.com/karimovsardorbek/online-market/internal/handler"
	"github.com/karimovsardorbek/online-market/internal/middleware"
	"github.com/karimovsardorbek/online-market/internal/repository"
)

type routeHandlers struct {
	auth     *handler.AuthHandler
	item     *handler.ItemHandler
	cart     *handler.CartHandler
	order    *handler.OrderHandler
	favorite *handler.FavoriteHandler
	review   *handler.ReviewHandler
	support  *handler.SupportHandler
	profile  *handler.ProfileHandler
}

// registerRoutes はルートとミドルウェアの対応を1箇所にまとめる。
// bearer必須ルートは AuthJWT + AccountGuard、出品系はさらに SellerGuard。
func registerRoutes(e *echo.Echo, cfg config.Config, users repository.UserRepository, h routeHandlers) {
	authJWT := middleware.AuthJWT(cfg)
	accountGuard := middleware.AccountGuard(users)
	sellerGuard := middleware.SellerGuard()

	//認証不要
	e.POST("/auth/register", h.auth.Register)
	e.POST("/auth/verify", h.auth.Verify)
	e.POST("/auth/resend-verification", h.auth.ResendVerification)
	e.POST("/auth/login", h.auth.Login)
	e.POST("/auth/refresh", h.auth.Refresh)
	e.POST("/auth/logout", h.auth.Logout)

	e.GET("/items", h.item.List)
	e.GET("/items/:id", h.item.Get)
	e.GET("/reviews", h.review.ListByItem)

	//要認証
	auth := e.Group("", authJWT, accountGuard)

	auth.GET("/auth/me", h.auth.Me)

	//出品は売り手のみ
	seller := e.Group("/items", authJWT, accountGuard, sellerGuard)
	seller.POST("", h.item.Create)
	seller.PUT("/:id", h.item.Replace)
	seller.PATCH("/:id", h.item.Update)
	seller.DELETE("/:id", h.item.Delete)

	auth.GET("/cart", h.cart.Get)
	auth.POST("/cart/add", h.cart.Add)
	auth.POST("/cart/remove", h.cart.Remove)
	auth.POST("/cart/checkout", h.order.Checkout)

	auth.GET("/orders", h.order.ListMine)
	auth.GET("/orders/:id", h.order.Get)
	auth.DELETE("/orders/:id", h.order.Cancel)

	auth.GET("/favorites", h.favorite.ListMine)
	auth.POST("/favorites/mark/:item_id", h.favorite.Mark)
	auth.DELETE("/favorites/unmark/:item_id", h.favorite.Unmark)

	auth.POST("/reviews", h.review.Create)
	auth.PATCH("/reviews/:id", h.review.Update)
	auth.DELETE("/reviews/:id", h.review.Delete)

	auth.POST("/support-requests", h.support.Create)
	auth.GET("/support-requests", h.support.ListMine)
	auth.GET("/support-requests/:id", h.support.Get)
	auth.PATCH("/support-requests/:id", h.support.Update)
	auth.DELETE("/support-requests/:id", h.support.Delete)

	auth.POST("/profiles", h.profile.Create)
	auth.GET("/profiles", h.profile.List)
	auth.PATCH("/profiles/:id", h.profile.Update)
	auth.DELETE("/profiles/:id", h.profile.Delete)
}
