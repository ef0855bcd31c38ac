package server

import (
	"context"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/karimovsardorbek/online-market/internal/config"
	"github.com/karimovsardorbek/online-market/internal/handler"
	"github.com/karimovsardorbek/online-market/internal/infra/repository"
	"github.com/karimovsardorbek/online-market/internal/mailer"
	"github.com/karimovsardorbek/online-market/internal/middleware"
	"github.com/karimovsardorbek/online-market/internal/usecase"
	"github.com/karimovsardorbek/online-market/internal/validator"
)

type Server struct {
	echo   *echo.Echo
	cfg    config.Config
	logger *zap.Logger
}

// New はrepository/usecase/handlerを組み立ててechoに載せる。
func New(cfg config.Config, gormDB *gorm.DB, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	//repository
	userRepo := repository.NewUserGormRepository(gormDB)
	itemRepo := repository.NewItemGormRepository(gormDB)
	cartRepo := repository.NewCartGormRepository(gormDB)
	favRepo := repository.NewFavoriteGormRepository(gormDB)
	reviewRepo := repository.NewReviewGormRepository(gormDB)
	supportRepo := repository.NewSupportRequestGormRepository(gormDB)
	profileRepo := repository.NewProfileGormRepository(gormDB)
	rtRepo := repository.NewRefreshTokenGormRepository(gormDB)
	txManager := repository.NewTxManagerGorm(gormDB)

	//usecase
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, validator.NewAuthValidator(), mailer.NewLogSender(logger), logger)
	itemUC := usecase.NewItemUsecase(itemRepo, userRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartRepo, itemRepo)
	orderUC := usecase.NewOrderUsecase(txManager)
	favUC := usecase.NewFavoriteUsecase(favRepo, itemRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, itemRepo)
	supportUC := usecase.NewSupportUsecase(supportRepo, userRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo)

	//handler
	handlers := routeHandlers{
		auth:     handler.NewAuthHandler(authUC),
		item:     handler.NewItemHandler(itemUC),
		cart:     handler.NewCartHandler(cartUC),
		order:    handler.NewOrderHandler(orderUC),
		favorite: handler.NewFavoriteHandler(favUC),
		review:   handler.NewReviewHandler(reviewUC),
		support:  handler.NewSupportHandler(supportUC),
		profile:  handler.NewProfileHandler(profileUC),
	}

	registerRoutes(e, cfg, userRepo, handlers)

	return &Server{
		echo:   e,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("port", s.cfg.Port))
	return s.echo.Start(":" + s.cfg.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
