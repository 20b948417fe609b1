package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/fabzclean/pos/internal/catalog"
	"github.com/fabzclean/pos/internal/common/constants"
	"github.com/fabzclean/pos/internal/config"
	"github.com/fabzclean/pos/internal/coupon"
	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/internal/holdstore"
	"github.com/fabzclean/pos/internal/infra"
	"github.com/fabzclean/pos/internal/log"
	"github.com/fabzclean/pos/internal/middleware"
	"github.com/fabzclean/pos/internal/orderclient"
	"github.com/fabzclean/pos/internal/otel"
	"github.com/fabzclean/pos/pos/internal/controller"
	"github.com/fabzclean/pos/pos/internal/service"
)

func RunPosService(c context.Context) {
	c, span := otel.Tracer.Start(c, "RunPosService")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, constants.AppPosService).
		Str(log.KeyTag, "main RunPosService").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "init config").Logger()
	logger.Info().Msg("initializing config")
	c = logger.WithContext(c)
	cfg := config.InitConfig(c, constants.AppPosService)
	logger = logger.With().Any(log.KeyConfig, cfg).Logger()
	logger.Info().Msg("initialized config")

	logger = logger.With().Str(log.KeyProcess, "initializing router").Logger()
	logger.Info().Msg("initializing router")
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.Use(
		otelmux.Middleware(constants.AppPosService),
		middleware.Logging,
		middleware.RecoverPanic,
	)
	logger.Info().Msg("initialized router")

	logger = logger.With().Str(log.KeyProcess, "initializing otel sdk").Logger()
	logger.Info().Msg("initializing otel sdk")
	c = logger.WithContext(c)
	otelShutdowns, err := otel.InitOtelSdk(c, constants.AppPosService, cfg.Otel)
	if err != nil {
		err = fmt.Errorf("failed initializing otel sdk with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	defer func() {
		logger.Info().Msg("shutting down otel")
		c = logger.WithContext(c)
		if err := otel.ShutdownOtel(c, otelShutdowns); err != nil {
			err = fmt.Errorf("failed shutting down otel with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("shutdown otel")
	}()
	logger.Info().Msg("initialized otel sdk")

	logger = logger.With().Str(log.KeyProcess, "initializing catalog").Logger()
	logger.Info().Msgf("initializing catalog backend=%s", cfg.Collaborator.CatalogBackend)
	c = logger.WithContext(c)
	var (
		catalogStore catalog.Store
		couponStore  coupon.Store
	)
	if cfg.Collaborator.CatalogBackend == "postgres" {
		db := infra.NewDatabaseClient(c, cfg.Database)
		defer func() {
			logger = logger.With().Str(log.KeyProcess, "closing database").Logger()
			logger.Info().Msg("closing database")
			db.Close()
			logger.Info().Msg("closed database")
		}()
		catalogStore = catalog.NewPostgres(db)
		couponStore = coupon.NewPostgres(db)
	} else {
		catalogStore = catalog.NewSeededMemory()
		couponStore = coupon.NewSeededMemory()
	}
	logger.Info().Msg("initialized catalog")

	logger = logger.With().Str(log.KeyProcess, "initializing cache").Logger()
	logger.Info().Msg("initializing cache")
	c = logger.WithContext(c)
	cache := infra.NewCacheClient(c, cfg.Cache)
	defer func() {
		logger = logger.With().Str(log.KeyProcess, "closing cache").Logger()
		logger.Info().Msg("closing cache")
		if err := cache.Close(); err != nil {
			err = fmt.Errorf("failed closing cache with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("closed cache")
	}()
	logger.Info().Msg("initialized cache")

	logger = logger.With().Str(log.KeyProcess, "initializing session manager").Logger()
	logger.Info().Msg("initializing session manager")
	holds := holdstore.NewRedis(cache, cfg.Session.HoldKey)
	submitter := orderclient.NewClient(cfg.Collaborator.OrderServiceURL)
	manager := service.NewCartSessionManager(
		cfg.Session.MaxCarts,
		catalogStore,
		couponStore,
		holds,
		submitter,
	)
	logger.Info().Msg("initialized session manager")

	logger = logger.With().Str(log.KeyProcess, "initializing controllers").Logger()
	logger.Info().Msg("initializing controllers")
	controller.AttachSessionController(router, manager)
	controller.AttachCatalogController(router, catalogStore)
	logger.Info().Msg("initialized controllers")

	logger = logger.With().Str(log.KeyProcess, "initializing server").Logger()
	logger.Info().Msg("initializing server")
	httpServer := http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Application.Host, cfg.Application.Port),
		BaseContext:  func(net.Listener) context.Context { return c },
		Handler:      router,
		ReadTimeout:  45 * time.Second,
		WriteTimeout: 45 * time.Second,
	}
	logger.Info().Msg("initialized server")

	go func() {
		logger = logger.With().Str(log.KeyProcess, "start server").Logger()
		logger.Info().Msgf("start listening request at %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("error=%w occured while server is running", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()

	<-c.Done()
	logger = logger.With().Str(log.KeyProcess, "shutting down http server").Logger()
	logger.Info().Msg("received interruption signal, shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		err = fmt.Errorf("failed shutting down http server with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("shutdown http server")
}
