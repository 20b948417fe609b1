package controller

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/fabzclean/pos/internal/catalog"
	"github.com/fabzclean/pos/internal/common/response"
	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/internal/log"
	"github.com/fabzclean/pos/internal/otel"
)

// CatalogController exposes the read-only service catalog the terminal
// browses while building a cart.
type CatalogController struct {
	store catalog.Store
}

func AttachCatalogController(router *mux.Router, store catalog.Store) {
	controller := CatalogController{store: store}

	services := router.PathPrefix("/services").Subrouter()
	services.HandleFunc("", controller.FindServices).Methods(http.MethodGet)
	services.HandleFunc("/{serviceId}/add-ons", controller.FindServiceAddOns).
		Methods(http.MethodGet)
}

func (t CatalogController) FindServices(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindServices")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FindServices").
		Logger()

	if name := r.URL.Query().Get("name"); name != "" {
		logger = logger.With().Str(log.KeyProcess, "finding service by name").Logger()
		logger.Info().Msgf("finding service by name=%s", name)
		c = logger.WithContext(c)
		svc, err := t.store.FindServiceByName(c, name)
		if err != nil {
			err = fmt.Errorf("failed finding service by name=%s with error=%w", name, err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": statusCodeFromError(err),
				"message":    err.Error(),
			})
			return
		}
		logger.Info().Msgf("found service by name=%s", name)

		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "success",
			"statusCode": http.StatusOK,
			"message":    fmt.Sprintf("service name=%s found", name),
			"data": map[string]interface{}{
				"service": svc,
			},
		})
		return
	}

	logger = logger.With().Str(log.KeyProcess, "finding services").Logger()
	logger.Info().Msg("finding services")
	c = logger.WithContext(c)
	services, err := t.store.FindServices(c)
	if err != nil {
		err = fmt.Errorf("failed finding services with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found services")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "services found",
		"data": map[string]interface{}{
			"services": services,
		},
	})
}

func (t CatalogController) FindServiceAddOns(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindServiceAddOns")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FindServiceAddOns").
		Str(log.KeyProcess, "validating serviceId").
		Logger()

	logger.Info().Msg("validating serviceId is valid uuid")
	serviceId, err := uuid.Parse(mux.Vars(r)["serviceId"])
	if err != nil {
		err = fmt.Errorf("failed validating serviceId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyServiceID, serviceId.String()).Logger()
	logger.Info().Msgf("valid serviceId=%s", serviceId.String())

	logger = logger.With().Str(log.KeyProcess, "finding add-ons").Logger()
	logger.Info().Msgf("finding add-ons for serviceId=%s", serviceId.String())
	c = logger.WithContext(c)
	addOns, err := t.store.FindAddOnsByServiceId(c, serviceId)
	if err != nil {
		err = fmt.Errorf("failed finding add-ons with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msgf("found add-ons for serviceId=%s", serviceId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("add-ons for serviceId=%s found", serviceId.String()),
		"data": map[string]interface{}{
			"add_ons": addOns,
		},
	})
}
