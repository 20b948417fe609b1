package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/fabzclean/pos/internal/common/response"
	"github.com/fabzclean/pos/internal/common/validate"
	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/internal/log"
	"github.com/fabzclean/pos/internal/otel"
	"github.com/fabzclean/pos/pos/internal/service"
	"github.com/fabzclean/pos/pos/pkg/request"
)

type SessionController struct {
	service *service.CartSessionManager
}

func AttachSessionController(router *mux.Router, manager *service.CartSessionManager) {
	controller := SessionController{service: manager}

	carts := router.PathPrefix("/carts").Subrouter()
	carts.HandleFunc("", controller.CreateCart).Methods(http.MethodPost)
	carts.HandleFunc("", controller.Session).Methods(http.MethodGet)
	carts.HandleFunc("/active", controller.ActiveCart).Methods(http.MethodGet)
	carts.HandleFunc("/restore", controller.RestoreHeldCart).Methods(http.MethodPost)
	carts.HandleFunc("/{cartId}", controller.FindCartById).Methods(http.MethodGet)
	carts.HandleFunc("/{cartId}", controller.UpdateCart).Methods(http.MethodPatch)
	carts.HandleFunc("/{cartId}", controller.DeleteCart).Methods(http.MethodDelete)
	carts.HandleFunc("/{cartId}/activate", controller.SetActiveCart).Methods(http.MethodPost)
	carts.HandleFunc("/{cartId}/name", controller.RenameCart).Methods(http.MethodPut)
	carts.HandleFunc("/{cartId}/clear", controller.ClearCart).Methods(http.MethodPost)
	carts.HandleFunc("/{cartId}/processed", controller.MarkAsProcessed).
		Methods(http.MethodPost)
	carts.HandleFunc("/{cartId}/breakdown", controller.Breakdown).Methods(http.MethodGet)
	carts.HandleFunc("/{cartId}/hold", controller.HoldCart).Methods(http.MethodPost)
	carts.HandleFunc("/{cartId}/checkout", controller.CheckoutCart).Methods(http.MethodPost)
	carts.HandleFunc("/{cartId}/coupon", controller.ApplyCoupon).Methods(http.MethodPost)
	carts.HandleFunc("/{cartId}/coupon", controller.RemoveCoupon).Methods(http.MethodDelete)
	carts.HandleFunc("/{cartId}/items", controller.AddItem).Methods(http.MethodPost)
	carts.HandleFunc("/{cartId}/items/{cartItemId}", controller.UpdateItem).
		Methods(http.MethodPatch)
	carts.HandleFunc("/{cartId}/items/{cartItemId}", controller.RemoveItem).
		Methods(http.MethodDelete)
	carts.HandleFunc("/{cartId}/items/{cartItemId}/quantity", controller.UpdateItemQuantity).
		Methods(http.MethodPut)
	carts.HandleFunc("/{cartId}/items/{cartItemId}/add-ons", controller.AddItemAddOn).
		Methods(http.MethodPost)
	carts.HandleFunc("/{cartId}/items/{cartItemId}/add-ons/{addOnId}", controller.RemoveItemAddOn).
		Methods(http.MethodDelete)
}

// statusCodeFromError maps service failures onto the envelope status code.
func statusCodeFromError(err error) int {
	var minOrder *inErrors.CouponMinOrderError
	var submit *inErrors.OrderSubmitError
	switch {
	case errors.Is(err, inErrors.ErrCartLimitReached):
		return http.StatusConflict
	case errors.Is(err, inErrors.ErrCartNotFound),
		errors.Is(err, inErrors.ErrServiceNotFound),
		errors.Is(err, inErrors.ErrCouponNotFound),
		errors.Is(err, inErrors.ErrNoHeldCart):
		return http.StatusNotFound
	case errors.Is(err, inErrors.ErrEmptyCart),
		errors.Is(err, inErrors.ErrServiceInactive),
		errors.As(err, &minOrder):
		return http.StatusBadRequest
	case errors.As(err, &submit):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (t SessionController) Session(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController Session")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController Session").
		Logger()

	logger.Info().Msg("taking session snapshot")
	c = logger.WithContext(c)
	session := t.service.Session(c)
	logger.Info().Msg("took session snapshot")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "session snapshot",
		"data": map[string]interface{}{
			"session": session,
		},
	})
}

func (t SessionController) CreateCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController CreateCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController CreateCart").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.CreateCart{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil && err != io.EOF {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "creating cart").Logger()
	logger.Info().Msg("creating cart")
	c = logger.WithContext(c)
	detail, err := t.service.CreateCart(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed creating cart with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("created cart")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "successfully created cart",
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) ActiveCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController ActiveCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController ActiveCart").
		Logger()

	logger.Info().Msg("finding active cart")
	c = logger.WithContext(c)
	detail := t.service.ActiveCart(c)
	logger.Info().Msg("found active cart")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "active cart",
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) FindCartById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController FindCartById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController FindCartById").
		Str(log.KeyProcess, "validating cartId").
		Logger()

	logger.Info().Msg("validating cartId is valid uuid")
	cartId, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartID, cartId.String()).Logger()
	logger.Info().Msgf("valid cartId=%s", cartId.String())

	logger = logger.With().Str(log.KeyProcess, "finding cart").Logger()
	logger.Info().Msgf("finding cartId=%s", cartId.String())
	c = logger.WithContext(c)
	detail := t.service.FindCartById(c, cartId)
	if detail == nil {
		logger.Info().Msgf("cartId=%s not found", cartId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartId=%s not found", cartId.String()),
		})
		return
	}
	logger.Info().Msgf("found cartId=%s", cartId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("cartId=%s found", cartId.String()),
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) SetActiveCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController SetActiveCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController SetActiveCart").
		Str(log.KeyProcess, "validating cartId").
		Logger()

	logger.Info().Msg("validating cartId is valid uuid")
	cartId, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartID, cartId.String()).Logger()
	logger.Info().Msgf("valid cartId=%s", cartId.String())

	logger = logger.With().Str(log.KeyProcess, "activating cart").Logger()
	logger.Info().Msgf("activating cartId=%s", cartId.String())
	c = logger.WithContext(c)
	session := t.service.SetActiveCart(c, cartId)
	if session == nil {
		logger.Info().Msgf("cartId=%s not found", cartId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartId=%s not found", cartId.String()),
		})
		return
	}
	logger.Info().Msgf("activated cartId=%s", cartId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("activated cartId=%s", cartId.String()),
		"data": map[string]interface{}{
			"session": session,
		},
	})
}

func (t SessionController) RenameCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController RenameCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController RenameCart").
		Str(log.KeyProcess, "validating cartId").
		Logger()

	logger.Info().Msg("validating cartId is valid uuid")
	cartId, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartID, cartId.String()).Logger()
	logger.Info().Msgf("valid cartId=%s", cartId.String())

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.RenameCart{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Info().Msg("validating request body")
	validate := validate.New()
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "renaming cart").Logger()
	logger.Info().Msgf("renaming cartId=%s", cartId.String())
	c = logger.WithContext(c)
	detail := t.service.RenameCart(c, cartId, reqBody)
	if detail == nil {
		logger.Info().Msgf("cartId=%s not found", cartId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartId=%s not found", cartId.String()),
		})
		return
	}
	logger.Info().Msgf("renamed cartId=%s", cartId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("renamed cartId=%s", cartId.String()),
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) UpdateCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController UpdateCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController UpdateCart").
		Str(log.KeyProcess, "validating cartId").
		Logger()

	logger.Info().Msg("validating cartId is valid uuid")
	cartId, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartID, cartId.String()).Logger()
	logger.Info().Msgf("valid cartId=%s", cartId.String())

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.UpdateCart{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Info().Msg("validating request body")
	validate := validate.New()
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "updating cart").Logger()
	logger.Info().Msgf("updating cartId=%s", cartId.String())
	c = logger.WithContext(c)
	detail := t.service.UpdateCart(c, cartId, reqBody)
	if detail == nil {
		logger.Info().Msgf("cartId=%s not found", cartId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartId=%s not found", cartId.String()),
		})
		return
	}
	logger.Info().Msgf("updated cartId=%s", cartId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("updated cartId=%s", cartId.String()),
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) DeleteCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController DeleteCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController DeleteCart").
		Str(log.KeyProcess, "validating cartId").
		Logger()

	logger.Info().Msg("validating cartId is valid uuid")
	cartId, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartID, cartId.String()).Logger()
	logger.Info().Msgf("valid cartId=%s", cartId.String())

	logger = logger.With().Str(log.KeyProcess, "deleting cart").Logger()
	logger.Info().Msgf("deleting cartId=%s", cartId.String())
	c = logger.WithContext(c)
	session := t.service.DeleteCart(c, cartId)
	if session == nil {
		logger.Info().Msgf("cartId=%s not found", cartId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartId=%s not found", cartId.String()),
		})
		return
	}
	logger.Info().Msgf("deleted cartId=%s", cartId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("deleted cartId=%s", cartId.String()),
		"data": map[string]interface{}{
			"session": session,
		},
	})
}

func (t SessionController) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController ClearCart").
		Str(log.KeyProcess, "validating cartId").
		Logger()

	logger.Info().Msg("validating cartId is valid uuid")
	cartId, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartID, cartId.String()).Logger()
	logger.Info().Msgf("valid cartId=%s", cartId.String())

	logger = logger.With().Str(log.KeyProcess, "clearing cart").Logger()
	logger.Info().Msgf("clearing cartId=%s", cartId.String())
	c = logger.WithContext(c)
	detail := t.service.ClearCart(c, cartId)
	if detail == nil {
		logger.Info().Msgf("cartId=%s not found", cartId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartId=%s not found", cartId.String()),
		})
		return
	}
	logger.Info().Msgf("cleared cartId=%s", cartId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("cleared cartId=%s", cartId.String()),
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) MarkAsProcessed(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController MarkAsProcessed")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController MarkAsProcessed").
		Str(log.KeyProcess, "validating cartId").
		Logger()

	logger.Info().Msg("validating cartId is valid uuid")
	cartId, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartID, cartId.String()).Logger()
	logger.Info().Msgf("valid cartId=%s", cartId.String())

	logger = logger.With().Str(log.KeyProcess, "marking cart as processed").Logger()
	logger.Info().Msgf("marking cartId=%s as processed", cartId.String())
	c = logger.WithContext(c)
	detail := t.service.MarkAsProcessed(c, cartId)
	if detail == nil {
		logger.Info().Msgf("cartId=%s not found", cartId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartId=%s not found", cartId.String()),
		})
		return
	}
	logger.Info().Msgf("marked cartId=%s as processed", cartId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("marked cartId=%s as processed", cartId.String()),
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) Breakdown(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController Breakdown")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController Breakdown").
		Str(log.KeyProcess, "validating cartId").
		Logger()

	logger.Info().Msg("validating cartId is valid uuid")
	cartId, err := uuid.Parse(mux.Vars(r)["cartId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartID, cartId.String()).Logger()
	logger.Info().Msgf("valid cartId=%s", cartId.String())

	logger = logger.With().Str(log.KeyProcess, "settling cart").Logger()
	logger.Info().Msgf("settling cartId=%s", cartId.String())
	c = logger.WithContext(c)
	breakdown := t.service.Breakdown(c, cartId)
	if breakdown == nil {
		logger.Info().Msgf("cartId=%s not found", cartId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartId=%s not found", cartId.String()),
		})
		return
	}
	logger.Info().Msgf("settled cartId=%s", cartId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("settled cartId=%s", cartId.String()),
		"data": map[string]interface{}{
			"breakdown": breakdown,
		},
	})
}
