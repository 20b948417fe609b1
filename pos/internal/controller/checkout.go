package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fabzclean/pos/internal/common/response"
	"github.com/fabzclean/pos/internal/common/validate"
	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/internal/log"
	"github.com/fabzclean/pos/internal/otel"
	"github.com/fabzclean/pos/pos/pkg/request"
)

func (t SessionController) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController ApplyCoupon")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController ApplyCoupon").
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
	reqBody := request.ApplyCoupon{}
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

	logger = logger.With().
		Str(log.KeyProcess, "applying coupon").
		Str(log.KeyCouponCode, reqBody.Code).
		Logger()
	logger.Info().Msg("applying coupon")
	c = logger.WithContext(c)
	detail, err := t.service.ApplyCoupon(c, cartId, reqBody)
	if err != nil {
		err = fmt.Errorf("failed applying coupon with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}
	if detail == nil {
		logger.Info().Msgf("cartId=%s not found", cartId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartId=%s not found", cartId.String()),
		})
		return
	}
	logger.Info().Msg("applied coupon")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully applied coupon",
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController RemoveCoupon")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController RemoveCoupon").
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

	logger = logger.With().Str(log.KeyProcess, "removing coupon").Logger()
	logger.Info().Msg("removing coupon")
	c = logger.WithContext(c)
	detail := t.service.RemoveCoupon(c, cartId)
	if detail == nil {
		logger.Info().Msgf("cartId=%s not found", cartId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartId=%s not found", cartId.String()),
		})
		return
	}
	logger.Info().Msg("removed coupon")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully removed coupon",
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) HoldCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController HoldCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController HoldCart").
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

	logger = logger.With().Str(log.KeyProcess, "holding cart").Logger()
	logger.Info().Msgf("holding cartId=%s", cartId.String())
	c = logger.WithContext(c)
	session, err := t.service.HoldCart(c, cartId)
	if err != nil {
		err = fmt.Errorf("failed holding cart with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}
	if session == nil {
		logger.Info().Msgf("cartId=%s not found", cartId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartId=%s not found", cartId.String()),
		})
		return
	}
	logger.Info().Msgf("held cartId=%s", cartId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("held cartId=%s", cartId.String()),
		"data": map[string]interface{}{
			"session": session,
		},
	})
}

func (t SessionController) RestoreHeldCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController RestoreHeldCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController RestoreHeldCart").
		Str(log.KeyProcess, "restoring held cart").
		Logger()

	logger.Info().Msg("restoring held cart")
	c = logger.WithContext(c)
	detail, err := t.service.RestoreHeldCart(c)
	if err != nil {
		err = fmt.Errorf("failed restoring held cart with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("restored held cart")

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully restored held cart",
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) CheckoutCart(w http.ResponseWriter, r *http.Request) {
	requestId := log.RequestIDFromContext(r.Context())
	c, span := otel.Tracer.Start(
		r.Context(),
		"SessionController CheckoutCart",
		trace.WithAttributes(attribute.String(log.KeyRequestID, requestId)),
	)
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController CheckoutCart").
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

	logger = logger.With().Str(log.KeyProcess, "checkout cart").Logger()
	logger.Info().Msgf("checking out cartId=%s", cartId.String())
	c = logger.WithContext(c)
	checkout, err := t.service.Checkout(c, cartId)
	if err != nil {
		err = fmt.Errorf("failed checkout cartId=%s with error=%w", cartId.String(), err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCodeFromError(err),
			"message":    err.Error(),
		})
		return
	}
	logger.Info().
		Str(log.KeyOrderID, checkout.OrderId.String()).
		Msgf("checked out cartId=%s", cartId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    fmt.Sprintf("checkout cartId=%s", cartId.String()),
		"data": map[string]interface{}{
			"order": checkout,
		},
	})
}
