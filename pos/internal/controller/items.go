package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/fabzclean/pos/internal/common/response"
	"github.com/fabzclean/pos/internal/common/validate"
	inErrors "github.com/fabzclean/pos/internal/errors"
	"github.com/fabzclean/pos/internal/log"
	"github.com/fabzclean/pos/internal/otel"
	"github.com/fabzclean/pos/pos/pkg/request"
)

func (t SessionController) AddItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController AddItem").
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
	reqBody := request.AddItem{}
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

	logger = logger.With().Str(log.KeyProcess, "adding item").Logger()
	logger.Info().Msgf("adding serviceId=%s to cart", reqBody.ServiceId.String())
	c = logger.WithContext(c)
	detail, err := t.service.AddItem(c, cartId, reqBody)
	if err != nil {
		err = fmt.Errorf("failed adding item with error=%w", err)
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
	logger.Info().Msgf("added serviceId=%s to cart", reqBody.ServiceId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "successfully added item",
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController UpdateItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController UpdateItem").
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

	logger = logger.With().Str(log.KeyProcess, "validating cartItemId").Logger()
	logger.Info().Msg("validating cartItemId is valid uuid")
	cartItemId, err := uuid.Parse(mux.Vars(r)["cartItemId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartItemId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartItemID, cartItemId.String()).Logger()
	logger.Info().Msgf("valid cartItemId=%s", cartItemId.String())

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.UpdateItem{}
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

	logger = logger.With().Str(log.KeyProcess, "updating item").Logger()
	logger.Info().Msgf("updating cartItemId=%s", cartItemId.String())
	c = logger.WithContext(c)
	detail := t.service.UpdateItem(c, cartId, cartItemId, reqBody)
	if detail == nil {
		logger.Info().Msgf("cartItemId=%s not found", cartItemId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartItemId=%s not found", cartItemId.String()),
		})
		return
	}
	logger.Info().Msgf("updated cartItemId=%s", cartItemId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("updated cartItemId=%s", cartItemId.String()),
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController UpdateItemQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController UpdateItemQuantity").
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

	logger = logger.With().Str(log.KeyProcess, "validating cartItemId").Logger()
	logger.Info().Msg("validating cartItemId is valid uuid")
	cartItemId, err := uuid.Parse(mux.Vars(r)["cartItemId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartItemId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartItemID, cartItemId.String()).Logger()
	logger.Info().Msgf("valid cartItemId=%s", cartItemId.String())

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.UpdateItemQuantity{}
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

	logger = logger.With().Str(log.KeyProcess, "updating item quantity").Logger()
	logger.Info().Msgf("updating cartItemId=%s quantity=%d", cartItemId.String(), reqBody.Quantity)
	c = logger.WithContext(c)
	detail := t.service.UpdateItemQuantity(c, cartId, cartItemId, reqBody)
	if detail == nil {
		logger.Info().Msgf("cartItemId=%s not found", cartItemId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartItemId=%s not found", cartItemId.String()),
		})
		return
	}
	logger.Info().Msgf("updated cartItemId=%s quantity=%d", cartItemId.String(), reqBody.Quantity)

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("updated cartItemId=%s quantity", cartItemId.String()),
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController RemoveItem").
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

	logger = logger.With().Str(log.KeyProcess, "validating cartItemId").Logger()
	logger.Info().Msg("validating cartItemId is valid uuid")
	cartItemId, err := uuid.Parse(mux.Vars(r)["cartItemId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartItemId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartItemID, cartItemId.String()).Logger()
	logger.Info().Msgf("valid cartItemId=%s", cartItemId.String())

	logger = logger.With().Str(log.KeyProcess, "removing item").Logger()
	logger.Info().Msgf("removing cartItemId=%s", cartItemId.String())
	c = logger.WithContext(c)
	detail := t.service.RemoveItem(c, cartId, cartItemId)
	if detail == nil {
		logger.Info().Msgf("cartItemId=%s not found", cartItemId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartItemId=%s not found", cartItemId.String()),
		})
		return
	}
	logger.Info().Msgf("removed cartItemId=%s", cartItemId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("removed cartItemId=%s", cartItemId.String()),
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) AddItemAddOn(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController AddItemAddOn")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController AddItemAddOn").
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

	logger = logger.With().Str(log.KeyProcess, "validating cartItemId").Logger()
	logger.Info().Msg("validating cartItemId is valid uuid")
	cartItemId, err := uuid.Parse(mux.Vars(r)["cartItemId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartItemId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartItemID, cartItemId.String()).Logger()
	logger.Info().Msgf("valid cartItemId=%s", cartItemId.String())

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.AddItemAddOn{}
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

	logger = logger.With().Str(log.KeyProcess, "adding add-on").Logger()
	logger.Info().Msgf("adding add-on to cartItemId=%s", cartItemId.String())
	c = logger.WithContext(c)
	detail := t.service.AddItemAddOn(c, cartId, cartItemId, reqBody)
	if detail == nil {
		logger.Info().Msgf("cartItemId=%s not found", cartItemId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartItemId=%s not found", cartItemId.String()),
		})
		return
	}
	logger.Info().Msgf("added add-on to cartItemId=%s", cartItemId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("added add-on to cartItemId=%s", cartItemId.String()),
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}

func (t SessionController) RemoveItemAddOn(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SessionController RemoveItemAddOn")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionController RemoveItemAddOn").
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

	logger = logger.With().Str(log.KeyProcess, "validating cartItemId").Logger()
	logger.Info().Msg("validating cartItemId is valid uuid")
	cartItemId, err := uuid.Parse(mux.Vars(r)["cartItemId"])
	if err != nil {
		err = fmt.Errorf("failed validating cartItemId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCartItemID, cartItemId.String()).Logger()
	logger.Info().Msgf("valid cartItemId=%s", cartItemId.String())

	logger = logger.With().Str(log.KeyProcess, "validating addOnId").Logger()
	logger.Info().Msg("validating addOnId is valid uuid")
	addOnId, err := uuid.Parse(mux.Vars(r)["addOnId"])
	if err != nil {
		err = fmt.Errorf("failed validating addOnId with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msgf("valid addOnId=%s", addOnId.String())

	logger = logger.With().Str(log.KeyProcess, "removing add-on").Logger()
	logger.Info().Msgf("removing addOnId=%s from cartItemId=%s", addOnId.String(), cartItemId.String())
	c = logger.WithContext(c)
	detail := t.service.RemoveItemAddOn(c, cartId, cartItemId, addOnId)
	if detail == nil {
		logger.Info().Msgf("cartItemId=%s not found", cartItemId.String())
		response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    fmt.Sprintf("cartItemId=%s not found", cartItemId.String()),
		})
		return
	}
	logger.Info().Msgf("removed addOnId=%s from cartItemId=%s", addOnId.String(), cartItemId.String())

	response.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("removed add-on from cartItemId=%s", cartItemId.String()),
		"data": map[string]interface{}{
			"cart":      detail.Cart,
			"breakdown": detail.Breakdown,
		},
	})
}
