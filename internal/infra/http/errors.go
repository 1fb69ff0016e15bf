package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Spok95/canna-erp/internal/domain/packages"
	"github.com/Spok95/canna-erp/internal/domain/uoms"
	"github.com/Spok95/canna-erp/internal/domain/usableweights"
	"github.com/go-playground/validator/v10"
)

const (
	CodeBadRequest          = "BAD_REQUEST"
	CodeValidation          = "VALIDATION_ERROR"
	CodeUnknownUnit         = "UNKNOWN_UNIT"
	CodeIncompatibleUnits   = "INCOMPATIBLE_UNITS"
	CodeUnknownUsableWeight = "UNKNOWN_USABLE_WEIGHT"
	CodeInternal            = "INTERNAL_ERROR"
)

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// toErrorBody сопоставляет ошибку домена с HTTP-статусом и кодом.
func toErrorBody(err error) (int, errorBody) {
	var (
		unknownUnit   *uoms.UnknownUnitError
		incompatible  *uoms.IncompatibleUnitsError
		unknownWeight *usableweights.UnknownUsableWeightError
		verrs         validator.ValidationErrors
	)
	switch {
	case errors.As(err, &unknownUnit):
		return http.StatusUnprocessableEntity, errorBody{
			Code: CodeUnknownUnit, Message: err.Error(),
			Details: map[string]string{"unit": unknownUnit.Name},
		}
	case errors.As(err, &incompatible):
		return http.StatusUnprocessableEntity, errorBody{
			Code: CodeIncompatibleUnits, Message: err.Error(),
			Details: map[string]string{"from": incompatible.From.Name, "to": incompatible.To.Name},
		}
	case errors.As(err, &unknownWeight):
		return http.StatusUnprocessableEntity, errorBody{
			Code: CodeUnknownUsableWeight, Message: err.Error(),
			Details: map[string]string{"product_form": unknownWeight.Form, "product_modifier": unknownWeight.Modifier},
		}
	case errors.As(err, &verrs):
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Namespace()] = fe.Tag()
		}
		return http.StatusBadRequest, errorBody{Code: CodeValidation, Message: "request validation failed", Details: details}
	case errors.Is(err, packages.ErrNegativeQuantity),
		errors.Is(err, packages.ErrInvalidQuantity),
		errors.Is(err, usableweights.ErrInvalidEntry):
		return http.StatusBadRequest, errorBody{Code: CodeValidation, Message: err.Error()}
	default:
		return http.StatusInternalServerError, errorBody{Code: CodeInternal, Message: "internal error"}
	}
}

func (a *api) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, body := toErrorBody(err)
	if status >= http.StatusInternalServerError {
		a.deps.Log.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestID(r.Context()))
	}
	writeJSON(w, status, body)
}
