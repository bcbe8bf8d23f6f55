package httpx

import (
	"errors"
	"net/http"

	apperrors "github.com/zivilschutz/schutzraum-api/internal/errors"
)

// statusForCode maps application error codes to HTTP statuses.
func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RenderAppError writes an error response for a service-layer error.
// Classified errors keep their message; anything unclassified is served
// as an opaque 500 so internal details never leak to the caller.
func RenderAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: string(apperrors.ErrCodeInternal),
			Err:     errors.New("internal server error"),
		})
		return
	}

	body := map[string]string{
		"error":   string(appErr.Code),
		"message": appErr.Message,
	}
	if appErr.Field != "" {
		body["field"] = appErr.Field
	}
	WriteJSON(w, statusForCode(appErr.Code), body)
}
