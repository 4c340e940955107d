package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/qa-console/internal/app"
	"github.com/MKhiriev/qa-console/internal/service"
)

var errorStatusMap = map[error]int{
	ErrInvalidID:                   http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrKnowledgeNotFound:   http.StatusNotFound,
	service.ErrBackendUnavailable:  http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

var errorMessageMap = map[error]string{
	ErrInvalidID:                   app.MsgInvalidID,
	service.ErrInvalidDataProvided: app.MsgInvalidDataProvided,
	service.ErrKnowledgeNotFound:   app.MsgKnowledgeNotFound,
	service.ErrBackendUnavailable:  app.MsgServerUnavailable,
}

// errorMessage is the text rendered on an error page for err.
func errorMessage(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}
