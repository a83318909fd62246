package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain"
)

// HTTPError respuesta no-2xx del backend.
type HTTPError struct {
	StatusCode int
	Status     string // texto de la razón, ej. "Not Found"
	URL        string
}

// Error mantiene el formato "Error HTTP: <código> <razón>".
func (e *HTTPError) Error() string {
	return strings.TrimSpace(fmt.Sprintf("Error HTTP: %d %s", e.StatusCode, e.Status))
}

// Is permite errors.Is(err, domain.ErrHTTPStatus).
func (e *HTTPError) Is(target error) bool {
	return target == domain.ErrHTTPStatus
}

func newHTTPError(resp *http.Response, rawURL string) *HTTPError {
	// resp.Status viene como "404 Not Found"; nos quedamos con la razón.
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return &HTTPError{StatusCode: resp.StatusCode, Status: reason, URL: rawURL}
}
