package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/wwdiegovarela/consultas-app-cliente/pkg"
)

// storeUnavailable maps a warehouse query deadline to a retryable 503.
// Mappers call it before their own switch so every endpoint reports slow
// storage the same way.
func storeUnavailable(err error) *pkg.AppError {
	if errors.Is(err, context.DeadlineExceeded) {
		return pkg.NewDomainError("UNAVAILABLE", "El servicio de datos no respondió a tiempo, intente nuevamente", http.StatusServiceUnavailable, err)
	}
	return nil
}
