package storeclient

import (
	"fmt"

	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
)

// StatusError é devolvido quando a API responde fora da faixa 2xx
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	if apiErr, ok := e.APIError(); ok {
		return fmt.Sprintf("requisição falhou com status %d: %s", e.StatusCode, apiErr.Error())
	}
	return fmt.Sprintf("requisição falhou com status %d", e.StatusCode)
}

// Unwrap permite errors.Is(err, ErrUpstreamFetch)
func (e *StatusError) Unwrap() error {
	return ErrUpstreamFetch
}

// APIError devolve o corpo padronizado de erro, quando presente
func (e *StatusError) APIError() (apiErrors.APIError, bool) {
	var apiErr apiErrors.APIError
	if err := json.Unmarshal(e.Body, &apiErr); err != nil || apiErr.Code == "" {
		return apiErrors.APIError{}, false
	}
	return apiErr, true
}
