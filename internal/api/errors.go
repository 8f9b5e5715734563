package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned for any authenticated call the backend
	// rejects with 401. The registered OnUnauthorized hook has already fired
	// by the time callers see this error.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBadCredentials is the 401 from /auth/login itself: wrong email or
	// password, not an expired session.
	ErrBadCredentials = errors.New("invalid credentials")

	// ErrUnexpectedShape means the response matched neither a bare JSON value
	// nor the {success, message, data} envelope.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

// BusinessError carries a backend rejection whose message is meant for the
// user verbatim (e.g. "No se puede desactivar un puesto con empleados
// activos"). It is the structured replacement for matching known phrases in
// message text.
type BusinessError struct {
	Status  int
	Message string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("backend rejected request (%d): %s", e.Status, e.Message)
}

// AsBusiness unwraps err into a *BusinessError if there is one in the chain.
func AsBusiness(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
