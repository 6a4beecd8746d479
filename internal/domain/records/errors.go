package records

import "errors"

// Los handlers traducen estos errores 1:1 a status HTTP.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")

	ErrStorageRead    = errors.New("storage read failure")
	ErrStorageCorrupt = errors.New("storage corrupt")
	ErrStorageWrite   = errors.New("storage write failure")
)

// IsStorage indica un fallo del backend (500), no del request.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorageRead) ||
		errors.Is(err, ErrStorageCorrupt) ||
		errors.Is(err, ErrStorageWrite)
}

// Result clasifica el error de una operación en un label de baja cardinalidad
// ("ok", "invalid", "not_found", ...). Lo consumen los Observer.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "invalid"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrDuplicate):
		return "duplicate"
	case errors.Is(err, ErrStorageCorrupt):
		return "storage_corrupt"
	case errors.Is(err, ErrStorageRead):
		return "storage_read"
	case errors.Is(err, ErrStorageWrite):
		return "storage_write"
	default:
		return "error"
	}
}
