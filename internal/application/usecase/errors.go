package usecase

import "github.com/jhoicas/tienda-api/internal/domain"

// wrap deja pasar los errores de dominio y envuelve el resto como Internal con
// el contexto de la operación.
func wrap(msg string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := domain.AsError(err); ok {
		return err
	}
	return domain.Internal(msg, err)
}
