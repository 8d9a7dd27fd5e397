package domain

import "errors"

// Kind clasifica un error de dominio; la capa HTTP lo traduce a un status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthenticated
	KindForbidden
	KindConflict
	KindStale
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindStale:
		return "stale"
	default:
		return "internal"
	}
}

// Error es el error tipado del dominio: un Kind, un código estable para el cliente,
// un mensaje legible y opcionalmente la causa.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is compara por Kind y Code, de modo que errors.Is(err, ErrNotFound) funciona
// aunque el mensaje se haya especializado.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// WithMessage devuelve una copia con otro mensaje y la misma identidad (Kind, Code).
func (e *Error) WithMessage(msg string) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: msg, Err: e.Err}
}

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = &Error{Kind: KindNotFound, Code: "NOT_FOUND", Message: "recurso no encontrado"}
	ErrUserNotFound       = &Error{Kind: KindNotFound, Code: "USER_NOT_FOUND", Message: "Usuario no encontrado o no está activo"}
	ErrProductNotFound    = &Error{Kind: KindNotFound, Code: "PRODUCT_NOT_FOUND", Message: "Producto no encontrado o no está activo"}
	ErrEmailAlreadyExists = &Error{Kind: KindConflict, Code: "EMAIL_EXISTS", Message: "Ya existe un usuario registrado con este email."}
	ErrInvalidInput       = &Error{Kind: KindValidation, Code: "VALIDATION", Message: "entrada inválida"}
	ErrInsufficientStock  = &Error{Kind: KindValidation, Code: "INSUFFICIENT_STOCK", Message: "Stock insuficiente"}
	ErrInvalidCredentials = &Error{Kind: KindUnauthenticated, Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}
	ErrAccountDisabled    = &Error{Kind: KindForbidden, Code: "ACCOUNT_DISABLED", Message: "Usuario inactivo. Por favor, contacte al soporte."}
	ErrStaleWrite         = &Error{Kind: KindStale, Code: "STALE_WRITE", Message: "el recurso fue modificado por otra petición, reintente"}
)

// Validation crea un error de validación con mensaje propio.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION", Message: msg}
}

// Internal envuelve un fallo de infraestructura con el contexto de la operación.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL", Message: msg, Err: err}
}

// KindOf devuelve el Kind del primer *Error en la cadena; KindInternal si no hay ninguno.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// AsError extrae el *Error de la cadena, si existe.
func AsError(err error) (*Error, bool) {
	var de *Error
	ok := errors.As(err, &de)
	return de, ok
}
