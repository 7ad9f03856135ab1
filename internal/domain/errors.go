package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrAlreadyVoided = errors.New("la transacción no está aprobada")
	ErrPoolExhausted = errors.New("pool de conexiones agotado")
)
