package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrRoleNotSeeded     = errors.New("rol no sembrado")
	ErrSheetNotFound     = errors.New("hoja de cálculo no encontrada")
	ErrUnsupportedFormat = errors.New("formato de archivo no soportado")
	ErrEmptySheet        = errors.New("hoja de cálculo vacía")
)
