package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// nullable convierte "" en NULL para columnas opcionales (uuid, texto).
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// deref devuelve "" para punteros nil escaneados desde columnas NULL.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
