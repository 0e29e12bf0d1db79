package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/catalogo-tienda/internal/domain"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
)

// naturalKeyWrite describe un INSERT idempotente por clave natural (columna UNIQUE).
//
// Ambas políticas terminan en ON CONFLICT ... DO UPDATE: con CreateIfAbsent el SET
// reasigna la clave a sí misma, lo que no cambia datos pero hace que RETURNING
// devuelva la fila existente dentro de la misma sentencia atómica.
type naturalKeyWrite struct {
	table     string
	key       string
	columns   []string
	updatable []string
	returning string
}

func (w naturalKeyWrite) sql(policy repository.WritePolicy) string {
	placeholders := make([]string, len(w.columns))
	for i := range w.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	var set []string
	if policy == repository.Upsert {
		for _, col := range w.updatable {
			set = append(set, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}
	if len(set) == 0 {
		set = []string{fmt.Sprintf("%s = EXCLUDED.%s", w.key, w.key)}
	}

	return fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		ON CONFLICT (%s) DO UPDATE SET %s
		RETURNING %s, (xmax = 0) AS inserted`,
		w.table, strings.Join(w.columns, ", "),
		strings.Join(placeholders, ", "),
		w.key, strings.Join(set, ", "),
		w.returning,
	)
}

// save ejecuta la escritura y escanea RETURNING en dest. Devuelve true si la fila fue creada.
func (w naturalKeyWrite) save(ctx context.Context, q Querier, policy repository.WritePolicy, args []any, dest ...any) (bool, error) {
	if len(args) != len(w.columns) {
		return false, fmt.Errorf("%s: %d argumentos para %d columnas", w.table, len(args), len(w.columns))
	}
	var inserted bool
	if err := q.QueryRow(ctx, w.sql(policy), args...).Scan(append(dest, &inserted)...); err != nil {
		if isForeignKeyViolation(err) {
			return false, fmt.Errorf("save %s: %w", w.table, domain.ErrNotFound)
		}
		return false, fmt.Errorf("save %s (%s): %w", w.table, policy, err)
	}
	return inserted, nil
}
