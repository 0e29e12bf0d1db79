package memory

import "github.com/jhoicas/catalogo-tienda/internal/domain/repository"

// table guarda filas por clave natural conservando el orden de inserción,
// que es el "orden de almacenamiento" visible para las búsquedas.
type table[T any] struct {
	keys []string
	rows map[string]*T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]*T)}
}

// save es el primitivo compartido de guardado por clave natural.
// overwrite copia sobre dst los campos que la política Upsert debe reemplazar.
func (t *table[T]) save(key string, v *T, policy repository.WritePolicy, overwrite func(dst, src *T)) (*T, bool) {
	if existing, ok := t.rows[key]; ok {
		if policy == repository.Upsert && overwrite != nil {
			overwrite(existing, v)
		}
		cp := *existing
		return &cp, false
	}
	row := *v
	t.rows[key] = &row
	t.keys = append(t.keys, key)
	cp := row
	return &cp, true
}

func (t *table[T]) get(key string) *T {
	row, ok := t.rows[key]
	if !ok {
		return nil
	}
	cp := *row
	return &cp
}

// each recorre las filas en orden de inserción; fn devuelve false para cortar.
func (t *table[T]) each(fn func(*T) bool) {
	for _, k := range t.keys {
		if !fn(t.rows[k]) {
			return
		}
	}
}

func (t *table[T]) list() []*T {
	out := make([]*T, 0, len(t.keys))
	t.each(func(row *T) bool {
		cp := *row
		out = append(out, &cp)
		return true
	})
	return out
}
