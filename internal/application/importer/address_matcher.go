package importer

import (
	"context"
	"strings"

	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
)

// addressFragmentRunes longitud del prefijo de dirección que se busca.
const addressFragmentRunes = 30

// MatchAddress devuelve el primer punto de entrega (orden de almacenamiento) cuya
// dirección contiene los primeros 30 caracteres de raw. Distingue mayúsculas.
// Sin texto o sin coincidencia devuelve nil, nil.
func MatchAddress(ctx context.Context, points repository.DeliveryPointRepository, raw string) (*entity.DeliveryPoint, error) {
	fragment := addressFragment(raw)
	if fragment == "" {
		return nil, nil
	}
	return points.FindFirstContaining(ctx, fragment)
}

func addressFragment(raw string) string {
	s := strings.TrimSpace(raw)
	r := []rune(s)
	if len(r) > addressFragmentRunes {
		r = r[:addressFragmentRunes]
	}
	return string(r)
}
