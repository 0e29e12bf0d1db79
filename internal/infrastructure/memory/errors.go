package memory

import (
	"fmt"

	"github.com/jhoicas/catalogo-tienda/internal/domain"
	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
)

func errUnknownKind(kind entity.DimensionKind) error {
	return fmt.Errorf("dimensión %q: %w", kind, domain.ErrInvalidInput)
}
