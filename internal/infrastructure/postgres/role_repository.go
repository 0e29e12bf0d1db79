package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

var roleWrite = naturalKeyWrite{
	table:     "roles",
	key:       "name",
	columns:   []string{"id", "name"},
	returning: "id, name",
}

// RoleRepo roles sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// FindOrCreate siembra el rol si no existe.
func (r *RoleRepo) FindOrCreate(ctx context.Context, name entity.RoleName) (*entity.Role, bool, error) {
	var role entity.Role
	created, err := roleWrite.save(ctx, r.q, repository.CreateIfAbsent,
		[]any{uuid.NewString(), string(name)}, &role.ID, &role.Name)
	if err != nil {
		return nil, false, err
	}
	return &role, created, nil
}

// GetByName obtiene un rol por etiqueta.
func (r *RoleRepo) GetByName(ctx context.Context, name entity.RoleName) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(ctx, `SELECT id, name FROM roles WHERE name = $1`, string(name)).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}
