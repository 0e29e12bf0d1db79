package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

var userWrite = naturalKeyWrite{
	table:     "users",
	key:       "username",
	columns:   []string{"id", "username", "full_name", "role_id", "password_hash", "created_at", "updated_at"},
	updatable: []string{"full_name", "role_id", "password_hash", "updated_at"},
	returning: `id, username, full_name, role_id,
		(SELECT r.name FROM roles r WHERE r.id = users.role_id),
		password_hash, created_at, updated_at`,
}

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Save guarda el usuario por username según la política.
func (r *UserRepo) Save(ctx context.Context, u *entity.User, policy repository.WritePolicy) (*entity.User, bool, error) {
	now := time.Now()
	var out entity.User
	created, err := userWrite.save(ctx, r.q, policy,
		[]any{uuid.NewString(), u.Username, u.FullName, u.RoleID, u.PasswordHash, now, now},
		userDest(&out)...,
	)
	if err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

// GetByUsername obtiene un usuario por login.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT u.id, u.username, u.full_name, u.role_id, r.name, u.password_hash, u.created_at, u.updated_at
		FROM users u JOIN roles r ON r.id = u.role_id
		WHERE u.username = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, username).Scan(userDest(&u)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// List lista usuarios en orden de creación.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `
		SELECT u.id, u.username, u.full_name, u.role_id, r.name, u.password_hash, u.created_at, u.updated_at
		FROM users u JOIN roles r ON r.id = u.role_id
		ORDER BY u.seq`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(userDest(&u)...); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func userDest(u *entity.User) []any {
	return []any{&u.ID, &u.Username, &u.FullName, &u.RoleID, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt}
}
