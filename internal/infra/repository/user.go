package repository

import (
	"context"
	"time"

	"renobooking/internal/domain/user"
	"renobooking/internal/infra"
	"renobooking/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const query = `
		SELECT id, email, password_hash, role, is_active, created_at
		FROM admin_users
		WHERE email = $1`

	var (
		id           uuid.UUID
		storedEmail  string
		passwordHash string
		roleStr      string
		isActive     bool
		createdAt    time.Time
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&id, &storedEmail, &passwordHash, &roleStr, &isActive, &createdAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	emailVO, err := user.NewEmail(storedEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt email in user row", err)
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt role in user row", err)
	}

	return user.ReconstructUser(id, emailVO, passwordHash, role, isActive, createdAt), nil
}
