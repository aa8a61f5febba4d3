package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"ticketdesk/internal/model"
	"ticketdesk/internal/user/repository"
	postgrePkg "ticketdesk/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
)

const userColumns = "id, username, email, full_name, phone, password_hash, is_active, role, created_at, updated_at"

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.User, error) {
	u := opts.User
	if u.ID == "" {
		u.ID = r.newID()
	}

	now := r.clock()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, full_name, phone, password_hash, is_active, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID, u.Username, u.Email,
		null.NewString(u.FullName, u.FullName != ""),
		null.NewString(u.Phone, u.Phone != ""),
		u.PasswordHash, u.IsActive, u.Role, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Create.Exec: %v", err)
		return model.User{}, err
	}

	return u, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.User, error) {
	return r.GetOne(ctx, repository.GetOneOptions{ID: id})
}

func (r *implRepository) GetOne(ctx context.Context, opts repository.GetOneOptions) (model.User, error) {
	var (
		cond string
		arg  any
	)
	switch {
	case opts.ID != "":
		if err := postgrePkg.IsUUID(opts.ID); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgre.GetOne.IsUUID: %v", err)
			return model.User{}, err
		}
		cond, arg = "id = $1", opts.ID
	case opts.Username != "":
		cond, arg = "username = $1", opts.Username
	case opts.Email != "":
		cond, arg = "email = $1", opts.Email
	default:
		return model.User{}, repository.ErrNotFound
	}

	var row userRow
	err := queries.Raw(
		fmt.Sprintf("SELECT %s FROM users WHERE %s", userColumns, cond), arg,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgre.GetOne.Bind: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if err := postgrePkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.UpdatePassword.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3",
		passwordHash, r.clock(), id,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.UpdatePassword.Exec: %v", err)
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
