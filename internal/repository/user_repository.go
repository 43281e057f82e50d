package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/helenus/hotel-api/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = "id,user_name,first_name,last_name,phone,email,nationality,password_hash,role,is_verified,created_at,updated_at"

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.UserName, &u.FirstName, &u.LastName, &u.Phone, &u.Email,
		&u.Nationality, &u.PasswordHash, &u.Role, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create inserts a user and returns its ID. The unique indexes on email and
// user_name are the final word on duplicates; MySQL error 1062 is mapped to
// the matching sentinel based on which key it names.
func (r *UserRepo) Create(ctx context.Context, u *model.User) (uint64, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (user_name, first_name, last_name, phone, email, nationality, password_hash, role, is_verified) VALUES (?,?,?,?,?,?,?,?,?)",
		u.UserName, u.FirstName, u.LastName, u.Phone, u.Email, u.Nationality, u.PasswordHash, u.Role, u.IsVerified)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "1062") {
			if strings.Contains(msg, "email") {
				return 0, ErrEmailExists
			}
			return 0, ErrUserNameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE email=? LIMIT 1", email))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// GetByUserName fetches a user by username.
func (r *UserRepo) GetByUserName(ctx context.Context, name string) (model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE user_name=? LIMIT 1", name))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// GetByIDs fetches several users at once, keyed by id. Missing ids are
// simply absent from the result; callers joining reviewers onto reviews
// tolerate deleted accounts.
func (r *UserRepo) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]model.User, error) {
	out := make(map[uint64]model.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	ph := strings.TrimRight(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id IN ("+ph+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, rows.Err()
}

// MarkVerified sets the verification flag on a user.
func (r *UserRepo) MarkVerified(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET is_verified=1, updated_at=NOW() WHERE id=?", id)
	return err
}

// EnsureAdmin seeds the administrator account if it does not exist yet.
// The seed is idempotent so it can run on every startup.
func (r *UserRepo) EnsureAdmin(ctx context.Context, email, passwordHash string) error {
	if _, err := r.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}
	admin := &model.User{
		UserName:     "admin",
		FirstName:    "Admin",
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
		IsVerified:   true,
	}
	_, err := r.Create(ctx, admin)
	if errors.Is(err, ErrEmailExists) || errors.Is(err, ErrUserNameExists) {
		return nil // lost a race with another instance seeding the same row
	}
	return err
}
