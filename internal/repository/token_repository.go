package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/helenus/hotel-api/internal/model"
)

// VerificationTokenRepo persists one-time e-mail verification tokens. A
// token is created at registration and deleted once verification succeeds.
// Nothing enforces a single token per user; only the token presented at
// verification time is consulted.
type VerificationTokenRepo struct{ DB *sql.DB }

func NewVerificationTokenRepo(db *sql.DB) *VerificationTokenRepo {
	return &VerificationTokenRepo{DB: db}
}

// Create inserts a verification token row for a user.
func (r *VerificationTokenRepo) Create(ctx context.Context, userID uint64, token string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO verification_tokens (user_id, token) VALUES (?,?)",
		userID, token)
	return err
}

// GetByToken resolves a raw token string to its stored record.
func (r *VerificationTokenRepo) GetByToken(ctx context.Context, token string) (model.VerificationToken, error) {
	var t model.VerificationToken
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, user_id, token, created_at FROM verification_tokens WHERE token=? LIMIT 1",
		token).Scan(&t.ID, &t.UserID, &t.Token, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.VerificationToken{}, ErrTokenNotFound
	}
	return t, err
}

// Delete removes a consumed token.
func (r *VerificationTokenRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM verification_tokens WHERE id=?", id)
	return err
}
