package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/helenus/hotel-api/internal/mail"
	"github.com/helenus/hotel-api/internal/model"
	"github.com/helenus/hotel-api/internal/repository"
	"github.com/helenus/hotel-api/internal/utils"
)

// UserStore is the slice of the user repository the services depend on.
type UserStore interface {
	Create(ctx context.Context, u *model.User) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByUserName(ctx context.Context, name string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	MarkVerified(ctx context.Context, id uint64) error
}

// VerificationStore is the slice of the verification token repository the
// account service depends on.
type VerificationStore interface {
	Create(ctx context.Context, userID uint64, token string) error
	GetByToken(ctx context.Context, token string) (model.VerificationToken, error)
	Delete(ctx context.Context, id uint64) error
}

// AccountService implements registration, authentication and e-mail
// verification.
type AccountService struct {
	users      UserStore
	tokens     VerificationStore
	mailer     mail.Mailer
	bcryptCost int
}

// NewAccountService wires an AccountService.
func NewAccountService(users UserStore, tokens VerificationStore, mailer mail.Mailer, bcryptCost int) *AccountService {
	return &AccountService{users: users, tokens: tokens, mailer: mailer, bcryptCost: bcryptCost}
}

// RegisterInput is the profile supplied at registration.
type RegisterInput struct {
	UserName    string
	FirstName   string
	LastName    string
	Phone       string
	Email       string
	Nationality string
	Password    string
}

// Register creates a client account, issues a verification token and mails
// it out. User and token creation are not transactional: if the mail fails
// after the token was written, the user exists without ever having seen a
// token, and registration still reports success. That mirrors the
// long-standing behavior the frontend depends on; the failure is logged so
// operators can resend manually.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.UserName = strings.TrimSpace(in.UserName)
	if in.Email == "" || in.UserName == "" || in.Password == "" {
		return ErrValidation
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	if _, err := s.users.GetByUserName(ctx, in.UserName); err == nil {
		return ErrDuplicateUserName
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return err
	}
	u := &model.User{
		UserName:     in.UserName,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Email:        in.Email,
		Nationality:  in.Nationality,
		PasswordHash: hash,
		Role:         model.RoleClient,
	}
	uid, err := s.users.Create(ctx, u)
	if err != nil {
		// The unique index may still fire despite the lookups above when
		// two registrations race; map it back to the duplicate sentinels.
		if errors.Is(err, repository.ErrEmailExists) {
			return ErrDuplicateEmail
		}
		if errors.Is(err, repository.ErrUserNameExists) {
			return ErrDuplicateUserName
		}
		return err
	}

	token, err := utils.RandomHex(10)
	if err != nil {
		return err
	}
	if err := s.tokens.Create(ctx, uid, token); err != nil {
		return err
	}

	if err := s.mailer.SendVerification(in.Email, in.FirstName, token); err != nil {
		log.Error().Err(err).Str("email", in.Email).Msg("send verification mail failed")
	}
	return nil
}

// Authenticate resolves an e-mail/password pair to a user. Verification is
// checked before the password so an unverified account is told to verify
// rather than being handed a credential error.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if !u.IsVerified {
		return model.User{}, ErrNotVerified
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// UserByID resolves a user record, for session refresh and profile reads.
func (s *AccountService) UserByID(ctx context.Context, id uint64) (model.User, error) {
	return s.users.GetByID(ctx, id)
}

// Verify consumes a verification token: sets the user's flag and deletes
// the token record.
func (s *AccountService) Verify(ctx context.Context, token string) error {
	t, err := s.tokens.GetByToken(ctx, strings.TrimSpace(token))
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	u, err := s.users.GetByID(ctx, t.UserID)
	if err != nil {
		return err
	}
	if u.IsVerified {
		return ErrAlreadyVerified
	}
	if err := s.users.MarkVerified(ctx, u.ID); err != nil {
		return err
	}
	return s.tokens.Delete(ctx, t.ID)
}
