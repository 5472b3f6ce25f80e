package credentials

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/VipinRD/auctioneer/internal/user"
)

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("password must not be empty")
	ErrDuplicateEmail     = errors.New("email already exist")
	ErrInvalidCredentials = errors.New("email or password incorrect")
	ErrNotVerified        = errors.New("email not verified")
)

var validate = validator.New()

type Service struct {
	users user.Store
}

func NewService(users user.Store) *Service {
	return &Service{users: users}
}

// Register validates and creates an unverified user record. The
// returned token is handed to the verification flow; in production it
// would travel by email.
func (s *Service) Register(
	ctx context.Context,
	name string,
	email string,
	password string,
) (userID string, verificationToken string, err error) {

	// 1. Syntax check before touching the store. An invalid email must
	// never create a record.
	if err := validate.Var(email, "required,email"); err != nil {
		return "", "", ErrInvalidEmail
	}

	if password == "" {
		return "", "", ErrInvalidPassword
	}

	// 2. Hash password
	hash, err := HashPassword(password)
	if err != nil {
		return "", "", err
	}

	// 3. Insert; the store's unique index decides duplicates.
	u := &user.User{
		Name:              name,
		Email:             email,
		PasswordHash:      hash,
		IsVerified:        false,
		VerificationToken: uuid.NewString(),
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return "", "", ErrDuplicateEmail
		}
		return "", "", err
	}

	return u.ID.Hex(), u.VerificationToken, nil
}

// Authenticate checks email/password against the stored record.
//
// Unknown email and wrong password collapse into the same error so the
// response never reveals which one occurred. The verified-flag check
// runs only after the password matched; a wrong password must never
// surface as "not verified".
func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (string, error) {

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := VerifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	if !u.IsVerified {
		return "", ErrNotVerified
	}

	return u.ID.Hex(), nil
}

// Verify flips the verified flag for the record holding the token.
func (s *Service) Verify(ctx context.Context, token string) error {
	return s.users.MarkVerified(ctx, token)
}
