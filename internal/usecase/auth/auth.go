package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/WhiteWolfWCY/Trimly/internal/clock"
	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
	"github.com/WhiteWolfWCY/Trimly/internal/models"
	"github.com/WhiteWolfWCY/Trimly/internal/validators"
)

const tokenTTL = 24 * time.Hour

// UserRepository is the narrow persistence surface auth needs.
type UserRepository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// ===============================
// Register
// ===============================

type RegisterInput struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phone_number"`
}

type RegisterUseCase struct {
	repo  UserRepository
	clock clock.Clock

	// emailOK is swappable so tests do not hit DNS.
	emailOK func(string) bool
}

func NewRegisterUseCase(repo UserRepository, clk clock.Clock) *RegisterUseCase {
	return &RegisterUseCase{
		repo:    repo,
		clock:   clk,
		emailOK: validators.IsEmailDomainValid,
	}
}

func (u *RegisterUseCase) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))

	if !u.emailOK(email) {
		return nil, httperr.ErrBusiness("validation_error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	user := &models.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.repo.CreateUser(ctx, user); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("validation_error")
		}
		return nil, err
	}

	return user, nil
}

// ===============================
// Login
// ===============================

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginOutput struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type LoginUseCase struct {
	repo   UserRepository
	secret string
	clock  clock.Clock
}

func NewLoginUseCase(repo UserRepository, secret string, clk clock.Clock) *LoginUseCase {
	return &LoginUseCase{repo: repo, secret: secret, clock: clk}
}

func (u *LoginUseCase) Execute(
	ctx context.Context,
	in LoginInput,
) (*LoginOutput, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("unauthorized")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte(in.Password),
	) != nil {
		return nil, httperr.ErrBusiness("unauthorized")
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Token: token, User: user}, nil
}

func (u *LoginUseCase) issueToken(user *models.User) (string, error) {
	now := u.clock.Now()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.secret))
}
