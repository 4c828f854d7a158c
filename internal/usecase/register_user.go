package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type RegisterUserUseCase struct {
	Users        entity.UserRepository
	Hasher       PasswordHasher
	EmailService EmailService
}

func NewRegisterUserUseCase(users entity.UserRepository, hasher PasswordHasher, emailService EmailService) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		Users:        users,
		Hasher:       hasher,
		EmailService: emailService,
	}
}

type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*entity.User, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, NewValidationError("email", "is required")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, NewValidationError("email", "is invalid")
	}
	if len(input.Password) < 8 {
		return nil, NewValidationError("password", "must have at least 8 characters")
	}

	hash, err := uc.Hasher.Hash(input.Password)
	if err != nil {
		return nil, &TechnicalError{Code: CodeStore, Message: "failed to hash password: " + err.Error()}
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		return nil, storeError(err, "user create")
	}

	// Boas-vindas fora do caminho crítico, igual ao checkout: falha de SMTP
	// não derruba o cadastro.
	go func() {
		if uc.EmailService != nil {
			uc.EmailService.SendWelcome(user.Email, user.Name)
		}
	}()

	return user, nil
}
