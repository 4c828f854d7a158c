package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type LoginUserUseCase struct {
	Users  entity.UserRepository
	Hasher PasswordHasher
}

func NewLoginUserUseCase(users entity.UserRepository, hasher PasswordHasher) *LoginUserUseCase {
	return &LoginUserUseCase{Users: users, Hasher: hasher}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginInput) (*entity.User, error) {
	// Mesma resposta para email inexistente e senha errada: não vaza qual
	// dos dois falhou.
	invalid := NewValidationError("credentials", "invalid credentials")

	user, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, invalid
		}
		return nil, storeError(err, "user lookup")
	}

	if err := uc.Hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, invalid
	}

	return user, nil
}
