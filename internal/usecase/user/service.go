package user

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	NewToken(user domain.User) (string, error)
}

type Service struct {
	userRepo domain.UserRepository
	tokens   TokenIssuer
}

var _ domain.UserUsecase = (*Service)(nil)

func NewService(u domain.UserRepository, t TokenIssuer) *Service {
	return &Service{
		userRepo: u,
		tokens:   t,
	}
}

// Register stores a new account. The returned user carries no password.
func (s *Service) Register(ctx context.Context, p domain.Payload) (domain.User, error) {
	ru, err := domain.ParseRegisterUser(p)
	if err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(ru.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Errorf("failed to hash password: %v", err)
		return domain.User{}, domain.ErrInternalServerError
	}

	u := domain.User{
		Username: ru.Username,
		Password: string(hash),
		Fullname: ru.Fullname,
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.User{}, domain.NewError(domain.CodeRegisterUserUsernameTaken, err)
		}
		return domain.User{}, err
	}

	u.Password = ""
	return u, nil
}

func (s *Service) Login(ctx context.Context, p domain.Payload) (string, error) {
	ul, err := domain.ParseUserLogin(p)
	if err != nil {
		return "", err
	}

	u, err := s.userRepo.GetByUsername(ctx, ul.Username)
	if err != nil {
		return "", domain.CodeIfNotFound(err, domain.CodeUserLoginUserNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(ul.Password)); err != nil {
		return "", domain.NewError(domain.CodeUserLoginWrongPassword, err)
	}

	return s.tokens.NewToken(u)
}
