package user_test

import (
	"context"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/user"
)

type stubIssuer struct{}

func (stubIssuer) NewToken(u domain.User) (string, error) {
	return "token-for-" + u.ID, nil
}

func TestRegister(t *testing.T) {
	payload := domain.Payload{"username": "dicoding", "password": faker.Password(), "fullname": faker.Name()}

	t.Run("hashes the password", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("Insert", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "dicoding" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(payload["password"].(string))) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = "user-123"
		}).Return(nil).Once()

		got, err := user.NewService(users, stubIssuer{}).Register(context.TODO(), payload)

		require.NoError(t, err)
		assert.Equal(t, "user-123", got.ID)
		assert.Empty(t, got.Password)
		users.AssertExpectations(t)
	})

	t.Run("taken username", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("Insert", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()

		_, err := user.NewService(users, stubIssuer{}).Register(context.TODO(), payload)

		assert.Equal(t, domain.CodeRegisterUserUsernameTaken, domain.ErrorCode(err))
	})

	t.Run("bad payload", func(t *testing.T) {
		users := new(mocks.UserRepository)
		_, err := user.NewService(users, stubIssuer{}).Register(context.TODO(), domain.Payload{"username": "dicoding"})
		assert.Equal(t, "REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY", domain.ErrorCode(err))
	})

	t.Run("password too long to hash", func(t *testing.T) {
		users := new(mocks.UserRepository)
		long := domain.Payload{"username": "dicoding", "password": strings.Repeat("p", 80), "fullname": faker.Name()}

		_, err := user.NewService(users, stubIssuer{}).Register(context.TODO(), long)

		assert.Equal(t, "REGISTER_USER.PASSWORD_LIMIT_CHAR", domain.ErrorCode(err))
		users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := domain.User{ID: "user-123", Username: "dicoding", Password: string(hash)}

	t.Run("issues a token", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("GetByUsername", mock.Anything, "dicoding").Return(stored, nil).Once()

		token, err := user.NewService(users, stubIssuer{}).Login(context.TODO(), domain.Payload{"username": "dicoding", "password": "secret"})

		require.NoError(t, err)
		assert.Equal(t, "token-for-user-123", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("GetByUsername", mock.Anything, "dicoding").Return(stored, nil).Once()

		_, err := user.NewService(users, stubIssuer{}).Login(context.TODO(), domain.Payload{"username": "dicoding", "password": "nope"})

		assert.Equal(t, domain.CodeUserLoginWrongPassword, domain.ErrorCode(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("GetByUsername", mock.Anything, "ghost").Return(domain.User{}, domain.ErrNotFound).Once()

		_, err := user.NewService(users, stubIssuer{}).Login(context.TODO(), domain.Payload{"username": "ghost", "password": "secret"})

		assert.Equal(t, domain.CodeUserLoginUserNotFound, domain.ErrorCode(err))
	})
}
