package domain

import "context"

// User represents a registered forum member.
type User struct {
	ID       string // user-<uuid>
	Username string // unique login name
	Password string // bcrypt hash
	Fullname string
}

const (
	usernameMaxLength = 50
	// bcrypt refuses longer input
	passwordMaxBytes = 72
)

// RegisterUser is the payload for creating an account.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

func ParseRegisterUser(p Payload) (RegisterUser, error) {
	fields, err := p.stringFields("REGISTER_USER", "username", "password", "fullname")
	if err != nil {
		return RegisterUser{}, err
	}
	username := fields["username"]
	if len(username) > usernameMaxLength {
		return RegisterUser{}, NewError("REGISTER_USER.USERNAME_LIMIT_CHAR", nil)
	}
	if !isUsername(username) {
		return RegisterUser{}, NewError("REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER", nil)
	}
	if len(fields["password"]) > passwordMaxBytes {
		return RegisterUser{}, NewError("REGISTER_USER.PASSWORD_LIMIT_CHAR", nil)
	}
	return RegisterUser{
		Username: username,
		Password: fields["password"],
		Fullname: fields["fullname"],
	}, nil
}

func isUsername(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// UserLogin is the payload for signing in.
type UserLogin struct {
	Username string
	Password string
}

func ParseUserLogin(p Payload) (UserLogin, error) {
	fields, err := p.stringFields("USER_LOGIN", "username", "password")
	if err != nil {
		return UserLogin{}, err
	}
	return UserLogin{Username: fields["username"], Password: fields["password"]}, nil
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// VerifyUserByID returns ErrNotFound if the user doesn't exist.
	VerifyUserByID(ctx context.Context, id string) error

	// Insert creates a new user account and backfills its ID.
	// Returns ErrConflict if the username already exists.
	Insert(ctx context.Context, u *User) error

	// GetByUsername returns ErrNotFound if no user has that username.
	GetByUsername(ctx context.Context, username string) (User, error)
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// Register creates a new user account.
	Register(ctx context.Context, p Payload) (User, error)

	// Login verifies user credentials and returns a signed access token.
	Login(ctx context.Context, p Payload) (string, error)
}
