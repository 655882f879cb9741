package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/auth"
)

type fakeRepo struct {
	users  []User
	nextID int64
	err    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (f *fakeRepo) Create(ctx context.Context, firstName, lastName, email, passwordHash string) (*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}
	u := User{
		ID:        f.nextID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.nextID++
	f.users = append(f.users, u)
	return &u, nil
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context) ([]User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]User(nil), f.users...), nil
}

func newTestService(repo Repository) *Service {
	tokenService := auth.NewJWTService([]byte("test-secret-key-that-is-32-bytes"), time.Hour)
	return NewService(repo, auth.NewArgon2Hasher(), tokenService)
}

func TestService_Register(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.Register(context.Background(), "Jane", "Doe", "jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "jane@example.com", created.Email)

	// Stored password is a hash, never the plaintext
	assert.NotEqual(t, "s3cret", repo.users[0].Password)
	assert.Contains(t, repo.users[0].Password, "$argon2id$")
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "Jane", "Doe", "jane@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "John", "Doe", "jane@example.com", "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Len(t, repo.users, 1)
}

func TestService_LoginIssuesVerifiableToken(t *testing.T) {
	repo := newFakeRepo()
	tokenService := auth.NewJWTService([]byte("test-secret-key-that-is-32-bytes"), time.Hour)
	svc := NewService(repo, auth.NewArgon2Hasher(), tokenService)

	created, err := svc.Register(context.Background(), "Jane", "Doe", "jane@example.com", "s3cret")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "jane@example.com", "s3cret")
	require.NoError(t, err)

	claims, err := tokenService.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestService_LoginInvalidCredentialsAreIndistinguishable(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "Jane", "Doe", "jane@example.com", "s3cret")
	require.NoError(t, err)

	// Wrong password for an existing user
	_, wrongPassErr := svc.Login(context.Background(), "jane@example.com", "wrong")
	// Nonexistent user
	_, unknownErr := svc.Login(context.Background(), "nobody@example.com", "s3cret")

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
}

func TestService_RegisterRepositoryFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "Jane", "Doe", "jane@example.com", "s3cret")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
}
