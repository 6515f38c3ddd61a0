package auth

import (
	"context"
	"database/sql"
	"testing"

	"github.com/georgemunganga/marketplace-backend/internal/apperror"
	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ---- fakeUserRepo implementing user.Repository for tests ----

type fakeUserRepo struct {
	CreateUserFn        func(ctx context.Context, u *user.User) error
	GetUserByIDFn       func(ctx context.Context, id string) (*user.User, error)
	GetUserByUsernameFn func(ctx context.Context, username string) (*user.User, error)
	GetUserByEmailFn    func(ctx context.Context, email string) (*user.User, error)
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, u *user.User) error {
	return f.CreateUserFn(ctx, u)
}
func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	return f.GetUserByIDFn(ctx, id)
}
func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	return f.GetUserByUsernameFn(ctx, username)
}
func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.GetUserByEmailFn(ctx, email)
}
func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]*user.User, error) { return nil, nil }
func (f *fakeUserRepo) UpdateUser(ctx context.Context, u *user.User) error  { return nil }
func (f *fakeUserRepo) DeleteUser(ctx context.Context, id string) error     { return nil }

func noUser(ctx context.Context, _ string) (*user.User, error) { return nil, sql.ErrNoRows }

// ---- Register ----

func TestRegisterIssuesDecodableToken(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"))
	var created *user.User
	repo := &fakeUserRepo{
		GetUserByUsernameFn: noUser,
		GetUserByEmailFn:    noUser,
		CreateUserFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	svc := NewService(repo, issuer)

	token, u, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Password: "s3cret", Email: "alice@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, u.ID)

	// Stored credential is a hash, never the raw password.
	assert.NotEqual(t, "s3cret", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret")))

	subject, err := issuer.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), subject)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, NewIssuer([]byte("k")))

	for _, req := range []RegisterRequest{
		{},
		{Username: "alice", Password: "pw"},
		{Username: "alice", Email: "a@b.c"},
		{Password: "pw", Email: "a@b.c"},
	} {
		_, _, err := svc.Register(context.Background(), req)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation), "req %+v", req)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	existing := &user.User{ID: uuid.New(), Username: "alice"}
	repo := &fakeUserRepo{
		GetUserByUsernameFn: func(ctx context.Context, _ string) (*user.User, error) {
			return existing, nil
		},
		GetUserByEmailFn: noUser,
	}
	svc := NewService(repo, NewIssuer([]byte("k")))

	// Same username with a different email still conflicts.
	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice", Password: "pw", Email: "other@example.com",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Equal(t, "Username already exists", apperror.Message(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{
		GetUserByUsernameFn: noUser,
		GetUserByEmailFn: func(ctx context.Context, _ string) (*user.User, error) {
			return &user.User{ID: uuid.New()}, nil
		},
	}
	svc := NewService(repo, NewIssuer([]byte("k")))

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Username: "bob", Password: "pw", Email: "taken@example.com",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Equal(t, "Email already exists", apperror.Message(err))
}

// ---- Login ----

func TestLoginSuccess(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"))
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	u := &user.User{ID: uuid.New(), Username: "alice", PasswordHash: string(hash)}
	repo := &fakeUserRepo{
		GetUserByUsernameFn: func(ctx context.Context, _ string) (*user.User, error) {
			return u, nil
		},
	}
	svc := NewService(repo, issuer)

	token, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	subject, err := issuer.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), subject)
}

func TestLoginBadCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	known := &user.User{ID: uuid.New(), Username: "alice", PasswordHash: string(hash)}

	t.Run("unknown username", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{GetUserByUsernameFn: noUser}, NewIssuer([]byte("k")))
		_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "x"})
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeUserRepo{
			GetUserByUsernameFn: func(ctx context.Context, _ string) (*user.User, error) {
				return known, nil
			},
		}
		svc := NewService(repo, NewIssuer([]byte("k")))
		_, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{}, NewIssuer([]byte("k")))
		_, err := svc.Login(context.Background(), LoginRequest{Username: "alice"})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})
}

// ---- Decode ----

func TestDecode(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret"))
	u := &user.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	token, err := issuer.IssueToken(u.ID)
	require.NoError(t, err)

	t.Run("valid token resolves user", func(t *testing.T) {
		repo := &fakeUserRepo{
			GetUserByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				assert.Equal(t, u.ID.String(), id)
				return u, nil
			},
		}
		got, err := NewService(repo, issuer).Decode(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, u, got)
	})

	t.Run("no token", func(t *testing.T) {
		_, err := NewService(&fakeUserRepo{}, issuer).Decode(context.Background(), "")
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := NewService(&fakeUserRepo{}, issuer).Decode(context.Background(), "garbage")
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	})

	t.Run("user gone", func(t *testing.T) {
		repo := &fakeUserRepo{GetUserByIDFn: noUser}
		_, err := NewService(repo, issuer).Decode(context.Background(), token)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}
