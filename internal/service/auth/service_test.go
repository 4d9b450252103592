package auth

import (
	"context"
	"strconv"
	"testing"

	"github.com/peoplehub/hrms-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testTenantID = "01900000-0000-7000-8000-00000000000a"
	testRoleID   = "01900000-0000-7000-8000-00000000000e"
	testSecret   = "test-secret-key-for-jwt"
)

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users  map[string]*user.User
	nextID int
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	r.nextID++
	u.ID = "user-" + strconv.Itoa(r.nextID)
	u.IsActive = true
	copied := u
	r.users[u.ID] = &copied
	return u, nil
}

func (r *fakeUserRepo) GetActiveByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.IsActive {
			return *u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmailAndTenant(_ context.Context, email, tenantID string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.TenantID == tenantID {
			return *u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if u, ok := r.users[id]; ok {
		return *u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) ListByTenant(_ context.Context, tenantID string) ([]user.User, error) {
	out := make([]user.User, 0)
	for _, u := range r.users {
		if u.TenantID == tenantID {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeRoleRepo struct {
	roles map[string]user.Role
}

func (r *fakeRoleRepo) GetByIDAndTenant(_ context.Context, id, tenantID string) (user.Role, error) {
	role, ok := r.roles[id]
	if !ok || role.TenantID != tenantID {
		return user.Role{}, user.ErrRoleNotFound
	}
	return role, nil
}

func (r *fakeRoleRepo) ListByTenant(_ context.Context, tenantID string) ([]user.Role, error) {
	out := make([]user.Role, 0)
	for _, role := range r.roles {
		if role.TenantID == tenantID {
			out = append(out, role)
		}
	}
	return out, nil
}

type authFixture struct {
	service auth.AuthService
	users   *fakeUserRepo
	jwt     jwt.Service
}

func newAuthFixture() *authFixture {
	users := &fakeUserRepo{users: make(map[string]*user.User)}
	roles := &fakeRoleRepo{roles: map[string]user.Role{
		testRoleID: {ID: testRoleID, TenantID: testTenantID, Name: "employee"},
	}}
	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")

	return &authFixture{
		service: NewAuthService(&fakeTxManager{}, users, roles, jwtService),
		users:   users,
		jwt:     jwtService,
	}
}

func (f *authFixture) seedUser(t *testing.T, email, password string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	roleName := "employee"
	u, err := f.users.Create(context.Background(), user.User{
		TenantID:     testTenantID,
		RoleID:       testRoleID,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		RoleName:     &roleName,
	})
	require.NoError(t, err)
	return u
}

func TestLoginSuccess(t *testing.T) {
	f := newAuthFixture()
	seeded := f.seedUser(t, "ada@example.com", "password123")

	result, err := f.service.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Greater(t, result.ExpiresAt, int64(0))
	assert.Equal(t, seeded.ID, result.User.ID)
	assert.Equal(t, "employee", result.User.RoleName)
	assert.Equal(t, testTenantID, result.User.TenantID)

	// The issued access token carries the identity claims.
	token, err := f.jwt.JWTAuth().Decode(result.Token)
	require.NoError(t, err)
	userID, _ := token.Get("user_id")
	tenantID, _ := token.Get("tenant_id")
	tokenType, _ := token.Get("type")
	assert.Equal(t, seeded.ID, userID)
	assert.Equal(t, testTenantID, tenantID)
	assert.Equal(t, "access", tokenType)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture()
	f.seedUser(t, "ada@example.com", "password123")

	_, err := f.service.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	f := newAuthFixture()

	info, err := f.service.Register(context.Background(), auth.RegisterRequest{
		Email:     "grace@example.com",
		Password:  "password123",
		FirstName: "Grace",
		LastName:  "Hopper",
		TenantID:  testTenantID,
		RoleID:    testRoleID,
	})
	require.NoError(t, err)
	assert.Equal(t, "employee", info.RoleName)

	stored := f.users.users[info.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	f.seedUser(t, "ada@example.com", "password123")

	_, err := f.service.Register(context.Background(), auth.RegisterRequest{
		Email:     "ada@example.com",
		Password:  "password123",
		FirstName: "Ada",
		LastName:  "Lovelace",
		TenantID:  testTenantID,
		RoleID:    testRoleID,
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegisterRoleFromOtherTenant(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Register(context.Background(), auth.RegisterRequest{
		Email:     "grace@example.com",
		Password:  "password123",
		FirstName: "Grace",
		LastName:  "Hopper",
		TenantID:  "0190ffff-0000-7000-8000-000000000001",
		RoleID:    testRoleID,
	})
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestRefreshRotatesToken(t *testing.T) {
	f := newAuthFixture()
	f.seedUser(t, "ada@example.com", "password123")

	login, err := f.service.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := f.service.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token)
	assert.NotEmpty(t, refreshed.RefreshToken)

	// The presented token was revoked during rotation.
	_, err = f.service.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	f := newAuthFixture()
	f.seedUser(t, "ada@example.com", "password123")

	login, err := f.service.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = f.service.Refresh(context.Background(), login.Token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = f.service.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	f := newAuthFixture()
	f.seedUser(t, "ada@example.com", "password123")

	login, err := f.service.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(context.Background(), login.RefreshToken))

	_, err = f.service.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
