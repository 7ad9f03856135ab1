package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khosrovf/Khosro8/internal/application/auth"
	"github.com/Khosrovf/Khosro8/internal/application/dto"
	"github.com/Khosrovf/Khosro8/internal/domain"
	"github.com/Khosrovf/Khosro8/internal/domain/entity"
	"github.com/Khosrovf/Khosro8/internal/domain/repository"
	"github.com/Khosrovf/Khosro8/pkg/jwt"
)

// ── Fake de UserRepository ────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int64
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrDuplicate
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// ── Tests ─────────────────────────────────────────────────────────────────────

var testJWT = auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "inventario-test"}

func TestRegister_YLogin(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{
		Email:    "Admin@Example.com",
		Password: "clave-segura",
		Name:     "Admin",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "admin@example.com", user.Email, "el email se normaliza a minúsculas")

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "clave-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := jwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_RolPorDefecto(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	user, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "op@b.com", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperador, user.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@b.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
