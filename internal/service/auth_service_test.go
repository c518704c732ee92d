package service

import (
	"context"
	"testing"

	"ferreteria/internal/config"
	"ferreteria/internal/dto"
	"ferreteria/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func cfgPruebas() *config.Config {
	return &config.Config{
		JWTSecret:          "secreto-de-pruebas",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
}

func seedUsuario(repo *stubUsuarioRepo, username, password, rol string) *model.Usuario {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	u := &model.Usuario{
		Username:     username,
		Nombre:       "Usuario de Prueba",
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       true,
	}
	if err := repo.Crear(context.Background(), u); err != nil {
		panic(err)
	}
	return u
}

func TestLogin(t *testing.T) {
	usuarios := newStubUsuarioRepo()
	seedUsuario(usuarios, "vendedor1", "clave123", model.RolVendedor)
	svc := NewAuthService(usuarios, cfgPruebas())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "vendedor1", Password: "clave123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, model.RolVendedor, resp.User.Rol)
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	usuarios := newStubUsuarioRepo()
	seedUsuario(usuarios, "vendedor1", "clave123", model.RolVendedor)
	svc := NewAuthService(usuarios, cfgPruebas())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "vendedor1", Password: "equivocada"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "clave123"})
	assert.Error(t, err)
}

func TestRefreshEmiteTokensNuevos(t *testing.T) {
	usuarios := newStubUsuarioRepo()
	seedUsuario(usuarios, "cliente1", "clave123", model.RolCliente)
	svc := NewAuthService(usuarios, cfgPruebas())

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cliente1", Password: "clave123"})
	require.NoError(t, err)

	refrescado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refrescado.AccessToken)
	assert.Equal(t, login.User.ID, refrescado.User.ID)
}

func TestRefreshRechazaTokenInvalido(t *testing.T) {
	svc := NewAuthService(newStubUsuarioRepo(), cfgPruebas())

	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.Error(t, err)
}

func TestRefreshRechazaUsuarioInactivo(t *testing.T) {
	usuarios := newStubUsuarioRepo()
	u := seedUsuario(usuarios, "baja1", "clave123", model.RolVendedor)
	svc := NewAuthService(usuarios, cfgPruebas())

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "baja1", Password: "clave123"})
	require.NoError(t, err)

	u.Activo = false
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.Error(t, err)
}
