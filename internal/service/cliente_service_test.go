package service

import (
	"context"
	"testing"

	"ferreteria/internal/dto"
	"ferreteria/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registroValido() dto.RegistrarClienteRequest {
	tel := "5512345678"
	return dto.RegistrarClienteRequest{
		Username: "lupita",
		Password: "secreto123",
		Nombre:   "Lupita Fernández",
		Correo:   "lupita@clientes.mx",
		Telefono: &tel,
		RFC:      "FELU800101AAA",
	}
}

func TestRegistrarCreaUsuarioYCliente(t *testing.T) {
	clientes := newStubClienteRepo()
	usuarios := newStubUsuarioRepo()
	svc := NewClienteService(clientes, usuarios)

	resp, err := svc.Registrar(context.Background(), registroValido())
	require.NoError(t, err)
	assert.Equal(t, "Lupita Fernández", resp.Nombre)
	assert.Equal(t, "FELU800101AAA", resp.RFC)

	// El usuario queda con rol cliente, activo y con la clave cifrada.
	require.Len(t, usuarios.usuarios, 1)
	var usuario *model.Usuario
	for _, u := range usuarios.usuarios {
		usuario = u
	}
	assert.Equal(t, model.RolCliente, usuario.Rol)
	assert.True(t, usuario.Activo)
	assert.False(t, usuario.EsStaff())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte("secreto123")))

	// El perfil queda ligado 1:1 al usuario.
	cliente, err := clientes.ObtenerPorUsuarioID(context.Background(), usuario.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, cliente.ID.String())
}

func TestRegistrarRFCDuplicado(t *testing.T) {
	clientes := newStubClienteRepo()
	usuarios := newStubUsuarioRepo()
	svc := NewClienteService(clientes, usuarios)

	_, err := svc.Registrar(context.Background(), registroValido())
	require.NoError(t, err)

	otro := registroValido()
	otro.Username = "otro"
	otro.Correo = "otro@clientes.mx"
	_, err = svc.Registrar(context.Background(), otro)
	assert.ErrorIs(t, err, ErrRFCDuplicado)

	// El pre-chequeo evita dejar un usuario huerfano.
	assert.Len(t, usuarios.usuarios, 1)
}

func TestRegistrarCorreoDuplicado(t *testing.T) {
	clientes := newStubClienteRepo()
	usuarios := newStubUsuarioRepo()
	svc := NewClienteService(clientes, usuarios)

	_, err := svc.Registrar(context.Background(), registroValido())
	require.NoError(t, err)

	otro := registroValido()
	otro.Username = "otro"
	otro.RFC = "XEXX010101XXX"
	_, err = svc.Registrar(context.Background(), otro)
	assert.ErrorIs(t, err, ErrCorreoDuplicado)
	assert.Len(t, usuarios.usuarios, 1)
}

func TestObtenerPorUsuarioInexistente(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo(), newStubUsuarioRepo())

	_, err := svc.ObtenerPorUsuario(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSinCliente)
}
