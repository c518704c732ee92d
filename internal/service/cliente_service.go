package service

import (
	"context"
	"errors"

	"ferreteria/internal/dto"
	"ferreteria/internal/model"
	"ferreteria/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrRFCDuplicado    = errors.New("ya existe un cliente con ese RFC")
	ErrCorreoDuplicado = errors.New("ya existe un cliente con ese correo")
)

type ClienteService interface {
	// Registrar creates the login user and the customer profile. RFC and
	// correo uniqueness are checked up front so the caller gets a specific
	// error instead of a raw constraint violation.
	Registrar(ctx context.Context, req dto.RegistrarClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*dto.ClienteResponse, error)
}

type clienteService struct {
	repo        repository.ClienteRepository
	usuarioRepo repository.UsuarioRepository
}

func NewClienteService(repo repository.ClienteRepository, usuarioRepo repository.UsuarioRepository) ClienteService {
	return &clienteService{repo: repo, usuarioRepo: usuarioRepo}
}

func (s *clienteService) Registrar(ctx context.Context, req dto.RegistrarClienteRequest) (*dto.ClienteResponse, error) {
	existe, err := s.repo.ExistePorRFC(ctx, req.RFC)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, ErrRFCDuplicado
	}

	existe, err = s.repo.ExistePorCorreo(ctx, req.Correo)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, ErrCorreoDuplicado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	usuario := &model.Usuario{
		Username:     req.Username,
		Nombre:       req.Nombre,
		Email:        &req.Correo,
		PasswordHash: string(hash),
		Rol:          model.RolCliente,
		Activo:       true,
	}
	if err := s.usuarioRepo.Crear(ctx, usuario); err != nil {
		return nil, err
	}

	cliente := &model.Cliente{
		UsuarioID:    &usuario.ID,
		Nombre:       req.Nombre,
		Correo:       req.Correo,
		Telefono:     req.Telefono,
		Direccion:    req.Direccion,
		Estado:       req.Estado,
		Ciudad:       req.Ciudad,
		CodigoPostal: req.CodigoPostal,
		RFC:          req.RFC,
	}
	if err := s.repo.Crear(ctx, cliente); err != nil {
		return nil, err
	}

	return clienteToResponse(cliente), nil
}

func (s *clienteService) ObtenerPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.ObtenerPorUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrSinCliente
	}
	return clienteToResponse(cliente), nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:           c.ID.String(),
		Nombre:       c.Nombre,
		Correo:       c.Correo,
		Telefono:     c.Telefono,
		Direccion:    c.Direccion,
		Estado:       c.Estado,
		Ciudad:       c.Ciudad,
		CodigoPostal: c.CodigoPostal,
		RFC:          c.RFC,
	}
}
