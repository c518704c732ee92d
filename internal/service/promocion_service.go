package service

import (
	"context"
	"errors"

	"ferreteria/internal/dto"
	"ferreteria/internal/model"
	"ferreteria/internal/repository"

	"github.com/google/uuid"
)

var ErrPromocionNoHallada = errors.New("promocion no encontrada")

type PromocionService interface {
	Listar(ctx context.Context) ([]dto.PromocionResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PromocionResponse, error)
	TickersActivos(ctx context.Context) ([]dto.TickerResponse, error)
}

type promocionService struct {
	repo repository.PromocionRepository
}

func NewPromocionService(repo repository.PromocionRepository) PromocionService {
	return &promocionService{repo: repo}
}

func (s *promocionService) Listar(ctx context.Context) ([]dto.PromocionResponse, error) {
	promos, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PromocionResponse, len(promos))
	for i := range promos {
		resp[i] = *promocionToResponse(&promos[i])
	}
	return resp, nil
}

func (s *promocionService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PromocionResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, ErrPromocionNoHallada
	}
	return promocionToResponse(p), nil
}

func (s *promocionService) TickersActivos(ctx context.Context) ([]dto.TickerResponse, error) {
	tickers, err := s.repo.TickersActivos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TickerResponse, len(tickers))
	for i, t := range tickers {
		resp[i] = dto.TickerResponse{Texto: t.Texto}
	}
	return resp, nil
}

func promocionToResponse(p *model.Promocion) *dto.PromocionResponse {
	return &dto.PromocionResponse{
		ID:           p.ID.String(),
		Titulo:       p.Titulo,
		Descripcion:  p.Descripcion,
		Descuento:    p.Descuento,
		Imagen:       p.Imagen,
		VigenteHasta: p.VigenteHasta.Format("2006-01-02"),
	}
}
