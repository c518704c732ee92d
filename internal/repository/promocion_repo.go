package repository

import (
	"context"

	"ferreteria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromocionRepository interface {
	Listar(ctx context.Context) ([]model.Promocion, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Promocion, error)
	// TickersActivos feeds the storefront's scrolling promo strip.
	TickersActivos(ctx context.Context) ([]model.PromocionTicker, error)
}

type promocionRepository struct{ db *gorm.DB }

func NewPromocionRepository(db *gorm.DB) PromocionRepository {
	return &promocionRepository{db: db}
}

func (r *promocionRepository) Listar(ctx context.Context) ([]model.Promocion, error) {
	var list []model.Promocion
	err := r.db.WithContext(ctx).Order("vigente_hasta asc").Find(&list).Error
	return list, err
}

func (r *promocionRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Promocion, error) {
	var p model.Promocion
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *promocionRepository) TickersActivos(ctx context.Context) ([]model.PromocionTicker, error) {
	var list []model.PromocionTicker
	err := r.db.WithContext(ctx).Where("activo = true").
		Order("created_at desc").Find(&list).Error
	return list, err
}
