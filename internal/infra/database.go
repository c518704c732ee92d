package infra

import (
	"fmt"

	"ferreteria/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create or update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Cliente{},
		&model.Categoria{},
		&model.Marca{},
		&model.Proveedor{},
		&model.Producto{},
		&model.Promocion{},
		&model.PromocionTicker{},
		&model.Cotizacion{},
		&model.CotizacionItem{},
		&model.Pedido{},
		&model.PedidoItem{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
