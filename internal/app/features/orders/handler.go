// internal/app/features/orders/handler.go
package orders

import (
	"context"

	"github.com/dalemusser/lessonshop/internal/domain/models"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=../../store/storemock/orders.go -package=storemock -mock_names=Store=MockOrderStore . Store

// Store persists orders.
type Store interface {
	Create(ctx context.Context, o models.Order) (models.Order, error)
}

type Handler struct {
	Orders Store
	Log    *zap.Logger
}

func NewHandler(orders Store, logger *zap.Logger) *Handler {
	return &Handler{
		Orders: orders,
		Log:    logger,
	}
}
