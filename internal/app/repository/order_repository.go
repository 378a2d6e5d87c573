package repository

import (
	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindAll() ([]model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order inquiry in database", map[string]interface{}{
		"product_name":  order.ProductName,
		"customer_name": order.CustomerName,
	})

	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order inquiry in database", err, map[string]interface{}{
			"product_name": order.ProductName,
		})
		return err
	}
	return nil
}

func (r *orderRepository) FindAll() ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.Order("id DESC").Find(&orders).Error; err != nil {
		logger.Error("Failed to list order inquiries in database", err)
		return nil, err
	}
	return orders, nil
}
