package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/internal/app/repository"
	"github.com/jlin/peacepet-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

type OrderInput struct {
	ProductName  string
	CustomerName string
	Contact      string
	Note         string
}

type OrderService interface {
	Submit(input OrderInput) (*model.Order, error)
	List() ([]model.Order, error)
	ExportXLSX() ([]byte, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// Submit records an anonymous inquiry. The note defaults to "" and the
// stored date carries minute precision.
func (s *orderService) Submit(input OrderInput) (*model.Order, error) {
	order := &model.Order{
		ProductName:  input.ProductName,
		CustomerName: input.CustomerName,
		ContactInfo:  input.Contact,
		Note:         input.Note,
		Date:         time.Now().Format(model.OrderDateFormat),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	logger.Info("Order inquiry submitted", map[string]interface{}{
		"order_id":     order.ID,
		"product_name": order.ProductName,
	})
	return order, nil
}

func (s *orderService) List() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

// ExportXLSX renders every inquiry into a spreadsheet for download.
func (s *orderService) ExportXLSX() ([]byte, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Product", "Customer", "Contact", "Note", "Date"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, order := range orders {
		values := []interface{}{
			order.ID,
			order.ProductName,
			order.CustomerName,
			order.ContactInfo,
			order.Note,
			order.Date,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write XLSX: %w", err)
	}

	logger.Info("Order inquiries exported", map[string]interface{}{
		"count": len(orders),
	})
	return buf.Bytes(), nil
}
