package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jlin/peacepet-backend/internal/app/service"
	apperrors "github.com/jlin/peacepet-backend/internal/errors"
	"github.com/jlin/peacepet-backend/internal/middleware"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// Submit records an anonymous lead-capture inquiry and returns a plain
// acknowledgment, as the storefront form expects.
// POST /submit-order
func (ctrl *OrderController) Submit(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	input := service.OrderInput{
		ProductName:  c.PostForm("product_name"),
		CustomerName: c.PostForm("customer_name"),
		Contact:      c.PostForm("contact"),
		Note:         c.DefaultPostForm("note", ""),
	}

	if _, err := ctrl.orderService.Submit(input); err != nil {
		log.Error("Failed to submit order inquiry", err, map[string]interface{}{
			"product_name": input.ProductName,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.String(http.StatusOK, "OK")
}

// Export streams every inquiry as an XLSX download.
// GET /admin/orders/export
func (ctrl *OrderController) Export(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	data, err := ctrl.orderService.ExportXLSX()
	if err != nil {
		log.Error("Failed to export order inquiries", err)
		apperrors.InternalError(c, "")
		return
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
