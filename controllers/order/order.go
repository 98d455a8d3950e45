package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/cache"
	analyticsControllers "github.com/Vairous86/bbbeeedddooo/controllers/analytics"
	paymentControllers "github.com/Vairous86/bbbeeedddooo/controllers/payment"
	"github.com/Vairous86/bbbeeedddooo/metrics"
	"github.com/Vairous86/bbbeeedddooo/models"
)

// -------- Request Structs --------

type CartItem struct {
	PackageID string `json:"package_id" binding:"required"`
}

type CreateOrderRequest struct {
	ServiceID         string     `json:"service_id" binding:"required"`
	AccountURL        string     `json:"account_url"`
	ServiceText       string     `json:"service_text"`
	WhatsappNumber    string     `json:"whatsapp_number"`
	Currency          string     `json:"currency" binding:"required"`
	PaymentMethod     string     `json:"payment_method"`
	PaymentScreenshot string     `json:"payment_screenshot"`
	Cart              []CartItem `json:"cart"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// newFreeOrder builds the zero-cost order row for text submissions and for
// services that skip payment. Text bodies are stored in AccountURL behind
// the TEXT: prefix.
func newFreeOrder(req CreateOrderRequest, svc models.Service, isText bool, method string) models.Order {
	accountURL := req.AccountURL
	if isText {
		accountURL = models.TextSubmissionPrefix + req.ServiceText
	}
	return models.Order{
		ID:             uuid.NewString(),
		ServiceID:      svc.ID,
		ServiceName:    svc.Title,
		Platform:       svc.Platform,
		AccountURL:     accountURL,
		Quantity:       0,
		WhatsappNumber: req.WhatsappNumber,
		Price:          0,
		Currency:       req.Currency,
		PaymentMethod:  method,
		Status:         models.OrderStatusPending,
		CreatedAt:      time.Now(),
	}
}

// newPaidOrder builds one order row for a cart line item. All rows of the
// same cart share one screenshot pointer and method.
func newPaidOrder(req CreateOrderRequest, svc models.Service, pkg models.ServicePackage, method string, screenshot *string) models.Order {
	return models.Order{
		ID:                uuid.NewString(),
		ServiceID:         svc.ID,
		ServiceName:       svc.Title,
		Platform:          svc.Platform,
		AccountURL:        req.AccountURL,
		Quantity:          pkg.Units,
		WhatsappNumber:    req.WhatsappNumber,
		Price:             PriceForPackage(pkg, svc, req.Currency),
		Currency:          req.Currency,
		PaymentMethod:     method,
		PaymentScreenshot: screenshot,
		Status:            models.OrderStatusPending,
		CreatedAt:         time.Now(),
	}
}

// -------- Core Logic --------

// CreateOrderHandler creates orders in one of two flows. Services with a
// text submission type or no payment requirement finalize immediately at
// zero cost; everything else needs a selected package per cart line and an
// already-uploaded payment screenshot.
func CreateOrderHandler(db *gorm.DB, cch *cache.Redis, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var svc models.Service
		if err := db.First(&svc, "id = ?", req.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		isText := svc.SubmissionType == "text"
		if isText || !svc.RequiresPayment {
			createFreeOrder(c, db, cch, m, req, svc, isText)
			return
		}
		createPaidOrders(c, db, cch, m, req, svc)
	}
}

func createFreeOrder(c *gin.Context, db *gorm.DB, cch *cache.Redis, m *metrics.Metrics, req CreateOrderRequest, svc models.Service, isText bool) {
	if errs := validateFreeOrderInput(req, isText); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// Settings failures degrade to the built-in defaults so a free order is
	// never blocked by the settings table.
	settings, err := paymentControllers.FetchSettings(db, cch)
	if err != nil {
		settings = paymentControllers.Resolve(nil)
	}

	order := newFreeOrder(req, svc, isText, paymentControllers.DefaultMethodFor(req.Currency, settings))
	if err := db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	m.OrdersCreated.WithLabelValues("free").Inc()

	go analyticsControllers.RecordEvent(db, "purchase", svc.ID, models.MetaMap{
		"quantity": 0, "price": 0, "free": true,
	})
	broadcastNewOrder(order)

	c.JSON(http.StatusCreated, gin.H{
		"ids":      []string{order.ID},
		"message":  "Order placed successfully",
		"redirect": "/platform/" + svc.Platform,
	})
}

func createPaidOrders(c *gin.Context, db *gorm.DB, cch *cache.Redis, m *metrics.Metrics, req CreateOrderRequest, svc models.Service) {
	// Request-shape checks come first: a missing screenshot or empty cart
	// rejects the submission before anything is read or written.
	errs := validatePaidOrderInput(req)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	settings, err := paymentControllers.FetchSettings(db, cch)
	if err != nil {
		settings = paymentControllers.Resolve(nil)
	}
	method := NormalizePaymentMethod(req.PaymentMethod)
	if !methodEnabled(method, paymentControllers.MethodsForCurrency(req.Currency, settings)) {
		errs["payment_method"] = "Selected payment method is not available for this currency"
	}

	// Resolve cart packages up front so validation can never partially
	// create orders.
	packageIDs := make([]string, 0, len(req.Cart))
	for _, item := range req.Cart {
		packageIDs = append(packageIDs, item.PackageID)
	}
	var packages []models.ServicePackage
	if err := db.Where("id IN ?", packageIDs).Find(&packages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	byID := make(map[string]models.ServicePackage, len(packages))
	for _, p := range packages {
		byID[p.ID] = p
	}
	validateCartPackages(req.Cart, byID, svc.ID, errs)

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	screenshot := req.PaymentScreenshot

	// One order row per cart line item, created concurrently. There is no
	// rollback across items: the response reports which items failed so the
	// caller can retry just those.
	type itemResult struct {
		order *models.Order
		err   error
	}
	results := make([]itemResult, len(req.Cart))
	var wg sync.WaitGroup
	for i, item := range req.Cart {
		pkg := byID[item.PackageID]
		wg.Add(1)
		go func(i int, pkg models.ServicePackage) {
			defer wg.Done()
			order := newPaidOrder(req, svc, pkg, method, &screenshot)
			if err := db.Create(&order).Error; err != nil {
				results[i] = itemResult{err: err}
				return
			}
			results[i] = itemResult{order: &order}
		}(i, pkg)
	}
	wg.Wait()

	var createdIDs []string
	var failed []string
	for i, res := range results {
		if res.err != nil {
			failed = append(failed, req.Cart[i].PackageID)
			continue
		}
		createdIDs = append(createdIDs, res.order.ID)
		m.OrdersCreated.WithLabelValues("paid").Inc()
		go analyticsControllers.RecordEvent(db, "purchase", svc.ID, models.MetaMap{
			"package_id": req.Cart[i].PackageID,
			"quantity":   res.order.Quantity,
			"price":      res.order.Price,
		})
		broadcastNewOrder(*res.order)
	}

	if len(createdIDs) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create orders"})
		return
	}

	resp := gin.H{
		"ids":      createdIDs,
		"message":  "Payment submitted",
		"redirect": "/payment/confirmation?ids=" + strings.Join(createdIDs, ","),
	}
	if len(failed) > 0 {
		resp["failed"] = failed
	}
	c.JSON(http.StatusCreated, resp)
}

// -------- Handlers --------

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrdersByIDsHandler serves the confirmation page, which is addressed by
// the list of created order ids (?ids=a,b,c).
func GetOrdersByIDsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idsParam := c.Query("ids")
		if idsParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ids is required"})
			return
		}
		ids := strings.Split(idsParam, ",")

		var orders []models.Order
		if err := db.Where("id IN ?", ids).Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler applies an admin status change, subject to the
// configured transition policy.
func UpdateOrderStatusHandler(db *gorm.DB, policy models.TransitionPolicy, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if !policy.Allowed(order.Status, newStatus) {
			c.JSON(http.StatusConflict, gin.H{"error": "status transition not allowed"})
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		m.OrderStatusUpdates.WithLabelValues(string(newStatus)).Inc()
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DeleteOrderHandler removes an order. A rejected delete leaves the store
// unchanged, which lets the dashboard's optimistic list removal be reverted
// safely.
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		res := db.Where("id = ?", orderID).Delete(&models.Order{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
