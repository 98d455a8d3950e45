package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestNewFreeOrderTextSubmission(t *testing.T) {
	svc := models.Service{ID: "svc-1", Title: "Custom Request", Platform: "instagram", SubmissionType: "text"}
	req := CreateOrderRequest{
		ServiceID:      "svc-1",
		ServiceText:    "please boost my page",
		WhatsappNumber: "0501234567",
		Currency:       models.CurrencySAR,
	}

	order := newFreeOrder(req, svc, true, models.MethodSTCPay)

	if order.Quantity != 0 || order.Price != 0 {
		t.Fatalf("expected zero quantity and price, got quantity=%d price=%v", order.Quantity, order.Price)
	}
	if order.AccountURL != models.TextSubmissionPrefix+"please boost my page" {
		t.Fatalf("expected prefixed text body, got %q", order.AccountURL)
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.PaymentMethod != models.MethodSTCPay {
		t.Fatalf("expected default method, got %s", order.PaymentMethod)
	}
	if order.ID == "" {
		t.Fatal("expected generated order id")
	}
}

func TestNewFreeOrderNoPaymentKeepsAccountURL(t *testing.T) {
	svc := models.Service{ID: "svc-2", Title: "Free Likes", Platform: "tiktok", RequiresPayment: false}
	req := CreateOrderRequest{
		ServiceID:      "svc-2",
		AccountURL:     "https://tiktok.com/@someone",
		WhatsappNumber: "0501234567",
		Currency:       models.CurrencyEGP,
	}

	order := newFreeOrder(req, svc, false, models.MethodVodafoneCash)

	if order.AccountURL != "https://tiktok.com/@someone" {
		t.Fatalf("expected account url untouched, got %q", order.AccountURL)
	}
	if order.Quantity != 0 || order.Price != 0 {
		t.Fatalf("expected zero quantity and price, got quantity=%d price=%v", order.Quantity, order.Price)
	}
}

func TestNewPaidOrdersShareScreenshot(t *testing.T) {
	svc := models.Service{ID: "svc-1", Title: "Followers", Platform: "instagram", Prices: models.PriceMap{"SAR": 10}}
	req := CreateOrderRequest{
		ServiceID:      "svc-1",
		AccountURL:     "https://instagram.com/someone",
		WhatsappNumber: "0501234567",
		Currency:       models.CurrencySAR,
	}
	screenshot := "/uploads/payment-screenshots/1_receipt.png"

	a := newPaidOrder(req, svc, models.ServicePackage{ID: "svc-1-1000", ServiceID: "svc-1", Units: 1000}, models.MethodSTCPay, &screenshot)
	b := newPaidOrder(req, svc, models.ServicePackage{ID: "svc-1-2000", ServiceID: "svc-1", Units: 2000}, models.MethodSTCPay, &screenshot)

	if a.PaymentScreenshot != b.PaymentScreenshot || a.PaymentScreenshot == nil {
		t.Fatal("expected both rows to share one screenshot")
	}
	if a.Quantity != 1000 || a.Price != 10 {
		t.Fatalf("unexpected first row: quantity=%d price=%v", a.Quantity, a.Price)
	}
	if b.Quantity != 2000 || b.Price != 20 {
		t.Fatalf("unexpected second row: quantity=%d price=%v", b.Quantity, b.Price)
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct order ids")
	}
}

func TestValidatePaidOrderInputRequiresScreenshot(t *testing.T) {
	req := CreateOrderRequest{
		AccountURL:     "https://instagram.com/someone",
		WhatsappNumber: "0501234567",
		Cart:           []CartItem{{PackageID: "svc-1-1000"}},
	}

	errs := validatePaidOrderInput(req)
	if _, ok := errs["payment_screenshot"]; !ok {
		t.Fatalf("expected payment_screenshot error, got %v", errs)
	}

	req.PaymentScreenshot = "/uploads/payment-screenshots/1_receipt.png"
	if errs := validatePaidOrderInput(req); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestCreatePaidOrdersWithoutScreenshotWritesNothing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := CreateOrderRequest{
		ServiceID:      "svc-1",
		AccountURL:     "https://instagram.com/someone",
		WhatsappNumber: "0501234567",
		Currency:       models.CurrencySAR,
		PaymentMethod:  "stcpay",
		Cart:           []CartItem{{PackageID: "svc-1-1000"}},
	}

	// db is nil: touching storage before the reject would panic here.
	createPaidOrders(c, nil, nil, nil, req, models.Service{ID: "svc-1"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "payment_screenshot") {
		t.Fatalf("expected payment_screenshot in error body, got %s", w.Body.String())
	}
}

func TestValidateCartPackagesReportsAllUnknown(t *testing.T) {
	byID := map[string]models.ServicePackage{
		"svc-1-1000": {ID: "svc-1-1000", ServiceID: "svc-1", Units: 1000},
	}
	cart := []CartItem{
		{PackageID: "svc-1-1000"},
		{PackageID: "ghost-1"},
		{PackageID: "ghost-2"},
	}

	errs := make(map[string]string)
	validateCartPackages(cart, byID, "svc-1", errs)

	msg := errs["cart"]
	if !strings.Contains(msg, "ghost-1") || !strings.Contains(msg, "ghost-2") {
		t.Fatalf("expected both unknown ids reported, got %q", msg)
	}
}

func TestValidateCartPackagesRejectsForeignService(t *testing.T) {
	byID := map[string]models.ServicePackage{
		"other-500": {ID: "other-500", ServiceID: "svc-2", Units: 500},
	}

	errs := make(map[string]string)
	validateCartPackages([]CartItem{{PackageID: "other-500"}}, byID, "svc-1", errs)

	if errs["cart"] == "" {
		t.Fatal("expected another service's package to be rejected")
	}
}

func TestDeleteOrderRejectedLeavesStoreUnchanged(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	order := models.Order{
		ID:        "ord-1",
		ServiceID: "svc-1",
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}

	runDelete := func(id string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "orderID", Value: id}}
		DeleteOrderHandler(db)(c)
		return w
	}

	if w := runDelete("does-not-exist"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", w.Code)
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("rejected delete changed the store: count=%d", count)
	}
	var kept models.Order
	if err := db.First(&kept, "id = ?", "ord-1").Error; err != nil {
		t.Fatalf("existing order no longer readable: %v", err)
	}

	if w := runDelete("ord-1"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for existing order, got %d", w.Code)
	}
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected order removed, count=%d", count)
	}
}
