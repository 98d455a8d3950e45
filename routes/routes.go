package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/cache"
	analyticsControllers "github.com/Vairous86/bbbeeedddooo/controllers/analytics"
	"github.com/Vairous86/bbbeeedddooo/metrics"
	"github.com/Vairous86/bbbeeedddooo/models"
	"github.com/Vairous86/bbbeeedddooo/storage"
)

// Deps carries the shared collaborators handlers are wired with.
type Deps struct {
	DB      *gorm.DB
	Cache   *cache.Redis
	Metrics *metrics.Metrics
	Geo     *analyticsControllers.GeoClient
	Blobs   storage.BlobStore
	Policy  models.TransitionPolicy
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public storefront routes (no middleware)
	SetupAnalyticsRoutes(r, d)
	SetupOrderRoutes(r, d)
	SetupPaymentRoutes(r, d)
	SetupServiceRoutes(r, d)

	// Admin routes (JWT-protected)
	SetupAdminRoutes(r, d)
}
