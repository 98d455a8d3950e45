package paymentControllers

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/cache"
	"github.com/Vairous86/bbbeeedddooo/metrics"
	"github.com/Vairous86/bbbeeedddooo/models"
	"github.com/Vairous86/bbbeeedddooo/storage"
)

func readUpload(c *gin.Context) (string, []byte, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	src, err := file.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		return "", nil, err
	}
	return file.Filename, content, nil
}

// UploadScreenshotHandler stores a payment screenshot and returns its public
// URL. Order creation requires this URL, so a failure here means no order
// gets created until the customer retries.
func UploadScreenshotHandler(store storage.BlobStore, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		filename, content, err := readUpload(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		url, err := store.Save(storage.NamespacePaymentScreenshots, filename, content)
		if err != nil {
			m.Uploads.WithLabelValues("screenshot", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload screenshot"})
			return
		}
		m.Uploads.WithLabelValues("screenshot", "ok").Inc()

		c.JSON(http.StatusOK, gin.H{"file_url": url, "message": "File uploaded successfully"})
	}
}

var qrMethods = map[string]struct{ method, currency string }{
	"stcpay":  {models.MethodSTCPay, models.CurrencySAR},
	"alrajhi": {models.MethodAlRajhi, models.CurrencySAR},
}

// UploadQRHandler replaces one method's QR image. Only qr_url changes; the
// stored account number is carried over untouched.
func UploadQRHandler(db *gorm.DB, store storage.BlobStore, cch *cache.Redis, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		target, ok := qrMethods[c.PostForm("method")]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "method must be stcpay or alrajhi"})
			return
		}

		filename, content, err := readUpload(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		url, err := store.Save(storage.NamespacePaymentQRs, filename, content)
		if err != nil {
			m.Uploads.WithLabelValues("qr", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload QR image"})
			return
		}
		m.Uploads.WithLabelValues("qr", "ok").Inc()

		var existing models.PaymentSetting
		err = db.Where("method = ? AND currency = ?", target.method, target.currency).First(&existing).Error
		if err == nil {
			err = db.Model(&existing).Update("qr_url", url).Error
		} else if err == gorm.ErrRecordNotFound {
			err = db.Create(&models.PaymentSetting{
				Method:   target.method,
				Currency: target.currency,
				QRUrl:    url,
				IsActive: true,
			}).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save QR URL"})
			return
		}

		_ = cch.Delete(context.Background(), settingsCacheKey)
		log.Printf("QR image updated for %s: %s", target.method, url)

		c.JSON(http.StatusOK, gin.H{"file_url": url, "message": "QR image updated"})
	}
}
