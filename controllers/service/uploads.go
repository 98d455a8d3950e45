package serviceControllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vairous86/bbbeeedddooo/metrics"
	"github.com/Vairous86/bbbeeedddooo/storage"
)

// UploadServiceImageHandler stores a service image and returns its public
// URL. Service creation aborts when this fails, so no service row ever
// points at a missing image.
func UploadServiceImageHandler(store storage.BlobStore, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
			return
		}
		defer src.Close()
		content, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
			return
		}

		url, err := store.Save(storage.NamespaceServiceImages, file.Filename, content)
		if err != nil {
			m.Uploads.WithLabelValues("service_image", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		m.Uploads.WithLabelValues("service_image", "ok").Inc()

		c.JSON(http.StatusOK, gin.H{"file_url": url, "message": "File uploaded successfully"})
	}
}
