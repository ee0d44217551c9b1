package handlers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"

	"girvi-backend/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadDir is where multipart files land; served statically at /uploads.
const uploadDir = "./uploads"

// saveUpload stores a multipart file under a uuid-based name and returns
// the Uploads-relative path persisted on the record.
func saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", err
	}
	return "uploads/" + filename, nil
}

// optionalUpload saves the named form file if present. No file is not
// an error; every image field in this API is optional.
func optionalUpload(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	return saveUpload(c, file)
}

// --- POST: standalone file upload ---
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	path, err := saveUpload(c, file)
	if err != nil {
		logging.LogError("handlers", "UploadImage", "save file", file.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File uploaded successfully", "path": path})
}
