package controller

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jlin/peacepet-backend/internal/app/service"
)

// checkboxOn is how HTML checkboxes arrive in form posts.
const checkboxOn = "on"

func readFileHeader(header *multipart.FileHeader) (*service.FileUpload, error) {
	if header == nil || header.Filename == "" {
		return nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &service.FileUpload{Filename: header.Filename, Content: content}, nil
}

// formFile reads a single optional uploaded file. A missing part or an
// empty filename both mean "no file supplied".
func formFile(c *gin.Context, field string) (*service.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		// gin wraps http.ErrMissingFile; an absent part is not an error here
		return nil, nil
	}
	return readFileHeader(header)
}

// formFiles reads a multi-file field. Browsers submit one empty part when
// nothing is selected, so empty filenames are skipped.
func formFiles(c *gin.Context, field string) ([]service.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	var files []service.FileUpload
	for _, header := range form.File[field] {
		upload, err := readFileHeader(header)
		if err != nil {
			return nil, err
		}
		if upload != nil {
			files = append(files, *upload)
		}
	}
	return files, nil
}

// assetChange builds the synchronizer directive for one asset field from
// its delete-checkbox and file input pair. The delete directive wins.
func assetChange(c *gin.Context, fileField, deleteField string) (service.AssetChange, error) {
	if c.PostForm(deleteField) == checkboxOn {
		return service.AssetChange{Delete: true}, nil
	}
	file, err := formFile(c, fileField)
	if err != nil {
		return service.AssetChange{}, err
	}
	return service.AssetChange{File: file}, nil
}

func formInt(c *gin.Context, field string, fallback int) int {
	value, err := strconv.Atoi(c.PostForm(field))
	if err != nil {
		return fallback
	}
	return value
}

func formFloat(c *gin.Context, field string, fallback float64) float64 {
	value, err := strconv.ParseFloat(c.PostForm(field), 64)
	if err != nil {
		return fallback
	}
	return value
}

func formUint(c *gin.Context, field string) uint {
	value, err := strconv.ParseUint(c.PostForm(field), 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}
