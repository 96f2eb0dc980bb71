package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nagaralert/nagarhub/internal/pkg/logger"
	"github.com/nagaralert/nagarhub/internal/utils"
)

// VerifyImage runs the uploaded image through the content verifier and
// returns the verdict. A safety-filtered image is still a 200 with
// verified=false.
func (h *ReportHandler) VerifyImage(c echo.Context) error {
	imageBytes, mimeType, err := readImagePart(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.reportUC.VerifyImage(c.Request().Context(), imageBytes, mimeType)
	if err != nil {
		logger.Error("Content verification failed", logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, "Content verifier unavailable")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Image verified", result)
}

// UploadImage stores the uploaded image and returns its public URL
func (h *ReportHandler) UploadImage(c echo.Context) error {
	imageBytes, mimeType, err := readImagePart(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.reportUC.UploadImage(c.Request().Context(), imageBytes, mimeType)
	if err != nil {
		logger.Error("Image upload failed", logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, "Image storage unavailable")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Image uploaded", result)
}

// readImagePart extracts the "image" multipart file and its content type.
func readImagePart(c echo.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, "", errors.New("Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.New("Unable to read image file")
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errors.New("Unable to read image file")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(imageBytes)
	}
	return imageBytes, mimeType, nil
}
