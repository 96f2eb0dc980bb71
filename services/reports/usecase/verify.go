package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/nagaralert/nagarhub/internal/pkg/logger"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

const maxImageBytes = 10 << 20 // 10 MiB

// VerifyImage asks the content verifier whether the image shows a genuine
// civic issue. Safety-filtered images come back as an unverified verdict,
// not an error; only transport failures propagate.
func (uc *ReportUC) VerifyImage(ctx context.Context, imageBytes []byte, mimeType string) (*models.VerificationResult, error) {
	if len(imageBytes) == 0 {
		return nil, errors.New("image is required")
	}
	if len(imageBytes) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	result, err := uc.reportGW.VerifyImage(ctx, imageBytes, mimeType)
	if err != nil {
		return nil, fmt.Errorf("content verification failed: %w", err)
	}

	logger.InfoCtx(ctx, "Image verified",
		logger.Bool("verified", result.Verified),
		logger.Float64("confidence", result.Confidence))
	return result, nil
}

// UploadImage stores the image bytes and returns the public URL clients
// should attach to their report submission.
func (uc *ReportUC) UploadImage(ctx context.Context, imageBytes []byte, mimeType string) (*models.UploadResult, error) {
	if len(imageBytes) == 0 {
		return nil, errors.New("image is required")
	}
	if len(imageBytes) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	url, err := uc.reportGW.UploadImage(ctx, imageBytes, mimeType)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	return &models.UploadResult{Success: true, URL: url}, nil
}
