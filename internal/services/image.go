package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/fitdetector-backend/internal/apierr"
	"github.com/yungbote/fitdetector-backend/internal/logger"
)

type ImageService interface {
	Upload(ctx context.Context, userID uuid.UUID, imageBase64 string) (string, error)
}

type imageService struct {
	log           *logger.Logger
	bucketService BucketService
}

func NewImageService(log *logger.Logger, bucketService BucketService) ImageService {
	serviceLog := log.With("service", "ImageService")
	return &imageService{log: serviceLog, bucketService: bucketService}
}

// Upload accepts a base64 payload (raw or data URL), stores it under a
// fresh object key and returns the public URL. Storage failures are
// logged with detail but surface as a generic upstream error.
func (is *imageService) Upload(ctx context.Context, userID uuid.UUID, imageBase64 string) (string, error) {
	if userID == uuid.Nil {
		return "", apierr.Unauthorized(fmt.Errorf("uploading an image requires an authenticated user"))
	}
	payload := strings.TrimSpace(imageBase64)
	if payload == "" {
		return "", apierr.InvalidInput(fmt.Errorf("an image payload is required"))
	}
	// data:image/png;base64,<payload>
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", apierr.InvalidInput(fmt.Errorf("image payload is not valid base64: %w", err))
	}
	if len(raw) == 0 {
		return "", apierr.InvalidInput(fmt.Errorf("image payload is empty"))
	}

	key := fmt.Sprintf("outfits/%s", uuid.New().String())
	if err := is.bucketService.UploadFile(ctx, key, bytes.NewReader(raw)); err != nil {
		is.log.Error("Image upload failed", "key", key, "error", err)
		return "", apierr.Upstream(fmt.Errorf("image upload failed"))
	}
	return is.bucketService.GetPublicURL(key), nil
}
