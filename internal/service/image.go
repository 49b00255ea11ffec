package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/foodconnect/backend/config"
	"github.com/foodconnect/backend/internal/logger"
)

const presignedURLExpiry = 15 * time.Minute

// ImageService stores uploaded label photos so scan-history entries can show
// the original image. A nil S3 config disables storage; analysis still runs,
// the history entry just has no image.
type ImageService struct {
	s3Config *config.S3Config
}

func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// StoreLabelImage uploads the image and returns its object key. The key, not
// a URL, is persisted; presigned URLs are minted on read so the bucket can
// stay private.
func (s *ImageService) StoreLabelImage(ctx context.Context, imageData []byte, originalName string) (string, error) {
	if s.s3Config == nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		ext = ".jpg"
	}
	key := fmt.Sprintf("label-images/%s%s", uuid.New().String(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentTypeForExt(ext)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	logger.L().Infow("stored label image", "key", key)
	return key, nil
}

// ImageURL mints a presigned URL for a stored object key. Empty keys yield
// an empty URL.
func (s *ImageService) ImageURL(ctx context.Context, key string) (string, error) {
	if s.s3Config == nil || key == "" {
		return "", nil
	}
	return s.s3Config.GeneratePresignedURL(ctx, key, presignedURLExpiry)
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
