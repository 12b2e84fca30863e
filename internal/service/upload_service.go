package service

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/lenspick/lenspick-backend/pkg/imageutil"
	"github.com/lenspick/lenspick-backend/pkg/storage"
	"github.com/lenspick/lenspick-backend/pkg/thumbnail"
)

// 업로드 에러 정의
var (
	ErrUnsupportedImageType = errors.New("지원하지 않는 이미지 형식입니다")
	ErrInvalidImageData     = errors.New("이미지 데이터를 해석할 수 없습니다")
)

// UploadService is the image-ingest pipeline: validate, place the object,
// and derive the catalog thumbnail from the same bytes.
type UploadService interface {
	// Upload validates the content type, uploads the object, and returns
	// its key and public URL.
	Upload(ctx context.Context, filename, contentType string, data []byte) (*storage.UploadResult, error)
	// UploadWithThumbnail additionally derives and uploads the 64x64
	// thumbnail, returning its public URL.
	UploadWithThumbnail(ctx context.Context, filename, contentType string, data []byte) (*storage.UploadResult, string, error)
	// UploadBase64PNG decodes a base64 blob of the declared MIME type,
	// re-encodes it as PNG, and uploads it.
	UploadBase64PNG(ctx context.Context, contentType, base64Data string) (*storage.UploadResult, error)
	Delete(ctx context.Context, key string) error
}

type uploadService struct {
	store *storage.Client
}

// NewUploadService creates a new UploadService
func NewUploadService(store *storage.Client) UploadService {
	return &uploadService{store: store}
}

func (s *uploadService) Upload(ctx context.Context, filename, contentType string, data []byte) (*storage.UploadResult, error) {
	if !imageutil.AllowedContentType(contentType) {
		return nil, ErrUnsupportedImageType
	}

	key := storage.GenerateKey(filename)
	if path.Ext(key) == "" {
		key += imageutil.ExtForContentType(contentType)
	}
	return s.store.Upload(ctx, key, data, contentType)
}

func (s *uploadService) UploadWithThumbnail(ctx context.Context, filename, contentType string, data []byte) (*storage.UploadResult, string, error) {
	result, err := s.Upload(ctx, filename, contentType, data)
	if err != nil {
		return nil, "", err
	}

	ext := strings.ToLower(path.Ext(result.Key))
	thumbBytes, thumbType, err := thumbnail.Derive(data, ext)
	if err != nil {
		return nil, "", ErrInvalidImageData
	}

	thumbKey := storage.GenerateThumbnailKey(ext)
	thumbResult, err := s.store.Upload(ctx, thumbKey, thumbBytes, thumbType)
	if err != nil {
		return nil, "", err
	}
	return result, thumbResult.URL, nil
}

func (s *uploadService) UploadBase64PNG(ctx context.Context, contentType, base64Data string) (*storage.UploadResult, error) {
	if !imageutil.AllowedContentType(contentType) {
		return nil, ErrUnsupportedImageType
	}

	raw, err := imageutil.DecodeBase64(base64Data)
	if err != nil {
		return nil, ErrInvalidImageData
	}
	normalized, err := imageutil.ReencodePNG(raw)
	if err != nil {
		return nil, ErrInvalidImageData
	}

	key := storage.GenerateKey("design.png")
	return s.store.Upload(ctx, key, normalized, "image/png")
}

func (s *uploadService) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}
