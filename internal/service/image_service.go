package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/afr117/My-personal-website/internal/storage"
	"github.com/google/uuid"
)

// MaxImageSize はアップロード画像の上限サイズ (5 MiB)
const MaxImageSize = 5 << 20

var allowedImageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".jfif": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageUpload はアップロードされた1ファイル
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// ImageService は画像の受け入れ（サイズ・種別の検証、一意な名前の採番、保存）を行う
type ImageService struct {
	storage storage.Storage
	newName func() string
}

// NewImageService は ImageService を生成する
func NewImageService(store storage.Storage) *ImageService {
	return &ImageService{storage: store, newName: uuid.NewString}
}

// Save は画像を検証して保存し、ProjectRecord.image に使える参照パスを返す。
// 拒否時は *UploadError を返し、ファイルは残さない。
func (s *ImageService) Save(ctx context.Context, up ImageUpload) (string, error) {
	if up.Data == nil {
		return "", &UploadError{Reason: "No file uploaded"}
	}
	if up.Size > MaxImageSize {
		return "", &UploadError{Reason: "File too large (max 5MB)"}
	}

	ext := strings.ToLower(filepath.Ext(up.Filename))
	if !allowedImageExtensions[ext] || !strings.HasPrefix(strings.ToLower(up.ContentType), "image/") {
		return "", &UploadError{Reason: "Only image files are allowed (jpeg, jpg, jfif, png, gif, webp)"}
	}

	// 申告サイズを信用せず、上限 +1 バイトまで読んで超過を検出する
	buf, err := io.ReadAll(io.LimitReader(up.Data, MaxImageSize+1))
	if err != nil {
		return "", &UploadError{Reason: "Failed to read uploaded file"}
	}
	if len(buf) > MaxImageSize {
		return "", &UploadError{Reason: "File too large (max 5MB)"}
	}
	if len(buf) == 0 {
		return "", &UploadError{Reason: "No file uploaded"}
	}

	key := s.newName() + ext
	url, err := s.storage.Save(ctx, key, bytes.NewReader(buf), up.ContentType)
	if err != nil {
		_ = s.storage.Delete(ctx, key)
		return "", fmt.Errorf("save image: %w", err)
	}
	slog.Info("image stored", "key", key, "bytes", len(buf))
	return url, nil
}
