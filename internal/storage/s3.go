package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API は S3Storage が使う S3 クライアントのサブセット
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage は S3（および R2 等の互換ストレージ）に画像を保存する Storage 実装。
type S3Storage struct {
	client    S3API
	bucket    string
	prefix    string // オブジェクトキーのプレフィックス (例: "uploads/")
	publicURL string // 公開配信のベース URL (例: "https://cdn.example.com")
}

// NewS3Storage は S3Storage を生成する。
func NewS3Storage(client S3API, bucket, prefix, publicURL string) *S3Storage {
	return &S3Storage{
		client:    client,
		bucket:    bucket,
		prefix:    prefix,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// NewS3StorageFromEnv は AWS の標準設定チェーン（環境変数・共有設定ファイル）からクライアントを作る。
// endpoint が空でなければ S3 互換エンドポイントとして使う。
func NewS3StorageFromEnv(ctx context.Context, bucket, prefix, publicURL, endpoint string) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3Storage(client, bucket, prefix, publicURL), nil
}

func (s *S3Storage) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	objectKey := s.prefix + key
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        data,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put object: %w", err)
	}
	return s.publicURL + "/" + objectKey, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete object: %w", err)
	}
	return nil
}
