package storage

import (
	"context"
	"io"
)

// Storage はアップロード画像の保存・削除を抽象化するインターフェース。
// ローカルファイルシステム実装と S3 互換ストレージ実装がある。
type Storage interface {
	// Save はファイルを保存し、ProjectRecord.image に埋め込める参照パス（URL）を返す。
	// key はストレージ内の一意名 (例: "<uuid>.png")。失敗時に中途半端なオブジェクトは残さない。
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete は key に対応するファイルを削除する。存在しない場合もエラーにしない。
	Delete(ctx context.Context, key string) error
}
