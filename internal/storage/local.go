package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage はローカルファイルシステムに画像を保存する Storage 実装。
type LocalStorage struct {
	baseDir   string // ディスク上のルートディレクトリ (例: "./attached_assets/uploads")
	urlPrefix string // HTTP で配信する際の URL プレフィックス (例: "/attached_assets/uploads")
}

// NewLocalStorage は LocalStorage を生成する。
func NewLocalStorage(baseDir, urlPrefix string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

// Save は一時ファイルに書き込んでから rename する。
// 書き込み途中のファイルが配信パスに現れることはない。
func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader, _ string) (string, error) {
	dest, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(dest), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	tmp := f.Name()

	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("storage: write: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("storage: close: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("storage: chmod: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("storage: rename: %w", err)
	}

	return s.urlPrefix + "/" + filepath.ToSlash(key), nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	dest, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}

// path は key を baseDir 配下の絶対パスに解決する。ディレクトリトラバーサルは拒否する。
func (s *LocalStorage) path(key string) (string, error) {
	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", fmt.Errorf("storage: abs: %w", err)
	}
	dest := filepath.Join(base, filepath.FromSlash(key))
	if !strings.HasPrefix(dest, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return dest, nil
}
