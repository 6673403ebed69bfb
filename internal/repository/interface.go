package repository

import (
	"context"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// NopDB は外部ストアを持たない構成（インメモリ）で使う常に healthy な DB
type NopDB struct{}

func (NopDB) Ping(context.Context) error { return nil }

// Pingers は複数の DB をまとめて確認する。最初に失敗したものを返す
type Pingers []DB

func (ps Pingers) Ping(ctx context.Context) error {
	for _, p := range ps {
		if err := p.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}
