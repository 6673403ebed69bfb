package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Project はポートフォリオに掲載する1件のプロジェクト
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"githubUrl"`
	LiveURL      *string  `json:"liveUrl"`
	Featured     bool     `json:"featured"`
}

// Clone は Project のディープコピーを返す。
// リポジトリ外へ渡した値が内部状態を書き換えないようにするために使う。
func (p *Project) Clone() *Project {
	c := *p
	c.Technologies = append([]string(nil), p.Technologies...)
	if p.GithubURL != nil {
		v := *p.GithubURL
		c.GithubURL = &v
	}
	if p.LiveURL != nil {
		v := *p.LiveURL
		c.LiveURL = &v
	}
	return &c
}

// ProjectInput は作成・更新リクエストの生のペイロード（id を含まない）
type ProjectInput struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Image        string        `json:"image"`
	Technologies TechList      `json:"technologies"`
	GithubURL    *string       `json:"githubUrl"`
	LiveURL      *string       `json:"liveUrl"`
	Featured     FeaturedInput `json:"featured"`
}

// TechList は technologies の入力値。
// カンマ区切りの文字列と文字列配列の両方を受け付け、分割・トリムはバリデータが行う。
type TechList []string

func (t *TechList) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*t = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = TechList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*t = list
	return nil
}

// FeaturedInput は featured の入力値。
// JSON の bool と "true" / "false" の文字列リテラルを受け付ける。
type FeaturedInput struct {
	Present bool
	Literal string
}

// Featured は bool 値から FeaturedInput を組み立てる
func Featured(v bool) FeaturedInput {
	if v {
		return FeaturedInput{Present: true, Literal: "true"}
	}
	return FeaturedInput{Present: true, Literal: "false"}
}

func (f *FeaturedInput) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		*f = FeaturedInput{}
		return nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err == nil {
		*f = Featured(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// 数値などはリテラルのまま保持し、バリデータで弾く
		*f = FeaturedInput{Present: true, Literal: string(raw)}
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*f = FeaturedInput{}
		return nil
	}
	*f = FeaturedInput{Present: true, Literal: strings.ToLower(s)}
	return nil
}
