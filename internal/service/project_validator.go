package service

import (
	"strings"

	"github.com/afr117/My-personal-website/internal/model"
)

// ValidateProject は生のペイロードを検証・正規化し、保存可能な Project（ID なし）を返す。
// 副作用はない。失敗時は不正なフィールドをすべて列挙した *ValidationError を返す。
func ValidateProject(in model.ProjectInput) (*model.Project, error) {
	var bad []string

	title := strings.TrimSpace(in.Title)
	if title == "" {
		bad = append(bad, "title")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		bad = append(bad, "description")
	}
	image := strings.TrimSpace(in.Image)
	if image == "" {
		bad = append(bad, "image")
	}

	technologies := NormalizeTechnologies(in.Technologies...)
	if len(technologies) == 0 {
		bad = append(bad, "technologies")
	}

	featured := false
	if in.Featured.Present {
		switch in.Featured.Literal {
		case "true":
			featured = true
		case "false":
		default:
			bad = append(bad, "featured")
		}
	}

	if len(bad) > 0 {
		return nil, &ValidationError{Fields: bad}
	}

	return &model.Project{
		Title:        title,
		Description:  description,
		Image:        image,
		Technologies: technologies,
		GithubURL:    optionalString(in.GithubURL),
		LiveURL:      optionalString(in.LiveURL),
		Featured:     featured,
	}, nil
}

// NormalizeTechnologies はカンマで分割・トリムし、空トークンを捨てる。順序は保持する。
// "React,  TypeScript ,,Node.js" → ["React", "TypeScript", "Node.js"]
func NormalizeTechnologies(blobs ...string) []string {
	var out []string
	for _, blob := range blobs {
		for _, tok := range strings.Split(blob, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}

// optionalString は空・空白のみを「未指定」(nil) に正規化する
func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
