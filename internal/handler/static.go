package handler

import (
	"io/fs"
	"net/http"
	"strings"
)

// noListingFS はディレクトリを存在しないものとして扱う http.FileSystem。
// http.FileServer のディレクトリ一覧（アップロード済みファイル名の列挙）を防ぐ。
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}

// staticHandler は dir 配下のファイルを prefix で配信する。ディレクトリは 404。
func staticHandler(prefix, dir string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(noListingFS{fs: http.Dir(dir)}))
}

// mountPrefix は "/a/b" 形式の URL プレフィックスを ServeMux のサブツリーパターン用に "/a/b/" へ揃える
func mountPrefix(p string) string {
	return "/" + strings.Trim(p, "/") + "/"
}
