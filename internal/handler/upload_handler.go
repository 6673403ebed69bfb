package handler

import (
	"errors"
	"net/http"

	"github.com/afr117/My-personal-website/internal/service"
	"github.com/afr117/My-personal-website/pkg/auth"
)

// multipart ヘッダ等の余裕分
const uploadOverhead = 1 << 20

// UploadHandler は画像アップロードを処理する
type UploadHandler struct {
	images *service.ImageService
}

// NewUploadHandler は UploadHandler を生成する
func NewUploadHandler(images *service.ImageService) *UploadHandler {
	return &UploadHandler{images: images}
}

// Upload は POST /api/upload を処理する（管理者のみ）。
// multipart のフィールド "image" を受け取り、{imageUrl} を返す。
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !auth.PrincipalFromContext(r.Context()).Authenticated {
		writeServiceError(w, service.ErrUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, service.MaxImageSize+uploadOverhead)
	if err := r.ParseMultipartForm(service.MaxImageSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, "File too large (max 5MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	imageURL, err := h.images.Save(r.Context(), service.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        file,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"imageUrl": imageURL})
}
