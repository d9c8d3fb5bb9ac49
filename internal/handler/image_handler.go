package handlers

import (
	"errors"
	"net/http"

	"hotelbooking/internal/service"
)

type ImageUploadRequest struct {
	Folder string `validate:"required,oneof=rooms posts"`
}

type ImageUploadResponse struct {
	ImageURL string `json:"image_url"`
}

// UploadImage accepts multipart form data with a "folder" field and an
// "image" file, and returns the public URL to store in image_url.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	maxSize := h.Cfg.MaxUploadSize
	if r.ContentLength > maxSize {
		WriteError(w, "Файл слишком большой", http.StatusRequestEntityTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, "Файл слишком большой", http.StatusRequestEntityTooLarge)
			return
		}
		writeSuccess(w, ErrorResponse{Message: service.MsgBadRequest, Error: err.Error()}, http.StatusBadRequest)
		return
	}

	req := ImageUploadRequest{Folder: r.FormValue("folder")}
	if err := h.Validate.Struct(req); err != nil {
		writeSuccess(w, ErrorResponse{Message: service.MsgBadRequest, Error: err.Error()}, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeSuccess(w, ErrorResponse{Message: service.MsgBadRequest, Error: err.Error()}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.ImageService.Upload(r.Context(), req.Folder, header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, ImageUploadResponse{ImageURL: url}, http.StatusCreated)
}
