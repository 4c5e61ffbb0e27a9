package http

import (
	"fmt"
	"net/http"
	"strconv"

	"evrental-backend/internal/storage"
)

const maxUploadMemory = 32 << 20

// formFile pulls one multipart file out of the request. The returned
// upload is only valid until the handler returns.
func formFile(r *http.Request, field string) (*storage.FileUpload, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			return nil, fmt.Errorf("invalid multipart form")
		}
	}
	f, header, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing file field %q", field)
	}
	return &storage.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     f,
	}, nil
}

// formFiles pulls every file submitted under the field name.
func formFiles(r *http.Request, field string) []storage.FileUpload {
	if r.MultipartForm == nil {
		return nil
	}
	var uploads []storage.FileUpload
	for _, header := range r.MultipartForm.File[field] {
		f, err := header.Open()
		if err != nil {
			continue
		}
		uploads = append(uploads, storage.FileUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     f,
		})
	}
	return uploads
}

// parseInspectionForm reads the shared inspection fields plus photos.
func parseInspectionForm(r *http.Request, battery, mileage *int32, photos *[]storage.FileUpload) error {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return fmt.Errorf("invalid multipart form")
	}

	b, err := strconv.ParseInt(r.FormValue("battery_level"), 10, 32)
	if err != nil || b < 0 || b > 100 {
		return fmt.Errorf("battery_level must be between 0 and 100")
	}
	m, err := strconv.ParseInt(r.FormValue("mileage"), 10, 32)
	if err != nil || m < 0 {
		return fmt.Errorf("mileage must be a non-negative integer")
	}

	*battery = int32(b)
	*mileage = int32(m)
	*photos = formFiles(r, "photos")
	return nil
}
