package handler

import "net/http"

type blobResponse struct {
	contentType  string
	cacheControl string
	body         []byte
}

func (b blobResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", b.contentType)
	if b.cacheControl != "" {
		w.Header().Set("Cache-Control", b.cacheControl)
	}
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(b.body)
	return err
}

// Blob writes body with the given content type and a 200 status.
// An empty cacheControl leaves the Cache-Control header unset.
func Blob(contentType, cacheControl string, body []byte) Response {
	return blobResponse{contentType: contentType, cacheControl: cacheControl, body: body}
}
