package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// uploadError carries a user-facing validation message and its HTTP status.
type uploadError struct {
	status int
	msg    string
}

func (e *uploadError) Error() string { return e.msg }

// readChatUpload extracts and decodes the uploaded export from a multipart
// request. Only .txt uploads are accepted, capped at the configured size.
func (s *Server) readChatUpload(w http.ResponseWriter, r *http.Request) (filename, content string, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("chat_file")
	if err != nil {
		if isTooLarge(err) {
			return "", "", s.tooLargeError()
		}
		return "", "", &uploadError{http.StatusBadRequest, "No file uploaded"}
	}
	defer file.Close()

	if header.Filename == "" {
		return "", "", &uploadError{http.StatusBadRequest, "No file selected"}
	}
	if strings.ToLower(filepath.Ext(header.Filename)) != ".txt" {
		return "", "", &uploadError{http.StatusBadRequest, "Invalid file type. Please upload a .txt file"}
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			return "", "", s.tooLargeError()
		}
		return "", "", &uploadError{http.StatusBadRequest, "Could not read uploaded file"}
	}

	content = decodeText(raw)
	if strings.TrimSpace(content) == "" {
		return "", "", &uploadError{http.StatusBadRequest, "File is empty"}
	}

	return header.Filename, content, nil
}

// isTooLarge recognises a MaxBytesReader trip. The multipart reader does
// not always preserve the typed error, hence the message check.
func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}

func (s *Server) tooLargeError() *uploadError {
	return &uploadError{http.StatusRequestEntityTooLarge,
		fmt.Sprintf("File too large. Maximum size is %dMB", s.maxUploadBytes/(1024*1024))}
}

// decodeText decodes upload bytes as UTF-8, falling back to Latin-1 for
// exports from older clients. Latin-1 maps every byte to the same code
// point, so the fallback cannot fail.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		b.WriteRune(rune(c))
	}
	return b.String()
}
