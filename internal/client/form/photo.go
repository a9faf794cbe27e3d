package form

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

var (
	ErrEmptyPhoto   = errors.New("photo: empty file")
	ErrInvalidPhoto = errors.New("photo: not a base64 data url")
)

// EncodePhoto lee r completo y devuelve data:<mime>;base64,<payload>.
// El mime sale de la extensión de name; si no se reconoce, del contenido.
func EncodePhoto(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("photo: read: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyPhoto
	}

	mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if mt == "" {
		mt = http.DetectContentType(data)
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}

	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodePhoto es la inversa de EncodePhoto: devuelve los bytes y el mime.
func DecodePhoto(dataURL string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, "", ErrInvalidPhoto
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", ErrInvalidPhoto
	}
	mt, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, "", ErrInvalidPhoto
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidPhoto, err)
	}
	return data, mt, nil
}

// PhotoExt sugiere una extensión de archivo para el mime (".bin" si no hay).
func PhotoExt(mt string) string {
	if exts, err := mime.ExtensionsByType(mt); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}
