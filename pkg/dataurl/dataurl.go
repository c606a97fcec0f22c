// Package dataurl разбирает и собирает data URL вида
// "data:image/png;base64,<payload>", в которых изображения ходят внутри JSON.
package dataurl

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	scheme       = "data:"
	base64Marker = "base64"
)

var (
	ErrMissingScheme    = errors.New("data url must start with \"data:\"")
	ErrMissingDelimiter = errors.New("data url has no ',' between header and payload")
	ErrNotBase64        = errors.New("data url payload is not marked as base64")
	ErrInvalidBase64    = errors.New("data url payload is not valid base64")
	ErrEmptyPayload     = errors.New("data url payload is empty")
	ErrNotImageType     = errors.New("data url media type is not an image")
	ErrNotImage         = errors.New("decoded payload is not an image")
)

// Image результат разбора: тип по содержимому и сырые байты
type Image struct {
	DeclaredType string // тип из заголовка data URL
	DetectedType string // тип, определённый по байтам
	Data         []byte
}

// Decode разбирает data URL и проверяет, что внутри действительно картинка.
// Заголовку клиента не доверяем: тип определяется по содержимому.
func Decode(s string) (*Image, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(strings.ToLower(s), scheme) {
		return nil, ErrMissingScheme
	}

	header, payload, ok := strings.Cut(s[len(scheme):], ",")
	if !ok {
		return nil, ErrMissingDelimiter
	}

	params := strings.Split(header, ";")
	declared := strings.ToLower(strings.TrimSpace(params[0]))
	if !strings.HasPrefix(declared, "image/") {
		return nil, ErrNotImageType
	}
	if !hasBase64Marker(params[1:]) {
		return nil, ErrNotBase64
	}

	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, ErrEmptyPayload
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return nil, ErrInvalidBase64
	}
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, ErrNotImage
	}

	return &Image{
		DeclaredType: declared,
		DetectedType: detected.String(),
		Data:         data,
	}, nil
}

// Encode собирает data URL из типа и байтов
func Encode(mediaType string, data []byte) string {
	return scheme + mediaType + ";" + base64Marker + "," + base64.StdEncoding.EncodeToString(data)
}

// IsInvalid сообщает, что ошибка вызвана некорректным data URL
func IsInvalid(err error) bool {
	for _, target := range []error{
		ErrMissingScheme,
		ErrMissingDelimiter,
		ErrNotBase64,
		ErrInvalidBase64,
		ErrEmptyPayload,
		ErrNotImageType,
		ErrNotImage,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func hasBase64Marker(params []string) bool {
	for _, p := range params {
		if strings.EqualFold(strings.TrimSpace(p), base64Marker) {
			return true
		}
	}
	return false
}

// decodeBase64 принимает и стандартный алфавит с паддингом, и без него.
func decodeBase64(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}
