package imagemeta

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vincent-petithory/dataurl"
)

// DefaultMIME тип по умолчанию, если data URL его не указывает
const DefaultMIME = "image/jpeg"

var (
	ErrNotDataURL   = errors.New("not an image data URL")
	ErrEmptyPayload = errors.New("empty image payload")
)

// Payload декодированное содержимое data URL
type Payload struct {
	MIME string
	Data []byte
}

// DecodeDataURL разбирает "data:image/<fmt>;base64,<bytes>".
// Заголовок разбирает dataurl, полезная нагрузка декодируется отдельно:
// парсер dataurl оставляет висеть горутину лексера, если base64 не декодируется.
func DecodeDataURL(s string) (Payload, error) {
	s = strings.TrimSpace(s)
	header, encoded, ok := strings.Cut(s, ",")
	if !ok || !strings.HasPrefix(header, "data:") {
		return Payload{}, ErrNotDataURL
	}

	du, err := dataurl.DecodeString(header + ",")
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrNotDataURL, err)
	}

	mime := du.ContentType()
	switch {
	case strings.HasPrefix(header, "data:;"):
		// без типа dataurl подставляет text/plain
		mime = DefaultMIME
	case du.Type != "image":
		return Payload{}, fmt.Errorf("%w: unsupported media type %q", ErrNotDataURL, mime)
	}
	if du.Encoding != dataurl.EncodingBase64 {
		return Payload{}, fmt.Errorf("%w: only base64 encoding is supported", ErrNotDataURL)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// браузеры иногда отдают base64 без паддинга
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if err != nil {
			return Payload{}, fmt.Errorf("failed to decode image payload: %w", err)
		}
	}
	if len(data) == 0 {
		return Payload{}, ErrEmptyPayload
	}
	return Payload{MIME: mime, Data: data}, nil
}
