// Package imagemeta читает размеры JPEG/PNG из заголовков и вписывает
// изображение в заданную рамку.
package imagemeta

import (
	"bytes"
	"encoding/binary"
	"math"
)

// MaxScanBytes ограничивает разбор JPEG: SOF ищется только в начале файла
const MaxScanBytes = 256 << 10

// Box рамка в пикселях
type Box struct {
	MaxWidth  int `json:"maxWidth" yaml:"maxWidth"`
	MaxHeight int `json:"maxHeight" yaml:"maxHeight"`
}

// Size итоговый размер в пикселях
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultBox рамка фотографий в приложении
var DefaultBox = Box{MaxWidth: 400, MaxHeight: 300}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Dimensions возвращает ширину и высоту JPEG или PNG.
// ok=false для других форматов и повреждённых данных.
func Dimensions(data []byte) (w, h int, ok bool) {
	switch {
	case len(data) >= 24 && bytes.HasPrefix(data, pngSignature):
		w = int(binary.BigEndian.Uint32(data[16:20]))
		h = int(binary.BigEndian.Uint32(data[20:24]))
		return w, h, w > 0 && h > 0
	case len(data) >= 4 && data[0] == 0xFF && data[1] == 0xD8:
		return jpegDimensions(data)
	default:
		return 0, 0, false
	}
}

func jpegDimensions(data []byte) (int, int, bool) {
	limit := len(data)
	if limit > MaxScanBytes {
		limit = MaxScanBytes
	}

	i := 2
	for i+4 <= limit {
		if data[i] != 0xFF {
			return 0, 0, false
		}
		marker := data[i+1]
		// заполняющие 0xFF между сегментами
		if marker == 0xFF {
			i++
			continue
		}
		// маркеры без длины
		if marker == 0x01 || (marker >= 0xD0 && marker <= 0xD8) {
			i += 2
			continue
		}

		segLen := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if segLen < 2 {
			return 0, 0, false
		}
		if isSOF(marker) {
			if i+9 > len(data) {
				return 0, 0, false
			}
			h := int(binary.BigEndian.Uint16(data[i+5 : i+7]))
			w := int(binary.BigEndian.Uint16(data[i+7 : i+9]))
			return w, h, w > 0 && h > 0
		}
		if marker == 0xDA || marker == 0xD9 {
			return 0, 0, false
		}
		i += 2 + segLen
	}
	return 0, 0, false
}

// isSOF C0-CF, кроме DHT (C4), JPG (C8) и DAC (CC)
func isSOF(m byte) bool {
	return m >= 0xC0 && m <= 0xCF && m != 0xC4 && m != 0xC8 && m != 0xCC
}

// Fit вписывает изображение в рамку без увеличения, сохраняя пропорции.
// Если размеры прочитать не удалось, возвращается сама рамка.
func Fit(data []byte, box Box) (size Size) {
	fallback := Size{Width: box.MaxWidth, Height: box.MaxHeight}
	defer func() {
		if r := recover(); r != nil {
			size = fallback
		}
	}()

	w, h, ok := Dimensions(data)
	if !ok || box.MaxWidth <= 0 || box.MaxHeight <= 0 {
		return fallback
	}

	scale := math.Min(float64(box.MaxWidth)/float64(w), float64(box.MaxHeight)/float64(h))
	if scale > 1 {
		scale = 1
	}
	// стороны не схлопываются в ноль, иначе сериализатор возьмёт исходный размер
	return Size{
		Width:  max(1, int(math.Round(float64(w)*scale))),
		Height: max(1, int(math.Round(float64(h)*scale))),
	}
}
