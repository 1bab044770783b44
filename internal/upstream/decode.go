package upstream

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const acceptEncoding = "br, gzip, zstd"

// decodeBody распаковывает тело по Content-Encoding и ограничивает размер
// уже распакованных данных
func decodeBody(resp *http.Response, limit int64) ([]byte, error) {
	encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))

	switch encoding {
	case "", "identity":
		return readLimited(resp.Body, limit)
	case "br":
		body, err := readLimited(brotli.NewReader(resp.Body), limit)
		if err != nil {
			return nil, fmt.Errorf("reading brotli content: %w", err)
		}
		return body, nil
	case "gzip", "x-gzip":
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gr.Close()
		body, err := readLimited(gr, limit)
		if err != nil {
			return nil, fmt.Errorf("reading gzip content: %w", err)
		}
		return body, nil
	case "zstd":
		zr, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		defer zr.Close()
		body, err := readLimited(zr, limit)
		if err != nil {
			return nil, fmt.Errorf("reading zstd content: %w", err)
		}
		return body, nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}
