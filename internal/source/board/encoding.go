package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// acceptEncoding is sent explicitly, which turns off net/http transparent
// decompression; readBody handles both encodings itself.
const acceptEncoding = "zstd, gzip"

const maxPayloadSize = 8 << 20

func readBody(r io.Reader, contentEncoding string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "", "identity":
		return readLimited(r)
	case "gzip":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer zr.Close()
		return readLimited(zr)
	case "zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		defer zr.Close()
		return readLimited(zr)
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", contentEncoding)
	}
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxPayloadSize+1))
	if err != nil {
		return data, err
	}
	if len(data) > maxPayloadSize {
		return data[:maxPayloadSize], fmt.Errorf("payload exceeds %d bytes", maxPayloadSize)
	}
	return data, nil
}
