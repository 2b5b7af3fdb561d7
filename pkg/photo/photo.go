// Package photo turns an image file into the data-URL payload stored on a
// profile. Decoding is the one suspension point in the save sequence, so
// it takes a context and can be run off the calling goroutine.
package photo

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// Decoder produces a data-encoded image payload from a file path.
type Decoder interface {
	Decode(ctx context.Context, path string) (string, error)
}

// FileDecoder reads the file from disk and sniffs its content type.
type FileDecoder struct{}

func (FileDecoder) Decode(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("photo: read %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return DataURL(data), nil
}

// DataURL encodes raw image bytes as a data: URL with a sniffed MIME type.
func DataURL(data []byte) string {
	mime := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
