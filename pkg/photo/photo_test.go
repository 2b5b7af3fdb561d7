package photo

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Minimal valid PNG header so content sniffing lands on image/png.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestDataURL(t *testing.T) {
	url := DataURL(pngBytes)
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("unexpected data url prefix: %q", url)
	}
	payload := strings.TrimPrefix(url, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	if string(decoded) != string(pngBytes) {
		t.Fatalf("payload does not round trip")
	}
}

func TestFileDecoderDecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.png")
	if err := os.WriteFile(path, pngBytes, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	url, err := FileDecoder{}.Decode(context.Background(), path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("unexpected data url: %q", url)
	}
}

func TestFileDecoderMissingFile(t *testing.T) {
	_, err := FileDecoder{}.Decode(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestFileDecoderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (FileDecoder{}).Decode(ctx, "anything"); err == nil {
		t.Fatalf("expected context error")
	}
}
