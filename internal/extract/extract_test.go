package extract

import (
	"context"
	"errors"
	"testing"
)

func TestExtractTextFromBytesPlainText(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("plain resume text"), "text/plain", "resume.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "plain resume text" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextFromBytesExtensionFallback(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("from octet stream"), "application/octet-stream", "resume.TXT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "from octet stream" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextFromBytesUnsupported(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte{0x00}, "image/png", "photo.png")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestExtractTextFromBytesMimeParameters(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("charset ok"), "text/plain; charset=utf-8", "note")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "charset ok" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextFromBytesCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ExtractTextFromBytes(ctx, []byte("x"), "text/plain", "a.txt"); err == nil {
		t.Fatal("expected context error")
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p></w:body></w:document>`
	got := stripDocxXML(raw)
	want := "Jane Doe\nEngineer"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
