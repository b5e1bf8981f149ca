package storage

import (
	"errors"
	"strings"
	"testing"

	"salon/config"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestImageObjectName(t *testing.T) {
	name, contentType, err := imageObjectName("professionals", pngHeader, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "image/png" {
		t.Fatalf("expected image/png, got %s", contentType)
	}
	if !strings.HasPrefix(name, "professionals/") || !strings.HasSuffix(name, ".png") {
		t.Fatalf("unexpected object name %s", name)
	}

	name, _, err = imageObjectName("professionals", pngHeader, "Portrait.PNG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("expected lower-cased extension, got %s", name)
	}
}

func TestImageObjectName_Rejects(t *testing.T) {
	if _, _, err := imageObjectName("professionals", nil, "a.png"); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
	if _, _, err := imageObjectName("professionals", []byte("plain text"), "a.png"); !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestObjectURLRoundTrip(t *testing.T) {
	cfg := config.S3Config{Endpoint: "minio:9000", Bucket: "salon", UseSSL: false}

	u := objectURL(cfg, "professionals/abc.jpg")
	if u != "http://minio:9000/salon/professionals/abc.jpg" {
		t.Fatalf("unexpected url %s", u)
	}

	name, err := objectNameFromURL(cfg, u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "professionals/abc.jpg" {
		t.Fatalf("unexpected object name %s", name)
	}
}

func TestObjectNameFromURL_Foreign(t *testing.T) {
	cfg := config.S3Config{Endpoint: "minio:9000", Bucket: "salon"}

	for _, u := range []string{
		"https://cdn.example.com/salon/a.jpg",
		"http://minio:9000/other/a.jpg",
		"http://minio:9000/salon/",
	} {
		if _, err := objectNameFromURL(cfg, u); !errors.Is(err, ErrForeignFile) {
			t.Fatalf("%s: expected ErrForeignFile, got %v", u, err)
		}
	}
}
