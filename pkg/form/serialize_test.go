package form

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

func TestDataReturnsLiveValues(t *testing.T) {
	f := newTestForm(t, map[string]any{"name": "Alice", "age": 30})
	f.Set("name", "Bob")

	data := f.Data()
	if len(data) != 2 {
		t.Fatalf("expected exactly the tracked keys, got %v", data)
	}
	if data["name"] != "Bob" {
		t.Errorf("expected live value 'Bob', got %v", data["name"])
	}
	if data["age"] != float64(30) {
		t.Errorf("expected baseline-derived 30, got %v", data["age"])
	}
}

func TestToQueryString(t *testing.T) {
	f := newTestForm(t, map[string]any{"a": 1, "b": "hi there"})

	if got := f.ToQueryString("x"); got != "x?a=1&b=hi%20there" {
		t.Errorf("expected 'x?a=1&b=hi%%20there', got %q", got)
	}
}

func TestToQueryStringAppendsToExistingQuery(t *testing.T) {
	f := newTestForm(t, map[string]any{"q": "go"})

	if got := f.ToQueryString("/search?page=2"); got != "/search?page=2&q=go" {
		t.Errorf("expected '/search?page=2&q=go', got %q", got)
	}
}

func TestToQueryStringEscapesKeys(t *testing.T) {
	f := newTestForm(t, map[string]any{"a b": "c&d"})

	if got := f.ToQueryString("x"); got != "x?a%20b=c%26d" {
		t.Errorf("expected 'x?a%%20b=c%%26d', got %q", got)
	}
}

func TestPayloadJSON(t *testing.T) {
	f := newTestForm(t, map[string]any{"name": "Ada", "age": 36})

	p, err := f.Payload(false)
	if err != nil {
		t.Fatalf("Payload failed: %v", err)
	}
	if p.ContentType != "application/json" {
		t.Errorf("expected application/json, got %q", p.ContentType)
	}

	var decoded map[string]any
	if err := (&Response{Body: p.Body}).JSON(&decoded); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if decoded["name"] != "Ada" || decoded["age"] != float64(36) {
		t.Errorf("unexpected payload contents: %v", decoded)
	}
}

func TestPayloadMultipart(t *testing.T) {
	f := newTestForm(t, map[string]any{"title": "Report", "attachment": ""})
	f.Set("attachment", &File{
		Name:        "report.pdf",
		ContentType: "application/pdf",
		Content:     strings.NewReader("pdf-bytes"),
	})

	p, err := f.Payload(true)
	if err != nil {
		t.Fatalf("Payload failed: %v", err)
	}

	mediaType, params, err := mime.ParseMediaType(p.ContentType)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("expected multipart/form-data content type, got %q (%v)", p.ContentType, err)
	}

	r := multipart.NewReader(bytes.NewReader(p.Body), params["boundary"])

	// Parts follow field order: attachment before title.
	part, err := r.NextPart()
	if err != nil {
		t.Fatalf("reading first part: %v", err)
	}
	if part.FormName() != "attachment" {
		t.Errorf("expected first part 'attachment', got %q", part.FormName())
	}
	if part.FileName() != "report.pdf" {
		t.Errorf("expected filename 'report.pdf', got %q", part.FileName())
	}
	if got := part.Header.Get("Content-Type"); got != "application/pdf" {
		t.Errorf("expected part content type application/pdf, got %q", got)
	}
	content, _ := io.ReadAll(part)
	if string(content) != "pdf-bytes" {
		t.Errorf("expected file content 'pdf-bytes', got %q", content)
	}

	part, err = r.NextPart()
	if err != nil {
		t.Fatalf("reading second part: %v", err)
	}
	if part.FormName() != "title" {
		t.Errorf("expected second part 'title', got %q", part.FormName())
	}
	value, _ := io.ReadAll(part)
	if string(value) != "Report" {
		t.Errorf("expected field value 'Report', got %q", value)
	}

	if _, err := r.NextPart(); err != io.EOF {
		t.Errorf("expected exactly two parts, got extra part (err=%v)", err)
	}
}

func TestPayloadMultipartDefaultsContentType(t *testing.T) {
	f := newTestForm(t, map[string]any{"file": ""})
	f.Set("file", &File{Name: "blob.bin", Content: strings.NewReader("x")})

	p, err := f.Payload(true)
	if err != nil {
		t.Fatalf("Payload failed: %v", err)
	}

	_, params, err := mime.ParseMediaType(p.ContentType)
	if err != nil {
		t.Fatalf("parsing content type: %v", err)
	}
	part, err := multipart.NewReader(bytes.NewReader(p.Body), params["boundary"]).NextPart()
	if err != nil {
		t.Fatalf("reading part: %v", err)
	}
	if got := part.Header.Get("Content-Type"); got != "application/octet-stream" {
		t.Errorf("expected octet-stream default, got %q", got)
	}
}
