package integration_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/formbind/pkg/errorbag"
	"github.com/vango-dev/formbind/pkg/form"
	"github.com/vango-dev/formbind/pkg/transport"
)

// newAPIServer builds a chi router that mimics a typical JSON API.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Post("/contacts", func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"message":"Contact saved.","echo":%s}`, body)
	})

	r.Post("/register", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"The given data was invalid.","errors":{"email":["The email has already been taken."]}}`))
	})

	r.Get("/search", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"query":%q}`, req.URL.Query().Get("q"))
	})

	r.Post("/upload", func(w http.ResponseWriter, req *http.Request) {
		if err := req.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, "bad multipart body", http.StatusBadRequest)
			return
		}
		file, header, err := req.FormFile("attachment")
		if err != nil {
			http.Error(w, "missing attachment", http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"filename":%q,"size":%d,"title":%q}`,
			header.Filename, len(content), req.FormValue("title"))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestSubmitAgainstChiServer(t *testing.T) {
	srv := newAPIServer(t)
	client := transport.New(transport.WithBaseURL(srv.URL))

	f, err := form.New(map[string]any{"name": "", "email": ""},
		form.WithTransport(client))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	f.Set("name", "Ada")
	f.Set("email", "ada@example.com")

	resp, err := f.Post(context.Background(), "/contacts")
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	var body struct {
		Message string `json:"message"`
		Echo    struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"echo"`
	}
	if err := resp.JSON(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Message != "Contact saved." {
		t.Errorf("unexpected message: %q", body.Message)
	}
	if body.Echo.Name != "Ada" || body.Echo.Email != "ada@example.com" {
		t.Errorf("server did not receive the live values: %+v", body.Echo)
	}
}

func TestValidationErrorsReachTheBag(t *testing.T) {
	srv := newAPIServer(t)
	client := transport.New(transport.WithBaseURL(srv.URL))
	bag := errorbag.New()

	f, err := form.New(map[string]any{"email": "taken@example.com"},
		form.WithTransport(client), form.WithHandler(bag))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := f.Post(context.Background(), "/register"); err == nil {
		t.Fatal("expected a 422 failure")
	}

	if !f.HasError("email") {
		t.Error("expected email error delegated through the form")
	}
	if got := f.GetError("email"); got != "The email has already been taken." {
		t.Errorf("unexpected email error: %q", got)
	}
	if got := bag.Message(); got != "The given data was invalid." {
		t.Errorf("unexpected general message: %q", got)
	}
	if f.IsBusy() {
		t.Error("expected idle form after failure")
	}
}

func TestGetSendsQueryString(t *testing.T) {
	srv := newAPIServer(t)
	client := transport.New(transport.WithBaseURL(srv.URL))

	f, err := form.New(map[string]any{"q": "hello world"},
		form.WithTransport(client))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	resp, err := f.Get(context.Background(), "/search")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	var body struct {
		Query string `json:"query"`
	}
	if err := resp.JSON(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Query != "hello world" {
		t.Errorf("expected server to see the decoded query, got %q", body.Query)
	}
}

func TestMultipartUploadRoundTrip(t *testing.T) {
	srv := newAPIServer(t)
	client := transport.New(transport.WithBaseURL(srv.URL))

	f, err := form.New(map[string]any{"title": "Report", "attachment": ""},
		form.WithTransport(client))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	f.Set("attachment", &form.File{
		Name:        "report.txt",
		ContentType: "text/plain",
		Content:     strings.NewReader("hello"),
	})

	resp, err := f.Submit(context.Background(), "post", "/upload", true)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	var body struct {
		Filename string `json:"filename"`
		Size     int    `json:"size"`
		Title    string `json:"title"`
	}
	if err := resp.JSON(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Filename != "report.txt" {
		t.Errorf("expected filename 'report.txt', got %q", body.Filename)
	}
	if body.Size != 5 {
		t.Errorf("expected 5 uploaded bytes, got %d", body.Size)
	}
	if body.Title != "Report" {
		t.Errorf("expected title 'Report', got %q", body.Title)
	}
}
