package form

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
)

// Data returns a mapping with exactly the tracked field names, each
// paired with its current live value.
func (f *Form) Data() map[string]any {
	out := make(map[string]any, len(f.keys))
	for _, k := range f.keys {
		out[k] = f.live[k]
	}
	return out
}

// Payload encodes the live values into a request body: a JSON object by
// default, or a multipart form when multipart is true. Multipart parts
// are written in field order, with *File values becoming file parts.
func (f *Form) Payload(multipart bool) (*Payload, error) {
	if multipart {
		return f.multipartPayload()
	}
	body, err := json.Marshal(f.Data())
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return &Payload{ContentType: "application/json", Body: body}, nil
}

func (f *Form) multipartPayload() (*Payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, k := range f.keys {
		switch v := f.live[k].(type) {
		case *File:
			ct := v.ContentType
			if ct == "" {
				ct = "application/octet-stream"
			}
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, k, v.Name))
			header.Set("Content-Type", ct)
			part, err := w.CreatePart(header)
			if err != nil {
				return nil, &SerializationError{Err: err}
			}
			if v.Content != nil {
				if _, err := io.Copy(part, v.Content); err != nil {
					return nil, &SerializationError{Err: err}
				}
			}
		default:
			if err := w.WriteField(k, encodeValue(v)); err != nil {
				return nil, &SerializationError{Err: err}
			}
		}
	}
	if err := w.Close(); err != nil {
		return nil, &SerializationError{Err: err}
	}
	return &Payload{ContentType: w.FormDataContentType(), Body: buf.Bytes()}, nil
}

// ToQueryString appends the live values to base as key=value query
// parameters, percent-encoding each key and value. The first pair joins
// with "?" unless base already contains one, in which case "&" is used
// throughout.
func (f *Form) ToQueryString(base string) string {
	var b strings.Builder
	b.WriteString(base)
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	for _, k := range f.keys {
		b.WriteString(sep)
		b.WriteString(escape(k))
		b.WriteByte('=')
		b.WriteString(escape(encodeValue(f.live[k])))
		sep = "&"
	}
	return b.String()
}

// encodeValue renders a field value as the string form used in query
// strings and multipart text fields.
func encodeValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

// escape percent-encodes a query component. Spaces become %20 rather
// than "+" so the result is valid in any part of a URL.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
