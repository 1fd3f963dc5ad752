package form

import "io"

// File is a live field value that serializes as a file part in a
// multipart payload. Assign one with Set after construction; baseline
// data stays JSON-serializable.
//
// Example:
//
//	f.Set("avatar", &form.File{
//	    Name:        "avatar.png",
//	    ContentType: "image/png",
//	    Content:     pngReader,
//	})
//	resp, err := f.Submit(ctx, "post", "/profile", true)
type File struct {
	// Name is the filename reported in the part's Content-Disposition.
	Name string

	// ContentType is the MIME type of the part. Defaults to
	// application/octet-stream when empty.
	ContentType string

	// Content provides the file bytes. It is consumed during payload
	// encoding, so a fresh reader is needed per submission.
	Content io.Reader
}
