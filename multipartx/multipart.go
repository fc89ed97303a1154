// Package multipartx builds multipart/form-data request bodies byte for byte.
//
// The layout is fixed: every form field in the order given, then exactly one
// file part, then the closing delimiter. Boundaries are random and never
// derived from the payload; a payload that happens to contain the boundary
// line is not detected.
package multipartx

import (
	"bytes"

	"github.com/google/uuid"
)

const (
	BoundaryPrefix     = "Boundary-"
	DefaultContentType = "application/octet-stream"

	crlf = "\r\n"
)

// Field is a single text form field.
type Field struct {
	Key   string
	Value string
}

// File is the single file part of a body.
type File struct {
	FieldName string
	FileName  string
	MimeType  string
	Data      []byte
}

// NewBoundary returns a fresh boundary token for one request.
func NewBoundary() string {
	return BoundaryPrefix + uuid.NewString()
}

// ContentType returns the request Content-Type header value for boundary.
func ContentType(boundary string) string {
	return "multipart/form-data; boundary=" + boundary
}

// Build returns the body delimited by boundary.
func Build(boundary string, fields []Field, file File) []byte {
	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = DefaultContentType
	}

	var b bytes.Buffer
	b.Grow(len(file.Data) + 256*(len(fields)+1))

	for _, f := range fields {
		writeDelimiter(&b, boundary)
		b.WriteString(`Content-Disposition: form-data; name="` + f.Key + `"` + crlf + crlf)
		b.WriteString(f.Value + crlf)
	}

	writeDelimiter(&b, boundary)
	b.WriteString(`Content-Disposition: form-data; name="` + file.FieldName + `"; filename="` + file.FileName + `"` + crlf)
	b.WriteString("Content-Type: " + mimeType + crlf + crlf)
	b.Write(file.Data)
	b.WriteString(crlf)

	b.WriteString("--" + boundary + "--" + crlf)

	return b.Bytes()
}

func writeDelimiter(b *bytes.Buffer, boundary string) {
	b.WriteString("--" + boundary + crlf)
}
