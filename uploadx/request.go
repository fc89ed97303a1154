package uploadx

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oporajita/x/errorx"
	"github.com/oporajita/x/multipartx"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// UploadRequest describes a single file upload. It is not modified by the Uploader.
type UploadRequest struct {
	URL       string `validate:"required,url"`
	FieldName string `validate:"required"`
	FileName  string `validate:"required"`
	// MimeType defaults to application/octet-stream.
	MimeType string
	Data     []byte
	// Fields are sent before the file, in order.
	Fields []multipartx.Field
	// Headers are added to the request. Content-Type is ignored, the
	// multipart boundary header always wins.
	Headers http.Header
}

// Validate checks the required values and that URL is an absolute http(s) URL.
func (r *UploadRequest) Validate() error {
	if r == nil {
		return errorx.InvalidArgumentErrorf("upload request can not be nil")
	}
	if err := validate.Struct(r); err != nil {
		return errorx.InvalidArgumentErrorf("invalid upload request").WithCause(err)
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return errorx.InvalidArgumentErrorf("invalid upload url %q", r.URL).WithCause(err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errorx.InvalidArgumentErrorf("upload url scheme must be http or https, got %q", u.Scheme)
	}

	return nil
}

func (r *UploadRequest) file() multipartx.File {
	return multipartx.File{
		FieldName: r.FieldName,
		FileName:  r.FileName,
		MimeType:  r.MimeType,
		Data:      r.Data,
	}
}

// Result is a successful upload.
type Result struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
	Duration   time.Duration
	// Boundary is the multipart boundary that was sent.
	Boundary string
}
