package multipartx

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"

	"github.com/oporajita/x/errorx"
	"github.com/pkg/errors"
)

// Part is one decoded part of a multipart body.
type Part struct {
	Name        string
	FileName    string
	ContentType string
	Data        []byte
}

// IsFile reports whether the part carried a filename.
func (p Part) IsFile() bool {
	return p.FileName != ""
}

// Parse decodes body using the boundary announced in contentType. Parts are
// returned in wire order.
func Parse(contentType string, body []byte) ([]Part, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, errorx.InvalidArgumentErrorf("invalid content type %q", contentType).WithCause(err)
	}
	if mediaType != "multipart/form-data" {
		return nil, errorx.InvalidArgumentErrorf("unexpected media type %q", mediaType)
	}
	boundary, ok := params["boundary"]
	if !ok || boundary == "" {
		return nil, errorx.InvalidArgumentErrorf("content type %q has no boundary", contentType)
	}

	r := multipart.NewReader(bytes.NewReader(body), boundary)
	var parts []Part
	for {
		p, err := r.NextRawPart()
		if err == io.EOF {
			return parts, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "read part")
		}

		data, err := io.ReadAll(p)
		if err != nil {
			return nil, errors.Wrapf(err, "read part %q", p.FormName())
		}

		parts = append(parts, Part{
			Name:        p.FormName(),
			FileName:    p.FileName(),
			ContentType: p.Header.Get("Content-Type"),
			Data:        data,
		})
	}
}
