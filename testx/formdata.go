package testx

import (
	"net/http"

	"github.com/oporajita/x/multipartx"
	"github.com/samber/lo"
)

// FileToUpload represents a file that was part of the multipart form data.
type FileToUpload struct {
	FieldName string
	FileName  string
	MimeType  string
	Content   []byte
}

// FormData represents the decoded data of a multipart/form-data request.
// Fields keep their wire order.
type FormData struct {
	Fields []multipartx.Field
	Files  []FileToUpload
}

// Field returns the first value sent under key.
func (f FormData) Field(key string) (string, bool) {
	field, ok := lo.Find(f.Fields, func(x multipartx.Field) bool { return x.Key == key })
	return field.Value, ok
}

// ParseFormData decodes body with the boundary found in header.
func ParseFormData(header http.Header, body []byte) (FormData, error) {
	parts, err := multipartx.Parse(header.Get("Content-Type"), body)
	if err != nil {
		return FormData{}, err
	}

	var fd FormData
	for _, p := range parts {
		if p.IsFile() {
			fd.Files = append(fd.Files, FileToUpload{
				FieldName: p.Name,
				FileName:  p.FileName,
				MimeType:  p.ContentType,
				Content:   p.Data,
			})
			continue
		}
		fd.Fields = append(fd.Fields, multipartx.Field{Key: p.Name, Value: string(p.Data)})
	}
	return fd, nil
}
