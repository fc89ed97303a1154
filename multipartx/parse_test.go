package multipartx

import (
	"testing"

	"github.com/oporajita/x/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("should round trip fields and file", func(t *testing.T) {
		boundary := NewBoundary()
		fields := []Field{{"title", "Report — Q3"}, {"empty", ""}, {"lines", "a\r\nb"}}
		file := File{
			FieldName: "document",
			FileName:  "report.pdf",
			MimeType:  "application/pdf",
			Data:      []byte("%PDF-1.4\x00\x01\x02\r\n--not-a-boundary\r\n"),
		}

		parts, err := Parse(ContentType(boundary), Build(boundary, fields, file))
		require.NoError(t, err)
		require.Len(t, parts, len(fields)+1)

		for i, f := range fields {
			assert.Equal(t, f.Key, parts[i].Name)
			assert.Equal(t, f.Value, string(parts[i].Data))
			assert.False(t, parts[i].IsFile())
		}

		p := parts[len(parts)-1]
		assert.True(t, p.IsFile())
		assert.Equal(t, file.FieldName, p.Name)
		assert.Equal(t, file.FileName, p.FileName)
		assert.Equal(t, file.MimeType, p.ContentType)
		assert.Equal(t, file.Data, p.Data)
	})

	t.Run("should round trip an empty file", func(t *testing.T) {
		boundary := NewBoundary()
		parts, err := Parse(ContentType(boundary), Build(boundary, nil, File{FieldName: "file", FileName: "empty.txt", MimeType: "text/plain"}))
		require.NoError(t, err)
		require.Len(t, parts, 1)
		assert.Empty(t, parts[0].Data)
	})

	t.Run("should reject a non multipart content type", func(t *testing.T) {
		_, err := Parse("application/json", nil)
		assert.True(t, errorx.IsInvalidArgumentError(err))
	})

	t.Run("should reject a missing boundary", func(t *testing.T) {
		_, err := Parse("multipart/form-data", nil)
		assert.True(t, errorx.IsInvalidArgumentError(err))
	})

	t.Run("should fail on a truncated body", func(t *testing.T) {
		boundary := NewBoundary()
		body := Build(boundary, nil, File{FieldName: "file", FileName: "a", Data: []byte("abc")})
		_, err := Parse(ContentType(boundary), body[:len(body)-10])
		assert.Error(t, err)
	})
}
