package uploadx

import (
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/inhies/go-bytesize"
	"github.com/oporajita/x/errorx"
	"github.com/spf13/afero"
)

// LocalFile is a picked file resolved to its bytes, name and MIME type.
type LocalFile struct {
	Path     string
	Name     string
	MimeType string
	Data     []byte
}

// Source reads picked files from a filesystem.
type Source struct {
	fs          afero.Fs
	maxFileSize bytesize.ByteSize
}

type SourceOption func(*Source)

// WithFs reads from fs instead of the OS filesystem.
func WithFs(fs afero.Fs) SourceOption {
	return func(s *Source) {
		s.fs = fs
	}
}

// WithMaxFileSize rejects files larger than size. Zero means no limit.
func WithMaxFileSize(size bytesize.ByteSize) SourceOption {
	return func(s *Source) {
		s.maxFileSize = size
	}
}

func NewSource(opts ...SourceOption) *Source {
	s := &Source{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	return s
}

// Read loads path. Every failure is an errorx.ErrorTypeLocalRead error.
func (s *Source) Read(path string) (*LocalFile, error) {
	fi, err := s.fs.Stat(path)
	if err != nil {
		return nil, errorx.LocalReadErrorf(err, "stat %s", path)
	}
	if fi.IsDir() {
		return nil, errorx.LocalReadErrorf(nil, "%s is a directory", path)
	}
	if s.maxFileSize > 0 && bytesize.ByteSize(fi.Size()) > s.maxFileSize {
		return nil, errorx.LocalReadErrorf(nil, "%s is %s, larger than the %s limit", path, bytesize.New(float64(fi.Size())), s.maxFileSize)
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, errorx.LocalReadErrorf(err, "read %s", path)
	}

	name := filepath.Base(path)
	return &LocalFile{
		Path:     path,
		Name:     name,
		MimeType: DetectMimeType(name, data),
		Data:     data,
	}, nil
}

// DetectMimeType sniffs data and falls back to the file extension when the
// content only tells us it is generic text or binary.
func DetectMimeType(name string, data []byte) string {
	detected := mimetype.Detect(data)
	if !detected.Is("application/octet-stream") && !detected.Is("text/plain") {
		return detected.String()
	}

	if byExt := mime.TypeByExtension(filepath.Ext(name)); byExt != "" {
		return byExt
	}
	return detected.String()
}
