package configx

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/inhies/go-bytesize"
	"github.com/oporajita/x/errorx"
	"github.com/oporajita/x/httpx"
	"github.com/oporajita/x/multipartx"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is everything needed to upload a batch of files.
type Config struct {
	URL       string `koanf:"url" validate:"required,url"`
	FieldName string `koanf:"field_name" validate:"required"`
	// Fields are "key=value" pairs sent in order before the file.
	Fields []string `koanf:"fields"`
	// Headers are "Key: Value" pairs added to every request.
	Headers []string `koanf:"headers"`

	Timeout       time.Duration `koanf:"timeout" validate:"min=0"`
	Retries       int           `koanf:"retries" validate:"min=0"`
	Concurrency   int           `koanf:"concurrency" validate:"min=1"`
	SkipTLSVerify bool          `koanf:"skip_tls_verify"`

	// MaxFileSize is a human readable size such as "25MB". Empty means no limit.
	MaxFileSize string `koanf:"max_file_size"`

	// SensitiveHeaders are redacted in logs on top of Authorization.
	SensitiveHeaders []string `koanf:"sensitive_headers"`
	// LogQuery logs request query strings instead of redacting them.
	LogQuery bool `koanf:"log_query"`

	LogLevel  string `koanf:"log_level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat string `koanf:"log_format" validate:"oneof=json text"`
}

// Defaults are applied before any other source.
func Defaults() map[string]any {
	return map[string]any{
		"field_name":  "file",
		"timeout":     "60s",
		"retries":     0,
		"concurrency": 1,
		"log_level":   "info",
		"log_format":  "text",
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errorx.InvalidArgumentErrorf("invalid configuration").WithCause(err)
	}
	if _, err := c.FormFields(); err != nil {
		return err
	}
	if _, err := c.HTTPHeaders(); err != nil {
		return err
	}
	if _, err := c.MaxFileSizeBytes(); err != nil {
		return err
	}
	return nil
}

// FormFields parses Fields, keeping their order.
func (c *Config) FormFields() ([]multipartx.Field, error) {
	fields := make([]multipartx.Field, 0, len(c.Fields))
	for _, f := range c.Fields {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, errorx.InvalidArgumentErrorf("form field %q is not in the form key=value", f)
		}
		fields = append(fields, multipartx.Field{Key: key, Value: value})
	}
	return fields, nil
}

// HTTPHeaders parses Headers. A repeated key keeps the last value.
func (c *Config) HTTPHeaders() (http.Header, error) {
	h := http.Header{}
	for _, raw := range c.Headers {
		key, value, err := httpx.ParseHeader(raw)
		if err != nil {
			return nil, err
		}
		h.Set(key, value)
	}
	return h, nil
}

func (c *Config) MaxFileSizeBytes() (bytesize.ByteSize, error) {
	if strings.TrimSpace(c.MaxFileSize) == "" {
		return 0, nil
	}
	size, err := bytesize.Parse(c.MaxFileSize)
	if err != nil {
		return 0, errorx.InvalidArgumentErrorf("invalid max file size %q", c.MaxFileSize).WithCause(err)
	}
	return size, nil
}
