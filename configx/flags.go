package configx

import (
	"github.com/spf13/pflag"
)

// RegisterFlags adds one flag per configuration key to flags.
// Defaults live in Defaults, the flag defaults are only shown in help.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.String("url", "", "destination URL of the upload endpoint")
	flags.String("field-name", d["field_name"].(string), "form field name of the file part")
	flags.StringArray("fields", nil, "extra form field as key=value, repeatable, sent in order")
	flags.StringArray("headers", nil, "extra request header as \"Key: Value\", repeatable")
	flags.Duration("timeout", 0, "request timeout (default 60s)")
	flags.Int("retries", 0, "extra attempts after a transport failure")
	flags.Int("concurrency", 1, "number of files uploaded at once")
	flags.Bool("skip-tls-verify", false, "do not verify the server certificate")
	flags.String("max-file-size", "", "reject files larger than this, e.g. 25MB")
	flags.StringArray("sensitive-headers", nil, "header whose value is redacted in logs, repeatable")
	flags.Bool("log-query", false, "log request query strings instead of redacting them")
	flags.String("log-level", d["log_level"].(string), "log level: debug, info, warn or error")
	flags.String("log-format", d["log_format"].(string), "log format: json or text")
	flags.StringArray("config", nil, "path to a JSON config file, repeatable")
}

// ConfigFiles returns the --config values registered by RegisterFlags.
func ConfigFiles(flags *pflag.FlagSet) []string {
	files, _ := flags.GetStringArray("config")
	return files
}
