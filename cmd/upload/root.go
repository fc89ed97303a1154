package main

import (
	"fmt"
	"io"

	"github.com/oporajita/x/configx"
	"github.com/oporajita/x/errorx"
	"github.com/oporajita/x/httpx"
	"github.com/oporajita/x/loggerx"
	"github.com/oporajita/x/slogx"
	"github.com/oporajita/x/uploadx"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload [flags] FILE...",
		Short: "Upload files to a remote endpoint as multipart/form-data.",
		Long: `Upload files to a remote endpoint as multipart/form-data.

Files are sent one request each, in the order given. A file that fails does
not stop the others; the command exits non-zero if any file failed.
Every flag can also be set in a JSON config file or as an UPLOAD_* environment
variable, e.g. UPLOAD_URL or UPLOAD_FIELD_NAME.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := configx.Load(
				configx.WithConfigFiles(configx.ConfigFiles(cmd.Flags())...),
				configx.WithFlags(cmd.Flags()),
			)
			if err != nil {
				return err
			}
			return run(cmd, c, args)
		},
	}

	configx.RegisterFlags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, c *configx.Config, paths []string) error {
	slogx.ConfigureSensitiveHeaders(c.SensitiveHeaders...)
	slogx.ConfigureIncludeQuery(c.LogQuery)
	l := loggerx.New(cmd.ErrOrStderr(), c.LogLevel, c.LogFormat, uploadx.BatchIDExtractor())

	fields, err := c.FormFields()
	if err != nil {
		return err
	}
	headers, err := c.HTTPHeaders()
	if err != nil {
		return err
	}
	maxSize, err := c.MaxFileSizeBytes()
	if err != nil {
		return err
	}

	clientOpts := []httpx.Option{httpx.WithTimeout(c.Timeout)}
	if c.SkipTLSVerify {
		clientOpts = append(clientOpts, httpx.WithSkipTLSVerification())
	}

	uploader := uploadx.NewUploader(
		uploadx.WithLogger(l),
		uploadx.WithHTTPClient(httpx.NewClientWithOptions(clientOpts...)),
		uploadx.WithRetry(c.Retries),
	)
	source := uploadx.NewSource(uploadx.WithMaxFileSize(maxSize))

	out := cmd.OutOrStdout()
	batch := uploadx.NewBatch(uploader, source, uploadx.Target{
		URL:       c.URL,
		FieldName: c.FieldName,
		Fields:    fields,
		Headers:   headers,
	},
		uploadx.WithConcurrency(c.Concurrency),
		uploadx.WithBatchLogger(l),
		uploadx.OnComplete(func(o uploadx.Outcome) { printOutcome(out, o) }),
	)

	failed := 0
	for _, o := range batch.Run(cmd.Context(), paths) {
		if o.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d uploads failed", failed, len(paths))
	}
	return nil
}

func printOutcome(w io.Writer, o uploadx.Outcome) {
	if !o.Failed() {
		fmt.Fprintf(w, "ok\t%s\t%d\n", o.Path, o.Result.StatusCode)
		return
	}

	kind := "ERROR"
	if e, ok := errorx.IsError(o.Err); ok {
		kind = e.Type.String()
	}
	fmt.Fprintf(w, "fail\t%s\t%s\t%s\n", o.Path, kind, o.Err)
}
