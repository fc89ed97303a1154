// Package uploadx sends local files to a remote endpoint as multipart/form-data.
//
// An Uploader performs exactly one POST per call (plus optional retries of
// transport failures) and classifies the result:
//
//   - a 2xx response is returned as a *Result;
//   - any other response is an errorx.ErrorTypeServer error carrying the status
//     and the body as UTF-8 text (or "" when the body is not valid UTF-8);
//   - a failure before any response arrived, cancellation included, is an
//     errorx.ErrorTypeTransport error;
//   - a response that could not be parsed is an errorx.ErrorTypeProtocol error.
//
// A Source reads files from an afero filesystem and a Batch uploads many of
// them in selection order, reporting one Outcome per file.
package uploadx
