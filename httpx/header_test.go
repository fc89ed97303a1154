package httpx

import (
	"net/http"
	"net/textproto"
	"testing"

	"github.com/oporajita/x/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textprotoErr() error {
	return textproto.ProtocolError("short response")
}

func TestMergeHeaders(t *testing.T) {
	t.Run("should fail on nil destination", func(t *testing.T) {
		_, err := MergeHeaders(nil, http.Header{})
		assert.True(t, errorx.IsInvalidArgumentError(err))
	})

	t.Run("should copy headers and drop protected ones", func(t *testing.T) {
		dst := http.Header{}
		dst.Set(ContentTypeHeaderKey, "multipart/form-data; boundary=b")

		dropped, err := MergeHeaders(dst, http.Header{
			"authorization": {"Bearer t"},
			"content-type":  {"application/json"},
			"X-Trace":       {"a", "b"},
		}, ContentTypeHeaderKey)
		require.NoError(t, err)

		assert.Equal(t, []string{"Content-Type"}, dropped)
		assert.Equal(t, "multipart/form-data; boundary=b", dst.Get(ContentTypeHeaderKey))
		assert.Equal(t, "Bearer t", dst.Get("Authorization"))
		assert.Equal(t, []string{"a", "b"}, dst.Values("X-Trace"))
	})

	t.Run("should let later headers replace earlier ones", func(t *testing.T) {
		dst := http.Header{"X-Token": {"old"}}
		_, err := MergeHeaders(dst, http.Header{"X-Token": {"new"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"new"}, dst.Values("X-Token"))
	})
}

func TestParseHeader(t *testing.T) {
	k, v, err := ParseHeader("authorization:  Bearer abc:def ")
	require.NoError(t, err)
	assert.Equal(t, "Authorization", k)
	assert.Equal(t, "Bearer abc:def", v)

	_, _, err = ParseHeader("novalue")
	assert.True(t, errorx.IsInvalidArgumentError(err))

	_, _, err = ParseHeader(": value")
	assert.Error(t, err)
}
