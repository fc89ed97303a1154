package httpx

import (
	"net/http"
	"slices"
	"strings"

	"github.com/oporajita/x/errorx"
	"github.com/samber/lo"
)

const ContentTypeHeaderKey = "Content-Type"

// MergeHeaders copies extra onto dst. Keys listed in protected are never
// copied; their canonical names are returned so callers can report them.
func MergeHeaders(dst http.Header, extra http.Header, protected ...string) ([]string, error) {
	if dst == nil {
		return nil, errorx.InvalidArgumentErrorf("destination header can not be nil")
	}

	protected = lo.Map(protected, func(k string, _ int) string {
		return http.CanonicalHeaderKey(k)
	})

	var dropped []string
	for key, values := range extra {
		ck := http.CanonicalHeaderKey(strings.TrimSpace(key))
		if slices.Contains(protected, ck) {
			dropped = append(dropped, ck)
			continue
		}
		dst[ck] = slices.Clone(values)
	}

	slices.Sort(dropped)
	return dropped, nil
}

// ParseHeader splits "Key: Value" into a key and value.
func ParseHeader(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, ":")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", errorx.InvalidArgumentErrorf("header %q is not in the form \"Key: Value\"", s)
	}
	return http.CanonicalHeaderKey(key), strings.TrimSpace(value), nil
}
