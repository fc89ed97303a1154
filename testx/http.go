package testx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// ReceivedUpload is one request seen by an UploadServer.
type ReceivedUpload struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
	Form   FormData
	// FormErr is set when the body could not be decoded as multipart.
	FormErr error
}

// Reply is what an UploadServer answers with.
type Reply struct {
	StatusCode int
	Body       string
}

// UploadServer is an httptest server that records every request and answers
// with the configured replies in order, repeating the last one.
type UploadServer struct {
	*httptest.Server

	m        sync.Mutex
	replies  []Reply
	received []ReceivedUpload
}

// NewUploadServer starts a server closed automatically at the end of the test.
// Without replies it answers 200 OK.
func NewUploadServer(t testing.TB, replies ...Reply) *UploadServer {
	t.Helper()
	if len(replies) == 0 {
		replies = []Reply{{StatusCode: http.StatusOK}}
	}

	s := &UploadServer{replies: replies}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	t.Cleanup(s.Close)
	return s
}

func (s *UploadServer) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	form, formErr := ParseFormData(r.Header, body)

	s.m.Lock()
	i := len(s.received)
	s.received = append(s.received, ReceivedUpload{
		Method:  r.Method,
		Path:    r.URL.Path,
		Header:  r.Header.Clone(),
		Body:    body,
		Form:    form,
		FormErr: formErr,
	})
	reply := s.replies[min(i, len(s.replies)-1)]
	s.m.Unlock()

	w.WriteHeader(reply.StatusCode)
	_, _ = io.WriteString(w, reply.Body)
}

// Received returns a copy of the requests recorded so far.
func (s *UploadServer) Received() []ReceivedUpload {
	s.m.Lock()
	defer s.m.Unlock()
	out := make([]ReceivedUpload, len(s.received))
	copy(out, s.received)
	return out
}
