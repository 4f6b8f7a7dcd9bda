package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
)

// Timeout bounds each request to d. The handler runs on its own goroutine
// against a buffered writer and a context carrying the deadline; whichever of
// completion or the deadline comes first decides the response. A late handler
// gets [http.ErrHandlerTimeout] from Write, and the client gets a 504 error
// body. Handler panics are re-raised on the serving goroutine.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				buf.commit(w)
			case <-ctx.Done():
				if buf.expire() {
					dto.WriteStatusResponse(w, r, http.StatusGatewayTimeout)
				}
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides whether
// it reaches the client.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

// expire marks the buffer dead and reports whether this call did so.
func (b *bufferedWriter) expire() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.expired {
		return false
	}
	b.expired = true
	return true
}

// commit replays the buffered response onto w.
func (b *bufferedWriter) commit(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
