package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip-encoded JSON bodies and compresses responses for
// clients that accept gzip. Multipart uploads are rarely compressed by
// browsers but are handled the same way.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			reader := gzipReaders.Get().(*gzip.Reader)
			if err := reader.Reset(r.Body); err != nil {
				gzipReaders.Put(reader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			r.Body = &gzipBody{reader: reader, original: r.Body}
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		writer := gzipWriters.Get().(*gzip.Writer)
		writer.Reset(w)
		defer func() {
			writer.Close()
			gzipWriters.Put(writer)
		}()

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, writer: writer}, r)
	})
}

// gzipBody returns its reader to the pool on Close.
type gzipBody struct {
	reader   *gzip.Reader
	original io.ReadCloser
	closed   bool
}

func (b *gzipBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *gzipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.reader.Close()
	gzipReaders.Put(b.reader)
	return b.original.Close()
}

type gzipResponseWriter struct {
	http.ResponseWriter
	writer      *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.writer.Write(data)
}
