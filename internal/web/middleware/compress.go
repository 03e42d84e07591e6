package middleware

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipPool sync.Pool
	zstdPool sync.Pool
)

func getGzip(w io.Writer) *gzip.Writer {
	if v := gzipPool.Get(); v != nil {
		gw := v.(*gzip.Writer)
		gw.Reset(w)
		return gw
	}
	gw, _ := gzip.NewWriterLevel(w, gzip.DefaultCompression)
	return gw
}

func getZstd(w io.Writer) *zstd.Encoder {
	if v := zstdPool.Get(); v != nil {
		zw := v.(*zstd.Encoder)
		zw.Reset(w)
		return zw
	}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest), zstd.WithEncoderConcurrency(1))
	if err != nil {
		panic(err)
	}
	return zw
}

// encoder is the part of gzip.Writer and zstd.Encoder the wrapper needs.
type encoder interface {
	io.WriteCloser
	Reset(w io.Writer)
}

type compressWriter struct {
	http.ResponseWriter
	enc      encoder
	disabled bool // set for responses that must not carry a body
}

func (cw *compressWriter) Write(b []byte) (int, error) {
	if cw.disabled {
		return cw.ResponseWriter.Write(b)
	}
	cw.Header().Del("Content-Length")
	if cw.Header().Get("Content-Type") == "" {
		cw.Header().Set("Content-Type", http.DetectContentType(b))
	}
	return cw.enc.Write(b)
}

func (cw *compressWriter) WriteHeader(code int) {
	cw.Header().Del("Content-Length")
	if cw.Header().Get("Content-Encoding") == "" {
		// cleared downstream (http.Error does this on newer Go versions)
		cw.disabled = true
	}
	if (code >= 100 && code < 200) || code == http.StatusNoContent || code == http.StatusNotModified {
		cw.disabled = true
		cw.Header().Del("Content-Encoding")
		cw.Header().Del("Vary")
	}
	cw.ResponseWriter.WriteHeader(code)
}

// Compression encodes responses with zstd or gzip, whichever the client
// accepts first in that order. HEAD requests and PDFs pass through untouched.
func Compression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead || w.Header().Get("Content-Encoding") != "" || strings.HasSuffix(r.URL.Path, ".pdf") {
			next.ServeHTTP(w, r)
			return
		}

		accept := r.Header.Get("Accept-Encoding")
		var (
			enc  encoder
			pool *sync.Pool
			name string
		)
		switch {
		case strings.Contains(accept, "zstd"):
			enc, pool, name = getZstd(w), &zstdPool, "zstd"
		case strings.Contains(accept, "gzip"):
			enc, pool, name = getGzip(w), &gzipPool, "gzip"
		default:
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Encoding", name)
		w.Header().Add("Vary", "Accept-Encoding")
		cw := &compressWriter{ResponseWriter: w, enc: enc}
		defer func() {
			if cw.disabled {
				// drop the trailer rather than write it into a bodiless response
				enc.Reset(io.Discard)
			}
			_ = enc.Close()
			pool.Put(enc)
		}()
		next.ServeHTTP(cw, r)
	})
}
