// Package fsread reads small host identifier files into caller-owned buffers.
// A read either completes in full or reports zero bytes.
package fsread

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/viant/afs"
)

// Storage is the part of afs.Service the reader needs.
type Storage interface {
	Stat(ctx context.Context, URL string) (os.FileInfo, error)
	Open(ctx context.Context, URL string) (io.ReadCloser, error)
}

type afsStorage struct {
	fs afs.Service
}

func (s afsStorage) Stat(ctx context.Context, URL string) (os.FileInfo, error) {
	return s.fs.Object(ctx, URL)
}

func (s afsStorage) Open(ctx context.Context, URL string) (io.ReadCloser, error) {
	return s.fs.OpenURL(ctx, URL)
}

// Reader reads files through afs, so callers can point it at mem://
// fixtures instead of the host filesystem.
type Reader struct {
	storage Storage
}

func New(fs afs.Service) *Reader {
	if fs == nil {
		fs = afs.New()
	}
	return &Reader{storage: afsStorage{fs: fs}}
}

func NewWithStorage(storage Storage) *Reader {
	return &Reader{storage: storage}
}

// Into reads the file at URL into buf, truncated to len(buf). When the
// object reports a size, exactly min(size, len(buf)) bytes must be read.
// A zero size is treated as unknown (pseudo-files, in-memory objects) and
// the file is read up to len(buf). On any failure, including a short read,
// it clears buf and returns 0 together with the cause.
func (r *Reader) Into(ctx context.Context, URL string, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	info, err := r.storage.Stat(ctx, URL)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s: is a directory", URL)
	}

	want := len(buf)
	size := info.Size()
	if size > 0 && size < int64(want) {
		want = int(size)
	}

	reader, err := r.storage.Open(ctx, URL)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	n, err := io.ReadFull(reader, buf[:want])
	if err == nil {
		return n, nil
	}
	if size == 0 && (errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)) {
		return n, nil
	}
	clear(buf[:want])
	return 0, fmt.Errorf("%s: read %d of %d bytes: %w", URL, n, want, err)
}
