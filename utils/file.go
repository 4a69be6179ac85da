// Copyright 2026 Sonic Labs
// This file is part of Bvbench, the bit-vector workload and benchmark toolkit
//
// Bvbench is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bvbench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Bvbench. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// CompressedSuffix marks files that are gzip compressed.
const CompressedSuffix = ".gz"

// IsCompressed reports whether path names a gzip compressed file.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, CompressedSuffix)
}

// fileWriter buffers writes to a file, optionally through a gzip stream.
type fileWriter struct {
	buffer  *bufio.Writer
	closers []io.Closer // closed in order after the buffer is flushed
}

func newFileWriter(file *os.File, compress bool) *fileWriter {
	if !compress {
		return &fileWriter{
			buffer:  bufio.NewWriter(file),
			closers: []io.Closer{file},
		}
	}
	gzipWriter := gzip.NewWriter(file)
	return &fileWriter{
		buffer:  bufio.NewWriter(gzipWriter),
		closers: []io.Closer{gzipWriter, file},
	}
}

func (f *fileWriter) Write(data []byte) (int, error) {
	return f.buffer.Write(data)
}

func (f *fileWriter) Close() error {
	err := f.buffer.Flush()
	for _, c := range f.closers {
		err = errors.Join(err, c.Close())
	}
	return err
}

// WriteFileAtomic creates path with the content produced by write. The
// content is written to a temporary file in the same directory, which
// replaces path only after it has been written and closed successfully.
// On failure no file is left behind under path.
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %v; %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %v; %w", dir, err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmp.Name()))
		}
	}()

	if err = tmp.Chmod(0644); err != nil {
		return errors.Join(err, tmp.Close())
	}
	w := newFileWriter(tmp, IsCompressed(path))
	if err = write(w); err != nil {
		return errors.Join(err, w.Close())
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("cannot close %v; %w", tmp.Name(), err)
	}
	return os.Rename(tmp.Name(), path)
}

// fileReader reads a file, optionally through a gzip stream.
type fileReader struct {
	io.Reader
	closers []io.Closer
}

func (f *fileReader) Close() error {
	var err error
	for _, c := range f.closers {
		err = errors.Join(err, c.Close())
	}
	return err
}

// OpenFile opens path for reading, decompressing files ending in ".gz".
func OpenFile(path string) (io.ReadCloser, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not stat file: %s, does it exist? %w", path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("given path %s is a directory", path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %s, %w", path, err)
	}
	if !IsCompressed(path) {
		return &fileReader{Reader: file, closers: []io.Closer{file}}, nil
	}
	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("could not create gzip reader for file: %s, %w", path, err), file.Close())
	}
	return &fileReader{Reader: gzipReader, closers: []io.Closer{gzipReader, file}}, nil
}
