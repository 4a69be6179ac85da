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
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestIsCompressed(t *testing.T) {
	assert.True(t, IsCompressed("a/b.txt.gz"))
	assert.False(t, IsCompressed("a/b.txt"))
	assert.False(t, IsCompressed("a/b.gz.txt"))
}

func TestWriteFileAtomic_PlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "file.txt")
	require.NoError(t, WriteFileAtomic(path, writeString("3\n0101\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3\n0101\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFileAtomic_CompressedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt.gz")
	require.NoError(t, WriteFileAtomic(path, writeString("compressed content")))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	reader, err := gzip.NewReader(file)
	require.NoError(t, err)
	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "compressed content", string(got))
}

func TestWriteFileAtomic_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, WriteFileAtomic(path, writeString("old")))
	require.NoError(t, WriteFileAtomic(path, writeString("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWriteFileAtomic_FailedWriteLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, WriteFileAtomic(path, writeString("previous")))

	mockErr := errors.New("mock error")
	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return mockErr
	})
	assert.ErrorIs(t, err, mockErr)

	// the previous content survives and no temporary file is left
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(got))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_InvalidDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	err := WriteFileAtomic(filepath.Join(blocker, "sub", "file.txt"), writeString("x"))
	assert.Error(t, err)
}

func TestOpenFile_ReadsPlainAndCompressed(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"plain.txt", "packed.txt.gz"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFileAtomic(path, writeString("content of "+name)))

		r, err := OpenFile(path)
		require.NoError(t, err)
		got, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "content of "+name, string(got))
		assert.NoError(t, r.Close())
	}
}

func TestOpenFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := OpenFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = OpenFile(dir)
	assert.Error(t, err)

	notGzip := filepath.Join(dir, "fake.txt.gz")
	require.NoError(t, os.WriteFile(notGzip, []byte("plain text"), 0644))
	_, err = OpenFile(notGzip)
	assert.Error(t, err)
}
