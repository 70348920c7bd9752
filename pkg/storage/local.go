package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalDisk stores files under a root directory on the local filesystem.
type LocalDisk struct {
	root    string
	baseURL string
}

// NewLocalDisk builds a LocalDisk rooted at root; baseURL prefixes
// generated URLs.
func NewLocalDisk(root, baseURL string) *LocalDisk {
	return &LocalDisk{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (d *LocalDisk) fullPath(path string) string {
	return filepath.Join(d.root, filepath.Clean("/"+path))
}

func (d *LocalDisk) Put(_ context.Context, path string, content io.Reader) error {
	full := d.fullPath(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, content)
	return err
}

func (d *LocalDisk) Get(_ context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(d.fullPath(path))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return f, err
}

func (d *LocalDisk) Delete(_ context.Context, path string) error {
	err := os.Remove(d.fullPath(path))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (d *LocalDisk) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(d.fullPath(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

func (d *LocalDisk) URL(path string) string {
	return d.baseURL + "/" + strings.TrimLeft(path, "/")
}
