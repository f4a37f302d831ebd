// Package storage keeps uploaded catalog images on local disk next to a
// 300px-wide thumbnail.
package storage

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

const (
	thumbDir   = "thumbs"
	thumbWidth = 300
)

// Stored describes a saved upload. URL and ThumbnailURL are root-relative.
type Stored struct {
	URL              string
	ThumbnailURL     string
	OriginalFilename string
	ContentType      string
	Size             int64
}

type Local struct {
	root     string
	maxBytes int64
}

func NewLocal(root string, maxBytes int64) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &Local{root: root, maxBytes: maxBytes}, nil
}

func (l *Local) Root() string { return l.root }

// SaveFile stores a multipart upload under <root>/<sub>/.
func (l *Local) SaveFile(sub string, fh *multipart.FileHeader) (*Stored, error) {
	if fh == nil || fh.Size == 0 {
		return nil, apperr.Validation("image file is empty")
	}
	if fh.Size > l.maxBytes {
		return nil, apperr.Validation("image exceeds %d bytes", l.maxBytes)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()
	return l.Save(sub, fh.Filename, fh.Header.Get("Content-Type"), src)
}

func (l *Local) Save(sub, filename, contentType string, r io.Reader) (*Stored, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperr.Validation("only image files are allowed, got %q", contentType)
	}
	dir := filepath.Join(l.root, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	dst := filepath.Join(dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	n, err := io.Copy(f, io.LimitReader(r, l.maxBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if n == 0 {
		_ = os.Remove(dst)
		return nil, apperr.Validation("image file is empty")
	}
	if n > l.maxBytes {
		_ = os.Remove(dst)
		return nil, apperr.Validation("image exceeds %d bytes", l.maxBytes)
	}

	out := &Stored{
		URL:              "/" + path.Join(sub, name),
		OriginalFilename: filepath.Base(filename),
		ContentType:      contentType,
		Size:             n,
	}
	if err := l.thumbnail(dir, name); err != nil {
		slog.Warn("thumbnail skipped", "file", dst, "err", err)
	} else {
		out.ThumbnailURL = "/" + path.Join(sub, thumbDir, name)
	}
	return out, nil
}

func (l *Local) thumbnail(dir, name string) error {
	img, err := imaging.Open(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(dir, thumbDir), 0o755); err != nil {
		return err
	}
	return imaging.Save(imaging.Resize(img, thumbWidth, 0, imaging.Lanczos), filepath.Join(dir, thumbDir, name))
}

// Delete removes the file behind url and its thumbnail. Missing files are not an error.
func (l *Local) Delete(url string) error {
	if url == "" {
		return nil
	}
	rel := path.Clean("/" + url)
	sub, name := path.Split(rel)
	if name == "" || strings.Contains(sub, "..") {
		return nil
	}
	for _, p := range []string{
		filepath.Join(l.root, filepath.FromSlash(rel)),
		filepath.Join(l.root, filepath.FromSlash(sub), thumbDir, name),
	} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}
	return nil
}

// Path maps a root-relative url to its location on disk.
func (l *Local) Path(url string) string {
	return filepath.Join(l.root, filepath.FromSlash(path.Clean("/"+url)))
}
