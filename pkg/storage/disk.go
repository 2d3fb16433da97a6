package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Depo hataları.
var (
	ErrObjectNotFound = errors.New("nesne bulunamadı")
	ErrInvalidPath    = errors.New("geçersiz nesne yolu")
)

// DiskStore IStore'un yerel disk implementasyonudur. baseURL, nesnelerin
// public URL'lerinin ön ekidir (ör. "/storage"); router bu yolu statik
// olarak servis eder.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore kök dizini oluşturup disk deposunu hazırlar.
func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// cleanPath bucket içi yolu doğrular; dizin dışına çıkma denemelerini reddeder.
func cleanPath(p string) (string, error) {
	cleaned := path.Clean("/" + p)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.Contains(cleaned, "..") {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

func (s *DiskStore) objectPath(bucket, p string) (string, error) {
	cleaned, err := cleanPath(p)
	if err != nil {
		return "", err
	}
	if bucket == "" || strings.ContainsAny(bucket, "/\\") {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.root, bucket, filepath.FromSlash(cleaned)), nil
}

// List prefix altındaki nesneleri en yeniden eskiye sıralı döner.
// Prefix dizini yoksa boş liste döner, hata değil.
func (s *DiskStore) List(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir := filepath.Join(s.root, bucket)
	if prefix != "" {
		cleaned, err := cleanPath(prefix)
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(dir, filepath.FromSlash(cleaned))
	}

	var objects []ObjectInfo
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(filepath.Join(s.root, bucket), p)
		if err != nil {
			return err
		}
		objects = append(objects, ObjectInfo{
			Name:    filepath.ToSlash(rel),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []ObjectInfo{}, nil
		}
		return nil, err
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].ModTime.After(objects[j].ModTime)
	})
	return objects, nil
}

// Upload nesneyi geçici dosyaya yazıp yerine taşır; yarım yazım kalmaz.
func (s *DiskStore) Upload(ctx context.Context, bucket, p string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.objectPath(bucket, p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, target)
}

// Open nesneyi okumak için açar.
func (s *DiskStore) Open(ctx context.Context, bucket, p string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := s.objectPath(bucket, p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return f, nil
}

// Remove nesneyi siler.
func (s *DiskStore) Remove(ctx context.Context, bucket, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.objectPath(bucket, p)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrObjectNotFound
		}
		return err
	}
	return nil
}

// PublicURL nesnenin statik servis edilen yolunu döner.
func (s *DiskStore) PublicURL(bucket, p string) string {
	cleaned, err := cleanPath(p)
	if err != nil {
		return ""
	}
	return s.baseURL + "/" + bucket + "/" + cleaned
}

var _ IStore = (*DiskStore)(nil)
