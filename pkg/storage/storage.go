// Package storage bucket/prefix düzeninde basit bir nesne deposu sunar.
// CV dosyaları, avatar görselleri ve proje görselleri burada saklanır.
// Üretimde disk tabanlı implementasyon kullanılır; arayüz sayesinde
// testlerde geçici dizinle çalışılır.
package storage

import (
	"context"
	"io"
	"time"
)

// Bucket isimleri. Yol düzeni: <root>/<bucket>/<path>.
const (
	BucketDocuments     = "documents"
	BucketAvatars       = "avatars"
	BucketProjectImages = "project-images"
)

// ObjectInfo depodaki bir nesnenin üst verisidir.
type ObjectInfo struct {
	Name    string // Bucket köküne göre yol (ör. "cv/resume_1700000000.pdf")
	Size    int64
	ModTime time.Time
}

// IStore nesne deposu işlemlerinin arayüzüdür.
type IStore interface {
	// List verilen prefix altındaki nesneleri en yeniden eskiye sıralı döner.
	List(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)
	// Upload nesneyi yazar; aynı yol varsa üzerine yazar.
	Upload(ctx context.Context, bucket, path string, r io.Reader) error
	// Open nesneyi okumak için açar. Bulunamazsa ErrObjectNotFound döner.
	Open(ctx context.Context, bucket, path string) (io.ReadCloser, error)
	// Remove nesneyi siler. Bulunamazsa ErrObjectNotFound döner.
	Remove(ctx context.Context, bucket, path string) error
	// PublicURL nesnenin tarayıcıdan erişilebilir yolunu döner.
	PublicURL(bucket, path string) string
}
