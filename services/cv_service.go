package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"portfolyo.link/configs/configslog"
	"portfolyo.link/configs/configsstorage"
	"portfolyo.link/pkg/storage"

	"go.uber.org/zap"
)

// CVServiceError CV servisi hataları.
type CVServiceError string

func (e CVServiceError) Error() string { return string(e) }

const (
	ErrCVNotFound       CVServiceError = "yüklü bir CV bulunamadı"
	ErrCVInvalidType    CVServiceError = "CV yalnızca PDF olabilir"
	ErrCVTooLarge       CVServiceError = "CV dosyası 10MB'dan büyük olamaz"
	ErrCVUploadFailed   CVServiceError = "CV yüklenemedi"
	ErrCVDeletionFailed CVServiceError = "CV silinemedi"
)

// CV nesneleri documents bucket'ında sabit bir prefix altında tutulur.
// "Mevcut CV" = bu prefix altındaki en yeni nesne.
const (
	cvPrefix = "cv"
	// MaxCVSize CV dosyası için bayt cinsinden üst sınır (10MB).
	MaxCVSize = 10 << 20
	// CVDownloadFileName indirme sırasında kullanıcıya sunulan sabit ad.
	CVDownloadFileName = "resume.pdf"
)

// ICVService CV dosyası işlemleri için arayüz.
type ICVService interface {
	// GetCurrentCV mevcut CV'nin üst verisini döner; yoksa ErrCVNotFound.
	GetCurrentCV(ctx context.Context) (*storage.ObjectInfo, error)
	// UploadCV dosyayı doğrular ve mevcut CV'nin yerine yazar. Doğrulama
	// hatasında depoya hiçbir çağrı yapılmaz.
	UploadCV(ctx context.Context, contentType string, size int64, r io.Reader) error
	// OpenCurrentCV mevcut CV'yi okumak için açar.
	OpenCurrentCV(ctx context.Context) (io.ReadCloser, error)
	// DeleteCV mevcut CV'yi depodan kaldırır.
	DeleteCV(ctx context.Context) error
}

// CVService ICVService arayüzünü uygular.
type CVService struct {
	store storage.IStore
}

func NewCVService() ICVService {
	return &CVService{store: configsstorage.GetStore()}
}

func (s *CVService) GetCurrentCV(ctx context.Context) (*storage.ObjectInfo, error) {
	objects, err := s.store.List(ctx, storage.BucketDocuments, cvPrefix)
	if err != nil {
		configslog.Log.Error("CV listesi alınamadı", zap.Error(err))
		return nil, err
	}
	if len(objects) == 0 {
		return nil, ErrCVNotFound
	}
	// List en yeniden eskiye sıralı döner.
	return &objects[0], nil
}

func (s *CVService) UploadCV(ctx context.Context, contentType string, size int64, r io.Reader) error {
	// Doğrulama depo çağrısından ÖNCE: geçersiz dosya hiçbir zaman
	// depoya ulaşmaz.
	if contentType != "application/pdf" {
		return ErrCVInvalidType
	}
	if size > MaxCVSize {
		return ErrCVTooLarge
	}

	// Varsa eski CV'yi kaldır. Başarısızlık yeni yüklemeyi engellemez;
	// yalnızca loglanır.
	if current, err := s.GetCurrentCV(ctx); err == nil {
		if err := s.store.Remove(ctx, storage.BucketDocuments, current.Name); err != nil &&
			!errors.Is(err, storage.ErrObjectNotFound) {
			configslog.Log.Warn("Eski CV silinemedi, yükleme devam ediyor",
				zap.String("name", current.Name), zap.Error(err))
		}
	}

	objectPath := fmt.Sprintf("%s/resume_%d.pdf", cvPrefix, time.Now().Unix())
	if err := s.store.Upload(ctx, storage.BucketDocuments, objectPath, r); err != nil {
		configslog.Log.Error("CV depoya yazılamadı", zap.String("path", objectPath), zap.Error(err))
		return ErrCVUploadFailed
	}

	configslog.SLog.Infof("CV yüklendi: %s", objectPath)
	return nil
}

func (s *CVService) OpenCurrentCV(ctx context.Context) (io.ReadCloser, error) {
	current, err := s.GetCurrentCV(ctx)
	if err != nil {
		return nil, err
	}
	rc, err := s.store.Open(ctx, storage.BucketDocuments, current.Name)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrCVNotFound
		}
		configslog.Log.Error("CV açılamadı", zap.String("name", current.Name), zap.Error(err))
		return nil, err
	}
	return rc, nil
}

func (s *CVService) DeleteCV(ctx context.Context) error {
	current, err := s.GetCurrentCV(ctx)
	if err != nil {
		return err
	}
	if err := s.store.Remove(ctx, storage.BucketDocuments, current.Name); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return ErrCVNotFound
		}
		configslog.Log.Error("CV silinemedi", zap.String("name", current.Name), zap.Error(err))
		return ErrCVDeletionFailed
	}

	configslog.SLog.Infof("CV silindi: %s", current.Name)
	return nil
}

var _ ICVService = (*CVService)(nil)
