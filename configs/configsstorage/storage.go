package configsstorage

import (
	"portfolyo.link/configs/configslog"
	"portfolyo.link/pkg/storage"

	"go.uber.org/zap"
)

// store global nesne deposu. InitStore ile kurulur, GetStore ile erişilir.
var store storage.IStore

// PublicBaseURL depodaki nesnelerin statik servis edildiği URL ön eki.
// Router bu yolu storage köküne bağlar.
const PublicBaseURL = "/storage"

// InitStore disk tabanlı nesne deposunu hazırlar.
func InitStore(root string) {
	diskStore, err := storage.NewDiskStore(root, PublicBaseURL)
	if err != nil {
		configslog.Log.Fatal("Nesne deposu başlatılamadı", zap.String("root", root), zap.Error(err))
	}
	store = diskStore
	configslog.SLog.Infof("Nesne deposu hazır: %s", root)
}

// GetStore global depoyu döndürür.
func GetStore() storage.IStore {
	if store == nil {
		configslog.Log.Fatal("GetStore çağrıldı ancak depo başlatılmadı (InitStore eksik)")
	}
	return store
}

// SetStore test ortamında depoyu değiştirmek için kullanılır.
func SetStore(s storage.IStore) {
	store = s
}
