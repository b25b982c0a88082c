package blobstore

import (
	"github.com/foxseedlab/emovoice/internal/blobstore"
	"github.com/foxseedlab/emovoice/internal/config"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (blobstore.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewHTTPStore(cfg.StorageURL, cfg.StorageAPIKey), nil
	})
}
