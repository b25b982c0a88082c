package uploader

import (
	"github.com/foxseedlab/emovoice/internal/blobstore"
	"github.com/foxseedlab/emovoice/internal/config"
	"github.com/foxseedlab/emovoice/internal/repository"
	"github.com/foxseedlab/emovoice/internal/uploader"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (uploader.Uploader, error) {
		cfg := do.MustInvoke[*config.Config](i)
		var store blobstore.Store
		if cfg.HasStorage() {
			store = do.MustInvoke[blobstore.Store](i)
		}
		var repo repository.Repository
		if cfg.HasDatabase() {
			repo = do.MustInvoke[repository.Repository](i)
		}
		return NewRemoteUploader(store, repo, cfg.StorageBucket), nil
	})
}
