package protocol

import (
	"github.com/foxseedlab/emovoice/internal/capture"
	"github.com/foxseedlab/emovoice/internal/config"
	"github.com/foxseedlab/emovoice/internal/uploader"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Engine, error) {
		cfg := do.MustInvoke[*config.Config](i)
		rec := do.MustInvoke[capture.Recorder](i)
		var up uploader.Uploader
		if cfg.HasRemoteStore() {
			up = do.MustInvoke[uploader.Uploader](i)
		}
		return NewEngine(cfg, rec, up), nil
	})
}
