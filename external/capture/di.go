package capture

import (
	"github.com/foxseedlab/emovoice/internal/capture"
	"github.com/foxseedlab/emovoice/internal/config"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (capture.Recorder, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.HasCaptureDevice() {
			return NewStreamRecorder(nil), nil
		}
		return NewStreamRecorder(NewStreamSource(cfg.CaptureDeviceAddr)), nil
	})
}
