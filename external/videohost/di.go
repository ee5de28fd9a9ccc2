package videohost

import (
	"context"

	"github.com/reviewstream/reviewnotes/internal/config"
	internalvideohost "github.com/reviewstream/reviewnotes/internal/videohost"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*YouTubeClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewYouTubeClient(context.Background(), cfg.GoogleCredentialsJSON)
	})
	do.Provide(injector, func(i do.Injector) (internalvideohost.Lister, error) {
		return do.MustInvoke[*YouTubeClient](i), nil
	})
	do.Provide(injector, func(i do.Injector) (internalvideohost.DescriptionUpdater, error) {
		return do.MustInvoke[*YouTubeClient](i), nil
	})
	do.Provide(injector, func(i do.Injector) (*internalvideohost.Locator, error) {
		cfg := do.MustInvoke[*config.Config](i)
		lister := do.MustInvoke[internalvideohost.Lister](i)
		return internalvideohost.NewLocator(lister, cfg.Location()), nil
	})
}
