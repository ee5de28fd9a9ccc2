package notes

import (
	"github.com/reviewstream/reviewnotes/internal/config"
	"github.com/reviewstream/reviewnotes/internal/githost"
	"github.com/reviewstream/reviewnotes/internal/review"
	"github.com/reviewstream/reviewnotes/internal/store"
	"github.com/reviewstream/reviewnotes/internal/summary"
	"github.com/reviewstream/reviewnotes/internal/videohost"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Runner, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repos, err := githost.ParseList(cfg.GitHubRepos)
		if err != nil {
			return nil, err
		}
		issues := do.MustInvoke[githost.IssueReader](i)
		locator := do.MustInvoke[*videohost.Locator](i)
		publisher := do.MustInvoke[*summary.Publisher](i)
		ledger := do.MustInvoke[store.Ledger](i)

		loc := cfg.Location()
		return NewRunner(
			issues,
			review.NewClassifier(loc),
			review.NewCorrelator(issues),
			locator,
			publisher,
			ledger,
			repos,
			cfg.YouTubePlaylistID,
			loc,
		), nil
	})
}
