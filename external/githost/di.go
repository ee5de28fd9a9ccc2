package githost

import (
	"github.com/reviewstream/reviewnotes/internal/config"
	internalgithost "github.com/reviewstream/reviewnotes/internal/githost"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewClient(cfg.GitHubToken), nil
	})
	do.Provide(injector, func(i do.Injector) (internalgithost.IssueReader, error) {
		return do.MustInvoke[*Client](i), nil
	})
	do.Provide(injector, func(i do.Injector) (internalgithost.CommentEditor, error) {
		return do.MustInvoke[*Client](i), nil
	})
	do.Provide(injector, func(i do.Injector) (internalgithost.NotesCommitter, error) {
		return do.MustInvoke[*Client](i), nil
	})
}
