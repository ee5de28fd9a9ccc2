package summary

import (
	"github.com/reviewstream/reviewnotes/internal/config"
	"github.com/reviewstream/reviewnotes/internal/githost"
	"github.com/reviewstream/reviewnotes/internal/mail"
	"github.com/reviewstream/reviewnotes/internal/videohost"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		editor := do.MustInvoke[githost.CommentEditor](i)
		committer := do.MustInvoke[githost.NotesCommitter](i)
		videos := do.MustInvoke[videohost.DescriptionUpdater](i)
		mailer := do.MustInvoke[mail.Sender](i)
		notesRepo := githost.OrgRepo{Org: cfg.NotesOwner, Repo: cfg.NotesRepo}
		return NewPublisher(editor, committer, videos, mailer, notesRepo, cfg.NotesBranch, cfg.MailTo), nil
	})
}
