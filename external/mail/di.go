package mail

import (
	"github.com/reviewstream/reviewnotes/internal/config"
	internalmail "github.com/reviewstream/reviewnotes/internal/mail"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (internalmail.Sender, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		}), nil
	})
}
