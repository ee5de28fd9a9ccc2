package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	internalconfig "github.com/reviewstream/reviewnotes/internal/config"
)

type envConfig struct {
	Env                   string `env:"ENV" envDefault:"production"`
	GitHubToken           string `env:"GITHUB_TOKEN,required"`
	GitHubRepos           string `env:"GITHUB_REPOS,required"`
	NotesOwner            string `env:"NOTES_OWNER,required"`
	NotesRepo             string `env:"NOTES_REPO,required"`
	NotesBranch           string `env:"NOTES_BRANCH" envDefault:"main"`
	YouTubePlaylistID     string `env:"YOUTUBE_PLAYLIST_ID,required"`
	GoogleCredentialsJSON string `env:"GOOGLE_CREDENTIALS_JSON,required"`
	ReviewTimezone        string `env:"REVIEW_TIMEZONE" envDefault:"UTC"`
	MailTo                string `env:"MAIL_TO"`
	MailFrom              string `env:"MAIL_FROM"`
	SMTPHost              string `env:"SMTP_HOST"`
	SMTPPort              int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername          string `env:"SMTP_USERNAME"`
	SMTPPassword          string `env:"SMTP_PASSWORD"`
	DatabaseURL           string `env:"DATABASE_URL"`
}

func Load() (*internalconfig.Config, error) {
	// A missing .env file is fine; the process environment wins either way.
	_ = godotenv.Load()

	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:                   raw.Env,
		GitHubToken:           raw.GitHubToken,
		GitHubRepos:           raw.GitHubRepos,
		NotesOwner:            raw.NotesOwner,
		NotesRepo:             raw.NotesRepo,
		NotesBranch:           raw.NotesBranch,
		YouTubePlaylistID:     raw.YouTubePlaylistID,
		GoogleCredentialsJSON: raw.GoogleCredentialsJSON,
		ReviewTimezone:        raw.ReviewTimezone,
		MailTo:                raw.MailTo,
		MailFrom:              raw.MailFrom,
		SMTPHost:              raw.SMTPHost,
		SMTPPort:              raw.SMTPPort,
		SMTPUsername:          raw.SMTPUsername,
		SMTPPassword:          raw.SMTPPassword,
		DatabaseURL:           raw.DatabaseURL,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
