package config

import (
	"fmt"
	"time"
)

type Config struct {
	Env                   string
	GitHubToken           string
	GitHubRepos           string
	NotesOwner            string
	NotesRepo             string
	NotesBranch           string
	YouTubePlaylistID     string
	GoogleCredentialsJSON string
	ReviewTimezone        string
	MailTo                string
	MailFrom              string
	SMTPHost              string
	SMTPPort              int
	SMTPUsername          string
	SMTPPassword          string
	DatabaseURL           string
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if _, err := time.LoadLocation(c.ReviewTimezone); err != nil {
		return fmt.Errorf("REVIEW_TIMEZONE is invalid: %w", err)
	}
	if c.MailTo != "" {
		if c.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required when MAIL_TO is set")
		}
		if c.MailFrom == "" {
			return fmt.Errorf("MAIL_FROM is required when MAIL_TO is set")
		}
		if c.SMTPPort <= 0 {
			return fmt.Errorf("SMTP_PORT must be positive, got %d", c.SMTPPort)
		}
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "GITHUB_TOKEN", value: c.GitHubToken},
		{name: "GITHUB_REPOS", value: c.GitHubRepos},
		{name: "NOTES_OWNER", value: c.NotesOwner},
		{name: "NOTES_REPO", value: c.NotesRepo},
		{name: "NOTES_BRANCH", value: c.NotesBranch},
		{name: "YOUTUBE_PLAYLIST_ID", value: c.YouTubePlaylistID},
		{name: "GOOGLE_CREDENTIALS_JSON", value: c.GoogleCredentialsJSON},
		{name: "REVIEW_TIMEZONE", value: c.ReviewTimezone},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Location resolves ReviewTimezone, falling back to UTC for an
// unparseable zone. Validate rejects those up front.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ReviewTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
