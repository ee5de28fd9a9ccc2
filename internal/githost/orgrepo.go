package githost

import (
	"fmt"
	"strings"
)

type OrgRepo struct {
	Org  string
	Repo string
}

func (r OrgRepo) String() string {
	return r.Org + "/" + r.Repo
}

func ParseOrgRepo(s string) (OrgRepo, error) {
	org, repo, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || org == "" || repo == "" {
		return OrgRepo{}, fmt.Errorf("invalid org/repo %q", s)
	}
	return OrgRepo{Org: org, Repo: repo}, nil
}

// ParseList parses a comma- or whitespace-delimited list of org/repo pairs.
func ParseList(s string) ([]OrgRepo, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	repos := make([]OrgRepo, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		or, err := ParseOrgRepo(f)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[or.String()]; dup {
			continue
		}
		seen[or.String()] = struct{}{}
		repos = append(repos, or)
	}
	if len(repos) == 0 {
		return nil, fmt.Errorf("no org/repo pairs in %q", s)
	}
	return repos, nil
}
