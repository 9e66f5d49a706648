// Package model contains the domain types shared by the application
// services and the driven adapters.
package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// prURLPattern matches pull request web URLs such as
// https://github.com/owner/repo/pull/1234 (optional trailing slash).
var prURLPattern = regexp.MustCompile(`^https://([^/]+)/([^/]+)/([^/]+)/pull/(\d+)/?$`)

// PRRef identifies a single pull request on a GitHub host.
type PRRef struct {
	Host   string // "github.com" or a GitHub Enterprise host.
	Owner  string
	Repo   string
	Number int
}

// ParsePRURL parses a pull request web URL into a PRRef.
// Only https URLs of the form https://<host>/<owner>/<repo>/pull/<number>
// are accepted.
func ParsePRURL(rawURL string) (PRRef, error) {
	m := prURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return PRRef{}, fmt.Errorf("invalid pull request URL %q: expected https://<host>/<owner>/<repo>/pull/<number>", rawURL)
	}

	number, err := strconv.Atoi(m[4])
	if err != nil {
		return PRRef{}, fmt.Errorf("invalid pull request number in URL %q: %w", rawURL, err)
	}

	return PRRef{
		Host:   m[1],
		Owner:  m[2],
		Repo:   m[3],
		Number: number,
	}, nil
}

// RepoFullName returns the "owner/repo" form used in log lines and errors.
func (r PRRef) RepoFullName() string {
	return r.Owner + "/" + r.Repo
}

// IsEnterprise reports whether the reference points at a GitHub Enterprise
// host rather than github.com.
func (r PRRef) IsEnterprise() bool {
	return r.Host != "github.com"
}

// String returns the canonical web URL for the pull request.
func (r PRRef) String() string {
	return fmt.Sprintf("https://%s/%s/%s/pull/%d", r.Host, r.Owner, r.Repo, r.Number)
}
