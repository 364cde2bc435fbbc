package tenant

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidSlug  = errors.New("invalid tenant slug")
	ErrReservedSlug = errors.New("tenant slug is reserved")
)

const (
	MinSlugLength = 3
	MaxSlugLength = 40
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+$`)

// Subdomains that never resolve to a tenant booking page.
var reservedSlugs = map[string]struct{}{
	"www":       {},
	"api":       {},
	"admin":     {},
	"app":       {},
	"dashboard": {},
	"auth":      {},
	"login":     {},
	"signup":    {},
}

type Slug struct {
	value string
}

func NewSlug(s string) (Slug, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < MinSlugLength || len(s) > MaxSlugLength || !slugRegex.MatchString(s) {
		return Slug{}, ErrInvalidSlug
	}
	if _, ok := reservedSlugs[s]; ok {
		return Slug{}, ErrReservedSlug
	}
	return Slug{value: s}, nil
}

func (s Slug) Value() string {
	return s.value
}

// ResolveHost maps a request hostname to a tenant slug. The second return is
// false when the host is the bare platform domain, a reserved subdomain, a
// too-short label, or an unrelated domain; those requests fall through to the
// marketing site.
func ResolveHost(host, platformDomain string) (Slug, bool) {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, found := strings.Cut(host, ":"); found {
		host = h
	}

	if host == platformDomain || strings.HasPrefix(host, "www.") {
		return Slug{}, false
	}

	label, ok := strings.CutSuffix(host, "."+platformDomain)
	if !ok || strings.Contains(label, ".") {
		return Slug{}, false
	}

	slug, err := NewSlug(label)
	if err != nil {
		return Slug{}, false
	}
	return slug, true
}
