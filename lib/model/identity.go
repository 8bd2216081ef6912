package model

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

type Author struct {
	Name  string
	Email string
}

// Identity decides whether a commit author is "me", by looking for any of a set of substrings in the email.
type Identity struct {
	emails     []string
	ignoreCase bool
}

func NewIdentity(emails []string, ignoreCase bool) *Identity {
	result := &Identity{
		ignoreCase: ignoreCase,
	}

	emails = lo.Map(emails, func(e string, _ int) string { return result.normalize(strings.TrimSpace(e)) })
	result.emails = lo.Uniq(lo.Filter(emails, func(e string, _ int) bool { return e != "" }))

	return result
}

func (i *Identity) Matches(author Author) bool {
	email := strings.TrimSpace(author.Email)
	if email == "" {
		return false
	}

	email = i.normalize(email)

	return lo.SomeBy(i.emails, func(e string) bool {
		return strings.Contains(email, e)
	})
}

func (i *Identity) normalize(email string) string {
	if !i.ignoreCase {
		return email
	}

	// A Caser keeps state, so each call gets its own.
	return cases.Fold().String(email)
}
