// Package policy holds the static route authorization table. Every inbound
// request is evaluated against it once, before the handler runs: public
// routes bypass authentication entirely, role-gated routes require the
// caller's role to be listed, and anything else needs any authenticated
// role. Rules are ordered most-specific first; the first match wins.
package policy

import "strings"

// Rule maps one (method, path pattern) pair to its access requirement.
// Pattern segments: a literal must match exactly, "*" matches exactly one
// segment, a trailing "**" matches zero or more segments.
type Rule struct {
	Method  string // empty matches any method
	Pattern string
	Public  bool
	Roles   []string // empty with Public=false means any authenticated role
}

// Verdict is the outcome of evaluating a request against the table.
type Verdict struct {
	Public bool
	Roles  []string
}

// Allows reports whether the given role satisfies the verdict. Public
// verdicts allow everyone; an empty role list allows any authenticated role.
func (v Verdict) Allows(role string) bool {
	if v.Public {
		return true
	}
	if len(v.Roles) == 0 {
		return role != ""
	}
	for _, r := range v.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type Table []Rule

// Evaluate returns the verdict of the first matching rule. Requests that
// match no rule require any authenticated role.
func (t Table) Evaluate(method, path string) Verdict {
	for _, rule := range t {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if matchPattern(rule.Pattern, path) {
			return Verdict{Public: rule.Public, Roles: rule.Roles}
		}
	}
	return Verdict{}
}

func matchPattern(pattern, path string) bool {
	ps := split(pattern)
	xs := split(path)

	for i, seg := range ps {
		if seg == "**" {
			return true // trailing wildcard swallows the rest, including nothing
		}
		if i >= len(xs) {
			return false
		}
		if seg != "*" && seg != xs[i] {
			return false
		}
	}
	return len(ps) == len(xs)
}

func split(s string) []string {
	s = strings.Trim(s, "/")
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}
