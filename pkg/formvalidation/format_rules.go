package formvalidation

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// Email accepts a bare RFC 5322 address whose domain has at least one dot.
func Email() Rule {
	return textRule(validEmail, "must be a valid email address")
}

// URL accepts absolute URLs with a scheme and host.
func URL() Rule {
	return textRule(func(s string) bool {
		u, err := url.ParseRequestURI(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	}, "must be a valid URL")
}

// Pattern requires the value to match the regular expression. It panics if
// pattern does not compile; use ParseRules for untrusted input.
func Pattern(pattern, description string) Rule {
	re := regexp.MustCompile(pattern)
	return textRule(re.MatchString, fmt.Sprintf("must match %s pattern", description))
}

// textRule skips empty values and fails non-text values.
func textRule(ok func(string) bool, message string) Rule {
	return func(value any) string {
		if isEmpty(value) {
			return ""
		}
		s, isText := asString(value)
		if !isText {
			return msgInvalidType
		}
		if !ok(strings.TrimSpace(s)) {
			return message
		}
		return ""
	}
}

func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
