package jsonschema

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// builtinFormats returns the format checks a Compiler starts with,
// adapted from this package's earlier struct-based validator onto *Value
// instances. Each check returns true for non-string instances, so it can
// be wired into compileFormat without a separate type guard.
func builtinFormats() map[string]FormatFunc {
	return map[string]FormatFunc{
		"date-time": isDateTime,
		"date":      isDate,
		"time":      isTime,
		"hostname":  isHostname,
		"email":     isEmail,
		"ipv4":      isIPv4,
		"ipv6":      isIPv6,
		"uri":       isURI,
		"uuid":      isUUID,
		"regex":     isRegexFormat,
	}
}

func asString(v *Value) (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.Str(), true
}

func isDateTime(v *Value) bool {
	s, ok := asString(v)
	if !ok {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func isDate(v *Value) bool {
	s, ok := asString(v)
	if !ok {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isTime(v *Value) bool {
	s, ok := asString(v)
	if !ok {
		return true
	}
	_, err := time.Parse("15:04:05Z07:00", s)
	return err == nil
}

// isHostname follows RFC 1034 section 3.1 and RFC 1123 section 2.1: labels
// of 1-63 characters, letters/digits/hyphens, no leading or trailing
// hyphen, joined by dots to a maximum of 253 characters.
func isHostname(v *Value) bool {
	s, ok := asString(v)
	if !ok {
		return true
	}
	s = strings.TrimSuffix(s, ".")
	if len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if len(label) < 1 || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, c := range label {
			ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-'
			if !ok {
				return false
			}
		}
	}
	return true
}

func isEmail(v *Value) bool {
	s, ok := asString(v)
	if !ok {
		return true
	}
	if len(s) > 254 {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

func isIPv4(v *Value) bool {
	s, ok := asString(v)
	if !ok {
		return true
	}
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		n, err := strconv.Atoi(g)
		if err != nil || n < 0 || n > 255 {
			return false
		}
		if n != 0 && g[0] == '0' {
			return false
		}
	}
	return true
}

func isIPv6(v *Value) bool {
	s, ok := asString(v)
	if !ok {
		return true
	}
	if !strings.Contains(s, ":") {
		return false
	}
	return net.ParseIP(s) != nil
}

func isURI(v *Value) bool {
	s, ok := asString(v)
	if !ok {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

func isUUID(v *Value) bool {
	s, ok := asString(v)
	if !ok {
		return true
	}
	groups := []int{8, 4, 4, 4, 12}
	for i, n := range groups {
		if len(s) < n {
			return false
		}
		for j := 0; j < n; j++ {
			c := s[j]
			hex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
			if !hex {
				return false
			}
		}
		s = s[n:]
		if i == len(groups)-1 {
			break
		}
		if len(s) == 0 || s[0] != '-' {
			return false
		}
		s = s[1:]
	}
	return len(s) == 0
}

func isRegexFormat(v *Value) bool {
	s, ok := asString(v)
	if !ok {
		return true
	}
	_, err := regexp.Compile(s)
	return err == nil
}
