package qrgen

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/prasetyowira/qrgen/constant"
)

// domainPattern matches one or more [A-Za-z0-9-] labels each followed by a
// dot, then an alphabetic top-level label of at least two characters.
var domainPattern = regexp.MustCompile(`^([A-Za-z0-9-]+\.)+[A-Za-z]{2,}$`)

// NormalizeURL returns raw unchanged when it already carries an http or https
// scheme, otherwise it prefixes https://. The input is not trimmed or escaped.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, constant.PrefixHTTP) || strings.HasPrefix(raw, constant.PrefixHTTPS) {
		return raw
	}
	return constant.PrefixHTTPS + raw
}

// IsValidDomain reports whether host is a dotted domain name ending in an
// alphabetic label. IP literals, ports, underscores and IDNs are rejected.
func IsValidDomain(host string) bool {
	if strings.HasPrefix(host, "-") {
		return false
	}
	return domainPattern.MatchString(host)
}

// IsValidURL reports whether u is an http(s) URL whose host is a valid domain.
// The host must stay valid after NormalizeDomain, since that is the value
// the artifact is named after.
func IsValidURL(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	if parsed.Scheme != constant.SchemeHTTP && parsed.Scheme != constant.SchemeHTTPS {
		return false
	}
	if parsed.Host == "" || parsed.User != nil {
		return false
	}
	return IsValidDomain(parsed.Host) && IsValidDomain(NormalizeDomain(parsed.Host))
}

// NormalizeDomain lower-cases domain and removes a single leading "www." label.
func NormalizeDomain(domain string) string {
	return strings.TrimPrefix(strings.ToLower(domain), constant.PrefixWWW)
}

// DomainToFilename maps a domain to its artifact file name,
// e.g. "sub.example.com" -> "sub_example_com.png".
func DomainToFilename(domain string) string {
	return strings.ReplaceAll(domain, constant.DomainSeparator, constant.FilenameSeparator) + constant.ArtifactExt
}

// DomainFromURL returns the normalized domain of a canonical URL.
func DomainFromURL(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	return NormalizeDomain(parsed.Host), nil
}
