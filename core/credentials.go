package core

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// basicPrefix is the only authorization scheme the Basic strategy accepts.
const basicPrefix = "Basic "

// Parse failures below deliberately resolve to empty values instead of
// errors. The HTTP layer gets one uniform rejection path and cannot tell a
// malformed header apart from a failed credential check.

// ExtractBasicToken returns the token portion of a "Basic <token>" header.
// Surrounding whitespace is trimmed first; any other header shape, including
// other schemes, yields "".
func ExtractBasicToken(header string) string {
	header = strings.TrimSpace(header)
	if !strings.HasPrefix(header, basicPrefix) {
		return ""
	}
	return header[len(basicPrefix):]
}

// DecodeToken base64-decodes a Basic token with strict validation. A
// non-canonical alphabet, bad padding, or a payload that is not valid UTF-8
// yields "".
func DecodeToken(token string) string {
	if token == "" {
		return ""
	}
	decoded, err := base64.StdEncoding.Strict().DecodeString(token)
	if err != nil {
		return ""
	}
	if !utf8.Valid(decoded) {
		return ""
	}
	return string(decoded)
}

// SplitCredentials splits a decoded "<user>:<password>" pair on the FIRST
// colon only, so the password may itself contain colons. An empty user,
// empty password, or missing colon yields ("", "").
func SplitCredentials(decoded string) (string, string) {
	decoded = strings.TrimSpace(decoded)
	user, password, ok := strings.Cut(decoded, ":")
	if !ok || user == "" || password == "" {
		return "", ""
	}
	return user, password
}

// ExtractSessionToken reads the named session cookie. An absent cookie or an
// unconfigured cookie name yields "".
func ExtractSessionToken(cookies map[string]string, cookieName string) string {
	if cookieName == "" || cookies == nil {
		return ""
	}
	return cookies[cookieName]
}
