package cookie

import (
	"net/url"
	"strings"
	"time"
)

const (
	pairSeparator  = "; "
	valueSeparator = "="
)

// IStore is the credential store the endpoint layer reads its bearer token from
// and the login flow writes its session cookies to.
type IStore interface {
	Get(name string) (string, bool)
	Set(name, value string, attrs Attributes)
	Delete(name string)
}

type Attributes struct {
	Path     string
	SameSite string
	Secure   bool
	Expires  time.Time
}

// DefaultAttributes are session-lifetime cookie attributes: no expiry is set.
func DefaultAttributes() Attributes {
	return Attributes{
		Path:     "/",
		SameSite: "Lax",
		Secure:   true,
	}
}

// ExpiredAttributes mark a cookie for removal by the user agent.
func ExpiredAttributes() Attributes {
	attrs := DefaultAttributes()
	attrs.Expires = time.Unix(0, 0).UTC()

	return attrs
}

func (a Attributes) String() string {
	var sb strings.Builder
	if a.Path != "" {
		sb.WriteString("path=" + a.Path + pairSeparator)
	}
	if a.SameSite != "" {
		sb.WriteString("SameSite=" + a.SameSite + pairSeparator)
	}
	if a.Secure {
		sb.WriteString("Secure" + pairSeparator)
	}
	if !a.Expires.IsZero() {
		sb.WriteString("expires=" + a.Expires.UTC().Format(time.RFC1123) + pairSeparator)
	}

	return strings.TrimSuffix(sb.String(), " ")
}

// GetCookieValue looks key up in a document.cookie style header ("a=1; b=2").
// The first matching name wins. The value is URI-component decoded; a value
// that cannot be decoded is returned as is.
func GetCookieValue(header, key string) (string, bool) {
	if header == "" {
		return "", false
	}

	for _, pair := range strings.Split(header, pairSeparator) {
		parts := strings.Split(pair, valueSeparator)
		if parts[0] != key {
			continue
		}

		var value string
		if len(parts) > 1 {
			value = parts[1]
		}

		decoded, err := url.PathUnescape(value)
		if err != nil {
			return value, true
		}

		return decoded, true
	}

	return "", false
}

// EncodeURIComponent escapes s the way browsers do for encodeURIComponent.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponentChar(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0f])
	}

	return sb.String()
}

func isUnreservedComponentChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) >= 0
}
