package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the client's language preference.
	LangCookieName = "cc_lang"
)

// ResolveTag determines the best locale for the request: explicit lang query
// parameter first, then the preference cookie, then Accept-Language, then
// the default.
func ResolveTag(r *http.Request) language.Tag {
	return ResolveTagDefault(r, DefaultTag())
}

// ResolveTagDefault is ResolveTag with a caller-supplied fallback, for
// servers configured with their own default locale.
func ResolveTagDefault(r *http.Request, fallback language.Tag) language.Tag {
	if r == nil {
		return fallback
	}

	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, ok := ParseTag(v); ok {
			return tag
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return MatchTags(tags)
		}
	}

	return fallback
}
