package httpx

import (
	"net/http"
	"net/url"
)

const QueryCallbackURL = "callback_url"

// RedirectToLogin sends the browser to the login page and remembers where it was heading.
func RedirectToLogin(w http.ResponseWriter, r *http.Request, loginPath string) {
	target := loginPath
	if r.Method == http.MethodGet && r.URL.Path != "/" {
		q := url.Values{}
		q.Set(QueryCallbackURL, r.URL.RequestURI())
		target = loginPath + "?" + q.Encode()
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// SafeCallback returns target when it is a local absolute path, otherwise fallback.
func SafeCallback(target, fallback string) string {
	if target == "" {
		return fallback
	}
	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || u.Host != "" || len(u.Path) == 0 || u.Path[0] != '/' {
		return fallback
	}
	if len(target) > 1 && (target[1] == '/' || target[1] == '\\') {
		return fallback
	}
	return u.RequestURI()
}
