package markdown

import (
	"net/url"
	"path"
	"strings"
)

// ImagesPrefix is the path prefix of images shipped with the site content.
const ImagesPrefix = "/images/"

// RewriteImageURL prefixes site images with baseURL so they resolve when
// the site is served from a subpath. It reports false, leaving the
// reference untouched, when no base is active or u is not a site image.
func RewriteImageURL(baseURL string, u *url.URL) (string, bool) {
	if baseURL == "" || u == nil {
		return "", false
	}
	if u.Scheme != "" || u.Host != "" || !strings.HasPrefix(u.Path, ImagesPrefix) {
		return "", false
	}
	out := path.Join(baseURL, u.Path)
	if strings.HasSuffix(u.Path, "/") {
		out += "/"
	}
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		out += "#" + u.EscapedFragment()
	}
	return out, true
}
