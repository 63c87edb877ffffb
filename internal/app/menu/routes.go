package menu

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// RouteMap maps a normalized URL path to the permissions its page requires.
type RouteMap map[string][]string

// BuildRouteMap flattens the tree. A child inherits nothing from its parent; it lists its own
// permissions. The same URL may not appear twice.
func BuildRouteMap(items []Item) (RouteMap, error) {
	routes := make(RouteMap)
	if err := flatten(items, routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func flatten(items []Item, routes RouteMap) error {
	for _, item := range items {
		if item.URL != "" {
			p := NormalizePath(item.URL)
			if _, ok := routes[p]; ok {
				return fmt.Errorf("duplicate menu route %q", p)
			}
			routes[p] = lo.Uniq(append([]string{}, item.Permissions...))
		}
		if err := flatten(item.Children, routes); err != nil {
			return err
		}
	}
	return nil
}

// NormalizePath drops the query, cleans the path and strips the trailing slash.
func NormalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Lookup returns the permissions of the exact route or of the closest menu ancestor, so
// /branches/12/edit resolves through /branches. The root only matches itself.
func (r RouteMap) Lookup(p string) ([]string, bool) {
	p = NormalizePath(p)
	if perms, ok := r[p]; ok {
		return perms, true
	}
	for p != "/" {
		p = path.Dir(p)
		if p == "/" {
			break
		}
		if perms, ok := r[p]; ok {
			return perms, true
		}
	}
	return nil, false
}

func (r RouteMap) Paths() []string {
	paths := lo.Keys(r)
	slices.Sort(paths)
	return paths
}
