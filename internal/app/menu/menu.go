package menu

import (
	_ "embed"
	"fmt"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/permission"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

// Item is a navigation entry. Entries without a URL only group their children.
type Item struct {
	Title       string   `yaml:"title" json:"title"`
	URL         string   `yaml:"url,omitempty" json:"url,omitempty"`
	Icon        string   `yaml:"icon,omitempty" json:"icon,omitempty"`
	Permissions []string `yaml:"permissions" json:"permissions"`
	Children    []Item   `yaml:"children,omitempty" json:"children,omitempty"`
}

type Menu struct {
	items  []Item
	routes RouteMap
}

// Load parses a YAML menu tree and derives its route map.
func Load(data []byte) (*Menu, error) {
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("menu.Load: %w", err)
	}

	routes, err := BuildRouteMap(items)
	if err != nil {
		return nil, fmt.Errorf("menu.Load: %w", err)
	}

	return &Menu{items: items, routes: routes}, nil
}

// Default returns the menu compiled into the binary.
func Default() (*Menu, error) {
	m, err := Load(defaultMenu)
	if err != nil {
		return nil, fmt.Errorf("menu.Default: %w", err)
	}
	return m, nil
}

func (m *Menu) Items() []Item {
	return m.items
}

func (m *Menu) Routes() RouteMap {
	return m.routes
}

// Visible returns the part of the tree the session may see. Groups left without visible
// children disappear.
func (m *Menu) Visible(s *auth.Session) []Item {
	return visible(m.items, s)
}

func visible(items []Item, s *auth.Session) []Item {
	return lo.FilterMap(items, func(item Item, _ int) (Item, bool) {
		if !permission.CheckPermission(s, item.Permissions) {
			return Item{}, false
		}
		children := visible(item.Children, s)
		if item.URL == "" && len(children) == 0 {
			return Item{}, false
		}
		item.Children = children
		return item, true
	})
}
