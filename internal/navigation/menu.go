// Package navigation derives the editor menu from a session's role and permissions.
package navigation

import (
	"strings"

	"curateurs-backoffice/internal/domain"
)

// MenuItem is one entry of the editor navigation bar.
type MenuItem struct {
	Permission string `json:"permission"`
	Label      string `json:"label"`
	Key        string `json:"key"`
	Path       string `json:"path"`
	Icon       string `json:"icon"`
}

type entry struct {
	permission string
	// always entries render for the role whether or not the permission is held.
	always bool
}

type template struct {
	entries []entry
	hidden  []string
}

var adminTemplate = template{
	entries: []entry{
		{permission: domain.PermCreateArticles},
		{permission: domain.PermUpdateArticles},
		{permission: domain.PermManageArticles, always: true},
		{permission: domain.PermCreateUser},
		{permission: domain.PermManageUser, always: true},
		{permission: domain.PermEnableMaintenance},
	},
	hidden: []string{
		domain.PermReadArticles,
		domain.PermUpdateUser,
		domain.PermDeleteUser,
		domain.PermDeleteArticles,
		domain.PermValidateArticles,
		domain.PermShipArticles,
	},
}

var contributorTemplate = template{
	entries: []entry{
		{permission: domain.PermCreateArticles},
		{permission: domain.PermManageArticles, always: true},
	},
	hidden: []string{
		domain.PermReadArticles,
		domain.PermUpdateArticles,
		domain.PermValidateArticles,
	},
}

var icons = map[string]string{
	domain.PermCreateArticles:    "pen-line",
	domain.PermUpdateArticles:    "square-pen",
	domain.PermManageArticles:    "folder-cog",
	domain.PermCreateUser:        "user-round-plus",
	domain.PermManageUser:        "user-cog",
	domain.PermEnableMaintenance: "wifi-off",
}

const defaultIcon = "ban"

func templateFor(role domain.Role) template {
	if role == domain.RoleAdmin {
		return adminTemplate
	}
	return contributorTemplate
}

// BuildMenu returns the ordered menu for role. Template entries come first, in
// template order; other held permissions follow in input order. Each
// permission renders once. It returns nil when permissions is empty. The result depends only on its arguments.
func BuildMenu(role domain.Role, permissions []string) []MenuItem {
	if len(permissions) == 0 {
		return nil
	}

	tpl := templateFor(role)

	held := make(map[string]bool, len(permissions))
	for _, p := range permissions {
		held[p] = true
	}
	skip := make(map[string]bool, len(tpl.hidden)+len(tpl.entries))
	for _, p := range tpl.hidden {
		skip[p] = true
	}

	var menu []MenuItem
	for _, e := range tpl.entries {
		skip[e.permission] = true
		if e.always || held[e.permission] {
			menu = append(menu, newItem(e.permission))
		}
	}

	for _, p := range permissions {
		// read:articles never renders, whatever the role.
		if skip[p] || p == domain.PermReadArticles {
			continue
		}
		skip[p] = true
		menu = append(menu, newItem(p))
	}

	return menu
}

func newItem(permission string) MenuItem {
	key := strings.ReplaceAll(permission, ":", "")
	icon, ok := icons[permission]
	if !ok {
		icon = defaultIcon
	}
	return MenuItem{
		Permission: permission,
		Label:      strings.ReplaceAll(permission, ":", " "),
		Key:        key,
		Path:       "/editor/" + key,
		Icon:       icon,
	}
}
