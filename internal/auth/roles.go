package auth

import "curateurs-backoffice/internal/domain"

var contributorPermissions = []string{
	domain.PermReadArticles,
	domain.PermCreateArticles,
	domain.PermUpdateArticles,
	domain.PermValidateArticles,
}

var adminPermissions = []string{
	domain.PermReadArticles,
	domain.PermCreateArticles,
	domain.PermUpdateArticles,
	domain.PermValidateArticles,
	domain.PermShipArticles,
	domain.PermDeleteArticles,
	domain.PermCreateUser,
	domain.PermUpdateUser,
	domain.PermDeleteUser,
	domain.PermEnableMaintenance,
}

// PermissionsForRole returns a fresh copy of the permission set granted to role.
// Unknown roles get the contributor set.
func PermissionsForRole(role domain.Role) []string {
	src := contributorPermissions
	if role == domain.RoleAdmin {
		src = adminPermissions
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
