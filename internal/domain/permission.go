package domain

// Permissions are "<verb>:<resource>" strings.
const (
	PermReadArticles      = "read:articles"
	PermCreateArticles    = "create:articles"
	PermUpdateArticles    = "update:articles"
	PermValidateArticles  = "validate:articles"
	PermShipArticles      = "ship:articles"
	PermDeleteArticles    = "delete:articles"
	PermManageArticles    = "manage:articles"
	PermCreateUser        = "create:user"
	PermUpdateUser        = "update:user"
	PermDeleteUser        = "delete:user"
	PermManageUser        = "manage:user"
	PermEnableMaintenance = "enable:maintenance"
)
