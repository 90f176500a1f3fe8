package model

// Privilege codes carried in admin tokens.
const (
	PrivilegeProductCreate = "product:create"
	PrivilegeProductUpdate = "product:update"
	PrivilegeProductDelete = "product:delete"
)

// AdminPrivileges is what a successful admin login is granted.
var AdminPrivileges = []string{
	PrivilegeProductCreate,
	PrivilegeProductUpdate,
	PrivilegeProductDelete,
}
