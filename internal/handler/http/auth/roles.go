// Package auth provides JWT issuance and role-based access control for the
// review endpoints. Moderators work under /moderator, analysts under /analyst
// and /rejected, and admins can reach everything.
package auth

import (
	"slices"
	"strings"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleAnalyst   = "analyst"
)

// Permission lists the methods and path patterns a role may use.
// "/*" matches every path; "/analyst/*" matches /analyst and anything below it.
type Permission struct {
	AllowedMethods []string
	AllowedPaths   []string
}

// RolePermissions maps each role to its allowed permissions.
var RolePermissions = map[string]Permission{
	RoleAdmin: {
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedPaths:   []string{"/*"},
	},
	RoleModerator: {
		AllowedMethods: []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowedPaths:   []string{"/moderator/*"},
	},
	RoleAnalyst: {
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedPaths:   []string{"/analyst/*", "/rejected"},
	},
}

// IsKnownRole reports whether role has an entry in RolePermissions.
func IsKnownRole(role string) bool {
	_, ok := RolePermissions[role]
	return ok
}

// checkRolePermission reports whether role may call method on path.
// Unknown and empty roles are denied.
func checkRolePermission(role, method, path string) bool {
	perm, ok := RolePermissions[role]
	if !ok {
		return false
	}
	if !slices.Contains(perm.AllowedMethods, method) {
		return false
	}
	return matchesPathPattern(path, perm.AllowedPaths)
}

func matchesPathPattern(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "/*" {
			return true
		}
		if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}
