// Package access decides whether a user may view a content item. The check
// is advisory: the API enforces the same rule authoritatively.
package access

import "lmsweb/models"

// IsOwner reports whether the user is the instructor who owns the module.
func IsOwner(user models.User, module models.Module) bool {
	return user.IsInstructor() && user.ID != "" && module.Instructor.ID == user.ID
}

// CanAccess reports whether a content item is viewable: the user owns the
// module, holds an enrollment in it, or the item is a free preview.
func CanAccess(user models.User, module models.Module, enrolled bool, item models.Content) bool {
	if IsOwner(user, module) {
		return true
	}
	if enrolled {
		return true
	}
	return item.IsFree
}
