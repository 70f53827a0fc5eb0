// Package policy holds the per-object access predicates. Reads are always
// allowed to authenticated callers; these functions only gate mutations.
package policy

import (
	"github.com/joinboard/join-api/internal/models"
)

// CanModifyUser allows a user to mutate or delete only their own account.
func CanModifyUser(actorID uint64, target *models.User) bool {
	return target.ID == actorID
}

// CanModifyContact allows mutating a contact that is unbound, or bound to the
// acting user. A contact bound to someone else is immutable to everyone else.
func CanModifyContact(actorID uint64, contact *models.Contact) bool {
	return contact.ActiveUserID == nil || *contact.ActiveUserID == actorID
}
