package models

import "github.com/google/uuid"

// Actor is the caller of a core operation: who is signed in, in which
// session, holding which roles. It is passed explicitly into every call.
type Actor struct {
	UserID    uuid.UUID
	SessionID string
	Roles     RoleSet
}

func NewActor(userID uuid.UUID, sessionID string, roles RoleSet) Actor {
	return Actor{UserID: userID, SessionID: sessionID, Roles: roles.WithDefault()}
}

func (a Actor) Authenticated() bool {
	return a.UserID != uuid.Nil
}

func (a Actor) IsStaff() bool {
	return a.Roles.IsStaff()
}

func (a Actor) HasRole(role Role) bool {
	return a.Roles.Has(role)
}

type Action string

const (
	ActionCreateDevice     Action = "create_device"
	ActionEditDevice       Action = "edit_device"
	ActionDeleteDevice     Action = "delete_device"
	ActionReadDevice       Action = "read_device"
	ActionCreateDisposal   Action = "create_disposal_request"
	ActionReviewDisposal   Action = "review_disposal_request"
	ActionCompleteDisposal Action = "complete_disposal_request"
	ActionReadDisposal     Action = "read_disposal_request"
	ActionReadRecycling    Action = "read_recycling_record"
	ActionManageRoles      Action = "manage_roles"
	ActionEditProfile      Action = "edit_profile"
)

// Resource describes what an action targets. OwnerID is the requester of a
// disposal request; it is uuid.Nil when ownership does not matter.
type Resource struct {
	OwnerID uuid.UUID
}

func OwnedBy(owner uuid.UUID) Resource {
	return Resource{OwnerID: owner}
}
