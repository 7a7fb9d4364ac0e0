package accessservice

import (
	"ecotrack/models"
)

// Gate decides whether an actor may perform an action on a resource. It
// reads only the actor's role set and the resource owner, and has no side
// effects.
type Gate interface {
	Authorize(actor models.Actor, action models.Action, res models.Resource) error
}

type rule func(actor models.Actor, res models.Resource) models.DenyReason

type policyGate struct {
	rules map[models.Action]rule
}

func NewGate() Gate {
	return &policyGate{
		rules: map[models.Action]rule{
			models.ActionCreateDevice:     requireStaff,
			models.ActionEditDevice:       requireStaff,
			models.ActionReadDevice:       requireStaff,
			models.ActionReadRecycling:    requireStaff,
			models.ActionDeleteDevice:     requireAdmin,
			models.ActionManageRoles:      requireAdmin,
			models.ActionCreateDisposal:   allowAuthenticated,
			models.ActionEditProfile:      allowAuthenticated,
			models.ActionReviewDisposal:   requireReviewer,
			models.ActionCompleteDisposal: requireOfficer,
			models.ActionReadDisposal:     requireOwnerOrStaff,
		},
	}
}

// Authorize returns nil or a *models.AccessDenied. Unknown actions are denied.
func (g *policyGate) Authorize(actor models.Actor, action models.Action, res models.Resource) error {
	if !actor.Authenticated() {
		return models.Deny(action, models.ReasonNotAuthenticated)
	}
	check, ok := g.rules[action]
	if !ok {
		return models.Deny(action, models.ReasonAdminRequired)
	}
	if reason := check(actor, res); reason != "" {
		return models.Deny(action, reason)
	}
	return nil
}

func allowAuthenticated(models.Actor, models.Resource) models.DenyReason {
	return ""
}

func requireStaff(actor models.Actor, _ models.Resource) models.DenyReason {
	if !actor.IsStaff() {
		return models.ReasonStaffRequired
	}
	return ""
}

func requireAdmin(actor models.Actor, _ models.Resource) models.DenyReason {
	if !actor.HasRole(models.AdminRole) {
		return models.ReasonAdminRequired
	}
	return ""
}

// requireReviewer: staff, and never the requester of the request under review.
func requireReviewer(actor models.Actor, res models.Resource) models.DenyReason {
	if !actor.IsStaff() {
		return models.ReasonStaffRequired
	}
	if res.OwnerID == actor.UserID {
		return models.ReasonSelfApproval
	}
	return ""
}

func requireOfficer(actor models.Actor, _ models.Resource) models.DenyReason {
	if !actor.Roles.HasAny(models.EnvironmentalOfficerRole, models.AdminRole) {
		return models.ReasonOfficerRequired
	}
	return ""
}

func requireOwnerOrStaff(actor models.Actor, res models.Resource) models.DenyReason {
	if res.OwnerID == actor.UserID || actor.IsStaff() {
		return ""
	}
	return models.ReasonNotOwner
}
