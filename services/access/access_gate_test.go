package accessservice

import (
	"ecotrack/models"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	gate := NewGate()

	student := models.NewActor(uuid.New(), "s1", models.NewRoleSet(models.StudentRole))
	itStaff := models.NewActor(uuid.New(), "s2", models.NewRoleSet(models.ITStaffRole))
	officer := models.NewActor(uuid.New(), "s3", models.NewRoleSet(models.EnvironmentalOfficerRole))
	admin := models.NewActor(uuid.New(), "s4", models.NewRoleSet(models.AdminRole))
	anonymous := models.Actor{}

	testCases := []struct {
		name           string
		actor          models.Actor
		action         models.Action
		resource       models.Resource
		expectedReason models.DenyReason
	}{
		{name: "anonymous never passes", actor: anonymous, action: models.ActionCreateDisposal, expectedReason: models.ReasonNotAuthenticated},
		{name: "student cannot register device", actor: student, action: models.ActionCreateDevice, expectedReason: models.ReasonStaffRequired},
		{name: "it staff registers device", actor: itStaff, action: models.ActionCreateDevice},
		{name: "officer edits device", actor: officer, action: models.ActionEditDevice},
		{name: "it staff cannot delete device", actor: itStaff, action: models.ActionDeleteDevice, expectedReason: models.ReasonAdminRequired},
		{name: "admin deletes device", actor: admin, action: models.ActionDeleteDevice},
		{name: "student requests disposal", actor: student, action: models.ActionCreateDisposal},
		{name: "student edits own profile", actor: student, action: models.ActionEditProfile},
		{name: "student cannot review", actor: student, action: models.ActionReviewDisposal, resource: models.OwnedBy(uuid.New()), expectedReason: models.ReasonStaffRequired},
		{name: "staff reviews others' request", actor: itStaff, action: models.ActionReviewDisposal, resource: models.OwnedBy(student.UserID)},
		{name: "self approval denied even for admin", actor: admin, action: models.ActionReviewDisposal, resource: models.OwnedBy(admin.UserID), expectedReason: models.ReasonSelfApproval},
		{name: "it staff cannot complete", actor: itStaff, action: models.ActionCompleteDisposal, expectedReason: models.ReasonOfficerRequired},
		{name: "officer completes", actor: officer, action: models.ActionCompleteDisposal},
		{name: "admin completes", actor: admin, action: models.ActionCompleteDisposal},
		{name: "owner reads own request", actor: student, action: models.ActionReadDisposal, resource: models.OwnedBy(student.UserID)},
		{name: "student cannot read others' request", actor: student, action: models.ActionReadDisposal, resource: models.OwnedBy(uuid.New()), expectedReason: models.ReasonNotOwner},
		{name: "staff reads any request", actor: itStaff, action: models.ActionReadDisposal, resource: models.OwnedBy(uuid.New())},
		{name: "student cannot read devices", actor: student, action: models.ActionReadDevice, expectedReason: models.ReasonStaffRequired},
		{name: "student cannot read recycling records", actor: student, action: models.ActionReadRecycling, expectedReason: models.ReasonStaffRequired},
		{name: "officer cannot manage roles", actor: officer, action: models.ActionManageRoles, expectedReason: models.ReasonAdminRequired},
		{name: "admin manages roles", actor: admin, action: models.ActionManageRoles},
		{name: "unknown action denied", actor: admin, action: models.Action("launch_rocket"), expectedReason: models.ReasonAdminRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := gate.Authorize(tc.actor, tc.action, tc.resource)
			if tc.expectedReason == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrUnauthorized)
			var denied *models.AccessDenied
			require.True(t, errors.As(err, &denied))
			assert.Equal(t, tc.expectedReason, denied.Reason)
			assert.Equal(t, tc.action, denied.Action)
		})
	}
}

func TestAuthorizeMultiRole(t *testing.T) {
	gate := NewGate()
	both := models.NewActor(uuid.New(), "s", models.NewRoleSet(models.StudentRole, models.EnvironmentalOfficerRole))

	assert.NoError(t, gate.Authorize(both, models.ActionCompleteDisposal, models.Resource{}))
	assert.NoError(t, gate.Authorize(both, models.ActionCreateDevice, models.Resource{}))
	assert.Error(t, gate.Authorize(both, models.ActionDeleteDevice, models.Resource{}))
}
