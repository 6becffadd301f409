package domain_test

import (
	"testing"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRequestStatusTransitions(t *testing.T) {
	assert.True(t, domain.RequestPending.CanTransitionTo(domain.RequestApproved))
	assert.True(t, domain.RequestPending.CanTransitionTo(domain.RequestRejected))

	// Decisions are terminal.
	assert.False(t, domain.RequestApproved.CanTransitionTo(domain.RequestRejected))
	assert.False(t, domain.RequestApproved.CanTransitionTo(domain.RequestPending))
	assert.False(t, domain.RequestRejected.CanTransitionTo(domain.RequestApproved))
	assert.False(t, domain.RequestPending.CanTransitionTo(domain.RequestPending))
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, domain.RoleAdmin.IsValid())
	assert.True(t, domain.RoleUser.IsValid())
	assert.False(t, domain.Role("superuser").IsValid())
	assert.False(t, domain.Role("").IsValid())
}
