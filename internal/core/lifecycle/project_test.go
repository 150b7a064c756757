package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ninniks/ProjectManagement/internal/core/domain"
	"github.com/ninniks/ProjectManagement/internal/core/lifecycle"
)

func TestProjectTransition(t *testing.T) {
	tests := []struct {
		name         string
		current      domain.ProjectStatus
		target       domain.ProjectStatus
		pendingTasks int
		wantStatus   domain.ProjectStatus
		wantOK       bool
	}{
		{
			name:       "close succeeds when no task is pending",
			current:    domain.ProjectStatusOpen,
			target:     domain.ProjectStatusClosed,
			wantStatus: domain.ProjectStatusClosed,
			wantOK:     true,
		},
		{
			name:         "close refused with one pending task",
			current:      domain.ProjectStatusOpen,
			target:       domain.ProjectStatusClosed,
			pendingTasks: 1,
			wantStatus:   domain.ProjectStatusOpen,
			wantOK:       false,
		},
		{
			name:         "close refused with several pending tasks",
			current:      domain.ProjectStatusOpen,
			target:       domain.ProjectStatusClosed,
			pendingTasks: 2,
			wantStatus:   domain.ProjectStatusOpen,
			wantOK:       false,
		},
		{
			name:       "reopen always refused",
			current:    domain.ProjectStatusClosed,
			target:     domain.ProjectStatusOpen,
			wantStatus: domain.ProjectStatusClosed,
			wantOK:     false,
		},
		{
			name:         "reopen refused even without pending tasks",
			current:      domain.ProjectStatusClosed,
			target:       domain.ProjectStatusOpen,
			pendingTasks: 0,
			wantStatus:   domain.ProjectStatusClosed,
			wantOK:       false,
		},
		{
			name:       "open to open is an idempotent success",
			current:    domain.ProjectStatusOpen,
			target:     domain.ProjectStatusOpen,
			wantStatus: domain.ProjectStatusOpen,
			wantOK:     true,
		},
		{
			name:       "closed to closed is an idempotent success",
			current:    domain.ProjectStatusClosed,
			target:     domain.ProjectStatusClosed,
			wantStatus: domain.ProjectStatusClosed,
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := lifecycle.ProjectTransition(tt.current, tt.target, tt.pendingTasks)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantStatus, next)
		})
	}
}

func TestTaskTransition_ClosedProjectFreezesEveryTarget(t *testing.T) {
	for _, target := range []domain.TaskStatus{
		domain.TaskStatusOpen,
		domain.TaskStatusBlocked,
		domain.TaskStatusClosed,
	} {
		next, ok := lifecycle.TaskTransition(domain.ProjectStatusClosed, domain.TaskStatusOpen, target)
		require.False(t, ok, "target %s must be refused", target)
		require.Equal(t, domain.TaskStatusOpen, next)
	}
}

func TestTaskTransition_OpenProjectAcceptsEveryTarget(t *testing.T) {
	for _, target := range []domain.TaskStatus{
		domain.TaskStatusOpen,
		domain.TaskStatusBlocked,
		domain.TaskStatusClosed,
	} {
		next, ok := lifecycle.TaskTransition(domain.ProjectStatusOpen, domain.TaskStatusBlocked, target)
		require.True(t, ok, "target %s must be accepted", target)
		require.Equal(t, target, next)
	}
}
