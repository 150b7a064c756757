// Package lifecycle holds the pure status transition guards for projects and
// tasks. The functions decide; persistence and locking belong to the
// repositories that call them.
package lifecycle

import "github.com/ninniks/ProjectManagement/internal/core/domain"

// ProjectTransition applies the project status table. pendingTasks is the
// number of owned tasks that are open or blocked at decision time.
//
// Requesting the current status is an idempotent success and implies no
// write. Closing succeeds only when no owned task is pending. Reopening a
// closed project is always refused.
func ProjectTransition(current, target domain.ProjectStatus, pendingTasks int) (domain.ProjectStatus, bool) {
	if target == current {
		return current, true
	}

	switch {
	case current == domain.ProjectStatusOpen && target == domain.ProjectStatusClosed:
		if pendingTasks > 0 {
			return current, false
		}
		return domain.ProjectStatusClosed, true
	default:
		// Covers closed -> open.
		return current, false
	}
}
