package lifecycle

import "github.com/ninniks/ProjectManagement/internal/core/domain"

// TaskTransition applies the task status rule: a closed project freezes the
// status of every task it owns. While the project stays open any target
// status is accepted; cross-task consistency is enforced when the project
// itself closes, not here.
func TaskTransition(projectStatus domain.ProjectStatus, current, target domain.TaskStatus) (domain.TaskStatus, bool) {
	if projectStatus == domain.ProjectStatusClosed {
		return current, false
	}
	return target, true
}
