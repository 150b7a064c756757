package apierrors

const (
	MsgFailListProjects         = "failListProjects"
	MsgFailCreateProject        = "failCreateProject"
	MsgFailUpdateProject        = "failUpdateProject"
	MsgFailUpdateProjectStatus  = "failUpdateProjectStatus"
	MsgProjectNotFound          = "projectNotFound"
	MsgProjectTransitionRefused = "projectTransitionRefused"
	MsgInvalidProjectPayload    = "invalidProjectPayload"
	MsgFailListTasks            = "failListTasks"
	MsgFailCreateTask           = "failCreateTask"
	MsgFailUpdateTask           = "failUpdateTask"
	MsgFailUpdateTaskStatus     = "failUpdateTaskStatus"
	MsgTaskNotFound             = "taskNotFound"
	MsgTaskTransitionRefused    = "taskTransitionRefused"
	MsgInvalidTaskPayload       = "invalidTaskPayload"
	MsgAssigneeNotFound         = "assigneeNotFound"
	MsgInvalidFilter            = "invalidFilter"
	MsgInvalidLoginPayload      = "invalidLoginPayload"
	MsgUnauthorized             = "unauthorized"
	MsgFailLogin                = "failLogin"
)
