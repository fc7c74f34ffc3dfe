package apierrors

const (
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgEmptyTitle         = "emptyTitle"
	MsgInvalidStatus      = "invalidStatus"
	MsgInvalidDate        = "invalidDate"
	MsgEmptyComment       = "emptyComment"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTask       = "errorListTask"
	MsgFailCountTasks     = "failCountTasks"
	MsgFailGetTask        = "failGetTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailTrashTask      = "failTrashTask"
	MsgFailAddComment     = "failAddComment"
	MsgAuditNotRecorded   = "failAuditTask"

	MsgFailTaskHistory = "failTaskHistory"
	MsgFailTimeline    = "failTimeline"

	MsgUserNotFound   = "userNotFound"
	MsgFailListUsers  = "failListUsers"
	MsgFailUserStats  = "failUserStats"
	MsgUnauthorized   = "unauthorized"
	MsgEmptyPassword  = "emptyPassword"
	MsgBadCredentials = "invalidCredentials"
	MsgFailLogin      = "failLogin"
)
