package api

// Status is the outcome code carried on every command response. The codes
// are stable wire values; clients key their error rendering off Code.
type Status int32

const (
	StatusSuccess Status = iota
	StatusError
	StatusInvalidParam
	StatusApplySelf
	StatusAlreadyFriend
	StatusApplyLimit
	StatusDatabaseError
	StatusSystemError
)

var statusCodes = map[Status]string{
	StatusSuccess:       "success",
	StatusError:         "error",
	StatusInvalidParam:  "error.parameter",
	StatusApplySelf:     "error.friend.applyself",
	StatusAlreadyFriend: "error.friend.is",
	StatusApplyLimit:    "error.friend.applycount",
	StatusDatabaseError: "error.database.execute",
	StatusSystemError:   "error.system",
}

var statusInfos = map[Status]string{
	StatusSuccess:       "ok",
	StatusError:         "operation failed",
	StatusInvalidParam:  "invalid request parameter",
	StatusApplySelf:     "cannot apply to yourself",
	StatusAlreadyFriend: "already friends",
	StatusApplyLimit:    "too many outstanding applies",
	StatusDatabaseError: "database execute error",
	StatusSystemError:   "internal system error",
}

func (s Status) Code() string {
	if c, ok := statusCodes[s]; ok {
		return c
	}
	return "error"
}

func (s Status) Info() string {
	if i, ok := statusInfos[s]; ok {
		return i
	}
	return "operation failed"
}

func (s Status) OK() bool {
	return s == StatusSuccess
}
