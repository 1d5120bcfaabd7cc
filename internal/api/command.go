package api

// Command is one inbound request after the transport has framed it and
// authenticated the caller. SiteUserID is trusted; handlers never re-verify it.
type Command struct {
	Action     string
	SiteUserID string
	Params     []byte
	ClientIP   string
}

// CommandResponse carries the outcome status plus an optional encoded body.
// Params stays empty unless the status is success and the operation defines
// a response payload.
type CommandResponse struct {
	Status Status
	Params []byte
}

func Success(params []byte) *CommandResponse {
	return &CommandResponse{Status: StatusSuccess, Params: params}
}

func Failure(status Status) *CommandResponse {
	return &CommandResponse{Status: status}
}
