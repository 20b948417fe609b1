package constants

const (
	AppPosService = "pos-service"
	AppMainPos    = "main pos"
)
