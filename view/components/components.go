package components

const (
	ALERT_SUCCESS = "success"
	ALERT_ERROR   = "error"
	ALERT_INFO    = "info"
)
