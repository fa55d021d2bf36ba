package response

// DateTimeFormat renders timestamps in UTC with millisecond precision.
const DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Success is the envelope of every 2xx response.
type Success struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

func NewSuccess(data any) Success {
	return Success{Status: StatusSuccess, Data: data}
}
