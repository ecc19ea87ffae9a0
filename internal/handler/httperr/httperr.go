package httperr

// Response is the error envelope shared by the error-handling middleware.
// Status travels out of band; only the message and optional detail are
// serialized to the client.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}
