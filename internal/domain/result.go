package domain

import "net/http"

// Result is the uniform envelope returned by every write operation.
type Result struct {
	IsSuccess bool   `json:"isSuccess"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
}

// OK builds a successful result.
func OK(status int, message string) Result {
	return Result{IsSuccess: true, Status: status, Message: message}
}

// Fail builds a failed result.
func Fail(status int, message string) Result {
	return Result{IsSuccess: false, Status: status, Message: message}
}

// BadRequest builds a failed result with status 400.
func BadRequest(message string) Result {
	return Fail(http.StatusBadRequest, message)
}
