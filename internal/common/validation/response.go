package validation

import "fmt"

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
