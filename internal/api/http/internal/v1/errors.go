package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	InvalidRequestBodyCode    = 1001
	InvalidRequestBodyMessage = "invalid request body"
	InvalidEmailCode          = 1002
	InvalidEmailMessage       = "invalid email"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
} // @name ValidationError

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case InvalidRequestBodyCode:
		errorStruct.ErrorCode = InvalidRequestBodyCode
		errorStruct.ErrorMessage = InvalidRequestBodyMessage
	case InvalidEmailCode:
		errorStruct.ErrorCode = InvalidEmailCode
		errorStruct.ErrorMessage = InvalidEmailMessage
	}

	return errorStruct
}
