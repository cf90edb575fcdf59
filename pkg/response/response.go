package response

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	ResponseError `json:"error,omitzero"`
}

type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

//Error Codes
type ErrCode string

var (
	FAILED_REQUEST    ErrCode = "REQUEST_FAILED"
	BAD_REQUEST       ErrCode = "FAILED_TO_DECODE"
	VALIDATION_FAILED ErrCode = "VALIDATION_FAILED"
	NOT_FOUND         ErrCode = "NOT_FOUND"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrInvalidId  = errors.New("invalid id")
	ErrNotFound   = errors.New("resource not found")
)

func Error(code, msg string) Response {
	return Response{
		ResponseError: ResponseError{
			Code:    code,
			Message: msg,
		},
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsg []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsg = append(errMsg, fmt.Sprintf("Field '%s' is required", err.Field()))
		case "email":
			errMsg = append(errMsg, fmt.Sprintf("Field '%s' must be a valid email address", err.Field()))
		case "min":
			errMsg = append(errMsg, fmt.Sprintf("Field '%s' must be at least %s characters long", err.Field(), err.Param()))
		case "max":
			errMsg = append(errMsg, fmt.Sprintf("Field '%s' must be at most %s characters long", err.Field(), err.Param()))
		case "gt":
			errMsg = append(errMsg, fmt.Sprintf("Field '%s' must be greater than %s", err.Field(), err.Param()))
		default:
			errMsg = append(errMsg, fmt.Sprintf("Field '%s' is invalid", err.Field()))
		}
	}

	return Response{
		ResponseError: ResponseError{
			Code:    string(VALIDATION_FAILED),
			Message: strings.Join(errMsg, ", "),
		},
	}
}
