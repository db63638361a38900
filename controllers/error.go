package controllers

import (
	"fmt"
	"net/http"

	"newsrank/apperror"
)

// ErrorResponse is the standardized error structure which may be returned by any API
type ErrorResponse struct {
	Code    int32  `json:"code"`
	Message string `json:"msg"`
}

// HandleError encodes the std ErrorResponse
func HandleError(err error) (httpStatus int, apiError ErrorResponse) {

	if err == nil {
		apiError.Code = 0
		apiError.Message = ""

		return 0, apiError
	}

	fmt.Println(err)
	switch err {
	// business rejections (reported, not faults)
	case apperror.ErrVoteClosed:
		apiError.Code = VoteClosed
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusUnprocessableEntity
	case apperror.ErrInvalidVote:
		apiError.Code = InvalidVoteAction
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusUnprocessableEntity
	case apperror.ErrInvalidSortKey:
		apiError.Code = InvalidSortRule
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusUnprocessableEntity
	default:
		// store faults and anything unexpected
		apiError.Code = SystemError
		apiError.Message = apiError.String(apiError.Code)
		httpStatus = http.StatusInternalServerError
	}
	return httpStatus, apiError
}

// Application Error Codes (API Errors)
const (
	// client/api
	InvalidJSON int32 = (10000 + iota)
	InvalidRequest
	// voting
	VoteClosed
	InvalidVoteAction
	// listing
	InvalidSortRule
	SystemError = 99999
)

func (er ErrorResponse) String(code int32) string {
	msg := ""
	switch code {
	// common (system)
	case InvalidJSON:
		msg = "Invalid JSON"
	case InvalidRequest:
		msg = "Invalid Request" // JSON was correct, data was not
	// voting
	case VoteClosed:
		msg = "voting period has ended"
	case InvalidVoteAction:
		msg = "vote must be up or down"
	// listing
	case InvalidSortRule:
		msg = "sort rule must be time or score"
	case SystemError:
		msg = "Server Problem"
	}

	return msg
}
