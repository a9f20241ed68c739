package constants

const (
	ErrCodeOrderNotFound         = "ORDER_NOT_FOUND"
	ErrCodeOrderAlreadyProcessed = "ORDER_ALREADY_PROCESSED"
	ErrCodeUserNotFound          = "USER_NOT_FOUND"
	ErrCodeDuplicateOrder        = "DUPLICATE_ORDER"
	ErrCodeInternalError         = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody    = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgOrderNotFound         = "order not found"
	ErrMsgOrderAlreadyProcessed = "order already processed"
	ErrMsgUserNotFound          = "user not found"
	ErrMsgDuplicateOrder        = "duplicate order"
	ErrMsgInternalError         = "Internal server error"
	ErrMsgInvalidRequestBody    = "failed to parse request body"
)

var errorMessages = map[string]string{
	ErrCodeOrderNotFound:         ErrMsgOrderNotFound,
	ErrCodeOrderAlreadyProcessed: ErrMsgOrderAlreadyProcessed,
	ErrCodeUserNotFound:          ErrMsgUserNotFound,
	ErrCodeDuplicateOrder:        ErrMsgDuplicateOrder,
	ErrCodeInternalError:         ErrMsgInternalError,
	ErrCodeInvalidRequestBody:    ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeOrderNotFound, ErrCodeUserNotFound:
		return 404
	case ErrCodeDuplicateOrder:
		return 409
	default:
		return 500
	}
}
