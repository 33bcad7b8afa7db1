package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Path parameter error messages
	ErrMsgMissingPathParam = "Missing %s path parameter"

	// Forge operation error messages
	ErrMsgCraftFailed      = "Failed to craft item"
	ErrMsgPurchaseFailed   = "Failed to purchase upgrade"
	ErrMsgSellFailed       = "Failed to sell item"
	ErrMsgGetRackFailed    = "Failed to retrieve sell rack"
	ErrMsgGetStatusFailed  = "Failed to retrieve player status"
	ErrMsgCategoriesFailed = "Failed to retrieve categories"
	ErrMsgOddsReportFailed = "Failed to build odds report"
)
