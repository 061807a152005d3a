package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed     = "method_not_allowed"
	codeNotFound             = "not_found"
	codeInvalidRequestBody   = "invalid_request_body"
	codeInvalidID            = "invalid_id"
	codeUnauthorized         = "unauthorized"
	codeInvalidCredentials   = "invalid_credentials"
	codeCopyUnavailable      = "copy_unavailable"
	codeCopyNotFound         = "copy_not_found"
	codePatronBlocked        = "patron_blocked"
	codePatronNotFound       = "patron_not_found"
	codeLoanNotFound         = "loan_not_found"
	codeInvalidLoanState     = "invalid_loan_state"
	codeRenewalLimitExceeded = "renewal_limit_exceeded"
	codeLoanOverdue          = "loan_overdue"
	codeBookNotFound         = "book_not_found"
	codeTitleRequired        = "book_title_required"
	codeBarcodeRequired      = "barcode_required"
	codeBarcodeAlreadyExists = "barcode_already_exists"
	codePatronNameRequired   = "patron_name_required"
	codeCardNumberRequired   = "card_number_required"
	codeCardAlreadyExists    = "card_number_already_exists"
	codeEmailAlreadyExists   = "email_already_exists"
	codeInvalidConfiguration = "invalid_configuration"
	codeForbidden            = "forbidden"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
