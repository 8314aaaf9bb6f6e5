package domain

import "errors"

var (
	ErrInvalidAmount        = errors.New("amount must be a positive decimal with at most two fraction digits")
	ErrInvalidTerm          = errors.New("term must be a positive number of months")
	ErrInvalidMethod        = errors.New("unsupported payment method")
	ErrInvalidRole          = errors.New("unsupported role")
	ErrInvalidCategoryType  = errors.New("unsupported budget category type")
	ErrInvalidAccountNumber = errors.New("invalid account number")

	ErrForbidden = errors.New("forbidden")

	ErrNotFound         = errors.New("not found")
	ErrAlreadyProcessed = errors.New("already processed")
	ErrUserExists       = errors.New("username already taken")
	ErrProductExists    = errors.New("product name already exists")

	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrLoanAmountExceedsLimit = errors.New("loan amount exceeds product maximum")
	ErrLoanTermExceedsLimit   = errors.New("loan term exceeds product maximum")
	ErrInsufficientCollateral = errors.New("savings balance below product collateral requirement")
	ErrLoanNotApproved        = errors.New("loan is not approved")
)
