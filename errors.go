package stocksim

import "errors"

// Validation errors returned by Position and Portfolio mutations.
// A failing mutation never modifies the target.
var (
	ErrNegativeValue     = errors.New("negative value")
	ErrNotFinite         = errors.New("not a finite number")
	ErrSymbolLength      = errors.New("symbol longer than 5 characters")
	ErrSymbolFormat      = errors.New("symbol must be capital letters only")
	ErrRiskRange         = errors.New("risk outside of 1 - 5 boundary")
	ErrZeroPrice         = errors.New("cannot invest at a zero price")
	ErrInsufficientFunds = errors.New("not enough money in portfolio")
)

// ErrNotFound is returned by callers that need to turn a failed symbol lookup into an error.
var ErrNotFound = errors.New("no position found with that symbol")

// ErrIO wraps every persistence failure.
var ErrIO = errors.New("persistence error")
