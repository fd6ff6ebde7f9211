package investment

import "errors"

// Kind is the machine-checkable reason a bid was not accepted.
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindInvalidAmount     Kind = "INVALID_AMOUNT"
	KindInsufficientFunds Kind = "INSUFFICIENT_FUNDS"
	KindSoldOut           Kind = "SOLD_OUT"
	KindOverallocation    Kind = "OVERALLOCATION"
	KindTxConflict        Kind = "TRANSACTION_CONFLICT"
	KindStoreUnavailable  Kind = "STORE_UNAVAILABLE"
)

// Retryable reports whether the caller may re-read state and resubmit the
// same bid. Only concurrent-commit conflicts qualify; the service never
// retries on its own.
func (k Kind) Retryable() bool { return k == KindTxConflict }

// Rejection is returned whenever a bid produced no state mutation.
type Rejection struct {
	Kind   Kind
	Reason string
	err    error // underlying store error, if any
}

func (r *Rejection) Error() string { return r.Reason }
func (r *Rejection) Unwrap() error { return r.err }

func reject(kind Kind, reason string) *Rejection {
	return &Rejection{Kind: kind, Reason: reason}
}

func rejectWrap(kind Kind, reason string, err error) *Rejection {
	return &Rejection{Kind: kind, Reason: reason, err: err}
}

// AsRejection unwraps err into a *Rejection if there is one in the chain.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
