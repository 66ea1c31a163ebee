package domain

// OrderRequest is a proposed trade before validation
type OrderRequest struct {
	Asset      string
	Side       string
	Quantity   float64
	LimitPrice *float64 // nil = execute at the current quote
}

// RejectionCode constants
const (
	RejectNonPositivePrice    = "NON_POSITIVE_PRICE"
	RejectNonPositiveQuantity = "NON_POSITIVE_QUANTITY"
	RejectInsufficientBalance = "INSUFFICIENT_BALANCE"
)

// Rejection is the reason a proposed order was not placed. The message is
// shown to the user verbatim.
type Rejection struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateOrder checks numeric sanity and affordability of a proposed order.
// Rules are checked in order and the first failure wins. Returns nil when the
// order is acceptable.
func ValidateOrder(price, quantity, balance float64) *Rejection {
	if price <= 0 {
		return &Rejection{Code: RejectNonPositivePrice, Message: "Price must be greater than 0"}
	}
	if quantity <= 0 {
		return &Rejection{Code: RejectNonPositiveQuantity, Message: "Quantity must be greater than 0"}
	}
	if price*quantity > balance {
		return &Rejection{Code: RejectInsufficientBalance, Message: "Insufficient balance"}
	}
	return nil
}
