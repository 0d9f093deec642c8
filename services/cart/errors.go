package cart

import "fmt"

// CartError is a validation failure rejected synchronously at the call
// site; the cart is never partially mutated.
type CartError struct {
	Code    string
	Message string
}

func (e *CartError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrInvalidQuantity rejects adds and sets with a quantity below 1.
var ErrInvalidQuantity = &CartError{
	Code:    "invalidQuantity",
	Message: "quantity must be at least 1",
}
