package pagination

import "fmt"

// InvalidArgumentError is raised synchronously at construction/validation
// time: bad limit, forbidden field, wrong
// params type for the requested operation.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// IllegalStateError marks pager lifecycle misuse.
type IllegalStateError struct {
	Message string
}

func (e *IllegalStateError) Error() string {
	return e.Message
}

// BoundaryError is the key-iterator's deferred failure: recorded when a popped look-ahead row is
// structurally identical to the page's last delivered row, and
// returned on the following Next() call so the already-fetched page
// is still observed.
type BoundaryError struct {
	Key interface{}
	ID  string
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("Cannot paginate on a boundary containing identical keys '%v' and document IDs '%s'", e.Key, e.ID)
}

func invalidLimitError(limit int) error {
	if limit > MaxLimit {
		return &InvalidArgumentError{Message: fmt.Sprintf("The provided limit %d exceeds the maximum page size value of %d.", limit, MaxLimit)}
	}
	return &InvalidArgumentError{Message: fmt.Sprintf("The provided limit %d is lower than the minimum page size value of %d.", limit, MinLimit)}
}

// forbiddenParamError builds the pagination-forbidden-field message.
// augmentation, when non-empty, is appended as the key-iterator's extra
// guidance for 'key'/'keys'.
func forbiddenParamError(name, augmentation string) error {
	msg := fmt.Sprintf("The param '%s' is invalid when using pagination.", name)
	if augmentation != "" {
		msg += " " + augmentation
	}
	return &InvalidArgumentError{Message: msg}
}
