package apperrors

import "fmt"

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for when a show is unknown to the catalog.
func NewShowNotFoundError(showID int) *ErrNotFound {
	return &ErrNotFound{
		Resource: "show",
		ID:       showID,
	}
}

// ErrUnexpectedStatus is returned when the catalog answers with a non-200 status.
type ErrUnexpectedStatus struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnexpectedStatus) Is(target error) bool {
	_, ok := target.(*ErrUnexpectedStatus)
	return ok
}

// ErrMissingShowID is returned when an activated element does not belong to a rendered show.
type ErrMissingShowID struct {
	Value string // raw attribute value, empty when no attribute was found
}

// Error implements the error interface.
func (e *ErrMissingShowID) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid show ID %q on activated element", e.Value)
	}
	return "activated element does not belong to a show"
}

// Is allows for error checking with errors.Is().
func (e *ErrMissingShowID) Is(target error) bool {
	_, ok := target.(*ErrMissingShowID)
	return ok
}
