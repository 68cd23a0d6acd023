package dom

import "fmt"

// DOMError represents a DOM exception with a name and message.
type DOMError struct {
	Name    string
	Message string
}

func (e *DOMError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// Is lets errors.Is compare DOM errors by name.
func (e *DOMError) Is(target error) bool {
	t, ok := target.(*DOMError)
	return ok && t.Name == e.Name && (t.Message == "" || t.Message == e.Message)
}

// Sentinels for errors.Is checks; only the name is compared.
var (
	HierarchyRequestError = &DOMError{Name: "HierarchyRequestError"}
	NotFoundError         = &DOMError{Name: "NotFoundError"}
	SyntaxError           = &DOMError{Name: "SyntaxError"}
	InvalidCharacterError = &DOMError{Name: "InvalidCharacterError"}
	SecurityError         = &DOMError{Name: "SecurityError"}
)

// ErrHierarchyRequest creates a HierarchyRequestError.
func ErrHierarchyRequest(message string) *DOMError {
	return &DOMError{Name: "HierarchyRequestError", Message: message}
}

// ErrNotFound creates a NotFoundError.
func ErrNotFound(message string) *DOMError {
	return &DOMError{Name: "NotFoundError", Message: message}
}

// ErrInvalidCharacter creates an InvalidCharacterError.
func ErrInvalidCharacter(message string) *DOMError {
	return &DOMError{Name: "InvalidCharacterError", Message: message}
}

// ErrSyntax creates a SyntaxError.
func ErrSyntax(message string) *DOMError {
	return &DOMError{Name: "SyntaxError", Message: message}
}

// ErrSecurity creates a SecurityError.
func ErrSecurity(message string) *DOMError {
	return &DOMError{Name: "SecurityError", Message: message}
}
