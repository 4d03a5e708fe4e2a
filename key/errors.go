package key

import "errors"

// Validation errors. Each maps to one rejected position of the canonical
// 5-tuple, except ErrInvalidKeyStructure which covers the tuple shape
// itself.
var (
	ErrInvalidKeyStructure   = errors.New("key: invalid key structure")
	ErrResourceNameTooLong   = errors.New("key: resource name exceeds max length")
	ErrInvalidResourceFormat = errors.New("key: resource is not a module-qualified name")
	ErrInvalidFieldType      = errors.New("key: field is not a string")
	ErrFieldNameTooLong      = errors.New("key: field name exceeds max length")
	ErrInvalidLocaleType     = errors.New("key: locale is not a string")
	ErrLocaleTooLong         = errors.New("key: locale exceeds max length")
	ErrInvalidLocaleFormat   = errors.New("key: locale does not match ll or ll_CC")
	ErrInvalidRecordIDType   = errors.New("key: record id is not a string or number")
	ErrRecordIDTooLong       = errors.New("key: record id exceeds max length")
)
