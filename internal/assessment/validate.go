package assessment

import (
	"fmt"

	"github.com/cmmc-tools/cmmc-assess/internal/catalog"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

//
// ValidationError is returned when an input is well formed JSON but
// violates the API contract. The message is safe to show to a client.
//
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err (or its cause) is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

//
// ValidateResponses rejects a responses value that is not an object,
// names a control outside the catalog, or carries a status other than
// the four recognised tokens. Members are checked in document order
// and the first offender is reported.
//
func ValidateResponses(r gjson.Result) error {
	if !r.IsObject() {
		return invalid("responses must be a non-null object")
	}
	var err error
	r.ForEach(func(key, value gjson.Result) bool {
		id := key.String()
		if !catalog.HasControl(id) {
			err = invalid("Unknown control ID: %s", id)
			return false
		}
		if value.Type != gjson.String {
			err = invalid("Invalid status %q for control %s. Must be met|partial|not-met|na", value.Raw, id)
			return false
		}
		if _, perr := ParseStatus(value.Str); perr != nil {
			err = invalid("Invalid status %q for control %s. Must be met|partial|not-met|na", value.Str, id)
			return false
		}
		return true
	})
	return err
}

//
// ValidateObject accepts an absent or null member, or an object.
// Anything else is rejected as "<name> must be an object".
//
func ValidateObject(r gjson.Result, name string) error {
	if !r.Exists() || r.Type == gjson.Null || r.IsObject() {
		return nil
	}
	return invalid("%s must be an object", name)
}

//
// ValidateDocument applies the boundary rules to a whole
// {responses, orgInfo, notes} document. When requireResponses is false
// a missing or null responses member is allowed and means "none".
//
func ValidateDocument(body []byte, requireResponses bool) error {
	if !gjson.ValidBytes(body) {
		return invalid("request body must be valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return invalid("request body must be a JSON object")
	}

	responses := root.Get("responses")
	if requireResponses || (responses.Exists() && responses.Type != gjson.Null) {
		if err := ValidateResponses(responses); err != nil {
			return err
		}
	}
	if err := ValidateObject(root.Get("orgInfo"), "orgInfo"); err != nil {
		return err
	}
	// targetLevel is header metadata only, an unusable value falls
	// back to the default level when rendered
	return ValidateObject(root.Get("notes"), "notes")
}
