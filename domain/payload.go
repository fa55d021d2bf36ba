package domain

import "github.com/go-playground/validator/v10"

const (
	suffixMissingProperty = ".NOT_CONTAIN_NEEDED_PROPERTY"
	suffixWrongType       = ".NOT_MEET_DATA_TYPE_SPECIFICATION"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Payload is a request body decoded from JSON, before any shape checks.
type Payload map[string]any

// stringFields checks that every field is present and a string. Presence follows
// the `required` rule, so an empty string counts as missing.
func (p Payload) stringFields(entity string, fields ...string) (map[string]string, error) {
	rules := make(map[string]any, len(fields))
	for _, f := range fields {
		rules[f] = "required"
	}
	if errs := validate.ValidateMap(p, rules); len(errs) > 0 {
		return nil, NewError(entity+suffixMissingProperty, nil)
	}

	res := make(map[string]string, len(fields))
	for _, f := range fields {
		s, ok := p[f].(string)
		if !ok {
			return nil, NewError(entity+suffixWrongType, nil)
		}
		res[f] = s
	}
	return res, nil
}

// validateRow checks `validate` tags on a row loaded from storage.
func validateRow(entity string, row any) error {
	if err := validate.Struct(row); err != nil {
		return NewError(entity+suffixMissingProperty, err)
	}
	return nil
}
