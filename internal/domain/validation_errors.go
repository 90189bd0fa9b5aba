package domain

// ValidationErrors maps form field names to human-readable error messages.
// Absence of a key means the field is currently valid; an empty map signals
// the draft is submittable. Validation failures always travel as data,
// never as panics or exceptions.
type ValidationErrors map[string]string

// IsValid returns true if no field has an error
func (e ValidationErrors) IsValid() bool {
	return len(e) == 0
}
