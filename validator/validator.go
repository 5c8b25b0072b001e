package validator

import (
	"sort"
	"strings"

	"github.com/nicolasparada/go-errs"
)

// Validator collects field errors. As an error it reports the first message
// added and unwraps to the invalid argument kind.
type Validator struct {
	Errors map[string][]string
	first  string
}

func New() *Validator {
	return &Validator{
		Errors: map[string][]string{},
	}
}

func (v *Validator) AddError(field, message string) {
	if v.Errors == nil {
		v.Errors = make(map[string][]string)
	}
	if v.first == "" {
		v.first = message
	}
	v.Errors[field] = append(v.Errors[field], message)
}

func (v *Validator) AddErrorIf(cond bool, field, message string) {
	if cond {
		v.AddError(field, message)
	}
}

func (v *Validator) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *Validator) First(field string) string {
	if messages, exists := v.Errors[field]; exists && len(messages) != 0 {
		return messages[0]
	}
	return ""
}

// Fields returns the fields with errors in a stable order.
func (v *Validator) Fields() []string {
	fields := make([]string, 0, len(v.Errors))
	for field := range v.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (v *Validator) Error() string {
	if v.first != "" {
		return v.first
	}

	var sb strings.Builder
	for _, field := range v.Fields() {
		sb.WriteString(field + ": " + strings.Join(v.Errors[field], ", ") + "\n")
	}
	return strings.TrimSpace(sb.String())
}

func (v *Validator) Unwrap() error {
	return errs.InvalidArgument
}

func (v *Validator) AsError() error {
	if v.HasErrors() {
		return v
	}
	return nil
}
