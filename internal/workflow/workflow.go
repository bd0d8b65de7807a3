// Package workflow implements the state behind one form instance: field
// values, per-field errors and the current step of a multi-step form.
//
// A Workflow is not safe for concurrent use; callers serialize access per
// visitor session.
package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govservices/portal/internal/receipt"
	"github.com/samber/lo"
)

var (
	// ErrUnknownField is returned by SetField for names the form does not declare.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidChoice is returned by SetField for a value outside a choice field's options.
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrInvalid is matched by *ValidationError.
	ErrInvalid = errors.New("form has errors")
	// ErrNotFinalStep is returned by Submit before the last step is reached.
	ErrNotFinalStep = errors.New("form is not on its final step")
	// ErrSubmitted is returned by operations on a workflow that was already submitted.
	ErrSubmitted = errors.New("form already submitted")
)

// Scope selects which fields Validate checks.
type Scope int

const (
	ScopeAll Scope = iota
	ScopeStep
)

// FieldError is a validation failure attached to a field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the errors that refused a submission.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := lo.Map(e.Errors, func(fe FieldError, _ int) string { return fe.Field + ": " + fe.Message })
	return "form has errors: " + strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrInvalid) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Issuer hands out receipts on submission.
type Issuer interface {
	Issue(service string) (receipt.Receipt, error)
}

// Workflow holds the values, errors and step of one form instance.
type Workflow[T any] struct {
	def       *Definition[T]
	values    T
	errors    map[string]string
	step      int
	submitted bool
}

// New creates a workflow on step 1 with every choice field at its default.
func New[T any](def *Definition[T]) *Workflow[T] {
	w := &Workflow[T]{
		def:    def,
		errors: make(map[string]string),
		step:   1,
	}
	for _, f := range def.Fields {
		if f.Default != "" {
			*f.Value(&w.values) = f.Default
		}
	}
	return w
}

// Definition returns the form variant this workflow runs.
func (w *Workflow[T]) Definition() *Definition[T] {
	return w.def
}

// SetField stores value and clears any error recorded for the field. The
// field is not revalidated.
func (w *Workflow[T]) SetField(name, value string) error {
	if w.submitted {
		return ErrSubmitted
	}

	f, ok := w.def.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if f.Kind == Choice && !f.HasOption(value) {
		return fmt.Errorf("%w: %s=%q", ErrInvalidChoice, name, value)
	}

	*f.Value(&w.values) = value
	delete(w.errors, name)
	return nil
}

// Validate recomputes the errors of the fields in scope. Errors of fields
// outside the scope are left as they were. It returns true when no field in
// scope failed.
func (w *Workflow[T]) Validate(scope Scope) bool {
	fields := w.def.Fields
	if scope == ScopeStep {
		fields = w.def.StepFields(w.step)
	}

	valid := true
	for _, f := range fields {
		delete(w.errors, f.Name)
		if msg := f.Check(*f.Value(&w.values)); msg != "" {
			w.errors[f.Name] = msg
			valid = false
		}
	}
	return valid
}

// Advance validates the current step and moves to the next one. It returns
// false, leaving the step unchanged, when validation fails or the workflow is
// already on its final step.
func (w *Workflow[T]) Advance() bool {
	if w.submitted || w.step >= w.def.MaxStep() {
		return false
	}
	if !w.Validate(ScopeStep) {
		return false
	}
	w.step++
	return true
}

// Retreat moves back one step without validating. It stops at step 1.
func (w *Workflow[T]) Retreat() {
	if w.step > 1 {
		w.step--
	}
}

// Submit validates every field and, from the final step, issues the receipt
// for the form's service. A workflow submits at most once.
func (w *Workflow[T]) Submit(issuer Issuer) (receipt.Receipt, error) {
	if w.submitted {
		return receipt.Receipt{}, ErrSubmitted
	}
	if w.step != w.def.MaxStep() {
		return receipt.Receipt{}, ErrNotFinalStep
	}
	if !w.Validate(ScopeAll) {
		return receipt.Receipt{}, &ValidationError{Errors: w.Errors()}
	}

	r, err := issuer.Issue(w.def.Service)
	if err != nil {
		return receipt.Receipt{}, fmt.Errorf("issue receipt: %w", err)
	}
	w.submitted = true
	return r, nil
}

// Values returns a copy of the current field values.
func (w *Workflow[T]) Values() T {
	return w.values
}

// Value returns the current value of a declared field, or "" for unknown names.
func (w *Workflow[T]) Value(name string) string {
	f, ok := w.def.Field(name)
	if !ok {
		return ""
	}
	return *f.Value(&w.values)
}

// Error returns the message recorded for a field, or "" when it is valid.
func (w *Workflow[T]) Error(name string) string {
	return w.errors[name]
}

// Errors returns the recorded errors in field declaration order.
func (w *Workflow[T]) Errors() []FieldError {
	return lo.FilterMap(w.def.Fields, func(f Field[T], _ int) (FieldError, bool) {
		msg, ok := w.errors[f.Name]
		return FieldError{Field: f.Name, Message: msg}, ok
	})
}

// StepErrors returns the recorded errors of the current step's fields.
func (w *Workflow[T]) StepErrors() []FieldError {
	return lo.Filter(w.Errors(), func(fe FieldError, _ int) bool {
		f, _ := w.def.Field(fe.Field)
		return f.Step == w.step
	})
}

// HasErrors reports whether any field currently has an error.
func (w *Workflow[T]) HasErrors() bool {
	return len(w.errors) > 0
}

// Step returns the current step, starting at 1.
func (w *Workflow[T]) Step() int {
	return w.step
}

// MaxStep returns the number of steps of the form.
func (w *Workflow[T]) MaxStep() int {
	return w.def.MaxStep()
}

// FinalStep reports whether the workflow is on its last step.
func (w *Workflow[T]) FinalStep() bool {
	return w.step == w.def.MaxStep()
}

// Submitted reports whether Submit has succeeded.
func (w *Workflow[T]) Submitted() bool {
	return w.submitted
}
