package workflow

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Kind selects the rule a field is validated with.
type Kind int

const (
	// Text must be non-blank after trimming.
	Text Kind = iota
	// OptionalText is never validated.
	OptionalText
	// Email must be non-blank and look like name@host.tld.
	Email
	// Message must be non-blank and within MinLength..MaxLength runes after trimming.
	Message
	// Date must be present. Format and range are left to the input control.
	Date
	// Choice always holds one of Options; it starts at Default.
	Choice
)

var kindNames = [...]string{"text", "optional_text", "email", "message", "date", "choice"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Required reports whether an empty value fails the kind's rule.
func (k Kind) Required() bool {
	return k != Choice && k != OptionalText
}

const invalidEmailMessage = "Enter a valid email address"

// emailPattern is a loose shape check, not RFC 5322.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Option is one selectable value of a Choice field.
type Option struct {
	Value string
	Label string
}

// Field binds one member of the form struct T to its label and rule.
type Field[T any] struct {
	Name      string
	Label     string
	Hint      string
	Kind      Kind
	Input     string // HTML input type overriding the kind's default, e.g. "tel"
	Step      int    // 1-based step the field belongs to
	Required  string // message for an empty value; "Enter your <label>" when unset
	MinLength int    // message bounds, counted in runes of the trimmed value
	MaxLength int
	Options   []Option
	Default   string
	Value     func(*T) *string
}

// RequiredMessage returns the message shown when the field is left empty.
func (f Field[T]) RequiredMessage() string {
	if f.Required != "" {
		return f.Required
	}
	return "Enter your " + strings.ToLower(f.Label)
}

// Check applies the field's rule to value and returns the failure message,
// or "" when the value passes.
func (f Field[T]) Check(value string) string {
	if !f.Kind.Required() {
		return ""
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return f.RequiredMessage()
	}

	switch f.Kind {
	case Email:
		if !emailPattern.MatchString(trimmed) {
			return invalidEmailMessage
		}
	case Message:
		n := utf8.RuneCountInString(trimmed)
		if f.MinLength > 0 && n < f.MinLength {
			return fmt.Sprintf("Message must be at least %d characters long", f.MinLength)
		}
		if f.MaxLength > 0 && n > f.MaxLength {
			return fmt.Sprintf("Message must be %d characters or fewer", f.MaxLength)
		}
	}
	return ""
}

// HasOption reports whether value is one of the field's options.
func (f Field[T]) HasOption(value string) bool {
	return lo.ContainsBy(f.Options, func(o Option) bool { return o.Value == value })
}

// OptionLabel returns the label of the option with the given value, or the
// value itself when no option matches.
func (f Field[T]) OptionLabel(value string) string {
	o, ok := lo.Find(f.Options, func(o Option) bool { return o.Value == value })
	if !ok {
		return value
	}
	return o.Label
}

// Definition declares a form variant: its fields in display order and the
// titles of its steps.
type Definition[T any] struct {
	Name    string
	Service string   // receipt key used on submission
	Steps   []string // step titles; a single-step form may leave this empty
	Fields  []Field[T]
}

// MaxStep returns the number of steps, at least 1.
func (d *Definition[T]) MaxStep() int {
	return max(1, len(d.Steps))
}

// Field looks up a declared field by name.
func (d *Definition[T]) Field(name string) (Field[T], bool) {
	return lo.Find(d.Fields, func(f Field[T]) bool { return f.Name == name })
}

// StepFields returns the fields of one step in declaration order.
func (d *Definition[T]) StepFields(step int) []Field[T] {
	return lo.Filter(d.Fields, func(f Field[T], _ int) bool { return f.Step == step })
}

// StepTitle returns the title of step n, or "" when it has none.
func (d *Definition[T]) StepTitle(n int) string {
	if n < 1 || n > len(d.Steps) {
		return ""
	}
	return d.Steps[n-1]
}

// Check reports declaration mistakes: duplicate or unnamed fields, missing
// accessors, steps out of range and choice defaults that are not options.
func (d *Definition[T]) Check() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("definition name is required"))
	}

	seen := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		switch {
		case f.Name == "":
			errs = append(errs, errors.New("field name is required"))
			continue
		case seen[f.Name]:
			errs = append(errs, fmt.Errorf("field %s declared twice", f.Name))
		}
		seen[f.Name] = true

		if f.Value == nil {
			errs = append(errs, fmt.Errorf("field %s has no accessor", f.Name))
		}
		if f.Step < 1 || f.Step > d.MaxStep() {
			errs = append(errs, fmt.Errorf("field %s step %d out of range 1..%d", f.Name, f.Step, d.MaxStep()))
		}
		if f.Kind == Choice && !f.HasOption(f.Default) {
			errs = append(errs, fmt.Errorf("field %s default %q is not an option", f.Name, f.Default))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("form %s: %w", d.Name, errors.Join(errs...))
	}
	return nil
}
