package workflow

import (
	"errors"
	"strings"
	"testing"

	"github.com/govservices/portal/internal/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testForm struct {
	Kind    string
	Name    string
	Born    string
	Email   string
	Notes   string
	Message string
}

func testDefinition() *Definition[testForm] {
	return &Definition[testForm]{
		Name:    "test",
		Service: "test",
		Steps:   []string{"About you", "Details", "Review"},
		Fields: []Field[testForm]{
			{Name: "kind", Label: "Kind", Kind: Choice, Step: 1, Default: "b",
				Options: []Option{{"a", "Option A"}, {"b", "Option B"}},
				Value:   func(f *testForm) *string { return &f.Kind }},
			{Name: "name", Label: "Full name", Kind: Text, Step: 1,
				Value: func(f *testForm) *string { return &f.Name }},
			{Name: "born", Label: "Date of birth", Kind: Date, Step: 1,
				Value: func(f *testForm) *string { return &f.Born }},
			{Name: "email", Label: "Email address", Kind: Email, Step: 2,
				Value: func(f *testForm) *string { return &f.Email }},
			{Name: "notes", Label: "Notes", Kind: OptionalText, Step: 2,
				Value: func(f *testForm) *string { return &f.Notes }},
			{Name: "message", Label: "Message", Kind: Message, Step: 2, MinLength: 10, MaxLength: 20,
				Value: func(f *testForm) *string { return &f.Message }},
		},
	}
}

func singleStepDefinition() *Definition[testForm] {
	def := testDefinition()
	def.Steps = nil
	for i := range def.Fields {
		def.Fields[i].Step = 1
	}
	return def
}

type stubIssuer struct {
	calls int
	err   error
}

func (s *stubIssuer) Issue(service string) (receipt.Receipt, error) {
	s.calls++
	if s.err != nil {
		return receipt.Receipt{}, s.err
	}
	return receipt.Receipt{Service: service, Reference: "T-2026-000000001"}, nil
}

func fillStep1(t *testing.T, w *Workflow[testForm]) {
	t.Helper()
	require.NoError(t, w.SetField("name", "Ada Lovelace"))
	require.NoError(t, w.SetField("born", "1815-12-10"))
}

func fillStep2(t *testing.T, w *Workflow[testForm]) {
	t.Helper()
	require.NoError(t, w.SetField("email", "ada@example.com"))
	require.NoError(t, w.SetField("message", "Analytical engine"))
}

func TestDefinitionCheck(t *testing.T) {
	t.Run("valid definition", func(t *testing.T) {
		assert.NoError(t, testDefinition().Check())
	})

	t.Run("duplicate field", func(t *testing.T) {
		def := testDefinition()
		def.Fields = append(def.Fields, def.Fields[1])
		err := def.Check()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name declared twice")
	})

	t.Run("step out of range", func(t *testing.T) {
		def := testDefinition()
		def.Fields[1].Step = 4
		assert.ErrorContains(t, def.Check(), "step 4 out of range")
	})

	t.Run("choice default not an option", func(t *testing.T) {
		def := testDefinition()
		def.Fields[0].Default = "z"
		assert.ErrorContains(t, def.Check(), "is not an option")
	})

	t.Run("missing accessor", func(t *testing.T) {
		def := testDefinition()
		def.Fields[2].Value = nil
		assert.ErrorContains(t, def.Check(), "born has no accessor")
	})
}

func TestNew(t *testing.T) {
	w := New(testDefinition())

	assert.Equal(t, 1, w.Step())
	assert.Equal(t, 3, w.MaxStep())
	assert.Equal(t, "b", w.Value("kind"))
	assert.Equal(t, "", w.Value("name"))
	assert.False(t, w.HasErrors())
	assert.False(t, w.Submitted())
}

func TestSetField(t *testing.T) {
	t.Run("stores value", func(t *testing.T) {
		w := New(testDefinition())
		require.NoError(t, w.SetField("name", "Grace"))
		assert.Equal(t, "Grace", w.Value("name"))
		assert.Equal(t, "Grace", w.Values().Name)
	})

	t.Run("clears existing error without revalidating", func(t *testing.T) {
		w := New(testDefinition())
		require.False(t, w.Validate(ScopeStep))
		require.NotEmpty(t, w.Error("name"))

		require.NoError(t, w.SetField("name", "   "))
		assert.Empty(t, w.Error("name"))
		assert.NotEmpty(t, w.Error("born"))
	})

	t.Run("unknown field", func(t *testing.T) {
		w := New(testDefinition())
		err := w.SetField("shoeSize", "9")
		assert.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("choice outside options keeps default", func(t *testing.T) {
		w := New(testDefinition())
		err := w.SetField("kind", "c")
		assert.ErrorIs(t, err, ErrInvalidChoice)
		assert.Equal(t, "b", w.Value("kind"))
	})

	t.Run("choice within options", func(t *testing.T) {
		w := New(testDefinition())
		require.NoError(t, w.SetField("kind", "a"))
		assert.Equal(t, "a", w.Value("kind"))
	})
}

func TestFieldCheck(t *testing.T) {
	def := testDefinition()
	field := func(name string) Field[testForm] {
		f, ok := def.Field(name)
		require.True(t, ok)
		return f
	}

	tests := []struct {
		name     string
		field    string
		value    string
		expected string
	}{
		{"text empty", "name", "", "Enter your full name"},
		{"text whitespace", "name", " \t ", "Enter your full name"},
		{"text present", "name", "Ada", ""},
		{"date empty", "born", "", "Enter your date of birth"},
		{"date any format", "born", "yesterday", ""},
		{"email empty uses required message", "email", "", "Enter your email address"},
		{"email valid", "email", "a@b.com", ""},
		{"email missing dot", "email", "a@b", "Enter a valid email address"},
		{"email missing at", "email", "ab.com", "Enter a valid email address"},
		{"email surrounded by spaces", "email", "  a@b.com  ", ""},
		{"message empty", "message", "", "Enter your message"},
		{"message nine chars", "message", "123456789", "Message must be at least 10 characters long"},
		{"message nine chars padded", "message", "  123456789  ", "Message must be at least 10 characters long"},
		{"message ten chars", "message", "1234567890", ""},
		{"message too long", "message", strings.Repeat("x", 21), "Message must be 20 characters or fewer"},
		{"message counts runes not bytes", "message", strings.Repeat("é", 20), ""},
		{"message emoji count once each", "message", strings.Repeat("🙂", 10), ""},
		{"message emoji over limit", "message", strings.Repeat("🙂", 21), "Message must be 20 characters or fewer"},
		{"optional empty", "notes", "", ""},
		{"choice never validated", "kind", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, field(tt.field).Check(tt.value))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("all empty reports every required field in order", func(t *testing.T) {
		w := New(testDefinition())
		assert.False(t, w.Validate(ScopeAll))

		errs := w.Errors()
		fields := make([]string, len(errs))
		for i, fe := range errs {
			fields[i] = fe.Field
		}
		assert.Equal(t, []string{"name", "born", "email", "message"}, fields)
	})

	t.Run("step scope leaves other steps alone", func(t *testing.T) {
		w := New(testDefinition())
		require.False(t, w.Validate(ScopeAll))
		fillStep1(t, w)

		assert.True(t, w.Validate(ScopeStep))
		assert.NotEmpty(t, w.Error("email"))
		assert.NotEmpty(t, w.Error("message"))
		assert.True(t, w.HasErrors())
	})

	t.Run("step errors only include current step", func(t *testing.T) {
		w := New(testDefinition())
		require.False(t, w.Validate(ScopeAll))
		assert.Len(t, w.StepErrors(), 2)
	})

	t.Run("valid form", func(t *testing.T) {
		w := New(testDefinition())
		fillStep1(t, w)
		fillStep2(t, w)
		assert.True(t, w.Validate(ScopeAll))
		assert.Empty(t, w.Errors())
	})
}

func TestStepProgression(t *testing.T) {
	t.Run("invalid step does not advance", func(t *testing.T) {
		w := New(testDefinition())
		assert.False(t, w.Advance())
		assert.Equal(t, 1, w.Step())
		assert.NotEmpty(t, w.Error("name"))
	})

	t.Run("valid step advances", func(t *testing.T) {
		w := New(testDefinition())
		fillStep1(t, w)
		assert.True(t, w.Advance())
		assert.Equal(t, 2, w.Step())
	})

	t.Run("retreat ignores validity", func(t *testing.T) {
		w := New(testDefinition())
		fillStep1(t, w)
		require.True(t, w.Advance())
		require.False(t, w.Advance())

		w.Retreat()
		assert.Equal(t, 1, w.Step())
	})

	t.Run("retreat clamps at first step", func(t *testing.T) {
		w := New(testDefinition())
		w.Retreat()
		assert.Equal(t, 1, w.Step())
	})

	t.Run("final step does not advance", func(t *testing.T) {
		w := New(testDefinition())
		fillStep1(t, w)
		fillStep2(t, w)
		require.True(t, w.Advance())
		require.True(t, w.Advance())
		assert.True(t, w.FinalStep())

		assert.False(t, w.Advance())
		assert.Equal(t, 3, w.Step())
	})
}

func TestSubmit(t *testing.T) {
	t.Run("refused before final step", func(t *testing.T) {
		w := New(testDefinition())
		fillStep1(t, w)
		fillStep2(t, w)
		issuer := &stubIssuer{}

		_, err := w.Submit(issuer)
		assert.ErrorIs(t, err, ErrNotFinalStep)
		assert.Zero(t, issuer.calls)
	})

	t.Run("refused with errors", func(t *testing.T) {
		w := New(singleStepDefinition())
		issuer := &stubIssuer{}

		_, err := w.Submit(issuer)
		require.ErrorIs(t, err, ErrInvalid)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Errors, 4)
		assert.Zero(t, issuer.calls)
		assert.False(t, w.Submitted())
	})

	t.Run("single step submits", func(t *testing.T) {
		w := New(singleStepDefinition())
		fillStep1(t, w)
		fillStep2(t, w)
		issuer := &stubIssuer{}

		r, err := w.Submit(issuer)
		require.NoError(t, err)
		assert.Equal(t, "test", r.Service)
		assert.Equal(t, 1, issuer.calls)
		assert.True(t, w.Submitted())
	})

	t.Run("multi step submits from final step", func(t *testing.T) {
		w := New(testDefinition())
		fillStep1(t, w)
		require.True(t, w.Advance())
		fillStep2(t, w)
		require.True(t, w.Advance())

		_, err := w.Submit(&stubIssuer{})
		assert.NoError(t, err)
	})

	t.Run("second submit refused", func(t *testing.T) {
		w := New(singleStepDefinition())
		fillStep1(t, w)
		fillStep2(t, w)
		issuer := &stubIssuer{}

		_, err := w.Submit(issuer)
		require.NoError(t, err)
		_, err = w.Submit(issuer)
		assert.ErrorIs(t, err, ErrSubmitted)
		assert.ErrorIs(t, w.SetField("name", "x"), ErrSubmitted)
		assert.Equal(t, 1, issuer.calls)
	})

	t.Run("issuer failure keeps workflow open", func(t *testing.T) {
		w := New(singleStepDefinition())
		fillStep1(t, w)
		fillStep2(t, w)

		_, err := w.Submit(&stubIssuer{err: receipt.ErrExhausted})
		assert.ErrorIs(t, err, receipt.ErrExhausted)
		assert.False(t, w.Submitted())
	})
}

func TestKind(t *testing.T) {
	tests := []struct {
		kind     Kind
		name     string
		required bool
	}{
		{Text, "text", true},
		{OptionalText, "optional_text", false},
		{Email, "email", true},
		{Message, "message", true},
		{Date, "date", true},
		{Choice, "choice", false},
		{Kind(42), "Kind(42)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.required, tt.kind.Required())
		})
	}
}
