package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/govservices/portal/internal/forms"
	"github.com/govservices/portal/internal/workflow"
	"github.com/samber/lo"
)

const invalidChoiceMessage = "Select one of the listed options"

// errUnknownFields is returned when a validation request names fields the
// form does not declare.
var errUnknownFields = errors.New("unknown fields")

// formSpec erases a form's struct type so forms can share one route.
type formSpec struct {
	describe func() FormResponse
	validate func(values map[string]string) (ValidateResponse, error)
}

var formSpecs = map[string]formSpec{
	forms.PassportForm.Name: specFor(forms.PassportForm),
	forms.LicenseForm.Name:  specFor(forms.LicenseForm),
	forms.ContactForm.Name:  specFor(forms.ContactForm),
}

func specFor[T any](def *workflow.Definition[T]) formSpec {
	return formSpec{
		describe: func() FormResponse { return describeForm(def) },
		validate: func(values map[string]string) (ValidateResponse, error) { return validateForm(def, values) },
	}
}

// GetForm handles GET /api/v1/forms/{form}.
//
//	@Summary		Describe form
//	@Description	Returns a form's steps and fields with their rules, in display order
//	@Tags			forms
//	@Produce		json
//	@Param			form	path		string	true	"Form name"	Enums(passport, license, contact)
//	@Success		200		{object}	FormResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/v1/forms/{form} [get]
func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	fs, ok := formSpecs[r.PathValue("form")]
	if !ok {
		h.writeError(w, http.StatusNotFound, "form not found: "+r.PathValue("form"))
		return
	}
	h.writeJSON(w, http.StatusOK, fs.describe())
}

// ValidateForm handles POST /api/v1/forms/{form}/validate.
//
//	@Summary		Validate form values
//	@Description	Checks field values against every rule of the form without starting an application. Errors are listed in field display order.
//	@Tags			forms
//	@Accept			json
//	@Produce		json
//	@Param			form	path		string			true	"Form name"	Enums(passport, license, contact)
//	@Param			request	body		ValidateRequest	true	"Field values keyed by field name"
//	@Success		200		{object}	ValidateResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/v1/forms/{form}/validate [post]
func (h *Handler) ValidateForm(w http.ResponseWriter, r *http.Request) {
	fs, ok := formSpecs[r.PathValue("form")]
	if !ok {
		h.writeError(w, http.StatusNotFound, "form not found: "+r.PathValue("form"))
		return
	}

	var req ValidateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	resp, err := fs.validate(req.Values)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func describeForm[T any](def *workflow.Definition[T]) FormResponse {
	return FormResponse{
		Name:    def.Name,
		Service: def.Service,
		Steps:   def.Steps,
		Fields: lo.Map(def.Fields, func(f workflow.Field[T], _ int) FieldResponse {
			return FieldResponse{
				Name:      f.Name,
				Label:     f.Label,
				Hint:      f.Hint,
				Kind:      f.Kind.String(),
				Step:      f.Step,
				Required:  f.Kind.Required(),
				MinLength: f.MinLength,
				MaxLength: f.MaxLength,
				Default:   f.Default,
				Options: lo.Map(f.Options, func(o workflow.Option, _ int) OptionResponse {
					return OptionResponse{Value: o.Value, Label: o.Label}
				}),
			}
		}),
	}
}

// validateForm runs a fresh workflow over values and validates every field.
// Fields missing from values are validated as empty; choices keep their default.
func validateForm[T any](def *workflow.Definition[T], values map[string]string) (ValidateResponse, error) {
	unknown := lo.Filter(lo.Keys(values), func(name string, _ int) bool {
		_, ok := def.Field(name)
		return !ok
	})
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return ValidateResponse{}, fmt.Errorf("%w for form %s: %v", errUnknownFields, def.Name, unknown)
	}

	wf := workflow.New(def)
	choiceErrors := make(map[string]string)
	for _, f := range def.Fields {
		value, ok := values[f.Name]
		if !ok {
			continue
		}
		if err := wf.SetField(f.Name, value); errors.Is(err, workflow.ErrInvalidChoice) {
			choiceErrors[f.Name] = invalidChoiceMessage
		}
	}
	wf.Validate(workflow.ScopeAll)

	errs := lo.FilterMap(def.Fields, func(f workflow.Field[T], _ int) (FieldErrorResponse, bool) {
		msg := wf.Error(f.Name)
		if msg == "" {
			msg = choiceErrors[f.Name]
		}
		return FieldErrorResponse{Field: f.Name, Message: msg}, msg != ""
	})

	return ValidateResponse{Valid: len(errs) == 0, Errors: errs}, nil
}
