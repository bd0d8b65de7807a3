package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/govservices/portal/internal/config"
	"github.com/govservices/portal/internal/model"
	"github.com/govservices/portal/internal/session"
	"github.com/govservices/portal/internal/workflow"
	"github.com/samber/lo"
)

// formPage describes how one form is presented and which session workflow
// backs it.
type formPage[T any] struct {
	title    string
	action   string
	crumbs   []model.Crumb
	service  string // catalogue key shown in the page, if any
	form     *workflow.Definition[T]
	workflow func(*session.State) *workflow.Workflow[T]
}

// showForm renders the visitor's current state of the form. Visitors without
// a session see a blank form; their session starts with the first post.
func showForm[T any](h *Handler, w http.ResponseWriter, r *http.Request, page formPage[T]) {
	state, ok := h.existingSession(r)
	if !ok {
		h.renderForm(w, http.StatusOK, formData(h, page, workflow.New(page.form)))
		return
	}
	state.Lock()
	defer state.Unlock()

	h.renderForm(w, http.StatusOK, formData(h, page, page.workflow(state)))
}

// submitForm binds posted values to the current step and applies the posted
// action: continue, back or submit.
func submitForm[T any](h *Handler, w http.ResponseWriter, r *http.Request, page formPage[T]) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	state := h.session(w, r)
	state.Lock()
	defer state.Unlock()

	wf := page.workflow(state)
	form := wf.Definition().Name

	if step, err := strconv.Atoi(r.PostFormValue("step")); err != nil || step != wf.Step() {
		slog.Debug("stale form post", "form", form, "posted_step", r.PostFormValue("step"), "step", wf.Step())
		h.renderForm(w, http.StatusOK, formData(h, page, wf))
		return
	}

	bind(wf, r)

	switch r.PostFormValue("action") {
	case "continue":
		if wf.FinalStep() {
			h.renderForm(w, http.StatusOK, formData(h, page, wf))
			return
		}
		if !wf.Advance() {
			h.metrics.IncrementValidationFailures(form)
			h.renderForm(w, http.StatusUnprocessableEntity, formData(h, page, wf))
			return
		}
		h.metrics.IncrementStepTransition(form, "forward")
		http.Redirect(w, r, page.action, http.StatusSeeOther)

	case "back":
		wf.Retreat()
		h.metrics.IncrementStepTransition(form, "back")
		http.Redirect(w, r, page.action, http.StatusSeeOther)

	case "submit":
		rcpt, err := wf.Submit(h.issuer)
		switch {
		case errors.Is(err, workflow.ErrInvalid):
			h.metrics.IncrementValidationFailures(form)
			h.renderForm(w, http.StatusUnprocessableEntity, formData(h, page, wf))
			return
		case errors.Is(err, workflow.ErrNotFinalStep):
			h.renderForm(w, http.StatusConflict, formData(h, page, wf))
			return
		case err != nil:
			slog.Error("failed to submit form", "form", form, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		state.SaveReceipt(rcpt)
		h.metrics.IncrementSubmissions(rcpt.Service)
		slog.Info("form submitted", "form", form, "service", rcpt.Service, "reference", rcpt.Reference)
		http.Redirect(w, r, "/confirmation/"+rcpt.Service, http.StatusSeeOther)

	default:
		h.renderForm(w, http.StatusOK, formData(h, page, wf))
	}
}

// bind stores the posted values of the current step's fields. Fields absent
// from the post keep their value; choices outside the options are ignored.
func bind[T any](wf *workflow.Workflow[T], r *http.Request) {
	for _, f := range wf.Definition().StepFields(wf.Step()) {
		values, ok := r.PostForm[f.Name]
		if !ok || len(values) == 0 {
			continue
		}
		if err := wf.SetField(f.Name, values[0]); err != nil {
			slog.Debug("ignoring posted value", "field", f.Name, "error", err)
		}
	}
}

func (h *Handler) renderForm(w http.ResponseWriter, status int, data model.FormPageData) {
	h.render(w, status, data.Page+".html", data)
}

// formData builds the view of a workflow. Multi-step forms list only the
// current step's errors until the review step, which lists them all.
func formData[T any](h *Handler, page formPage[T], wf *workflow.Workflow[T]) model.FormPageData {
	def := wf.Definition()

	errs := wf.Errors()
	if wf.MaxStep() > 1 && !wf.FinalStep() {
		errs = wf.StepErrors()
	}

	data := model.FormPageData{
		Page:   def.Name,
		Title:  page.title,
		Crumbs: page.crumbs,
		Action: page.action,
		Errors: lo.Map(errs, func(fe workflow.FieldError, _ int) model.ErrorItem {
			return model.ErrorItem{Field: fe.Field, Message: fe.Message}
		}),
		Fields: lo.Map(def.StepFields(wf.Step()), func(f workflow.Field[T], _ int) model.FieldView {
			return fieldView(f, wf)
		}),
		Step:      wf.Step(),
		MaxStep:   wf.MaxStep(),
		StepTitle: def.StepTitle(wf.Step()),
		Final:     wf.FinalStep(),
		Helpline:  config.HelplineNumber,
	}

	if wf.MaxStep() > 1 {
		data.Steps = lo.Times(wf.MaxStep(), func(i int) model.StepView {
			n := i + 1
			return model.StepView{
				Number:  n,
				Title:   def.StepTitle(n),
				Reached: n <= wf.Step(),
				Current: n == wf.Step(),
			}
		})
		if wf.FinalStep() {
			data.Review = reviewRows(wf)
		}
	}

	if page.service != "" {
		if svc, ok := h.catalogue.Get(page.service); ok {
			data.Service = &svc
		}
	}
	return data
}

func fieldView[T any](f workflow.Field[T], wf *workflow.Workflow[T]) model.FieldView {
	value := wf.Value(f.Name)
	v := model.FieldView{
		Name:      f.Name,
		Label:     f.Label,
		Hint:      f.Hint,
		Value:     value,
		Error:     wf.Error(f.Name),
		Input:     inputType(f),
		MaxLength: f.MaxLength,
		Length:    utf8.RuneCountInString(strings.TrimSpace(value)),
	}
	if f.Kind == workflow.Choice {
		v.Options = lo.Map(f.Options, func(o workflow.Option, _ int) model.OptionView {
			return model.OptionView{Value: o.Value, Label: o.Label, Checked: o.Value == value}
		})
	}
	return v
}

func inputType[T any](f workflow.Field[T]) string {
	if f.Input != "" {
		return f.Input
	}
	switch f.Kind {
	case workflow.Email:
		return "email"
	case workflow.Date:
		return "date"
	case workflow.Message:
		return "textarea"
	case workflow.Choice:
		return "radio"
	default:
		return "text"
	}
}

// reviewRows summarises every answered field, choices by their label.
func reviewRows[T any](wf *workflow.Workflow[T]) []model.ReviewRow {
	return lo.FilterMap(wf.Definition().Fields, func(f workflow.Field[T], _ int) (model.ReviewRow, bool) {
		value := strings.TrimSpace(wf.Value(f.Name))
		if f.Kind == workflow.Choice {
			value = f.OptionLabel(value)
		}
		return model.ReviewRow{Label: f.Label, Value: value}, value != ""
	})
}

func serviceCrumbs(title string) []model.Crumb {
	return []model.Crumb{
		{Label: "Home", Href: "/"},
		{Label: "Services", Href: "/services"},
		{Label: title},
	}
}
