package handlers

import (
	"net/http"

	"github.com/Totarae/monuments/internal/model"
	"github.com/Totarae/monuments/internal/service"
)

// Имена полей совпадают с полями HTML-формы памятника.
func monumentForm(r *http.Request) service.MonumentForm {
	return service.MonumentForm{
		Name:            formValue(r, "name"),
		Description:     formValue(r, "description"),
		Latitude:        formValue(r, "latitude"),
		Longitude:       formValue(r, "longitude"),
		ImageURL:        formValue(r, "imageurl"),
		DateEstablished: formValue(r, "dateestablished"),
		Acres:           formValue(r, "acres"),
		AgencyID:        formValue(r, "monumentAgency"),
		StateID:         formValue(r, "monumentState"),
	}
}

// monumentFormView содержит данные для выпадающих списков формы.
type monumentFormView struct {
	Monument *model.Monument `json:"monument,omitempty"`
	Agencies []model.Agency  `json:"agencies"`
	States   []model.State   `json:"states"`
}

func (h *Handler) formChoices(w http.ResponseWriter, r *http.Request, m *model.Monument) (monumentFormView, bool) {
	agencies, err := h.Agencies.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return monumentFormView{}, false
	}
	states, err := h.States.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return monumentFormView{}, false
	}
	return monumentFormView{Monument: m, Agencies: agencies, States: states}, true
}

func (h *Handler) monument(w http.ResponseWriter, r *http.Request) (*model.Monument, bool) {
	id, err := pathID(r, "monument")
	if err == nil {
		var m *model.Monument
		if m, err = h.Monuments.Get(r.Context(), id); err == nil {
			return m, true
		}
	}
	h.fail(w, r, err)
	return nil, false
}

// ListMonuments отдаёт одобренные памятники.
func (h *Handler) ListMonuments(w http.ResponseWriter, r *http.Request) {
	monuments, err := h.Monuments.ListApproved(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "monument/list", monuments)
}

// PendingMonuments отдаёт очередь модерации.
func (h *Handler) PendingMonuments(w http.ResponseWriter, r *http.Request) {
	monuments, err := h.Monuments.ListPending(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "monument/approve", monuments)
}

func (h *Handler) MonumentDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "monument")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	details, err := h.Monuments.Details(r.Context(), id, currentUser(r).ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "monument/details", details)
}

func (h *Handler) CreateMonumentForm(w http.ResponseWriter, r *http.Request) {
	if view, ok := h.formChoices(w, r, nil); ok {
		h.render(w, r, "monument/create", view)
	}
}

// CreateMonument заводит памятник в очередь модерации.
func (h *Handler) CreateMonument(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Monuments.Create(r.Context(), currentUser(r).ID, monumentForm(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, "Create monument successfully!", "/monument/approve")
}

func (h *Handler) EditMonumentForm(w http.ResponseWriter, r *http.Request) {
	m, ok := h.monument(w, r)
	if !ok {
		return
	}
	if view, ok := h.formChoices(w, r, m); ok {
		h.render(w, r, "monument/edit", view)
	}
}

func (h *Handler) EditMonument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "monument")
	if err == nil {
		_, err = h.Monuments.Update(r.Context(), id, monumentForm(r))
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, "Edit monument successfully!", "/monuments")
}

func (h *Handler) DeleteMonumentForm(w http.ResponseWriter, r *http.Request) {
	if m, ok := h.monument(w, r); ok {
		h.render(w, r, "monument/delete", m)
	}
}

// DeleteMonument удаляет запись физически, вместе с визитами.
func (h *Handler) DeleteMonument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "monument")
	if err == nil {
		err = h.Monuments.Delete(r.Context(), id)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, "Monument deleted successfully!", "/monuments")
}

func (h *Handler) ApproveMonument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "monument")
	if err == nil {
		err = h.Monuments.Approve(r.Context(), id)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, "Monument approved!", "/monuments")
}

// DeclineMonument отклоняет памятник; запись остаётся в базе.
func (h *Handler) DeclineMonument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "monument")
	if err == nil {
		err = h.Monuments.Decline(r.Context(), id)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, "Monument declined!", "/monument/approve")
}

// VisitMonument записывает визит текущего пользователя. Повторный визит
// перезаписывает прежний.
func (h *Handler) VisitMonument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "monument")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	userID := currentUser(r).ID
	again, err := h.Visits.HasVisited(r.Context(), userID, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	form := service.VisitForm{Grade: formValue(r, "grade"), Comment: formValue(r, "comment")}
	if _, err := h.Visits.Record(r.Context(), userID, id, form); err != nil {
		h.fail(w, r, err)
		return
	}

	flash := "Monument visited successfully!"
	if again {
		flash = "Visit updated!"
	}
	h.done(w, r, flash, "/monument/visited")
}

func (h *Handler) VisitedMonuments(w http.ResponseWriter, r *http.Request) {
	monuments, err := h.Visits.ListVisited(r.Context(), currentUser(r).ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "monument/visited", monuments)
}
