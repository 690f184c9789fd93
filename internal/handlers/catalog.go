package handlers

import (
	"net/http"

	"github.com/Totarae/monuments/internal/model"
	"github.com/Totarae/monuments/internal/service"
)

func agencyForm(r *http.Request) service.AgencyForm {
	return service.AgencyForm{Name: formValue(r, "name"), Department: formValue(r, "department")}
}

func (h *Handler) ListAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.Agencies.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "agency/list", agencies)
}

func (h *Handler) CreateAgencyForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "agency/create", nil)
}

func (h *Handler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Agencies.Create(r.Context(), agencyForm(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, "Create agency successfully!", "/agencies")
}

// agency загружает ведомство из {id}; при ошибке ответ уже отправлен.
func (h *Handler) agency(w http.ResponseWriter, r *http.Request) (*model.Agency, bool) {
	id, err := pathID(r, "agency")
	if err == nil {
		var a *model.Agency
		if a, err = h.Agencies.Get(r.Context(), id); err == nil {
			return a, true
		}
	}
	h.fail(w, r, err)
	return nil, false
}

func (h *Handler) EditAgencyForm(w http.ResponseWriter, r *http.Request) {
	if a, ok := h.agency(w, r); ok {
		h.render(w, r, "agency/edit", a)
	}
}

func (h *Handler) EditAgency(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "agency")
	if err == nil {
		_, err = h.Agencies.Update(r.Context(), id, agencyForm(r))
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, "Edit agency successfully!", "/agencies")
}

func (h *Handler) DeleteAgencyForm(w http.ResponseWriter, r *http.Request) {
	if a, ok := h.agency(w, r); ok {
		h.render(w, r, "agency/delete", a)
	}
}

func (h *Handler) DeleteAgency(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "agency")
	if err == nil {
		err = h.Agencies.Delete(r.Context(), id)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, "Agency deleted successfully!", "/agencies")
}

func stateForm(r *http.Request) service.StateForm {
	return service.StateForm{Name: formValue(r, "name")}
}

func (h *Handler) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.States.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "state/list", states)
}

func (h *Handler) CreateStateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "state/create", nil)
}

func (h *Handler) CreateState(w http.ResponseWriter, r *http.Request) {
	if _, err := h.States.Create(r.Context(), currentUser(r).ID, stateForm(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, "Create state successfully!", "/states")
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) (*model.State, bool) {
	id, err := pathID(r, "state")
	if err == nil {
		var s *model.State
		if s, err = h.States.Get(r.Context(), id); err == nil {
			return s, true
		}
	}
	h.fail(w, r, err)
	return nil, false
}

func (h *Handler) EditStateForm(w http.ResponseWriter, r *http.Request) {
	if s, ok := h.state(w, r); ok {
		h.render(w, r, "state/edit", s)
	}
}

func (h *Handler) EditState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "state")
	if err == nil {
		_, err = h.States.Update(r.Context(), id, stateForm(r))
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, "Edit state successfully!", "/states")
}

func (h *Handler) DeleteStateForm(w http.ResponseWriter, r *http.Request) {
	if s, ok := h.state(w, r); ok {
		h.render(w, r, "state/delete", s)
	}
}

func (h *Handler) DeleteState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "state")
	if err == nil {
		err = h.States.Delete(r.Context(), id)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.done(w, r, "State deleted successfully!", "/states")
}
