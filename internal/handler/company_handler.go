package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	company, err := h.companyService.CreateCompany(r.Context(), req.Name, req.Address, req.Sector, req.Quota)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateCompanyResponse{
		Company: domainCompanyToHTTP(company),
	})
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.companyService.GetCompany(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainCompanyToHTTP(company))
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.ListCompanies(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	responses := make([]CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, domainCompanyToHTTP(company))
	}

	h.writeJSON(w, http.StatusOK, ListCompaniesResponse{Companies: responses})
}
