package utils

import (
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryParamPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func BuildSlotFilterRequest(r *http.Request) *requests.SlotFilter {
	q := r.URL.Query()
	return &requests.SlotFilter{
		Specialty: q.Get(constvars.URLQueryParamSpecialty),
		Doctor:    q.Get(constvars.URLQueryParamDoctor),
		Status:    q.Get(constvars.URLQueryParamStatus),
		DateFrom:  q.Get(constvars.URLQueryParamDateFrom),
		DateTo:    q.Get(constvars.URLQueryParamDateTo),
	}
}

func BuildConsultationFilterRequest(r *http.Request) *requests.ConsultationFilter {
	q := r.URL.Query()
	return &requests.ConsultationFilter{
		Specialty: q.Get(constvars.URLQueryParamSpecialty),
		Priority:  q.Get(constvars.URLQueryParamPriority),
		Status:    q.Get(constvars.URLQueryParamStatus),
		DateFrom:  q.Get(constvars.URLQueryParamDateFrom),
		DateTo:    q.Get(constvars.URLQueryParamDateTo),
	}
}

func BuildPatientSearchRequest(r *http.Request) *requests.SearchPatient {
	q := r.URL.Query()
	return &requests.SearchPatient{
		DNI:     q.Get(constvars.URLQueryParamDNI),
		SIP:     q.Get(constvars.URLQueryParamSIP),
		NHC:     q.Get(constvars.URLQueryParamNHC),
		Surname: q.Get(constvars.URLQueryParamSurname),
	}
}
