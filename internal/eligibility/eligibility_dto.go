package eligibility

import "time"

type EligibilityResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	EmployeeID      string  `json:"employee_id"`
	RankID          string  `json:"rank_id"`
	CurrentStep     int     `json:"current_step"`
	NextStep        int     `json:"next_step"`
	CurrentSalary   string  `json:"current_salary"`
	NextSalary      string  `json:"next_salary"`
	EligibilityDate string  `json:"eligibility_date"`
	Status          string  `json:"status"`
	ProcessedAt     *string `json:"processed_at,omitempty"`
	ProcessedBy     *string `json:"processed_by,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	HistoryEntryID  *string `json:"history_entry_id,omitempty"`
}

type ScanResponse struct {
	Scanned int `json:"scanned"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

func mapToResponse(e Eligibility) EligibilityResponse {
	resp := EligibilityResponse{
		ID:              e.ID.String(),
		CompanyID:       e.CompanyID.String(),
		EmployeeID:      e.EmployeeID.String(),
		RankID:          e.RankID.String(),
		CurrentStep:     e.CurrentStep,
		NextStep:        e.NextStep,
		CurrentSalary:   e.CurrentSalary.StringFixed(2),
		NextSalary:      e.NextSalary.StringFixed(2),
		EligibilityDate: e.EligibilityDate.Format("2006-01-02"),
		Status:          e.Status,
	}

	if e.ProcessedAt != nil {
		v := e.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}
	if e.ProcessedBy != nil {
		v := e.ProcessedBy.String()
		resp.ProcessedBy = &v
	}
	if e.RejectionReason != nil {
		resp.RejectionReason = e.RejectionReason
	}
	if e.HistoryEntryID != nil {
		v := e.HistoryEntryID.String()
		resp.HistoryEntryID = &v
	}

	return resp
}

func mapToListResponse(records []Eligibility) []EligibilityResponse {
	resp := make([]EligibilityResponse, len(records))
	for i, e := range records {
		resp[i] = mapToResponse(e)
	}
	return resp
}
