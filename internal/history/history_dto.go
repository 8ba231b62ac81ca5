package history

import "time"

type EntryResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	RankID         string  `json:"rank_id"`
	EntryNo        int64   `json:"entry_no"`
	ChangeType     string  `json:"change_type"`
	FromStep       int     `json:"from_step"`
	ToStep         int     `json:"to_step"`
	FromSalary     string  `json:"from_salary"`
	ToSalary       string  `json:"to_salary"`
	EffectiveDate  string  `json:"effective_date"`
	IsAutomatic    bool    `json:"is_automatic"`
	ProcessedBy    string  `json:"processed_by"`
	ApprovedBy     *string `json:"approved_by,omitempty"`
	Reason         *string `json:"reason,omitempty"`
	OrderReference *string `json:"order_reference,omitempty"`
	DocumentPath   *string `json:"document_path,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	PreviousRankID *string `json:"previous_rank_id,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func MapToResponse(entry Entry) EntryResponse {
	resp := EntryResponse{
		ID:            entry.ID.String(),
		EmployeeID:    entry.EmployeeID.String(),
		RankID:        entry.RankID.String(),
		EntryNo:       entry.EntryNo,
		ChangeType:    entry.ChangeType,
		FromStep:      entry.FromStep,
		ToStep:        entry.ToStep,
		FromSalary:    entry.FromSalary.StringFixed(2),
		ToSalary:      entry.ToSalary.StringFixed(2),
		EffectiveDate: entry.EffectiveDate.Format("2006-01-02"),
		IsAutomatic:   entry.IsAutomatic,
		ProcessedBy:   entry.ProcessedBy.String(),
		CreatedAt:     entry.CreatedAt.Format(time.RFC3339),
	}

	if entry.ApprovedBy != nil {
		v := entry.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if entry.PreviousRankID != nil {
		v := entry.PreviousRankID.String()
		resp.PreviousRankID = &v
	}
	resp.Reason = entry.Reason
	resp.OrderReference = entry.OrderReference
	resp.DocumentPath = entry.DocumentPath
	resp.Notes = entry.Notes

	return resp
}

func mapToListResponse(entries []Entry) []EntryResponse {
	resp := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		resp[i] = MapToResponse(entry)
	}
	return resp
}
