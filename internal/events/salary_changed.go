package events

import "time"

const SalaryChangedTopic = "hr.salary.progression.v1"

// SalaryChangedEvent dipublish setiap kali gaji seorang pegawai berubah,
// apapun penyebabnya. Nominal dikirim sebagai string desimal, bukan float.
type SalaryChangedEvent struct {
	EventType     string    `json:"event_type"`
	EmployeeID    string    `json:"employee_id"`
	CompanyID     string    `json:"company_id"`
	ChangeType    string    `json:"change_type"`
	FromStep      int       `json:"from_step"`
	ToStep        int       `json:"to_step"`
	FromSalary    string    `json:"from_salary"`
	ToSalary      string    `json:"to_salary"`
	EffectiveDate string    `json:"effective_date"`
	OccurredAt    time.Time `json:"occurred_at"`
}
