package reporting

type ProjectionEntryResponse struct {
	Year          int    `json:"year"`
	Step          int    `json:"step"`
	Salary        string `json:"salary"`
	EffectiveDate string `json:"effective_date"`
	IsCeiling     bool   `json:"is_ceiling"`
}

type ProjectionResponse struct {
	EmployeeID     string                    `json:"employee_id"`
	RankID         string                    `json:"rank_id"`
	RankName       string                    `json:"rank_name"`
	CurrentStep    int                       `json:"current_step"`
	CurrentSalary  string                    `json:"current_salary"`
	EmploymentDate string                    `json:"employment_date"`
	AtCeiling      bool                      `json:"at_ceiling"`
	Entries        []ProjectionEntryResponse `json:"entries"`
}

type StepBucket struct {
	Step       int    `json:"step"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

type RankDistribution struct {
	RankID   string       `json:"rank_id"`
	RankName string       `json:"rank_name"`
	Total    int          `json:"total"`
	Steps    []StepBucket `json:"steps"`
}

type StepDistributionResponse struct {
	TotalEmployees int                `json:"total_employees"`
	Ranks          []RankDistribution `json:"ranks"`
}

type PromotionPreviewResponse struct {
	EmployeeID         string `json:"employee_id"`
	CurrentRankID      string `json:"current_rank_id"`
	CurrentRankName    string `json:"current_rank_name"`
	NewRankID          string `json:"new_rank_id"`
	NewRankName        string `json:"new_rank_name"`
	CurrentStep        int    `json:"current_step"`
	NewStep            int    `json:"new_step"`
	CurrentSalary      string `json:"current_salary"`
	NewSalary          string `json:"new_salary"`
	Increase           string `json:"increase"`
	PercentageIncrease string `json:"percentage_increase"`
	Explanation        string `json:"explanation"`
}

// DistributionFilter membatasi cakupan laporan distribusi step.
type DistributionFilter struct {
	RankID       string
	DepartmentID string
}
