package progression

const (
	RaiseTypeIncrementSteps = "INCREMENT_STEPS"
	RaiseTypeTargetStep     = "TARGET_STEP"
)

type ApproveRequest struct {
	EffectiveDate *string `json:"effective_date"`
	Notes         *string `json:"notes"`
}

type ApproveBatchRequest struct {
	EligibilityIDs []string `json:"eligibility_ids" binding:"required,min=1"`
	EffectiveDate  *string  `json:"effective_date"`
	Notes          *string  `json:"notes"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ManualJumpRequest struct {
	ToStep         int     `json:"to_step" binding:"required,min=1"`
	OrderReference string  `json:"order_reference" binding:"required"`
	Reason         string  `json:"reason" binding:"required"`
	EffectiveDate  string  `json:"effective_date" binding:"required"`
	Notes          *string `json:"notes"`
}

type MassRaiseOptions struct {
	RankID         string  `json:"rank_id" binding:"required,uuid"`
	RaiseType      string  `json:"raise_type" binding:"required,oneof=INCREMENT_STEPS TARGET_STEP"`
	IncrementSteps *int    `json:"increment_steps"`
	TargetStep     *int    `json:"target_step"`
	DepartmentID   *string `json:"department_id"`
}

type MassRaiseRequest struct {
	MassRaiseOptions
	OrderReference string  `json:"order_reference" binding:"required"`
	Reason         string  `json:"reason" binding:"required"`
	EffectiveDate  string  `json:"effective_date" binding:"required"`
	Notes          *string `json:"notes"`
}

type PromoteRequest struct {
	NewRankID      string  `json:"new_rank_id" binding:"required,uuid"`
	EffectiveDate  string  `json:"effective_date" binding:"required"`
	OrderReference *string `json:"order_reference"`
	Reason         *string `json:"reason"`
	DocumentPath   *string `json:"document_path"`
	Notes          *string `json:"notes"`
}

// ProgressionResponse merangkum satu mutasi gaji yang berhasil.
type ProgressionResponse struct {
	EmployeeID     string  `json:"employee_id"`
	RankID         string  `json:"rank_id"`
	ChangeType     string  `json:"change_type"`
	FromStep       int     `json:"from_step"`
	ToStep         int     `json:"to_step"`
	FromSalary     string  `json:"from_salary"`
	ToSalary       string  `json:"to_salary"`
	EffectiveDate  string  `json:"effective_date"`
	HistoryEntryID string  `json:"history_entry_id"`
	EligibilityID  *string `json:"eligibility_id,omitempty"`
	ExpiredPending int64   `json:"expired_pending"`
	Explanation    *string `json:"explanation,omitempty"`
}

type RejectResponse struct {
	EligibilityID   string `json:"eligibility_id"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason"`
	ProcessedAt     string `json:"processed_at"`
	ProcessedBy     string `json:"processed_by"`
}

type BatchItemResult struct {
	EligibilityID string               `json:"eligibility_id"`
	Success       bool                 `json:"success"`
	Error         *string              `json:"error,omitempty"`
	Result        *ProgressionResponse `json:"result,omitempty"`
}

type ApproveBatchResponse struct {
	Total        int               `json:"total"`
	SuccessCount int               `json:"success_count"`
	FailureCount int               `json:"failure_count"`
	Results      []BatchItemResult `json:"results"`
}

const (
	MassRaiseItemSuccess = "SUCCESS"
	MassRaiseItemFailed  = "FAILED"
	MassRaiseItemSkipped = "SKIPPED"
)

type MassRaiseItem struct {
	EmployeeID string  `json:"employee_id"`
	FullName   string  `json:"full_name"`
	Status     string  `json:"status"`
	Reason     *string `json:"reason,omitempty"`
	FromStep   int     `json:"from_step"`
	ToStep     int     `json:"to_step"`
	FromSalary string  `json:"from_salary"`
	ToSalary   string  `json:"to_salary"`
	Increase   string  `json:"increase"`
}

type MassRaiseResponse struct {
	TotalProcessed int             `json:"total_processed"`
	SuccessCount   int             `json:"success_count"`
	FailureCount   int             `json:"failure_count"`
	SkippedCount   int             `json:"skipped_count"`
	Results        []MassRaiseItem `json:"results"`
}

type MassRaisePreviewResponse struct {
	TotalProcessed int             `json:"total_processed"`
	RaisableCount  int             `json:"raisable_count"`
	SkippedCount   int             `json:"skipped_count"`
	FailureCount   int             `json:"failure_count"`
	TotalIncrease  string          `json:"total_increase"`
	Results        []MassRaiseItem `json:"results"`
}
