package progression

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-paygrade/internal/eligibility"
	"go-paygrade/internal/employee"
	"go-paygrade/internal/events"
	"go-paygrade/internal/history"
	"go-paygrade/internal/messaging/kafka"
	progressionerrors "go-paygrade/internal/progression/errors"
	"go-paygrade/internal/rank"
	"go-paygrade/internal/salarycalc"
	"go-paygrade/internal/shared/contextutil"
	"go-paygrade/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const historyCounterType = "salary_history_entry"

//go:generate mockgen -source=progression_service.go -destination=mock/progression_service_mock.go -package=mock
type Service interface {
	ApproveOne(ctx context.Context, companyID, actorID, eligibilityID string, req ApproveRequest) (ProgressionResponse, error)
	ApproveBatch(ctx context.Context, companyID, actorID string, req ApproveBatchRequest) (ApproveBatchResponse, error)
	Reject(ctx context.Context, companyID, actorID, eligibilityID string, req RejectRequest) (RejectResponse, error)
	ManualJump(ctx context.Context, companyID, actorID, employeeID string, req ManualJumpRequest) (ProgressionResponse, error)
	MassRaise(ctx context.Context, companyID, actorID string, req MassRaiseRequest) (MassRaiseResponse, error)
	MassRaisePreview(ctx context.Context, companyID string, req MassRaiseOptions) (MassRaisePreviewResponse, error)
	Promote(ctx context.Context, companyID, actorID, employeeID string, req PromoteRequest) (ProgressionResponse, error)
}

type service struct {
	db              *sql.DB
	eligibilityRepo eligibility.Repository
	employeeRepo    employee.Repository
	rankRepo        rank.Repository
	historyRepo     history.Repository
	outbox          kafka.OutboxRepository
	counter         counter.Repository
	now             func() time.Time
	logger          *zap.Logger
}

func NewService(
	db *sql.DB,
	eligibilityRepo eligibility.Repository,
	employeeRepo employee.Repository,
	rankRepo rank.Repository,
	historyRepo history.Repository,
	outbox kafka.OutboxRepository,
	counterRepo counter.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("progression.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("progression.service")
	}
	return &service{
		db:              db,
		eligibilityRepo: eligibilityRepo,
		employeeRepo:    employeeRepo,
		rankRepo:        rankRepo,
		historyRepo:     historyRepo,
		outbox:          outbox,
		counter:         counterRepo,
		now:             func() time.Time { return time.Now().UTC() },
		logger:          l,
	}
}

// mutation adalah unit transaksional tunggal: satu entry ledger + satu
// update pegawai (CAS) + transisi/expiry eligibility + satu event outbox.
// Semuanya commit bersama atau tidak sama sekali.
type mutation struct {
	emp            *employee.Employee
	newRankID      uuid.UUID
	toStep         int
	toSalary       decimal.Decimal
	changeType     string
	effectiveDate  time.Time
	isAutomatic    bool
	actor          uuid.UUID
	approvedBy     *uuid.UUID
	reason         *string
	orderReference *string
	documentPath   *string
	notes          *string
	previousRankID *uuid.UUID
	eligibility    *eligibility.Eligibility
	expireUpTo     *int
	expireAll      bool
	explanation    *string
}

func (s *service) ApproveOne(ctx context.Context, companyID, actorID, eligibilityID string, req ApproveRequest) (ProgressionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("approve eligibility requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("eligibility_id", eligibilityID),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ProgressionResponse{}, progressionerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(companyID); err != nil {
		return ProgressionResponse{}, progressionerrors.ErrInvalidCompanyID
	}

	record, err := s.eligibilityRepo.FindByIDAndCompany(ctx, companyID, eligibilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProgressionResponse{}, progressionerrors.ErrEligibilityNotFound
		}
		return ProgressionResponse{}, err
	}
	if record.IsTerminal() {
		s.logger.Warn("approve on non-pending eligibility",
			zap.String("eligibility_id", eligibilityID),
			zap.String("status", record.Status),
		)
		return ProgressionResponse{}, progressionerrors.ErrAlreadyProcessed
	}

	emp, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, record.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProgressionResponse{}, progressionerrors.ErrEmployeeNotFound
		}
		return ProgressionResponse{}, err
	}

	// Default tanggal efektif adalah tanggal due record, sesuai kebijakan
	// jadwal tetap: approval terlambat tidak menggeser tanggal efektif.
	effectiveDate := record.EligibilityDate
	if req.EffectiveDate != nil && *req.EffectiveDate != "" {
		effectiveDate, err = parseDate(*req.EffectiveDate)
		if err != nil {
			return ProgressionResponse{}, err
		}
	}

	m := mutation{
		emp:           emp,
		newRankID:     record.RankID,
		toStep:        record.NextStep,
		toSalary:      record.NextSalary,
		changeType:    history.ChangeTypeStepIncrement,
		effectiveDate: effectiveDate,
		isAutomatic:   true,
		actor:         actorUUID,
		approvedBy:    &actorUUID,
		notes:         req.Notes,
		eligibility:   record,
	}

	resp, err := s.apply(ctx, m)
	if err != nil {
		return ProgressionResponse{}, err
	}

	s.logger.Info("eligibility approved",
		zap.String("eligibility_id", eligibilityID),
		zap.String("employee_id", record.EmployeeID.String()),
		zap.Int("to_step", record.NextStep),
	)
	return resp, nil
}

// ApproveBatch memproses id satu per satu dan terus berjalan melewati
// kegagalan individual. Tidak ada atomicity lintas item.
func (s *service) ApproveBatch(ctx context.Context, companyID, actorID string, req ApproveBatchRequest) (ApproveBatchResponse, error) {
	resp := ApproveBatchResponse{
		Total:   len(req.EligibilityIDs),
		Results: make([]BatchItemResult, 0, len(req.EligibilityIDs)),
	}

	for _, id := range req.EligibilityIDs {
		item := BatchItemResult{EligibilityID: id}

		result, err := s.ApproveOne(ctx, companyID, actorID, id, ApproveRequest{
			EffectiveDate: req.EffectiveDate,
			Notes:         req.Notes,
		})
		if err != nil {
			msg := err.Error()
			item.Error = &msg
			resp.FailureCount++
		} else {
			item.Success = true
			item.Result = &result
			resp.SuccessCount++
		}

		resp.Results = append(resp.Results, item)
	}

	s.logger.Info("approve batch finished",
		zap.String("company_id", companyID),
		zap.Int("total", resp.Total),
		zap.Int("success", resp.SuccessCount),
		zap.Int("failure", resp.FailureCount),
	)
	return resp, nil
}

func (s *service) Reject(ctx context.Context, companyID, actorID, eligibilityID string, req RejectRequest) (RejectResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RejectResponse{}, progressionerrors.ErrInvalidActorID
	}
	if req.Reason == "" {
		return RejectResponse{}, progressionerrors.ErrRejectionReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RejectResponse{}, err
	}
	defer tx.Rollback()

	record, err := s.eligibilityRepo.FindByIDAndCompany(ctx, companyID, eligibilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RejectResponse{}, progressionerrors.ErrEligibilityNotFound
		}
		return RejectResponse{}, err
	}
	if record.IsTerminal() {
		return RejectResponse{}, progressionerrors.ErrAlreadyProcessed
	}

	now := s.now()
	record.Status = eligibility.StatusRejected
	record.ProcessedAt = &now
	record.ProcessedBy = &actorUUID
	record.RejectionReason = &req.Reason

	// Penolakan tidak menyentuh pegawai maupun ledger.
	if err := s.eligibilityRepo.WithTx(tx).Update(ctx, record); err != nil {
		return RejectResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RejectResponse{}, err
	}

	s.logger.Info("eligibility rejected",
		zap.String("eligibility_id", eligibilityID),
		zap.String("employee_id", record.EmployeeID.String()),
	)
	return RejectResponse{
		EligibilityID:   eligibilityID,
		Status:          record.Status,
		RejectionReason: req.Reason,
		ProcessedAt:     now.Format(time.RFC3339),
		ProcessedBy:     actorID,
	}, nil
}

func (s *service) ManualJump(ctx context.Context, companyID, actorID, employeeID string, req ManualJumpRequest) (ProgressionResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ProgressionResponse{}, progressionerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return ProgressionResponse{}, progressionerrors.ErrInvalidEmployeeID
	}

	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return ProgressionResponse{}, err
	}

	emp, rk, err := s.loadRankedEmployee(ctx, companyID, employeeID)
	if err != nil {
		return ProgressionResponse{}, err
	}

	if req.ToStep <= emp.CurrentStep {
		return ProgressionResponse{}, progressionerrors.ErrStepNotHigher
	}

	newSalary, err := salarycalc.SalaryForStep(rk, req.ToStep)
	if err != nil {
		return ProgressionResponse{}, err
	}

	toStep := req.ToStep
	m := mutation{
		emp:            emp,
		newRankID:      rk.ID,
		toStep:         toStep,
		toSalary:       newSalary,
		changeType:     history.ChangeTypeManualJump,
		effectiveDate:  effectiveDate,
		actor:          actorUUID,
		approvedBy:     &actorUUID,
		reason:         &req.Reason,
		orderReference: &req.OrderReference,
		notes:          req.Notes,
		expireUpTo:     &toStep,
	}

	resp, err := s.apply(ctx, m)
	if err != nil {
		return ProgressionResponse{}, err
	}

	s.logger.Info("manual jump applied",
		zap.String("employee_id", employeeID),
		zap.Int("from_step", resp.FromStep),
		zap.Int("to_step", resp.ToStep),
	)
	return resp, nil
}

// MassRaise mengevaluasi setiap pegawai aktif pada satu pangkat secara
// sekuensial, satu transaksi per pegawai. Kegagalan atau skip per pegawai
// tidak pernah menggagalkan keseluruhan batch.
func (s *service) MassRaise(ctx context.Context, companyID, actorID string, req MassRaiseRequest) (MassRaiseResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return MassRaiseResponse{}, progressionerrors.ErrInvalidActorID
	}
	if err := validateRaiseOptions(req.MassRaiseOptions); err != nil {
		return MassRaiseResponse{}, err
	}
	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return MassRaiseResponse{}, err
	}

	rk, employees, err := s.loadRaiseScope(ctx, companyID, req.MassRaiseOptions)
	if err != nil {
		return MassRaiseResponse{}, err
	}

	resp := MassRaiseResponse{
		TotalProcessed: len(employees),
		Results:        make([]MassRaiseItem, 0, len(employees)),
	}

	for i := range employees {
		emp := employees[i]
		item := s.raiseOne(ctx, rk, &emp, req, effectiveDate, actorUUID)
		switch item.Status {
		case MassRaiseItemSuccess:
			resp.SuccessCount++
		case MassRaiseItemSkipped:
			resp.SkippedCount++
		default:
			resp.FailureCount++
		}
		resp.Results = append(resp.Results, item)
	}

	s.logger.Info("mass raise finished",
		zap.String("company_id", companyID),
		zap.String("rank_id", req.RankID),
		zap.Int("total", resp.TotalProcessed),
		zap.Int("success", resp.SuccessCount),
		zap.Int("failure", resp.FailureCount),
		zap.Int("skipped", resp.SkippedCount),
	)
	return resp, nil
}

func (s *service) raiseOne(
	ctx context.Context,
	rk *rank.Rank,
	emp *employee.Employee,
	req MassRaiseRequest,
	effectiveDate time.Time,
	actor uuid.UUID,
) MassRaiseItem {
	item := MassRaiseItem{
		EmployeeID: emp.ID.String(),
		FullName:   emp.FullName,
		FromStep:   emp.CurrentStep,
		FromSalary: emp.CurrentSalary.StringFixed(2),
	}

	newStep := resolveTargetStep(req.MassRaiseOptions, emp.CurrentStep, rk.MaxStep())
	if newStep <= emp.CurrentStep {
		reason := "target not higher than current"
		item.Status = MassRaiseItemSkipped
		item.Reason = &reason
		item.ToStep = emp.CurrentStep
		item.ToSalary = emp.CurrentSalary.StringFixed(2)
		item.Increase = decimal.Zero.StringFixed(2)
		return item
	}

	newSalary, err := salarycalc.SalaryForStep(rk, newStep)
	if err != nil {
		msg := err.Error()
		item.Status = MassRaiseItemFailed
		item.Reason = &msg
		return item
	}

	toStep := newStep
	m := mutation{
		emp:            emp,
		newRankID:      rk.ID,
		toStep:         newStep,
		toSalary:       newSalary,
		changeType:     history.ChangeTypeMassRaise,
		effectiveDate:  effectiveDate,
		actor:          actor,
		approvedBy:     &actor,
		reason:         &req.Reason,
		orderReference: &req.OrderReference,
		notes:          req.Notes,
		expireUpTo:     &toStep,
	}

	if _, err := s.apply(ctx, m); err != nil {
		msg := err.Error()
		item.Status = MassRaiseItemFailed
		item.Reason = &msg
		return item
	}

	item.Status = MassRaiseItemSuccess
	item.ToStep = newStep
	item.ToSalary = newSalary.StringFixed(2)
	item.Increase = newSalary.Sub(emp.CurrentSalary).StringFixed(2)
	return item
}

// MassRaisePreview mensimulasikan MassRaise dengan aturan resolusi step yang
// sama persis, tanpa menulis apapun.
func (s *service) MassRaisePreview(ctx context.Context, companyID string, req MassRaiseOptions) (MassRaisePreviewResponse, error) {
	if err := validateRaiseOptions(req); err != nil {
		return MassRaisePreviewResponse{}, err
	}

	rk, employees, err := s.loadRaiseScope(ctx, companyID, req)
	if err != nil {
		return MassRaisePreviewResponse{}, err
	}

	resp := MassRaisePreviewResponse{
		TotalProcessed: len(employees),
		Results:        make([]MassRaiseItem, 0, len(employees)),
	}

	totalIncrease := decimal.Zero
	for _, emp := range employees {
		item := MassRaiseItem{
			EmployeeID: emp.ID.String(),
			FullName:   emp.FullName,
			FromStep:   emp.CurrentStep,
			FromSalary: emp.CurrentSalary.StringFixed(2),
		}

		newStep := resolveTargetStep(req, emp.CurrentStep, rk.MaxStep())
		if newStep <= emp.CurrentStep {
			reason := "target not higher than current"
			item.Status = MassRaiseItemSkipped
			item.Reason = &reason
			item.ToStep = emp.CurrentStep
			item.ToSalary = emp.CurrentSalary.StringFixed(2)
			item.Increase = decimal.Zero.StringFixed(2)
			resp.SkippedCount++
			resp.Results = append(resp.Results, item)
			continue
		}

		newSalary, err := salarycalc.SalaryForStep(rk, newStep)
		if err != nil {
			msg := err.Error()
			item.Status = MassRaiseItemFailed
			item.Reason = &msg
			resp.FailureCount++
			resp.Results = append(resp.Results, item)
			continue
		}

		increase := newSalary.Sub(emp.CurrentSalary)
		item.Status = MassRaiseItemSuccess
		item.ToStep = newStep
		item.ToSalary = newSalary.StringFixed(2)
		item.Increase = increase.StringFixed(2)
		totalIncrease = totalIncrease.Add(increase)
		resp.RaisableCount++
		resp.Results = append(resp.Results, item)
	}

	resp.TotalIncrease = totalIncrease.StringFixed(2)
	return resp, nil
}

func (s *service) Promote(ctx context.Context, companyID, actorID, employeeID string, req PromoteRequest) (ProgressionResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ProgressionResponse{}, progressionerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return ProgressionResponse{}, progressionerrors.ErrInvalidEmployeeID
	}

	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return ProgressionResponse{}, err
	}

	emp, oldRank, err := s.loadRankedEmployee(ctx, companyID, employeeID)
	if err != nil {
		return ProgressionResponse{}, err
	}
	if oldRank.ID.String() == req.NewRankID {
		return ProgressionResponse{}, progressionerrors.ErrSamePromotionRank
	}

	newRank, err := s.rankRepo.FindByIDAndCompany(ctx, companyID, req.NewRankID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProgressionResponse{}, progressionerrors.ErrRankNotFound
		}
		return ProgressionResponse{}, err
	}

	outcome, err := salarycalc.PromotionStep(oldRank, newRank, emp.CurrentSalary)
	if err != nil {
		return ProgressionResponse{}, err
	}

	previousRankID := oldRank.ID
	m := mutation{
		emp:            emp,
		newRankID:      newRank.ID,
		toStep:         outcome.NewStep,
		toSalary:       outcome.NewSalary,
		changeType:     history.ChangeTypePromotion,
		effectiveDate:  effectiveDate,
		actor:          actorUUID,
		approvedBy:     &actorUUID,
		reason:         req.Reason,
		orderReference: req.OrderReference,
		documentPath:   req.DocumentPath,
		notes:          req.Notes,
		previousRankID: &previousRankID,
		expireAll:      true,
		explanation:    &outcome.Explanation,
	}

	resp, err := s.apply(ctx, m)
	if err != nil {
		return ProgressionResponse{}, err
	}

	s.logger.Info("promotion applied",
		zap.String("employee_id", employeeID),
		zap.String("from_rank", oldRank.ID.String()),
		zap.String("to_rank", newRank.ID.String()),
		zap.Int("to_step", outcome.NewStep),
	)
	return resp, nil
}

// apply menjalankan unit transaksional tunggal yang dipakai semua jalur
// mutasi. Ledger ditulis dan pegawai dimutasi dalam satu transaksi: tidak
// ada entry ledger yatim bila update pegawai gagal.
func (s *service) apply(ctx context.Context, m mutation) (ProgressionResponse, error) {
	entryNo, err := s.counter.GetNextValue(ctx, m.emp.CompanyID.String(), historyCounterType)
	if err != nil {
		return ProgressionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProgressionResponse{}, err
	}
	defer tx.Rollback()

	fromStep := m.emp.CurrentStep
	fromSalary := m.emp.CurrentSalary

	entry := &history.Entry{
		ID:             uuid.New(),
		CompanyID:      m.emp.CompanyID,
		EmployeeID:     m.emp.ID,
		RankID:         m.newRankID,
		EntryNo:        entryNo,
		ChangeType:     m.changeType,
		FromStep:       fromStep,
		ToStep:         m.toStep,
		FromSalary:     fromSalary,
		ToSalary:       m.toSalary,
		EffectiveDate:  m.effectiveDate,
		IsAutomatic:    m.isAutomatic,
		ProcessedBy:    m.actor,
		ApprovedBy:     m.approvedBy,
		Reason:         m.reason,
		OrderReference: m.orderReference,
		DocumentPath:   m.documentPath,
		Notes:          m.notes,
		PreviousRankID: m.previousRankID,
	}

	if err := s.historyRepo.WithTx(tx).Create(ctx, entry); err != nil {
		s.logger.Error("write history entry failed", zap.Error(err))
		return ProgressionResponse{}, err
	}

	updated := *m.emp
	newRankID := m.newRankID
	updated.RankID = &newRankID
	updated.CurrentStep = m.toStep
	updated.CurrentSalary = m.toSalary
	effective := m.effectiveDate
	updated.SalaryEffectiveDate = &effective

	rows, err := s.employeeRepo.WithTx(tx).UpdateProgression(ctx, &updated, fromStep)
	if err != nil {
		s.logger.Error("update employee progression failed", zap.Error(err))
		return ProgressionResponse{}, err
	}
	if rows == 0 {
		s.logger.Warn("concurrent employee mutation detected",
			zap.String("employee_id", m.emp.ID.String()),
			zap.Int("expected_step", fromStep),
		)
		return ProgressionResponse{}, progressionerrors.ErrConcurrentModification
	}

	qElig := s.eligibilityRepo.WithTx(tx)
	var expired int64

	if m.eligibility != nil {
		now := s.now()
		m.eligibility.Status = eligibility.StatusApproved
		m.eligibility.ProcessedAt = &now
		m.eligibility.ProcessedBy = &m.actor
		m.eligibility.HistoryEntryID = &entry.ID
		if err := qElig.Update(ctx, m.eligibility); err != nil {
			return ProgressionResponse{}, err
		}
	}
	if m.expireUpTo != nil {
		expired, err = qElig.ExpirePendingUpTo(ctx, m.emp.ID.String(), *m.expireUpTo, m.actor.String())
		if err != nil {
			return ProgressionResponse{}, err
		}
	}
	if m.expireAll {
		expired, err = qElig.ExpireAllPending(ctx, m.emp.ID.String(), m.actor.String())
		if err != nil {
			return ProgressionResponse{}, err
		}
	}

	if err := s.enqueueEvent(ctx, tx, entry); err != nil {
		return ProgressionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProgressionResponse{}, err
	}

	resp := ProgressionResponse{
		EmployeeID:     m.emp.ID.String(),
		RankID:         m.newRankID.String(),
		ChangeType:     m.changeType,
		FromStep:       fromStep,
		ToStep:         m.toStep,
		FromSalary:     fromSalary.StringFixed(2),
		ToSalary:       m.toSalary.StringFixed(2),
		EffectiveDate:  m.effectiveDate.Format("2006-01-02"),
		HistoryEntryID: entry.ID.String(),
		ExpiredPending: expired,
		Explanation:    m.explanation,
	}
	if m.eligibility != nil {
		id := m.eligibility.ID.String()
		resp.EligibilityID = &id
	}
	return resp, nil
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, entry *history.Entry) error {
	payload, err := json.Marshal(events.SalaryChangedEvent{
		EventType:     entry.ChangeType,
		EmployeeID:    entry.EmployeeID.String(),
		CompanyID:     entry.CompanyID.String(),
		ChangeType:    entry.ChangeType,
		FromStep:      entry.FromStep,
		ToStep:        entry.ToStep,
		FromSalary:    entry.FromSalary.StringFixed(2),
		ToSalary:      entry.ToSalary.StringFixed(2),
		EffectiveDate: entry.EffectiveDate.Format("2006-01-02"),
		OccurredAt:    s.now(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee_salary",
		AggregateID:   entry.EmployeeID.String(),
		EventType:     entry.ChangeType,
		Topic:         events.SalaryChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) loadRankedEmployee(ctx context.Context, companyID, employeeID string) (*employee.Employee, *rank.Rank, error) {
	emp, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, progressionerrors.ErrEmployeeNotFound
		}
		return nil, nil, err
	}
	if !emp.Active {
		return nil, nil, progressionerrors.ErrEmployeeInactive
	}
	if emp.RankID == nil {
		return nil, nil, progressionerrors.ErrEmployeeNotRanked
	}

	rk, err := s.rankRepo.FindByIDAndCompany(ctx, companyID, emp.RankID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, progressionerrors.ErrRankNotFound
		}
		return nil, nil, err
	}
	return emp, rk, nil
}

func (s *service) loadRaiseScope(ctx context.Context, companyID string, opts MassRaiseOptions) (*rank.Rank, []employee.Employee, error) {
	rk, err := s.rankRepo.FindByIDAndCompany(ctx, companyID, opts.RankID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, progressionerrors.ErrRankNotFound
		}
		return nil, nil, err
	}

	employees, err := s.employeeRepo.FindActiveByRank(ctx, companyID, opts.RankID, opts.DepartmentID)
	if err != nil {
		return nil, nil, err
	}
	return rk, employees, nil
}

// resolveTargetStep menghitung step tujuan per pegawai. INCREMENT_STEPS
// dipatok pada max step; TARGET_STEP dibiarkan apa adanya sehingga target
// di luar tabel terdeteksi sebagai schedule gap per pegawai.
func resolveTargetStep(opts MassRaiseOptions, currentStep, maxStep int) int {
	switch opts.RaiseType {
	case RaiseTypeIncrementSteps:
		target := currentStep + *opts.IncrementSteps
		if target > maxStep {
			target = maxStep
		}
		return target
	default:
		return *opts.TargetStep
	}
}

func validateRaiseOptions(opts MassRaiseOptions) error {
	switch opts.RaiseType {
	case RaiseTypeIncrementSteps:
		if opts.IncrementSteps == nil || *opts.IncrementSteps <= 0 {
			return progressionerrors.ErrInvalidRaiseOptions
		}
	case RaiseTypeTargetStep:
		if opts.TargetStep == nil || *opts.TargetStep <= 0 {
			return progressionerrors.ErrInvalidRaiseOptions
		}
	default:
		return progressionerrors.ErrInvalidRaiseOptions
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, progressionerrors.ErrInvalidDateFormat
	}
	return t, nil
}
