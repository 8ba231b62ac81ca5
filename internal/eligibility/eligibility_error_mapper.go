package eligibility

import (
	"errors"
	"strings"

	eligibilityerrors "go-paygrade/internal/eligibility/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uq_eligibility_open_step adalah partial unique index pada
// (employee_id, next_step) WHERE status = 'PENDING'. Index ini menjadi
// backstop invariant "maksimal satu record non-terminal per pasangan".
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_eligibility_open_step" {
			return eligibilityerrors.ErrDuplicateOpenEligibility
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_eligibility_open_step") {
		return eligibilityerrors.ErrDuplicateOpenEligibility
	}

	return err
}
