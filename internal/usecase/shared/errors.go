package shared

import (
	"salon-queue/internal/infra"
	"salon-queue/internal/pkg/errs"
)

// MapRepoErr turns repository failures into classified errors. Errors that already
// carry a classification pass through untouched.
func MapRepoErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if _, ok := errs.Classify(err); ok {
		return err
	}
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
