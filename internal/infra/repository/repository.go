package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"bookwise/internal/infra"
	"bookwise/internal/pkg/pgconv"
)

// Postgres error codes the write side cares about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeExclusionViolation  = "23P01"
)

// wrapWriteErr classifies a pgx error into a repository kind. An exclusion
// violation on the booking slot constraint means another transaction already
// holds an overlapping slot.
func wrapWriteErr(msg string, err error) error {
	if err == nil {
		return nil
	}
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case codeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		case codeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
