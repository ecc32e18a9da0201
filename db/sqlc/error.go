package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicateProfile = errors.New("profile already exists")
	ErrDuplicateTagRule = errors.New("profile already has a tag with this name")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrTagRuleNotFound  = errors.New("tag rule not found")
)

// Constraint names from the schema, for translating pg errors into the
// sentinels above.
const (
	profileNameKey        = "profiles_name_key"
	tagRuleProfileNameIdx = "tag_rules_profile_id_name_idx"
	tagRuleProfileFkey    = "tag_rules_profile_id_fkey"
)

const uniqueViolation = "23505"

// violatesConstraint checks if err is a pg error on a particular constraint.
func violatesConstraint(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code && pgErr.ConstraintName == constraint
}

// TranslateError maps low-level pg errors onto the package sentinels.
// Errors with no mapping come back unchanged.
func TranslateError(err error) error {
	switch {
	case violatesConstraint(err, uniqueViolation, profileNameKey):
		return ErrDuplicateProfile
	case violatesConstraint(err, uniqueViolation, tagRuleProfileNameIdx):
		return ErrDuplicateTagRule
	default:
		return err
	}
}
