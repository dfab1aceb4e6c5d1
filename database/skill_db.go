package database

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// FindSkillID returns the skill_id of the row whose name matches exactly.
// Returns sql.ErrNoRows when there is none.
func FindSkillID(db Querier, name string) (int64, error) {
	queryBuilder := psql.Select("skill_id").
		From(TableSkill).
		Where(sq.Eq{"skill": name}).
		OrderBy("skill_id ASC").
		Limit(1)
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL for FindSkillID: %w", err)
	}
	var skillID int64
	err = db.QueryRow(sqlStr, args...).Scan(&skillID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, sql.ErrNoRows
		}
		return 0, fmt.Errorf("failed to query skill %q: %w", name, err)
	}
	return skillID, nil
}

// CreateSkill inserts a Skill row and returns the generated skill_id.
func CreateSkill(db Querier, name string) (int64, error) {
	queryBuilder := psql.Insert(TableSkill).
		Columns("skill").
		Values(name).
		Suffix("RETURNING skill_id")
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL for CreateSkill: %w", err)
	}
	var skillID int64
	err = db.QueryRow(sqlStr, args...).Scan(&skillID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute CreateSkill query for %q: %w", name, err)
	}
	return skillID, nil
}

// ResolveSkill returns the key of the skill with this exact name, inserting it
// first if it does not exist yet. created reports whether a row was inserted.
//
// The lookup and the insert are separate statements. Two writers resolving
// the same new name at the same time can both insert it, so callers must hold
// exclusive write access to the store.
func ResolveSkill(db Querier, name string) (skillID int64, created bool, err error) {
	skillID, err = FindSkillID(db, name)
	if err == nil {
		return skillID, false, nil
	}
	if err != sql.ErrNoRows {
		return 0, false, err
	}

	skillID, err = CreateSkill(db, name)
	if err != nil {
		return 0, false, err
	}
	return skillID, true, nil
}
