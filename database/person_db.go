package database

import (
	"fmt"
)

type Person struct {
	Name    string
	Company string
	Email   string
	Phone   string
}

// CreatePerson inserts a Person row and returns the generated person_id.
func CreatePerson(db Querier, p Person) (int64, error) {
	queryBuilder := psql.Insert(TablePerson).
		Columns("name", "company", "email", "phone").
		Values(p.Name, p.Company, p.Email, p.Phone).
		Suffix("RETURNING person_id")
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL for CreatePerson: %w", err)
	}
	var personID int64
	err = db.QueryRow(sqlStr, args...).Scan(&personID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute CreatePerson query for %s: %w", p.Name, err)
	}
	return personID, nil
}

// AddPersonSkill links a person to a skill with the given rating.
func AddPersonSkill(db Querier, personID, skillID int64, rating int) error {
	queryBuilder := psql.Insert(TablePersonSkill).
		Columns("person_id", "skill_id", "rating").
		Values(personID, skillID, rating)
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build SQL for AddPersonSkill: %w", err)
	}
	_, err = db.Exec(sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to execute AddPersonSkill for person %d, skill %d: %w", personID, skillID, err)
	}
	return nil
}
