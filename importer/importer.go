// Package importer loads the people and hardware documents into the store in
// a single transaction.
package importer

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/camden-git/hackerdb/database"
)

// Result summarizes one committed import run.
type Result struct {
	RunID         uuid.UUID
	People        int
	SkillsCreated int
	SkillsReused  int
	PersonSkills  int
	Hardware      int
}

type Importer struct {
	DB *sql.DB
}

func New(db *sql.DB) *Importer {
	return &Importer{DB: db}
}

// Run inserts every person (with their skills) and then every hardware
// record, in input order, and commits once at the end. On any error the
// transaction is rolled back and nothing from this run is persisted.
func (im *Importer) Run(people []PersonRecord, hardware []HardwareRecord) (Result, error) {
	res := Result{RunID: uuid.New()}

	tx, err := im.DB.Begin()
	if err != nil {
		return res, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Printf("Warning: import %s: rollback failed: %v", res.RunID, rbErr)
		}
	}()

	log.Printf("import %s: importing %d people and %d hardware records", res.RunID, len(people), len(hardware))

	for i, p := range people {
		if err := importPerson(tx, p, &res); err != nil {
			return res, fmt.Errorf("failed to import %s[%d] (%s): %w", DocumentPeople, i, p.Name, err)
		}
	}

	for i, h := range hardware {
		_, err := database.CreateHardware(tx, database.Hardware{
			HardwareName:      h.HardwareName,
			QuantityAvailable: h.QuantityAvailable,
		})
		if err != nil {
			return res, fmt.Errorf("failed to import %s[%d] (%s): %w", DocumentHardware, i, h.HardwareName, err)
		}
		res.Hardware++
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("failed to commit import %s: %w", res.RunID, err)
	}
	committed = true

	log.Printf("import %s: committed %d people, %d new skills (%d reused), %d person skills, %d hardware",
		res.RunID, res.People, res.SkillsCreated, res.SkillsReused, res.PersonSkills, res.Hardware)
	return res, nil
}

func importPerson(tx database.Querier, p PersonRecord, res *Result) error {
	personID, err := database.CreatePerson(tx, database.Person{
		Name:    p.Name,
		Company: p.Company,
		Email:   p.Email,
		Phone:   p.Phone,
	})
	if err != nil {
		return err
	}
	res.People++

	for _, s := range p.Skills {
		skillID, created, err := database.ResolveSkill(tx, s.Skill)
		if err != nil {
			return fmt.Errorf("failed to resolve skill %q: %w", s.Skill, err)
		}
		if created {
			res.SkillsCreated++
		} else {
			res.SkillsReused++
		}

		if err := database.AddPersonSkill(tx, personID, skillID, s.Rating); err != nil {
			return err
		}
		res.PersonSkills++
	}
	return nil
}
