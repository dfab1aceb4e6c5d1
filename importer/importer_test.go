package importer

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/camden-git/hackerdb/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hackers.db")
	gdb, err := database.InitGormDB(path, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateModels(gdb))
	gormSQL, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, gormSQL.Close())

	db, err := database.InitDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

var samplePeople = []PersonRecord{
	{Name: "A", Company: "C1", Email: "a@x.com", Phone: "1", Skills: []SkillRating{{Skill: "Go", Rating: 4}, {Skill: "SQL", Rating: 2}}},
	{Name: "B", Company: "C2", Email: "b@x.com", Phone: "2", Skills: []SkillRating{{Skill: "Go", Rating: 5}}},
	{Name: "C", Company: "C1", Email: "c@x.com", Phone: "3", Skills: nil},
	{Name: "D", Company: "C3", Email: "d@x.com", Phone: "4", Skills: []SkillRating{{Skill: "go", Rating: 1}, {Skill: "SQL", Rating: 3}}},
}

var sampleHardware = []HardwareRecord{
	{HardwareName: "Drill", QuantityAvailable: 3},
	{HardwareName: "Saw", QuantityAvailable: 0},
}

func TestRunExampleScenario(t *testing.T) {
	db := newTestDB(t)

	res, err := New(db).Run(
		[]PersonRecord{{Name: "A", Company: "C1", Email: "a@x.com", Phone: "1", Skills: []SkillRating{{Skill: "Go", Rating: 4}}}},
		[]HardwareRecord{{HardwareName: "Drill", QuantityAvailable: 3}},
	)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.RunID)
	assert.Equal(t, 1, res.People)
	assert.Equal(t, 1, res.SkillsCreated)
	assert.Equal(t, 1, res.PersonSkills)
	assert.Equal(t, 1, res.Hardware)

	var name, company, email, phone string
	require.NoError(t, db.QueryRow("SELECT name, company, email, phone FROM Person").Scan(&name, &company, &email, &phone))
	assert.Equal(t, []string{"A", "C1", "a@x.com", "1"}, []string{name, company, email, phone})

	var skill string
	var rating int
	err = db.QueryRow(`SELECT s.skill, ps.rating FROM PersonSkill ps
		JOIN Skill s ON s.skill_id = ps.skill_id
		JOIN Person p ON p.person_id = ps.person_id
		WHERE p.name = ?`, "A").Scan(&skill, &rating)
	require.NoError(t, err)
	assert.Equal(t, "Go", skill)
	assert.Equal(t, 4, rating)

	var hwName string
	var qty int
	require.NoError(t, db.QueryRow("SELECT hardware_name, quantity_available FROM Hardware").Scan(&hwName, &qty))
	assert.Equal(t, "Drill", hwName)
	assert.Equal(t, 3, qty)
}

func TestRunPeopleInOrderWithIncreasingKeys(t *testing.T) {
	db := newTestDB(t)

	_, err := New(db).Run(samplePeople, sampleHardware)
	require.NoError(t, err)

	rows, err := db.Query("SELECT person_id, name FROM Person ORDER BY person_id ASC")
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	var last int64
	for rows.Next() {
		var id int64
		var name string
		require.NoError(t, rows.Scan(&id, &name))
		assert.Greater(t, id, last)
		last = id
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"A", "B", "C", "D"}, names)
}

func TestRunOneSkillRowPerDistinctName(t *testing.T) {
	db := newTestDB(t)

	res, err := New(db).Run(samplePeople, sampleHardware)
	require.NoError(t, err)

	// Go, SQL, go
	assert.Equal(t, 3, res.SkillsCreated)
	assert.Equal(t, 2, res.SkillsReused)
	assert.Equal(t, 3, countRows(t, db, database.TableSkill))

	var dupes int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM (SELECT skill FROM Skill GROUP BY skill HAVING COUNT(*) > 1)`).Scan(&dupes))
	assert.Equal(t, 0, dupes)
}

func TestRunOneLinkPerPersonSkillPair(t *testing.T) {
	db := newTestDB(t)

	res, err := New(db).Run(samplePeople, sampleHardware)
	require.NoError(t, err)
	assert.Equal(t, 5, res.PersonSkills)
	assert.Equal(t, 5, countRows(t, db, database.TablePersonSkill))

	for _, p := range samplePeople {
		for _, s := range p.Skills {
			var rating int
			err := db.QueryRow(`SELECT ps.rating FROM PersonSkill ps
				JOIN Person p ON p.person_id = ps.person_id
				JOIN Skill s ON s.skill_id = ps.skill_id
				WHERE p.name = ? AND s.skill = ?`, p.Name, s.Skill).Scan(&rating)
			require.NoError(t, err, "%s/%s", p.Name, s.Skill)
			assert.Equal(t, s.Rating, rating, "%s/%s", p.Name, s.Skill)
		}
	}
}

func TestRunHardwareCopiedVerbatim(t *testing.T) {
	db := newTestDB(t)

	_, err := New(db).Run(nil, sampleHardware)
	require.NoError(t, err)

	rows, err := db.Query("SELECT hardware_name, quantity_available FROM Hardware ORDER BY hardware_id ASC")
	require.NoError(t, err)
	defer rows.Close()

	var got []HardwareRecord
	for rows.Next() {
		var h HardwareRecord
		require.NoError(t, rows.Scan(&h.HardwareName, &h.QuantityAvailable))
		got = append(got, h)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, sampleHardware, got)
}

func TestRunTwiceDoesNotDuplicateSkills(t *testing.T) {
	db := newTestDB(t)
	im := New(db)

	first, err := im.Run(samplePeople, sampleHardware)
	require.NoError(t, err)
	second, err := im.Run(samplePeople, sampleHardware)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, 0, second.SkillsCreated)
	assert.Equal(t, 5, second.SkillsReused)

	assert.Equal(t, 8, countRows(t, db, database.TablePerson))
	assert.Equal(t, 10, countRows(t, db, database.TablePersonSkill))
	assert.Equal(t, 4, countRows(t, db, database.TableHardware))
	assert.Equal(t, 3, countRows(t, db, database.TableSkill))
}

func TestRunRollsBackOnStoreError(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Exec("DROP TABLE Hardware")
	require.NoError(t, err)

	_, err = New(db).Run(samplePeople, sampleHardware)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hardware[0]")

	assert.Equal(t, 0, countRows(t, db, database.TablePerson))
	assert.Equal(t, 0, countRows(t, db, database.TableSkill))
	assert.Equal(t, 0, countRows(t, db, database.TablePersonSkill))
}

func TestRunEmptyDocuments(t *testing.T) {
	db := newTestDB(t)

	res, err := New(db).Run(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.People)
	assert.Equal(t, 0, res.Hardware)
	assert.Equal(t, 0, countRows(t, db, database.TablePerson))
}
