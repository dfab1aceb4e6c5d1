package database

import (
	"fmt"
)

type Hardware struct {
	HardwareName      string
	QuantityAvailable int
}

// CreateHardware inserts a Hardware row verbatim and returns its hardware_id.
func CreateHardware(db Querier, h Hardware) (int64, error) {
	queryBuilder := psql.Insert(TableHardware).
		Columns("hardware_name", "quantity_available").
		Values(h.HardwareName, h.QuantityAvailable).
		Suffix("RETURNING hardware_id")
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL for CreateHardware: %w", err)
	}
	var hardwareID int64
	err = db.QueryRow(sqlStr, args...).Scan(&hardwareID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute CreateHardware query for %s: %w", h.HardwareName, err)
	}
	return hardwareID, nil
}
