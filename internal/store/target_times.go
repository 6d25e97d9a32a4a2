package store

import (
	"context"
	"fmt"

	"worklog/internal/database"
	"worklog/internal/model"
)

func GetTargetTimes(ctx context.Context, db database.DB) (*model.TargetTimes, error) {
	row := db.QueryRow(ctx,
		`SELECT weekday_target, weekend_target, updated_by, updated_at
		 FROM target_working_times
		 ORDER BY id DESC LIMIT 1`,
	)
	t := &model.TargetTimes{}
	if err := row.Scan(&t.WeekdayTarget, &t.WeekendTarget, &t.UpdatedBy, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("GetTargetTimes: %w", err)
	}
	return t, nil
}

// UpdateTargetTimes upserts the singleton configuration row in place.
func UpdateTargetTimes(ctx context.Context, db database.DB, weekday, weekend float64, updatedBy int) (*model.TargetTimes, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO target_working_times (id, weekday_target, weekend_target, updated_by, updated_at)
		 VALUES (1, $1, $2, $3, now())
		 ON CONFLICT (id) DO UPDATE
		 SET weekday_target = EXCLUDED.weekday_target,
		     weekend_target = EXCLUDED.weekend_target,
		     updated_by = EXCLUDED.updated_by,
		     updated_at = EXCLUDED.updated_at
		 RETURNING weekday_target, weekend_target, updated_by, updated_at`,
		weekday,
		weekend,
		updatedBy,
	)
	t := &model.TargetTimes{}
	if err := row.Scan(&t.WeekdayTarget, &t.WeekendTarget, &t.UpdatedBy, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("UpdateTargetTimes: %w", err)
	}
	return t, nil
}
