package store

import (
	"context"
	"fmt"
	"time"

	"worklog/internal/database"
	"worklog/internal/model"
)

func ListReportsByUser(ctx context.Context, db database.DB, userID int) ([]model.Report, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.user_id, u.name, r.report_date, r.working_hours, r.description, r.created_at
		 FROM work_reports r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.user_id = $1
		 ORDER BY r.report_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReportsByUser: %w", err)
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		var r model.Report
		if err := rows.Scan(&r.ID, &r.UserID, &r.UserName, &r.ReportDate, &r.WorkingHours, &r.Description, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListReportsByUser: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReportsByUser: %w", err)
	}
	return reports, nil
}

func GetReportByID(ctx context.Context, db database.DB, reportID int) (*model.Report, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, report_date, working_hours, description, created_at
		 FROM work_reports WHERE id = $1`,
		reportID,
	)
	r := &model.Report{}
	if err := row.Scan(&r.ID, &r.UserID, &r.ReportDate, &r.WorkingHours, &r.Description, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetReportByID: %w", err)
	}
	return r, nil
}

// CreateReport inserts a report. The (user_id, report_date) unique
// constraint is the only duplicate-date check; a violation surfaces
// through IsUniqueViolation.
func CreateReport(ctx context.Context, db database.DB, r *model.Report) (*model.Report, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO work_reports (user_id, report_date, working_hours, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		r.UserID,
		r.ReportDate,
		r.WorkingHours,
		r.Description,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateReport: %w", err)
	}
	return r, nil
}

func UpdateReport(ctx context.Context, db database.DB, reportID int, workingHours float64, description *string) error {
	_, err := db.Exec(ctx,
		`UPDATE work_reports SET working_hours = $1, description = $2
		 WHERE id = $3`,
		workingHours,
		description,
		reportID,
	)
	if err != nil {
		return fmt.Errorf("UpdateReport: %w", err)
	}
	return nil
}

func DeleteReport(ctx context.Context, db database.DB, reportID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM work_reports WHERE id = $1`,
		reportID,
	)
	if err != nil {
		return fmt.Errorf("DeleteReport: %w", err)
	}
	return nil
}

// ListReportsBetween returns all non-admin users' reports with
// report_date in [start, end], joined to the owner's name.
func ListReportsBetween(ctx context.Context, db database.DB, start, end time.Time) ([]model.Report, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.user_id, u.name, r.report_date, r.working_hours, r.description, r.created_at
		 FROM work_reports r
		 JOIN users u ON u.id = r.user_id
		 WHERE u.role <> 'admin' AND r.report_date BETWEEN $1 AND $2
		 ORDER BY r.report_date`,
		start,
		end,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReportsBetween: %w", err)
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		var r model.Report
		if err := rows.Scan(&r.ID, &r.UserID, &r.UserName, &r.ReportDate, &r.WorkingHours, &r.Description, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListReportsBetween: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReportsBetween: %w", err)
	}
	return reports, nil
}

// SumMonthHours totals every working hour logged in the month, with no
// role filter: admins do not file reports, and the progress numerator
// counts whatever was logged.
func SumMonthHours(ctx context.Context, db database.DB, year, month int) (float64, error) {
	row := db.QueryRow(ctx,
		`SELECT COALESCE(SUM(working_hours), 0)
		 FROM work_reports
		 WHERE EXTRACT(YEAR FROM report_date) = $1
		   AND EXTRACT(MONTH FROM report_date) = $2`,
		year,
		month,
	)
	var total float64
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("SumMonthHours: %w", err)
	}
	return total, nil
}

// TopUserByHours returns the non-admin user with the most hours logged
// in the month. IsNotFound is true when nothing was logged.
func TopUserByHours(ctx context.Context, db database.DB, year, month int) (string, float64, error) {
	row := db.QueryRow(ctx,
		`SELECT u.name, SUM(r.working_hours) AS total_hours
		 FROM work_reports r
		 JOIN users u ON u.id = r.user_id
		 WHERE u.role <> 'admin'
		   AND EXTRACT(YEAR FROM r.report_date) = $1
		   AND EXTRACT(MONTH FROM r.report_date) = $2
		 GROUP BY u.id, u.name
		 ORDER BY total_hours DESC, u.name
		 LIMIT 1`,
		year,
		month,
	)
	var name string
	var hours float64
	if err := row.Scan(&name, &hours); err != nil {
		return "", 0, fmt.Errorf("TopUserByHours: %w", err)
	}
	return name, hours, nil
}
