package jobs

import (
	"context"
	"time"

	"fieldwork-backend/internal/logger"
)

// SendDailyReportReminders pushes a reminder to every active employee who has
// not yet submitted a daily report for today and has a registered device.
func (jr *JobRunner) SendDailyReportReminders() {
	jr.runWithRecovery("SendDailyReportReminders", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		query := `
			SELECT u.id, u.name, u.device_token
			FROM users u
			WHERE u.active
			  AND u.role = 'EMPLOYEE'
			  AND u.device_token IS NOT NULL
			  AND NOT EXISTS (
				SELECT 1 FROM daily_reports d
				WHERE d.employee_id = u.id AND d.report_date = $1
			  )
		`

		rows, err := jr.db.QueryContext(ctx, query, today)
		if err != nil {
			logger.Error("Failed to query employees without a report", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				userID      int32
				name        string
				deviceToken string
			)
			if err := rows.Scan(&userID, &name, &deviceToken); err != nil {
				logger.Error("Failed to scan employee row", "error", err)
				continue
			}

			err := jr.push.Send(ctx, deviceToken,
				"Daily report reminder",
				"You have not submitted your daily report for today yet.")
			if err != nil {
				logger.Error("Failed to send report reminder",
					"user_id", userID,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent report reminder", "user_id", userID, "date", today)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating employees", "error", err)
			return
		}

		logger.Info("Report reminders sent", "count", count, "date", today)
	})
}
