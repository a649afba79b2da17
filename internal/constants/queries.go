package constants

const (
	// Exclusion records. Creates are idempotent: a duplicate insert racing
	// with an identical request must count as already-satisfied.
	InsertGlobalUnsubscribe = `
	INSERT INTO project_unsubscribes (user_id, project_id)
	VALUES ($1, NULL)
	ON CONFLICT (user_id) WHERE project_id IS NULL DO NOTHING
	`

	InsertProjectUnsubscribe = `
	INSERT INTO project_unsubscribes (user_id, project_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id, project_id) DO NOTHING
	`

	DeleteGlobalUnsubscribe = `
	DELETE FROM project_unsubscribes WHERE user_id = $1 AND project_id IS NULL
	`

	DeleteProjectUnsubscribe = `
	DELETE FROM project_unsubscribes WHERE user_id = $1 AND project_id = $2
	`

	SelectUnsubscribesByUser = `
	SELECT id, user_id, project_id, created_at
	FROM project_unsubscribes
	WHERE user_id = $1
	ORDER BY id
	`

	// Reminder queue. The settings flow only ever deletes; inserts exist for
	// the project-page opt-in and for seeding.
	InsertReminder = `
	INSERT INTO reminder_queue (user_id, project_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id, project_id) DO NOTHING
	`

	DeleteReminder = `
	DELETE FROM reminder_queue WHERE user_id = $1 AND project_id = $2
	`

	SelectRemindersByUser = `
	SELECT user_id, project_id, created_at
	FROM reminder_queue
	WHERE user_id = $1
	ORDER BY project_id
	`

	SelectDueReminders = `
	SELECT r.user_id, r.project_id, r.created_at
	FROM reminder_queue r
	JOIN projects p ON p.id = r.project_id
	WHERE p.online_date IS NOT NULL AND p.online_date <= $1
	ORDER BY r.created_at
	LIMIT $2
	`
)
