package persistence

import (
	"context"
)

// initSchema creates all required tables if they don't exist.
func (s *SQLiteStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		total_effort INTEGER NOT NULL,
		project_finish INTEGER NOT NULL,
		critical_path TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS run_tasks (
		run_id TEXT NOT NULL,
		task_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		effort INTEGER NOT NULL,
		priority INTEGER NOT NULL,
		capabilities TEXT,
		acceptance_criteria TEXT,
		labels TEXT,
		phase_slug TEXT NOT NULL,
		earliest_start INTEGER NOT NULL,
		earliest_finish INTEGER NOT NULL,
		latest_start INTEGER NOT NULL,
		latest_finish INTEGER NOT NULL,
		slack INTEGER NOT NULL,
		critical INTEGER NOT NULL,
		PRIMARY KEY (run_id, task_id),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_run_tasks_run_position ON run_tasks(run_id, position);

	CREATE TABLE IF NOT EXISTS run_dependencies (
		run_id TEXT NOT NULL,
		task_id TEXT NOT NULL,
		depends_on_id TEXT NOT NULL,
		PRIMARY KEY (run_id, task_id, depends_on_id),
		FOREIGN KEY (run_id, task_id) REFERENCES run_tasks(run_id, task_id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_run_dependencies_task ON run_dependencies(run_id, task_id);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}
