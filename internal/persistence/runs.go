package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/okessler/taskforge/internal/blueprint"
	"github.com/okessler/taskforge/internal/plan"
)

// List columns join multi-valued fields: capabilities and labels are
// comma-separated tags; acceptance criteria are newline-separated since they
// are free text.
const (
	tagSeparator      = ","
	criteriaSeparator = "\n"
)

// SaveRun persists a run, its tasks, and its dependency edges in one
// transaction. Saves are idempotent: re-saving the same run id replaces it.
func (s *SQLiteStore) SaveRun(ctx context.Context, run *RunRecord) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, title, description, category, total_effort, project_finish, critical_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			category = excluded.category,
			total_effort = excluded.total_effort,
			project_finish = excluded.project_finish,
			critical_path = excluded.critical_path
	`, run.ID, run.Title, run.Description, run.Category,
		run.Analysis.TotalEffort, run.Analysis.ProjectFinish,
		strings.Join(run.Analysis.CriticalPath, tagSeparator))
	if err != nil {
		return fmt.Errorf("failed to upsert run: %w", err)
	}

	// Replace tasks wholesale; the cascade clears dependencies too.
	_, err = tx.ExecContext(ctx, `DELETE FROM run_tasks WHERE run_id = ?`, run.ID)
	if err != nil {
		return fmt.Errorf("failed to delete old tasks: %w", err)
	}

	for i, node := range run.Nodes {
		timing := run.Analysis.Timings[node.ID]
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_tasks (run_id, task_id, position, title, description, effort, priority,
				capabilities, acceptance_criteria, labels, phase_slug,
				earliest_start, earliest_finish, latest_start, latest_finish, slack, critical)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, run.ID, node.ID, i, node.Title, node.Description, node.Effort, int(node.Priority),
			strings.Join(node.Capabilities, tagSeparator),
			strings.Join(node.AcceptanceCriteria, criteriaSeparator),
			strings.Join(node.Labels, tagSeparator),
			node.PhaseSlug,
			timing.EarliestStart, timing.EarliestFinish, timing.LatestStart, timing.LatestFinish,
			timing.Slack, boolToInt(timing.Critical))
		if err != nil {
			return fmt.Errorf("failed to insert task %s: %w", node.ID, err)
		}

		for _, depID := range node.DependsOn {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO run_dependencies (run_id, task_id, depends_on_id)
				VALUES (?, ?, ?)
			`, run.ID, node.ID, depID)
			if err != nil {
				return fmt.Errorf("failed to insert dependency %s -> %s: %w", node.ID, depID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRun retrieves a persisted run with its tasks (in original insertion
// order) and reconstructed analysis.
func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*RunRecord, error) {
	run := &RunRecord{ID: runID, Analysis: &plan.Analysis{Timings: make(map[string]plan.NodeTiming)}}
	var criticalPath string

	err := s.db.QueryRowContext(ctx, `
		SELECT title, description, category, total_effort, project_finish, critical_path, created_at
		FROM runs
		WHERE id = ?
	`, runID).Scan(&run.Title, &run.Description, &run.Category,
		&run.Analysis.TotalEffort, &run.Analysis.ProjectFinish, &criticalPath, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	if criticalPath != "" {
		run.Analysis.CriticalPath = strings.Split(criticalPath, tagSeparator)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT task_id, title, description, effort, priority, capabilities, acceptance_criteria,
			labels, phase_slug, earliest_start, earliest_finish, latest_start, latest_finish, slack, critical
		FROM run_tasks
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		node := &plan.TaskNode{Category: blueprint.WorkCategory(run.Category)}
		var timing plan.NodeTiming
		var priority, critical int
		var capabilities, criteria, labels string

		err := rows.Scan(&node.ID, &node.Title, &node.Description, &node.Effort, &priority,
			&capabilities, &criteria, &labels, &node.PhaseSlug,
			&timing.EarliestStart, &timing.EarliestFinish, &timing.LatestStart, &timing.LatestFinish,
			&timing.Slack, &critical)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}

		node.Priority = blueprint.Priority(priority)
		node.Capabilities = splitList(capabilities, tagSeparator)
		node.AcceptanceCriteria = splitList(criteria, criteriaSeparator)
		node.Labels = splitList(labels, tagSeparator)
		timing.Critical = critical != 0

		// Load dependencies in insertion order
		depRows, err := s.db.QueryContext(ctx, `
			SELECT depends_on_id
			FROM run_dependencies
			WHERE run_id = ? AND task_id = ?
			ORDER BY rowid
		`, runID, node.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to query dependencies for task %s: %w", node.ID, err)
		}
		for depRows.Next() {
			var depID string
			if err := depRows.Scan(&depID); err != nil {
				depRows.Close()
				return nil, fmt.Errorf("failed to scan dependency: %w", err)
			}
			node.DependsOn = append(node.DependsOn, depID)
		}
		depRows.Close()
		if err := depRows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating dependencies: %w", err)
		}

		run.Nodes = append(run.Nodes, node)
		run.Analysis.Timings[node.ID] = timing
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return run, nil
}

// ListRuns returns header information for persisted runs, newest first.
// A limit <= 0 returns everything.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]RunInfo, error) {
	if limit <= 0 {
		limit = -1 // no LIMIT in SQLite
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.title, r.category, r.total_effort, r.created_at,
			(SELECT COUNT(*) FROM run_tasks t WHERE t.run_id = r.id)
		FROM runs r
		ORDER BY r.created_at DESC, r.id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var infos []RunInfo
	for rows.Next() {
		var info RunInfo
		if err := rows.Scan(&info.ID, &info.Title, &info.Category, &info.TotalEffort, &info.CreatedAt, &info.NodeCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return infos, nil
}

func splitList(joined, sep string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, sep)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
