package database

import (
	"database/sql"
	"time"
)

// JobView is one row of the local browsing history.
type JobView struct {
	JobID    string
	Title    string
	Company  string
	Location string
	ViewedAt time.Time
}

// ApplicationRecord is one locally logged submission.
type ApplicationRecord struct {
	ID          int
	JobID       string
	Title       string
	Company     string
	SubmittedAt time.Time
}

// SavedSearch is a named search query string.
type SavedSearch struct {
	ID        int
	Name      string
	Query     string
	CreatedAt time.Time
}

// Job view operations

// RecordJobView upserts a viewed job, refreshing its timestamp on revisit.
func RecordJobView(view *JobView) error {
	query := `INSERT INTO viewed_jobs (job_id, title, company, location, viewed_at)
			  VALUES (?, ?, ?, ?, ?)
			  ON CONFLICT(job_id) DO UPDATE SET
				title=excluded.title, company=excluded.company,
				location=excluded.location, viewed_at=excluded.viewed_at`
	_, err := DB.Exec(query, view.JobID, view.Title, view.Company, view.Location, time.Now())
	return err
}

func GetRecentViews(limit int) ([]*JobView, error) {
	query := `SELECT job_id, title, company, location, viewed_at
			  FROM viewed_jobs ORDER BY viewed_at DESC LIMIT ?`
	rows, err := DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := []*JobView{}
	for rows.Next() {
		view := &JobView{}
		err := rows.Scan(&view.JobID, &view.Title, &view.Company, &view.Location, &view.ViewedAt)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func ClearViews() error {
	_, err := DB.Exec(`DELETE FROM viewed_jobs`)
	return err
}

// Application log operations

func LogApplication(record *ApplicationRecord) error {
	query := `INSERT INTO application_log (job_id, title, company) VALUES (?, ?, ?)`
	result, err := DB.Exec(query, record.JobID, record.Title, record.Company)
	if err != nil {
		return err
	}
	id, _ := result.LastInsertId()
	record.ID = int(id)
	return nil
}

func GetApplicationLog() ([]*ApplicationRecord, error) {
	query := `SELECT id, job_id, title, company, submitted_at
			  FROM application_log ORDER BY submitted_at DESC`
	rows, err := DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*ApplicationRecord{}
	for rows.Next() {
		record := &ApplicationRecord{}
		err := rows.Scan(&record.ID, &record.JobID, &record.Title, &record.Company, &record.SubmittedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// HasApplied reports whether a submission for the job was logged locally.
func HasApplied(jobID string) (bool, error) {
	var count int
	err := DB.QueryRow(`SELECT COUNT(*) FROM application_log WHERE job_id=?`, jobID).Scan(&count)
	return count > 0, err
}

// Saved search operations

// SaveSearch stores a search query string under a name, replacing any
// previous query with the same name.
func SaveSearch(name, query string) error {
	insertQuery := `INSERT OR REPLACE INTO saved_searches (name, query) VALUES (?, ?)`
	_, err := DB.Exec(insertQuery, name, query)
	return err
}

// GetSavedSearch looks up a saved search by name, nil when absent.
func GetSavedSearch(name string) (*SavedSearch, error) {
	query := `SELECT id, name, query, created_at FROM saved_searches WHERE name=?`
	s := &SavedSearch{}
	err := DB.QueryRow(query, name).Scan(&s.ID, &s.Name, &s.Query, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func GetSavedSearches() ([]*SavedSearch, error) {
	query := `SELECT id, name, query, created_at FROM saved_searches ORDER BY created_at DESC`
	rows, err := DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	searches := []*SavedSearch{}
	for rows.Next() {
		s := &SavedSearch{}
		err := rows.Scan(&s.ID, &s.Name, &s.Query, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		searches = append(searches, s)
	}
	return searches, nil
}

func DeleteSavedSearch(name string) error {
	_, err := DB.Exec(`DELETE FROM saved_searches WHERE name=?`, name)
	return err
}
