// Package record appends each published plan cycle to a sqlite drive file
// and renders standalone html reports from it.
package record

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/agegold/openpilot-085/plan"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS drives (
		session TEXT PRIMARY KEY,
		vehicle TEXT,
		started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS samples (
		session TEXT,
		t DOUBLE,
		v_ego DOUBLE,
		v_cruise DOUBLE,
		v_target DOUBLE,
		a_target DOUBLE,
		v_target_future DOUBLE,
		source TEXT,
		has_lead INTEGER,
		d_rel DOUBLE,
		v_rel DOUBLE,
		fcw INTEGER,
		FOREIGN KEY(session) REFERENCES drives(session)
	);
	CREATE INDEX IF NOT EXISTS samples_by_session ON samples(session, t);
`

// Recorder writes one drive session. Open starts a new session row, Record
// appends one cycle, Close ends the session.
type Recorder struct {
	db      *sql.DB
	session string
}

func Open(path string, vehicleName string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "could not create drive directory")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open drive file")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "could not create drive schema")
	}

	session := uuid.New().String()
	if _, err := db.Exec("INSERT INTO drives (session, vehicle) VALUES (?, ?)", session, vehicleName); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "could not start drive")
	}

	return &Recorder{db: db, session: session}, nil
}

func (r *Recorder) Session() string {
	return r.session
}

func (r *Recorder) Record(t float64, vEgo float64, out plan.Output, lead plan.Lead) error {
	_, err := r.db.Exec(`
		INSERT INTO samples (session, t, v_ego, v_cruise, v_target, a_target, v_target_future, source, has_lead, d_rel, v_rel, fcw)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.session, t, vEgo, out.VCruise, out.VTarget, out.ATarget, out.VTargetFuture,
		out.Source.String(), boolInt(out.HasLead), lead.DRel, lead.VRel, boolInt(out.Fcw))
	return errors.Wrap(err, "could not record sample")
}

func (r *Recorder) Close() error {
	return r.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
