// store.go --  This file is part of goXC project.
// Mirzaeva Irina, 2023
//
//	goXC is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

// Package store keeps finite-difference validation runs in SQLite.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
}

// Run is one comparison of analytic derivatives against finite
// differences.
type Run struct {
	ID         string    `db:"id"`
	Functional string    `db:"functional"`
	NSpin      int       `db:"nspin"`
	Kernel     string    `db:"kernel"`
	Points     int       `db:"points"`
	Compared   int       `db:"compared"`
	MaxRelErr  float64   `db:"max_rel_err"`
	RMSRelErr  float64   `db:"rms_rel_err"`
	CreatedAt  time.Time `db:"created_at"`
}

// Open opens or creates a database at path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		functional TEXT NOT NULL,
		nspin INTEGER NOT NULL,
		kernel TEXT NOT NULL,
		points INTEGER NOT NULL,
		compared INTEGER NOT NULL,
		max_rel_err REAL NOT NULL,
		rms_rel_err REAL NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_functional ON runs(functional);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun stores r, assigning an ID and a timestamp when they are unset.
func (db *DB) SaveRun(r *Run) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := db.conn.NamedExec(`INSERT INTO runs
		(id, functional, nspin, kernel, points, compared, max_rel_err, rms_rel_err, created_at)
		VALUES (:id, :functional, :nspin, :kernel, :points, :compared, :max_rel_err, :rms_rel_err, :created_at)`, r)
	if err != nil {
		return fmt.Errorf("save run %s: %w", r.ID, err)
	}
	return nil
}

// Runs returns the stored runs of a functional, oldest first. An empty
// name returns every run.
func (db *DB) Runs(functional string) ([]Run, error) {
	var runs []Run
	var err error
	if functional == "" {
		err = db.conn.Select(&runs, "SELECT * FROM runs ORDER BY created_at, id")
	} else {
		err = db.conn.Select(&runs, "SELECT * FROM runs WHERE functional = ? ORDER BY created_at, id", functional)
	}
	if err != nil {
		return nil, fmt.Errorf("load runs: %w", err)
	}
	return runs, nil
}
