package tracing

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	// Registers the sqlite3 driver with database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLiteWriter is a Tracer that batches prefetch decisions into a
// SQLite database, flushed in transactions either on demand or at
// process exit.
type SQLiteWriter struct {
	db        *sql.DB
	statement *sql.Stmt

	dbName    string
	pending   []Decision
	batchSize int
}

// NewSQLiteWriter creates a SQLiteWriter. If dbName is empty, a file
// name is derived at Init time from a fresh xid.
func NewSQLiteWriter(dbName string) *SQLiteWriter {
	w := &SQLiteWriter{
		dbName:    dbName,
		batchSize: 10000,
	}

	atexit.Register(func() { w.Flush() })

	return w
}

// Init opens the database file and prepares its schema. It must be
// called before the first Trace.
func (w *SQLiteWriter) Init() error {
	if w.dbName == "" {
		w.dbName = "dcpt_trace_" + xid.New().String()
	}

	filename := w.dbName + ".sqlite3"
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("tracing: %s already exists", filename)
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return fmt.Errorf("tracing: opening %s: %w", filename, err)
	}

	w.db = db

	if _, err := w.db.Exec(`
		create table decision (
			adapter_id    varchar(64) not null,
			pc            integer not null,
			addr          integer not null,
			entry_created boolean not null,
			candidates    text,
			issued        text
		)
	`); err != nil {
		return fmt.Errorf("tracing: creating schema: %w", err)
	}

	stmt, err := w.db.Prepare(
		`insert into decision(adapter_id, pc, addr, entry_created, candidates, issued)
		 values (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("tracing: preparing statement: %w", err)
	}

	w.statement = stmt

	return nil
}

// Trace implements Tracer.
func (w *SQLiteWriter) Trace(d Decision) {
	w.pending = append(w.pending, d)
	if len(w.pending) >= w.batchSize {
		w.Flush()
	}
}

// Flush writes every buffered decision inside a single transaction.
func (w *SQLiteWriter) Flush() {
	if len(w.pending) == 0 {
		return
	}

	tx, err := w.db.Begin()
	if err != nil {
		panic(err)
	}

	for _, d := range w.pending {
		candidates, _ := json.Marshal(d.Candidates)
		issued, _ := json.Marshal(d.Issued)

		if _, err := tx.Stmt(w.statement).Exec(
			d.AdapterID, d.PC, d.Addr, d.EntryCreated, string(candidates), string(issued),
		); err != nil {
			tx.Rollback()
			panic(err)
		}
	}

	if err := tx.Commit(); err != nil {
		panic(err)
	}

	w.pending = nil
}

// Close flushes any remaining decisions and closes the database.
func (w *SQLiteWriter) Close() error {
	w.Flush()
	return w.db.Close()
}
