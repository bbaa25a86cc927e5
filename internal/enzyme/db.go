package enzyme

import (
	"bufio"
	_ "embed" // default enzymes
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/bebop/poly/io/rebase"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

// defaults are the enzymes a new database starts with, name<TAB>site
//
//go:embed enzymes.tsv
var defaults string

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// schema of the enzymes table
const schema = `CREATE TABLE IF NOT EXISTS enzymes (
	name TEXT PRIMARY KEY,
	site TEXT NOT NULL
)`

// recordBuilder is a squirrel select builder whose columns match Record fields
var recordBuilder = squirrel.Select("name", "site").From("enzymes")

// Record is a row of the enzymes table
type Record struct {
	Name string `db:"name"`
	Site string `db:"site"`
}

// Enzyme parses the record's recognition sequence
func (r Record) Enzyme() (Enzyme, error) {
	return New(r.Name, r.Site)
}

// DB is a sqlite database of enzymes
type DB struct {
	db *sqlx.DB
}

// Open opens, or creates, the enzyme database at path. ":memory:" is a
// database that lives as long as the DB. A database without enzymes is
// filled with a set of common ones
func Open(path string) (*DB, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open enzyme database %s: %v", path, err)
	}

	// one connection, a second one would see its own in-memory database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create enzymes table in %s: %v", path, err)
	}

	d := &DB{db: db}
	var count int
	if err := d.db.Get(&count, "SELECT COUNT(*) FROM enzymes"); err != nil {
		db.Close()
		return nil, err
	}
	if count == 0 {
		if err := d.seed(); err != nil {
			db.Close()
			return nil, err
		}
	}

	return d, nil
}

// Close closes the database
func (d *DB) Close() error {
	return d.db.Close()
}

// seed inserts the default enzymes
func (d *DB) seed() error {
	var records []Record
	scanner := bufio.NewScanner(strings.NewReader(defaults))
	for scanner.Scan() {
		columns := strings.Split(scanner.Text(), "\t")
		if len(columns) != 2 {
			continue
		}
		records = append(records, Record{Name: columns[0], Site: columns[1]})
	}
	return d.insert(records)
}

// insert replaces records in a single transaction
func (d *DB) insert(records []Record) error {
	tx, err := d.db.Beginx()
	if err != nil {
		return err
	}

	for _, r := range records {
		query, args, err := squirrel.Replace("enzymes").Columns("name", "site").Values(r.Name, r.Site).ToSql()
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err := tx.Exec(query, args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert %s: %v", r.Name, err)
		}
	}

	return tx.Commit()
}

// List returns every enzyme record, sorted by name
func (d *DB) List() ([]Record, error) {
	query, args, err := recordBuilder.OrderBy("name").ToSql()
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := d.db.Select(&records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns the enzyme with the exact name
func (d *DB) Get(name string) (Enzyme, error) {
	query, args, err := recordBuilder.Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return Enzyme{}, err
	}

	var records []Record
	if err := d.db.Select(&records, query, args...); err != nil {
		return Enzyme{}, err
	}
	if len(records) == 0 {
		return Enzyme{}, fmt.Errorf("failed to find enzyme %s, see 'dseq enzymes'", name)
	}
	return records[0].Enzyme()
}

// GetAll returns the enzymes with the given names, in the same order
func (d *DB) GetAll(names []string) ([]Enzyme, error) {
	enzymes := make([]Enzyme, 0, len(names))
	for _, name := range names {
		e, err := d.Get(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		enzymes = append(enzymes, e)
	}
	return enzymes, nil
}

// Find returns enzymes with names like name.
//
// An exact match is returned alone. Otherwise names containing name are
// returned if there are at least three of them, else those plus names within
// a small edit distance
func (d *DB) Find(name string) ([]Record, error) {
	records, err := d.List()
	if err != nil {
		return nil, err
	}

	ldCutoff := 2
	var containing, lowDistance []Record
	for _, r := range records {
		if r.Name == name {
			return []Record{r}, nil
		}

		if strings.Contains(strings.ToUpper(r.Name), strings.ToUpper(name)) {
			containing = append(containing, r)
		} else if len(r.Name) > ldCutoff && ld(name, r.Name, true) <= ldCutoff {
			lowDistance = append(lowDistance, r)
		}
	}

	if len(containing) >= 3 {
		return containing, nil
	}

	matches := append(lowDistance, containing...)
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches, nil
}

// Set creates or updates an enzyme. updated is true if it was already in
// the database
func (d *DB) Set(name, site string) (updated bool, err error) {
	e, err := New(name, site)
	if err != nil {
		return false, err
	}

	if _, err := d.Get(name); err == nil {
		updated = true
	}

	return updated, d.insert([]Record{{Name: name, Site: e.String()}})
}

// Delete removes an enzyme. It is an error if there was no such enzyme
func (d *DB) Delete(name string) error {
	query, args, err := squirrel.Delete("enzymes").Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return err
	}

	res, err := d.db.Exec(query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to find %s in the enzymes database", name)
	}
	return nil
}

// ImportRebase loads every enzyme of a REBASE withrefm file. Enzymes whose
// sites can't be parsed (unknown or two-sided cuts) are skipped. It returns
// the number of enzymes imported
func (d *DB) ImportRebase(path string) (int, error) {
	enzymes, err := rebase.Read(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read REBASE file %s: %v", path, err)
	}

	var records []Record
	for name, r := range enzymes {
		e, err := New(name, r.RecognitionSequence)
		if err != nil {
			stderr.Printf("skipping %s: %v", name, err)
			continue
		}
		records = append(records, Record{Name: name, Site: e.String()})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })

	if err := d.insert(records); err != nil {
		return 0, err
	}
	return len(records), nil
}
