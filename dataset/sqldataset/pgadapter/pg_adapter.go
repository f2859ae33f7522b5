/*
Package pgadapter provides an implementation of the
Adapter interface in the sqldataset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"context"
	"database/sql"
	"fmt"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/dataset"
	"github.com/techytabbyy/Spam-Classifier/dataset/sqldataset"
)

const (
	exampleTableCreateStmt = `CREATE TABLE IF NOT EXISTS examples (
		id BIGSERIAL PRIMARY KEY,
		label TEXT NOT NULL)`
	featureTableCreateStmt = `CREATE TABLE IF NOT EXISTS example_features (
		example_id BIGINT NOT NULL REFERENCES examples(id),
		position INTEGER NOT NULL,
		feature TEXT NOT NULL,
		probability DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (example_id, position))`
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) CreateTables(ctx context.Context) error {
	for _, stmt := range []string{exampleTableCreateStmt, featureTableCreateStmt} {
		_, err := a.db.ExecContext(ctx, stmt)
		if err != nil {
			return errors.Wrap(err, "running table creation statement")
		}
	}
	return nil
}

func (a *adapter) AddExamples(ctx context.Context, examples []dataset.Example) (int, error) {
	if len(examples) == 0 {
		return 0, nil
	}
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "beginning transaction")
	}
	insertStmt, err := tx.PrepareContext(ctx, "INSERT INTO examples (label) VALUES ($1) RETURNING id")
	if err != nil {
		tx.Rollback()
		return 0, errors.Wrap(err, "preparing example insert command")
	}
	defer insertStmt.Close()
	for i, e := range examples {
		var id int64
		err = insertStmt.QueryRowContext(ctx, e.Label).Scan(&id)
		if err != nil {
			tx.Rollback()
			return 0, errors.Wrapf(err, "inserting example %d", i)
		}
		err = sqldataset.InsertFeatures(ctx, tx, placeholder, id, e.Vector)
		if err != nil {
			tx.Rollback()
			return 0, err
		}
	}
	err = tx.Commit()
	if err != nil {
		return 0, errors.Wrap(err, "committing examples")
	}
	return len(examples), nil
}

func (a *adapter) IterateOnExamples(ctx context.Context, lambda func(dataset.Example) (bool, error)) error {
	rows, err := a.db.QueryContext(ctx, sqldataset.SelectExamplesQuery)
	if err != nil {
		return errors.Wrap(err, "querying examples")
	}
	return sqldataset.ScanExamples(rows, lambda)
}

func (a *adapter) CountExamples(ctx context.Context) (int, error) {
	var count int
	err := a.db.QueryRowContext(ctx, sqldataset.CountExamplesQuery).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "counting examples")
	}
	return count, nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}

func placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}
