package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/dataset"
	"github.com/techytabbyy/Spam-Classifier/feature"
)

/*
MaxFeatureInsertionsPerStatement is the maximum number of feature
rows inserted with a single insert command. Vectors with more
features are inserted with several commands.
*/
const MaxFeatureInsertionsPerStatement = 100

/*
Adapter is an interface providing the methods
needed to implement a dataset with a database backend.
*/
type Adapter interface {
	// CreateTables ensures the examples and example_features
	// tables exist.
	CreateTables(context.Context) error
	// AddExamples stores the given examples after the existing
	// ones and returns the number of examples stored.
	AddExamples(context.Context, []dataset.Example) (int, error)
	// IterateOnExamples calls the lambda with every stored
	// example in order until it returns false or an error.
	IterateOnExamples(context.Context, func(dataset.Example) (bool, error)) error
	// CountExamples returns the number of stored examples.
	CountExamples(context.Context) (int, error)
	// Close releases the database connection.
	Close() error
}

/*
ScanExamples takes *sql.Rows with id, label, feature and probability
columns, ordered by id and feature position, with NULL feature and
probability for examples without features, and calls the lambda with
every example they contain until it returns false or an error. It
closes the rows before returning.
*/
func ScanExamples(rows *sql.Rows, lambda func(dataset.Example) (bool, error)) error {
	defer rows.Close()
	var (
		currentID int64
		label     string
		probs     []feature.Probability
		started   bool
	)
	emit := func() (bool, error) {
		return lambda(dataset.Example{Vector: feature.New(probs...), Label: label})
	}
	for rows.Next() {
		var (
			id          int64
			rowLabel    string
			name        sql.NullString
			probability sql.NullFloat64
		)
		err := rows.Scan(&id, &rowLabel, &name, &probability)
		if err != nil {
			return errors.Wrap(err, "scanning example row")
		}
		if !started || id != currentID {
			if started {
				ok, err := emit()
				if err != nil || !ok {
					return err
				}
			}
			started = true
			currentID = id
			label = rowLabel
			probs = nil
		}
		if name.Valid {
			probs = append(probs, feature.Probability{Name: name.String, Value: probability.Float64})
		}
	}
	err := rows.Err()
	if err != nil {
		return err
	}
	if started {
		_, err = emit()
	}
	return err
}

/*
InsertFeatures takes a context, a transaction, a placeholder function
returning the bind parameter for the i-th (starting at 1) argument of
a statement, the id of an example and its vector and inserts the
features of the vector into the example_features table in chunks of
at most MaxFeatureInsertionsPerStatement rows.
*/
func InsertFeatures(ctx context.Context, tx *sql.Tx, placeholder func(int) string, exampleID int64, v feature.Vector) error {
	if v == nil {
		return nil
	}
	probs := feature.Probabilities(v)
	for chunkStart := 0; chunkStart < len(probs); chunkStart += MaxFeatureInsertionsPerStatement {
		chunkEnd := chunkStart + MaxFeatureInsertionsPerStatement
		if chunkEnd > len(probs) {
			chunkEnd = len(probs)
		}
		var stmtBuffer bytes.Buffer
		stmtBuffer.WriteString("INSERT INTO example_features (example_id, position, feature, probability) VALUES ")
		args := make([]interface{}, 0, 4*(chunkEnd-chunkStart))
		for i, p := range probs[chunkStart:chunkEnd] {
			if i > 0 {
				stmtBuffer.WriteString(", ")
			}
			n := len(args)
			stmtBuffer.WriteString(fmt.Sprintf("(%s, %s, %s, %s)", placeholder(n+1), placeholder(n+2), placeholder(n+3), placeholder(n+4)))
			args = append(args, exampleID, chunkStart+i, p.Name, p.Value)
		}
		_, err := tx.ExecContext(ctx, stmtBuffer.String(), args...)
		if err != nil {
			return errors.Wrapf(err, "inserting features %d to %d of example %d", chunkStart, chunkEnd, exampleID)
		}
	}
	return nil
}

// SelectExamplesQuery is the query ScanExamples expects its rows from
const SelectExamplesQuery = `SELECT e.id, e.label, f.feature, f.probability
	FROM examples e LEFT JOIN example_features f ON f.example_id = e.id
	ORDER BY e.id, f.position`

// CountExamplesQuery counts the stored examples
const CountExamplesQuery = `SELECT COUNT(*) FROM examples`
