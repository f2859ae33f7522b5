/*
Package mongodataset provides a implementation of dataset.Dataset
and dataset.Writer that uses a MongoDB database as backend.

Every example is stored as a document of the examples collection
with its label, its features as an array of name and probability
pairs (so their order is kept) and a sequence number that gives the
order of the examples.
*/
package mongodataset

import (
	"context"

	"github.com/pkg/errors"
	"github.com/techytabbyy/Spam-Classifier/dataset"
	"github.com/techytabbyy/Spam-Classifier/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Dataset is a dataset.Dataset to which examples can be added
and from which examples can be sequentially read
*/
type Dataset interface {
	dataset.Dataset
	dataset.Writer
	Read(context.Context) (<-chan dataset.Example, <-chan error)
	Close() error
}

type mongodataset struct {
	session *mgo.Session
}

type document struct {
	ID       bson.ObjectId `bson:"_id,omitempty"`
	Seq      int64         `bson:"seq"`
	Label    string        `bson:"label"`
	Features []probability `bson:"features"`
}

type probability struct {
	Name  string  `bson:"f"`
	Value float64 `bson:"p"`
}

const (
	examplesCollectionName = "examples"
)

/*
Open takes a MongoDB database session and returns a
Dataset that works on the default database for
that session or an error if it fails to set up its
collection.
*/
func Open(ctx context.Context, session *mgo.Session) (Dataset, error) {
	mds := &mongodataset{session}
	err := mds.ensureIndexes()
	if err != nil {
		return nil, err
	}
	return mds, nil
}

/*
Dial takes a MongoDB connection URL and returns a Dataset on the
database the URL names, or an error if the server cannot be reached.
*/
func Dial(ctx context.Context, url string) (Dataset, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, errors.Wrapf(err, "dialing %s", url)
	}
	return Open(ctx, session)
}

func (mds *mongodataset) Examples(ctx context.Context) ([]dataset.Example, error) {
	var examples []dataset.Example
	count, err := mds.Count(ctx)
	if err == nil {
		examples = make([]dataset.Example, 0, count)
	}
	exampleChan, errs := mds.Read(ctx)
	for e := range exampleChan {
		examples = append(examples, e)
	}
	err = <-errs
	return examples, err
}

func (mds *mongodataset) Count(context.Context) (int, error) {
	return mds.examplesCollection().Count()
}

func (mds *mongodataset) Each(ctx context.Context, lambda func(dataset.Example) (bool, error)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	exampleChan, errs := mds.Read(ctx)
	for e := range exampleChan {
		ok, err := lambda(e)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return <-errs
}

func (mds *mongodataset) Write(ctx context.Context, examples []dataset.Example) (int, error) {
	if len(examples) == 0 {
		return 0, nil
	}
	next, err := mds.nextSeq()
	if err != nil {
		return 0, err
	}
	docs := make([]interface{}, 0, len(examples))
	for i, e := range examples {
		docs = append(docs, toDocument(next+int64(i), e))
	}
	err = mds.examplesCollection().Insert(docs...)
	if err != nil {
		return 0, errors.Wrap(err, "inserting examples")
	}
	return len(examples), nil
}

func (mds *mongodataset) Read(ctx context.Context) (<-chan dataset.Example, <-chan error) {
	examples := make(chan dataset.Example)
	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		defer close(examples)
		var doc document
		iter := mds.examplesCollection().Find(nil).Sort("seq").Iter()
		defer iter.Close()
		for iter.Next(&doc) {
			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			case examples <- fromDocument(doc):
			}
			doc = document{}
		}
		if err := iter.Err(); err != nil {
			errs <- err
		}
	}()
	return examples, errs
}

func (mds *mongodataset) nextSeq() (int64, error) {
	var last document
	err := mds.examplesCollection().Find(nil).Sort("-seq").One(&last)
	if err == mgo.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "finding last example")
	}
	return last.Seq + 1, nil
}

func (mds *mongodataset) ensureIndexes() error {
	index := mgo.Index{
		Key:        []string{"seq"},
		Unique:     true,
		Background: true,
	}
	return mds.examplesCollection().EnsureIndex(index)
}

// Close closes the session of the dataset.
func (mds *mongodataset) Close() error {
	mds.session.Close()
	return nil
}

func (mds *mongodataset) examplesCollection() *mgo.Collection {
	return mds.session.DB("").C(examplesCollectionName)
}

func toDocument(seq int64, e dataset.Example) document {
	doc := document{Seq: seq, Label: e.Label, Features: []probability{}}
	if e.Vector != nil {
		for _, p := range feature.Probabilities(e.Vector) {
			doc.Features = append(doc.Features, probability{p.Name, p.Value})
		}
	}
	return doc
}

func fromDocument(doc document) dataset.Example {
	probs := make([]feature.Probability, 0, len(doc.Features))
	for _, p := range doc.Features {
		probs = append(probs, feature.Probability{Name: p.Name, Value: p.Value})
	}
	return dataset.Example{Vector: feature.New(probs...), Label: doc.Label}
}
