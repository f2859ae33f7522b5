/*
Package sqldataset provides an implementation of dataset.Dataset
and dataset.Writer that uses an SQL database as backend.

The dataset uses 2 database tables:
  * examples, with an id and the label of every example
  * example_features, with a row per feature of every example
  holding the id of the example, the position of the feature in
  the vector, its name and its probability

Examples are iterated in the order of their ids, which is the order
in which they were written, and their features in the order of their
positions, so vectors are read back exactly as they were written.

Adapters for specific databases live in subpackages.
*/
package sqldataset
