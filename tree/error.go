package tree

// Error represents an error building or using a tree
type Error string

/*
ErrInvalidArgument is the error returned when an operation receives
input it cannot work with: absent vectors, empty or mismatched
training data, or labels and features that cannot be persisted.
*/
const ErrInvalidArgument = Error("invalid argument")

/*
ErrInvalidState is the error returned when the tree cannot carry out
an operation in its current shape, like classifying a vector that
lacks the feature of a decision node on its path, or splitting a
leaf that has no exemplar.
*/
const ErrInvalidState = Error("invalid state")

func (e Error) Error() string {
	return string(e)
}
