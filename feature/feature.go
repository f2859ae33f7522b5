/*
Package feature provides the representation of items handled by the
classifier: sparse vectors mapping feature names to probabilities.
*/
package feature

import (
	"bytes"
	"fmt"
	"math"
	"sort"
)

// Error represents an error related with feature vectors
type Error string

/*
ErrNoSharedFeature is returned by MostDifferingFeature when the
compared vectors have no feature in common, so no discrepancy can
be computed between them.
*/
const ErrNoSharedFeature = Error("vectors share no feature")

func (e Error) Error() string {
	return string(e)
}

/*
Vector represents an item as a mapping from feature names to the
probability of the feature on the item.

Its Features method returns the names of the features defined on
the vector in its iteration order.

Its Has method tells whether a feature is defined on the vector.

Its Value method returns the probability for a feature and
whether the feature is defined at all.

Its MostDifferingFeature method takes another Vector and returns
the feature defined on both whose values differ the most.
*/
type Vector interface {
	Features() []string
	Has(string) bool
	Value(string) (float64, bool)
	Len() int
	MostDifferingFeature(Vector) (string, error)
}

/*
Probability is the value of a named feature on a vector.
*/
type Probability struct {
	Name  string
	Value float64
}

type vector struct {
	names  []string
	values map[string]float64
}

/*
New takes a list of feature probabilities and returns a Vector
that iterates its features in the given order. When a feature
name is repeated, the vector keeps its first position and its
last value.
*/
func New(ps ...Probability) Vector {
	v := &vector{
		names:  make([]string, 0, len(ps)),
		values: make(map[string]float64, len(ps)),
	}
	for _, p := range ps {
		if _, ok := v.values[p.Name]; !ok {
			v.names = append(v.names, p.Name)
		}
		v.values[p.Name] = p.Value
	}
	return v
}

/*
FromMap takes a map of feature names to probabilities and returns
a Vector whose features are iterated in lexicographical order.
*/
func FromMap(m map[string]float64) Vector {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	ps := make([]Probability, 0, len(names))
	for _, name := range names {
		ps = append(ps, Probability{name, m[name]})
	}
	return New(ps...)
}

/*
Probabilities takes a Vector and returns its features along their
values in the vector's iteration order.
*/
func Probabilities(v Vector) []Probability {
	names := v.Features()
	ps := make([]Probability, 0, len(names))
	for _, name := range names {
		value, _ := v.Value(name)
		ps = append(ps, Probability{name, value})
	}
	return ps
}

func (v *vector) Features() []string {
	return append([]string(nil), v.names...)
}

func (v *vector) Has(name string) bool {
	_, ok := v.values[name]
	return ok
}

func (v *vector) Value(name string) (float64, bool) {
	value, ok := v.values[name]
	return value, ok
}

func (v *vector) Len() int {
	return len(v.names)
}

/*
MostDifferingFeature takes another Vector and returns the name of the
feature defined on both vectors with the largest absolute difference
between their values. Features are considered in the receiver's
iteration order and ties are resolved in favour of the first one
found. It returns ErrNoSharedFeature if no feature is defined on both.
*/
func (v *vector) MostDifferingFeature(other Vector) (string, error) {
	var (
		best     string
		bestDiff float64
		found    bool
	)
	for _, name := range v.names {
		ov, ok := other.Value(name)
		if !ok {
			continue
		}
		diff := math.Abs(v.values[name] - ov)
		if !found || diff > bestDiff {
			best, bestDiff, found = name, diff, true
		}
	}
	if !found {
		return "", ErrNoSharedFeature
	}
	return best, nil
}

func (v *vector) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, name := range v.names {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s:%g", name, v.values[name])
	}
	buf.WriteString("}")
	return buf.String()
}
