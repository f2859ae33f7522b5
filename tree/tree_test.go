package tree

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techytabbyy/Spam-Classifier/feature"
)

func vec(ps ...interface{}) feature.Vector {
	probs := make([]feature.Probability, 0, len(ps)/2)
	for i := 0; i < len(ps); i += 2 {
		probs = append(probs, feature.Probability{Name: ps[i].(string), Value: ps[i+1].(float64)})
	}
	return feature.New(probs...)
}

func mustInsert(t *testing.T, root Node, v feature.Vector, label string) Node {
	t.Helper()
	n, err := Insert(root, v, label)
	require.NoError(t, err)
	return n
}

func TestInsertIntoEmptyTree(t *testing.T) {
	v := vec("f1", 0.1)
	root := mustInsert(t, nil, v, "A")
	leaf, ok := root.(*Label)
	require.True(t, ok)
	assert.Equal(t, "A", leaf.Label)
	assert.Equal(t, v, leaf.Exemplar)
}

func TestInsertSameLabelKeepsSingleLeaf(t *testing.T) {
	var root Node
	first := vec("f1", 0.1, "f2", 0.3)
	root = mustInsert(t, root, first, "ham")
	for _, v := range []feature.Vector{vec("f1", 0.9), vec("f2", 0.5), vec("f3", 0.2)} {
		root = mustInsert(t, root, v, "ham")
	}
	leaf, ok := root.(*Label)
	require.True(t, ok)
	assert.Equal(t, "ham", leaf.Label)
	assert.Equal(t, first, leaf.Exemplar, "exemplar is frozen at leaf creation")
}

func TestInsertSplitsLeafOnMidpoint(t *testing.T) {
	a, b := vec("f1", 0.1), vec("f1", 0.9)
	root := mustInsert(t, nil, a, "A")
	root = mustInsert(t, root, b, "B")

	d, ok := root.(*Decision)
	require.True(t, ok)
	assert.Equal(t, "f1", d.Feature)
	assert.Equal(t, 0.5, d.Threshold)
	assert.Equal(t, "A", d.Left.(*Label).Label)
	assert.Equal(t, "B", d.Right.(*Label).Label)

	label, err := Classify(root, vec("f1", 0.05))
	require.NoError(t, err)
	assert.Equal(t, "A", label)
	label, err = Classify(root, vec("f1", 0.95))
	require.NoError(t, err)
	assert.Equal(t, "B", label)
}

func TestInsertPlacesSmallerIncomingValueOnTheLeft(t *testing.T) {
	root := mustInsert(t, nil, vec("f1", 0.8), "old")
	root = mustInsert(t, root, vec("f1", 0.2), "new")
	d := root.(*Decision)
	assert.Equal(t, "new", d.Left.(*Label).Label)
	assert.Equal(t, "old", d.Right.(*Label).Label)
}

func TestInsertUsesMostDifferingFeature(t *testing.T) {
	root := mustInsert(t, nil, vec("win", 0.1, "cash", 0.0, "hello", 0.3), "ham")
	root = mustInsert(t, root, vec("win", 0.2, "cash", 0.8, "hello", 0.25), "spam")
	d := root.(*Decision)
	assert.Equal(t, "cash", d.Feature)
	assert.Equal(t, 0.4, d.Threshold)
}

func TestSplitLeavesClassifyTheirOwnExemplars(t *testing.T) {
	examples := []struct {
		v     feature.Vector
		label string
	}{
		{vec("a", 0.1, "b", 0.7), "ham"},
		{vec("a", 0.6, "b", 0.7), "spam"},
		{vec("a", 0.05, "b", 0.1), "spam"},
		{vec("a", 0.9, "b", 0.2), "ham"},
		{vec("a", 0.3, "b", 0.3), "eggs"},
	}
	var root Node
	for _, e := range examples {
		root = mustInsert(t, root, e.v, e.label)
	}
	err := Walk(root, func(n Node) error {
		if leaf, ok := n.(*Label); ok {
			label, err := Classify(root, leaf.Exemplar)
			require.NoError(t, err)
			assert.Equal(t, leaf.Label, label)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestInsertAgreeingExampleKeepsShape(t *testing.T) {
	root := mustInsert(t, nil, vec("f1", 0.1), "A")
	root = mustInsert(t, root, vec("f1", 0.9), "B")
	before := String(root)
	beforeStats := StatsFor(root)

	root = mustInsert(t, root, vec("f1", 0.2), "A")
	root = mustInsert(t, root, vec("f1", 0.7), "B")
	assert.Equal(t, before, String(root))
	assert.Equal(t, beforeStats, StatsFor(root))
}

func TestInsertMissingFeatureDefaultsLeft(t *testing.T) {
	root := mustInsert(t, nil, vec("f1", 0.1, "f2", 0.5), "A")
	root = mustInsert(t, root, vec("f1", 0.9, "f2", 0.5), "B")
	d := root.(*Decision)
	require.Equal(t, "f1", d.Feature)

	// Lacks f1 and goes left even though the label matches the right leaf.
	root = mustInsert(t, root, vec("f2", 0.4), "B")
	d = root.(*Decision)
	assert.Equal(t, "B", d.Right.(*Label).Label)
	left, ok := d.Left.(*Decision)
	require.True(t, ok, "left leaf should have been split")
	assert.Equal(t, "f2", left.Feature)
	assert.InDelta(t, 0.45, left.Threshold, 1e-12)
	assert.Equal(t, "B", left.Left.(*Label).Label)
	assert.Equal(t, "A", left.Right.(*Label).Label)
}

func TestInsertWithoutSharedFeatureFailsAndKeepsTree(t *testing.T) {
	root := mustInsert(t, nil, vec("f1", 0.1), "A")
	root = mustInsert(t, root, vec("f1", 0.9), "B")
	before := String(root)

	n, err := Insert(root, vec("other", 0.3), "C")
	require.Error(t, err)
	assert.Nil(t, n)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
	assert.Equal(t, before, String(root))
}

func TestInsertNilVector(t *testing.T) {
	_, err := Insert(nil, nil, "A")
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
}

func TestInsertIntoLeafWithoutExemplar(t *testing.T) {
	_, err := Insert(&Label{Label: "A"}, vec("f1", 0.3), "B")
	assert.Equal(t, ErrInvalidState, errors.Cause(err))
	n, err := Insert(&Label{Label: "A"}, vec("f1", 0.3), "A")
	require.NoError(t, err)
	assert.Equal(t, "A", n.(*Label).Label)
}

func TestClassifyMissingFeatureIsInvalidState(t *testing.T) {
	root := mustInsert(t, nil, vec("f1", 0.1), "A")
	root = mustInsert(t, root, vec("f1", 0.9), "B")
	_, err := Classify(root, vec("f2", 0.1))
	assert.Equal(t, ErrInvalidState, errors.Cause(err))
}

func TestClassifyErrors(t *testing.T) {
	_, err := Classify(&Label{Label: "A"}, nil)
	assert.Equal(t, ErrInvalidArgument, errors.Cause(err))
	_, err = Classify(nil, vec("f1", 0.1))
	assert.Equal(t, ErrInvalidState, errors.Cause(err))
}

func TestClassifyThresholdGoesRight(t *testing.T) {
	root := &Decision{Feature: "f", Threshold: 0.5, Left: &Label{Label: "L"}, Right: &Label{Label: "R"}}
	label, err := Classify(root, vec("f", 0.5))
	require.NoError(t, err)
	assert.Equal(t, "R", label)
}

func TestMidpoint(t *testing.T) {
	assert.Equal(t, 0.5, Midpoint(0.1, 0.9))
	assert.Equal(t, 0.5, Midpoint(0.9, 0.1))
	assert.Equal(t, 0.3, Midpoint(0.3, 0.3))
	assert.Equal(t, 0.0, Midpoint(-1, 1))
}

func TestTraverseOrder(t *testing.T) {
	root := &Decision{
		Feature: "a",
		Left: &Decision{
			Feature: "b",
			Left:    &Label{Label: "1"},
			Right:   &Label{Label: "2"},
		},
		Right: &Label{Label: "3"},
	}
	var preorder, postorder []string
	name := func(n Node) string {
		switch n := n.(type) {
		case *Label:
			return n.Label
		case *Decision:
			return n.Feature
		}
		return ""
	}
	require.NoError(t, Traverse(root, false, func(n Node) error {
		preorder = append(preorder, name(n))
		return nil
	}))
	require.NoError(t, Traverse(root, true, func(n Node) error {
		postorder = append(postorder, name(n))
		return nil
	}))
	assert.Equal(t, []string{"a", "b", "1", "2", "3"}, preorder)
	assert.Equal(t, []string{"1", "2", "b", "3", "a"}, postorder)

	stop := errors.New("stop")
	var visited int
	err := Walk(root, func(Node) error {
		visited++
		if visited == 2 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 2, visited)

	assert.Equal(t, Stats{Leaves: 3, Decisions: 2, Depth: 2}, StatsFor(root))
	assert.Equal(t, Stats{Depth: -1}, StatsFor(nil))
}

func TestString(t *testing.T) {
	root := &Decision{
		Feature:   "a",
		Threshold: 0.5,
		Left:      &Label{Label: "ham"},
		Right:     &Label{Label: "spam"},
	}
	expected := "{ a < 0.5 }\n|\n|__[ ham ]\n|__[ spam ]\n"
	assert.Equal(t, expected, String(root))
	assert.Equal(t, "(empty tree)\n", String(nil))
}

func TestInsertNotifyingReportsSplits(t *testing.T) {
	var splits []*Decision
	onSplit := func(d *Decision) { splits = append(splits, d) }
	root, err := InsertNotifying(nil, vec("f1", 0.1), "A", onSplit)
	require.NoError(t, err)
	root, err = InsertNotifying(root, vec("f1", 0.2), "A", onSplit)
	require.NoError(t, err)
	assert.Empty(t, splits)

	root, err = InsertNotifying(root, vec("f1", 0.9), "B", onSplit)
	require.NoError(t, err)
	require.Len(t, splits, 1)
	assert.Same(t, root, Node(splits[0]))

	root, err = InsertNotifying(root, vec("f1", 0.7, "f2", 0.1), "C", onSplit)
	require.NoError(t, err)
	require.Len(t, splits, 2)
	assert.Same(t, root.(*Decision).Right, Node(splits[1]))
	assert.Equal(t, "f1", splits[1].Feature)
	assert.InDelta(t, 0.8, splits[1].Threshold, 1e-12)
}
