package lp_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlp/lp"
	"github.com/stretchr/testify/require"
)

const wyndorYAML = `
kind: maximize
objective: [3, 5]
constraints:
  - coefficients: [1, 0]
    relation: "<="
    rhs: 4
  - {coefficients: [0, 2], relation: "≤", rhs: 12}
  - {coefficients: [3, 2], relation: le, rhs: 18}
`

func TestDecodeYAML(t *testing.T) {
	p, err := lp.Decode(strings.NewReader(wyndorYAML))
	require.NoError(t, err)
	require.Equal(t, wyndor(), p)
}

func TestDecodeYAMLErrors(t *testing.T) {
	_, err := lp.Decode(strings.NewReader("kind: optimize\nobjective: [1]\n"))
	require.ErrorIs(t, err, lp.ErrUnknownKind)
	require.Contains(t, err.Error(), "line 1")

	_, err = lp.Decode(strings.NewReader("objective: [1]\nconstraints:\n  - {coefficients: [1], relation: '<', rhs: 1}\n"))
	require.ErrorIs(t, err, lp.ErrUnknownRelation)

	_, err = lp.Decode(strings.NewReader("objective: [1]\nbogus: true\n"))
	require.Error(t, err)

	_, err = lp.Decode(strings.NewReader(""))
	require.ErrorIs(t, err, lp.ErrNoVariables)
}

func TestDecodeYAMLRequiresKindRelationAndRHS(t *testing.T) {
	cases := map[string]string{
		"kind":     "objective: [1]\nconstraints:\n  - {coefficients: [1], relation: '<=', rhs: 1}\n",
		"relation": "kind: max\nobjective: [1]\nconstraints:\n  - {coefficients: [1], rhs: 1}\n",
		"rhs":      "kind: max\nobjective: [1]\nconstraints:\n  - {coefficients: [1], relation: '>='}\n",
	}
	for field, doc := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := lp.Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, lp.ErrMissingField)
			require.Contains(t, err.Error(), field)
		})
	}

	// An explicit zero right-hand side is not a missing one.
	p, err := lp.Decode(strings.NewReader("kind: min\nobjective: [1]\nconstraints:\n  - {coefficients: [1], relation: '>=', rhs: 0}\n"))
	require.NoError(t, err)
	require.Equal(t, lp.Problem{
		Kind:        lp.Minimize,
		Objective:   []float64{1},
		Constraints: []lp.Constraint{{Coefficients: []float64{1}, Relation: lp.GreaterEqual, RHS: 0}},
	}, p)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, lp.Encode(&buf, wyndor()))
	require.Contains(t, buf.String(), "kind: maximize")

	p, err := lp.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, wyndor(), p)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wyndor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(wyndorYAML), 0o600))

	p, err := lp.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, p.NumConstraints())

	_, err = lp.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestJSONUsesTextForm(t *testing.T) {
	b, err := json.Marshal(lp.Constraint{Coefficients: []float64{1}, Relation: lp.GreaterEqual, RHS: 2})
	require.NoError(t, err)
	require.JSONEq(t, `{"coefficients":[1],"relation":">=","rhs":2}`, string(b))

	var c lp.Constraint
	require.NoError(t, json.Unmarshal([]byte(`{"coefficients":[1],"relation":"=","rhs":2}`), &c))
	require.Equal(t, lp.Equal, c.Relation)
}
