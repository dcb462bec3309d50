package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzletrace/depgraph"
	"github.com/katalvlaran/puzzletrace/ordering"
	"github.com/katalvlaran/puzzletrace/trace"
)

const sample = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47`

func manual(t *testing.T) ordering.Manual {
	t.Helper()
	m, err := ordering.Parse(sample)
	require.NoError(t, err)

	return m
}

func TestParse(t *testing.T) {
	m := manual(t)
	assert.Len(t, m.Rules, 21)
	assert.Len(t, m.Updates, 6)
	assert.Equal(t, ordering.Rule{Before: 47, After: 53}, m.Rules[0])
	assert.Equal(t, ordering.Update{75, 29, 13}, m.Updates[2])
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"empty":      {"", ordering.ErrEmptyInput},
		"no blank":   {"1|2\n3|4", ordering.ErrMissingUpdates},
		"no updates": {"1|2\n\n\n", ordering.ErrMissingUpdates},
		"bad rule":   {"1-2\n\n1,2", ordering.ErrBadRule},
		"bad number": {"1|x\n\n1,2", ordering.ErrBadRule},
		"bad page":   {"1|2\n\n1,,2", ordering.ErrBadPage},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ordering.Parse(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRules_Valid(t *testing.T) {
	rules := ordering.Rules{{Before: 47, After: 53}, {Before: 97, After: 13}}
	u := ordering.Update{75, 47, 61, 53, 29}
	assert.True(t, rules.Valid(u))
	assert.Equal(t, 61, u.Middle())

	assert.False(t, rules.Valid(ordering.Update{53, 47}))
	assert.True(t, rules.Valid(ordering.Update{}))
}

func TestRules_Index(t *testing.T) {
	m := manual(t)
	assert.Equal(t, 1, m.Rules.Index(97, 13))
	assert.Equal(t, -1, m.Rules.Index(13, 97))
}

func TestRules_Reorder(t *testing.T) {
	m := manual(t)
	cases := []struct {
		in, want ordering.Update
	}{
		{ordering.Update{75, 97, 47, 61, 53}, ordering.Update{97, 75, 47, 61, 53}},
		{ordering.Update{61, 13, 29}, ordering.Update{61, 29, 13}},
		{ordering.Update{97, 13, 75, 29, 47}, ordering.Update{97, 75, 47, 29, 13}},
	}
	for _, tc := range cases {
		got, err := m.Rules.Reorder(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.True(t, m.Rules.Valid(got))
	}

	cyclic := ordering.Rules{{Before: 1, After: 2}, {Before: 2, After: 1}}
	_, err := cyclic.Reorder(ordering.Update{1, 2})
	assert.ErrorIs(t, err, ordering.ErrUnorderable)
	assert.ErrorIs(t, err, depgraph.ErrCycleDetected)
}

func TestSolve(t *testing.T) {
	m := manual(t)

	check, err := ordering.Solve(m, ordering.Check)
	require.NoError(t, err)
	assert.Equal(t, 143, check.Total)
	assert.Equal(t, 3, check.Trace.Count("total"))
	assert.Equal(t, 3, check.Trace.Count("check-select-rule-bad"))

	reorder, err := ordering.Solve(m, ordering.Reorder)
	require.NoError(t, err)
	assert.Equal(t, 123, reorder.Total)
	assert.Equal(t, 3, reorder.Trace.Count("reordered"))
}

func TestSolve_FirstViolation(t *testing.T) {
	m := manual(t)
	res, err := ordering.Solve(ordering.Manual{Rules: m.Rules, Updates: m.Updates[3:4]}, ordering.Check)
	require.NoError(t, err)

	bad := res.Trace.Filter("check-select-rule-bad")
	require.Len(t, bad, 1)
	// 75,97 is forbidden by 97|75, rule 15.
	assert.Equal(t, ordering.RuleBad{RuleIndex: 15}, bad[0])
	assert.Equal(t, ordering.SelectAgainst{I: 0, J: 1}, res.Trace.At(res.Trace.Len()-3))
}

func TestSolve_Idempotent(t *testing.T) {
	m := manual(t)
	a, err := ordering.Solve(m, ordering.Reorder)
	require.NoError(t, err)
	b, err := ordering.Solve(m, ordering.Reorder)
	require.NoError(t, err)

	diff, err := trace.Diff(a.Trace, b.Trace)
	require.NoError(t, err)
	assert.Empty(t, diff)
}
