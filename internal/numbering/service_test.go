package numbering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySequence is an in-memory stand-in for the ent-backed counter.
type memorySequence struct {
	counters map[int]int
}

func (m *memorySequence) Next(_ context.Context, year int) (int, error) {
	if m.counters == nil {
		m.counters = map[int]int{}
	}
	m.counters[year]++
	return m.counters[year], nil
}

func (m *memorySequence) Current(_ context.Context, year int) (int, error) {
	return m.counters[year], nil
}

func TestNext_FormatsAndIncrements(t *testing.T) {
	svc := NewService(&memorySequence{}, nil)
	ctx := context.Background()

	first, err := svc.Next(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", first)

	second, err := svc.Next(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0002", second)
}

func TestNext_CounterScopedPerYear(t *testing.T) {
	svc := NewService(&memorySequence{}, nil)
	ctx := context.Background()

	_, err := svc.Next(ctx, 2025)
	require.NoError(t, err)

	num, err := svc.Next(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", num)
}
