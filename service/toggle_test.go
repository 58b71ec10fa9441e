package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEdgeDAO struct {
	edges map[[2]uint64]bool
}

func newFakeEdgeDAO() *fakeEdgeDAO {
	return &fakeEdgeDAO{edges: make(map[[2]uint64]bool)}
}

func (f *fakeEdgeDAO) Exists(_ context.Context, subjectID, objectID uint64) (bool, error) {
	return f.edges[[2]uint64{subjectID, objectID}], nil
}

func (f *fakeEdgeDAO) Add(_ context.Context, subjectID, objectID uint64) error {
	f.edges[[2]uint64{subjectID, objectID}] = true
	return nil
}

func (f *fakeEdgeDAO) Remove(_ context.Context, subjectID, objectID uint64) error {
	delete(f.edges, [2]uint64{subjectID, objectID})
	return nil
}

func TestToggleAddThenRemove(t *testing.T) {
	d := newFakeEdgeDAO()
	ctx := context.Background()

	res, err := toggle(ctx, d, 1, 100)
	require.NoError(t, err)
	assert.True(t, res.Added)

	exists, _ := d.Exists(ctx, 1, 100)
	assert.True(t, exists)

	res, err = toggle(ctx, d, 1, 100)
	require.NoError(t, err)
	assert.False(t, res.Added)

	exists, _ = d.Exists(ctx, 1, 100)
	assert.False(t, exists)
}

func TestToggleIndependentSubjects(t *testing.T) {
	d := newFakeEdgeDAO()
	ctx := context.Background()

	res, err := toggle(ctx, d, 1, 100)
	require.NoError(t, err)
	assert.True(t, res.Added)

	// 另一个用户对同一对象的开关互不影响
	res, err = toggle(ctx, d, 2, 100)
	require.NoError(t, err)
	assert.True(t, res.Added)

	res, err = toggle(ctx, d, 1, 100)
	require.NoError(t, err)
	assert.False(t, res.Added)

	exists, _ := d.Exists(ctx, 2, 100)
	assert.True(t, exists)
}
