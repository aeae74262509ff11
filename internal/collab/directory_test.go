package collab

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openmusic-service/internal/domain"
)

func TestAddCollaboration(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	dir := NewDirectory(mock)

	mock.ExpectQuery("INSERT INTO collaborations").
		WithArgs(pgxmock.AnyArg(), "playlist-1", "user-2").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("collab-1"))

	id, err := dir.AddCollaboration(context.Background(), "playlist-1", "user-2")
	require.NoError(t, err)
	assert.Equal(t, "collab-1", id)
}

func TestDeleteCollaboration(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dir := NewDirectory(mock)

		mock.ExpectQuery("DELETE FROM collaborations").
			WithArgs("playlist-1", "user-2").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("collab-1"))

		assert.NoError(t, dir.DeleteCollaboration(ctx, "playlist-1", "user-2"))
	})

	t.Run("MissingGrantIsInvariant", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dir := NewDirectory(mock)

		mock.ExpectQuery("DELETE FROM collaborations").
			WithArgs("playlist-1", "user-9").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		err = dir.DeleteCollaboration(ctx, "playlist-1", "user-9")
		assert.True(t, domain.IsInvariant(err))
	})
}

func TestVerifyCollaborator(t *testing.T) {
	ctx := context.Background()

	t.Run("RegisteredCollaborator", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dir := NewDirectory(mock)

		mock.ExpectQuery("SELECT id FROM collaborations").
			WithArgs("playlist-1", "user-2").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("collab-1"))

		assert.NoError(t, dir.VerifyCollaborator(ctx, "playlist-1", "user-2"))
	})

	t.Run("StrangerFails", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dir := NewDirectory(mock)

		mock.ExpectQuery("SELECT id FROM collaborations").
			WithArgs("playlist-1", "user-9").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		err = dir.VerifyCollaborator(ctx, "playlist-1", "user-9")
		assert.Error(t, err)
		assert.True(t, domain.IsInvariant(err))
	})
}
