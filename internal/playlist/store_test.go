package playlist

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openmusic-service/internal/domain"
)

func TestAddPlaylist(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStore(mock)
	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO playlists").
		WithArgs(pgxmock.AnyArg(), "My Playlist", "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("playlist-abc"))

	id, err := store.AddPlaylist(ctx, "My Playlist", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "playlist-abc", id)
}

func TestAddSongToPlaylist(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		store := NewStore(mock)

		mock.ExpectQuery("SELECT id FROM songs WHERE id").
			WithArgs("song-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("song-1"))
		mock.ExpectQuery("INSERT INTO playlist_songs").
			WithArgs(pgxmock.AnyArg(), "playlist-1", "song-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("playlist_songs-1"))

		id, err := store.AddSongToPlaylist(ctx, "playlist-1", "song-1")
		require.NoError(t, err)
		assert.Equal(t, "playlist_songs-1", id)
	})

	t.Run("MissingSongNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		store := NewStore(mock)

		mock.ExpectQuery("SELECT id FROM songs WHERE id").
			WithArgs("song-gone").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		_, err = store.AddSongToPlaylist(ctx, "playlist-1", "song-gone")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("InsertWithoutRowIsInvariant", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		store := NewStore(mock)

		mock.ExpectQuery("SELECT id FROM songs WHERE id").
			WithArgs("song-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("song-1"))
		mock.ExpectQuery("INSERT INTO playlist_songs").
			WithArgs(pgxmock.AnyArg(), "playlist-1", "song-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		_, err = store.AddSongToPlaylist(ctx, "playlist-1", "song-1")
		assert.True(t, domain.IsInvariant(err))
	})
}

func TestDeleteSongFromPlaylist(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		store := NewStore(mock)

		mock.ExpectQuery("DELETE FROM playlist_songs").
			WithArgs("playlist-1", "song-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("playlist_songs-1"))

		assert.NoError(t, store.DeleteSongFromPlaylist(ctx, "playlist-1", "song-1"))
	})

	t.Run("SongNotInPlaylistIsInvariant", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		store := NewStore(mock)

		mock.ExpectQuery("DELETE FROM playlist_songs").
			WithArgs("playlist-1", "song-absent").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		err = store.DeleteSongFromPlaylist(ctx, "playlist-1", "song-absent")
		assert.True(t, domain.IsInvariant(err))
	})
}

func TestGetSongsInPlaylist(t *testing.T) {
	ctx := context.Background()

	t.Run("SummaryWithSongs", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		store := NewStore(mock)

		mock.ExpectQuery("SELECT playlists.id, playlists.name, users.username").
			WithArgs("playlist-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "username"}).
				AddRow("playlist-1", "Roadtrip", "alice"))
		mock.ExpectQuery("SELECT songs.id, songs.title, songs.performer").
			WithArgs("playlist-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "title", "performer"}).
				AddRow("song-1", "Song A", "Band A").
				AddRow("song-2", "Song B", "Band B"))

		out, err := store.GetSongsInPlaylist(ctx, "playlist-1")
		require.NoError(t, err)
		assert.Equal(t, "Roadtrip", out.Name)
		assert.Equal(t, "alice", out.Username)
		require.Len(t, out.Songs, 2)
		assert.Equal(t, Song{ID: "song-1", Title: "Song A", Performer: "Band A"}, out.Songs[0])
	})

	t.Run("MissingPlaylistNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		store := NewStore(mock)

		mock.ExpectQuery("SELECT playlists.id, playlists.name, users.username").
			WithArgs("playlist-missing").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "username"}))

		_, err = store.GetSongsInPlaylist(ctx, "playlist-missing")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("EmptyPlaylistHasEmptySongs", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		store := NewStore(mock)

		mock.ExpectQuery("SELECT playlists.id, playlists.name, users.username").
			WithArgs("playlist-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "username"}).
				AddRow("playlist-1", "Roadtrip", "alice"))
		mock.ExpectQuery("SELECT songs.id, songs.title, songs.performer").
			WithArgs("playlist-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "title", "performer"}))

		out, err := store.GetSongsInPlaylist(ctx, "playlist-1")
		require.NoError(t, err)
		assert.Empty(t, out.Songs)
	})
}

func TestDeletePlaylistByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStore(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM playlists WHERE id").
			WithArgs("playlist-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("playlist-1"))

		assert.NoError(t, store.DeletePlaylistByID(ctx, "playlist-1"))
	})

	t.Run("MissingPlaylistNotFound", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM playlists WHERE id").
			WithArgs("playlist-missing").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		err := store.DeletePlaylistByID(ctx, "playlist-missing")
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestGetPlaylists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStore(mock)

	mock.ExpectQuery("SELECT playlists.id, playlists.name, users.username").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "username"}).
			AddRow("playlist-1", "Mine", "me").
			AddRow("playlist-2", "Shared with me", "someone"))

	playlists, err := store.GetPlaylists(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, playlists, 2)
	assert.Equal(t, "Shared with me", playlists[1].Name)
}
