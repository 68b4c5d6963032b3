package gitlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func TestRecentReturnsNewestFirst(t *testing.T) {
	t.Parallel()

	dir := initRepoWithCommits(t, "first commit", "second commit", "third commit")

	commits, err := Recent(dir, 10)
	require.NoError(t, err)
	require.Len(t, commits, 3)

	require.Equal(t, "third commit", commits[0].Subject)
	require.Equal(t, "second commit", commits[1].Subject)
	require.Equal(t, "first commit", commits[2].Subject)

	for _, c := range commits {
		require.Len(t, c.Hash, 7)
		require.Equal(t, "Gallery Bot", c.Author)
		require.False(t, c.When.IsZero())
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	t.Parallel()

	dir := initRepoWithCommits(t, "one", "two", "three", "four")

	commits, err := Recent(dir, 2)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	require.Equal(t, "four", commits[0].Subject)
	require.Equal(t, "three", commits[1].Subject)
}

func TestRecentZeroLimit(t *testing.T) {
	t.Parallel()

	commits, err := Recent(t.TempDir(), 0)
	require.NoError(t, err)
	require.Nil(t, commits)
}

func TestRecentNotARepository(t *testing.T) {
	t.Parallel()

	_, err := Recent(t.TempDir(), 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "open repository")
}

func TestSubjectTrimsBody(t *testing.T) {
	t.Parallel()

	require.Equal(t, "fix layout", subject("fix layout\n\nlong body text"))
	require.Equal(t, "plain", subject("plain"))
	require.Equal(t, "padded", subject("  padded  \n"))
}

func initRepoWithCommits(t *testing.T, subjects ...string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, subj := range subjects {
		name := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(name, []byte(subj), 0o644))
		_, err = wt.Add("file.txt")
		require.NoError(t, err)

		_, err = wt.Commit(subj+"\n\ndetails", &git.CommitOptions{
			Author: &object.Signature{
				Name:  "Gallery Bot",
				Email: "gallery@example.com",
				When:  when.Add(time.Duration(i) * time.Minute),
			},
		})
		require.NoError(t, err)
	}

	return dir
}
