package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	faceterrors "github.com/alexisbeaulieu97/facet/pkg/errors"
)

func initGitRepo(t *testing.T) (string, *git.Repository, plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello repo"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Facet",
			Email: "facet@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir, repo, hash
}

func TestGitRefsListsBranches(t *testing.T) {
	t.Parallel()

	dir, repo, hash := initGitRepo(t)
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName("feature/login"), hash)))
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "master"), hash)))
	_, err := repo.CreateTag("v1.0.0", hash, nil)
	require.NoError(t, err)

	result, err := GitRefs(context.Background(), dir, GitOptions{})
	require.NoError(t, err)

	assert.Equal(t, "master", result.Current)
	assert.Equal(t, []string{"feature/login", "master"}, result.Options.Values())
}

func TestGitRefsIncludesTagsAndRemotes(t *testing.T) {
	t.Parallel()

	dir, repo, hash := initGitRepo(t)
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "master"), hash)))
	_, err := repo.CreateTag("master", hash, nil)
	require.NoError(t, err)

	nested := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := GitRefs(context.Background(), nested, GitOptions{IncludeTags: true, IncludeRemotes: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"master", "origin/master", "tag:master"}, result.Options.Values())
	opt, _, ok := result.Options.Lookup("tag:master")
	require.True(t, ok)
	assert.Equal(t, "master (tag)", opt.Label)
}

func TestGitRefsWrapsOpenFailure(t *testing.T) {
	t.Parallel()

	_, err := GitRefs(context.Background(), t.TempDir(), GitOptions{})
	require.Error(t, err)

	var sourceErr *faceterrors.SourceError
	require.ErrorAs(t, err, &sourceErr)
	assert.ErrorIs(t, err, git.ErrRepositoryNotExists)
}

func TestGitRefsHonoursCancellation(t *testing.T) {
	t.Parallel()

	dir, _, _ := initGitRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GitRefs(ctx, dir, GitOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
