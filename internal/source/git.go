// Package source builds dropdown catalogs from external systems.
package source

import (
	"context"
	"errors"
	"fmt"
	"sort"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/facet/internal/dropdown"
	faceterrors "github.com/alexisbeaulieu97/facet/pkg/errors"
)

const tagPrefix = "tag:"

// GitOptions selects which references become options.
type GitOptions struct {
	IncludeTags    bool
	IncludeRemotes bool
}

// GitResult is a catalog of references plus the checked-out branch, if any.
type GitResult struct {
	Options dropdown.Catalog
	Current string
}

// GitRefs opens the repository containing path and lists its branches. Tag values carry a "tag:"
// prefix so they cannot collide with a branch of the same name.
func GitRefs(ctx context.Context, path string, opts GitOptions) (*GitResult, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, faceterrors.NewSourceError(path, err)
	}

	result := &GitResult{}
	head, err := repo.Head()
	switch {
	case err == nil:
		if head.Name().IsBranch() {
			result.Current = head.Name().Short()
		}
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// unborn branch
	default:
		return nil, faceterrors.NewSourceError(path, fmt.Errorf("resolve HEAD: %w", err))
	}

	refs, err := repo.References()
	if err != nil {
		return nil, faceterrors.NewSourceError(path, err)
	}
	defer refs.Close()

	var branches, remotes, tags dropdown.Catalog
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ref.Type() == plumbing.SymbolicReference {
			return nil
		}

		name := ref.Name()
		short := name.Short()
		switch {
		case name.IsBranch():
			branches = append(branches, dropdown.Option{Value: short, Label: short})
		case name.IsRemote() && opts.IncludeRemotes:
			remotes = append(remotes, dropdown.Option{Value: short, Label: short + " (remote)"})
		case name.IsTag() && opts.IncludeTags:
			tags = append(tags, dropdown.Option{Value: tagPrefix + short, Label: short + " (tag)"})
		}
		return nil
	})
	if err != nil {
		return nil, faceterrors.NewSourceError(path, err)
	}

	for _, group := range []dropdown.Catalog{branches, remotes, tags} {
		sort.Slice(group, func(i, j int) bool { return group[i].Value < group[j].Value })
		result.Options = append(result.Options, group...)
	}

	return result, nil
}
