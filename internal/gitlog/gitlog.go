// Package gitlog reads recent commit history from a local repository.
// The showcase uses it as a real data source for the list widgets.
package gitlog

import (
	"fmt"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// Commit is the subset of commit metadata the showcase renders.
type Commit struct {
	Hash    string
	Author  string
	When    time.Time
	Subject string
}

// Recent returns up to limit commits reachable from HEAD, newest first.
func Recent(path string, limit int) ([]Commit, error) {
	if limit <= 0 {
		return nil, nil
	}

	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	commits := make([]Commit, 0, limit)
	err = iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, Commit{
			Hash:    c.Hash.String()[:7],
			Author:  c.Author.Name,
			When:    c.Author.When,
			Subject: subject(c.Message),
		})
		if len(commits) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk log: %w", err)
	}

	return commits, nil
}

func subject(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimSpace(message)
}
