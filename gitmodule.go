package shrimply

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/pkg/errors"
)

// resolveGitSearchRoot resolves a git+https:// or git+ssh:// search
// path entry into a local checkout directory, cloning on first use.
// The checkout lives under the module cache directory, keyed by a hash
// of the source URL and ref so distinct pins of the same repository
// don't collide. An existing checkout directory is reused as it is: it
// is never fetched or checked out again, even if the ref has moved on
// the remote.
func resolveGitSearchRoot(source, ref string) (string, error) {
	url := strings.TrimPrefix(strings.TrimPrefix(source, "git+https://"), "git+ssh://")
	scheme := "https://"
	if strings.HasPrefix(source, "git+ssh://") {
		scheme = "ssh://"
	}
	url = scheme + url

	cacheDir, err := moduleCacheDir()
	if err != nil {
		return "", err
	}
	target := filepath.Join(cacheDir, cacheKey(url, ref))

	if info, err := os.Stat(target); err == nil && info.IsDir() {
		slog.Debug("git module cache hit", "source", url, "ref", ref, "path", target)
		return target, nil
	}

	slog.Info("git module cache miss, cloning", "source", url, "ref", ref)
	opts := &git.CloneOptions{URL: url, Depth: 1, SingleBranch: true}
	if ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(ref)
	}
	repo, err := git.PlainClone(target, false, opts)
	if err != nil && ref != "" {
		// The ref might be a tag or a commit rather than a branch; retry
		// with a full clone and an explicit checkout.
		_ = os.RemoveAll(target)
		repo, err = git.PlainClone(target, false, &git.CloneOptions{URL: url})
		if err == nil {
			var wt *git.Worktree
			wt, err = repo.Worktree()
			if err == nil {
				hash, resolveErr := repo.ResolveRevision(plumbing.Revision(ref))
				if resolveErr != nil {
					err = resolveErr
				} else {
					err = wt.Checkout(&git.CheckoutOptions{Hash: *hash})
				}
			}
		}
	}
	if err != nil {
		_ = os.RemoveAll(target)
		return "", errors.Wrapf(err, "cloning %s", url)
	}
	return target, nil
}

func cacheKey(url, ref string) string {
	h := sha256.Sum256([]byte(url + "#" + ref))
	return hex.EncodeToString(h[:])
}

func moduleCacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "resolving cache directory")
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, "shrimply", "modules")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating %s", dir)
	}
	return dir, nil
}
