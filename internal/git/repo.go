package git

import (
	"os"
	"path/filepath"
)

// IsRepository reports whether path looks like the root of a git repository.
//
// A .git directory marks a normal repository; a .git file marks a worktree
// or submodule checkout. Both count.
func IsRepository(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}
