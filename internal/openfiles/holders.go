package openfiles

import (
	"os"
	"path/filepath"

	"github.com/prometheus/procfs"
)

// Holders returns the PIDs of other processes that have path open.
func Holders(path string) ([]int, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return nil, err
	}

	return holdersIn(fs, path, os.Getpid())
}

func holdersIn(fs procfs.FS, path string, selfPID int) ([]int, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}

	procs, err := fs.AllProcs()
	if err != nil {
		return nil, err
	}

	var result []int
	for _, proc := range procs {
		if proc.PID == selfPID {
			continue
		}

		targets, err := proc.FileDescriptorTargets()
		if err != nil {
			// process exited or belongs to another user
			continue
		}

		for _, t := range targets {
			if t == target {
				result = append(result, proc.PID)
				break
			}
		}
	}

	return result, nil
}
