package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/pontaoski/tawac/ast"
	"github.com/pontaoski/tawac/parser"
)

const sourceExt = ".tawa"

func parsePath(path string) (*ast.File, error) {
	handle, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer handle.Close()
	return parser.ParseFile(path, handle)
}

// sourceFiles lists the source files under dir in lexical order. Hidden
// directories are skipped.
func sourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && len(d.Name()) > 1 && d.Name()[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == sourceExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

type checkResult struct {
	path string
	err  error
}

// checkFiles parses every file on its own goroutine. The results come back
// in the order of files, whatever order the parses finish in.
func checkFiles(ctx context.Context, files []string) ([]checkResult, error) {
	results := make([]checkResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := parsePath(path)
			results[i] = checkResult{path: path, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// checkDir parses the sources of dir, reports each failure and returns
// how many files failed.
func checkDir(ctx context.Context, dir string) (int, error) {
	files, err := sourceFiles(dir)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		plog.Warningf("no %s files in %s", sourceExt, dir)
		return 0, nil
	}
	results, err := checkFiles(ctx, files)
	if err != nil {
		return 0, err
	}
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			report(r.err)
			continue
		}
		plog.Debugf("%s: ok", r.path)
	}
	plog.Infof("checked %d file(s), %d failed", len(results), failed)
	return failed, nil
}
