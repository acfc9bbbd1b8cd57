package main

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alecthomas/repr"
	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/pontaoski/tawac/config"
	"github.com/pontaoski/tawac/errors"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestSourceFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.tawa":         "pass\n",
		"a.tawa":         "pass\n",
		"notes.txt":      "",
		"sub/c.tawa":     "pass\n",
		".hidden/d.tawa": "pass\n",
		"sub/.e/f.tawa":  "pass\n",
	})
	got, err := sourceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.tawa"),
		filepath.Join(dir, "b.tawa"),
		filepath.Join(dir, "sub", "c.tawa"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sourceFiles() = %v, want %v", got, want)
	}
}

func TestCheckFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.tawa": "x = 1 + 2\n",
		"bad.tawa":  "x = 1 2\n",
		"also.tawa": "func f(int x) -> int {\n\treturn x * 2\n}\n",
	})
	files, err := sourceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	results, err := checkFiles(context.Background(), files)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(files) {
		t.Fatalf("got %d results for %d files", len(results), len(files))
	}
	for i, r := range results {
		if r.path != files[i] {
			t.Errorf("result %d is for %s, want %s", i, r.path, files[i])
		}
		bad := filepath.Base(r.path) == "bad.tawa"
		if bad != (r.err != nil) {
			t.Errorf("%s: err = %v", r.path, r.err)
		}
		if bad {
			if _, ok := errors.AsError(r.err); !ok {
				t.Errorf("%s: %T is not a positioned error", r.path, r.err)
			}
			if !strings.Contains(r.err.Error(), "bad.tawa") {
				t.Errorf("%s: error %q does not name the file", r.path, r.err)
			}
		}
	}

	failed, err := checkDir(context.Background(), dir)
	if err != nil || failed != 1 {
		t.Errorf("checkDir() = %d, %v", failed, err)
	}
}

func TestCheckFilesCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.tawa": "pass\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := checkFiles(ctx, []string{filepath.Join(dir, "a.tawa")}); err == nil {
		t.Error("checkFiles ran with a cancelled context")
	}
}

func TestWatchLoopDebounces(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	var calls int32
	changed := make(chan struct{}, 10)
	onChange := func() {
		atomic.AddInt32(&calls, 1)
		changed <- struct{}{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, events, errs, 50*time.Millisecond, nil, onChange)
	}()

	for i := 0; i < 5; i++ {
		events <- fsnotify.Event{Name: "a.tawa", Op: fsnotify.Write}
	}
	events <- fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "b.tawa", Op: fsnotify.Chmod}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange was not called")
	}
	time.Sleep(150 * time.Millisecond)
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("onChange called %d times for one burst", n)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchLoop() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchLoop did not stop")
	}
}

func TestWatchLoopIgnoresUnrelatedFiles(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	var calls int32
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(context.Background(), events, errs, 10*time.Millisecond, nil, func() {
			atomic.AddInt32(&calls, 1)
		})
	}()

	events <- fsnotify.Event{Name: "README.md", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "a.tawa", Op: fsnotify.Chmod}
	time.Sleep(50 * time.Millisecond)
	close(events)
	if err := <-done; err != nil {
		t.Errorf("watchLoop() = %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("onChange called %d times", n)
	}
}

func TestWatchLoopReturnsWatcherErrors(t *testing.T) {
	errs := make(chan error, 1)
	errs <- fsnotify.ErrEventOverflow
	err := watchLoop(context.Background(), make(chan fsnotify.Event), errs, time.Second, nil, func() {})
	if err != fsnotify.ErrEventOverflow {
		t.Errorf("watchLoop() = %v", err)
	}
}

func TestWatchLoopAddsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	events := make(chan fsnotify.Event, 1)
	var added []string
	events <- fsnotify.Event{Name: sub, Op: fsnotify.Create}
	close(events)
	err := watchLoop(context.Background(), events, make(chan error), time.Second, func(path string) error {
		added = append(added, path)
		return nil
	}, func() {})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(added, []string{sub}) {
		t.Errorf("added %v", added)
	}
}

func runWithOptions(t *testing.T, dir string, args ...string) (config.Options, error) {
	t.Helper()
	var (
		opts       config.Options
		resolveErr error
	)
	app := &cli.App{
		Name:  "tawac",
		Flags: optionFlags(),
		Action: func(c *cli.Context) error {
			opts, resolveErr = resolveOptions(c, dir)
			return nil
		},
	}
	if err := app.Run(append([]string{"tawac"}, args...)); err != nil {
		t.Fatal(err)
	}
	return opts, resolveErr
}

func TestResolveOptions(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		config.YAMLFile: "Package: demo\nOptions:\n  Target: out/demo\n  OptLevel: 1\n  Flags: [a]\n",
	})
	opts, err := runWithOptions(t, dir, "-O", "2", "--flag", "b", "-g")
	if err != nil {
		t.Fatal(err)
	}
	want := config.Options{Target: "out/demo", DebugInfo: true, OptLevel: 2, Flags: []string{"a", "b"}}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("options = %+v, want %+v", opts, want)
	}

	dumped := repr.String(unit{Options: opts}, repr.OmitEmpty(true))
	if !strings.Contains(dumped, `"out/demo"`) {
		t.Errorf("dump lacks the target: %s", dumped)
	}

	opts, err = runWithOptions(t, t.TempDir())
	if err != nil || !reflect.DeepEqual(opts, config.Options{}) {
		t.Errorf("without a project file = %+v, %v", opts, err)
	}

	if _, err := runWithOptions(t, dir, "--opt-level", "7"); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("opt level 7 = %v", err)
	}
}

func TestValidateOptionsRejectsBadProject(t *testing.T) {
	dir := writeFiles(t, map[string]string{config.YAMLFile: "Package: demo\nOptions:\n  OptLevel: 9\n"})
	var got error
	app := &cli.App{
		Name:  "tawac",
		Flags: optionFlags(),
		Action: func(c *cli.Context) error {
			got = validateOptions(c, dir)
			return nil
		},
	}
	if err := app.Run([]string{"tawac"}); err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("a project with opt level 9 validated")
	}
}
