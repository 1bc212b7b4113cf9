// Package tests provides the external test fixtures, downloaded on first use
// next to this file.
package tests

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

// fixture is a directory of test files, fetched once per test binary.
type fixture struct {
	name  string
	fetch func(dest string) error

	once sync.Once
	dir  string
	err  error
}

var (
	testRoms = &fixture{
		name:  "nes-test-roms",
		fetch: fetchTestRoms,
	}
	singleStepTests = &fixture{
		name:  "tomharte.processor.tests",
		fetch: fetchSingleStepTests,
	}
)

// RomsPath returns the directory holding github.com/christopherpow/nes-test-roms.
func RomsPath(tb testing.TB) string {
	return testRoms.path(tb)
}

// TomHarteProcTestsPath returns the directory holding one JSON file per
// opcode, from github.com/SingleStepTests/65x02 (nes6502 variant).
func TomHarteProcTestsPath(tb testing.TB) string {
	return singleStepTests.path(tb)
}

func (f *fixture) path(tb testing.TB) string {
	tb.Helper()

	f.once.Do(func() {
		_, file, _, _ := runtime.Caller(0)
		f.dir = filepath.Join(filepath.Dir(file), f.name)
		if _, err := os.Stat(f.dir); !errors.Is(err, fs.ErrNotExist) {
			return
		}

		tb.Logf("%s not found, downloading it...", f.name)
		if f.err = f.fetch(f.dir); f.err == nil {
			tb.Logf("%s downloaded in %s", f.name, f.dir)
		}
	})
	if f.err != nil {
		tb.Fatalf("%s: %s", f.name, f.err)
	}
	return f.dir
}

func httpGet(url string, w io.Writer) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

func fetchTestRoms(dest string) error {
	const url = `https://github.com/christopherpow/nes-test-roms/archive/refs/heads/master.zip`

	tmpf, err := os.CreateTemp("", "nes-test-roms-*.zip")
	if err != nil {
		return err
	}
	defer os.Remove(tmpf.Name())
	defer tmpf.Close()

	if err := httpGet(url, tmpf); err != nil {
		return err
	}
	return unzip(tmpf.Name(), "nes-test-roms-master", dest)
}

// unzip extracts the files under root in the zip archive into dest.
func unzip(path, root, dest string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	dest = filepath.Clean(dest)
	for _, f := range r.File {
		rel, ok := strings.CutPrefix(f.Name, root)
		if !ok {
			continue
		}
		fpath := filepath.Join(dest, rel)
		if fpath != dest && !strings.HasPrefix(fpath, dest+string(os.PathSeparator)) {
			return fmt.Errorf("%s: illegal file path", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(fpath, 0755); err != nil {
				return err
			}
			continue
		}
		if err := extract(f, fpath); err != nil {
			return err
		}
	}
	return nil
}

func extract(f *zip.File, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// fetchSingleStepTests downloads the 256 opcode files in a temporary
// directory, moved to dest once all have been fetched.
func fetchSingleStepTests(dest string) error {
	const urlfmt = `https://raw.githubusercontent.com/SingleStepTests/65x02/main/nes6502/v1/%02x.json`

	tmpdir, err := os.MkdirTemp("", "tomharte.processor.tests.*")
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for opcode := range 256 {
		g.Go(func() error {
			f, err := os.Create(filepath.Join(tmpdir, fmt.Sprintf("%02x.json", opcode)))
			if err != nil {
				return err
			}
			if err := httpGet(fmt.Sprintf(urlfmt, opcode), f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		})
	}

	if err := g.Wait(); err != nil {
		os.RemoveAll(tmpdir)
		return err
	}
	return os.Rename(tmpdir, dest)
}
