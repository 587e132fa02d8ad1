// Command reprozip creates, extracts, and digests reproducible zip
// archives.
//
// Usage:
//
//	reprozip -o out.zip path...     create out.zip from the given paths
//	reprozip -x archive.zip [dir]   extract archive.zip into dir (default .)
//	reprozip -digest archive.zip    print the archive's canonical digest
//
// Creation honors SOURCE_DATE_EPOCH; without it every entry is stamped
// 1980-01-01T00:00:00 UTC. Directories are walked in lexical order so
// repeated runs over the same tree are byte-identical.
package main

import (
	"archive/zip"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/meigma/reprozip"
)

func main() {
	out := flag.String("o", "archive.zip", "output archive path")
	extract := flag.String("x", "", "extract the given archive instead of creating one")
	digestPath := flag.String("digest", "", "print the canonical digest of the given archive")
	store := flag.Bool("store", false, "store entries uncompressed")
	flag.Parse()

	switch {
	case *digestPath != "":
		d, err := reprozip.DigestFile(*digestPath)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(d)
	case *extract != "":
		dest := "."
		if flag.NArg() > 0 {
			dest = flag.Arg(0)
		}
		if err := reprozip.Extract(*extract, dest); err != nil {
			log.Fatal(err)
		}
	default:
		if flag.NArg() == 0 {
			log.Fatal("reprozip: no input paths")
		}
		if err := create(*out, *store, flag.Args()); err != nil {
			log.Fatal(err)
		}
	}
}

func create(out string, store bool, paths []string) (err error) {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	var opts []reprozip.Option
	if store {
		opts = append(opts, reprozip.WithMethod(zip.Store))
	}
	w := reprozip.NewWriter(f, opts...)
	for _, p := range paths {
		if addErr := addPath(w, p); addErr != nil {
			w.Close()
			return addErr
		}
	}
	return w.Close()
}

// addPath adds a single file, or walks a directory tree in lexical
// order adding every directory and file entry.
func addPath(w *reprozip.Writer, p string) error {
	info, err := os.Stat(p)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.AddFile(p)
	}
	return filepath.WalkDir(p, func(path string, _ fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		return w.AddFile(path)
	})
}
