// Package reprozip writes byte-for-byte reproducible zip archives.
//
// Given the same logical contents, a Writer emits an identical archive
// regardless of when it runs or what modification times the source files
// carry: every entry's timestamp is replaced by a canonical value before
// the entry reaches the zip encoder. The canonical value is
// 1980-01-01T00:00:00 UTC (the minimum zip timestamp) unless the
// SOURCE_DATE_EPOCH environment variable pins a specific instant.
//
// Encoding itself (compression, CRC, central directory layout) is
// delegated to archive/zip; this package only intercepts entry metadata.
// Nothing besides the modification time is altered: names, content, mode
// bits, and compression method pass through unchanged.
//
// # Quick Start
//
//	f, err := os.Create("out.zip")
//	if err != nil {
//	    return err
//	}
//	w := reprozip.NewWriter(f)
//	if err := w.AddFile("build/app"); err != nil {
//	    return err
//	}
//	if err := w.AddBytes("VERSION", []byte("1.2.3\n")); err != nil {
//	    return err
//	}
//	if err := w.Close(); err != nil {
//	    return err
//	}
//
// Two builds of the same inputs can be compared with [DigestFile]; they
// are reproducible exactly when their digests match.
package reprozip
