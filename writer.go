package reprozip

import (
	"archive/zip"
	"io"
	"os"
	"strings"
)

// Writer produces zip archives whose entries all carry the canonical
// timestamp instead of their source files' modification times.
// Everything else about each entry (name, content, mode bits,
// compression method) is handed to the codec unchanged.
//
// Writer is not safe for concurrent use: the codec's central-directory
// bookkeeping assumes a single caller.
type Writer struct {
	codec Codec
	cfg   writerConfig
}

// writerConfig holds configuration for a Writer.
type writerConfig struct {
	lookup EpochLookup
	method uint16
}

// Option configures a Writer.
type Option func(*writerConfig)

// WithEpochLookup substitutes the function used to read the
// SOURCE_DATE_EPOCH override. The default is os.LookupEnv. The lookup
// runs once per add call, so changing what it reports takes effect on
// the next entry.
func WithEpochLookup(lookup EpochLookup) Option {
	return func(cfg *writerConfig) {
		cfg.lookup = lookup
	}
}

// WithMethod sets the compression method recorded for entries.
// The default is zip.Deflate; use zip.Store for uncompressed archives.
// Directory entries are always stored.
func WithMethod(method uint16) Option {
	return func(cfg *writerConfig) {
		cfg.method = method
	}
}

// NewWriter returns a Writer that encodes entries with archive/zip,
// writing the archive to w. The archive is complete only after Close
// returns nil.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	return NewCodecWriter(newZipCodec(w), opts...)
}

// NewCodecWriter returns a Writer that encodes entries with the given
// codec. It exists so the normalization layer can be exercised against
// a fake encoder; most callers want NewWriter.
func NewCodecWriter(codec Codec, opts ...Option) *Writer {
	cfg := writerConfig{method: zip.Deflate}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Writer{codec: codec, cfg: cfg}
}

// addConfig holds configuration for a single add call.
type addConfig struct {
	arcname string
}

// AddOption configures a single AddFile or AddBytes call.
type AddOption func(*addConfig)

// AddWithName stores the entry under name instead of one derived from
// the source path.
func AddWithName(name string) AddOption {
	return func(cfg *addConfig) {
		cfg.arcname = name
	}
}

// AddFile adds the file or directory at path to the archive. The stored
// name defaults to NormalizeArcname(path); directories become empty
// entries with a trailing slash. The entry's modification time is
// always the canonical timestamp, never the file's mtime. Stat and read
// errors propagate unchanged.
func (w *Writer) AddFile(path string, opts ...AddOption) error {
	var cfg addConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	modified, err := resolveEpoch(w.cfg.lookup)
	if err != nil {
		return err
	}

	name := cfg.arcname
	if name == "" {
		name = NormalizeArcname(path)
	}

	hdr := &zip.FileHeader{
		Name:     name,
		Method:   w.cfg.method,
		Modified: modified,
	}
	hdr.SetMode(info.Mode())

	if info.IsDir() {
		if !strings.HasSuffix(hdr.Name, "/") {
			hdr.Name += "/"
		}
		hdr.Method = zip.Store
		_, err := w.codec.Create(hdr)
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ew, err := w.codec.Create(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(ew, f)
	return err
}

// AddBytes adds an entry named name with the literal content data.
// Timestamp handling is identical to AddFile; no filesystem access
// occurs.
func (w *Writer) AddBytes(name string, data []byte, opts ...AddOption) error {
	var cfg addConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.arcname != "" {
		name = cfg.arcname
	}

	modified, err := resolveEpoch(w.cfg.lookup)
	if err != nil {
		return err
	}

	hdr := &zip.FileHeader{
		Name:     name,
		Method:   w.cfg.method,
		Modified: modified,
	}
	hdr.SetMode(0o600)

	ew, err := w.codec.Create(hdr)
	if err != nil {
		return err
	}
	_, err = ew.Write(data)
	return err
}

// Close finalizes the archive through the codec. Entries added before a
// failed add call remain intact, but the archive is only guaranteed
// complete and readable once Close returns nil.
func (w *Writer) Close() error {
	return w.codec.Close()
}
