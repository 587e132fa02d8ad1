package reprozip

import (
	"archive/zip"
	"io"

	"github.com/klauspost/compress/flate"
)

// Codec is the narrow surface a Writer needs from a zip encoder. The
// default implementation wraps archive/zip; tests may substitute a fake
// to observe the headers the normalization layer produces.
type Codec interface {
	// Create appends an entry with the given header and returns a writer
	// for its content.
	Create(hdr *zip.FileHeader) (io.Writer, error)

	// Close finalizes the archive, writing the central directory.
	Close() error
}

// deflateLevel is fixed so compressed bytes depend only on input bytes.
const deflateLevel = flate.DefaultCompression

type zipCodec struct {
	zw *zip.Writer
}

func newZipCodec(w io.Writer) *zipCodec {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, deflateLevel)
	})
	return &zipCodec{zw: zw}
}

func (c *zipCodec) Create(hdr *zip.FileHeader) (io.Writer, error) {
	return c.zw.CreateHeader(hdr)
}

func (c *zipCodec) Close() error {
	return c.zw.Close()
}
