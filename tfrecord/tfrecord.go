package tfrecord

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"os"
)

// Record framing: a little-endian uint64 payload length, the masked
// crc32c of those length bytes, the payload, then the masked crc32c of
// the payload.

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

const crcMaskDelta = 0xa282ead8

// maskedCRC is the stored checksum variant: crc32c rotated right by 15
// bits plus a fixed delta.
func maskedCRC(data []byte) uint32 {
	crc := crc32.Checksum(data, castagnoli)
	return ((crc >> 15) | (crc << 17)) + crcMaskDelta
}

// Writer emits framed records into a single file.
type Writer struct {
	file    *os.File
	writer  *bufio.Writer
	Records int
}

// NewWriter creates or truncates the record file at path.
func NewWriter(path string) (*Writer, error) {
	outFile, fileErr := os.OpenFile(path,
		os.O_TRUNC|os.O_RDWR|os.O_CREATE, 0755)
	if fileErr != nil {
		return nil, errors.New(fmt.Sprintf(
			"error opening '%s' for write: %s", path, fileErr))
	}
	return &Writer{
		file:   outFile,
		writer: bufio.NewWriterSize(outFile, 1024*1024),
	}, nil
}

// WriteRecord frames one payload.
func (w *Writer) WriteRecord(payload []byte) error {
	var header [12]byte
	binary.LittleEndian.PutUint64(header[0:8], uint64(len(payload)))
	binary.LittleEndian.PutUint32(header[8:12], maskedCRC(header[0:8]))
	if _, writeErr := w.writer.Write(header[:]); writeErr != nil {
		return writeErr
	}
	if _, writeErr := w.writer.Write(payload); writeErr != nil {
		return writeErr
	}
	var footer [4]byte
	binary.LittleEndian.PutUint32(footer[:], maskedCRC(payload))
	if _, writeErr := w.writer.Write(footer[:]); writeErr != nil {
		return writeErr
	}
	w.Records++
	return nil
}

// Close flushes buffered records and closes the file.
func (w *Writer) Close() error {
	if flushErr := w.writer.Flush(); flushErr != nil {
		w.file.Close()
		return flushErr
	}
	return w.file.Close()
}
