// Copyright 2022 The Impala-1 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package seqfile reads Hadoop sequence files. The format is a header
// followed by records, with a 16 byte sync marker sprinkled through the
// stream so a reader can re-align after corruption or a mid-file split:
//
//	header: "SEQ" <version> <key class> <value class>
//	        <compressed?> <block compressed?> [codec class]
//	        <metadata> <sync>
//
// Record-organized files store each record as two big-endian lengths and the
// key and value bytes, with the value deflated when record compression is
// on. Block-organized files store batches of records as four compressed
// streams (key lengths, keys, value lengths, values), each batch preceded by
// a sync. A record length of -1 escapes an inline sync marker.
package seqfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"go.uber.org/zap"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
	"github.com/MyqueWooMiddo/Impala-1/pkg/logutil"
)

const (
	// Version 6 is the only version with Text headers and metadata; it has
	// been Hadoop's on-disk format since 2009 and is the only one produced
	// by current writers.
	Version = 6

	SyncMarkerSize = 16

	syncEscape = int32(-1)

	// maxRecordSize bounds a single record so corrupt length fields fail
	// fast instead of driving huge allocations.
	maxRecordSize = 1 << 30
)

var seqMagic = [3]byte{'S', 'E', 'Q'}

type Header struct {
	KeyClassName    string
	ValueClassName  string
	Compressed      bool
	BlockCompressed bool
	CodecClassName  string
	Metadata        map[string]string
	Sync            [SyncMarkerSize]byte
}

type Record struct {
	Key   []byte
	Value []byte
}

// Reader scans one sequence file from start to end. It is not safe for
// concurrent use; scan distinct files from distinct Readers.
type Reader struct {
	r     *bufio.Reader
	hdr   Header
	codec Codec

	// decoded records of the current compressed block
	block    []Record
	blockIdx int
}

func NewReader(r io.Reader) (*Reader, error) {
	sr := &Reader{r: bufio.NewReaderSize(r, 64<<10)}
	if err := sr.readHeader(); err != nil {
		return nil, err
	}
	logutil.Debug("sequence file header",
		zap.String("key_class", sr.hdr.KeyClassName),
		zap.String("value_class", sr.hdr.ValueClassName),
		zap.Bool("compressed", sr.hdr.Compressed),
		zap.Bool("block_compressed", sr.hdr.BlockCompressed),
		zap.String("codec", sr.hdr.CodecClassName))
	return sr, nil
}

func (sr *Reader) Header() Header {
	return sr.hdr
}

func (sr *Reader) readHeader() error {
	var magic [4]byte
	if _, err := io.ReadFull(sr.r, magic[:]); err != nil {
		return moerr.NewUnexpectedEOFNoCtx("file header")
	}
	if magic[0] != seqMagic[0] || magic[1] != seqMagic[1] || magic[2] != seqMagic[2] {
		return moerr.NewParseErrorNoCtx("not a sequence file: bad magic %q", magic[:3])
	}
	if magic[3] != Version {
		return moerr.NewNYINoCtx("sequence file version %d", magic[3])
	}

	var err error
	if sr.hdr.KeyClassName, err = sr.readText(); err != nil {
		return err
	}
	if sr.hdr.ValueClassName, err = sr.readText(); err != nil {
		return err
	}
	if sr.hdr.Compressed, err = sr.readBool(); err != nil {
		return err
	}
	if sr.hdr.BlockCompressed, err = sr.readBool(); err != nil {
		return err
	}
	if sr.hdr.BlockCompressed && !sr.hdr.Compressed {
		return moerr.NewParseErrorNoCtx("block compressed but compression flag off")
	}
	if sr.hdr.Compressed {
		if sr.hdr.CodecClassName, err = sr.readText(); err != nil {
			return err
		}
		if sr.codec, err = NewCodec(sr.hdr.CodecClassName); err != nil {
			return err
		}
	}
	if err = sr.readMetadata(); err != nil {
		return err
	}
	if _, err = io.ReadFull(sr.r, sr.hdr.Sync[:]); err != nil {
		return moerr.NewUnexpectedEOFNoCtx("sync marker")
	}
	return nil
}

// readText reads a length-prefixed UTF-8 string (Hadoop's Text encoding).
func (sr *Reader) readText() (string, error) {
	n, err := readVInt(sr.r)
	if err != nil {
		return "", moerr.NewUnexpectedEOFNoCtx("text length")
	}
	if n < 0 || n > maxRecordSize {
		return "", moerr.NewParseErrorNoCtx("bad text length %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(sr.r, buf); err != nil {
		return "", moerr.NewUnexpectedEOFNoCtx("text body")
	}
	return string(buf), nil
}

func (sr *Reader) readBool() (bool, error) {
	b, err := sr.r.ReadByte()
	if err != nil {
		return false, moerr.NewUnexpectedEOFNoCtx("boolean")
	}
	return b != 0, nil
}

func (sr *Reader) readMetadata() error {
	var raw [4]byte
	if _, err := io.ReadFull(sr.r, raw[:]); err != nil {
		return moerr.NewUnexpectedEOFNoCtx("metadata count")
	}
	count := int32(binary.BigEndian.Uint32(raw[:]))
	if count < 0 || count > 1024 {
		return moerr.NewParseErrorNoCtx("bad metadata pair count %d", count)
	}
	sr.hdr.Metadata = make(map[string]string, count)
	for i := int32(0); i < count; i++ {
		k, err := sr.readText()
		if err != nil {
			return err
		}
		v, err := sr.readText()
		if err != nil {
			return err
		}
		sr.hdr.Metadata[k] = v
	}
	return nil
}

// Next returns the next record. It returns io.EOF after the last one; any
// other error means the stream is corrupt at the current position and the
// caller may try SkipToSync to resume at the next marker.
func (sr *Reader) Next() (Record, error) {
	if sr.hdr.BlockCompressed {
		return sr.nextFromBlock()
	}
	return sr.nextRecord()
}

func (sr *Reader) nextRecord() (Record, error) {
	for {
		recordLen, err := sr.readInt32()
		if err != nil {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			return Record{}, err
		}
		if recordLen == syncEscape {
			if err := sr.checkSync(); err != nil {
				return Record{}, err
			}
			continue
		}
		if recordLen < 0 || recordLen > maxRecordSize {
			return Record{}, moerr.NewParseErrorNoCtx("bad record length %d", recordLen)
		}
		keyLen, err := sr.readInt32()
		if err != nil {
			return Record{}, moerr.NewUnexpectedEOFNoCtx("key length")
		}
		if keyLen < 0 || keyLen > recordLen {
			return Record{}, moerr.NewParseErrorNoCtx("bad key length %d in record of %d", keyLen, recordLen)
		}
		buf := make([]byte, recordLen)
		if _, err := io.ReadFull(sr.r, buf); err != nil {
			return Record{}, moerr.NewUnexpectedEOFNoCtx("record body")
		}
		rec := Record{Key: buf[:keyLen], Value: buf[keyLen:]}
		if sr.hdr.Compressed {
			if rec.Value, err = sr.codec.Decompress(rec.Value); err != nil {
				return Record{}, err
			}
		}
		return rec, nil
	}
}

func (sr *Reader) nextFromBlock() (Record, error) {
	if sr.blockIdx < len(sr.block) {
		rec := sr.block[sr.blockIdx]
		sr.blockIdx++
		return rec, nil
	}
	if err := sr.readBlock(); err != nil {
		return Record{}, err
	}
	return sr.nextFromBlock()
}

// readBlock reads one compressed block: a sync, the record count, then the
// four deflated streams holding key lengths, keys, value lengths and values.
func (sr *Reader) readBlock() error {
	escape, err := sr.readInt32()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return err
	}
	if escape != syncEscape {
		return moerr.NewParseErrorNoCtx("block does not start with a sync marker")
	}
	if err := sr.checkSync(); err != nil {
		return err
	}

	count, err := readVInt(sr.r)
	if err != nil {
		return moerr.NewUnexpectedEOFNoCtx("block record count")
	}
	if count <= 0 || count > maxRecordSize {
		return moerr.NewParseErrorNoCtx("bad block record count %d", count)
	}

	keyLens, err := sr.readBlockVInts(int(count))
	if err != nil {
		return err
	}
	keys, err := sr.readBlockStream()
	if err != nil {
		return err
	}
	valueLens, err := sr.readBlockVInts(int(count))
	if err != nil {
		return err
	}
	values, err := sr.readBlockStream()
	if err != nil {
		return err
	}

	sr.block = make([]Record, count)
	sr.blockIdx = 0
	var koff, voff int64
	for i := range sr.block {
		ke := koff + keyLens[i]
		ve := voff + valueLens[i]
		if ke > int64(len(keys)) || ve > int64(len(values)) {
			return moerr.NewParseErrorNoCtx("block record lengths exceed stream size")
		}
		sr.block[i] = Record{Key: keys[koff:ke], Value: values[voff:ve]}
		koff, voff = ke, ve
	}
	return nil
}

// readBlockVInts inflates one stream of per-record lengths.
func (sr *Reader) readBlockVInts(count int) ([]int64, error) {
	data, err := sr.readBlockStream()
	if err != nil {
		return nil, err
	}
	br := bytes.NewReader(data)
	lens := make([]int64, count)
	for i := range lens {
		v, err := readVInt64(br)
		if err != nil {
			return nil, moerr.NewUnexpectedEOFNoCtx("block length stream")
		}
		if v < 0 {
			return nil, moerr.NewParseErrorNoCtx("negative length %d in block", v)
		}
		lens[i] = v
	}
	return lens, nil
}

// readBlockStream reads one length-prefixed compressed buffer and inflates it.
func (sr *Reader) readBlockStream() ([]byte, error) {
	n, err := readVInt(sr.r)
	if err != nil {
		return nil, moerr.NewUnexpectedEOFNoCtx("block stream length")
	}
	if n < 0 || n > maxRecordSize {
		return nil, moerr.NewParseErrorNoCtx("bad block stream length %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(sr.r, buf); err != nil {
		return nil, moerr.NewUnexpectedEOFNoCtx("block stream body")
	}
	return sr.codec.Decompress(buf)
}

func (sr *Reader) readInt32() (int32, error) {
	var raw [4]byte
	if _, err := io.ReadFull(sr.r, raw[:]); err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, moerr.NewUnexpectedEOFNoCtx("record length")
	}
	return int32(binary.BigEndian.Uint32(raw[:])), nil
}

func (sr *Reader) checkSync() error {
	var sync [SyncMarkerSize]byte
	if _, err := io.ReadFull(sr.r, sync[:]); err != nil {
		return moerr.NewUnexpectedEOFNoCtx("sync marker")
	}
	if sync != sr.hdr.Sync {
		return moerr.NewParseErrorNoCtx("sync marker mismatch")
	}
	return nil
}

// SkipToSync discards bytes until the next sync marker, leaving the reader
// positioned just past it. Scanners use it to resume after a corrupt record
// or to find the first whole record of a file split. It returns io.EOF when
// no further marker exists.
func (sr *Reader) SkipToSync() error {
	marker := sr.hdr.Sync[:]
	window := make([]byte, 0, SyncMarkerSize)
	for {
		b, err := sr.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return io.EOF
			}
			return err
		}
		if len(window) == SyncMarkerSize {
			copy(window, window[1:])
			window[SyncMarkerSize-1] = b
		} else {
			window = append(window, b)
		}
		if len(window) == SyncMarkerSize && bytes.Equal(window, marker) {
			sr.block = nil
			sr.blockIdx = 0
			return nil
		}
	}
}
