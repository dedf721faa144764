package bytecode

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the fixed byte size of a schedule header (spec.md §6.1).
const HeaderSize = 48

// OperationCounts are the abstract per-strategy operation tallies the
// compiler accumulates while emitting a schedule, stored in the header for
// offline analysis, grounded on bytecode.h's OperationCounts.
type OperationCounts struct {
	Dbl  uint32
	Dbln uint32
	Tpl  uint32
	Tpln uint32
	Add  uint32
	Addn uint32
	Dadd uint32
	Ddbl uint32
}

// Header is the 48-byte record spec.md §6.1 places at the start of every
// schedule.
type Header struct {
	TotalSize uint64 // total byte size of the schedule, header included
	B1        uint64 // smoothness bound this schedule realises
	Counts    OperationCounts
}

// BinarySize returns the serialized size of a Header in bytes.
func (h Header) BinarySize() int { return HeaderSize }

// WriteTo writes h on w, implementing io.WriterTo, mirroring the
// WriteTo/ReadFrom naming ring/structs.go uses throughout for its
// fixed-layout records.
func (h Header) WriteTo(w io.Writer) (n int64, err error) {
	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint64(buf[0:8], h.TotalSize)
	binary.LittleEndian.PutUint64(buf[8:16], h.B1)
	binary.LittleEndian.PutUint32(buf[16:20], h.Counts.Dbl)
	binary.LittleEndian.PutUint32(buf[20:24], h.Counts.Dbln)
	binary.LittleEndian.PutUint32(buf[24:28], h.Counts.Tpl)
	binary.LittleEndian.PutUint32(buf[28:32], h.Counts.Tpln)
	binary.LittleEndian.PutUint32(buf[32:36], h.Counts.Add)
	binary.LittleEndian.PutUint32(buf[36:40], h.Counts.Addn)
	binary.LittleEndian.PutUint32(buf[40:44], h.Counts.Dadd)
	binary.LittleEndian.PutUint32(buf[44:48], h.Counts.Ddbl)

	written, err := w.Write(buf[:])
	return int64(written), err
}

// ReadFrom reads a Header from r, implementing io.ReaderFrom.
func (h *Header) ReadFrom(r io.Reader) (n int64, err error) {
	var buf [HeaderSize]byte
	read, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(read), fmt.Errorf("bytecode: reading header: %w", err)
	}

	h.TotalSize = binary.LittleEndian.Uint64(buf[0:8])
	h.B1 = binary.LittleEndian.Uint64(buf[8:16])
	h.Counts.Dbl = binary.LittleEndian.Uint32(buf[16:20])
	h.Counts.Dbln = binary.LittleEndian.Uint32(buf[20:24])
	h.Counts.Tpl = binary.LittleEndian.Uint32(buf[24:28])
	h.Counts.Tpln = binary.LittleEndian.Uint32(buf[28:32])
	h.Counts.Add = binary.LittleEndian.Uint32(buf[32:36])
	h.Counts.Addn = binary.LittleEndian.Uint32(buf[36:40])
	h.Counts.Dadd = binary.LittleEndian.Uint32(buf[40:44])
	h.Counts.Ddbl = binary.LittleEndian.Uint32(buf[44:48])
	return int64(read), nil
}

// Schedule is a fully compiled bytecode program: the decoded header plus
// the raw block stream that follows it (not including the header bytes).
type Schedule struct {
	Header Header
	Blocks []byte
}

// WriteTo writes the header followed by the block stream.
func (s Schedule) WriteTo(w io.Writer) (n int64, err error) {
	hn, err := s.Header.WriteTo(w)
	if err != nil {
		return hn, err
	}
	bn, err := w.Write(s.Blocks)
	return hn + int64(bn), err
}

// ReadFrom reads a header then its block stream (TotalSize - HeaderSize
// bytes) from r.
func (s *Schedule) ReadFrom(r io.Reader) (n int64, err error) {
	hn, err := s.Header.ReadFrom(r)
	if err != nil {
		return hn, err
	}
	blockLen := int64(s.Header.TotalSize) - HeaderSize
	if blockLen < 0 {
		return hn, fmt.Errorf("bytecode: header reports total size %d smaller than header itself", s.Header.TotalSize)
	}
	s.Blocks = make([]byte, blockLen)
	bn, err := io.ReadFull(r, s.Blocks)
	if err != nil {
		return hn + int64(bn), fmt.Errorf("bytecode: reading block stream: %w", err)
	}
	return hn + int64(bn), nil
}
