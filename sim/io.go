package sim

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

var recordEndianness = binary.LittleEndian

const (
	headerMagic   = 0x314e4b4d // "MKN1" on disk
	recordVersion = 1
)

// Header identifies a record file and the run parameters it was generated
// under. Records follow it back to back.
type Header struct {
	Magic   uint32
	Version uint32
	Seed    int64
	Events  int64
	Beams   int64
}

// Record is the on-disk form of one generated primary: the event it belongs
// to, its species, vertex, momentum and total energy.
type Record struct {
	Event      uint32
	ID         int32
	T, X, Y, Z float64
	Px, Py, Pz float64
	E          float64
}

// ReadRun reads back a record file written by Run. Records come back in file
// order, which Run guarantees is event order.
func ReadRun(fname string) (*Header, []Record, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	buf := bufio.NewReader(f)
	hd := &Header{}
	if err := binary.Read(buf, recordEndianness, hd); err != nil {
		return nil, nil, err
	}
	if hd.Magic != headerMagic {
		return nil, nil, fmt.Errorf("'%s' is not a record file.", fname)
	}
	if hd.Version != recordVersion {
		return nil, nil, fmt.Errorf(
			"'%s' uses record version %d, but only version %d is supported.",
			fname, hd.Version, recordVersion,
		)
	}

	recs := make([]Record, 0, int(hd.Events*hd.Beams))
	for {
		rec := Record{}
		err := binary.Read(buf, recordEndianness, &rec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		recs = append(recs, rec)
	}

	return hd, recs, nil
}
