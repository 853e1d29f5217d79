// internal/codecfile/codecfile.go
package codecfile

import (
	"encoding/binary"
	"fmt"
	"io"

	"seqcodec-core/alphabet"
	"seqcodec-core/packed"
)

// Container format for packed sequence files, little-endian:
//
//	u32 magic, u8 version, u8 alphabet, u16 reserved, u32 record count
//	per record: u16 id length, id bytes, u32 symbol count, packed payload
const (
	Magic   uint32 = 0x43515351 // "QSQC"
	Version byte   = 1
)

// Record pairs a sequence ID with its packed symbols.
type Record struct {
	ID     string
	Packed packed.Packed
}

// Write serializes the records to w. All records must share the given
// alphabet.
func Write(w io.Writer, a alphabet.Alphabet, recs []Record) error {
	hdr := struct {
		Magic    uint32
		Version  byte
		Alphabet byte
		Reserved uint16
		Count    uint32
	}{Magic, Version, byte(a), 0, uint32(len(recs))}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("codecfile: write header: %w", err)
	}
	for _, r := range recs {
		if r.Packed.Alpha != a {
			return fmt.Errorf("codecfile: record %q is %v, container is %v", r.ID, r.Packed.Alpha, a)
		}
		if len(r.ID) > 0xFFFF {
			return fmt.Errorf("codecfile: record ID %q too long", r.ID[:32])
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(len(r.ID))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, r.ID); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(r.Packed.N)); err != nil {
			return err
		}
		if _, err := w.Write(r.Packed.Data); err != nil {
			return err
		}
	}
	return nil
}

// Read deserializes a container written by Write.
func Read(r io.Reader) (alphabet.Alphabet, []Record, error) {
	var hdr struct {
		Magic    uint32
		Version  byte
		Alphabet byte
		Reserved uint16
		Count    uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return 0, nil, fmt.Errorf("codecfile: read header: %w", err)
	}
	if hdr.Magic != Magic {
		return 0, nil, fmt.Errorf("codecfile: bad magic %#x", hdr.Magic)
	}
	if hdr.Version != Version {
		return 0, nil, fmt.Errorf("codecfile: unsupported version %d", hdr.Version)
	}
	a := alphabet.Alphabet(hdr.Alphabet)
	if a > alphabet.Protein {
		return 0, nil, fmt.Errorf("codecfile: unknown alphabet tag %d", hdr.Alphabet)
	}
	recs := make([]Record, 0, hdr.Count)
	for i := uint32(0); i < hdr.Count; i++ {
		var idLen uint16
		if err := binary.Read(r, binary.LittleEndian, &idLen); err != nil {
			return 0, nil, fmt.Errorf("codecfile: record %d: %w", i, err)
		}
		id := make([]byte, idLen)
		if _, err := io.ReadFull(r, id); err != nil {
			return 0, nil, fmt.Errorf("codecfile: record %d id: %w", i, err)
		}
		var nsym uint32
		if err := binary.Read(r, binary.LittleEndian, &nsym); err != nil {
			return 0, nil, fmt.Errorf("codecfile: record %d length: %w", i, err)
		}
		data := make([]byte, packed.PayloadLen(a, int(nsym)))
		if _, err := io.ReadFull(r, data); err != nil {
			return 0, nil, fmt.Errorf("codecfile: record %d payload: %w", i, err)
		}
		recs = append(recs, Record{
			ID:     string(id),
			Packed: packed.Packed{Alpha: a, N: int(nsym), Data: data},
		})
	}
	return a, recs, nil
}
