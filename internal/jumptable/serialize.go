package jumptable

import (
	"encoding/binary"
	"fmt"

	"github.com/lox/pokerjump/internal/eval5"
)

// MarshalBinary encodes the full trie as one self-describing byte slice:
// the three value arrays (Level-5, Level-6, Level-7, each length-prefixed)
// followed by the three perfect-hash blobs in the same level order, also
// length-prefixed. internal/tablestore wraps this payload in a file-level
// header and checksum; this method only knows about the trie's own
// structure.
func (jt *JumpTable) MarshalBinary() ([]byte, error) {
	l5Hash, err := jt.level5Hash.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("jumptable: marshal level 5 hash: %w", err)
	}
	l6Hash, err := jt.level6Hash.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("jumptable: marshal level 6 hash: %w", err)
	}
	l7Hash, err := jt.level7Hash.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("jumptable: marshal level 7 hash: %w", err)
	}

	buf := make([]byte, 0,
		len(l5Hash)+len(l6Hash)+len(l7Hash)+
			4*len(jt.level5)+4*len(jt.level6)+4*len(jt.level7)+
			6*8)

	buf = appendUint32Array(buf, handRanksToUint32(jt.level5))
	buf = appendUint32Array(buf, jt.level6)
	buf = appendUint32Array(buf, jt.level7)
	buf = appendBlock(buf, l5Hash)
	buf = appendBlock(buf, l6Hash)
	buf = appendBlock(buf, l7Hash)

	return buf, nil
}

// UnmarshalJumpTable reconstructs a JumpTable from a payload produced by
// MarshalBinary.
func UnmarshalJumpTable(data []byte) (*JumpTable, error) {
	rest := data

	l5Raw, rest, err := readUint32Array(rest)
	if err != nil {
		return nil, fmt.Errorf("jumptable: read level 5 values: %w", err)
	}
	l6Values, rest, err := readUint32Array(rest)
	if err != nil {
		return nil, fmt.Errorf("jumptable: read level 6 values: %w", err)
	}
	l7Values, rest, err := readUint32Array(rest)
	if err != nil {
		return nil, fmt.Errorf("jumptable: read level 7 values: %w", err)
	}

	l5HashBytes, rest, err := readBlock(rest)
	if err != nil {
		return nil, fmt.Errorf("jumptable: read level 5 hash: %w", err)
	}
	l6HashBytes, rest, err := readBlock(rest)
	if err != nil {
		return nil, fmt.Errorf("jumptable: read level 6 hash: %w", err)
	}
	l7HashBytes, _, err := readBlock(rest)
	if err != nil {
		return nil, fmt.Errorf("jumptable: read level 7 hash: %w", err)
	}

	l5Hash, err := unmarshalPerfectHash(l5HashBytes, len(l5Raw))
	if err != nil {
		return nil, err
	}
	l6Hash, err := unmarshalPerfectHash(l6HashBytes, len(l6Values))
	if err != nil {
		return nil, err
	}
	l7Hash, err := unmarshalPerfectHash(l7HashBytes, len(l7Values))
	if err != nil {
		return nil, err
	}

	return fromParts(l5Hash, uint32ToHandRanks(l5Raw), l6Hash, l6Values, l7Hash, l7Values), nil
}

func appendBlock(buf []byte, block []byte) []byte {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(block)))
	buf = append(buf, lenBuf[:]...)
	return append(buf, block...)
}

func readBlock(data []byte) (block []byte, rest []byte, err error) {
	if len(data) < 8 {
		return nil, nil, fmt.Errorf("truncated length prefix")
	}
	n := binary.LittleEndian.Uint64(data[:8])
	data = data[8:]
	if uint64(len(data)) < n {
		return nil, nil, fmt.Errorf("truncated block: want %d bytes, have %d", n, len(data))
	}
	return data[:n], data[n:], nil
}

func appendUint32Array(buf []byte, values []uint32) []byte {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(values)))
	buf = append(buf, lenBuf[:]...)
	for _, v := range values {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		buf = append(buf, b[:]...)
	}
	return buf
}

func readUint32Array(data []byte) (values []uint32, rest []byte, err error) {
	if len(data) < 8 {
		return nil, nil, fmt.Errorf("truncated array length")
	}
	n := binary.LittleEndian.Uint64(data[:8])
	data = data[8:]
	need := n * 4
	if uint64(len(data)) < need {
		return nil, nil, fmt.Errorf("truncated array body: want %d entries, have %d bytes", n, len(data))
	}
	values = make([]uint32, n)
	for i := range values {
		values[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}
	return values, data[need:], nil
}

func handRanksToUint32(ranks []eval5.HandRank) []uint32 {
	out := make([]uint32, len(ranks))
	for i, r := range ranks {
		out[i] = uint32(r)
	}
	return out
}

func uint32ToHandRanks(raw []uint32) []eval5.HandRank {
	out := make([]eval5.HandRank, len(raw))
	for i, v := range raw {
		out[i] = eval5.HandRank(v)
	}
	return out
}
