// Package snapshot is the binary encoding of a saved ledger.
//
// Layout (big endian):
//
//	magic    [4]byte  "BJSV"
//	version  uint8
//	nameLen  uvarint
//	name     [nameLen]byte (UTF-8)
//	wealth   uint16
//	checksum [32]byte blake2b-256 of everything above
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"

	"github.com/mcoot/blackjack/internal/model"
)

const (
	// Version is the current snapshot format version
	Version uint8 = 1

	// MaxNameLength bounds the stored player name in bytes
	MaxNameLength = 1 << 12

	headerSize   = 5
	wealthSize   = 2
	checksumSize = blake2b.Size256
)

var magic = [4]byte{'B', 'J', 'S', 'V'}

// Encode serializes a player into a snapshot blob
func Encode(p *model.Player) ([]byte, error) {
	if len(p.Name) > MaxNameLength {
		return nil, fmt.Errorf("player name is %d bytes, limit is %d", len(p.Name), MaxNameLength)
	}
	if !utf8.ValidString(p.Name) {
		return nil, fmt.Errorf("player name is not valid UTF-8")
	}

	buf := make([]byte, 0, headerSize+binary.MaxVarintLen64+len(p.Name)+wealthSize+checksumSize)
	buf = append(buf, magic[:]...)
	buf = append(buf, Version)
	buf = binary.AppendUvarint(buf, uint64(len(p.Name)))
	buf = append(buf, p.Name...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(p.Wealth))

	sum := blake2b.Sum256(buf)
	return append(buf, sum[:]...), nil
}

// Decode parses a snapshot blob. Any malformed input yields an error
// wrapping model.ErrSaveCorrupted.
func Decode(data []byte) (*model.Player, error) {
	if len(data) < headerSize+1+wealthSize+checksumSize {
		return nil, corrupted("snapshot is %d bytes", len(data))
	}

	body, stored := data[:len(data)-checksumSize], data[len(data)-checksumSize:]
	sum := blake2b.Sum256(body)
	if !bytes.Equal(sum[:], stored) {
		return nil, corrupted("checksum mismatch")
	}

	if !bytes.Equal(body[:len(magic)], magic[:]) {
		return nil, corrupted("bad magic %q", body[:len(magic)])
	}
	if v := body[len(magic)]; v != Version {
		return nil, corrupted("unsupported version %d", v)
	}

	rest := body[headerSize:]
	nameLen, n := binary.Uvarint(rest)
	if n <= 0 {
		return nil, corrupted("bad name length")
	}
	rest = rest[n:]
	if nameLen > MaxNameLength || uint64(len(rest)) != nameLen+wealthSize {
		return nil, corrupted("name length %d does not fit snapshot", nameLen)
	}

	name := string(rest[:nameLen])
	if !utf8.ValidString(name) {
		return nil, corrupted("name is not valid UTF-8")
	}
	wealth := binary.BigEndian.Uint16(rest[nameLen:])

	return &model.Player{
		Name:   name,
		Wealth: model.Wealth(wealth),
	}, nil
}

func corrupted(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrSaveCorrupted, fmt.Sprintf(format, args...))
}
