// Package checksum frames datagram payloads with a CRC-16 trailer
package checksum

import (
	"encoding/binary"
	"errors"

	"github.com/sigurn/crc16"
)

// Size is the length of the trailer in bytes
const Size = 2

// Custom error types
var (
	ErrTooShort = errors.New("datagram shorter than checksum")
	ErrMismatch = errors.New("checksum mismatch")
)

var ccittParams = crc16.Params{
	Poly:   0x1021,
	Init:   0xFFFF,
	RefIn:  false,
	RefOut: false,
	XorOut: 0x0000,
	Name:   "CRC-16/CCITT-FALSE",
}

var crcTable = crc16.MakeTable(ccittParams)

// Calc calculates CRC-CCITT for the given data
func Calc(data []byte) uint16 {
	return crc16.Checksum(data, crcTable)
}

// Append returns payload followed by its big endian checksum
func Append(payload []byte) []byte {
	out := make([]byte, len(payload), len(payload)+Size)
	copy(out, payload)
	return binary.BigEndian.AppendUint16(out, Calc(payload))
}

// Verify checks the trailer of datagram and returns the payload without it
func Verify(datagram []byte) ([]byte, error) {
	if len(datagram) < Size {
		return nil, ErrTooShort
	}

	payload := datagram[:len(datagram)-Size]
	if binary.BigEndian.Uint16(datagram[len(payload):]) != Calc(payload) {
		return nil, ErrMismatch
	}
	return payload, nil
}
