package emvqr

import "fmt"

const crcPolynomial = 0x1021

// Checksum computes CRC16-CCITT over data: polynomial 0x1021, initial
// register 0xFFFF, no final XOR.
func Checksum(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// ChecksumHex renders the checksum as 4 uppercase hex digits, the form the
// payload carries in field 63.
func ChecksumHex(data string) string {
	return fmt.Sprintf("%04X", Checksum(data))
}
