package promptpay

// crc16 computes CRC-16/CCITT-FALSE: initial register 0xFFFF, polynomial
// 0x1021, no input/output reflection, no final XOR.
func crc16(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
