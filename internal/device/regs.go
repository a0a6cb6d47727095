package device

import "github.com/Cetic99/neurax/internal/tensor"

// Register offsets relative to the mapped window base. This is the binary
// contract a real accelerator must honor bit for bit.
const (
	RegControl    = 0x00
	RegStatus     = 0x04
	RegConvConfig = 0x08
	RegPoolConfig = 0x0C
	RegActConfig  = 0x10
	RegDimConfig  = 0x14
	RegWeightAddr = 0x18
	RegBiasAddr   = 0x1C
)

// CONTROL register bits.
const (
	CtrlStart     uint32 = 1 << 0
	CtrlReset     uint32 = 1 << 1
	CtrlConvEn    uint32 = 1 << 2
	CtrlPoolEn    uint32 = 1 << 3
	CtrlActEn     uint32 = 1 << 4
	CtrlDataWidth uint32 = 1 << 5 // 0 = 8-bit, 1 = 16-bit
)

// STATUS register bits.
const (
	StatBusy  uint32 = 1 << 0
	StatDone  uint32 = 1 << 1
	StatError uint32 = 1 << 2
)

// PackConvConfig encodes the CONV_CONFIG register word:
//
//	bits  3:0  kernel size minus one
//	bits  6:4  stride minus one
//	bits  8:7  padding
//	bit   9    bias enable
//	bits 12:10 input channel count minus one
func PackConvConfig(kernelSize, stride, padding int, useBias bool, inputChannels int) uint32 {
	raw := uint32(kernelSize-1) & 0xF
	raw |= (uint32(stride-1) & 0x7) << 4
	raw |= (uint32(padding) & 0x3) << 7
	if useBias {
		raw |= 1 << 9
	}
	raw |= (uint32(inputChannels-1) & 0x7) << 10
	return raw
}

// UnpackConvConfig decodes a CONV_CONFIG register word.
func UnpackConvConfig(raw uint32) (kernelSize, stride, padding int, useBias bool, inputChannels int) {
	kernelSize = int(raw&0xF) + 1
	stride = int((raw>>4)&0x7) + 1
	padding = int((raw >> 7) & 0x3)
	useBias = raw&(1<<9) != 0
	inputChannels = int((raw>>10)&0x7) + 1
	return
}

// PackPoolConfig encodes the POOL_CONFIG register word:
//
//	bit   0   pool type (0 = max, 1 = average)
//	bits 3:1  pool size minus two
//	bits 6:4  stride minus one
func PackPoolConfig(poolType tensor.PoolType, poolSize, stride int) uint32 {
	raw := uint32(poolType) & 0x1
	raw |= (uint32(poolSize-2) & 0x7) << 1
	raw |= (uint32(stride-1) & 0x7) << 4
	return raw
}

// UnpackPoolConfig decodes a POOL_CONFIG register word.
func UnpackPoolConfig(raw uint32) (poolType tensor.PoolType, poolSize, stride int) {
	poolType = tensor.PoolType(raw & 0x1)
	poolSize = int((raw>>1)&0x7) + 2
	stride = int((raw>>4)&0x7) + 1
	return
}

// PackActConfig encodes the ACT_CONFIG register word: bits 1:0 select the
// activation function.
func PackActConfig(a tensor.Activation) uint32 {
	return uint32(a) & 0x3
}

// PackDimConfig encodes the DIM_CONFIG register word: input width in bits
// 15:0, input height in bits 31:16.
func PackDimConfig(width, height int) uint32 {
	return (uint32(width) & 0xFFFF) | (uint32(height)&0xFFFF)<<16
}

// UnpackDimConfig decodes a DIM_CONFIG register word.
func UnpackDimConfig(raw uint32) (width, height int) {
	return int(raw & 0xFFFF), int(raw >> 16)
}
