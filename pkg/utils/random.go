package utils

import "math/rand/v2"

// RandomSource 随机数来源
// *rand.Rand 满足该接口；测试中可替换为固定序列
type RandomSource interface {
	// Float32 返回 [0, 1) 内的随机数
	Float32() float32
}

// NewRandomSource 创建以 seed 为种子的随机数来源
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandRange 返回 [min, max) 内的随机数
func RandRange(rng RandomSource, min, max float32) float32 {
	return min + rng.Float32()*(max-min)
}

// SequenceSource 按顺序循环返回固定值的随机数来源
type SequenceSource struct {
	Values []float32
	next   int
}

// Float32 返回序列中的下一个值；序列为空时返回 0
func (s *SequenceSource) Float32() float32 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
