package numerical

import "math"

// Pow 整数次幂
// 指数在 [-4, 4] 内时直接连乘 / 取倒数，其余情况退回 math.Pow。
// a == 0 且指数为负时结果为 +Inf，不会返回 0。
func Pow(a float64, n int) float64 {
	switch n {
	case -4:
		return 1.0 / Pow(a, 4)
	case -3:
		return 1.0 / Pow(a, 3)
	case -2:
		return 1.0 / Pow(a, 2)
	case -1:
		return 1.0 / a
	case 0:
		return 1.0
	case 1:
		return a
	case 2:
		return a * a
	case 3:
		return a * a * a
	case 4:
		return a * a * a * a
	default:
		return math.Pow(a, float64(n))
	}
}

// Linspace 在 [start, end] 上生成 n 个等距采样点（包含两端点）
// n == 1 时返回 [start]，n <= 0 时返回空切片
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}
	res := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := 0; i < n; i++ {
		res[i] = start + float64(i)*step
	}
	// 消除累积舍入误差，末端点严格等于 end
	res[n-1] = end
	return res
}
