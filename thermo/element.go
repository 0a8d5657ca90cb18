package thermo

import "strconv"

// Element 化学元素，多个物种通过指针共享，注册后只读
type Element struct {
	Name         string  // 元素符号
	AtomicNumber int     // 原子序数
	Mass         float64 // 原子量 [g/mol]
	Entropy298   float64 // 298 K 标准摩尔熵
}

// Component 组成项：元素 + 化学计量数
type Component struct {
	Element *Element
	Count   int
}

type Composition []Component

// Validate 检查组成：元素非空、计量数 >= 1、同一元素不得重复出现
// 重复元素直接拒绝，不自动合并
func (c Composition) Validate() error {
	if len(c) == 0 {
		return newCompositionError("empty composition")
	}
	seen := make(map[*Element]struct{}, len(c))
	names := make(map[string]struct{}, len(c))
	for _, item := range c {
		if item.Element == nil {
			return newCompositionError("nil element")
		}
		if item.Count < 1 {
			return newCompositionError("element %s has count %d", item.Element.Name, item.Count)
		}
		if _, ok := seen[item.Element]; ok {
			return newCompositionError("element %s listed twice", item.Element.Name)
		}
		if _, ok := names[item.Element.Name]; ok {
			return newCompositionError("element %s listed twice", item.Element.Name)
		}
		seen[item.Element] = struct{}{}
		names[item.Element.Name] = struct{}{}
	}
	return nil
}

// MolarMass 摩尔质量 [g/mol]
func (c Composition) MolarMass() float64 {
	var mass float64
	for _, item := range c {
		mass += item.Element.Mass * float64(item.Count)
	}
	return mass
}

// Formula 按组成顺序拼出化学式，如 CO2、CH4
func (c Composition) Formula() string {
	var s string
	for _, item := range c {
		s += item.Element.Name
		if item.Count > 1 {
			s += strconv.Itoa(item.Count)
		}
	}
	return s
}
