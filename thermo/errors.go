package thermo

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange 温度超出多项式表的温度范围
	ErrOutOfRange = errors.New("temperature out of range")
	// ErrKindNotImplemented 模型类型没有数值定义（NASA9）
	ErrKindNotImplemented = errors.New("thermo model kind not implemented")
	// ErrZeroTemperature 焓、熵在 T <= 0 处无定义
	ErrZeroTemperature = errors.New("temperature must be positive")

	ErrInvalidModel       = errors.New("invalid thermo model")
	ErrInvalidComposition = errors.New("invalid composition")
	ErrInvalidSpecies     = errors.New("invalid species")
)

// OutOfRangeError 记录越界的温度和表的上下限
type OutOfRangeError struct {
	Temperature float64
	Min         float64
	Max         float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("temperature %g K out of range [%g, %g] K", e.Temperature, e.Min, e.Max)
}

// Is 使 errors.Is(err, ErrOutOfRange) 成立
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func newModelError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidModel, format, args...)
}

func newCompositionError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidComposition, format, args...)
}
