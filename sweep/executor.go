package sweep

import (
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"kilngas/numerical"
	"kilngas/thermo"
)

// Point 扫描结果中的一个温度点
type Point struct {
	Temperature  float64 `json:"temperature"`   // [K]
	SpecificHeat float64 `json:"specific_heat"` // [J/(mol.K)]
	Enthalpy     float64 `json:"enthalpy"`      // [J/mol]
	Entropy      float64 `json:"entropy"`       // [J/(mol.K)]
}

// 温度点区间任务 [start, end)
type task struct {
	start int
	end   int
}

// Executor 基于切片分配任务的温度扫描执行器
// 每个温度点互相独立，结果按下标写回，顺序与 Linspace 一致
type Executor struct {
	workers int
}

func New(workers int) *Executor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Executor{workers: workers}
}

func (e *Executor) Workers() int {
	return e.workers
}

// ScanFull 在物种自身的温度范围内扫描 n 个点
func (e *Executor) ScanFull(s *thermo.Species, n int) ([]Point, error) {
	tmin, tmax := s.Thermo().Bounds()
	return e.Scan(s, tmin, tmax, n)
}

// Scan 在 [tmin, tmax] 上等距扫描 n 个点，任一点出错则整体失败
func (e *Executor) Scan(s *thermo.Species, tmin, tmax float64, n int) ([]Point, error) {
	if s == nil {
		return nil, errors.New("nil species")
	}
	if n <= 0 {
		return nil, errors.Errorf("invalid number of points %d", n)
	}
	start := time.Now()
	temps := numerical.Linspace(tmin, tmax, n)
	points := make([]Point, len(temps))

	tasks := e.split(len(temps))
	dispatchChan := make(chan task, len(tasks))
	for _, t := range tasks {
		dispatchChan <- t
	}
	close(dispatchChan)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	workers := e.workers
	if workers > len(tasks) {
		workers = len(tasks)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range dispatchChan {
				for k := t.start; k < t.end; k++ {
					p, err := Evaluate(s, temps[k])
					if err != nil {
						once.Do(func() { firstErr = err })
						return
					}
					points[k] = p
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	log.WithFields(log.Fields{
		"species": s.Name(),
		"points":  n,
		"workers": workers,
		"cost":    time.Since(start),
	}).Debug("sweep finished")
	return points, nil
}

// split 把 total 个点分成连续的块，每个 worker 分到两块，余数单独成块
func (e *Executor) split(total int) []task {
	var tasks []task
	taskLen, remainder := total/e.workers, total%e.workers
	start := 0
	if taskLen > 0 {
		half1, half2 := taskLen/2, taskLen/2
		if taskLen%2 == 1 {
			half2++
		}
		for start < total-remainder {
			if half1 != 0 {
				tasks = append(tasks, task{start: start, end: start + half1})
				start += half1
			}
			if half2 != 0 {
				tasks = append(tasks, task{start: start, end: start + half2})
				start += half2
			}
		}
	}
	for i := 0; i < remainder; i++ {
		tasks = append(tasks, task{start: start, end: start + 1})
		start++
	}
	return tasks
}

// Evaluate 计算单个温度点的 cp、h、s
func Evaluate(s *thermo.Species, temp float64) (Point, error) {
	cp, err := s.SpecificHeatMole(temp)
	if err != nil {
		return Point{}, err
	}
	h, err := s.EnthalpyMole(temp)
	if err != nil {
		return Point{}, err
	}
	entropy, err := s.EntropyMole(temp)
	if err != nil {
		return Point{}, err
	}
	return Point{
		Temperature:  temp,
		SpecificHeat: cp,
		Enthalpy:     h,
		Entropy:      entropy,
	}, nil
}
