package registry

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"kilngas/thermo"
	"kilngas/thermo_data"
)

var (
	ErrSpeciesNotFound  = errors.New("species not found")
	ErrElementNotFound  = errors.New("element not found")
	ErrDuplicateSpecies = errors.New("duplicate species")
	ErrDuplicateElement = errors.New("duplicate element")
	ErrInvalidElement   = errors.New("invalid element")
)

// Registry 按名称索引的物种表
// 物种一经加入不再修改；锁只保护 Add / LoadTOML 与并发读
type Registry struct {
	consts thermo.Constants

	mu       sync.RWMutex
	elements map[string]*thermo.Element
	species  map[string]*thermo.Species
}

// New 用给定常数构造内置元素和物种
func New(consts thermo.Constants) (*Registry, error) {
	r := &Registry{
		consts:   consts,
		elements: make(map[string]*thermo.Element),
		species:  make(map[string]*thermo.Species),
	}
	for _, e := range thermo_data.Elements() {
		if err := r.AddElement(e); err != nil {
			return nil, err
		}
	}
	for _, def := range thermo_data.SpeciesTables() {
		if _, err := r.Add(def); err != nil {
			return nil, errors.WithMessage(err, "builtin species table")
		}
	}
	log.WithFields(log.Fields{
		"elements":    len(r.elements),
		"species":     len(r.species),
		"gasConstant": consts.GasConstant,
	}).Debug("species registry initialized")
	return r, nil
}

func (r *Registry) Constants() thermo.Constants {
	return r.consts
}

// AddElement 注册元素，符号唯一
func (r *Registry) AddElement(e thermo.Element) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.Name == "" {
		return errors.Wrap(ErrInvalidElement, "empty element symbol")
	}
	if !(e.Mass > 0) {
		return errors.Wrapf(ErrInvalidElement, "element %s has mass %g", e.Name, e.Mass)
	}
	if _, ok := r.elements[e.Name]; ok {
		return errors.Wrapf(ErrDuplicateElement, "element %s", e.Name)
	}
	elem := e
	r.elements[e.Name] = &elem
	return nil
}

// Add 校验并注册一个物种定义，组成中的元素必须已注册
func (r *Registry) Add(def thermo_data.SpeciesDef) (*thermo.Species, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.species[def.Name]; ok {
		return nil, errors.Wrapf(ErrDuplicateSpecies, "species %s", def.Name)
	}

	composition := make(thermo.Composition, 0, len(def.Composition))
	for _, c := range def.Composition {
		elem, ok := r.elements[c.Element]
		if !ok {
			return nil, errors.Wrapf(ErrElementNotFound, "species %s references element %q", def.Name, c.Element)
		}
		composition = append(composition, thermo.Component{Element: elem, Count: c.Count})
	}

	model, err := thermo.NewThermoModel(def.Model, def.Breakpoints, def.Data, r.consts)
	if err != nil {
		return nil, errors.WithMessagef(err, "species %s", def.Name)
	}
	s, err := thermo.NewSpecies(def.Name, composition, model, def.Transport)
	if err != nil {
		return nil, err
	}
	r.species[s.Name()] = s
	return s, nil
}

// Get 按名称查找物种
func (r *Registry) Get(name string) (*thermo.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.species[name]
	if !ok {
		return nil, errors.Wrapf(ErrSpeciesNotFound, "species %q", name)
	}
	return s, nil
}

// MustGet 仅用于内置物种等确定存在的场景
func (r *Registry) MustGet(name string) *thermo.Species {
	s, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Element 按符号查找元素
func (r *Registry) Element(symbol string) (*thermo.Element, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.elements[symbol]
	if !ok {
		return nil, errors.Wrapf(ErrElementNotFound, "element %q", symbol)
	}
	return e, nil
}

// Names 按名称排序的物种列表
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := lo.Keys(r.species)
	sort.Strings(names)
	return names
}

// All 按名称排序返回全部物种，名称和物种在同一次加锁内取出
func (r *Registry) All() []*thermo.Species {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := lo.Values(r.species)
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name() < all[j].Name()
	})
	return all
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.species)
}
