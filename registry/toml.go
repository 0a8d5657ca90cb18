package registry

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"kilngas/thermo"
	"kilngas/thermo_data"
)

// 外部物种表文件格式（TOML）
//
//	[[elements]]
//	name = "S"
//	atomic_number = 16
//	mass = 32.06
//
//	[[species]]
//	name = "NO"
//	composition = [{ element = "N", count = 1 }, { element = "O", count = 1 }]
//	[species.thermo]
//	model = "NASA7"
//	breakpoints = [200.0, 1000.0, 6000.0]
//	data = [[...], [...]]
//	[species.transport]
//	phase = "GAS"
//	geometry = "LINEAR"
//	well_depth = 97.53
type speciesFile struct {
	Elements []elementEntry `toml:"elements"`
	Species  []speciesEntry `toml:"species"`
}

type elementEntry struct {
	Name         string  `toml:"name"`
	AtomicNumber int     `toml:"atomic_number"`
	Mass         float64 `toml:"mass"`
	Entropy298   float64 `toml:"entropy298"`
}

type speciesEntry struct {
	Name        string           `toml:"name"`
	Composition []componentEntry `toml:"composition"`
	Thermo      thermoEntry      `toml:"thermo"`
	Transport   transportEntry   `toml:"transport"`
}

type componentEntry struct {
	Element string `toml:"element"`
	Count   int    `toml:"count"`
}

type thermoEntry struct {
	Model       string      `toml:"model"`
	Breakpoints []float64   `toml:"breakpoints"`
	Data        [][]float64 `toml:"data"`
}

type transportEntry struct {
	Phase                string  `toml:"phase"`
	Geometry             string  `toml:"geometry"`
	WellDepth            float64 `toml:"well_depth"`
	Diameter             float64 `toml:"diameter"`
	Polarizability       float64 `toml:"polarizability"`
	RotationalRelaxation float64 `toml:"rotational_relaxation"`
}

// LoadTOML 从 TOML 文件追加元素和物种
// 任何一项校验失败则整个文件不生效
func (r *Registry) LoadTOML(path string) ([]string, error) {
	var file speciesFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, errors.Wrapf(err, "decode species file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.WithField("keys", undecoded).Warn("species file has unknown keys")
	}

	defs := make([]thermo_data.SpeciesDef, 0, len(file.Species))
	for _, entry := range file.Species {
		def, err := entry.toDef()
		if err != nil {
			return nil, errors.WithMessagef(err, "species file %s", path)
		}
		defs = append(defs, def)
	}

	var addedElements, addedSpecies []string
	rollback := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for _, name := range addedSpecies {
			delete(r.species, name)
		}
		for _, name := range addedElements {
			delete(r.elements, name)
		}
	}

	for _, e := range file.Elements {
		if err := r.AddElement(thermo.Element{
			Name:         e.Name,
			AtomicNumber: e.AtomicNumber,
			Mass:         e.Mass,
			Entropy298:   e.Entropy298,
		}); err != nil {
			rollback()
			return nil, errors.WithMessagef(err, "species file %s", path)
		}
		addedElements = append(addedElements, e.Name)
	}
	for _, def := range defs {
		if _, err := r.Add(def); err != nil {
			rollback()
			return nil, errors.WithMessagef(err, "species file %s", path)
		}
		addedSpecies = append(addedSpecies, def.Name)
	}

	log.WithFields(log.Fields{
		"path":     path,
		"elements": len(addedElements),
		"species":  addedSpecies,
	}).Info("species file loaded")
	return addedSpecies, nil
}

func (e speciesEntry) toDef() (thermo_data.SpeciesDef, error) {
	kind, err := thermo.ParseModelKind(e.Thermo.Model)
	if err != nil {
		return thermo_data.SpeciesDef{}, errors.WithMessagef(err, "species %s", e.Name)
	}
	phase, err := thermo.ParsePhaseKind(e.Transport.Phase)
	if err != nil {
		return thermo_data.SpeciesDef{}, errors.WithMessagef(err, "species %s", e.Name)
	}
	geometry, err := thermo.ParseGeometryKind(e.Transport.Geometry)
	if err != nil {
		return thermo_data.SpeciesDef{}, errors.WithMessagef(err, "species %s", e.Name)
	}

	def := thermo_data.SpeciesDef{
		Name:        e.Name,
		Model:       kind,
		Breakpoints: e.Thermo.Breakpoints,
		Data:        e.Thermo.Data,
		Transport: thermo.Transport{
			Phase:                phase,
			Geometry:             geometry,
			WellDepth:            e.Transport.WellDepth,
			Diameter:             e.Transport.Diameter,
			Polarizability:       e.Transport.Polarizability,
			RotationalRelaxation: e.Transport.RotationalRelaxation,
		},
	}
	for _, c := range e.Composition {
		def.Composition = append(def.Composition, thermo_data.ComponentDef{Element: c.Element, Count: c.Count})
	}
	return def, nil
}
