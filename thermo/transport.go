package thermo

// Transport Lennard-Jones 输运参数，只做存储和展示，不参与计算
type Transport struct {
	Phase                PhaseKind
	Geometry             GeometryKind
	WellDepth            float64 // 势阱深度 [K]
	Diameter             float64 // 碰撞直径 [Angstrom]
	Polarizability       float64 // 极化率 [Angstrom^3]
	RotationalRelaxation float64 // 转动弛豫数
}
