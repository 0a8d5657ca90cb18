package model

import (
	"kilngas/advection"
	"kilngas/sweep"
)

// 前后端通信消息结构，Content 为具体请求/响应的 JSON 串
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 请求类型
const (
	MsgSpecies    = "species"
	MsgProperties = "properties"
	MsgSweep      = "sweep"
	MsgAdvect     = "advect"
)

// 响应类型
const (
	MsgSpeciesList      = "speciesList"
	MsgPropertiesResult = "propertiesResult"
	MsgSweepResult      = "sweepResult"
	MsgAdvectResult     = "advectResult"
	MsgError            = "error"
)

// 物种概要
type SpeciesInfo struct {
	Name        string    `json:"name"`
	Formula     string    `json:"formula"`
	MolarMass   float64   `json:"molar_mass"` // [g/mol]
	Model       string    `json:"model"`
	Breakpoints []float64 `json:"breakpoints"`
	Geometry    string    `json:"geometry"`
}

// 单点物性请求
type PropertyQuery struct {
	Species      string    `json:"species"`
	Temperatures []float64 `json:"temperatures"`
}

type PropertyReply struct {
	Species string        `json:"species"`
	Points  []sweep.Point `json:"points"`
}

// 温度扫描请求，Tmin/Tmax 缺省时取物种自身温度范围
type SweepQuery struct {
	Species string   `json:"species"`
	Points  int      `json:"points"`
	Tmin    *float64 `json:"tmin,omitempty"`
	Tmax    *float64 `json:"tmax,omitempty"`
}

type SweepReply struct {
	Species string        `json:"species"`
	Points  []sweep.Point `json:"points"`
}

type AdvectQuery struct {
	Nx    int     `json:"nx"`
	Tend  float64 `json:"tend,omitempty"`
	Sigma float64 `json:"sigma,omitempty"`
}

type AdvectReply = advection.Result
