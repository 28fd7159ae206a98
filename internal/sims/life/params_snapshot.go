package life

import (
	"strconv"

	"threshold-life/internal/core"
)

// Parameters describes the rule and grid the board runs with.
func (b *Board) Parameters() core.ParameterSnapshot {
	cfg := b.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("birth_threshold", "Birth threshold", cfg.BirthThreshold(),
					"live neighbors that bring a dead cell to life"),
				{Key: "survival", Label: "Survival counts", Type: core.ParamTypeString, Value: "2,3"},
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", cfg.Rows(), ""),
				intParam("cols", "Columns", cfg.Cols(), ""),
				{Key: "grid", Label: "Grid size", Type: core.ParamTypeString, Value: cfg.GridSize()},
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", b.gen, ""),
				intParam("population", "Population", b.Population(), ""),
			},
		},
	}}
}

func intParam(key, label string, value int, desc string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeInt,
		Value:       strconv.Itoa(value),
		Description: desc,
	}
}
