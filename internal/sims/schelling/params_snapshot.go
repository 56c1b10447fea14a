package schelling

import (
	"strconv"

	"schelling/internal/core"
)

// Parameters describes the run's configuration for HUDs and logs.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				floatParam("empty_ratio", "Empty ratio", w.cfg.EmptyRatio),
				intParam("races", "Races", w.cfg.Races),
			},
		},
		{
			Name: "Dynamics",
			Params: []core.Parameter{
				floatParam("threshold", "Similarity threshold", w.cfg.SimilarityThreshold),
				intParam("max_iterations", "Max iterations", w.cfg.MaxIterations),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
