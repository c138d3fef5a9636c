// Package config decodes declarative joint-state model configurations from
// YAML or TOML and builds the corresponding jointstate.Model.
//
// A configuration names the two submodels and carries the combined parameter
// vector either on the natural scale (params) or on the log scale
// (log_params), never both. Force entries pin log-scale values by global
// index:
//
//	point_mutation: HKY
//	igc: One rate
//	params: [0.3, 0.5, 0.2, 9.5, 0.3, 0.0333333]
//	force:
//	  - {index: 5, value: -3.4}
//
// The equivalent TOML document uses [[force]] tables.
package config
