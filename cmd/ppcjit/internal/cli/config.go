package cli

import "github.com/BurntSushi/toml"

// featureConfig is the shape of the file --config points at: a list of
// extra registers to reserve beyond the architecture default, and whether
// the vestigial second instruction table should be reported as present by
// `plan` (spec.md §9 Design Notes). The extra-register list is only logged
// by `assemble`; it does not change which temporaries the assembler uses.
type featureConfig struct {
	ExtraReservedRegisters []int `toml:"extra_reserved_registers"`
	IncludeVestigeTable    bool  `toml:"include_vestige_table"`
}

func loadFeatureConfig(path string) (featureConfig, error) {
	var cfg featureConfig
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
