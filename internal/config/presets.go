package config

var Presets = map[string]map[string]*Config{
	"rabi": {
		"resonant": {
			Scenario: "rabi", Stepper: "rk4", Substeps: 10,
			Params: map[string]float64{"omega_rabi": 0.2, "detuning": 0.0, "time_max": 30},
		},
		"detuned": {
			Scenario: "rabi", Stepper: "rk4", Substeps: 10,
			Params: map[string]float64{"omega_rabi": 0.2, "detuning": 0.3, "time_max": 40},
		},
		"strong_drive": {
			Scenario: "rabi", Stepper: "rk4", Substeps: 20,
			Params: map[string]float64{"omega_rabi": 1.0, "detuning": 0.0, "time_max": 10},
		},
	},
	"decoherence": {
		"t1_only": {
			Scenario: "decoherence", Stepper: "rk4", Substeps: 10,
			Params: map[string]float64{"gamma": 0.1, "gamma_phi": 0.0, "time_max": 50},
		},
		"t2_only": {
			Scenario: "decoherence", Stepper: "rk4", Substeps: 10,
			Params: map[string]float64{"gamma": 0.0, "gamma_phi": 0.15, "time_max": 30},
		},
		"combined": {
			Scenario: "decoherence", Stepper: "rk4", Substeps: 10,
			Params: map[string]float64{"gamma": 0.05, "gamma_phi": 0.1, "time_max": 40},
		},
	},
	"cavity": {
		"strong_coupling": {
			Scenario: "cavity", Stepper: "rk4", Substeps: 20,
			Params: map[string]float64{"coupling": 0.3, "cavity_decay": 0.0, "time_max": 40},
		},
		"weak_coupling": {
			Scenario: "cavity", Stepper: "rk4", Substeps: 10,
			Params: map[string]float64{"coupling": 0.05, "cavity_decay": 0.0, "time_max": 50},
		},
		"lossy": {
			Scenario: "cavity", Stepper: "rk4", Substeps: 20,
			Params: map[string]float64{"coupling": 0.15, "cavity_decay": 0.05, "time_max": 50},
		},
	},
}

func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
