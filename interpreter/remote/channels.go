package remote

import (
	"github.com/KevinKickass/daqmx/internal/wire"
	"github.com/KevinKickass/daqmx/interpreter"
)

func (i *Interpreter) createChan(method string, h TaskHandle, build func(req wire.Message)) error {
	_, err := i.call(method, func(req wire.Message) {
		req.SetSession("task", h.Session)
		build(req)
	})
	return err
}

func (i *Interpreter) CreateAIVoltageChan(h TaskHandle, p interpreter.AIVoltageChan) error {
	return i.createChan("CreateAIVoltageChan", h, func(req wire.Message) {
		req.Set("physical_channel", p.PhysicalChannel).
			Set("name_to_assign_to_channel", p.Name).
			Set("terminal_config_raw", int32(p.TerminalConfig)).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", int32(p.Units)).
			Set("custom_scale_name", p.CustomScale)
	})
}

func (i *Interpreter) CreateAICurrentChan(h TaskHandle, p interpreter.AICurrentChan) error {
	return i.createChan("CreateAICurrentChan", h, func(req wire.Message) {
		req.Set("physical_channel", p.PhysicalChannel).
			Set("name_to_assign_to_channel", p.Name).
			Set("terminal_config_raw", int32(p.TerminalConfig)).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", int32(p.Units)).
			Set("shunt_resistor_loc_raw", int32(p.ShuntLocation)).
			Set("ext_shunt_resistor_val", p.ExtShuntResistor).
			Set("custom_scale_name", p.CustomScale)
	})
}

func (i *Interpreter) CreateAIThrmcplChan(h TaskHandle, p interpreter.AIThrmcplChan) error {
	return i.createChan("CreateAIThrmcplChan", h, func(req wire.Message) {
		req.Set("physical_channel", p.PhysicalChannel).
			Set("name_to_assign_to_channel", p.Name).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", int32(p.Units)).
			Set("thermocouple_type_raw", int32(p.Type)).
			Set("cjc_source_raw", int32(p.CJCSource)).
			Set("cjc_val", p.CJCValue).
			Set("cjc_channel", p.CJCChannel)
	})
}

func (i *Interpreter) CreateAIRTDChan(h TaskHandle, p interpreter.AIRTDChan) error {
	return i.createChan("CreateAIRTDChan", h, func(req wire.Message) {
		req.Set("physical_channel", p.PhysicalChannel).
			Set("name_to_assign_to_channel", p.Name).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", int32(p.Units)).
			Set("rtd_type_raw", int32(p.Type)).
			Set("resistance_config_raw", int32(p.ResistanceConfig)).
			Set("current_excit_source_raw", int32(p.ExcitationSource)).
			Set("current_excit_val", p.ExcitationValue).
			Set("r0", p.R0)
	})
}

func (i *Interpreter) CreateAIAccelChan(h TaskHandle, p interpreter.AIAccelChan) error {
	return i.createChan("CreateAIAccelChan", h, func(req wire.Message) {
		req.Set("physical_channel", p.PhysicalChannel).
			Set("name_to_assign_to_channel", p.Name).
			Set("terminal_config_raw", int32(p.TerminalConfig)).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", int32(p.Units)).
			Set("sensitivity", p.Sensitivity).
			Set("sensitivity_units_raw", int32(p.SensitivityUnits)).
			Set("current_excit_source_raw", int32(p.ExcitationSource)).
			Set("current_excit_val", p.ExcitationValue).
			Set("custom_scale_name", p.CustomScale)
	})
}

func (i *Interpreter) CreateAIStrainGageChan(h TaskHandle, p interpreter.AIStrainGageChan) error {
	return i.createChan("CreateAIStrainGageChan", h, func(req wire.Message) {
		req.Set("physical_channel", p.PhysicalChannel).
			Set("name_to_assign_to_channel", p.Name).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", int32(p.Units)).
			Set("strain_config_raw", int32(p.BridgeConfig)).
			Set("voltage_excit_source_raw", int32(p.ExcitationSource)).
			Set("voltage_excit_val", p.ExcitationValue).
			Set("gage_factor", p.GageFactor).
			Set("initial_bridge_voltage", p.InitialBridgeVoltage).
			Set("nominal_gage_resistance", p.NominalGageResistance).
			Set("poisson_ratio", p.PoissonRatio).
			Set("lead_wire_resistance", p.LeadWireResistance).
			Set("custom_scale_name", p.CustomScale)
	})
}

func (i *Interpreter) CreateAIResistanceChan(h TaskHandle, p interpreter.AIResistanceChan) error {
	return i.createChan("CreateAIResistanceChan", h, func(req wire.Message) {
		req.Set("physical_channel", p.PhysicalChannel).
			Set("name_to_assign_to_channel", p.Name).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", int32(p.Units)).
			Set("resistance_config_raw", int32(p.ResistanceConfig)).
			Set("current_excit_source_raw", int32(p.ExcitationSource)).
			Set("current_excit_val", p.ExcitationValue).
			Set("custom_scale_name", p.CustomScale)
	})
}

func (i *Interpreter) CreateAOVoltageChan(h TaskHandle, p interpreter.AOVoltageChan) error {
	return i.createChan("CreateAOVoltageChan", h, func(req wire.Message) {
		req.Set("physical_channel", p.PhysicalChannel).
			Set("name_to_assign_to_channel", p.Name).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", int32(p.Units)).
			Set("custom_scale_name", p.CustomScale)
	})
}

func (i *Interpreter) CreateAOCurrentChan(h TaskHandle, p interpreter.AOCurrentChan) error {
	return i.createChan("CreateAOCurrentChan", h, func(req wire.Message) {
		req.Set("physical_channel", p.PhysicalChannel).
			Set("name_to_assign_to_channel", p.Name).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", int32(p.Units)).
			Set("custom_scale_name", p.CustomScale)
	})
}

func (i *Interpreter) CreateAOFuncGenChan(h TaskHandle, p interpreter.AOFuncGenChan) error {
	return i.createChan("CreateAOFuncGenChan", h, func(req wire.Message) {
		req.Set("physical_channel", p.PhysicalChannel).
			Set("name_to_assign_to_channel", p.Name).
			Set("type_raw", int32(p.Type)).
			Set("freq", p.Freq).
			Set("amplitude", p.Amplitude).
			Set("offset", p.Offset)
	})
}

func (i *Interpreter) CreateCICountEdgesChan(h TaskHandle, p interpreter.CICountEdgesChan) error {
	return i.createChan("CreateCICountEdgesChan", h, func(req wire.Message) {
		req.Set("counter", p.Counter).
			Set("name_to_assign_to_channel", p.Name).
			Set("edge_raw", int32(p.Edge)).
			Set("initial_count", p.InitialCount).
			Set("count_direction_raw", int32(p.Direction))
	})
}

func (i *Interpreter) CreateCIFreqChan(h TaskHandle, p interpreter.CIFreqChan) error {
	return i.createChan("CreateCIFreqChan", h, freqChan(p))
}

func (i *Interpreter) CreateCIPeriodChan(h TaskHandle, p interpreter.CIFreqChan) error {
	return i.createChan("CreateCIPeriodChan", h, freqChan(p))
}

func freqChan(p interpreter.CIFreqChan) func(wire.Message) {
	return func(req wire.Message) {
		req.Set("counter", p.Counter).
			Set("name_to_assign_to_channel", p.Name).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", p.Units).
			Set("edge_raw", int32(p.Edge)).
			Set("meas_method_raw", int32(p.Method)).
			Set("meas_time", p.MeasTime).
			Set("divisor", p.Divisor).
			Set("custom_scale_name", p.CustomScale)
	}
}

func (i *Interpreter) CreateCIPulseWidthChan(h TaskHandle, p interpreter.CIPulseWidthChan) error {
	return i.createChan("CreateCIPulseWidthChan", h, func(req wire.Message) {
		req.Set("counter", p.Counter).
			Set("name_to_assign_to_channel", p.Name).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", int32(p.Units)).
			Set("starting_edge_raw", int32(p.StartingEdge)).
			Set("custom_scale_name", p.CustomScale)
	})
}

func (i *Interpreter) CreateCILinEncoderChan(h TaskHandle, p interpreter.CILinEncoderChan) error {
	return i.createChan("CreateCILinEncoderChan", h, func(req wire.Message) {
		req.Set("counter", p.Counter).
			Set("name_to_assign_to_channel", p.Name).
			Set("decoding_type_raw", int32(p.DecodingType)).
			Set("zidx_enable", p.ZIndexEnable).
			Set("zidx_val", p.ZIndexValue).
			Set("zidx_phase_raw", int32(p.ZIndexPhase)).
			Set("units_raw", int32(p.Units)).
			Set("dist_per_pulse", p.DistPerPulse).
			Set("initial_pos", p.InitialPos).
			Set("custom_scale_name", p.CustomScale)
	})
}

func (i *Interpreter) CreateCIAngEncoderChan(h TaskHandle, p interpreter.CIAngEncoderChan) error {
	return i.createChan("CreateCIAngEncoderChan", h, func(req wire.Message) {
		req.Set("counter", p.Counter).
			Set("name_to_assign_to_channel", p.Name).
			Set("decoding_type_raw", int32(p.DecodingType)).
			Set("zidx_enable", p.ZIndexEnable).
			Set("zidx_val", p.ZIndexValue).
			Set("zidx_phase_raw", int32(p.ZIndexPhase)).
			Set("units_raw", int32(p.Units)).
			Set("pulses_per_rev", p.PulsesPerRev).
			Set("initial_angle", p.InitialAngle).
			Set("custom_scale_name", p.CustomScale)
	})
}

func (i *Interpreter) CreateCIPulseChanFreq(h TaskHandle, p interpreter.CIPulseChanFreq) error {
	return i.createChan("CreateCIPulseChanFreq", h, func(req wire.Message) {
		req.Set("counter", p.Counter).
			Set("name_to_assign_to_channel", p.Name).
			Set("min_val", p.Min).
			Set("max_val", p.Max).
			Set("units_raw", int32(p.Units))
	})
}

func (i *Interpreter) CreateCOPulseChanFreq(h TaskHandle, p interpreter.COPulseChanFreq) error {
	return i.createChan("CreateCOPulseChanFreq", h, func(req wire.Message) {
		req.Set("counter", p.Counter).
			Set("name_to_assign_to_channel", p.Name).
			Set("units_raw", int32(p.Units)).
			Set("idle_state_raw", int32(p.IdleState)).
			Set("initial_delay", p.InitialDelay).
			Set("freq", p.Freq).
			Set("duty_cycle", p.DutyCycle)
	})
}

func (i *Interpreter) CreateCOPulseChanTime(h TaskHandle, p interpreter.COPulseChanTime) error {
	return i.createChan("CreateCOPulseChanTime", h, func(req wire.Message) {
		req.Set("counter", p.Counter).
			Set("name_to_assign_to_channel", p.Name).
			Set("units_raw", int32(p.Units)).
			Set("idle_state_raw", int32(p.IdleState)).
			Set("initial_delay", p.InitialDelay).
			Set("low_time", p.LowTime).
			Set("high_time", p.HighTime)
	})
}

func (i *Interpreter) CreateCOPulseChanTicks(h TaskHandle, p interpreter.COPulseChanTicks) error {
	return i.createChan("CreateCOPulseChanTicks", h, func(req wire.Message) {
		req.Set("counter", p.Counter).
			Set("name_to_assign_to_channel", p.Name).
			Set("source_terminal", p.SourceTerminal).
			Set("idle_state_raw", int32(p.IdleState)).
			Set("initial_delay", p.InitialDelay).
			Set("low_ticks", p.LowTicks).
			Set("high_ticks", p.HighTicks)
	})
}

func (i *Interpreter) CreateDIChan(h TaskHandle, p interpreter.DigitalChan) error {
	return i.createChan("CreateDIChan", h, digitalChan(p))
}

func (i *Interpreter) CreateDOChan(h TaskHandle, p interpreter.DigitalChan) error {
	return i.createChan("CreateDOChan", h, digitalChan(p))
}

func digitalChan(p interpreter.DigitalChan) func(wire.Message) {
	return func(req wire.Message) {
		req.Set("lines", p.Lines).
			Set("name_to_assign_to_lines", p.Name).
			Set("line_grouping_raw", int32(p.Grouping))
	}
}
