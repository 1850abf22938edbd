package native

import "github.com/KevinKickass/daqmx/interpreter"

func (i *Interpreter) CreateAIVoltageChan(h TaskHandle, p interpreter.AIVoltageChan) error {
	f, err := procCreateAIVoltageChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.PhysicalChannel, p.Name, int32(p.TerminalConfig), p.Min, p.Max, int32(p.Units), p.CustomScale))
}

func (i *Interpreter) CreateAICurrentChan(h TaskHandle, p interpreter.AICurrentChan) error {
	f, err := procCreateAICurrentChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.PhysicalChannel, p.Name, int32(p.TerminalConfig), p.Min, p.Max,
		int32(p.Units), int32(p.ShuntLocation), p.ExtShuntResistor, p.CustomScale))
}

func (i *Interpreter) CreateAIThrmcplChan(h TaskHandle, p interpreter.AIThrmcplChan) error {
	f, err := procCreateAIThrmcplChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.PhysicalChannel, p.Name, p.Min, p.Max, int32(p.Units), int32(p.Type),
		int32(p.CJCSource), p.CJCValue, p.CJCChannel))
}

func (i *Interpreter) CreateAIRTDChan(h TaskHandle, p interpreter.AIRTDChan) error {
	f, err := procCreateAIRTDChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.PhysicalChannel, p.Name, p.Min, p.Max, int32(p.Units), int32(p.Type),
		int32(p.ResistanceConfig), int32(p.ExcitationSource), p.ExcitationValue, p.R0))
}

func (i *Interpreter) CreateAIAccelChan(h TaskHandle, p interpreter.AIAccelChan) error {
	f, err := procCreateAIAccelChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.PhysicalChannel, p.Name, int32(p.TerminalConfig), p.Min, p.Max, int32(p.Units),
		p.Sensitivity, int32(p.SensitivityUnits), int32(p.ExcitationSource), p.ExcitationValue, p.CustomScale))
}

func (i *Interpreter) CreateAIStrainGageChan(h TaskHandle, p interpreter.AIStrainGageChan) error {
	f, err := procCreateAIStrainGageChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.PhysicalChannel, p.Name, p.Min, p.Max, int32(p.Units), int32(p.BridgeConfig),
		int32(p.ExcitationSource), p.ExcitationValue, p.GageFactor, p.InitialBridgeVoltage,
		p.NominalGageResistance, p.PoissonRatio, p.LeadWireResistance, p.CustomScale))
}

func (i *Interpreter) CreateAIResistanceChan(h TaskHandle, p interpreter.AIResistanceChan) error {
	f, err := procCreateAIResistanceChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.PhysicalChannel, p.Name, p.Min, p.Max, int32(p.Units), int32(p.ResistanceConfig),
		int32(p.ExcitationSource), p.ExcitationValue, p.CustomScale))
}

func (i *Interpreter) CreateAOVoltageChan(h TaskHandle, p interpreter.AOVoltageChan) error {
	f, err := procCreateAOVoltageChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.PhysicalChannel, p.Name, p.Min, p.Max, int32(p.Units), p.CustomScale))
}

func (i *Interpreter) CreateAOCurrentChan(h TaskHandle, p interpreter.AOCurrentChan) error {
	f, err := procCreateAOCurrentChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.PhysicalChannel, p.Name, p.Min, p.Max, int32(p.Units), p.CustomScale))
}

func (i *Interpreter) CreateAOFuncGenChan(h TaskHandle, p interpreter.AOFuncGenChan) error {
	f, err := procCreateAOFuncGenChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.PhysicalChannel, p.Name, int32(p.Type), p.Freq, p.Amplitude, p.Offset))
}

func (i *Interpreter) CreateCICountEdgesChan(h TaskHandle, p interpreter.CICountEdgesChan) error {
	f, err := procCreateCICountEdgesChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Counter, p.Name, int32(p.Edge), p.InitialCount, int32(p.Direction)))
}

func (i *Interpreter) CreateCIFreqChan(h TaskHandle, p interpreter.CIFreqChan) error {
	f, err := procCreateCIFreqChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Counter, p.Name, p.Min, p.Max, p.Units, int32(p.Edge), int32(p.Method),
		p.MeasTime, p.Divisor, p.CustomScale))
}

func (i *Interpreter) CreateCIPeriodChan(h TaskHandle, p interpreter.CIFreqChan) error {
	f, err := procCreateCIPeriodChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Counter, p.Name, p.Min, p.Max, p.Units, int32(p.Edge), int32(p.Method),
		p.MeasTime, p.Divisor, p.CustomScale))
}

func (i *Interpreter) CreateCIPulseWidthChan(h TaskHandle, p interpreter.CIPulseWidthChan) error {
	f, err := procCreateCIPulseWidthChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Counter, p.Name, p.Min, p.Max, int32(p.Units), int32(p.StartingEdge), p.CustomScale))
}

func (i *Interpreter) CreateCILinEncoderChan(h TaskHandle, p interpreter.CILinEncoderChan) error {
	f, err := procCreateCILinEncoderChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Counter, p.Name, int32(p.DecodingType), bool32(p.ZIndexEnable), p.ZIndexValue,
		int32(p.ZIndexPhase), int32(p.Units), p.DistPerPulse, p.InitialPos, p.CustomScale))
}

func (i *Interpreter) CreateCIAngEncoderChan(h TaskHandle, p interpreter.CIAngEncoderChan) error {
	f, err := procCreateCIAngEncoderChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Counter, p.Name, int32(p.DecodingType), bool32(p.ZIndexEnable), p.ZIndexValue,
		int32(p.ZIndexPhase), int32(p.Units), p.PulsesPerRev, p.InitialAngle, p.CustomScale))
}

func (i *Interpreter) CreateCIPulseChanFreq(h TaskHandle, p interpreter.CIPulseChanFreq) error {
	f, err := procCreateCIPulseChanFreq.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Counter, p.Name, p.Min, p.Max, int32(p.Units)))
}

func (i *Interpreter) CreateCOPulseChanFreq(h TaskHandle, p interpreter.COPulseChanFreq) error {
	f, err := procCreateCOPulseChanFreq.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Counter, p.Name, int32(p.Units), int32(p.IdleState), p.InitialDelay, p.Freq, p.DutyCycle))
}

func (i *Interpreter) CreateCOPulseChanTime(h TaskHandle, p interpreter.COPulseChanTime) error {
	f, err := procCreateCOPulseChanTime.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Counter, p.Name, int32(p.Units), int32(p.IdleState), p.InitialDelay, p.LowTime, p.HighTime))
}

func (i *Interpreter) CreateCOPulseChanTicks(h TaskHandle, p interpreter.COPulseChanTicks) error {
	f, err := procCreateCOPulseChanTicks.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Counter, p.Name, p.SourceTerminal, int32(p.IdleState), p.InitialDelay, p.LowTicks, p.HighTicks))
}

func (i *Interpreter) CreateDIChan(h TaskHandle, p interpreter.DigitalChan) error {
	f, err := procCreateDIChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Lines, p.Name, int32(p.Grouping)))
}

func (i *Interpreter) CreateDOChan(h TaskHandle, p interpreter.DigitalChan) error {
	f, err := procCreateDOChan.get(i.lib)
	if err != nil {
		return err
	}
	return i.check(f(h.Ptr, p.Lines, p.Name, int32(p.Grouping)))
}
