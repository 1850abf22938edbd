package daqmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/constants"
	"github.com/KevinKickass/daqmx/daqerr"
)

func newFakeSystem(t *testing.T, f *fakeInterp) *System {
	t.Helper()
	s, err := LocalSystem(WithInterpreter(f))
	require.NoError(t, err)
	return s
}

func TestDriverVersion(t *testing.T) {
	f := newFake()
	s := newFakeSystem(t, f)
	f.put(attributes.ScopeSystem, "", attributes.SysNIDAQMajorVersion, uint32(23))
	f.put(attributes.ScopeSystem, "", attributes.SysNIDAQMinorVersion, uint32(8))
	f.put(attributes.ScopeSystem, "", attributes.SysNIDAQUpdateVersion, uint32(0))

	v, err := s.DriverVersion()
	require.NoError(t, err)
	assert.Equal(t, DriverVersion{Major: 23, Minor: 8}, v)
	assert.Equal(t, "23.8.0", v.String())
}

func TestDevicesShareTransport(t *testing.T) {
	f := newFake()
	s := newFakeSystem(t, f)
	f.put(attributes.ScopeSystem, "", attributes.SysDevNames, "Dev1, Dev2")
	f.put(attributes.ScopeDevice, "Dev2", attributes.DevProductType, "USB-6009")
	f.put(attributes.ScopeDevice, "Dev2", attributes.DevAIPhysicalChans, "Dev2/ai0:1")
	f.put(attributes.ScopeDevice, "Dev2", attributes.DevTerminals, "/Dev2/PFI0,/Dev2/PFI1")

	devs, err := s.Devices()
	require.NoError(t, err)
	require.Len(t, devs, 2)
	assert.Equal(t, "Dev1", devs[0].Name())

	product, err := devs[1].ProductType()
	require.NoError(t, err)
	assert.Equal(t, "USB-6009", product)

	chans, err := devs[1].AIPhysicalChans()
	require.NoError(t, err)
	require.Len(t, chans, 2)
	assert.Equal(t, "PhysicalChannel(name=Dev2/ai1)", chans[1].String())

	terms, err := s.Device("Dev2").Terminals()
	require.NoError(t, err)
	assert.Equal(t, []string{"/Dev2/PFI0", "/Dev2/PFI1"}, terms)

	require.NoError(t, devs[0].Reset())
	assert.Equal(t, 1, f.called("reset device Dev1"))
}

func TestCreateScales(t *testing.T) {
	f := newFake()
	s := newFakeSystem(t, f)

	_, err := s.CreateTableScale("tbl", []float64{0, 1, 2}, []float64{0, 10}, constants.PreScaledVolts, "mm")
	var mismatch *daqerr.MismatchedArraySizesError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.Want)
	assert.Zero(t, f.called("table scale"))

	sc, err := s.CreateTableScale("tbl", []float64{0, 1}, []float64{0, 10}, constants.PreScaledVolts, "mm")
	require.NoError(t, err)
	assert.Equal(t, "tbl", sc.Name())

	_, err = s.CreatePolynomialScale("poly", nil, []float64{1}, constants.PreScaledVolts, "mm")
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)

	_, err = s.CreatePolynomialScale("poly", []float64{0, 2}, nil, constants.PreScaledVolts, "mm")
	require.NoError(t, err)
	assert.Equal(t, 1, f.called("poly scale poly 2 0"))
}

func TestCustomScaleReference(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "ai0")
	ai, err := task.AIChannels.At(0)
	require.NoError(t, err)

	f.put(attributes.ScopeChannel, "ai0", attributes.AICustomScaleName, "")
	sc, err := ai.CustomScaleName()
	require.NoError(t, err)
	assert.Nil(t, sc, "no scale assigned")

	require.NoError(t, ai.SetCustomScaleName(newScale(f, "tbl")))
	sc, err = ai.CustomScaleName()
	require.NoError(t, err)
	assert.Equal(t, "tbl", sc.Name())

	require.NoError(t, ai.SetCustomScaleName(nil))
	sc, err = ai.CustomScaleName()
	require.NoError(t, err)
	assert.Nil(t, sc)
}

func TestSystemArgumentChecks(t *testing.T) {
	f := newFake()
	s := newFakeSystem(t, f)

	assert.ErrorIs(t, s.SetAnalogPowerUpStates(), daqerr.ErrInvalidArgument)
	_, err := s.GetAnalogPowerUpStates()
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)

	require.NoError(t, s.ConnectTerms("/Dev1/PFI0", "/Dev1/RTSI0", true))
	assert.Equal(t, 1, f.called("connect /Dev1/PFI0 /Dev1/RTSI0 true"))
}

func TestAttributeChecks(t *testing.T) {
	f := newFake()
	task := newFakeTask(t, f)
	f.addChannels(constants.AnalogInput, "ai0")
	ai := newChannel(task.core, "ai0", constants.AnalogInput)

	_, err := get(ai, stringAttr, attributes.AIMax)
	assert.ErrorIs(t, err, daqerr.ErrAttributeCategory)

	err = set(task.InStream, uint32Attr, attributes.ReadAvailSampPerChan, 3)
	assert.ErrorIs(t, err, daqerr.ErrAttributeReadOnly)

	assert.ErrorIs(t, reset(ai, attributes.ChanIsGlobal), daqerr.ErrAttributeNotResettable)

	assert.Zero(t, f.called("set Read_AvailSampPerChan"), "rejected before reaching the transport")
	assert.Zero(t, f.called("reset ChanIsGlobal"))
}
