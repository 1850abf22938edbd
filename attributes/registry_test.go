package attributes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinKickass/daqmx/daqerr"
)

func TestLookup(t *testing.T) {
	a, ok := Lookup(AIMax)
	require.True(t, ok)
	assert.Equal(t, "AI_Max", a.Name)
	assert.Equal(t, ScopeChannel, a.Scope)
	assert.Equal(t, Float64, a.Category)
	assert.Equal(t, ReadWrite, a.Access)
	assert.True(t, a.Resettable)
	assert.Equal(t, "AIMax", a.Symbol())

	a, ok = Lookup(SampQuantSampMode)
	require.True(t, ok)
	assert.Equal(t, ScopeTiming, a.Scope)
	assert.Equal(t, "AcquisitionType", a.Enum)

	a, ok = Lookup(AICustomScaleName)
	require.True(t, ok)
	assert.Equal(t, "scale", a.Object)

	_, ok = Lookup(ID(0x7FFFFFF0))
	assert.False(t, ok)
}

func TestByName(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	a, ok := reg.ByName("Read_ReadAllAvailSamp")
	require.True(t, ok)
	assert.Equal(t, ReadReadAllAvailSamp, a.ID)

	a, ok = reg.ByName("SysDevNames")
	require.True(t, ok)
	assert.Equal(t, ScopeSystem, a.Scope)
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(AIMax, Float64, OpGet))
	assert.NoError(t, Check(AIMax, Float64, OpSet))
	assert.NoError(t, Check(AIMax, Float64, OpReset))

	assert.ErrorIs(t, Check(AIMax, Int32, OpGet), daqerr.ErrAttributeCategory)
	assert.ErrorIs(t, Check(TaskName, String, OpSet), daqerr.ErrAttributeReadOnly)
	assert.ErrorIs(t, Check(ScaleLinSlope, Float64, OpReset), daqerr.ErrAttributeNotResettable)
	assert.ErrorIs(t, Check(DevProductType, String, OpReset), daqerr.ErrAttributeNotResettable)

	err := Check(ID(0x7FFFFFF0), Bool, OpSet)
	assert.ErrorIs(t, err, daqerr.ErrUnknownAttribute)
	assert.ErrorIs(t, err, daqerr.ErrInvalidArgument)
	assert.ErrorIs(t, Check(ID(0x7FFFFFF0), 0, OpReset), daqerr.ErrUnknownAttribute)
}

func TestScopeAddressing(t *testing.T) {
	assert.True(t, ScopeChannel.TaskBound())
	assert.True(t, ScopeChannel.Named())
	assert.True(t, ScopeTiming.TaskBound())
	assert.False(t, ScopeTiming.Named())
	assert.False(t, ScopeDevice.TaskBound())
	assert.True(t, ScopeDevice.Named())
	assert.False(t, ScopeSystem.TaskBound())
	assert.False(t, ScopeSystem.Named())
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"bad scope":     "version: 1\nattributes:\n  - {id: 1, name: X, scope: nowhere, type: bool, access: read}\n",
		"missing type":  "version: 1\nattributes:\n  - {id: 1, name: X, scope: task, access: read}\n",
		"duplicate id":  "version: 1\nattributes:\n  - {id: 1, name: X, scope: task, type: bool, access: read}\n  - {id: 1, name: Y, scope: task, type: bool, access: read}\n",
		"reset but ro":  "version: 1\nattributes:\n  - {id: 1, name: X, scope: task, type: bool, access: read, resettable: true}\n",
		"wrong version": "version: 2\nattributes:\n  - {id: 1, name: X, scope: task, type: bool, access: read}\n",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}

	reg, err := Parse([]byte("version: 1\nattributes:\n  - {id: 0x10, name: A_B, scope: buffer, type: uint32, access: read-write, resettable: true}\n"))
	require.NoError(t, err)
	a, ok := reg.Lookup(0x10)
	require.True(t, ok)
	assert.Equal(t, ScopeBuffer, a.Scope)
	assert.Equal(t, "AB", a.Symbol())
}
