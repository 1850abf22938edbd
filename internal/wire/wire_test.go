package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/KevinKickass/daqmx/timestamp"
)

func TestServiceCompiles(t *testing.T) {
	svc, err := Service()
	require.NoError(t, err)
	assert.Equal(t, ServiceName, string(svc.FullName()))

	md, err := Method("CreateTask")
	require.NoError(t, err)
	assert.NotNil(t, md.Input().Fields().ByName("initialization_behavior"))
	assert.NotNil(t, md.Output().Fields().ByName("new_session_initialized"))

	events, err := Method("RegisterEveryNSamplesEvent")
	require.NoError(t, err)
	assert.True(t, events.IsStreamingServer())

	_, err = Method("ReadAnalogWaveforms")
	assert.ErrorIs(t, err, ErrUnknownMethod)
	assert.Equal(t, "/nidaqmx_grpc.NiDAQmx/StartTask", FullMethod("StartTask"))
}

func TestMessageRoundTrip(t *testing.T) {
	req, md, err := Request("WriteAnalogF64")
	require.NoError(t, err)
	req.SetSession("task", "T1").
		Set("num_samps_per_chan", int32(2)).
		Set("auto_start", true).
		Set("timeout", 10.0).
		Set("data_layout_raw", int32(0)).
		Set("write_array", []float64{1, 2, 3, 4})

	b, err := proto.Marshal(req.Message)
	require.NoError(t, err)
	got := New(md.Input())
	require.NoError(t, proto.Unmarshal(b, got.Message))

	assert.Equal(t, "T1", got.Session("task"))
	assert.Equal(t, int32(2), got.Int32("num_samps_per_chan"))
	assert.True(t, got.Bool("auto_start"))
	assert.Equal(t, []float64{1, 2, 3, 4}, got.Float64s("write_array"))
}

func TestMessageEnumsAndTimestamps(t *testing.T) {
	req, _, err := Request("CreateTask")
	require.NoError(t, err)
	req.Set("session_name", "T1").Set("initialization_behavior", int32(2))
	assert.Equal(t, int32(2), req.Enum("initialization_behavior"))

	trig, _, err := Request("CfgTimeStartTrig")
	require.NoError(t, err)
	when := timestamp.WireTime{Seconds: -5, Nanos: 250}
	trig.Set("when", when)
	assert.Equal(t, when, trig.Timestamp("when"))

	assert.Panics(t, func() { trig.Set("no_such_field", int32(1)) })
	assert.True(t, trig.Has("timescale_raw"))
	assert.False(t, trig.Has("no_such_field"))
}

func TestEnumParametersAreOneofs(t *testing.T) {
	md, err := Method("ReadAnalogF64")
	require.NoError(t, err)
	fields := md.Input().Fields()

	typed, raw := fields.ByName("fill_mode"), fields.ByName("fill_mode_raw")
	require.NotNil(t, typed)
	require.NotNil(t, raw)
	assert.Equal(t, "fill_mode_enum", string(raw.ContainingOneof().Name()))
	assert.Equal(t, typed.ContainingOneof(), raw.ContainingOneof())
	assert.EqualValues(t, 4, typed.Number())
	assert.EqualValues(t, 5, raw.Number())
	assert.EqualValues(t, 6, fields.ByName("array_size_in_samps").Number())

	req := New(md.Input()).Set("fill_mode_raw", int32(1))
	assert.Equal(t, raw, req.WhichOneof(raw.ContainingOneof()))

	set, err := Method("SetChanAttributeInt32")
	require.NoError(t, err)
	assert.EqualValues(t, 4, set.Input().Fields().ByName("attribute_raw").Number())
	assert.EqualValues(t, 6, set.Input().Fields().ByName("value_raw").Number())
}
