// Command propgen writes the attribute property methods of package daqmx
// from the embedded attribute metadata.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/KevinKickass/daqmx/attributes"
	"github.com/KevinKickass/daqmx/internal/logging"
)

type placement struct {
	owner  string
	method string
	buffer bool
}

type entry struct {
	attr *attributes.Attribute
	placement
}

var (
	stringLists = map[string]bool{
		"Dev_Terminals":                             true,
		"Dev_Accessory_ProductTypes":                true,
		"Read_DevsWithInsertedOrRemovedAccessories": true,
	}
	handWritten = map[string]bool{
		"Read_ChannelsToRead":  true,
		"Read_OverloadedChans": true,
	}
	channelPrefixes = [][2]string{
		{"AI_", "AIChannel"}, {"AO_", "AOChannel"}, {"CI_", "CIChannel"},
		{"CO_", "COChannel"}, {"DI_", "DIChannel"}, {"DO_", "DOChannel"},
	}
	triggerTokens = [][2]string{
		{"ArmStartTrig", "ArmStartTrigger"}, {"ArmStart", "ArmStartTrigger"},
		{"StartTrig", "StartTrigger"}, {"RefTrig", "ReferenceTrigger"},
		{"PauseTrig", "PauseTrigger"}, {"HshkTrig", "HandshakeTrigger"},
	}
	exportRenames = map[string]string{"20MHzTimebase": "Timebase20MHz", "10MHzRefClk": "RefClk10MHz"}
	objectScopes  = map[attributes.Scope][2]string{
		attributes.ScopeScale:            {"Scale_", "Scale"},
		attributes.ScopeDevice:           {"Dev_", "Device"},
		attributes.ScopePhysicalChannel:  {"PhysicalChan_", "PhysicalChannel"},
		attributes.ScopePersistedTask:    {"PersistedTask_", "PersistedTask"},
		attributes.ScopePersistedChannel: {"PersistedChan_", "PersistedChannel"},
		attributes.ScopePersistedScale:   {"PersistedScale_", "PersistedScale"},
	}
	receivers = map[string]string{
		"Channel": "c", "AIChannel": "c", "AOChannel": "c", "CIChannel": "c", "COChannel": "c",
		"DIChannel": "c", "DOChannel": "c", "Timing": "t", "Triggers": "t", "StartTrigger": "t",
		"ReferenceTrigger": "t", "ArmStartTrigger": "t", "PauseTrigger": "t", "HandshakeTrigger": "t",
		"ExportSignals": "e", "InStream": "s", "OutStream": "s", "Scale": "s", "Device": "d",
		"PhysicalChannel": "p", "PersistedTask": "p", "PersistedChannel": "p", "PersistedScale": "p",
	}
	files = []struct {
		name   string
		owners []string
	}{
		{"props_channel.go", []string{"Channel", "AIChannel", "AOChannel", "CIChannel", "COChannel", "DIChannel", "DOChannel"}},
		{"props_task.go", []string{"Timing", "Triggers", "StartTrigger", "ReferenceTrigger", "ArmStartTrigger",
			"PauseTrigger", "HandshakeTrigger", "ExportSignals", "InStream", "OutStream"}},
		{"props_objects.go", []string{"Scale", "Device", "PhysicalChannel", "PersistedTask", "PersistedChannel", "PersistedScale"}},
	}
	scalars = map[attributes.Category][2]string{
		attributes.Bool:         {"bool", "boolAttr"},
		attributes.Int32:        {"int32", "int32Attr"},
		attributes.Uint32:       {"uint32", "uint32Attr"},
		attributes.Uint64:       {"uint64", "uint64Attr"},
		attributes.Float64:      {"float64", "float64Attr"},
		attributes.String:       {"string", "stringAttr"},
		attributes.Float64Array: {"[]float64", "float64ArrayAttr"},
		attributes.Int32Array:   {"[]int32", "int32ArrayAttr"},
		attributes.Uint32Array:  {"[]uint32", "uint32ArrayAttr"},
		attributes.Bytes:        {"[]byte", "bytesAttr"},
		attributes.Timestamp:    {"timestamp.Time", "timestampAttr"},
	}
	methodName = regexp.MustCompile(`^func \([^)]*\) (\w+)`)
)

func valueReceiver(owner string) bool {
	return strings.HasSuffix(owner, "Channel") && owner != "PhysicalChannel" && owner != "PersistedChannel"
}

// reserved lists hand-written methods the generated ones must not shadow.
func reserved(owner string) []string {
	if valueReceiver(owner) {
		return []string{"Name", "Kind", "Names", "Len", "At", "Reversed", "Union", "Contains", "Equal", "Key", "Save", "String"}
	}
	switch owner {
	case "Timing":
		return []string{"CfgSampClkTiming", "CfgImplicitTiming", "CfgChangeDetectionTiming", "CfgHandshakingTiming",
			"CfgBurstHandshakingTimingImportClock", "CfgBurstHandshakingTimingExportClock"}
	case "Triggers":
		return []string{"SendSoftwareTrigger"}
	case "StartTrigger":
		return []string{"CfgDigEdge", "CfgAnlgEdge", "CfgAnlgWindow", "CfgDigPattern", "CfgTime", "CfgAnlgMultiEdge", "Disable"}
	case "ReferenceTrigger":
		return []string{"CfgDigEdge", "CfgAnlgEdge", "CfgAnlgWindow", "CfgDigPattern", "Disable"}
	case "InStream":
		return []string{"ChannelsToRead", "SetChannelsToRead", "ResetChannelsToRead", "OverloadedChannels", "ReadInto"}
	case "OutStream":
		return []string{"Write"}
	case "Scale":
		return []string{"Name", "Save", "String"}
	case "Device":
		return []string{"Name", "Reset", "SelfTest", "String"}
	case "PhysicalChannel":
		return []string{"Name", "String"}
	case "PersistedTask", "PersistedScale":
		return []string{"Name", "Load", "Delete"}
	case "PersistedChannel":
		return []string{"Name", "Delete"}
	}
	return nil
}

func symbol(s string) string { return strings.ReplaceAll(s, "_", "") }

func place(a *attributes.Attribute) (placement, bool, error) {
	name := a.Name
	if handWritten[name] {
		return placement{}, false, nil
	}
	switch a.Scope {
	case attributes.ScopeChannel:
		for _, p := range channelPrefixes {
			if strings.HasPrefix(name, p[0]) {
				return placement{p[1], symbol(name[len(p[0]):]), false}, true, nil
			}
		}
		return placement{"Channel", strings.TrimPrefix(symbol(name), "Chan"), false}, true, nil
	case attributes.ScopeTiming:
		return placement{"Timing", symbol(name), false}, true, nil
	case attributes.ScopeTrigger:
		if name == "Trigger_SyncType" {
			return placement{"Triggers", "SyncType", false}, true, nil
		}
		parts := strings.Split(name, "_")
		for _, tok := range triggerTokens {
			if slices.Contains(parts, tok[0]) {
				rest := slices.DeleteFunc(slices.Clone(parts), func(p string) bool { return p == tok[0] })
				return placement{tok[1], strings.Join(rest, ""), false}, true, nil
			}
		}
		return placement{}, false, fmt.Errorf("no trigger owns %s", name)
	case attributes.ScopeExport:
		head, tail, _ := strings.Cut(strings.TrimPrefix(name, "Exported_"), "_")
		if r, ok := exportRenames[head]; ok {
			head = r
		}
		return placement{"ExportSignals", symbol(head + "_" + tail), false}, true, nil
	case attributes.ScopeRead:
		return placement{"InStream", symbol(strings.TrimPrefix(name, "Read_")), false}, true, nil
	case attributes.ScopeWrite:
		return placement{"OutStream", symbol(strings.TrimPrefix(name, "Write_")), false}, true, nil
	case attributes.ScopeBuffer:
		if rest, ok := strings.CutPrefix(name, "Buf_Input_"); ok {
			return placement{"InStream", symbol(rest), true}, true, nil
		}
		return placement{"OutStream", symbol(strings.TrimPrefix(name, "Buf_Output_")), true}, true, nil
	}
	if o, ok := objectScopes[a.Scope]; ok {
		return placement{o[1], symbol(strings.TrimPrefix(name, o[0])), false}, true, nil
	}
	return placement{}, false, nil
}

func methods(e entry) ([]string, error) {
	a := e.attr
	r := receivers[e.owner]
	recv := fmt.Sprintf("(%s *%s)", r, e.owner)
	if valueReceiver(e.owner) {
		recv = fmt.Sprintf("(%s %s)", r, e.owner)
	}
	b := r
	if e.buffer {
		b = r + ".buffer()"
	}
	id := "attributes." + a.Symbol()
	writable := a.Writable()
	m := e.method

	var out []string
	fn := func(name, sig, body string) {
		out = append(out, fmt.Sprintf("func %s %s%s {\n\treturn %s\n}\n", recv, name, sig, body))
	}
	switch {
	case a.Object == "scale":
		fn(m, "() (*Scale, error)", fmt.Sprintf("getObject(%s, %s, newScale)", b, id))
		if writable {
			fn("Set"+m, "(v *Scale) error", fmt.Sprintf("setScale(%s, %s, v)", b, id))
		}
	case a.Object == "channel":
		fn(m, "() (Channel, error)", fmt.Sprintf("%s.channels(%s)", b, id))
		if writable {
			fn("Set"+m, "(v Channel) error", fmt.Sprintf("set(%s, stringAttr, %s, v.Name())", b, id))
		}
	case a.Object == "device":
		if strings.HasSuffix(m, "s") {
			fn(m, "() ([]*Device, error)", fmt.Sprintf("getObjects(%s, %s, newDevice)", b, id))
		} else {
			fn(m, "() (*Device, error)", fmt.Sprintf("getObject(%s, %s, newDevice)", b, id))
		}
	case a.Object == "physical_channel":
		fn(m, "() ([]*PhysicalChannel, error)", fmt.Sprintf("getObjects(%s, %s, newPhysicalChannel)", b, id))
	case stringLists[a.Name]:
		fn(m, "() ([]string, error)", fmt.Sprintf("getNames(%s, %s)", b, id))
		if writable {
			fn("Set"+m, "(v []string) error", fmt.Sprintf("setNames(%s, %s, v)", b, id))
		}
	case a.Enum != "" && a.Category == attributes.Int32:
		t := "constants." + a.Enum
		fn(m, fmt.Sprintf("() (%s, error)", t), fmt.Sprintf("getEnum[%s](%s, %s)", t, b, id))
		if writable {
			fn("Set"+m, fmt.Sprintf("(v %s) error", t), fmt.Sprintf("setEnum(%s, %s, v)", b, id))
		}
	case a.Enum != "" && a.Category == attributes.Int32Array:
		t := "constants." + a.Enum
		fn(m, fmt.Sprintf("() ([]%s, error)", t), fmt.Sprintf("getEnums[%s](%s, %s)", t, b, id))
		if writable {
			fn("Set"+m, fmt.Sprintf("(v []%s) error", t), fmt.Sprintf("setEnums(%s, %s, v)", b, id))
		}
	default:
		s, ok := scalars[a.Category]
		if !ok {
			return nil, fmt.Errorf("%s: unsupported category %s", a.Name, a.Category)
		}
		fn(m, fmt.Sprintf("() (%s, error)", s[0]), fmt.Sprintf("get(%s, %s, %s)", b, s[1], id))
		if writable {
			fn("Set"+m, fmt.Sprintf("(v %s) error", s[0]), fmt.Sprintf("set(%s, %s, %s, v)", b, s[1], id))
		}
	}
	if a.Resettable {
		fn("Reset"+m, "() error", fmt.Sprintf("reset(%s, %s)", b, id))
	}
	return out, nil
}

func render(owners []string, byOwner map[string][]entry) ([]byte, error) {
	imports := map[string]bool{"github.com/KevinKickass/daqmx/attributes": true}
	var body []string
	for _, owner := range owners {
		seen := make(map[string]bool)
		for _, r := range reserved(owner) {
			seen[r] = true
		}
		entries := byOwner[owner]
		slices.SortFunc(entries, func(x, y entry) int { return strings.Compare(x.method, y.method) })
		for _, e := range entries {
			ms, err := methods(e)
			if err != nil {
				return nil, err
			}
			for _, m := range ms {
				name := methodName.FindStringSubmatch(m)[1]
				if seen[name] {
					return nil, fmt.Errorf("duplicate method %s.%s from %s", owner, name, e.attr.Name)
				}
				seen[name] = true
				if strings.Contains(m, "constants.") {
					imports["github.com/KevinKickass/daqmx/constants"] = true
				}
				if strings.Contains(m, "timestamp.") {
					imports["github.com/KevinKickass/daqmx/timestamp"] = true
				}
			}
			body = append(body, ms...)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by propgen from attributes/metadata/attributes.yaml. DO NOT EDIT.\n\npackage daqmx\n\nimport (\n")
	paths := make([]string, 0, len(imports))
	for p := range imports {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	for _, p := range paths {
		fmt.Fprintf(&buf, "\t%q\n", p)
	}
	buf.WriteString(")\n\n")
	buf.WriteString(strings.Join(body, "\n"))
	return format.Source(buf.Bytes())
}

func run(dir string) error {
	reg, err := attributes.Default()
	if err != nil {
		return err
	}
	byOwner := make(map[string][]entry)
	for scope := attributes.ScopeChannel; scope <= attributes.ScopeBuffer; scope++ {
		for _, a := range reg.All(scope) {
			p, ok, err := place(a)
			if err != nil {
				return err
			}
			if ok {
				byOwner[p.owner] = append(byOwner[p.owner], entry{a, p})
			}
		}
	}
	for _, f := range files {
		src, err := render(f.owners, byOwner)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, f.name), src, 0o644); err != nil {
			return err
		}
		logging.L().Info("Wrote property file", zap.String("file", f.name), zap.Int("bytes", len(src)))
	}
	return nil
}

func main() {
	dir := flag.String("dir", ".", "directory of package daqmx")
	flag.Parse()
	logging.Configure("info")
	if err := run(*dir); err != nil {
		logging.L().Error("Property generation failed", zap.Error(err))
		os.Exit(1)
	}
}
