// Hand-maintained bindings for custom.capnp, kept in the accessor style
// capnpc-go emits. Field offsets must stay in sync with the schema.
package custom

import (
	capnp "capnproto.org/go/capnp/v3"
)

type PlannerInputType uint16

// Values of PlannerInputType.
const (
	PlannerInputType_reloadSettings          PlannerInputType = 0
	PlannerInputType_saveSettings            PlannerInputType = 1
	PlannerInputType_loadDefaultSettings     PlannerInputType = 2
	PlannerInputType_loadRecommendedSettings PlannerInputType = 3
	PlannerInputType_setLogLevel             PlannerInputType = 4
	PlannerInputType_setModelLong            PlannerInputType = 5
	PlannerInputType_setSpeedCameraControl   PlannerInputType = 6
	PlannerInputType_setRecordDrive          PlannerInputType = 7
	PlannerInputType_setRecordPath           PlannerInputType = 8
	PlannerInputType_setSpeedCameraOffset    PlannerInputType = 9
)

// String returns the enum's constant name.
func (c PlannerInputType) String() string {
	switch c {
	case PlannerInputType_reloadSettings:
		return "reloadSettings"
	case PlannerInputType_saveSettings:
		return "saveSettings"
	case PlannerInputType_loadDefaultSettings:
		return "loadDefaultSettings"
	case PlannerInputType_loadRecommendedSettings:
		return "loadRecommendedSettings"
	case PlannerInputType_setLogLevel:
		return "setLogLevel"
	case PlannerInputType_setModelLong:
		return "setModelLong"
	case PlannerInputType_setSpeedCameraControl:
		return "setSpeedCameraControl"
	case PlannerInputType_setRecordDrive:
		return "setRecordDrive"
	case PlannerInputType_setRecordPath:
		return "setRecordPath"
	case PlannerInputType_setSpeedCameraOffset:
		return "setSpeedCameraOffset"
	default:
		return ""
	}
}

type PlannerIn capnp.Struct

func NewPlannerIn(s *capnp.Segment) (PlannerIn, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return PlannerIn(st), err
}

func NewRootPlannerIn(s *capnp.Segment) (PlannerIn, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return PlannerIn(st), err
}

func ReadRootPlannerIn(msg *capnp.Message) (PlannerIn, error) {
	root, err := msg.Root()
	return PlannerIn(root.Struct()), err
}

func (s PlannerIn) Type() PlannerInputType {
	return PlannerInputType(capnp.Struct(s).Uint16(0))
}

func (s PlannerIn) SetType(v PlannerInputType) {
	capnp.Struct(s).SetUint16(0, uint16(v))
}

func (s PlannerIn) Bool() bool {
	return capnp.Struct(s).Bit(16)
}

func (s PlannerIn) SetBool(v bool) {
	capnp.Struct(s).SetBit(16, v)
}

func (s PlannerIn) Float() float32 {
	return capnp.Struct(s).Float32(4)
}

func (s PlannerIn) SetFloat(v float32) {
	capnp.Struct(s).SetFloat32(4, v)
}

func (s PlannerIn) Str() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s PlannerIn) HasStr() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s PlannerIn) SetStr(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

type PlannerExtended capnp.Struct

func NewPlannerExtended(s *capnp.Segment) (PlannerExtended, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 2})
	return PlannerExtended(st), err
}

func NewRootPlannerExtended(s *capnp.Segment) (PlannerExtended, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 2})
	return PlannerExtended(st), err
}

func ReadRootPlannerExtended(msg *capnp.Message) (PlannerExtended, error) {
	root, err := msg.Root()
	return PlannerExtended(root.Struct()), err
}

func (s PlannerExtended) Recording() bool {
	return capnp.Struct(s).Bit(0)
}

func (s PlannerExtended) SetRecording(v bool) {
	capnp.Struct(s).SetBit(0, v)
}

func (s PlannerExtended) ModelLongActive() bool {
	return capnp.Struct(s).Bit(1)
}

func (s PlannerExtended) SetModelLongActive(v bool) {
	capnp.Struct(s).SetBit(1, v)
}

func (s PlannerExtended) Settings() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s PlannerExtended) HasSettings() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s PlannerExtended) SetSettings(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

func (s PlannerExtended) SessionId() (string, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.Text(), err
}

func (s PlannerExtended) HasSessionId() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s PlannerExtended) SetSessionId(v string) error {
	return capnp.Struct(s).SetText(1, v)
}
