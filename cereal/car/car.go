// Hand-maintained bindings for car.capnp, kept in the accessor style
// capnpc-go emits. Field offsets must stay in sync with the schema.
package car

import (
	capnp "capnproto.org/go/capnp/v3"
)

type CarState capnp.Struct

func NewCarState(s *capnp.Segment) (CarState, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 24, PointerCount: 0})
	return CarState(st), err
}

func NewRootCarState(s *capnp.Segment) (CarState, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 24, PointerCount: 0})
	return CarState(st), err
}

func ReadRootCarState(msg *capnp.Message) (CarState, error) {
	root, err := msg.Root()
	return CarState(root.Struct()), err
}

func (s CarState) VEgo() float32 {
	return capnp.Struct(s).Float32(0)
}

func (s CarState) SetVEgo(v float32) {
	capnp.Struct(s).SetFloat32(0, v)
}

func (s CarState) AEgo() float32 {
	return capnp.Struct(s).Float32(4)
}

func (s CarState) SetAEgo(v float32) {
	capnp.Struct(s).SetFloat32(4, v)
}

func (s CarState) SteeringAngleDeg() float32 {
	return capnp.Struct(s).Float32(8)
}

func (s CarState) SetSteeringAngleDeg(v float32) {
	capnp.Struct(s).SetFloat32(8, v)
}

func (s CarState) VEgoRaw() float32 {
	return capnp.Struct(s).Float32(12)
}

func (s CarState) SetVEgoRaw(v float32) {
	capnp.Struct(s).SetFloat32(12, v)
}

func (s CarState) BrakePressed() bool {
	return capnp.Struct(s).Bit(128)
}

func (s CarState) SetBrakePressed(v bool) {
	capnp.Struct(s).SetBit(128, v)
}

func (s CarState) GasPressed() bool {
	return capnp.Struct(s).Bit(129)
}

func (s CarState) SetGasPressed(v bool) {
	capnp.Struct(s).SetBit(129, v)
}

func (s CarState) Standstill() bool {
	return capnp.Struct(s).Bit(130)
}

func (s CarState) SetStandstill(v bool) {
	capnp.Struct(s).SetBit(130, v)
}

func (s CarState) LeftBlinker() bool {
	return capnp.Struct(s).Bit(131)
}

func (s CarState) SetLeftBlinker(v bool) {
	capnp.Struct(s).SetBit(131, v)
}

func (s CarState) RightBlinker() bool {
	return capnp.Struct(s).Bit(132)
}

func (s CarState) SetRightBlinker(v bool) {
	capnp.Struct(s).SetBit(132, v)
}

func (s CarState) CruiseState() CarState_cruiseState {
	return CarState_cruiseState(s)
}

type CarState_cruiseState CarState

func (s CarState_cruiseState) Enabled() bool {
	return capnp.Struct(s).Bit(133)
}

func (s CarState_cruiseState) SetEnabled(v bool) {
	capnp.Struct(s).SetBit(133, v)
}

func (s CarState_cruiseState) Available() bool {
	return capnp.Struct(s).Bit(134)
}

func (s CarState_cruiseState) SetAvailable(v bool) {
	capnp.Struct(s).SetBit(134, v)
}

func (s CarState_cruiseState) Speed() float32 {
	return capnp.Struct(s).Float32(16)
}

func (s CarState_cruiseState) SetSpeed(v float32) {
	capnp.Struct(s).SetFloat32(16, v)
}
