// Hand-maintained bindings for log.capnp, kept in the accessor style
// capnpc-go emits. Field offsets must stay in sync with the schema.
package log

import (
	capnp "capnproto.org/go/capnp/v3"

	"github.com/agegold/openpilot-085/cereal/car"
	"github.com/agegold/openpilot-085/cereal/custom"
)

type Event capnp.Struct

func NewEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 7})
	return Event(st), err
}

func NewRootEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 7})
	return Event(st), err
}

func ReadRootEvent(msg *capnp.Message) (Event, error) {
	root, err := msg.Root()
	return Event(root.Struct()), err
}

func (s Event) LogMonoTime() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s Event) SetLogMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s Event) Valid() bool {
	return capnp.Struct(s).Bit(64)
}

func (s Event) SetValid(v bool) {
	capnp.Struct(s).SetBit(64, v)
}

func (s Event) CarState() (car.CarState, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return car.CarState(p.Struct()), err
}

func (s Event) HasCarState() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s Event) SetCarState(v car.CarState) error {
	return capnp.Struct(s).SetPtr(0, capnp.Struct(v).ToPtr())
}

func (s Event) NewCarState() (car.CarState, error) {
	ss, err := car.NewCarState(capnp.Struct(s).Segment())
	if err != nil {
		return car.CarState{}, err
	}
	err = capnp.Struct(s).SetPtr(0, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) ControlsState() (ControlsState, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return ControlsState(p.Struct()), err
}

func (s Event) HasControlsState() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s Event) SetControlsState(v ControlsState) error {
	return capnp.Struct(s).SetPtr(1, capnp.Struct(v).ToPtr())
}

func (s Event) NewControlsState() (ControlsState, error) {
	ss, err := NewControlsState(capnp.Struct(s).Segment())
	if err != nil {
		return ControlsState{}, err
	}
	err = capnp.Struct(s).SetPtr(1, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) RadarState() (RadarState, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return RadarState(p.Struct()), err
}

func (s Event) HasRadarState() bool {
	return capnp.Struct(s).HasPtr(2)
}

func (s Event) SetRadarState(v RadarState) error {
	return capnp.Struct(s).SetPtr(2, capnp.Struct(v).ToPtr())
}

func (s Event) NewRadarState() (RadarState, error) {
	ss, err := NewRadarState(capnp.Struct(s).Segment())
	if err != nil {
		return RadarState{}, err
	}
	err = capnp.Struct(s).SetPtr(2, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) ModelV2() (ModelDataV2, error) {
	p, err := capnp.Struct(s).Ptr(3)
	return ModelDataV2(p.Struct()), err
}

func (s Event) HasModelV2() bool {
	return capnp.Struct(s).HasPtr(3)
}

func (s Event) SetModelV2(v ModelDataV2) error {
	return capnp.Struct(s).SetPtr(3, capnp.Struct(v).ToPtr())
}

func (s Event) NewModelV2() (ModelDataV2, error) {
	ss, err := NewModelDataV2(capnp.Struct(s).Segment())
	if err != nil {
		return ModelDataV2{}, err
	}
	err = capnp.Struct(s).SetPtr(3, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) LongitudinalPlan() (LongitudinalPlan, error) {
	p, err := capnp.Struct(s).Ptr(4)
	return LongitudinalPlan(p.Struct()), err
}

func (s Event) HasLongitudinalPlan() bool {
	return capnp.Struct(s).HasPtr(4)
}

func (s Event) SetLongitudinalPlan(v LongitudinalPlan) error {
	return capnp.Struct(s).SetPtr(4, capnp.Struct(v).ToPtr())
}

func (s Event) NewLongitudinalPlan() (LongitudinalPlan, error) {
	ss, err := NewLongitudinalPlan(capnp.Struct(s).Segment())
	if err != nil {
		return LongitudinalPlan{}, err
	}
	err = capnp.Struct(s).SetPtr(4, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) PlannerIn() (custom.PlannerIn, error) {
	p, err := capnp.Struct(s).Ptr(5)
	return custom.PlannerIn(p.Struct()), err
}

func (s Event) HasPlannerIn() bool {
	return capnp.Struct(s).HasPtr(5)
}

func (s Event) SetPlannerIn(v custom.PlannerIn) error {
	return capnp.Struct(s).SetPtr(5, capnp.Struct(v).ToPtr())
}

func (s Event) NewPlannerIn() (custom.PlannerIn, error) {
	ss, err := custom.NewPlannerIn(capnp.Struct(s).Segment())
	if err != nil {
		return custom.PlannerIn{}, err
	}
	err = capnp.Struct(s).SetPtr(5, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) PlannerExtended() (custom.PlannerExtended, error) {
	p, err := capnp.Struct(s).Ptr(6)
	return custom.PlannerExtended(p.Struct()), err
}

func (s Event) HasPlannerExtended() bool {
	return capnp.Struct(s).HasPtr(6)
}

func (s Event) SetPlannerExtended(v custom.PlannerExtended) error {
	return capnp.Struct(s).SetPtr(6, capnp.Struct(v).ToPtr())
}

func (s Event) NewPlannerExtended() (custom.PlannerExtended, error) {
	ss, err := custom.NewPlannerExtended(capnp.Struct(s).Segment())
	if err != nil {
		return custom.PlannerExtended{}, err
	}
	err = capnp.Struct(s).SetPtr(6, capnp.Struct(ss).ToPtr())
	return ss, err
}

type ControlsState_LongControlState uint16

// Values of ControlsState_LongControlState.
const (
	ControlsState_LongControlState_off      ControlsState_LongControlState = 0
	ControlsState_LongControlState_pid      ControlsState_LongControlState = 1
	ControlsState_LongControlState_stopping ControlsState_LongControlState = 2
	ControlsState_LongControlState_starting ControlsState_LongControlState = 3
)

// String returns the enum's constant name.
func (c ControlsState_LongControlState) String() string {
	switch c {
	case ControlsState_LongControlState_off:
		return "off"
	case ControlsState_LongControlState_pid:
		return "pid"
	case ControlsState_LongControlState_stopping:
		return "stopping"
	case ControlsState_LongControlState_starting:
		return "starting"
	default:
		return ""
	}
}

type ControlsState capnp.Struct

func NewControlsState(s *capnp.Segment) (ControlsState, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 0})
	return ControlsState(st), err
}

func NewRootControlsState(s *capnp.Segment) (ControlsState, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 0})
	return ControlsState(st), err
}

func ReadRootControlsState(msg *capnp.Message) (ControlsState, error) {
	root, err := msg.Root()
	return ControlsState(root.Struct()), err
}

func (s ControlsState) VCruise() float32 {
	return capnp.Struct(s).Float32(0)
}

func (s ControlsState) SetVCruise(v float32) {
	capnp.Struct(s).SetFloat32(0, v)
}

func (s ControlsState) LongControlState() ControlsState_LongControlState {
	return ControlsState_LongControlState(capnp.Struct(s).Uint16(4))
}

func (s ControlsState) SetLongControlState(v ControlsState_LongControlState) {
	capnp.Struct(s).SetUint16(4, uint16(v))
}

func (s ControlsState) Enabled() bool {
	return capnp.Struct(s).Bit(48)
}

func (s ControlsState) SetEnabled(v bool) {
	capnp.Struct(s).SetBit(48, v)
}

func (s ControlsState) Active() bool {
	return capnp.Struct(s).Bit(49)
}

func (s ControlsState) SetActive(v bool) {
	capnp.Struct(s).SetBit(49, v)
}

func (s ControlsState) ForceDecel() bool {
	return capnp.Struct(s).Bit(50)
}

func (s ControlsState) SetForceDecel(v bool) {
	capnp.Struct(s).SetBit(50, v)
}

type LeadData capnp.Struct

func NewLeadData(s *capnp.Segment) (LeadData, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 40, PointerCount: 0})
	return LeadData(st), err
}

func NewRootLeadData(s *capnp.Segment) (LeadData, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 40, PointerCount: 0})
	return LeadData(st), err
}

func ReadRootLeadData(msg *capnp.Message) (LeadData, error) {
	root, err := msg.Root()
	return LeadData(root.Struct()), err
}

func (s LeadData) DRel() float32 {
	return capnp.Struct(s).Float32(0)
}

func (s LeadData) SetDRel(v float32) {
	capnp.Struct(s).SetFloat32(0, v)
}

func (s LeadData) YRel() float32 {
	return capnp.Struct(s).Float32(4)
}

func (s LeadData) SetYRel(v float32) {
	capnp.Struct(s).SetFloat32(4, v)
}

func (s LeadData) VRel() float32 {
	return capnp.Struct(s).Float32(8)
}

func (s LeadData) SetVRel(v float32) {
	capnp.Struct(s).SetFloat32(8, v)
}

func (s LeadData) ARel() float32 {
	return capnp.Struct(s).Float32(12)
}

func (s LeadData) SetARel(v float32) {
	capnp.Struct(s).SetFloat32(12, v)
}

func (s LeadData) VLead() float32 {
	return capnp.Struct(s).Float32(16)
}

func (s LeadData) SetVLead(v float32) {
	capnp.Struct(s).SetFloat32(16, v)
}

func (s LeadData) VLeadK() float32 {
	return capnp.Struct(s).Float32(20)
}

func (s LeadData) SetVLeadK(v float32) {
	capnp.Struct(s).SetFloat32(20, v)
}

func (s LeadData) ALeadK() float32 {
	return capnp.Struct(s).Float32(24)
}

func (s LeadData) SetALeadK(v float32) {
	capnp.Struct(s).SetFloat32(24, v)
}

func (s LeadData) VLat() float32 {
	return capnp.Struct(s).Float32(28)
}

func (s LeadData) SetVLat(v float32) {
	capnp.Struct(s).SetFloat32(28, v)
}

func (s LeadData) Status() bool {
	return capnp.Struct(s).Bit(256)
}

func (s LeadData) SetStatus(v bool) {
	capnp.Struct(s).SetBit(256, v)
}

func (s LeadData) Fcw() bool {
	return capnp.Struct(s).Bit(257)
}

func (s LeadData) SetFcw(v bool) {
	capnp.Struct(s).SetBit(257, v)
}

type RadarState capnp.Struct

func NewRadarState(s *capnp.Segment) (RadarState, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 0, PointerCount: 2})
	return RadarState(st), err
}

func NewRootRadarState(s *capnp.Segment) (RadarState, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 0, PointerCount: 2})
	return RadarState(st), err
}

func ReadRootRadarState(msg *capnp.Message) (RadarState, error) {
	root, err := msg.Root()
	return RadarState(root.Struct()), err
}

func (s RadarState) LeadOne() (LeadData, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return LeadData(p.Struct()), err
}

func (s RadarState) HasLeadOne() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s RadarState) SetLeadOne(v LeadData) error {
	return capnp.Struct(s).SetPtr(0, capnp.Struct(v).ToPtr())
}

func (s RadarState) NewLeadOne() (LeadData, error) {
	ss, err := NewLeadData(capnp.Struct(s).Segment())
	if err != nil {
		return LeadData{}, err
	}
	err = capnp.Struct(s).SetPtr(0, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s RadarState) LeadTwo() (LeadData, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return LeadData(p.Struct()), err
}

func (s RadarState) HasLeadTwo() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s RadarState) SetLeadTwo(v LeadData) error {
	return capnp.Struct(s).SetPtr(1, capnp.Struct(v).ToPtr())
}

func (s RadarState) NewLeadTwo() (LeadData, error) {
	ss, err := NewLeadData(capnp.Struct(s).Segment())
	if err != nil {
		return LeadData{}, err
	}
	err = capnp.Struct(s).SetPtr(1, capnp.Struct(ss).ToPtr())
	return ss, err
}

type XYZTData capnp.Struct

func NewXYZTData(s *capnp.Segment) (XYZTData, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 0, PointerCount: 4})
	return XYZTData(st), err
}

func NewRootXYZTData(s *capnp.Segment) (XYZTData, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 0, PointerCount: 4})
	return XYZTData(st), err
}

func ReadRootXYZTData(msg *capnp.Message) (XYZTData, error) {
	root, err := msg.Root()
	return XYZTData(root.Struct()), err
}

func (s XYZTData) X() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return capnp.Float32List(p.List()), err
}

func (s XYZTData) HasX() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s XYZTData) SetX(v capnp.Float32List) error {
	return capnp.Struct(s).SetPtr(0, v.ToPtr())
}

func (s XYZTData) NewX(n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}

func (s XYZTData) Y() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return capnp.Float32List(p.List()), err
}

func (s XYZTData) HasY() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s XYZTData) SetY(v capnp.Float32List) error {
	return capnp.Struct(s).SetPtr(1, v.ToPtr())
}

func (s XYZTData) NewY(n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(1, l.ToPtr())
	return l, err
}

func (s XYZTData) Z() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return capnp.Float32List(p.List()), err
}

func (s XYZTData) HasZ() bool {
	return capnp.Struct(s).HasPtr(2)
}

func (s XYZTData) SetZ(v capnp.Float32List) error {
	return capnp.Struct(s).SetPtr(2, v.ToPtr())
}

func (s XYZTData) NewZ(n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(2, l.ToPtr())
	return l, err
}

func (s XYZTData) T() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(3)
	return capnp.Float32List(p.List()), err
}

func (s XYZTData) HasT() bool {
	return capnp.Struct(s).HasPtr(3)
}

func (s XYZTData) SetT(v capnp.Float32List) error {
	return capnp.Struct(s).SetPtr(3, v.ToPtr())
}

func (s XYZTData) NewT(n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(3, l.ToPtr())
	return l, err
}

type ModelDataV2 capnp.Struct

func NewModelDataV2(s *capnp.Segment) (ModelDataV2, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 2})
	return ModelDataV2(st), err
}

func NewRootModelDataV2(s *capnp.Segment) (ModelDataV2, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 2})
	return ModelDataV2(st), err
}

func ReadRootModelDataV2(msg *capnp.Message) (ModelDataV2, error) {
	root, err := msg.Root()
	return ModelDataV2(root.Struct()), err
}

func (s ModelDataV2) FrameId() uint32 {
	return capnp.Struct(s).Uint32(0)
}

func (s ModelDataV2) SetFrameId(v uint32) {
	capnp.Struct(s).SetUint32(0, v)
}

func (s ModelDataV2) Position() (XYZTData, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return XYZTData(p.Struct()), err
}

func (s ModelDataV2) HasPosition() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s ModelDataV2) SetPosition(v XYZTData) error {
	return capnp.Struct(s).SetPtr(0, capnp.Struct(v).ToPtr())
}

func (s ModelDataV2) NewPosition() (XYZTData, error) {
	ss, err := NewXYZTData(capnp.Struct(s).Segment())
	if err != nil {
		return XYZTData{}, err
	}
	err = capnp.Struct(s).SetPtr(0, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s ModelDataV2) Velocity() (XYZTData, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return XYZTData(p.Struct()), err
}

func (s ModelDataV2) HasVelocity() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s ModelDataV2) SetVelocity(v XYZTData) error {
	return capnp.Struct(s).SetPtr(1, capnp.Struct(v).ToPtr())
}

func (s ModelDataV2) NewVelocity() (XYZTData, error) {
	ss, err := NewXYZTData(capnp.Struct(s).Segment())
	if err != nil {
		return XYZTData{}, err
	}
	err = capnp.Struct(s).SetPtr(1, capnp.Struct(ss).ToPtr())
	return ss, err
}

type LongitudinalPlanSource uint16

// Values of LongitudinalPlanSource.
const (
	LongitudinalPlanSource_cruise  LongitudinalPlanSource = 0
	LongitudinalPlanSource_leadOne LongitudinalPlanSource = 1
	LongitudinalPlanSource_leadTwo LongitudinalPlanSource = 2
	LongitudinalPlanSource_model   LongitudinalPlanSource = 3
)

// String returns the enum's constant name.
func (c LongitudinalPlanSource) String() string {
	switch c {
	case LongitudinalPlanSource_cruise:
		return "cruise"
	case LongitudinalPlanSource_leadOne:
		return "leadOne"
	case LongitudinalPlanSource_leadTwo:
		return "leadTwo"
	case LongitudinalPlanSource_model:
		return "model"
	default:
		return ""
	}
}

type LongitudinalPlan capnp.Struct

func NewLongitudinalPlan(s *capnp.Segment) (LongitudinalPlan, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 88, PointerCount: 0})
	return LongitudinalPlan(st), err
}

func NewRootLongitudinalPlan(s *capnp.Segment) (LongitudinalPlan, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 88, PointerCount: 0})
	return LongitudinalPlan(st), err
}

func ReadRootLongitudinalPlan(msg *capnp.Message) (LongitudinalPlan, error) {
	root, err := msg.Root()
	return LongitudinalPlan(root.Struct()), err
}

func (s LongitudinalPlan) MdMonoTime() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s LongitudinalPlan) SetMdMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s LongitudinalPlan) RadarStateMonoTime() uint64 {
	return capnp.Struct(s).Uint64(8)
}

func (s LongitudinalPlan) SetRadarStateMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(8, v)
}

func (s LongitudinalPlan) ProcessingDelay() float32 {
	return capnp.Struct(s).Float32(16)
}

func (s LongitudinalPlan) SetProcessingDelay(v float32) {
	capnp.Struct(s).SetFloat32(16, v)
}

func (s LongitudinalPlan) VCruise() float32 {
	return capnp.Struct(s).Float32(20)
}

func (s LongitudinalPlan) SetVCruise(v float32) {
	capnp.Struct(s).SetFloat32(20, v)
}

func (s LongitudinalPlan) ACruise() float32 {
	return capnp.Struct(s).Float32(24)
}

func (s LongitudinalPlan) SetACruise(v float32) {
	capnp.Struct(s).SetFloat32(24, v)
}

func (s LongitudinalPlan) VStart() float32 {
	return capnp.Struct(s).Float32(28)
}

func (s LongitudinalPlan) SetVStart(v float32) {
	capnp.Struct(s).SetFloat32(28, v)
}

func (s LongitudinalPlan) AStart() float32 {
	return capnp.Struct(s).Float32(32)
}

func (s LongitudinalPlan) SetAStart(v float32) {
	capnp.Struct(s).SetFloat32(32, v)
}

func (s LongitudinalPlan) VTarget() float32 {
	return capnp.Struct(s).Float32(36)
}

func (s LongitudinalPlan) SetVTarget(v float32) {
	capnp.Struct(s).SetFloat32(36, v)
}

func (s LongitudinalPlan) ATarget() float32 {
	return capnp.Struct(s).Float32(40)
}

func (s LongitudinalPlan) SetATarget(v float32) {
	capnp.Struct(s).SetFloat32(40, v)
}

func (s LongitudinalPlan) VTargetFuture() float32 {
	return capnp.Struct(s).Float32(44)
}

func (s LongitudinalPlan) SetVTargetFuture(v float32) {
	capnp.Struct(s).SetFloat32(44, v)
}

func (s LongitudinalPlan) DRel1() float32 {
	return capnp.Struct(s).Float32(48)
}

func (s LongitudinalPlan) SetDRel1(v float32) {
	capnp.Struct(s).SetFloat32(48, v)
}

func (s LongitudinalPlan) YRel1() float32 {
	return capnp.Struct(s).Float32(52)
}

func (s LongitudinalPlan) SetYRel1(v float32) {
	capnp.Struct(s).SetFloat32(52, v)
}

func (s LongitudinalPlan) VRel1() float32 {
	return capnp.Struct(s).Float32(56)
}

func (s LongitudinalPlan) SetVRel1(v float32) {
	capnp.Struct(s).SetFloat32(56, v)
}

func (s LongitudinalPlan) DRel2() float32 {
	return capnp.Struct(s).Float32(60)
}

func (s LongitudinalPlan) SetDRel2(v float32) {
	capnp.Struct(s).SetFloat32(60, v)
}

func (s LongitudinalPlan) YRel2() float32 {
	return capnp.Struct(s).Float32(64)
}

func (s LongitudinalPlan) SetYRel2(v float32) {
	capnp.Struct(s).SetFloat32(64, v)
}

func (s LongitudinalPlan) VRel2() float32 {
	return capnp.Struct(s).Float32(68)
}

func (s LongitudinalPlan) SetVRel2(v float32) {
	capnp.Struct(s).SetFloat32(68, v)
}

func (s LongitudinalPlan) TargetSpeedCamera() float32 {
	return capnp.Struct(s).Float32(72)
}

func (s LongitudinalPlan) SetTargetSpeedCamera(v float32) {
	capnp.Struct(s).SetFloat32(72, v)
}

func (s LongitudinalPlan) TargetSpeedCameraDist() float32 {
	return capnp.Struct(s).Float32(76)
}

func (s LongitudinalPlan) SetTargetSpeedCameraDist(v float32) {
	capnp.Struct(s).SetFloat32(76, v)
}

func (s LongitudinalPlan) LongitudinalPlanSource() LongitudinalPlanSource {
	return LongitudinalPlanSource(capnp.Struct(s).Uint16(80))
}

func (s LongitudinalPlan) SetLongitudinalPlanSource(v LongitudinalPlanSource) {
	capnp.Struct(s).SetUint16(80, uint16(v))
}

func (s LongitudinalPlan) HasLead() bool {
	return capnp.Struct(s).Bit(656)
}

func (s LongitudinalPlan) SetHasLead(v bool) {
	capnp.Struct(s).SetBit(656, v)
}

func (s LongitudinalPlan) HasLead2() bool {
	return capnp.Struct(s).Bit(657)
}

func (s LongitudinalPlan) SetHasLead2(v bool) {
	capnp.Struct(s).SetBit(657, v)
}

func (s LongitudinalPlan) Fcw() bool {
	return capnp.Struct(s).Bit(658)
}

func (s LongitudinalPlan) SetFcw(v bool) {
	capnp.Struct(s).SetBit(658, v)
}

func (s LongitudinalPlan) ModelLongActive() bool {
	return capnp.Struct(s).Bit(659)
}

func (s LongitudinalPlan) SetModelLongActive(v bool) {
	capnp.Struct(s).SetBit(659, v)
}
