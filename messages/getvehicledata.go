package messages

import (
	"github.com/creachadair/mds/value"
	"github.com/danderson/sdlrpc"
)

// GetVehicleData requests a one-time reading of vehicle data. Each
// flag selects one data item to include in the response.
type GetVehicleData struct{ *sdlrpc.Message }

// NewGetVehicleData returns an empty GetVehicleData request.
func NewGetVehicleData() GetVehicleData {
	return GetVehicleData{sdlrpc.NewRequest(sdlrpc.GetVehicleData)}
}

// AsGetVehicleData returns m as a GetVehicleData, if m is a
// GetVehicleData request.
func AsGetVehicleData(m *sdlrpc.Message) (GetVehicleData, bool) {
	if m.Function() != sdlrpc.GetVehicleData || m.Kind() != sdlrpc.Request {
		return GetVehicleData{}, false
	}
	return GetVehicleData{m}, true
}

// Requested returns the keys of all data items whose flag is set to
// true, in the order they were set.
func (r GetVehicleData) Requested() []string {
	var ret []string
	for k, v := range r.Params().All() {
		if b, ok := v.AsBool(); ok && b {
			ret = append(ret, k)
		}
	}
	return ret
}

var (
	gvdGPS                       = sdlrpc.BoolField("gps")
	gvdSpeed                     = sdlrpc.BoolField("speed")
	gvdRPM                       = sdlrpc.BoolField("rpm")
	gvdFuelLevel                 = sdlrpc.BoolField("fuelLevel")
	gvdFuelLevelState            = sdlrpc.BoolField("fuelLevel_State")
	gvdInstantFuelConsumption    = sdlrpc.BoolField("instantFuelConsumption")
	gvdExternalTemperature       = sdlrpc.BoolField("externalTemperature")
	gvdVIN                       = sdlrpc.BoolField("vin")
	gvdPRNDL                     = sdlrpc.BoolField("prndl")
	gvdTirePressure              = sdlrpc.BoolField("tirePressure")
	gvdEngineTorque              = sdlrpc.BoolField("engineTorque")
	gvdEngineOilLife             = sdlrpc.BoolField("engineOilLife")
	gvdOdometer                  = sdlrpc.BoolField("odometer")
	gvdBeltStatus                = sdlrpc.BoolField("beltStatus")
	gvdBodyInformation           = sdlrpc.BoolField("bodyInformation")
	gvdDeviceStatus              = sdlrpc.BoolField("deviceStatus")
	gvdDriverBraking             = sdlrpc.BoolField("driverBraking")
	gvdWiperStatus               = sdlrpc.BoolField("wiperStatus")
	gvdHeadLampStatus            = sdlrpc.BoolField("headLampStatus")
	gvdAccPedalPosition          = sdlrpc.BoolField("accPedalPosition")
	gvdSteeringWheelAngle        = sdlrpc.BoolField("steeringWheelAngle")
	gvdECallInfo                 = sdlrpc.BoolField("eCallInfo")
	gvdAirbagStatus              = sdlrpc.BoolField("airbagStatus")
	gvdEmergencyEvent            = sdlrpc.BoolField("emergencyEvent")
	gvdClusterModeStatus         = sdlrpc.BoolField("clusterModeStatus")
	gvdMyKey                     = sdlrpc.BoolField("myKey")
	gvdFuelRange                 = sdlrpc.BoolField("fuelRange")
	gvdTurnSignal                = sdlrpc.BoolField("turnSignal")
	gvdElectronicParkBrakeStatus = sdlrpc.BoolField("electronicParkBrakeStatus")
	gvdCloudAppVehicleID         = sdlrpc.BoolField("cloudAppVehicleID")
)

// GPS selects the vehicle's GPS position.
func (r GetVehicleData) GPS() value.Maybe[bool] { return gvdGPS.Get(r) }
func (r GetVehicleData) SetGPS(v bool)          { gvdGPS.Set(r, v) }

func (r GetVehicleData) Speed() value.Maybe[bool] { return gvdSpeed.Get(r) }
func (r GetVehicleData) SetSpeed(v bool)          { gvdSpeed.Set(r, v) }

func (r GetVehicleData) RPM() value.Maybe[bool] { return gvdRPM.Get(r) }
func (r GetVehicleData) SetRPM(v bool)          { gvdRPM.Set(r, v) }

func (r GetVehicleData) FuelLevel() value.Maybe[bool] { return gvdFuelLevel.Get(r) }
func (r GetVehicleData) SetFuelLevel(v bool)          { gvdFuelLevel.Set(r, v) }

// FuelLevelState selects the fuel level state. Its wire key is
// fuelLevel_State, older head units also accept fuelLevelState.
func (r GetVehicleData) FuelLevelState() value.Maybe[bool] { return gvdFuelLevelState.Get(r) }
func (r GetVehicleData) SetFuelLevelState(v bool)          { gvdFuelLevelState.Set(r, v) }

func (r GetVehicleData) InstantFuelConsumption() value.Maybe[bool] { return gvdInstantFuelConsumption.Get(r) }
func (r GetVehicleData) SetInstantFuelConsumption(v bool)          { gvdInstantFuelConsumption.Set(r, v) }

func (r GetVehicleData) ExternalTemperature() value.Maybe[bool] { return gvdExternalTemperature.Get(r) }
func (r GetVehicleData) SetExternalTemperature(v bool)          { gvdExternalTemperature.Set(r, v) }

func (r GetVehicleData) VIN() value.Maybe[bool] { return gvdVIN.Get(r) }
func (r GetVehicleData) SetVIN(v bool)          { gvdVIN.Set(r, v) }

func (r GetVehicleData) PRNDL() value.Maybe[bool] { return gvdPRNDL.Get(r) }
func (r GetVehicleData) SetPRNDL(v bool)          { gvdPRNDL.Set(r, v) }

func (r GetVehicleData) TirePressure() value.Maybe[bool] { return gvdTirePressure.Get(r) }
func (r GetVehicleData) SetTirePressure(v bool)          { gvdTirePressure.Set(r, v) }

func (r GetVehicleData) EngineTorque() value.Maybe[bool] { return gvdEngineTorque.Get(r) }
func (r GetVehicleData) SetEngineTorque(v bool)          { gvdEngineTorque.Set(r, v) }

func (r GetVehicleData) EngineOilLife() value.Maybe[bool] { return gvdEngineOilLife.Get(r) }
func (r GetVehicleData) SetEngineOilLife(v bool)          { gvdEngineOilLife.Set(r, v) }

func (r GetVehicleData) Odometer() value.Maybe[bool] { return gvdOdometer.Get(r) }
func (r GetVehicleData) SetOdometer(v bool)          { gvdOdometer.Set(r, v) }

func (r GetVehicleData) BeltStatus() value.Maybe[bool] { return gvdBeltStatus.Get(r) }
func (r GetVehicleData) SetBeltStatus(v bool)          { gvdBeltStatus.Set(r, v) }

func (r GetVehicleData) BodyInformation() value.Maybe[bool] { return gvdBodyInformation.Get(r) }
func (r GetVehicleData) SetBodyInformation(v bool)          { gvdBodyInformation.Set(r, v) }

func (r GetVehicleData) DeviceStatus() value.Maybe[bool] { return gvdDeviceStatus.Get(r) }
func (r GetVehicleData) SetDeviceStatus(v bool)          { gvdDeviceStatus.Set(r, v) }

func (r GetVehicleData) DriverBraking() value.Maybe[bool] { return gvdDriverBraking.Get(r) }
func (r GetVehicleData) SetDriverBraking(v bool)          { gvdDriverBraking.Set(r, v) }

func (r GetVehicleData) WiperStatus() value.Maybe[bool] { return gvdWiperStatus.Get(r) }
func (r GetVehicleData) SetWiperStatus(v bool)          { gvdWiperStatus.Set(r, v) }

func (r GetVehicleData) HeadLampStatus() value.Maybe[bool] { return gvdHeadLampStatus.Get(r) }
func (r GetVehicleData) SetHeadLampStatus(v bool)          { gvdHeadLampStatus.Set(r, v) }

func (r GetVehicleData) AccPedalPosition() value.Maybe[bool] { return gvdAccPedalPosition.Get(r) }
func (r GetVehicleData) SetAccPedalPosition(v bool)          { gvdAccPedalPosition.Set(r, v) }

func (r GetVehicleData) SteeringWheelAngle() value.Maybe[bool] { return gvdSteeringWheelAngle.Get(r) }
func (r GetVehicleData) SetSteeringWheelAngle(v bool)          { gvdSteeringWheelAngle.Set(r, v) }

func (r GetVehicleData) ECallInfo() value.Maybe[bool] { return gvdECallInfo.Get(r) }
func (r GetVehicleData) SetECallInfo(v bool)          { gvdECallInfo.Set(r, v) }

func (r GetVehicleData) AirbagStatus() value.Maybe[bool] { return gvdAirbagStatus.Get(r) }
func (r GetVehicleData) SetAirbagStatus(v bool)          { gvdAirbagStatus.Set(r, v) }

func (r GetVehicleData) EmergencyEvent() value.Maybe[bool] { return gvdEmergencyEvent.Get(r) }
func (r GetVehicleData) SetEmergencyEvent(v bool)          { gvdEmergencyEvent.Set(r, v) }

func (r GetVehicleData) ClusterModeStatus() value.Maybe[bool] { return gvdClusterModeStatus.Get(r) }
func (r GetVehicleData) SetClusterModeStatus(v bool)          { gvdClusterModeStatus.Set(r, v) }

func (r GetVehicleData) MyKey() value.Maybe[bool] { return gvdMyKey.Get(r) }
func (r GetVehicleData) SetMyKey(v bool)          { gvdMyKey.Set(r, v) }

// FuelRange selects the estimated range for each fuel type.
func (r GetVehicleData) FuelRange() value.Maybe[bool] { return gvdFuelRange.Get(r) }
func (r GetVehicleData) SetFuelRange(v bool)          { gvdFuelRange.Set(r, v) }

func (r GetVehicleData) TurnSignal() value.Maybe[bool] { return gvdTurnSignal.Get(r) }
func (r GetVehicleData) SetTurnSignal(v bool)          { gvdTurnSignal.Set(r, v) }

func (r GetVehicleData) ElectronicParkBrakeStatus() value.Maybe[bool] { return gvdElectronicParkBrakeStatus.Get(r) }
func (r GetVehicleData) SetElectronicParkBrakeStatus(v bool)          { gvdElectronicParkBrakeStatus.Set(r, v) }

// CloudAppVehicleID selects the vehicle's identifier for cloud apps.
func (r GetVehicleData) CloudAppVehicleID() value.Maybe[bool] { return gvdCloudAppVehicleID.Get(r) }
func (r GetVehicleData) SetCloudAppVehicleID(v bool)          { gvdCloudAppVehicleID.Set(r, v) }
