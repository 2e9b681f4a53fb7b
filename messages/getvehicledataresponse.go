package messages

import (
	"github.com/creachadair/mds/value"
	"github.com/danderson/sdlrpc"
)

// GetVehicleDataResponse carries the vehicle data selected by a
// GetVehicleData request. Items that were not requested, or that the
// vehicle could not provide, are absent.
type GetVehicleDataResponse struct{ Response }

// NewGetVehicleDataResponse returns an empty response to the
// GetVehicleData request with the given correlation ID.
func NewGetVehicleDataResponse(correlationID int32) GetVehicleDataResponse {
	return GetVehicleDataResponse{NewResponse(sdlrpc.GetVehicleData, correlationID)}
}

// AsGetVehicleDataResponse returns m as a GetVehicleDataResponse, if
// m is a GetVehicleData response.
func AsGetVehicleDataResponse(m *sdlrpc.Message) (GetVehicleDataResponse, bool) {
	if m.Function() != sdlrpc.GetVehicleData || m.Kind() != sdlrpc.Response {
		return GetVehicleDataResponse{}, false
	}
	return GetVehicleDataResponse{Response{m}}, true
}

var (
	vdrGPS                       = sdlrpc.StructField("gps", WrapGPSData)
	vdrSpeed                     = sdlrpc.FloatField("speed")
	vdrRPM                       = sdlrpc.IntField("rpm")
	vdrFuelLevel                 = sdlrpc.FloatField("fuelLevel")
	vdrFuelLevelState            = sdlrpc.EnumField[ComponentVolumeStatus]("fuelLevel_State")
	vdrInstantFuelConsumption    = sdlrpc.FloatField("instantFuelConsumption")
	vdrExternalTemperature       = sdlrpc.FloatField("externalTemperature")
	vdrVIN                       = sdlrpc.StringField("vin")
	vdrPRNDL                     = sdlrpc.EnumField[PRNDL]("prndl")
	vdrEngineTorque              = sdlrpc.FloatField("engineTorque")
	vdrEngineOilLife             = sdlrpc.FloatField("engineOilLife")
	vdrOdometer                  = sdlrpc.IntField("odometer")
	vdrAccPedalPosition          = sdlrpc.FloatField("accPedalPosition")
	vdrSteeringWheelAngle        = sdlrpc.FloatField("steeringWheelAngle")
	vdrFuelRange                 = sdlrpc.ListField("fuelRange", sdlrpc.StructCodec(WrapFuelRange))
	vdrTurnSignal                = sdlrpc.EnumField[TurnSignal]("turnSignal")
	vdrElectronicParkBrakeStatus = sdlrpc.EnumField[ElectronicParkBrakeStatus]("electronicParkBrakeStatus")
	vdrCloudAppVehicleID         = sdlrpc.StringField("cloudAppVehicleID")
)

// GPS is the vehicle's position.
func (r GetVehicleDataResponse) GPS() value.Maybe[GPSData] { return vdrGPS.Get(r) }
func (r GetVehicleDataResponse) SetGPS(v GPSData)          { vdrGPS.Set(r, v) }

// Speed is the vehicle speed in km/h.
func (r GetVehicleDataResponse) Speed() value.Maybe[float64] { return vdrSpeed.Get(r) }
func (r GetVehicleDataResponse) SetSpeed(v float64)          { vdrSpeed.Set(r, v) }

// RPM is the engine speed in revolutions per minute.
func (r GetVehicleDataResponse) RPM() value.Maybe[int64] { return vdrRPM.Get(r) }
func (r GetVehicleDataResponse) SetRPM(v int64)          { vdrRPM.Set(r, v) }

// FuelLevel is the fuel level in the tank, in percent.
func (r GetVehicleDataResponse) FuelLevel() value.Maybe[float64] { return vdrFuelLevel.Get(r) }
func (r GetVehicleDataResponse) SetFuelLevel(v float64)          { vdrFuelLevel.Set(r, v) }

// FuelLevelState is the coarse fuel level of the tank.
func (r GetVehicleDataResponse) FuelLevelState() value.Maybe[ComponentVolumeStatus] { return vdrFuelLevelState.Get(r) }
func (r GetVehicleDataResponse) SetFuelLevelState(v ComponentVolumeStatus)          { vdrFuelLevelState.Set(r, v) }

// InstantFuelConsumption is the fuel consumption in ml/s.
func (r GetVehicleDataResponse) InstantFuelConsumption() value.Maybe[float64] { return vdrInstantFuelConsumption.Get(r) }
func (r GetVehicleDataResponse) SetInstantFuelConsumption(v float64)          { vdrInstantFuelConsumption.Set(r, v) }

// ExternalTemperature is the outside temperature in degrees Celsius.
func (r GetVehicleDataResponse) ExternalTemperature() value.Maybe[float64] { return vdrExternalTemperature.Get(r) }
func (r GetVehicleDataResponse) SetExternalTemperature(v float64)          { vdrExternalTemperature.Set(r, v) }

func (r GetVehicleDataResponse) VIN() value.Maybe[string] { return vdrVIN.Get(r) }
func (r GetVehicleDataResponse) SetVIN(v string)          { vdrVIN.Set(r, v) }

func (r GetVehicleDataResponse) PRNDL() value.Maybe[PRNDL] { return vdrPRNDL.Get(r) }
func (r GetVehicleDataResponse) SetPRNDL(v PRNDL)          { vdrPRNDL.Set(r, v) }

// EngineTorque is the torque at the drive shaft in Nm.
func (r GetVehicleDataResponse) EngineTorque() value.Maybe[float64] { return vdrEngineTorque.Get(r) }
func (r GetVehicleDataResponse) SetEngineTorque(v float64)          { vdrEngineTorque.Set(r, v) }

// EngineOilLife is the remaining engine oil life, in percent.
func (r GetVehicleDataResponse) EngineOilLife() value.Maybe[float64] { return vdrEngineOilLife.Get(r) }
func (r GetVehicleDataResponse) SetEngineOilLife(v float64)          { vdrEngineOilLife.Set(r, v) }

// Odometer is the distance travelled, in km.
func (r GetVehicleDataResponse) Odometer() value.Maybe[int64] { return vdrOdometer.Get(r) }
func (r GetVehicleDataResponse) SetOdometer(v int64)          { vdrOdometer.Set(r, v) }

// AccPedalPosition is how far the accelerator is depressed, in
// percent.
func (r GetVehicleDataResponse) AccPedalPosition() value.Maybe[float64] { return vdrAccPedalPosition.Get(r) }
func (r GetVehicleDataResponse) SetAccPedalPosition(v float64)          { vdrAccPedalPosition.Set(r, v) }

// SteeringWheelAngle is in degrees, positive to the right.
func (r GetVehicleDataResponse) SteeringWheelAngle() value.Maybe[float64] { return vdrSteeringWheelAngle.Get(r) }
func (r GetVehicleDataResponse) SetSteeringWheelAngle(v float64)          { vdrSteeringWheelAngle.Set(r, v) }

// FuelRange is the estimated range per fuel type. Entries that are
// not structures are skipped.
func (r GetVehicleDataResponse) FuelRange() value.Maybe[[]FuelRange] { return vdrFuelRange.Get(r) }
func (r GetVehicleDataResponse) SetFuelRange(v []FuelRange)          { vdrFuelRange.Set(r, v) }

func (r GetVehicleDataResponse) TurnSignal() value.Maybe[TurnSignal] { return vdrTurnSignal.Get(r) }
func (r GetVehicleDataResponse) SetTurnSignal(v TurnSignal)          { vdrTurnSignal.Set(r, v) }

func (r GetVehicleDataResponse) ElectronicParkBrakeStatus() value.Maybe[ElectronicParkBrakeStatus] { return vdrElectronicParkBrakeStatus.Get(r) }
func (r GetVehicleDataResponse) SetElectronicParkBrakeStatus(v ElectronicParkBrakeStatus)          { vdrElectronicParkBrakeStatus.Set(r, v) }

func (r GetVehicleDataResponse) CloudAppVehicleID() value.Maybe[string] { return vdrCloudAppVehicleID.Get(r) }
func (r GetVehicleDataResponse) SetCloudAppVehicleID(v string)          { vdrCloudAppVehicleID.Set(r, v) }
