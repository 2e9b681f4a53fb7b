package messages

import (
	"github.com/creachadair/mds/value"
	"github.com/danderson/sdlrpc"
)

// GPSData is a GPS fix, nested in vehicle data.
type GPSData struct{ p *sdlrpc.Params }

// Params returns the underlying parameter store.
func (r GPSData) Params() *sdlrpc.Params { return r.p }

// NewGPSData returns a GPSData with the required coordinates set.
func NewGPSData(longitude, latitude float64) GPSData {
	ret := GPSData{sdlrpc.NewParams()}
	ret.SetLongitudeDegrees(longitude)
	ret.SetLatitudeDegrees(latitude)
	return ret
}

// WrapGPSData returns a GPSData view of p. Changes made through the
// view are made to p.
func WrapGPSData(p *sdlrpc.Params) GPSData { return GPSData{p} }

var (
	gpsLongitudeDegrees = sdlrpc.FloatField("longitudeDegrees")
	gpsLatitudeDegrees  = sdlrpc.FloatField("latitudeDegrees")
	gpsUTCYear          = sdlrpc.IntField("utcYear")
	gpsUTCMonth         = sdlrpc.IntField("utcMonth")
	gpsUTCDay           = sdlrpc.IntField("utcDay")
	gpsUTCHours         = sdlrpc.IntField("utcHours")
	gpsUTCMinutes       = sdlrpc.IntField("utcMinutes")
	gpsUTCSeconds       = sdlrpc.IntField("utcSeconds")
	gpsCompassDirection = sdlrpc.EnumField[CompassDirection]("compassDirection")
	gpsPDOP             = sdlrpc.FloatField("pdop")
	gpsHDOP             = sdlrpc.FloatField("hdop")
	gpsVDOP             = sdlrpc.FloatField("vdop")
	gpsActual           = sdlrpc.BoolField("actual")
	gpsSatellites       = sdlrpc.IntField("satellites")
	gpsDimension        = sdlrpc.EnumField[Dimension]("dimension")
	gpsAltitude         = sdlrpc.FloatField("altitude")
	gpsHeading          = sdlrpc.FloatField("heading")
	gpsSpeed            = sdlrpc.FloatField("speed")
	gpsShifted          = sdlrpc.BoolField("shifted")
)

func (r GPSData) LongitudeDegrees() value.Maybe[float64] { return gpsLongitudeDegrees.Get(r) }
func (r GPSData) SetLongitudeDegrees(v float64)          { gpsLongitudeDegrees.Set(r, v) }

func (r GPSData) LatitudeDegrees() value.Maybe[float64] { return gpsLatitudeDegrees.Get(r) }
func (r GPSData) SetLatitudeDegrees(v float64)          { gpsLatitudeDegrees.Set(r, v) }

// UTCYear through UTCSeconds are the time of the fix, in UTC.
func (r GPSData) UTCYear() value.Maybe[int64] { return gpsUTCYear.Get(r) }
func (r GPSData) SetUTCYear(v int64)          { gpsUTCYear.Set(r, v) }

func (r GPSData) UTCMonth() value.Maybe[int64] { return gpsUTCMonth.Get(r) }
func (r GPSData) SetUTCMonth(v int64)          { gpsUTCMonth.Set(r, v) }

func (r GPSData) UTCDay() value.Maybe[int64] { return gpsUTCDay.Get(r) }
func (r GPSData) SetUTCDay(v int64)          { gpsUTCDay.Set(r, v) }

func (r GPSData) UTCHours() value.Maybe[int64] { return gpsUTCHours.Get(r) }
func (r GPSData) SetUTCHours(v int64)          { gpsUTCHours.Set(r, v) }

func (r GPSData) UTCMinutes() value.Maybe[int64] { return gpsUTCMinutes.Get(r) }
func (r GPSData) SetUTCMinutes(v int64)          { gpsUTCMinutes.Set(r, v) }

func (r GPSData) UTCSeconds() value.Maybe[int64] { return gpsUTCSeconds.Get(r) }
func (r GPSData) SetUTCSeconds(v int64)          { gpsUTCSeconds.Set(r, v) }

func (r GPSData) CompassDirection() value.Maybe[CompassDirection] { return gpsCompassDirection.Get(r) }
func (r GPSData) SetCompassDirection(v CompassDirection)          { gpsCompassDirection.Set(r, v) }

// PDOP, HDOP and VDOP are the positional, horizontal and vertical
// dilution of precision.
func (r GPSData) PDOP() value.Maybe[float64] { return gpsPDOP.Get(r) }
func (r GPSData) SetPDOP(v float64)          { gpsPDOP.Set(r, v) }

func (r GPSData) HDOP() value.Maybe[float64] { return gpsHDOP.Get(r) }
func (r GPSData) SetHDOP(v float64)          { gpsHDOP.Set(r, v) }

func (r GPSData) VDOP() value.Maybe[float64] { return gpsVDOP.Get(r) }
func (r GPSData) SetVDOP(v float64)          { gpsVDOP.Set(r, v) }

// Actual reports whether the position is a real fix rather than
// dead reckoning.
func (r GPSData) Actual() value.Maybe[bool] { return gpsActual.Get(r) }
func (r GPSData) SetActual(v bool)          { gpsActual.Set(r, v) }

func (r GPSData) Satellites() value.Maybe[int64] { return gpsSatellites.Get(r) }
func (r GPSData) SetSatellites(v int64)          { gpsSatellites.Set(r, v) }

func (r GPSData) Dimension() value.Maybe[Dimension] { return gpsDimension.Get(r) }
func (r GPSData) SetDimension(v Dimension)          { gpsDimension.Set(r, v) }

// Altitude is in meters.
func (r GPSData) Altitude() value.Maybe[float64] { return gpsAltitude.Get(r) }
func (r GPSData) SetAltitude(v float64)          { gpsAltitude.Set(r, v) }

// Heading is in degrees, clockwise from north.
func (r GPSData) Heading() value.Maybe[float64] { return gpsHeading.Get(r) }
func (r GPSData) SetHeading(v float64)          { gpsHeading.Set(r, v) }

// Speed is in km/h.
func (r GPSData) Speed() value.Maybe[float64] { return gpsSpeed.Get(r) }
func (r GPSData) SetSpeed(v float64)          { gpsSpeed.Set(r, v) }

// Shifted reports whether the coordinates are deliberately offset,
// as required in some regions.
func (r GPSData) Shifted() value.Maybe[bool] { return gpsShifted.Get(r) }
func (r GPSData) SetShifted(v bool)          { gpsShifted.Set(r, v) }

// FuelRange is the estimated range of the vehicle on one fuel type.
type FuelRange struct{ p *sdlrpc.Params }

func (r FuelRange) Params() *sdlrpc.Params { return r.p }

// NewFuelRange returns a FuelRange for the given fuel type and range
// in km.
func NewFuelRange(typ FuelType, km float64) FuelRange {
	ret := FuelRange{sdlrpc.NewParams()}
	ret.SetType(typ)
	ret.SetRange(km)
	return ret
}

// WrapFuelRange returns a FuelRange view of p.
func WrapFuelRange(p *sdlrpc.Params) FuelRange { return FuelRange{p} }

var (
	frType  = sdlrpc.EnumField[FuelType]("type")
	frRange = sdlrpc.FloatField("range")
)

func (r FuelRange) Type() value.Maybe[FuelType] { return frType.Get(r) }
func (r FuelRange) SetType(v FuelType)          { frType.Set(r, v) }

// Range is in km.
func (r FuelRange) Range() value.Maybe[float64] { return frRange.Get(r) }
func (r FuelRange) SetRange(v float64)          { frRange.Set(r, v) }
