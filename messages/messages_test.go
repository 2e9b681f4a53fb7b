package messages

import (
	"errors"
	"testing"

	"github.com/danderson/sdlrpc"
	"github.com/google/go-cmp/cmp"
)

func TestSystemRequestMissingRequestType(t *testing.T) {
	r := NewSystemRequest()
	r.SetFileName("policy.json")

	err := r.Validate()
	var verr *sdlrpc.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() err = %v, want ValidationError", err)
	}
	if len(verr.Problems) != 1 {
		t.Fatalf("got %d problems, want 1: %v", len(verr.Problems), verr)
	}
	var missing *sdlrpc.MissingFieldError
	if !errors.As(verr.Problems[0], &missing) {
		t.Fatalf("problem is %T, want MissingFieldError", verr.Problems[0])
	}
	if missing.Key != "requestType" || missing.Function != sdlrpc.SystemRequest {
		t.Errorf("MissingFieldError = %+v, want SystemRequest requestType", missing)
	}

	r.SetRequestType(RequestProprietary)
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() with requestType got err: %v", err)
	}
}

func TestGetVehicleDataValidates(t *testing.T) {
	r := NewGetVehicleData()
	r.SetSpeed(true)
	r.SetVIN(true)
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() got err: %v", err)
	}
	if r.State() != sdlrpc.Validated {
		t.Errorf("State() = %v, want validated", r.State())
	}
	if diff := cmp.Diff(r.Requested(), []string{"speed", "vin"}); diff != "" {
		t.Errorf("Requested() wrong (-got+want):\n%s", diff)
	}

	r.SetSpeed(false)
	if diff := cmp.Diff(r.Requested(), []string{"vin"}); diff != "" {
		t.Errorf("Requested() after clearing speed wrong (-got+want):\n%s", diff)
	}

	r.Params().Set("rpm", sdlrpc.String("yes"))
	if err := r.Validate(); err == nil {
		t.Error("Validate() with string rpm flag succeeded")
	}
}

func TestFuelLevelStateAlias(t *testing.T) {
	r := NewGetVehicleData()
	r.Set("fuelLevelState", sdlrpc.Bool(true))
	if got, ok := r.FuelLevelState().GetOK(); !ok || !got {
		t.Errorf("FuelLevelState() = %v, %v, want true", got, ok)
	}
	if diff := cmp.Diff(r.Params().Keys(), []string{"fuelLevel_State"}); diff != "" {
		t.Errorf("wrong stored keys (-got+want):\n%s", diff)
	}

	resp := NewGetVehicleDataResponse(1)
	resp.SetFuelLevelState(VolumeLow)
	got, ok := resp.Get("fuelLevelState", sdlrpc.KindEnum).GetOK()
	if !ok || !got.Equal(sdlrpc.String("LOW")) {
		t.Errorf("response fuelLevelState = %v, %v, want LOW", got, ok)
	}
}

func TestLegacySystemRequest(t *testing.T) {
	r := NewLegacySystemRequest()
	if r.Function() != sdlrpc.EncodedSyncPData || !r.Legacy() {
		t.Fatalf("legacy request function = %v, want EncodedSyncPData", r.Function())
	}
	r.SetRequestType(RequestHTTP)
	r.SetLegacyData([]string{"chunk1", "chunk2"})

	if diff := cmp.Diff(r.Data().Get(), []string{"chunk1", "chunk2"}); diff != "" {
		t.Errorf("Data() wrong (-got+want):\n%s", diff)
	}
	if diff := cmp.Diff(r.Params().Keys(), []string{"requestType", "data"}); diff != "" {
		t.Errorf("wrong stored keys (-got+want):\n%s", diff)
	}

	bs, err := sdlrpc.Marshal(r.Message)
	if !errors.Is(err, sdlrpc.ErrMissingCorrelation) {
		t.Fatalf("Marshal without correlation ID err = %v", err)
	}
	if err := r.SetCorrelationID(4); err != nil {
		t.Fatal(err)
	}
	bs, err = sdlrpc.Marshal(r.Message)
	if err != nil {
		t.Fatalf("Marshal got err: %v", err)
	}
	want := `{"request":{"name":"EncodedSyncPData","correlationID":4,"parameters":{"requestType":"HTTP","data":["chunk1","chunk2"]}}}`
	if string(bs) != want {
		t.Errorf("Marshal = %s, want %s", bs, want)
	}

	m, err := sdlrpc.Decode(bs)
	if err != nil {
		t.Fatalf("Decode got err: %v", err)
	}
	back, ok := AsSystemRequest(m)
	if !ok || !back.Legacy() {
		t.Fatalf("AsSystemRequest(%v) = %v, want legacy SystemRequest", m, ok)
	}
	if diff := cmp.Diff(back.LegacyData().Get(), []string{"chunk1", "chunk2"}); diff != "" {
		t.Errorf("LegacyData() wrong (-got+want):\n%s", diff)
	}
}

func TestSystemRequestConstraints(t *testing.T) {
	r := NewSystemRequestWithType(RequestType("NOT_A_TYPE"))
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'x'
	}
	r.SetFileName(string(long))
	r.SetData([]string{})

	if _, ok := r.RequestType().GetOK(); ok {
		t.Error("unknown request type token read as present")
	}

	err := r.Validate()
	var verr *sdlrpc.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() err = %v, want ValidationError", err)
	}
	var got []string
	for _, p := range verr.Problems {
		var c *sdlrpc.ConstraintError
		if errors.As(p, &c) {
			got = append(got, c.Constraint+" "+c.Key)
		} else {
			got = append(got, p.Error())
		}
	}
	want := []string{"maxLength fileName", "enum requestType", "minSize data"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("wrong problems (-got+want):\n%s", diff)
	}
}

func TestGetVehicleDataResponseRoundTrip(t *testing.T) {
	resp := NewGetVehicleDataResponse(17)
	resp.SetResult(ResultSuccess)
	resp.SetSpeed(88.5)
	resp.SetRPM(2500)
	resp.SetPRNDL(PRNDLDrive)
	resp.SetVIN("1FAHP3F20CL148530")

	gps := NewGPSData(-83.045, 42.331)
	gps.SetCompassDirection(NorthEast)
	gps.SetSatellites(9)
	gps.SetActual(true)
	resp.SetGPS(gps)
	resp.SetFuelRange([]FuelRange{NewFuelRange(Gasoline, 420), NewFuelRange(Battery, 35.5)})

	bs, err := sdlrpc.Marshal(resp.Message)
	if err != nil {
		t.Fatalf("Marshal got err: %v", err)
	}

	m, err := sdlrpc.Decode(bs)
	if err != nil {
		t.Fatalf("Decode got err: %v", err)
	}
	got, ok := AsGetVehicleDataResponse(m)
	if !ok {
		t.Fatalf("AsGetVehicleDataResponse(%v) failed", m)
	}
	if got.CorrelationID().Get() != 17 {
		t.Errorf("correlation ID = %d, want 17", got.CorrelationID().Get())
	}
	if !got.Success().Get() || got.ResultCode().Get() != ResultSuccess {
		t.Errorf("result = %v %v, want success", got.Success(), got.ResultCode())
	}
	if got.Speed().Get() != 88.5 || got.RPM().Get() != 2500 || got.PRNDL().Get() != PRNDLDrive {
		t.Errorf("speed/rpm/prndl = %v/%v/%v, want 88.5/2500/DRIVE", got.Speed(), got.RPM(), got.PRNDL())
	}
	if got.VIN().Get() != "1FAHP3F20CL148530" {
		t.Errorf("VIN = %v", got.VIN())
	}

	g, ok := got.GPS().GetOK()
	if !ok {
		t.Fatal("GPS absent after round trip")
	}
	if g.LongitudeDegrees().Get() != -83.045 || g.LatitudeDegrees().Get() != 42.331 {
		t.Errorf("GPS position = %v, %v", g.LongitudeDegrees(), g.LatitudeDegrees())
	}
	if g.CompassDirection().Get() != NorthEast || g.Satellites().Get() != 9 || !g.Actual().Get() {
		t.Errorf("GPS = %v", g.Params())
	}
	if g.Heading().Present() {
		t.Error("unset GPS heading is present")
	}

	var ranges []string
	for _, fr := range got.FuelRange().Get() {
		ranges = append(ranges, string(fr.Type().Get()))
	}
	if diff := cmp.Diff(ranges, []string{"GASOLINE", "BATTERY"}); diff != "" {
		t.Errorf("fuel ranges wrong (-got+want):\n%s", diff)
	}
	if r := got.FuelRange().Get()[1].Range().Get(); r != 35.5 {
		t.Errorf("battery range = %v, want 35.5", r)
	}
}

func TestGetVehicleDataResponseInvalid(t *testing.T) {
	resp := NewGetVehicleDataResponse(1)
	resp.SetSuccess(true)
	gps := NewGPSData(200, 0)
	resp.SetGPS(gps)
	resp.SetRPM(-1)

	err := resp.Validate()
	var verr *sdlrpc.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() err = %v, want ValidationError", err)
	}
	var got []string
	for _, p := range verr.Problems {
		var (
			missing    *sdlrpc.MissingFieldError
			constraint *sdlrpc.ConstraintError
		)
		switch {
		case errors.As(p, &missing):
			got = append(got, "missing "+missing.Key)
		case errors.As(p, &constraint):
			got = append(got, constraint.Constraint+" "+constraint.Key)
		}
	}
	want := []string{"missing resultCode", "maxValue gps.longitudeDegrees", "minValue rpm"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("wrong problems (-got+want):\n%s", diff)
	}
}

func TestOnSystemRequest(t *testing.T) {
	n := NewOnSystemRequest(RequestLockScreenIconURL)
	n.SetURL("https://example.com/icon.png")
	n.SetFileType(FilePNG)
	n.SetTimeout(30)
	n.SetOffset(0)
	n.SetLength(1024)

	bs, err := sdlrpc.Marshal(n.Message)
	if err != nil {
		t.Fatalf("Marshal got err: %v", err)
	}
	m, err := sdlrpc.Decode(bs)
	if err != nil {
		t.Fatalf("Decode got err: %v", err)
	}
	got, ok := AsOnSystemRequest(m)
	if !ok {
		t.Fatalf("AsOnSystemRequest(%v) failed", m)
	}
	if got.RequestType().Get() != RequestLockScreenIconURL || got.URL().Get() != "https://example.com/icon.png" {
		t.Errorf("decoded %v", got.Message)
	}
	if got.Length().Get() != 1024 || got.FileType().Get() != FilePNG {
		t.Errorf("decoded %v", got.Message)
	}

	empty := OnSystemRequest{sdlrpc.NewNotification(sdlrpc.OnSystemRequest)}
	if err := empty.Validate(); err == nil {
		t.Error("OnSystemRequest without requestType validated")
	}

	if _, ok := AsOnSystemRequest(sdlrpc.NewRequest(sdlrpc.SystemRequest)); ok {
		t.Error("AsOnSystemRequest accepted a SystemRequest")
	}
	if _, ok := AsSystemRequest(m); ok {
		t.Error("AsSystemRequest accepted an OnSystemRequest")
	}
	if _, ok := AsGetVehicleData(m); ok {
		t.Error("AsGetVehicleData accepted an OnSystemRequest")
	}
}

// TestSetterKeysRegistered checks that every key written by the
// typed setters has a definition in the registry.
func TestSetterKeysRegistered(t *testing.T) {
	gvd := NewGetVehicleData()
	for _, set := range []func(bool){
		gvd.SetGPS, gvd.SetSpeed, gvd.SetRPM, gvd.SetFuelLevel,
		gvd.SetFuelLevelState, gvd.SetInstantFuelConsumption,
		gvd.SetExternalTemperature, gvd.SetVIN, gvd.SetPRNDL,
		gvd.SetTirePressure, gvd.SetEngineTorque, gvd.SetEngineOilLife,
		gvd.SetOdometer, gvd.SetBeltStatus, gvd.SetBodyInformation,
		gvd.SetDeviceStatus, gvd.SetDriverBraking, gvd.SetWiperStatus,
		gvd.SetHeadLampStatus, gvd.SetAccPedalPosition,
		gvd.SetSteeringWheelAngle, gvd.SetECallInfo, gvd.SetAirbagStatus,
		gvd.SetEmergencyEvent, gvd.SetClusterModeStatus, gvd.SetMyKey,
		gvd.SetFuelRange, gvd.SetTurnSignal,
		gvd.SetElectronicParkBrakeStatus, gvd.SetCloudAppVehicleID,
	} {
		set(true)
	}
	if got := gvd.Params().Len(); got != 30 {
		t.Errorf("GetVehicleData has %d flags, want 30", got)
	}

	resp := NewGetVehicleDataResponse(1)
	resp.SetResult(ResultSuccess)
	resp.SetInfo("ok")
	resp.SetGPS(NewGPSData(0, 0))
	resp.SetSpeed(1)
	resp.SetRPM(1)
	resp.SetFuelLevel(1)
	resp.SetFuelLevelState(VolumeNormal)
	resp.SetInstantFuelConsumption(1)
	resp.SetExternalTemperature(1)
	resp.SetVIN("v")
	resp.SetPRNDL(PRNDLPark)
	resp.SetEngineTorque(1)
	resp.SetEngineOilLife(1)
	resp.SetOdometer(1)
	resp.SetAccPedalPosition(1)
	resp.SetSteeringWheelAngle(1)
	resp.SetFuelRange([]FuelRange{NewFuelRange(Diesel, 1)})
	resp.SetTurnSignal(TurnSignalOff)
	resp.SetElectronicParkBrakeStatus(ParkBrakeOpen)
	resp.SetCloudAppVehicleID("id")

	gps := resp.GPS().Get()
	gps.SetUTCYear(2020)
	gps.SetUTCMonth(1)
	gps.SetUTCDay(1)
	gps.SetUTCHours(0)
	gps.SetUTCMinutes(0)
	gps.SetUTCSeconds(0)
	gps.SetCompassDirection(North)
	gps.SetPDOP(1)
	gps.SetHDOP(1)
	gps.SetVDOP(1)
	gps.SetActual(true)
	gps.SetSatellites(1)
	gps.SetDimension(Fix3D)
	gps.SetAltitude(1)
	gps.SetHeading(1)
	gps.SetSpeed(1)
	gps.SetShifted(false)

	sr := NewSystemRequestWithType(RequestHTTP)
	sr.SetFileName("f")
	sr.SetRequestSubType("s")
	sr.SetData([]string{"d"})

	osr := NewOnSystemRequest(RequestHTTP)
	osr.SetRequestSubType("s")
	osr.SetURL("u")
	osr.SetTimeout(1)
	osr.SetFileType(FileJSON)
	osr.SetOffset(1)
	osr.SetLength(1)

	for _, m := range []*sdlrpc.Message{gvd.Message, resp.Message, sr.Message, osr.Message} {
		spec, ok := m.Spec()
		if !ok {
			t.Errorf("%s %s has no registered spec", m.Function(), m.Kind())
			continue
		}
		for _, key := range m.Params().Keys() {
			if _, ok := spec.Param(key); !ok {
				t.Errorf("%s %s: key %q has no FieldSpec", m.Function(), m.Kind(), key)
			}
		}
		if err := m.Validate(); err != nil {
			t.Errorf("fully populated %s %s does not validate: %v", m.Function(), m.Kind(), err)
		}
	}

	gpsSpec, ok := sdlrpc.LookupStruct("GPSData")
	if !ok {
		t.Fatal("GPSData struct not registered")
	}
	for _, key := range gps.Params().Keys() {
		found := false
		for _, p := range gpsSpec.Params {
			found = found || p.Key == key
		}
		if !found {
			t.Errorf("GPSData key %q has no FieldSpec", key)
		}
	}
}

func TestEnums(t *testing.T) {
	tests := []struct {
		name   string
		valid  bool
		reg    string
		tokens int
	}{
		{"RequestType", RequestIconURL.Valid() && !RequestType("http").Valid(), "RequestType", 22},
		{"PRNDL", PRNDLFault.Valid() && !PRNDL("P").Valid(), "PRNDL", 16},
		{"ComponentVolumeStatus", VolumeNotSupported.Valid(), "ComponentVolumeStatus", 6},
		{"Result", ResultEncryptionNeeded.Valid() && !Result("").Valid(), "Result", 34},
		{"CompassDirection", NorthEast.Valid(), "CompassDirection", 8},
		{"Dimension", Fix2D.Valid() && !Dimension("4D").Valid(), "Dimension", 3},
		{"FileType", FileJSON.Valid(), "FileType", 8},
		{"FuelType", Battery.Valid(), "FuelType", 6},
		{"TurnSignal", TurnSignalBoth.Valid(), "TurnSignal", 4},
		{"ElectronicParkBrakeStatus", ParkBrakeDriveActive.Valid(), "ElectronicParkBrakeStatus", 5},
	}
	for _, tc := range tests {
		if !tc.valid {
			t.Errorf("%s.Valid() gave wrong answers", tc.name)
		}
		toks, ok := sdlrpc.EnumTokens(tc.reg)
		if !ok {
			t.Errorf("enum %s not registered", tc.reg)
			continue
		}
		if len(toks) != tc.tokens {
			t.Errorf("enum %s has %d tokens, want %d", tc.reg, len(toks), tc.tokens)
		}
	}
}
