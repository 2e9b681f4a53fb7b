package messages

import "github.com/danderson/sdlrpc"

// RequestType is the kind of data carried by a SystemRequest or
// OnSystemRequest.
type RequestType string

const (
	RequestHTTP                  RequestType = "HTTP"
	RequestFileResume            RequestType = "FILE_RESUME"
	RequestAuthRequest           RequestType = "AUTH_REQUEST"
	RequestAuthChallenge         RequestType = "AUTH_CHALLENGE"
	RequestAuthAck               RequestType = "AUTH_ACK"
	RequestProprietary           RequestType = "PROPRIETARY"
	RequestQueryApps             RequestType = "QUERY_APPS"
	RequestLaunchApp             RequestType = "LAUNCH_APP"
	RequestLockScreenIconURL     RequestType = "LOCK_SCREEN_ICON_URL"
	RequestTrafficMessageChannel RequestType = "TRAFFIC_MESSAGE_CHANNEL"
	RequestDriverProfile         RequestType = "DRIVER_PROFILE"
	RequestVoiceSearch           RequestType = "VOICE_SEARCH"
	RequestNavigation            RequestType = "NAVIGATION"
	RequestPhone                 RequestType = "PHONE"
	RequestClimate               RequestType = "CLIMATE"
	RequestSettings              RequestType = "SETTINGS"
	RequestVehicleDiagnostics    RequestType = "VEHICLE_DIAGNOSTICS"
	RequestEmergency             RequestType = "EMERGENCY"
	RequestMedia                 RequestType = "MEDIA"
	RequestFOTA                  RequestType = "FOTA"
	RequestOEMSpecific           RequestType = "OEM_SPECIFIC"
	RequestIconURL               RequestType = "ICON_URL"
)

var requestTypes = sdlrpc.RegisterEnum("RequestType",
	RequestHTTP, RequestFileResume, RequestAuthRequest, RequestAuthChallenge,
	RequestAuthAck, RequestProprietary, RequestQueryApps, RequestLaunchApp,
	RequestLockScreenIconURL, RequestTrafficMessageChannel, RequestDriverProfile,
	RequestVoiceSearch, RequestNavigation, RequestPhone, RequestClimate,
	RequestSettings, RequestVehicleDiagnostics, RequestEmergency, RequestMedia,
	RequestFOTA, RequestOEMSpecific, RequestIconURL)

func (t RequestType) Valid() bool { return requestTypes.Has(t) }

// PRNDL is the position of the gear selector.
type PRNDL string

const (
	PRNDLPark    PRNDL = "PARK"
	PRNDLReverse PRNDL = "REVERSE"
	PRNDLNeutral PRNDL = "NEUTRAL"
	PRNDLDrive   PRNDL = "DRIVE"
	PRNDLSport   PRNDL = "SPORT"
	PRNDLLowGear PRNDL = "LOWGEAR"
	PRNDLFirst   PRNDL = "FIRST"
	PRNDLSecond  PRNDL = "SECOND"
	PRNDLThird   PRNDL = "THIRD"
	PRNDLFourth  PRNDL = "FOURTH"
	PRNDLFifth   PRNDL = "FIFTH"
	PRNDLSixth   PRNDL = "SIXTH"
	PRNDLSeventh PRNDL = "SEVENTH"
	PRNDLEighth  PRNDL = "EIGHTH"
	PRNDLUnknown PRNDL = "UNKNOWN"
	PRNDLFault   PRNDL = "FAULT"
)

var prndls = sdlrpc.RegisterEnum("PRNDL",
	PRNDLPark, PRNDLReverse, PRNDLNeutral, PRNDLDrive, PRNDLSport,
	PRNDLLowGear, PRNDLFirst, PRNDLSecond, PRNDLThird, PRNDLFourth,
	PRNDLFifth, PRNDLSixth, PRNDLSeventh, PRNDLEighth, PRNDLUnknown,
	PRNDLFault)

func (p PRNDL) Valid() bool { return prndls.Has(p) }

// ComponentVolumeStatus is the fill level of a vehicle component,
// such as the fuel tank.
type ComponentVolumeStatus string

const (
	VolumeUnknown      ComponentVolumeStatus = "UNKNOWN"
	VolumeNormal       ComponentVolumeStatus = "NORMAL"
	VolumeLow          ComponentVolumeStatus = "LOW"
	VolumeFault        ComponentVolumeStatus = "FAULT"
	VolumeAlert        ComponentVolumeStatus = "ALERT"
	VolumeNotSupported ComponentVolumeStatus = "NOT_SUPPORTED"
)

var volumeStatuses = sdlrpc.RegisterEnum("ComponentVolumeStatus",
	VolumeUnknown, VolumeNormal, VolumeLow, VolumeFault, VolumeAlert,
	VolumeNotSupported)

func (s ComponentVolumeStatus) Valid() bool { return volumeStatuses.Has(s) }

// Result is the outcome of a request, reported in its response.
type Result string

const (
	ResultSuccess                 Result = "SUCCESS"
	ResultUnsupportedRequest      Result = "UNSUPPORTED_REQUEST"
	ResultUnsupportedResource     Result = "UNSUPPORTED_RESOURCE"
	ResultDisallowed              Result = "DISALLOWED"
	ResultRejected                Result = "REJECTED"
	ResultAborted                 Result = "ABORTED"
	ResultIgnored                 Result = "IGNORED"
	ResultRetry                   Result = "RETRY"
	ResultInUse                   Result = "IN_USE"
	ResultVehicleDataNotAvailable Result = "VEHICLE_DATA_NOT_AVAILABLE"
	ResultTimedOut                Result = "TIMED_OUT"
	ResultInvalidData             Result = "INVALID_DATA"
	ResultCharLimitExceeded       Result = "CHAR_LIMIT_EXCEEDED"
	ResultInvalidID               Result = "INVALID_ID"
	ResultDuplicateName           Result = "DUPLICATE_NAME"
	ResultAppNotRegistered        Result = "APPLICATION_NOT_REGISTERED"
	ResultWrongLanguage           Result = "WRONG_LANGUAGE"
	ResultOutOfMemory             Result = "OUT_OF_MEMORY"
	ResultTooManyPendingRequests  Result = "TOO_MANY_PENDING_REQUESTS"
	ResultGenericError            Result = "GENERIC_ERROR"
	ResultUserDisallowed          Result = "USER_DISALLOWED"
	ResultTruncatedData           Result = "TRUNCATED_DATA"
	ResultUnsupportedVersion      Result = "UNSUPPORTED_VERSION"
	ResultVehicleDataNotAllowed   Result = "VEHICLE_DATA_NOT_ALLOWED"
	ResultFileNotFound            Result = "FILE_NOT_FOUND"
	ResultCancelRoute             Result = "CANCEL_ROUTE"
	ResultSaved                   Result = "SAVED"
	ResultInvalidCert             Result = "INVALID_CERT"
	ResultExpiredCert             Result = "EXPIRED_CERT"
	ResultResumeFailed            Result = "RESUME_FAILED"
	ResultDataNotAvailable        Result = "DATA_NOT_AVAILABLE"
	ResultReadOnly                Result = "READ_ONLY"
	ResultCorruptedData           Result = "CORRUPTED_DATA"
	ResultEncryptionNeeded        Result = "ENCRYPTION_NEEDED"
)

var results = sdlrpc.RegisterEnum("Result",
	ResultSuccess, ResultUnsupportedRequest, ResultUnsupportedResource,
	ResultDisallowed, ResultRejected, ResultAborted, ResultIgnored,
	ResultRetry, ResultInUse, ResultVehicleDataNotAvailable, ResultTimedOut,
	ResultInvalidData, ResultCharLimitExceeded, ResultInvalidID,
	ResultDuplicateName, ResultAppNotRegistered, ResultWrongLanguage,
	ResultOutOfMemory, ResultTooManyPendingRequests, ResultGenericError,
	ResultUserDisallowed, ResultTruncatedData, ResultUnsupportedVersion,
	ResultVehicleDataNotAllowed, ResultFileNotFound, ResultCancelRoute,
	ResultSaved, ResultInvalidCert, ResultExpiredCert, ResultResumeFailed,
	ResultDataNotAvailable, ResultReadOnly, ResultCorruptedData,
	ResultEncryptionNeeded)

func (r Result) Valid() bool { return results.Has(r) }

// CompassDirection is a heading, to the nearest eighth of a turn.
type CompassDirection string

const (
	North     CompassDirection = "NORTH"
	NorthWest CompassDirection = "NORTHWEST"
	West      CompassDirection = "WEST"
	SouthWest CompassDirection = "SOUTHWEST"
	South     CompassDirection = "SOUTH"
	SouthEast CompassDirection = "SOUTHEAST"
	East      CompassDirection = "EAST"
	NorthEast CompassDirection = "NORTHEAST"
)

var compassDirections = sdlrpc.RegisterEnum("CompassDirection",
	North, NorthWest, West, SouthWest, South, SouthEast, East, NorthEast)

func (d CompassDirection) Valid() bool { return compassDirections.Has(d) }

// Dimension is the quality of a GPS fix.
type Dimension string

const (
	NoFix Dimension = "NO_FIX"
	Fix2D Dimension = "2D"
	Fix3D Dimension = "3D"
)

var dimensions = sdlrpc.RegisterEnum("Dimension", NoFix, Fix2D, Fix3D)

func (d Dimension) Valid() bool { return dimensions.Has(d) }

// FileType is the format of a file exchanged with the head unit.
type FileType string

const (
	FileBMP    FileType = "GRAPHIC_BMP"
	FileJPEG   FileType = "GRAPHIC_JPEG"
	FilePNG    FileType = "GRAPHIC_PNG"
	FileWAV    FileType = "AUDIO_WAVE"
	FileMP3    FileType = "AUDIO_MP3"
	FileAAC    FileType = "AUDIO_AAC"
	FileBinary FileType = "BINARY"
	FileJSON   FileType = "JSON"
)

var fileTypes = sdlrpc.RegisterEnum("FileType",
	FileBMP, FileJPEG, FilePNG, FileWAV, FileMP3, FileAAC, FileBinary, FileJSON)

func (t FileType) Valid() bool { return fileTypes.Has(t) }

// FuelType is a kind of vehicle energy source.
type FuelType string

const (
	Gasoline FuelType = "GASOLINE"
	Diesel   FuelType = "DIESEL"
	CNG      FuelType = "CNG"
	LPG      FuelType = "LPG"
	Hydrogen FuelType = "HYDROGEN"
	Battery  FuelType = "BATTERY"
)

var fuelTypes = sdlrpc.RegisterEnum("FuelType",
	Gasoline, Diesel, CNG, LPG, Hydrogen, Battery)

func (t FuelType) Valid() bool { return fuelTypes.Has(t) }

// TurnSignal is the state of the turn signals.
type TurnSignal string

const (
	TurnSignalOff   TurnSignal = "OFF"
	TurnSignalLeft  TurnSignal = "LEFT"
	TurnSignalRight TurnSignal = "RIGHT"
	TurnSignalBoth  TurnSignal = "BOTH"
)

var turnSignals = sdlrpc.RegisterEnum("TurnSignal",
	TurnSignalOff, TurnSignalLeft, TurnSignalRight, TurnSignalBoth)

func (s TurnSignal) Valid() bool { return turnSignals.Has(s) }

// ElectronicParkBrakeStatus is the state of the electronic parking
// brake.
type ElectronicParkBrakeStatus string

const (
	ParkBrakeClosed      ElectronicParkBrakeStatus = "CLOSED"
	ParkBrakeTransition  ElectronicParkBrakeStatus = "TRANSITION"
	ParkBrakeOpen        ElectronicParkBrakeStatus = "OPEN"
	ParkBrakeDriveActive ElectronicParkBrakeStatus = "DRIVE_ACTIVE"
	ParkBrakeFault       ElectronicParkBrakeStatus = "FAULT"
)

var parkBrakeStatuses = sdlrpc.RegisterEnum("ElectronicParkBrakeStatus",
	ParkBrakeClosed, ParkBrakeTransition, ParkBrakeOpen, ParkBrakeDriveActive,
	ParkBrakeFault)

func (s ElectronicParkBrakeStatus) Valid() bool { return parkBrakeStatuses.Has(s) }
