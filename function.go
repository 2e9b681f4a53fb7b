package sdlrpc

import (
	"fmt"
	"strconv"
)

// A FunctionID identifies the RPC operation that a message
// represents.
type FunctionID int32

// Requests, and the responses that answer them.
const (
	RegisterAppInterface       FunctionID = 1
	UnregisterAppInterface     FunctionID = 2
	SetGlobalProperties        FunctionID = 3
	ResetGlobalProperties      FunctionID = 4
	AddCommand                 FunctionID = 5
	DeleteCommand              FunctionID = 6
	AddSubMenu                 FunctionID = 7
	DeleteSubMenu              FunctionID = 8
	CreateInteractionChoiceSet FunctionID = 9
	PerformInteraction         FunctionID = 10
	DeleteInteractionChoiceSet FunctionID = 11
	Alert                      FunctionID = 12
	Show                       FunctionID = 13
	Speak                      FunctionID = 14
	SetMediaClockTimer         FunctionID = 15
	PerformAudioPassThru       FunctionID = 16
	EndAudioPassThru           FunctionID = 17
	SubscribeButton            FunctionID = 18
	UnsubscribeButton          FunctionID = 19
	SubscribeVehicleData       FunctionID = 20
	UnsubscribeVehicleData     FunctionID = 21
	GetVehicleData             FunctionID = 22
	ReadDID                    FunctionID = 23
	GetDTCs                    FunctionID = 24
	ScrollableMessage          FunctionID = 25
	Slider                     FunctionID = 26
	ShowConstantTBT            FunctionID = 27
	AlertManeuver              FunctionID = 28
	UpdateTurnList             FunctionID = 29
	ChangeRegistration         FunctionID = 30
	GenericResponse            FunctionID = 31
	PutFile                    FunctionID = 32
	DeleteFile                 FunctionID = 33
	ListFiles                  FunctionID = 34
	SetAppIcon                 FunctionID = 35
	SetDisplayLayout           FunctionID = 36
	DiagnosticMessage          FunctionID = 37
	SystemRequest              FunctionID = 38
	SendLocation               FunctionID = 39
	DialNumber                 FunctionID = 40
)

// Notifications.
const (
	OnHMIStatus                FunctionID = 32768
	OnAppInterfaceUnregistered FunctionID = 32769
	OnButtonEvent              FunctionID = 32770
	OnButtonPress              FunctionID = 32771
	OnVehicleData              FunctionID = 32772
	OnCommand                  FunctionID = 32773
	OnTBTClientState           FunctionID = 32774
	OnDriverDistraction        FunctionID = 32775
	OnPermissionsChange        FunctionID = 32776
	OnAudioPassThru            FunctionID = 32777
	OnLanguageChange           FunctionID = 32778
	OnKeyboardInput            FunctionID = 32779
	OnTouchEvent               FunctionID = 32780
	OnSystemRequest            FunctionID = 32781
	OnHashChange               FunctionID = 32782
)

// Legacy functions, superseded by SystemRequest and OnSystemRequest.
const (
	EncodedSyncPData   FunctionID = 65536
	SyncPData          FunctionID = 65537
	OnEncodedSyncPData FunctionID = 98304
	OnSyncPData        FunctionID = 98305
)

var (
	functionToStr = map[FunctionID]string{
		RegisterAppInterface:       "RegisterAppInterface",
		UnregisterAppInterface:     "UnregisterAppInterface",
		SetGlobalProperties:        "SetGlobalProperties",
		ResetGlobalProperties:      "ResetGlobalProperties",
		AddCommand:                 "AddCommand",
		DeleteCommand:              "DeleteCommand",
		AddSubMenu:                 "AddSubMenu",
		DeleteSubMenu:              "DeleteSubMenu",
		CreateInteractionChoiceSet: "CreateInteractionChoiceSet",
		PerformInteraction:         "PerformInteraction",
		DeleteInteractionChoiceSet: "DeleteInteractionChoiceSet",
		Alert:                      "Alert",
		Show:                       "Show",
		Speak:                      "Speak",
		SetMediaClockTimer:         "SetMediaClockTimer",
		PerformAudioPassThru:       "PerformAudioPassThru",
		EndAudioPassThru:           "EndAudioPassThru",
		SubscribeButton:            "SubscribeButton",
		UnsubscribeButton:          "UnsubscribeButton",
		SubscribeVehicleData:       "SubscribeVehicleData",
		UnsubscribeVehicleData:     "UnsubscribeVehicleData",
		GetVehicleData:             "GetVehicleData",
		ReadDID:                    "ReadDID",
		GetDTCs:                    "GetDTCs",
		ScrollableMessage:          "ScrollableMessage",
		Slider:                     "Slider",
		ShowConstantTBT:            "ShowConstantTBT",
		AlertManeuver:              "AlertManeuver",
		UpdateTurnList:             "UpdateTurnList",
		ChangeRegistration:         "ChangeRegistration",
		GenericResponse:            "GenericResponse",
		PutFile:                    "PutFile",
		DeleteFile:                 "DeleteFile",
		ListFiles:                  "ListFiles",
		SetAppIcon:                 "SetAppIcon",
		SetDisplayLayout:           "SetDisplayLayout",
		DiagnosticMessage:          "DiagnosticMessage",
		SystemRequest:              "SystemRequest",
		SendLocation:               "SendLocation",
		DialNumber:                 "DialNumber",

		OnHMIStatus:                "OnHMIStatus",
		OnAppInterfaceUnregistered: "OnAppInterfaceUnregistered",
		OnButtonEvent:              "OnButtonEvent",
		OnButtonPress:              "OnButtonPress",
		OnVehicleData:              "OnVehicleData",
		OnCommand:                  "OnCommand",
		OnTBTClientState:           "OnTBTClientState",
		OnDriverDistraction:        "OnDriverDistraction",
		OnPermissionsChange:        "OnPermissionsChange",
		OnAudioPassThru:            "OnAudioPassThru",
		OnLanguageChange:           "OnLanguageChange",
		OnKeyboardInput:            "OnKeyboardInput",
		OnTouchEvent:               "OnTouchEvent",
		OnSystemRequest:            "OnSystemRequest",
		OnHashChange:               "OnHashChange",

		EncodedSyncPData:   "EncodedSyncPData",
		SyncPData:          "SyncPData",
		OnEncodedSyncPData: "OnEncodedSyncPData",
		OnSyncPData:        "OnSyncPData",
	}

	// strToFunction is the inverse of functionToStr.
	strToFunction = func() map[string]FunctionID {
		ret := make(map[string]FunctionID, len(functionToStr))
		for id, s := range functionToStr {
			ret[s] = id
		}
		return ret
	}()
)

func (f FunctionID) String() string {
	if s, ok := functionToStr[f]; ok {
		return s
	}
	return "FunctionID(" + strconv.Itoa(int(f)) + ")"
}

// Known reports whether f is part of the function enumeration.
func (f FunctionID) Known() bool {
	_, ok := functionToStr[f]
	return ok
}

// ParseFunctionID returns the FunctionID with the given wire name.
func ParseFunctionID(name string) (FunctionID, error) {
	if f, ok := strToFunction[name]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFunction, name)
}

func (f FunctionID) MarshalText() ([]byte, error) {
	s, ok := functionToStr[f]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownFunction, f)
	}
	return []byte(s), nil
}

func (f *FunctionID) UnmarshalText(bs []byte) error {
	v, err := ParseFunctionID(string(bs))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
