package isa

import (
	"errors"
	"fmt"
)

// ErrParse is wrapped by every device/device-variable parse failure so
// callers can test with errors.Is(err, isa.ErrParse) without caring which
// specific token was rejected.
var ErrParse = errors.New("parse error")

// Device is one of the six fixed peripheral slots the target ISA exposes.
type Device uint8

const (
	D0 Device = iota
	D1
	D2
	D3
	D4
	D5
)

var deviceNames = [...]string{"d0", "d1", "d2", "d3", "d4", "d5"}

func (d Device) String() string {
	if int(d) < len(deviceNames) {
		return deviceNames[d]
	}
	return "?device?"
}

var nameToDevice map[string]Device

func init() {
	nameToDevice = make(map[string]Device, len(deviceNames))
	for i, name := range deviceNames {
		nameToDevice[name] = Device(i)
	}
}

// ParseDevice parses a device literal such as "d2". Any other token is a
// ParseError per §6 of the device literal grammar.
func ParseDevice(s string) (Device, error) {
	if d, ok := nameToDevice[s]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: not a device literal (want d0..d5): %q", ErrParse, s)
}

// DeviceVariable is one member of the closed set of camel-case attribute
// names the target recognizes on a device. The full set is carried here
// (rather than spec.md's sampled few) since it costs nothing extra and is
// exactly what "a closed set of camel-case identifiers" means concretely.
type DeviceVariable uint8

const (
	VarActivate DeviceVariable = iota
	VarAirRelease
	VarCharge
	VarClearMemory
	VarColor
	VarCompletionRatio
	VarElevatorLevel
	VarElevatorSpeed
	VarError
	VarExportCount
	VarFiltration
	VarHarvest
	VarHorizontal
	VarHorizontalRatio
	VarIdle
	VarImportCount
	VarLock
	VarMaximum
	VarMode
	VarOn
	VarOpen
	VarOutput
	VarPlant
	VarPositionX
	VarPositionY
	VarPower
	VarPowerActual
	VarPowerPotential
	VarPowerRequired
	VarPressure
	VarPressureExternal
	VarPressureInternal
	VarPressureSetting
	VarQuantity
	VarRatio
	VarRatioCarbonDioxide
	VarRatioNitrogen
	VarRatioOxygen
	VarRatioPollutant
	VarRatioVolatiles
	VarRatioWater
	VarReagents
	VarRecipeHash
	VarRequestHash
	VarRequiredPower
	VarSetting
	VarSolarAngle
	VarTemperature
	VarTemperatureSettings
	VarTotalMoles
	VarVelocityMagnitude
	VarVelocityRelativeX
	VarVelocityRelativeY
	VarVelocityRelativeZ
	VarVertical
	VarVerticalRatio
	VarVolume
)

var deviceVariableNames = map[DeviceVariable]string{
	VarActivate:            "Activate",
	VarAirRelease:          "AirRelease",
	VarCharge:              "Charge",
	VarClearMemory:         "ClearMemory",
	VarColor:               "Color",
	VarCompletionRatio:     "CompletionRatio",
	VarElevatorLevel:       "ElevatorLevel",
	VarElevatorSpeed:       "ElevatorSpeed",
	VarError:               "Error",
	VarExportCount:         "ExportCount",
	VarFiltration:          "Filtration",
	VarHarvest:             "Harvest",
	VarHorizontal:          "Horizontal",
	VarHorizontalRatio:     "HorizontalRatio",
	VarIdle:                "Idle",
	VarImportCount:         "ImportCount",
	VarLock:                "Lock",
	VarMaximum:             "Maximum",
	VarMode:                "Mode",
	VarOn:                  "On",
	VarOpen:                "Open",
	VarOutput:              "Output",
	VarPlant:               "Plant",
	VarPositionX:           "PositionX",
	VarPositionY:           "PositionY",
	VarPower:               "Power",
	VarPowerActual:         "PowerActual",
	VarPowerPotential:      "PowerPotential",
	VarPowerRequired:       "PowerRequired",
	VarPressure:            "Pressure",
	VarPressureExternal:    "PressureExternal",
	VarPressureInternal:    "PressureInternal",
	VarPressureSetting:     "PressureSetting",
	VarQuantity:            "Quantity",
	VarRatio:               "Ratio",
	VarRatioCarbonDioxide:  "RatioCarbonDioxide",
	VarRatioNitrogen:       "RatioNitrogen",
	VarRatioOxygen:         "RatioOxygen",
	VarRatioPollutant:      "RatioPollutant",
	VarRatioVolatiles:      "RatioVolatiles",
	VarRatioWater:          "RatioWater",
	VarReagents:            "Reagents",
	VarRecipeHash:          "RecipeHash",
	VarRequestHash:         "RequestHash",
	VarRequiredPower:       "RequiredPower",
	VarSetting:             "Setting",
	VarSolarAngle:          "SolarAngle",
	VarTemperature:         "Temperature",
	VarTemperatureSettings: "TemperatureSettings",
	VarTotalMoles:          "TotalMoles",
	VarVelocityMagnitude:   "VelocityMagnitude",
	VarVelocityRelativeX:   "VelocityRelativeX",
	VarVelocityRelativeY:   "VelocityRelativeY",
	VarVelocityRelativeZ:   "VelocityRelativeZ",
	VarVertical:            "Vertical",
	VarVerticalRatio:       "VerticalRatio",
	VarVolume:              "Volume",
}

var nameToDeviceVariable map[string]DeviceVariable

func (v DeviceVariable) String() string {
	if s, ok := deviceVariableNames[v]; ok {
		return s
	}
	return "?devicevar?"
}

func init() {
	nameToDeviceVariable = make(map[string]DeviceVariable, len(deviceVariableNames))
	for v, name := range deviceVariableNames {
		nameToDeviceVariable[name] = v
	}
}

// ParseDeviceVariable parses a device variable name such as "Temperature".
// Unknown names fail ParseError per §6.
func ParseDeviceVariable(s string) (DeviceVariable, error) {
	if v, ok := nameToDeviceVariable[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: not a device variable: %q", ErrParse, s)
}
