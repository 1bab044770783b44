package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ridwaanhall/SpaceX/internal/models"
	"go.uber.org/zap"
)

// Ключи телеметрии во внутреннем представлении
const (
	KeyGPSTime           = "glass_dragon_gps_time_f64"
	KeyMissionTime       = "glass_dragon_mission_time_f64"
	KeyAltitude          = "glass_dgn_alt_geod_f64"
	KeySpeed             = "glass_dgn_speed_f64"
	KeyPredictISSLLA     = "glass_predict_iss_r_lla_v3"
	KeyPredictISSECEF    = "glass_predict_iss_r_ecef_v3"
	KeyPredictDragonLLA  = "glass_predict_dgn_r_lla_v3"
	KeyPredictDragonECEF = "glass_predict_dgn_r_ecef_v3"
	KeyPropISSECEF       = "glass_prop_iss_r_ecef_v3"
	KeyPropDragonECEF    = "glass_prop_dgn_r_ecef_v3"
)

type fieldType int

const (
	typeNumber fieldType = iota
	typeVector
	typeIntMatrix
)

var telemetryFields = []struct {
	external string
	internal string
	kind     fieldType
}{
	{"glass.dragon.gps_time_f64", KeyGPSTime, typeNumber},
	{"glass.dragon.mission_time_f64", KeyMissionTime, typeNumber},
	{"glass.dgn_alt_geod_f64", KeyAltitude, typeNumber},
	{"glass.dgn_speed_f64", KeySpeed, typeNumber},
	{"glass.predict_iss_r_lla_v3", KeyPredictISSLLA, typeVector},
	{"glass.predict_iss_r_ecef_v3", KeyPredictISSECEF, typeVector},
	{"glass.predict_dgn_r_lla_v3", KeyPredictDragonLLA, typeVector},
	{"glass.predict_dgn_r_ecef_v3", KeyPredictDragonECEF, typeVector},
	{"glass.prop_iss_r_ecef_v3", KeyPropISSECEF, typeIntMatrix},
	{"glass.prop_dgn_r_ecef_v3", KeyPropDragonECEF, typeIntMatrix},
}

var (
	toInternal = map[string]string{}
	toExternal = map[string]string{}
	fieldTypes = map[string]fieldType{}
)

func init() {
	for _, f := range telemetryFields {
		toInternal[f.external] = f.internal
		toExternal[f.internal] = f.external
		fieldTypes[f.internal] = f.kind
	}
}

// ToInternal переименовывает известные ключи провайдера с точками в ключи
// с подчёркиваниями. Порядок сохраняется, неизвестные ключи не меняются.
// Если внутреннее имя уже занято другим полем кадра, ключ остаётся прежним.
// Каждое поле запоминает исходный ключ в Origin.
func ToInternal(frame models.TelemetryFrame) models.TelemetryFrame {
	out := rename(frame, toInternal)
	for i := range out {
		out[i].Origin = frame[i].Key
	}
	return out
}

// ToExternal - точная обратная операция к ToInternal: поля с Origin получают
// исходный ключ. Поля без Origin переименовываются по таблице.
func ToExternal(frame models.TelemetryFrame) models.TelemetryFrame {
	out := rename(frame, toExternal)
	for i, field := range frame {
		if field.Origin != "" {
			out[i].Key = field.Origin
		}
	}
	return out
}

func rename(frame models.TelemetryFrame, mapping map[string]string) models.TelemetryFrame {
	present := make(map[string]bool, len(frame))
	for _, field := range frame {
		present[field.Key] = true
	}

	out := make(models.TelemetryFrame, len(frame))
	for i, field := range frame {
		key := field.Key
		if mapped, ok := mapping[key]; ok && !present[mapped] {
			key = mapped
		}
		out[i] = models.TelemetryField{Key: key, Value: field.Value}
	}
	return out
}

// ValidateFrame проверяет типы известных полей во внутреннем представлении.
// null допускается для любого известного поля.
func ValidateFrame(frame models.TelemetryFrame) []Warning {
	var warnings []Warning
	for _, field := range frame {
		kind, known := fieldTypes[field.Key]
		if !known || isNull(field.Value) {
			continue
		}
		if err := checkType(field.Value, kind); err != nil {
			warnings = append(warnings, Warning{Field: field.Key, Message: err.Error()})
		}
	}
	return warnings
}

func checkType(value json.RawMessage, kind fieldType) error {
	switch kind {
	case typeNumber:
		var v float64
		if err := json.Unmarshal(value, &v); err != nil {
			return errors.New("a valid number is required")
		}
	case typeVector:
		var v []*float64
		if err := json.Unmarshal(value, &v); err != nil {
			return errors.New("expected a list of numbers")
		}
		for _, x := range v {
			if x == nil {
				return errors.New("list items may not be null")
			}
		}
	case typeIntMatrix:
		var v [][]*float64
		if err := json.Unmarshal(value, &v); err != nil {
			return errors.New("expected a list of integer lists")
		}
		for _, row := range v {
			if row == nil {
				return errors.New("list items may not be null")
			}
			for _, x := range row {
				if x == nil || *x != math.Trunc(*x) {
					return errors.New("a valid integer is required")
				}
			}
		}
	}
	return nil
}

func isNull(value json.RawMessage) bool {
	return len(value) == 0 || string(value) == "null"
}

// Dragon переводит кадр во внутреннее представление, проверяет его и
// возвращает представление с ключами провайдера. При несоответствии типов
// отдаются исходные данные.
func (n *Normalizer) Dragon(raw json.RawMessage) Result[models.TelemetryFrame] {
	var frame models.TelemetryFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		n.logger.Warn("Telemetry payload is not an object", zap.Error(err))
		return degraded[models.TelemetryFrame](raw, []Warning{{Message: err.Error()}})
	}

	internal := ToInternal(frame)
	if warnings := ValidateFrame(internal); len(warnings) > 0 {
		n.logger.Warn("Telemetry failed schema validation, passing raw data through",
			zap.Int("warnings", len(warnings)),
			zap.Any("details", warnings),
		)
		return degraded[models.TelemetryFrame](raw, warnings)
	}
	return validated(ToExternal(internal), nil)
}

// Summarize строит производное представление кадра во внутреннем
// представлении. Поля с неверным типом считаются отсутствующими.
func Summarize(frame models.TelemetryFrame, now time.Time) models.DragonSummary {
	summary := models.DragonSummary{
		GPSTime:          number(frame, KeyGPSTime),
		MissionTime:      number(frame, KeyMissionTime),
		AltitudeGeodetic: number(frame, KeyAltitude),
		Speed:            number(frame, KeySpeed),
		LastUpdate:       now.UTC().Format(time.RFC3339),
	}

	if t := summary.MissionTime; t != nil && *t != 0 {
		formatted := FormatMissionTime(*t)
		summary.MissionTimeFormatted = &formatted
	}
	if alt := summary.AltitudeGeodetic; alt != nil && *alt != 0 {
		summary.AltitudeKm = float64Ptr(round(*alt/1000, 2))
	}
	if speed := summary.Speed; speed != nil && *speed != 0 {
		summary.SpeedMs = float64Ptr(round(*speed, 2))
		summary.SpeedKmh = float64Ptr(round(*speed*3.6, 2))
	}

	summary.ISSCoordinates = coordinates(vector(frame, KeyPredictISSLLA))
	summary.DragonCoordinates = coordinates(vector(frame, KeyPredictDragonLLA))
	summary.ISSPropagationPoints = count(frame, KeyPropISSECEF)
	summary.DragonPropagationPoints = count(frame, KeyPropDragonECEF)
	return summary
}

// FormatMissionTime форматирует секунды полёта как HH:MM:SS с отбрасыванием
// дробной части
func FormatMissionTime(seconds float64) string {
	hours := int64(math.Floor(seconds / 3600))
	minutes := int64(math.Floor(floorMod(seconds, 3600) / 60))
	secs := int64(math.Floor(floorMod(seconds, 60)))
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// floorMod - остаток со знаком делителя
func floorMod(a, b float64) float64 {
	return a - b*math.Floor(a/b)
}

func coordinates(v []float64) *models.Coordinates {
	if len(v) < 3 {
		return nil
	}
	return &models.Coordinates{
		Latitude:  round(v[0], 6),
		Longitude: round(v[1], 6),
		AltitudeM: round(v[2], 2),
	}
}

func number(frame models.TelemetryFrame, key string) *float64 {
	raw, ok := frame.Get(key)
	if !ok || isNull(raw) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func vector(frame models.TelemetryFrame, key string) []float64 {
	raw, ok := frame.Get(key)
	if !ok {
		return nil
	}
	var v []float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func count(frame models.TelemetryFrame, key string) int {
	raw, ok := frame.Get(key)
	if !ok {
		return 0
	}
	var v []json.RawMessage
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	return len(v)
}

// round округляет точное двоичное значение x до places знаков, половины -
// к чётному
func round(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

func float64Ptr(v float64) *float64 {
	return &v
}
